package handlers

import (
	"fmt"
	"log"

	"vendo/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the authenticated account: status,
// removal, and the deposit ledger.
type UserHandler struct {
	authService   *services.AuthService
	walletService *services.WalletService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, walletService *services.WalletService) *UserHandler {
	return &UserHandler{
		authService:   authService,
		walletService: walletService,
	}
}

// RegisterRoutes registers the authenticated user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/status", h.HandleStatus)
	userRoutes.Delete("/remove", h.HandleRemove)
	userRoutes.Post("/deposit", h.HandleDeposit)
	userRoutes.Post("/reset", h.HandleReset)
}

// HandleStatus reports who the caller is logged in as.
func (h *UserHandler) HandleStatus(c *fiber.Ctx) error {
	user := principal(c)
	return c.JSON(fiber.Map{
		"success": fmt.Sprintf("Logged in as: %s : %s", user.Username, user.Role),
	})
}

// HandleRemove deletes the caller's account. For sellers their products are
// removed in the same transaction.
func (h *UserHandler) HandleRemove(c *fiber.Ctx) error {
	user := principal(c)
	if err := h.authService.RemoveUser(user); err != nil {
		log.Printf("Error removing user %s: %v", user.ID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": "User Removed Successfully",
	})
}

// DepositRequest represents the request body for a coin deposit.
type DepositRequest struct {
	Amount int `json:"amount"`
}

// HandleDeposit inserts one coin into the caller's deposit.
func (h *UserHandler) HandleDeposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing deposit request body: %v", err)
		return badRequest(c, msgInvalidInput)
	}

	user := principal(c)
	balance, err := h.walletService.Deposit(user, req.Amount)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": fmt.Sprintf("Deposit successful. Your new balance is %d", balance),
	})
}

// HandleReset zeroes the caller's deposit.
func (h *UserHandler) HandleReset(c *fiber.Ctx) error {
	user := principal(c)
	balance, err := h.walletService.Reset(user)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": fmt.Sprintf("Deposit reset successful. Your available balance is %d", balance),
	})
}
