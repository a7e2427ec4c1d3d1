package handlers

import (
	"errors"
	"log"

	"vendo/internal/apperrors"
	"vendo/internal/coins"
	"vendo/internal/middleware"
	"vendo/internal/models"

	"github.com/gofiber/fiber/v2"
)

// User-visible messages. Existing clients match on these strings, so the
// wording is frozen.
const (
	msgProductNotFound    = "Product not found"
	msgUserNotFound       = "User not found"
	msgQuantityExceeds    = "The requested quantity exceeds the available quantity."
	msgNotEnoughDeposit   = "Not enough deposit available. Please insert more coins."
	msgInvalidInput       = "Invalid input."
	msgInvalidCoin        = "Invalid denomination. Accepted coins are 5, 10, 20, 50, 100."
	msgNoPermission       = "You do not have permission to perform this action."
	msgSomethingWentWrong = "Something went wrong"
)

// principal returns the authenticated user stored by the auth middleware.
func principal(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(middleware.PrincipalKey).(*models.User)
	return user
}

// respondDomainError maps a domain error to its HTTP shape: 403 with an
// error envelope for authorization failures, 400 with a message list for
// validation/stock/funds failures, 500 otherwise. A change-making failure
// means the denomination configuration is broken and is logged loudly.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": fiber.Map{"message": msgNoPermission},
		})
	// ErrUserNotFound wraps ErrNotFound, so it must be checked first: a
	// missing user account must not be reported as a missing product.
	case errors.Is(err, apperrors.ErrUserNotFound):
		return badRequest(c, msgUserNotFound)
	case errors.Is(err, apperrors.ErrNotFound):
		return badRequest(c, msgProductNotFound)
	case errors.Is(err, apperrors.ErrInsufficientStock):
		return badRequest(c, msgQuantityExceeds)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return badRequest(c, msgNotEnoughDeposit)
	case errors.Is(err, apperrors.ErrInvalidDenomination):
		return badRequest(c, msgInvalidCoin)
	case errors.Is(err, apperrors.ErrInvalidInput):
		return badRequest(c, msgInvalidInput)
	case errors.Is(err, coins.ErrChange):
		log.Printf("FATAL denomination configuration bug: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": []string{msgSomethingWentWrong},
		})
	default:
		log.Printf("Unhandled error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": []string{msgSomethingWentWrong},
		})
	}
}

// badRequest writes a 400 with the message-list envelope.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": []string{message},
	})
}
