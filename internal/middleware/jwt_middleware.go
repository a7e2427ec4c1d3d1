package middleware

import (
	"log"
	"strings"

	"vendo/internal/repositories"
	"vendo/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the Locals key under which AuthRequired stores the
// authenticated *models.User.
const PrincipalKey = "principal"

// AuthRequired is a Fiber middleware that checks for a valid JWT token and
// resolves the authenticated user. Downstream handlers read the principal
// from Locals; no handler touches session state.
func AuthRequired(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{"message": "Authentication credentials were not provided."},
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{"message": "Authorization header format must be 'Bearer <token>'"},
			})
		}

		tokenString := parts[1]

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{"message": "Invalid or expired token"},
			})
		}

		userID, _ := claims["user_id"].(string)
		user, err := userRepo.GetByID(userID)
		if err != nil || !user.Active {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{"message": "Invalid or expired token"},
			})
		}

		c.Locals(PrincipalKey, user)

		return c.Next()
	}
}
