package middleware

import (
	"errors"
	"log"
	"strings"

	"felt2felt-api/models"
	"felt2felt-api/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRequired validates the bearer JWT and attaches the caller's identity to
// the request context. Runs before AdminRequired on admin routes.
func AuthRequired(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "No token, authorization denied"})
		}

		// Parse "Bearer <token>"; tolerate a raw token value
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseToken(token, jwtSecret)
		if err != nil {
			log.Printf("🚫 [AUTH] Token rejected for %s: %v", c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Token is not valid"})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_role", claims.Role)
		return c.Next()
	}
}

// AdminRequired re-fetches the caller's role from the database rather than
// trusting the token, so demotions take effect before the token expires.
// Must run after AuthRequired.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "No token, authorization denied"})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Account deleted after token issuance: treat as forbidden.
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"msg": "Access denied. Administrator privileges required."})
			}
			log.Printf("ERROR fetching user %s in admin middleware: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Server Error"})
		}

		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"msg": "Access denied. Administrator privileges required."})
		}

		return c.Next()
	}
}
