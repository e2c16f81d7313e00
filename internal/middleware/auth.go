package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/autoassist/auto-assist-api/internal/config"
	"github.com/autoassist/auto-assist-api/internal/dto"
)

// JWTProtected rejects requests without a valid bearer token. Tokens expire
// 24 hours after issuance.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "invalid or expired token",
			})
		},
	})
}
