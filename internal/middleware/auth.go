package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/ozgurkara/todo-backend/internal/config"
	"github.com/ozgurkara/todo-backend/internal/dto"
)

// JWTProtected verifies the Authorization bearer token and stores it in the
// request context for handlers to read claims from.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: cfg.JWTAlgorithm,
			Key:    []byte(cfg.JWTSecret),
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: "Could not validate credentials.",
			})
		},
	})
}
