package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ozgurkara/todo-backend/internal/auth"
	"github.com/ozgurkara/todo-backend/internal/dto"
	"github.com/ozgurkara/todo-backend/internal/models"
)

// AdminRequired gates a route group on the role claim. The check is purely
// claim-based: a role change in storage takes effect only once a new token
// is issued.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := auth.FromContext(c)
		if err != nil || claims.Role != models.RoleAdmin {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: "Authentication Failed",
			})
		}
		return c.Next()
	}
}
