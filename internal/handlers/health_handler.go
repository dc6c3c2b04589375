package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/ozgurkara/todo-backend/internal/database"
	"github.com/ozgurkara/todo-backend/internal/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /healthy - liveness probe against the database.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := database.Ping(h.db); err != nil {
		slog.Error("health check failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Detail: "Database connection failed",
		})
	}

	return c.JSON(dto.HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
