package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ozgurkara/todo-backend/internal/dto"
	"github.com/ozgurkara/todo-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CreateUser handles POST /auth/ - registers a new account.
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	if err := h.authService.Register(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Failed to create user",
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}

// Login handles POST /auth/token - authenticates form-encoded credentials
// and returns a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: "Incorrect username or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
