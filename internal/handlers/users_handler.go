package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ozgurkara/todo-backend/internal/auth"
	"github.com/ozgurkara/todo-backend/internal/dto"
	"github.com/ozgurkara/todo-backend/internal/services"
)

type UsersHandler struct {
	userService *services.UserService
}

func NewUsersHandler(userService *services.UserService) *UsersHandler {
	return &UsersHandler{userService: userService}
}

// Me handles GET /users/ - returns the caller's own record.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate user",
		})
	}

	user, err := h.userService.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Detail: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}

	return c.JSON(user)
}

// ChangePassword handles PUT /users/password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate user",
		})
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	if err := h.userService.ChangePassword(claims.UserID, req.Password, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: "Error on password change",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Detail: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ChangePhoneNumber handles PUT /users/phone_number.
func (h *UsersHandler) ChangePhoneNumber(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate user",
		})
	}

	var req dto.PhoneNumberChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	if err := h.userService.ChangePhoneNumber(claims.UserID, req.Password, req.NewPhoneNumber); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: "Incorrect Password",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Detail: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
