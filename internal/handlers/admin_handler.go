package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ozgurkara/todo-backend/internal/dto"
	"github.com/ozgurkara/todo-backend/internal/services"
)

// AdminHandler serves admin-only routes. Role gating happens in the
// AdminRequired middleware; handlers here bypass ownership checks.
type AdminHandler struct {
	todoService *services.TodoService
}

func NewAdminHandler(todoService *services.TodoService) *AdminHandler {
	return &AdminHandler{todoService: todoService}
}

// ListTodos handles GET /admin/todo - returns every todo in the system.
func (h *AdminHandler) ListTodos(c *fiber.Ctx) error {
	todos, err := h.todoService.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}
	return c.JSON(todos)
}

// DeleteTodo handles DELETE /admin/todo/:id - force-deletes any todo.
func (h *AdminHandler) DeleteTodo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return todoNotFound(c)
	}

	if err := h.todoService.DeleteAny(uint(id)); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			return todoNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
