package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ozgurkara/todo-backend/internal/auth"
	"github.com/ozgurkara/todo-backend/internal/dto"
	"github.com/ozgurkara/todo-backend/internal/services"
)

type TodosHandler struct {
	todoService *services.TodoService
}

func NewTodosHandler(todoService *services.TodoService) *TodosHandler {
	return &TodosHandler{todoService: todoService}
}

// List handles GET /todos/ - returns the caller's todos.
func (h *TodosHandler) List(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate user",
		})
	}

	todos, err := h.todoService.ListByOwner(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}
	return c.JSON(todos)
}

// Get handles GET /todos/todo/:id - returns one of the caller's todos.
func (h *TodosHandler) Get(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate user",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return todoNotFound(c)
	}

	todo, err := h.todoService.GetForOwner(uint(id), claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			return todoNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}
	return c.JSON(todo)
}

// Create handles POST /todos/todo - creates a todo owned by the caller.
func (h *TodosHandler) Create(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate user",
		})
	}

	var req dto.TodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	todo, err := h.todoService.Create(claims.UserID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Failed to create todo",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(todo)
}

// Update handles PUT /todos/todo/:id - full replace of the caller's todo.
func (h *TodosHandler) Update(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate user",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return todoNotFound(c)
	}

	var req dto.TodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	if err := h.todoService.Update(uint(id), claims.UserID, &req); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			return todoNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete handles DELETE /todos/todo/:id - removes the caller's todo.
func (h *TodosHandler) Delete(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate user",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return todoNotFound(c)
	}

	if err := h.todoService.Delete(uint(id), claims.UserID); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			return todoNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Absence and foreign ownership share one message on purpose: the response
// must not reveal whether another user's todo exists.
func todoNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Detail: "Todo not found.",
	})
}
