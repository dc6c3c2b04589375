package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ozgurkara/todo-backend/internal/config"
	"github.com/ozgurkara/todo-backend/internal/handlers"
	"github.com/ozgurkara/todo-backend/internal/middleware"
)

// Setup registers all route groups. Paths mirror the public API contract:
// /auth/* and /healthy are open, everything else requires a bearer token,
// and /admin/* additionally requires the admin role.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	usersHandler *handlers.UsersHandler,
	todosHandler *handlers.TodosHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/healthy", healthHandler.Check)

	auth := app.Group("/auth")
	auth.Post("/", authHandler.CreateUser)
	auth.Post("/token", authHandler.Login)

	users := app.Group("/users", middleware.JWTProtected(cfg))
	users.Get("/", usersHandler.Me)
	users.Put("/password", usersHandler.ChangePassword)
	users.Put("/phone_number", usersHandler.ChangePhoneNumber)

	todos := app.Group("/todos", middleware.JWTProtected(cfg))
	todos.Get("/", todosHandler.List)
	todos.Get("/todo/:id", todosHandler.Get)
	todos.Post("/todo", todosHandler.Create)
	todos.Put("/todo/:id", todosHandler.Update)
	todos.Delete("/todo/:id", todosHandler.Delete)

	admin := app.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired())
	admin.Get("/todo", adminHandler.ListTodos)
	admin.Delete("/todo/:id", adminHandler.DeleteTodo)
}
