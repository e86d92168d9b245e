package handlers

import (
	"felt2felt-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	// 🔓 Public routes — registration, email verification, login
	users := app.Group("/api/users")
	users.Post("/register", userService.Register)
	users.Get("/verify/:token", userService.Verify)
	users.Post("/login", userService.Login)
}
