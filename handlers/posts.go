package handlers

import (
	"felt2felt-api/middleware"
	"felt2felt-api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPostRoutes(app *fiber.App, postService *services.PostService, db *gorm.DB, jwtSecret string) {
	// 🔓 Public forum feed
	app.Get("/api/posts", postService.GetAllPosts)

	// 🔐 Authenticated writes
	secured := app.Group("/api/posts", middleware.AuthRequired(jwtSecret))
	secured.Post("/", postService.CreatePost)
	secured.Post("/comment/:id", postService.CreateComment)

	// 🔒 Admin moderation
	admin := app.Group("/api/admin", middleware.AuthRequired(jwtSecret), middleware.AdminRequired(db))
	admin.Delete("/posts/:id", postService.AdminDeletePost)
}
