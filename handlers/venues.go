package handlers

import (
	"felt2felt-api/middleware"
	"felt2felt-api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVenueRoutes(app *fiber.App, venueService *services.VenueService, db *gorm.DB, jwtSecret string) {
	// 🔓 Public catalog
	app.Get("/api/destinations", venueService.GetAllDestinations)

	// 🔒 Admin-only venue management
	admin := app.Group("/api/admin", middleware.AuthRequired(jwtSecret), middleware.AdminRequired(db))
	admin.Post("/locations", venueService.CreateLocation)
	admin.Put("/locations/:id", venueService.UpdateLocation)
	admin.Delete("/locations/:id", venueService.DeleteLocation)
	admin.Post("/locations/:id/hero-image", venueService.UploadHeroImage)
}
