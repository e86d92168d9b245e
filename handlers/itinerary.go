package handlers

import (
	"felt2felt-api/middleware"
	"felt2felt-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupItineraryRoutes(app *fiber.App, itineraryService *services.ItineraryService, jwtSecret string) {
	// 🔐 Everything here is scoped to the token's owner
	secured := app.Group("/api/itinerary", middleware.AuthRequired(jwtSecret))
	secured.Get("/", itineraryService.GetItems)
	secured.Post("/", itineraryService.AddItem)
	secured.Delete("/:id", itineraryService.DeleteItem)
}
