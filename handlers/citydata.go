package handlers

import (
	"felt2felt-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCityDataRoutes(app *fiber.App, cityDataService *services.CityDataService) {
	// 🔓 Public cost-of-living lookup
	app.Get("/api/citydata/:city", cityDataService.GetCityData)
}
