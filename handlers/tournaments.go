package handlers

import (
	"felt2felt-api/middleware"
	"felt2felt-api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService, db *gorm.DB, jwtSecret string) {
	// 🔓 Public schedule, soonest first
	app.Get("/api/tournaments", tournamentService.GetAllTournaments)

	// 🔒 Admin-only tournament management + bulk import
	admin := app.Group("/api/admin", middleware.AuthRequired(jwtSecret), middleware.AdminRequired(db))
	admin.Post("/tournaments", tournamentService.CreateTournament)
	admin.Put("/tournaments/:id", tournamentService.UpdateTournament)
	admin.Delete("/tournaments/:id", tournamentService.DeleteTournament)
	admin.Post("/upload-csv", tournamentService.ImportTournaments)
}
