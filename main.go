package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"felt2felt-api/handlers"
	"felt2felt-api/models"
	"felt2felt-api/services"
	"felt2felt-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // 20MB, covers hero images and CSV uploads
	})

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// TranslateError maps driver unique-violation errors to gorm.ErrDuplicatedKey,
	// which the venue and tournament services rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Venue{},
		&models.CashGame{},
		&models.TournamentSeries{},
		&models.Event{},
		&models.Post{},
		&models.Comment{},
		&models.ItineraryItem{},
		&models.CityCostData{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	// Hero image storage is optional; without credentials the upload endpoint
	// returns an error but everything else works.
	r2cfg := utils.R2Config{
		AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
		Bucket:          os.Getenv("R2_BUCKET"),
		CDNBaseURL:      os.Getenv("R2_CDN_BASE_URL"),
	}
	if r2cfg.AccountID == "" || r2cfg.AccessKeyID == "" {
		log.Println("⚠️  R2 credentials not set, hero image uploads disabled")
	} else if err := utils.InitR2(r2cfg); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:5000"
	}

	mailer := services.NewMailer(os.Getenv("SENDGRID_API_KEY"), os.Getenv("FROM_EMAIL"))
	geocoder := services.NewMapboxClient(os.Getenv("MAPBOX_API_KEY"))

	userService := services.NewUserService(db, mailer, jwtSecret, backendURL)
	venueService := services.NewVenueService(db, geocoder)
	tournamentService := services.NewTournamentService(db)
	postService := services.NewPostService(db)
	itineraryService := services.NewItineraryService(db)
	cityDataService := services.NewCityDataService(db)

	services.SeedInitialData(db)

	tournamentService.StartRetentionScheduler()

	handlers.SetupUserRoutes(app, userService)
	handlers.SetupVenueRoutes(app, venueService, db, jwtSecret)
	handlers.SetupTournamentRoutes(app, tournamentService, db, jwtSecret)
	handlers.SetupPostRoutes(app, postService, db, jwtSecret)
	handlers.SetupItineraryRoutes(app, itineraryService, jwtSecret)
	handlers.SetupCityDataRoutes(app, cityDataService)

	app.Static("/", "./public")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Felt2Felt API is running...")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
