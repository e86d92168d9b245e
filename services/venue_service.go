package services

import (
	"errors"
	"log"
	"path/filepath"

	"felt2felt-api/models"
	"felt2felt-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type VenueService struct {
	DB       *gorm.DB
	Geocoder Geocoder
}

func NewVenueService(db *gorm.DB, geocoder Geocoder) *VenueService {
	return &VenueService{DB: db, Geocoder: geocoder}
}

// venueRequest is the JSON body accepted by the admin create/update routes.
type venueRequest struct {
	Name               string  `json:"name"`
	Address            string  `json:"address"`
	City               string  `json:"city"`
	Region             string  `json:"region"`
	Country            string  `json:"country"`
	HeroImage          string  `json:"hero_image"`
	Atmosphere         string  `json:"atmosphere"`
	PrimaryPlayerType  string  `json:"primary_player_type"`
	BusinessModel      string  `json:"business_model"`
	BusinessModelNotes string  `json:"business_model_notes"`
	Tables             int     `json:"tables"`
	TournamentInfo     string  `json:"tournament_info"`
	CashGames          []struct {
		Game     string   `json:"game"`
		Stakes   string   `json:"stakes"`
		MaxBuyin *float64 `json:"max_buyin"`
	} `json:"cash_games"`
}

func (r *venueRequest) validate() []fiber.Map {
	var errs []fiber.Map
	if r.Name == "" {
		errs = append(errs, fiber.Map{"msg": "Location name is required", "param": "name"})
	}
	if r.Address == "" {
		errs = append(errs, fiber.Map{"msg": "Address is required", "param": "address"})
	}
	if r.City == "" {
		errs = append(errs, fiber.Map{"msg": "City is required", "param": "city"})
	}
	if r.Region == "" {
		errs = append(errs, fiber.Map{"msg": "Region/State is required", "param": "region"})
	}
	if r.Country == "" {
		errs = append(errs, fiber.Map{"msg": "Country is required", "param": "country"})
	}
	return errs
}

// geocode resolves the address to a point, best-effort. A failed or empty
// lookup logs and returns nil — venue persistence never blocks on it.
func (s *VenueService) geocode(address, city, region string) *models.GeoPoint {
	lon, lat, ok, err := s.Geocoder.Forward(address, city, region)
	if err != nil {
		log.Printf("⚠️ Geocoding failed for %s, %s: %v", address, city, err)
		return nil
	}
	if !ok {
		return nil
	}
	return models.NewGeoPoint(lon, lat)
}

// GetAllDestinations is the public venue list consumed by the destinations
// page and the trip designer widget.
func (s *VenueService) GetAllDestinations(c *fiber.Ctx) error {
	var venues []models.Venue
	err := s.DB.
		Preload("CashGames", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"sort_order\" ASC")
		}).
		Find(&venues).Error
	if err != nil {
		log.Printf("ERROR fetching venues: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}
	return c.JSON(venues)
}

func (s *VenueService) CreateLocation(c *fiber.Ctx) error {
	var req venueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}
	if errs := req.validate(); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	venue := models.Venue{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Slug:               slug.Make(req.Name),
		Address:            req.Address,
		City:               req.City,
		Region:             req.Region,
		Country:            req.Country,
		HeroImage:          req.HeroImage,
		Atmosphere:         req.Atmosphere,
		PrimaryPlayerType:  req.PrimaryPlayerType,
		BusinessModel:      req.BusinessModel,
		BusinessModelNotes: req.BusinessModelNotes,
		Tables:             req.Tables,
		TournamentInfo:     req.TournamentInfo,
		Geolocation:        s.geocode(req.Address, req.City, req.Region),
	}

	var cashGames []models.CashGame
	for i, cg := range req.CashGames {
		game := cg.Game
		if game == "" {
			game = "No-Limit Hold'em"
		}
		cashGames = append(cashGames, models.CashGame{
			ID:        uuid.NewString(),
			VenueID:   venue.ID,
			Game:      game,
			Stakes:    cg.Stakes,
			MaxBuyin:  cg.MaxBuyin,
			SortOrder: i,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("CashGames").Create(&venue).Error; err != nil {
			return err
		}
		for i := range cashGames {
			if err := tx.Create(&cashGames[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(400).JSON(fiber.Map{"msg": "A location with this name already exists."})
		}
		log.Printf("ERROR creating venue: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	venue.CashGames = cashGames
	return c.JSON(venue)
}

func (s *VenueService) UpdateLocation(c *fiber.Ctx) error {
	var venue models.Venue
	if err := s.DB.First(&venue, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "Location not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	var req venueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}
	if errs := req.validate(); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	// Re-run geocoding only when the street+city+region tuple changed.
	oldKey := venue.AddressKey()
	venue.Name = req.Name
	venue.Slug = slug.Make(req.Name)
	venue.Address = req.Address
	venue.City = req.City
	venue.Region = req.Region
	venue.Country = req.Country
	venue.Atmosphere = req.Atmosphere
	venue.PrimaryPlayerType = req.PrimaryPlayerType
	venue.BusinessModel = req.BusinessModel
	venue.BusinessModelNotes = req.BusinessModelNotes
	venue.Tables = req.Tables
	venue.TournamentInfo = req.TournamentInfo
	if req.HeroImage != "" {
		venue.HeroImage = req.HeroImage
	}

	if venue.AddressKey() != oldKey {
		if point := s.geocode(req.Address, req.City, req.Region); point != nil {
			venue.Geolocation = point
		}
	}

	var cashGames []models.CashGame
	for i, cg := range req.CashGames {
		game := cg.Game
		if game == "" {
			game = "No-Limit Hold'em"
		}
		cashGames = append(cashGames, models.CashGame{
			ID:        uuid.NewString(),
			VenueID:   venue.ID,
			Game:      game,
			Stakes:    cg.Stakes,
			MaxBuyin:  cg.MaxBuyin,
			SortOrder: i,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("CashGames").Save(&venue).Error; err != nil {
			return err
		}
		// Replace the embedded cash-game rows wholesale.
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&models.CashGame{}).Error; err != nil {
			return err
		}
		for i := range cashGames {
			if err := tx.Create(&cashGames[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(400).JSON(fiber.Map{"msg": "A location with this name already exists."})
		}
		log.Printf("ERROR updating venue %s: %v", venue.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	venue.CashGames = cashGames
	return c.JSON(venue)
}

// DeleteLocation removes a venue. Tournament series referencing it keep their
// venue id — the reference is weak, nothing cascades.
func (s *VenueService) DeleteLocation(c *fiber.Ctx) error {
	var venue models.Venue
	if err := s.DB.First(&venue, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "Location not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&models.CashGame{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		log.Printf("ERROR deleting venue %s: %v", venue.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(fiber.Map{"msg": "Location removed"})
}

// UploadHeroImage stores a hero photo in R2 and saves the public URL.
func (s *VenueService) UploadHeroImage(c *fiber.Ctx) error {
	var venue models.Venue
	if err := s.DB.First(&venue, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "Location not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	fileHeader, err := c.FormFile("hero_image")
	if err != nil || fileHeader.Size == 0 {
		return c.Status(400).JSON(fiber.Map{"msg": "hero_image file is required"})
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := "venues/hero/" + uuid.NewString() + ext

	url, err := utils.UploadFileToR2(fileHeader, key)
	if err != nil {
		log.Printf("ERROR uploading hero image for venue %s: %v", venue.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "failed to upload hero image"})
	}

	venue.HeroImage = url
	if err := s.DB.Save(&venue).Error; err != nil {
		log.Printf("ERROR saving hero image URL for venue %s: %v", venue.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(venue)
}
