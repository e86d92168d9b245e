package services

import (
	"errors"
	"log"

	"felt2felt-api/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CityDataService struct {
	DB *gorm.DB
}

func NewCityDataService(db *gorm.DB) *CityDataService {
	return &CityDataService{DB: db}
}

// GetCityData looks up cost-of-living data by city name. The lookup is
// accent- and case-insensitive ("São Paulo" matches "sao paulo").
func (s *CityDataService) GetCityData(c *fiber.Ctx) error {
	key := models.CityKeyFor(c.Params("city"))

	var data models.CityCostData
	if err := s.DB.First(&data, "city_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Missing data is expected for most cities; 404 tells the frontend
			// the panel has nothing to show.
			return c.Status(404).JSON(fiber.Map{"msg": "No cost data found for this city."})
		}
		log.Printf("ERROR fetching city data for %q: %v", key, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(data)
}
