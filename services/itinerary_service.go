package services

import (
	"errors"
	"log"

	"felt2felt-api/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItineraryService struct {
	DB *gorm.DB
}

func NewItineraryService(db *gorm.DB) *ItineraryService {
	return &ItineraryService{DB: db}
}

// GetItems lists the caller's own itinerary, newest first.
func (s *ItineraryService) GetItems(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var items []models.ItineraryItem
	err := s.DB.Where("user_id = ?", userID).
		Order("date_added DESC").
		Find(&items).Error
	if err != nil {
		log.Printf("ERROR fetching itinerary for %s: %v", userID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}
	return c.JSON(items)
}

// AddItem creates an item owned by the caller; the owner comes from the
// token, never the body.
func (s *ItineraryService) AddItem(c *fiber.Ctx) error {
	type Req struct {
		ItemType string   `json:"item_type"`
		Name     string   `json:"name"`
		Location string   `json:"location"`
		City     string   `json:"city"`
		Dates    string   `json:"dates"`
		Buyin    *float64 `json:"buyin"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}
	if req.ItemType == "" || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"errors": []fiber.Map{
			{"msg": "item_type and name are required", "param": "name"},
		}})
	}

	userID, _ := c.Locals("user_id").(string)

	item := models.ItineraryItem{
		ID:       uuid.NewString(),
		UserID:   userID,
		ItemType: req.ItemType,
		Name:     req.Name,
		Location: req.Location,
		City:     req.City,
		Dates:    req.Dates,
		Buyin:    req.Buyin,
	}

	if err := s.DB.Create(&item).Error; err != nil {
		log.Printf("ERROR creating itinerary item for %s: %v", userID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(item)
}

// DeleteItem removes an item only if the caller owns it.
func (s *ItineraryService) DeleteItem(c *fiber.Ctx) error {
	var item models.ItineraryItem
	if err := s.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "Item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	userID, _ := c.Locals("user_id").(string)
	if item.UserID != userID {
		return c.Status(401).JSON(fiber.Map{"msg": "Not authorized"})
	}

	if err := s.DB.Delete(&item).Error; err != nil {
		log.Printf("ERROR deleting itinerary item %s: %v", item.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(fiber.Map{"msg": "Item removed"})
}
