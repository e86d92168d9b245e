package services

import (
	"errors"
	"log"
	"time"

	"felt2felt-api/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type TournamentService struct {
	DB *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{DB: db}
}

// tournamentRequest is the JSON body for admin create/update.
type tournamentRequest struct {
	SeriesName   string   `json:"series_name"`
	MajorCircuit string   `json:"major_circuit"`
	VenueID      string   `json:"venue_id"`
	City         string   `json:"city"`
	Region       string   `json:"region"`
	Country      string   `json:"country"`
	StartDate    string   `json:"start_date"` // RFC3339 or YYYY-MM-DD
	EndDate      string   `json:"end_date"`
	OfficialSite string   `json:"official_site"`
	Tags         []string `json:"tags"`
	Schedule     []struct {
		EventNumber string `json:"event_number"`
		EventName   string `json:"event_name"`
		Date        string `json:"date"`
		Buyin       string `json:"buyin"`
		Guarantee   string `json:"guarantee"`
		GameType    string `json:"game_type"`
		Notes       string `json:"notes"`
	} `json:"schedule"`
}

func (r *tournamentRequest) validate() []fiber.Map {
	var errs []fiber.Map
	if r.SeriesName == "" {
		errs = append(errs, fiber.Map{"msg": "Series name is required", "param": "series_name"})
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
	if _, err := parseDate(r.StartDate); err != nil {
		errs = append(errs, fiber.Map{"msg": "Start date is required", "param": "start_date"})
	}
	if _, err := parseDate(r.EndDate); err != nil {
		errs = append(errs, fiber.Map{"msg": "End date is required", "param": "end_date"})
	}
	return errs
}

// parseDate accepts RFC3339 timestamps or plain dates.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// normalizeTags slugifies every tag so "Las Vegas Summer 2025" and
// "las-vegas-summer-2025" land in the same meta-series.
func normalizeTags(tags []string) models.StringList {
	var out models.StringList
	for _, t := range tags {
		if normalized := slug.Make(t); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

// GetAllTournaments is the public list, upcoming events first.
func (s *TournamentService) GetAllTournaments(c *fiber.Ctx) error {
	var tournaments []models.TournamentSeries
	err := s.DB.
		Preload("Schedule", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"sort_order\" ASC")
		}).
		Order("start_date ASC").
		Find(&tournaments).Error
	if err != nil {
		log.Printf("ERROR fetching tournaments: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}
	return c.JSON(tournaments)
}

func (s *TournamentService) CreateTournament(c *fiber.Ctx) error {
	var req tournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}
	if errs := req.validate(); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	startDate, _ := parseDate(req.StartDate)
	endDate, _ := parseDate(req.EndDate)
	if startDate.After(endDate) {
		return c.Status(400).JSON(fiber.Map{"errors": []fiber.Map{
			{"msg": "Start date must not be after end date", "param": "start_date"},
		}})
	}

	series := models.TournamentSeries{
		ID:           uuid.NewString(),
		SeriesName:   req.SeriesName,
		MajorCircuit: req.MajorCircuit,
		VenueID:      req.VenueID,
		City:         req.City,
		Region:       req.Region,
		Country:      req.Country,
		StartDate:    startDate,
		EndDate:      endDate,
		OfficialSite: req.OfficialSite,
		Tags:         normalizeTags(req.Tags),
	}

	var events []models.Event
	for i, ev := range req.Schedule {
		if ev.EventName == "" {
			return c.Status(400).JSON(fiber.Map{"errors": []fiber.Map{
				{"msg": "Event name is required", "param": "schedule"},
			}})
		}
		gameType := ev.GameType
		if gameType == "" {
			gameType = "No Limit Hold'em"
		}
		events = append(events, models.Event{
			ID:          uuid.NewString(),
			SeriesID:    series.ID,
			EventNumber: ev.EventNumber,
			EventName:   ev.EventName,
			Date:        ev.Date,
			Buyin:       ev.Buyin,
			Guarantee:   ev.Guarantee,
			GameType:    gameType,
			Notes:       ev.Notes,
			SortOrder:   i,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Schedule").Create(&series).Error; err != nil {
			return err
		}
		for i := range events {
			if err := tx.Create(&events[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(400).JSON(fiber.Map{"msg": "A tournament with this series name already exists."})
		}
		log.Printf("ERROR creating tournament: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	series.Schedule = events
	return c.JSON(series)
}

func (s *TournamentService) UpdateTournament(c *fiber.Ctx) error {
	var series models.TournamentSeries
	if err := s.DB.First(&series, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "Tournament not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	var req tournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}
	if errs := req.validate(); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	startDate, _ := parseDate(req.StartDate)
	endDate, _ := parseDate(req.EndDate)
	if startDate.After(endDate) {
		return c.Status(400).JSON(fiber.Map{"errors": []fiber.Map{
			{"msg": "Start date must not be after end date", "param": "start_date"},
		}})
	}

	series.SeriesName = req.SeriesName
	series.MajorCircuit = req.MajorCircuit
	series.VenueID = req.VenueID
	series.City = req.City
	series.Region = req.Region
	series.Country = req.Country
	series.StartDate = startDate
	series.EndDate = endDate
	series.OfficialSite = req.OfficialSite
	series.Tags = normalizeTags(req.Tags)
	// Status is recomputed by the model's BeforeSave hook; anything the client
	// sent is ignored.

	var events []models.Event
	for i, ev := range req.Schedule {
		gameType := ev.GameType
		if gameType == "" {
			gameType = "No Limit Hold'em"
		}
		events = append(events, models.Event{
			ID:          uuid.NewString(),
			SeriesID:    series.ID,
			EventNumber: ev.EventNumber,
			EventName:   ev.EventName,
			Date:        ev.Date,
			Buyin:       ev.Buyin,
			Guarantee:   ev.Guarantee,
			GameType:    gameType,
			Notes:       ev.Notes,
			SortOrder:   i,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Schedule").Save(&series).Error; err != nil {
			return err
		}
		if len(req.Schedule) > 0 {
			if err := tx.Where("series_id = ?", series.ID).Delete(&models.Event{}).Error; err != nil {
				return err
			}
			for i := range events {
				if err := tx.Create(&events[i]).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(400).JSON(fiber.Map{"msg": "A tournament with this series name already exists."})
		}
		log.Printf("ERROR updating tournament %s: %v", series.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	if len(events) > 0 {
		series.Schedule = events
	}
	return c.JSON(series)
}

func (s *TournamentService) DeleteTournament(c *fiber.Ctx) error {
	var series models.TournamentSeries
	if err := s.DB.First(&series, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "Tournament not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("series_id = ?", series.ID).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&series).Error
	})
	if err != nil {
		log.Printf("ERROR deleting tournament %s: %v", series.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(fiber.Map{"msg": "Tournament removed"})
}
