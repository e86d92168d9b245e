package services

import (
	"log"

	"felt2felt-api/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 { return &f }

// SeedInitialData populates empty venue and city-cost tables with starter
// rows so a fresh deployment has something to show.
func SeedInitialData(db *gorm.DB) {
	seedVenues(db)
	seedCityData(db)
}

func seedVenues(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Venue{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	log.Println("No destinations found. Seeding initial data...")

	venues := []models.Venue{
		{
			Name: "Bellagio", Address: "3600 S Las Vegas Blvd", City: "Las Vegas", Region: "Nevada", Country: "USA",
			HeroImage:      "https://felt2felt.com/wp-content/uploads/2025/06/VegasStreet-scaled.jpeg",
			Tables:         37,
			TournamentInfo: "Daily & WPT Series",
			Geolocation:    models.NewGeoPoint(-115.1767, 36.1132),
			CashGames: []models.CashGame{
				{Game: "No-Limit Hold'em", Stakes: "$1/$3"},
				{Game: "Pot-Limit Omaha", Stakes: "$1/$2"},
			},
		},
		{
			Name: "Aria", Address: "3730 S Las Vegas Blvd", City: "Las Vegas", Region: "Nevada", Country: "USA",
			Tables:         24,
			TournamentInfo: "High Roller Series",
			Geolocation:    models.NewGeoPoint(-115.1764, 36.1075),
			CashGames: []models.CashGame{
				{Game: "No-Limit Hold'em", Stakes: "$2/$5"},
			},
		},
		{
			Name: "Seminole Hard Rock", Address: "1 Seminole Way", City: "South Florida", Region: "Florida", Country: "USA",
			Tables:         45,
			TournamentInfo: "WPT & SHRPO Series",
			Geolocation:    models.NewGeoPoint(-80.2118, 26.0521),
			CashGames: []models.CashGame{
				{Game: "No-Limit Hold'em", Stakes: "$1/$2"},
				{Game: "H.O.R.S.E.", Stakes: "$10/$20"},
			},
		},
		{
			Name: "The Victoria Casino (The Vic)", Address: "150-162 Edgware Rd", City: "London", Region: "England", Country: "UK",
			Tables:         30,
			TournamentInfo: "UKIPT & GUKPT",
			Geolocation:    models.NewGeoPoint(-0.1636, 51.5171),
			CashGames: []models.CashGame{
				{Game: "No-Limit Hold'em", Stakes: "£1/£2"},
			},
		},
	}

	for i := range venues {
		venues[i].ID = uuid.NewString()
		venues[i].Slug = slug.Make(venues[i].Name)
		for j := range venues[i].CashGames {
			venues[i].CashGames[j].ID = uuid.NewString()
			venues[i].CashGames[j].VenueID = venues[i].ID
			venues[i].CashGames[j].SortOrder = j
		}
		if err := db.Create(&venues[i]).Error; err != nil {
			log.Printf("Error seeding destination %s: %v", venues[i].Name, err)
			return
		}
	}

	log.Println("Destinations seeded!")
}

func seedCityData(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.CityCostData{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	log.Println("No city data found. Seeding initial data for Las Vegas...")

	data := models.CityCostData{
		ID:               uuid.NewString(),
		City:             "Las Vegas",
		Currency:         "USD",
		MealBudget:       floatPtr(20),
		MealMid:          floatPtr(50),
		MealFine:         floatPtr(150),
		AvgDrink:         floatPtr(12),
		AirportTaxi:      floatPtr(30),
		AirportRideshare: floatPtr(25),
		DataSource:       "Internal estimates",
	}

	if err := db.Create(&data).Error; err != nil {
		log.Printf("Error seeding city data: %v", err)
		return
	}

	log.Println("City data seeded!")
}
