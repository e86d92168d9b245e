package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// CityCostData holds cost-of-living estimates for one city. Read-only from
// the API surface; rows are seeded or maintained out-of-band.
type CityCostData struct {
	ID       string `json:"id" gorm:"primaryKey"`
	City     string `json:"city" gorm:"uniqueIndex;not null"`
	// CityKey is the folded lookup key so "São Paulo" and "sao paulo" match.
	CityKey  string `json:"-" gorm:"uniqueIndex;not null"`
	Currency string `json:"currency" gorm:"not null;default:'USD'"`

	// Meal tiers: food court, casual sit-down, high-end.
	MealBudget *float64 `json:"meal_budget,omitempty"`
	MealMid    *float64 `json:"meal_mid,omitempty"`
	MealFine   *float64 `json:"meal_fine,omitempty"`

	AvgDrink *float64 `json:"avg_drink,omitempty"` // beer/wine in a bar

	AirportTaxi      *float64 `json:"airport_taxi,omitempty"`
	AirportRideshare *float64 `json:"airport_rideshare,omitempty"`

	DataSource  string    `json:"data_source,omitempty"` // URL or name of the source
	LastUpdated time.Time `json:"last_updated" gorm:"autoUpdateTime"`
}

// CityKeyFor folds a city name to its lookup key: lowercase ASCII.
func CityKeyFor(city string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(city)))
}

// BeforeSave derives the lookup key and rejects unknown currency codes.
func (c *CityCostData) BeforeSave(tx *gorm.DB) error {
	c.CityKey = CityKeyFor(c.City)
	if c.CityKey == "" {
		return fmt.Errorf("city is required")
	}
	if c.Currency == "" {
		c.Currency = "USD"
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("invalid currency code %q: %w", c.Currency, err)
	}
	return nil
}
