package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// GeoPoint is a GeoJSON point persisted as jsonb. Coordinates are stored
// longitude first, then latitude — the GeoJSON axis order, not display order.
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

func NewGeoPoint(longitude, latitude float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{longitude, latitude}}
}

func (p GeoPoint) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *GeoPoint) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported geo point type %T", value)
	}
}

// CashGame is a single structured cash-game offering at a venue,
// e.g. No-Limit Hold'em at $2/$5 with a $1,500 cap.
type CashGame struct {
	ID        string   `json:"id" gorm:"primaryKey"`
	VenueID   string   `json:"venue_id" gorm:"not null;index"`
	Game      string   `json:"game" gorm:"not null;default:'No-Limit Hold''em'"`
	Stakes    string   `json:"stakes" gorm:"not null"` // e.g., "$1/$3", "$2/$5"
	MaxBuyin  *float64 `json:"max_buyin,omitempty"`
	SortOrder int      `json:"sort_order" gorm:"column:sort_order;default:0"`
}

// Venue is a poker room. One model serves both the public destinations page
// and the admin location manager.
type Venue struct {
	ID      string `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"uniqueIndex;not null"`
	Slug    string `json:"slug" gorm:"index"`
	Address string `json:"address" gorm:"not null"`
	City    string `json:"city" gorm:"not null;index"`
	Region  string `json:"region" gorm:"not null"` // state or province
	Country string `json:"country" gorm:"not null"`

	// Resolved from the address by the geocoding pipeline; absent when the
	// lookup failed or was never attempted.
	Geolocation *GeoPoint `json:"geolocation,omitempty" gorm:"type:jsonb"`

	HeroImage string `json:"hero_image,omitempty"`

	// Qualitative descriptors help players find the right vibe.
	Atmosphere         string `json:"atmosphere,omitempty"`          // Upscale, Casual, Tourist-heavy, Local-centric, Grind-focused
	PrimaryPlayerType  string `json:"primary_player_type,omitempty"` // Professional, Recreational, Mixed
	BusinessModel      string `json:"business_model,omitempty"`      // Rake-based, Membership/Time-based
	BusinessModelNotes string `json:"business_model_notes,omitempty"`

	Tables          int        `json:"tables" gorm:"default:0"`
	CashGames       []CashGame `json:"cash_games,omitempty" gorm:"foreignKey:VenueID"`
	TournamentInfo  string     `json:"tournament_info,omitempty" gorm:"type:text"` // free-text description of regular offerings

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// AddressKey is the street+city+region tuple the enrichment pipeline compares
// to decide whether a geocode re-run is needed.
func (v *Venue) AddressKey() string {
	return v.Address + "," + v.City + "," + v.Region
}
