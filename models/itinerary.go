package models

import (
	"time"
)

// Itinerary item kinds.
const (
	ItemTypeRoom       = "room"
	ItemTypeTournament = "tournament"
)

// ItineraryItem is a saved trip entry, fully owned by one user. Only the
// owner may list, add or delete items — there is no admin override.
type ItineraryItem struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	ItemType  string    `json:"item_type" gorm:"not null"` // room or tournament
	Name      string    `json:"name" gorm:"not null"`
	Location  string    `json:"location,omitempty"`
	City      string    `json:"city,omitempty"`
	Dates     string    `json:"dates,omitempty"` // display string, e.g. "Jun 18-21"
	Buyin     *float64  `json:"buyin,omitempty"`
	DateAdded time.Time `json:"date_added" gorm:"autoCreateTime"`
}
