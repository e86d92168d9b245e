package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Series status values derived from the start/end dates.
const (
	StatusUpcoming  = "Upcoming"
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)

// Event is a single event inside a tournament series schedule. Dates and
// buy-ins stay as strings to accommodate formats like "Wed 18 - Sat 21 Jun"
// and "$700 + 300".
type Event struct {
	ID          string `json:"id" gorm:"primaryKey"`
	SeriesID    string `json:"series_id" gorm:"not null;index"`
	EventNumber string `json:"event_number,omitempty"`
	EventName   string `json:"event_name" gorm:"not null"`
	Date        string `json:"date,omitempty"`
	Buyin       string `json:"buyin,omitempty"`
	Guarantee   string `json:"guarantee,omitempty"`
	GameType    string `json:"game_type" gorm:"default:'No Limit Hold''em'"`
	Notes       string `json:"notes,omitempty"`
	SortOrder   int    `json:"sort_order" gorm:"column:sort_order;default:0"`
}

// TournamentSeries is a multi-day tournament series, optionally tied to a
// venue. The venue link is a weak reference: deleting the venue leaves the
// series in place with a dangling id.
type TournamentSeries struct {
	ID           string `json:"id" gorm:"primaryKey"`
	SeriesName   string `json:"series_name" gorm:"uniqueIndex;not null"`
	MajorCircuit string `json:"major_circuit,omitempty"` // e.g. WSOP, WPT, EPT
	VenueID      string `json:"venue_id,omitempty" gorm:"index"`

	City    string `json:"city" gorm:"not null;index"`
	Region  string `json:"region" gorm:"not null"`
	Country string `json:"country" gorm:"not null"`

	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`

	// Derived from the dates on every write; client-supplied values are
	// overwritten by BeforeSave.
	Status string `json:"status" gorm:"default:'Upcoming'"`

	OfficialSite string `json:"official_site,omitempty"`

	// Slugified tags group series into meta-series like "las-vegas-summer-2025".
	Tags StringList `json:"tags,omitempty" gorm:"type:jsonb"`

	Schedule []Event `json:"schedule,omitempty" gorm:"foreignKey:SeriesID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SeriesStatus derives the status of a series from its dates. Both bounds are
// inclusive: a series starting and ending at exactly now is Active.
func SeriesStatus(now, start, end time.Time) string {
	switch {
	case end.Before(now):
		return StatusCompleted
	case !start.After(now) && !end.Before(now):
		return StatusActive
	default:
		return StatusUpcoming
	}
}

// ApplyStatus recomputes the derived status in place.
func (t *TournamentSeries) ApplyStatus(now time.Time) {
	t.Status = SeriesStatus(now, t.StartDate, t.EndDate)
}

// BeforeSave enforces the date invariant and recomputes the status on every
// create and update, including batch inserts.
func (t *TournamentSeries) BeforeSave(tx *gorm.DB) error {
	if t.StartDate.After(t.EndDate) {
		return errors.New("start date must not be after end date")
	}
	t.ApplyStatus(time.Now())
	return nil
}
