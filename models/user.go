package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Rank labels awarded as users accumulate points from forum activity.
const (
	RankNewHand    = "New Hand"
	RankRegular    = "Regular"
	RankGrinder    = "Grinder"
	RankHighRoller = "High Roller"
	RankLegend     = "Legend"
)

// User is an account on the platform. The very first account ever created is
// promoted to admin during registration (see UserService.Register).
type User struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	Password          string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	IsVerified        bool      `json:"is_verified" gorm:"default:false"`
	VerificationToken string    `json:"-" gorm:"index"` // single-use, cleared on verify
	Role              string    `json:"role" gorm:"default:'user'"`
	Points            int64     `json:"points" gorm:"default:0"`
	Rank              string    `json:"rank" gorm:"default:'New Hand'"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// RankForPoints maps a cumulative point total onto the rank ladder,
// highest threshold first. Points never decrease, so ranks only upgrade.
func RankForPoints(points int64) string {
	switch {
	case points >= 5000:
		return RankLegend
	case points >= 1500:
		return RankHighRoller
	case points >= 500:
		return RankGrinder
	case points >= 100:
		return RankRegular
	default:
		return RankNewHand
	}
}
