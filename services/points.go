package services

import (
	"log"

	"felt2felt-api/models"

	"gorm.io/gorm"
)

// Point values for content-creation actions.
const (
	PointsForPost    = 10
	PointsForComment = 2
)

// AwardPoints adds points to a user and recomputes their rank in the same
// transaction. Ranks only move up because points only ever increase.
func AwardPoints(db *gorm.DB, userID string, points int64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		user.Points += points
		user.Rank = models.RankForPoints(user.Points)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		log.Printf("🎮 Points awarded: %s → points=%d, rank=%s", user.Email, user.Points, user.Rank)
		return nil
	})
}
