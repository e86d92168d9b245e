// services/scheduler.go
package services

import (
	"log"
	"time"

	"felt2felt-api/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// StartRetentionScheduler runs the nightly cleanup: every tournament series
// whose end date has passed is deleted, schedule rows included. A failed run
// logs and waits for the next firing; it never brings the process down.
func (s *TournamentService) StartRetentionScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Daily at 2:00 AM
	_, _ = sched.NewJob(
		gocron.CronJob("0 2 * * *", false),
		gocron.NewTask(func() {
			log.Println("Running scheduled job: Cleaning up expired tournaments...")

			now := time.Now()
			var deleted int64
			err := s.DB.Transaction(func(tx *gorm.DB) error {
				var ids []string
				if err := tx.Model(&models.TournamentSeries{}).
					Where("end_date < ?", now).
					Pluck("id", &ids).Error; err != nil {
					return err
				}
				if len(ids) == 0 {
					return nil
				}
				if err := tx.Where("series_id IN ?", ids).Delete(&models.Event{}).Error; err != nil {
					return err
				}
				result := tx.Where("id IN ?", ids).Delete(&models.TournamentSeries{})
				deleted = result.RowsAffected
				return result.Error
			})
			if err != nil {
				log.Printf("Error during scheduled tournament cleanup: %v", err)
				return
			}

			if deleted > 0 {
				log.Printf("Successfully deleted %d expired tournaments.", deleted)
			} else {
				log.Println("No expired tournaments found to delete.")
			}
		}),
	)

	log.Println("Tournament cleanup job scheduled to run daily at 2:00 AM.")
}
