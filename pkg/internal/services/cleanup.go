package services

import (
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/database"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func DoAutoDatabaseCleanup() {
	retention := viper.GetDuration("cleanup.retention")
	if retention <= 0 {
		return
	}

	log.Debug().Dur("retention", retention).Msg("Now cleaning up expired polls...")

	deadline := models.TruncateDay(time.Now().Add(-retention))
	count, err := DeleteExpiredPolls(deadline)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when cleaning up expired polls...")
		return
	}

	log.Info().Int64("count", count).Msg("Clean up expired polls completed.")
}

// DeleteExpiredPolls removes every poll whose last day is before deadline,
// along with its days, ballots and availabilities.
func DeleteExpiredPolls(deadline time.Time) (int64, error) {
	var polls []models.Poll
	if err := database.C.
		Where("date_to < ?", datatypes.Date(models.TruncateDay(deadline))).
		Find(&polls).Error; err != nil {
		return 0, fmt.Errorf("unable to list expired polls: %v", err)
	}
	if len(polls) == 0 {
		return 0, nil
	}

	pollIDs := lo.Map(polls, func(item models.Poll, _ int) uint {
		return item.ID
	})

	var count int64
	if err := database.C.Transaction(func(tx *gorm.DB) error {
		var ballotIDs []uint
		if err := tx.Model(&models.Ballot{}).Where("poll_id IN ?", pollIDs).Pluck("id", &ballotIDs).Error; err != nil {
			return err
		}
		if len(ballotIDs) > 0 {
			if err := tx.Where("ballot_id IN ?", ballotIDs).Delete(&models.Availability{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("poll_id IN ?", pollIDs).Delete(&models.Ballot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("poll_id IN ?", pollIDs).Delete(&models.PollDay{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", pollIDs).Delete(&models.Poll{})
		count = result.RowsAffected
		return result.Error
	}); err != nil {
		return 0, fmt.Errorf("unable to delete expired polls: %v", err)
	}

	for _, poll := range polls {
		evictCachedPoll(poll.Slug)
	}

	return count, nil
}
