package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/database"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	maxSlugAttempts  = 16
	MaxPollDays      = 366
	pollDayBatchSize = 500
)

type PollDraft struct {
	Title       string
	Organizer   string
	Description string
	DateFrom    time.Time
	DateTo      time.Time
}

func ValidatePollDraft(draft PollDraft) error {
	fields := make(map[string]string)
	if len(strings.TrimSpace(draft.Title)) == 0 {
		fields["title"] = "Title is required."
	}
	if len(strings.TrimSpace(draft.Organizer)) == 0 {
		fields["organizer"] = "Organizer is required."
	}
	if draft.DateFrom.IsZero() {
		fields["date_from"] = "Start date is required."
	}
	if draft.DateTo.IsZero() {
		fields["date_to"] = "End date is required."
	}
	if !draft.DateFrom.IsZero() && !draft.DateTo.IsZero() &&
		models.TruncateDay(draft.DateTo).Before(models.TruncateDay(draft.DateFrom)) {
		fields["date_to"] = "End date must be on or after the start date."
	} else if !draft.DateFrom.IsZero() && !draft.DateTo.IsZero() &&
		countPollDays(draft.DateFrom, draft.DateTo) > MaxPollDays {
		fields["date_to"] = fmt.Sprintf("A poll can cover at most %d days.", MaxPollDays)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func countPollDays(from, to time.Time) int {
	span := models.TruncateDay(to).Sub(models.TruncateDay(from))
	return int(span/(24*time.Hour)) + 1
}

// NewPoll stores the poll under a fresh slug and expands its days once the
// insert has committed.
func NewPoll(draft PollDraft) (models.Poll, error) {
	if err := ValidatePollDraft(draft); err != nil {
		return models.Poll{}, err
	}

	poll := models.Poll{
		Title:       strings.TrimSpace(draft.Title),
		Organizer:   strings.TrimSpace(draft.Organizer),
		Description: strings.TrimSpace(draft.Description),
		DateFrom:    datatypes.Date(models.TruncateDay(draft.DateFrom)),
		DateTo:      datatypes.Date(models.TruncateDay(draft.DateTo)),
	}

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		slug, err := pickUnusedSlug(tx)
		if err != nil {
			return err
		}
		poll.Slug = slug
		return tx.Create(&poll).Error
	}); err != nil {
		return poll, fmt.Errorf("unable to create poll: %v", err)
	}

	days, err := GeneratePollDays(poll)
	if err != nil {
		// Days are generated again on the first read.
		log.Error().Err(err).Str("slug", poll.Slug).Msg("An error occurred when generating poll days...")
	} else {
		poll.Days = days
	}

	log.Info().Str("slug", poll.Slug).Int("days", len(poll.Days)).Msg("Created a new poll.")

	return poll, nil
}

func pickUnusedSlug(tx *gorm.DB) (string, error) {
	for i := 0; i < maxSlugAttempts; i++ {
		slug := GenerateSlug()
		var count int64
		if err := tx.Model(&models.Poll{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
	}
	return "", fmt.Errorf("unable to find an unused slug after %d attempts", maxSlugAttempts)
}

// GeneratePollDays inserts one row per day of the poll range. Existing rows
// are left alone so calling it again changes nothing.
func GeneratePollDays(poll models.Poll) ([]models.PollDay, error) {
	days := lo.Map(poll.DayRange(), func(item time.Time, idx int) models.PollDay {
		return models.PollDay{
			PollID: poll.ID,
			Day:    datatypes.Date(item),
			Order:  uint(idx),
		}
	})
	if len(days) == 0 {
		return nil, nil
	}

	if err := database.C.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&days, pollDayBatchSize).Error; err != nil {
		return nil, fmt.Errorf("unable to generate poll days: %v", err)
	}

	return queryPollDays(poll)
}

func queryPollDays(poll models.Poll) ([]models.PollDay, error) {
	var days []models.PollDay
	if err := database.C.Where("poll_id = ?", poll.ID).Order("day ASC").Find(&days).Error; err != nil {
		return nil, fmt.Errorf("unable to list poll days: %v", err)
	}
	return days, nil
}

// ListPollDays returns the days ordered by date, expanding them first when a
// poll somehow has none.
func ListPollDays(poll models.Poll) ([]models.PollDay, error) {
	days, err := queryPollDays(poll)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		log.Warn().Str("slug", poll.Slug).Msg("Poll has no days, generating them now...")
		return GeneratePollDays(poll)
	}
	return days, nil
}

func GetPollBySlug(slug string) (models.Poll, error) {
	if poll, ok := getCachedPoll(slug); ok {
		return poll, nil
	}

	var poll models.Poll
	if err := database.C.Where("slug = ?", slug).First(&poll).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return poll, ErrPollNotFound
		}
		return poll, fmt.Errorf("unable to get poll: %v", err)
	}

	setCachedPoll(poll)

	return poll, nil
}

func GetLatestPoll() (models.Poll, error) {
	var poll models.Poll
	if err := database.C.Order("created_at DESC, id DESC").First(&poll).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return poll, ErrPollNotFound
		}
		return poll, fmt.Errorf("unable to get latest poll: %v", err)
	}
	return poll, nil
}
