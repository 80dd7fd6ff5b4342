package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/database"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	MaxNicknameLength   = 80
	MaxUserCookieLength = 100
)

// VoteSubmission is one participant's answer to a poll. Days missing from
// Statuses are stored as unanswered, which is not the same as an explicit No.
type VoteSubmission struct {
	Cookie   string
	Nickname string
	Statuses map[uint]models.VoteChoice
}

func DayFieldName(day models.PollDay) string {
	return fmt.Sprintf("day_%d", day.ID)
}

// ParseVoteStatuses reads the day_<id> fields of a vote form for the given
// days. Unset, malformed and out of range values are dropped.
func ParseVoteStatuses(days []models.PollDay, lookup func(key string) string) map[uint]models.VoteChoice {
	statuses := make(map[uint]models.VoteChoice)
	for _, day := range days {
		raw := strings.TrimSpace(lookup(DayFieldName(day)))
		if choice, ok := models.ParseVoteChoice(raw); ok {
			statuses[day.ID] = choice
		}
	}
	return statuses
}

func NormalizeNickname(raw string) string {
	nickname := strings.TrimSpace(raw)
	if runes := []rune(nickname); len(runes) > MaxNicknameLength {
		nickname = strings.TrimSpace(string(runes[:MaxNicknameLength]))
	}
	return nickname
}

// IsUsableUserCookie tells whether a cookie value can be stored as the
// identity of a ballot.
func IsUsableUserCookie(cookie string) bool {
	return len(cookie) > 0 && len(cookie) <= MaxUserCookieLength
}

// SubmitVote upserts the ballot of the cookie owner and rewrites its
// availabilities with exactly the submitted days. The second return value
// reports whether the ballot was created by this call.
func SubmitVote(slug string, vote VoteSubmission) (models.Ballot, bool, error) {
	if !IsUsableUserCookie(vote.Cookie) {
		return models.Ballot{}, false, fmt.Errorf("participant cookie must be 1 to %d characters", MaxUserCookieLength)
	}

	poll, err := GetPollBySlug(slug)
	if err != nil {
		return models.Ballot{}, false, err
	}
	days, err := ListPollDays(poll)
	if err != nil {
		return models.Ballot{}, false, err
	}

	nickname := NormalizeNickname(vote.Nickname)
	statuses := filterVoteStatuses(days, vote.Statuses)

	var ballot models.Ballot
	var created bool
	err = database.C.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		candidate := models.Ballot{
			PollID:      poll.ID,
			UserCookie:  vote.Cookie,
			Nickname:    nickname,
			SubmittedAt: now,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&candidate)
		if result.Error != nil {
			return fmt.Errorf("unable to create ballot: %v", result.Error)
		}
		created = result.RowsAffected > 0

		// The lock makes a second submission with the same cookie wait until
		// this rewrite has committed.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("poll_id = ? AND user_cookie = ?", poll.ID, vote.Cookie).
			First(&ballot).Error; err != nil {
			return fmt.Errorf("unable to lock ballot: %v", err)
		}

		if !created {
			changes := map[string]any{"updated_at": now}
			if len(nickname) > 0 {
				changes["nickname"] = nickname
			}
			if err := tx.Model(&ballot).Updates(changes).Error; err != nil {
				return fmt.Errorf("unable to update ballot: %v", err)
			}
			if len(nickname) > 0 {
				ballot.Nickname = nickname
			}
		}

		if err := tx.Where("ballot_id = ?", ballot.ID).Delete(&models.Availability{}).Error; err != nil {
			return fmt.Errorf("unable to clear availabilities: %v", err)
		}

		availabilities := buildAvailabilities(ballot.ID, statuses)
		if len(availabilities) > 0 {
			if err := tx.Create(&availabilities).Error; err != nil {
				return fmt.Errorf("unable to save availabilities: %v", err)
			}
		}
		ballot.Availabilities = availabilities

		return nil
	})
	if err != nil {
		return ballot, false, err
	}

	log.Debug().
		Str("slug", poll.Slug).
		Uint("ballot", ballot.ID).
		Bool("created", created).
		Int("answers", len(ballot.Availabilities)).
		Msg("Ballot submitted.")

	return ballot, created, nil
}

func filterVoteStatuses(days []models.PollDay, statuses map[uint]models.VoteChoice) map[uint]models.VoteChoice {
	known := lo.SliceToMap(days, func(item models.PollDay) (uint, bool) {
		return item.ID, true
	})
	return lo.PickBy(statuses, func(dayID uint, choice models.VoteChoice) bool {
		return known[dayID] && choice.Valid()
	})
}

func buildAvailabilities(ballotID uint, statuses map[uint]models.VoteChoice) []models.Availability {
	dayIDs := lo.Keys(statuses)
	sort.Slice(dayIDs, func(i, j int) bool { return dayIDs[i] < dayIDs[j] })

	return lo.Map(dayIDs, func(dayID uint, _ int) models.Availability {
		return models.Availability{
			BallotID: ballotID,
			DayID:    dayID,
			Status:   lo.ToPtr(statuses[dayID]),
		}
	})
}
