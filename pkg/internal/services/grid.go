package services

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/database"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type PollGrid struct {
	Poll models.Poll      `json:"poll"`
	Days []models.PollDay `json:"days"`
	Rows []PollGridRow    `json:"rows"`
}

// PollGridRow is one participant. Statuses follows the order of the grid
// days and holds nil where the participant gave no answer.
type PollGridRow struct {
	Ballot   models.Ballot        `json:"ballot"`
	Statuses []*models.VoteChoice `json:"statuses"`
}

func BuildPollGrid(poll models.Poll) (PollGrid, error) {
	days, err := ListPollDays(poll)
	if err != nil {
		return PollGrid{}, err
	}

	var ballots []models.Ballot
	if err := database.C.
		Where("poll_id = ?", poll.ID).
		Preload("Availabilities").
		Order("submitted_at ASC, id ASC").
		Find(&ballots).Error; err != nil {
		return PollGrid{}, fmt.Errorf("unable to list ballots: %v", err)
	}

	rows := lo.Map(ballots, func(item models.Ballot, _ int) PollGridRow {
		byDay := lo.SliceToMap(item.Availabilities, func(av models.Availability) (uint, *models.VoteChoice) {
			return av.DayID, av.Status
		})
		item.Availabilities = nil
		return PollGridRow{
			Ballot: item,
			Statuses: lo.Map(days, func(day models.PollDay, _ int) *models.VoteChoice {
				return byDay[day.ID]
			}),
		}
	})

	return PollGrid{Poll: poll, Days: days, Rows: rows}, nil
}

type EditPair struct {
	Day      models.PollDay    `json:"day"`
	Status   models.VoteChoice `json:"status"`
	Answered bool              `json:"answered"`
}

// BallotEditor prefills the vote form of one participant. Unanswered days
// are shown as No without storing anything.
type BallotEditor struct {
	Exists   bool       `json:"exists"`
	Nickname string     `json:"nickname"`
	Pairs    []EditPair `json:"pairs"`
}

func GetBallotEditor(poll models.Poll, days []models.PollDay, cookie string) (BallotEditor, error) {
	editor := BallotEditor{
		Pairs: lo.Map(days, func(day models.PollDay, _ int) EditPair {
			return EditPair{Day: day, Status: models.VoteChoiceNo}
		}),
	}
	if !IsUsableUserCookie(cookie) {
		return editor, nil
	}

	var ballot models.Ballot
	if err := database.C.
		Where("poll_id = ? AND user_cookie = ?", poll.ID, cookie).
		Preload("Availabilities").
		First(&ballot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return editor, nil
		}
		return editor, fmt.Errorf("unable to get ballot: %v", err)
	}

	stored := lo.SliceToMap(
		lo.Filter(ballot.Availabilities, func(av models.Availability, _ int) bool {
			return av.Status != nil
		}),
		func(av models.Availability) (uint, models.VoteChoice) {
			return av.DayID, *av.Status
		},
	)

	editor.Exists = true
	editor.Nickname = ballot.Nickname
	for idx, pair := range editor.Pairs {
		if status, ok := stored[pair.Day.ID]; ok {
			editor.Pairs[idx].Status = status
			editor.Pairs[idx].Answered = true
		}
	}

	return editor, nil
}
