package models

import (
	"strconv"
	"time"
)

type VoteChoice int8

const (
	VoteChoiceNo = VoteChoice(iota)
	VoteChoiceMaybe
	VoteChoiceYes
)

var VoteChoices = []VoteChoice{VoteChoiceNo, VoteChoiceMaybe, VoteChoiceYes}

func (v VoteChoice) Valid() bool {
	return v >= VoteChoiceNo && v <= VoteChoiceYes
}

// ParseVoteChoice reads the numeric form value of a choice. Anything but
// 0, 1 or 2 reports false.
func ParseVoteChoice(raw string) (VoteChoice, bool) {
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	choice := VoteChoice(val)
	if int(choice) != val || !choice.Valid() {
		return 0, false
	}
	return choice, true
}

func (v VoteChoice) Label() string {
	switch v {
	case VoteChoiceNo:
		return "No"
	case VoteChoiceMaybe:
		return "Maybe"
	case VoteChoiceYes:
		return "Yes"
	default:
		return ""
	}
}

type Ballot struct {
	BaseModel

	Nickname    string    `json:"nickname" gorm:"size:80"`
	UserCookie  string    `json:"-" gorm:"size:100;uniqueIndex:idx_ballot_owner,priority:2"`
	SubmittedAt time.Time `json:"submitted_at"`
	PollID      uint      `json:"poll_id" gorm:"uniqueIndex:idx_ballot_owner,priority:1"`

	Availabilities []Availability `json:"availabilities,omitempty"`
}

type Availability struct {
	ID       uint        `json:"id" gorm:"primaryKey"`
	BallotID uint        `json:"ballot_id" gorm:"uniqueIndex:idx_availability_ballot_day"`
	DayID    uint        `json:"day_id" gorm:"uniqueIndex:idx_availability_ballot_day;index:idx_availability_day_status,priority:1"`
	Status   *VoteChoice `json:"status" gorm:"index:idx_availability_day_status,priority:2"`
}
