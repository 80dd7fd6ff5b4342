package models

import (
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

type Poll struct {
	BaseModel

	Slug        string         `json:"slug" gorm:"uniqueIndex;size:32"`
	Title       string         `json:"title" gorm:"size:200"`
	Organizer   string         `json:"organizer" gorm:"size:200"`
	Description string         `json:"description" gorm:"size:200"`
	DateFrom    datatypes.Date `json:"date_from"`
	DateTo      datatypes.Date `json:"date_to"`

	Days    []PollDay `json:"days,omitempty"`
	Ballots []Ballot  `json:"ballots,omitempty"`
}

// IsOpen reports whether the last day of the poll has not passed yet.
func (v Poll) IsOpen(now time.Time) bool {
	today := TruncateDay(now)
	return !today.After(time.Time(v.DateTo))
}

// DayRange returns every calendar day from DateFrom to DateTo inclusive.
func (v Poll) DayRange() []time.Time {
	from := TruncateDay(time.Time(v.DateFrom))
	to := TruncateDay(time.Time(v.DateTo))

	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

type PollDay struct {
	ID     uint           `json:"id" gorm:"primaryKey"`
	PollID uint           `json:"poll_id" gorm:"uniqueIndex:idx_poll_day"`
	Day    datatypes.Date `json:"day" gorm:"uniqueIndex:idx_poll_day"`
	Order  uint           `json:"order" gorm:"column:display_order"`
}

func (v PollDay) Time() time.Time {
	return time.Time(v.Day)
}

func (v PollDay) String() string {
	return time.Time(v.Day).Format(DateLayout)
}

// TruncateDay drops the clock part of t and pins it to UTC, the zone every
// stored date lives in.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
