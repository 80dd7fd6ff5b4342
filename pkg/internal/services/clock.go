package services

import (
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/models"
	"github.com/spf13/viper"
)

const defaultPollTitle = "Weekend jumping week %d"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (v FixedClock) Now() time.Time {
	return time.Time(v)
}

// NextWeekend returns the coming Saturday and Sunday. A Saturday counts as
// its own weekend, a Sunday already points at the next one.
func NextWeekend(now time.Time) (time.Time, time.Time) {
	today := models.TruncateDay(now)
	untilSaturday := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
	saturday := today.AddDate(0, 0, untilSaturday)
	return saturday, saturday.AddDate(0, 0, 1)
}

func NewPollDraft(clock Clock) PollDraft {
	saturday, sunday := NextWeekend(clock.Now())
	_, week := saturday.ISOWeek()

	format := viper.GetString("poll.default_title")
	if len(format) == 0 {
		format = defaultPollTitle
	}

	return PollDraft{
		Title:    fmt.Sprintf(format, week),
		DateFrom: saturday,
		DateTo:   sunday,
	}
}
