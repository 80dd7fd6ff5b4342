package services

import (
	"testing"
	"time"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/testutil"
)

func TestNextWeekend(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		saturday string
		sunday   string
	}{
		{"monday", time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC), "2024-06-08", "2024-06-09"},
		{"friday evening", time.Date(2024, 6, 7, 23, 59, 0, 0, time.UTC), "2024-06-08", "2024-06-09"},
		{"saturday", time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC), "2024-06-08", "2024-06-09"},
		{"sunday", time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC), "2024-06-15", "2024-06-16"},
		{"month boundary", time.Date(2024, 8, 29, 0, 0, 0, 0, time.UTC), "2024-08-31", "2024-09-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saturday, sunday := NextWeekend(tt.now)
			if got := saturday.Format("2006-01-02"); got != tt.saturday {
				t.Errorf("Expected saturday %s, got %s", tt.saturday, got)
			}
			if got := sunday.Format("2006-01-02"); got != tt.sunday {
				t.Errorf("Expected sunday %s, got %s", tt.sunday, got)
			}
			if saturday.Weekday() != time.Saturday || sunday.Weekday() != time.Sunday {
				t.Errorf("Expected a saturday and a sunday, got %s and %s", saturday.Weekday(), sunday.Weekday())
			}
		})
	}
}

func TestNewPollDraftUsesClock(t *testing.T) {
	clock := FixedClock(time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC))

	draft := NewPollDraft(clock)

	if !draft.DateFrom.Equal(testutil.Date(2024, 6, 8)) {
		t.Errorf("Expected start 2024-06-08, got %s", draft.DateFrom)
	}
	if !draft.DateTo.Equal(testutil.Date(2024, 6, 9)) {
		t.Errorf("Expected end 2024-06-09, got %s", draft.DateTo)
	}
	if draft.Title != "Weekend jumping week 23" {
		t.Errorf("Expected default title for week 23, got %q", draft.Title)
	}
	if draft.Organizer != "" || draft.Description != "" {
		t.Errorf("Expected empty organizer and description, got %q and %q", draft.Organizer, draft.Description)
	}
}
