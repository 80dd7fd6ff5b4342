package models

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestParseVoteChoice(t *testing.T) {
	tests := []struct {
		raw    string
		choice VoteChoice
		ok     bool
	}{
		{"0", VoteChoiceNo, true},
		{"1", VoteChoiceMaybe, true},
		{"2", VoteChoiceYes, true},
		{"-1", 0, false},
		{"3", 0, false},
		{"", 0, false},
		{"yes", 0, false},
		{"258", 0, false},
	}

	for _, tt := range tests {
		choice, ok := ParseVoteChoice(tt.raw)
		if ok != tt.ok || choice != tt.choice {
			t.Errorf("ParseVoteChoice(%q) = %d, %v; expected %d, %v", tt.raw, choice, ok, tt.choice, tt.ok)
		}
	}
}

func TestVoteChoiceMethods(t *testing.T) {
	tests := []struct {
		choice VoteChoice
		valid  bool
		label  string
	}{
		{VoteChoiceNo, true, "No"},
		{VoteChoiceMaybe, true, "Maybe"},
		{VoteChoiceYes, true, "Yes"},
		{VoteChoice(-1), false, ""},
		{VoteChoice(7), false, ""},
	}

	for _, tt := range tests {
		if got := tt.choice.Valid(); got != tt.valid {
			t.Errorf("VoteChoice(%d).Valid() = %v; expected %v", tt.choice, got, tt.valid)
		}
		if got := tt.choice.Label(); got != tt.label {
			t.Errorf("VoteChoice(%d).Label() = %q; expected %q", tt.choice, got, tt.label)
		}
	}
}

func TestPollDayRange(t *testing.T) {
	poll := Poll{
		DateFrom: datatypes.Date(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)),
		DateTo:   datatypes.Date(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)),
	}

	days := poll.DayRange()
	expected := []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}
	if len(days) != len(expected) {
		t.Fatalf("Expected %d days, got %d", len(expected), len(days))
	}
	for i, day := range days {
		if got := day.Format(DateLayout); got != expected[i] {
			t.Errorf("Expected day %d to be %s, got %s", i, expected[i], got)
		}
	}

	poll.DateTo = datatypes.Date(time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC))
	if days := poll.DayRange(); len(days) != 0 {
		t.Errorf("Expected no days for a reversed range, got %d", len(days))
	}
}
