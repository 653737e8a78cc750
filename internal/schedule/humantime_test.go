package schedule

import (
	"testing"
	"time"
)

func TestParseHumanDate(t *testing.T) {
	// 2025-06-04 is a Wednesday.
	today := time.Date(2025, time.June, 4, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", utc(4, 0, 0)},
		{"Today", utc(4, 0, 0)},
		{"tomorrow", utc(5, 0, 0)},
		{"next week", utc(11, 0, 0)},
		{"sometime next week", utc(11, 0, 0)},
		{"2025-06-20", utc(20, 0, 0)},
		{"friday", utc(6, 0, 0)},
		{"on friday", utc(6, 0, 0)},
		{"monday", utc(9, 0, 0)},
		// A weekday name never resolves to today.
		{"wednesday", utc(11, 0, 0)},
		{"saturday", utc(7, 0, 0)},
		{"gibberish", utc(4, 0, 0)},
		{"", utc(4, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseHumanDate(tt.input, today)
			if !got.Equal(tt.want) {
				t.Errorf("ParseHumanDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHumanTime(t *testing.T) {
	date := utc(4, 0, 0)

	tests := []struct {
		input     string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"morning", utc(4, 9, 0), utc(4, 10, 0)},
		{"afternoon", utc(4, 14, 0), utc(4, 15, 0)},
		{"evening", utc(4, 18, 0), utc(4, 19, 0)},
		{"noon", utc(4, 12, 0), utc(4, 13, 0)},
		{"in the morning", utc(4, 9, 0), utc(4, 10, 0)},
		{"2 PM", utc(4, 14, 0), utc(4, 15, 0)},
		{"2:30pm", utc(4, 14, 30), utc(4, 15, 30)},
		{"12 pm", utc(4, 12, 0), utc(4, 13, 0)},
		{"12 am", utc(4, 0, 0), utc(4, 1, 0)},
		{"9 am", utc(4, 9, 0), utc(4, 10, 0)},
		{"14:30", utc(4, 14, 30), utc(4, 15, 30)},
		{"08:00", utc(4, 8, 0), utc(4, 9, 0)},
		// Blocks cap at 23:00 rather than rolling into the next day.
		{"23:00", utc(4, 23, 0), utc(4, 23, 0)},
		{"gibberish", utc(4, 9, 0), utc(4, 10, 0)},
		{"99:99", utc(4, 9, 0), utc(4, 10, 0)},
		{"", utc(4, 9, 0), utc(4, 10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			start, end := ParseHumanTime(tt.input, date)
			if !start.Equal(tt.wantStart) {
				t.Errorf("ParseHumanTime(%q) start = %v, want %v", tt.input, start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("ParseHumanTime(%q) end = %v, want %v", tt.input, end, tt.wantEnd)
			}
		})
	}
}

func TestParseHumanDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"1 hour", time.Hour},
		{"2 hours", 2 * time.Hour},
		{"3 hours", 3 * time.Hour},
		{"30 min", 30 * time.Minute},
		{"30 minutes", 30 * time.Minute},
		{"45 min", 45 * time.Minute},
		{"half an hour", 30 * time.Minute},
		{"2 hrs", 2 * time.Hour},
		{"gibberish", time.Hour},
		{"", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseHumanDuration(tt.input); got != tt.want {
				t.Errorf("ParseHumanDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
