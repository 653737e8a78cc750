package schedule

import "time"

// BusyInterval is a half-open [Start, End) time range during which the
// subject is unavailable. Intervals may overlap or be adjacent; the scanner
// does not require them to be merged or sorted.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// SearchConfig describes one availability search.
type SearchConfig struct {
	// DurationNeeded is the requested slot length in minutes. Must be > 0.
	DurationNeeded int

	// HorizonDays is the number of days forward from now to scan, inclusive
	// of the current day. Zero scans only today.
	HorizonDays int

	// WorkStartHour and WorkEndHour bound the daily working window, as clock
	// hours in [0,23] with WorkStartHour < WorkEndHour.
	WorkStartHour int
	WorkEndHour   int

	// ExcludeWeekends skips Saturdays and Sundays entirely.
	ExcludeWeekends bool

	// TimeZone is an IANA zone identifier. Unresolvable names fall back to
	// UTC rather than failing the search.
	TimeZone string
}

// DefaultSearchConfig returns the search parameters used when a tool call
// leaves them unspecified: one-hour slots over the next week, 9-to-5,
// weekends excluded.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		DurationNeeded:  60,
		HorizonDays:     7,
		WorkStartHour:   9,
		WorkEndHour:     17,
		ExcludeWeekends: true,
		TimeZone:        "UTC",
	}
}

// FreeSlot is one bookable block of availability. The slot is truncated to
// the requested duration even when the underlying gap is longer, so
// DurationMinutes is at most SearchConfig.DurationNeeded.
type FreeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}
