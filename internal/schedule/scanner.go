package schedule

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/bytorbix/agendo/internal/logging"
)

// ErrInvalidConfig is returned when a SearchConfig cannot be scanned at all.
// Check with errors.Is.
var ErrInvalidConfig = errors.New("invalid search config")

// MaxSlots caps the number of slots returned by a single search.
const MaxSlots = 10

// Validate rejects configurations the scanner cannot work with.
func (c SearchConfig) Validate() error {
	if c.DurationNeeded <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d minutes", ErrInvalidConfig, c.DurationNeeded)
	}
	if c.HorizonDays < 0 {
		return fmt.Errorf("%w: horizon must be non-negative, got %d days", ErrInvalidConfig, c.HorizonDays)
	}
	if c.WorkStartHour < 0 || c.WorkStartHour > 23 {
		return fmt.Errorf("%w: work start hour %d out of range [0,23]", ErrInvalidConfig, c.WorkStartHour)
	}
	if c.WorkEndHour < 0 || c.WorkEndHour > 23 {
		return fmt.Errorf("%w: work end hour %d out of range [0,23]", ErrInvalidConfig, c.WorkEndHour)
	}
	if c.WorkStartHour >= c.WorkEndHour {
		return fmt.Errorf("%w: work start hour %d must be before work end hour %d", ErrInvalidConfig, c.WorkStartHour, c.WorkEndHour)
	}
	return nil
}

// Location resolves the configured timezone. An empty or unresolvable name
// falls back to UTC with a logged warning; the search proceeds.
func (c SearchConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		slog.Warn("unresolvable timezone, falling back to UTC",
			"timezone", c.TimeZone,
			logging.Err(err))
		return time.UTC
	}
	return loc
}

// FindFreeSlots scans the working-hours window of each day from now through
// now plus the horizon and returns the gaps between busy intervals that can
// hold the requested duration. Each gap yields at most one slot, truncated
// to the requested duration; the overall result is capped at MaxSlots.
//
// Busy intervals are attributed to the day their start falls on in the
// configured timezone. An interval spanning midnight blocks only its start
// day; the spill-over into the next day is not subtracted. Malformed
// intervals (zero instants, end not after start) are skipped with a logged
// warning.
//
// The scan is deterministic: identical inputs produce identical output.
func FindFreeSlots(busy []BusyInterval, cfg SearchConfig, now time.Time) ([]FreeSlot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc := cfg.Location()
	now = now.In(loc)
	need := time.Duration(cfg.DurationNeeded) * time.Minute

	valid := make([]BusyInterval, 0, len(busy))
	for _, b := range busy {
		if b.Start.IsZero() || b.End.IsZero() || !b.End.After(b.Start) {
			slog.Warn("skipping malformed busy interval",
				"start", b.Start,
				"end", b.End)
			continue
		}
		valid = append(valid, b)
	}

	var slots []FreeSlot
	year, month, day := now.Date()

	for offset := 0; offset <= cfg.HorizonDays; offset++ {
		date := time.Date(year, month, day+offset, 0, 0, 0, 0, loc)

		if cfg.ExcludeWeekends {
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
		}

		dayStart := time.Date(date.Year(), date.Month(), date.Day(), cfg.WorkStartHour, 0, 0, 0, loc)
		dayEnd := time.Date(date.Year(), date.Month(), date.Day(), cfg.WorkEndHour, 0, 0, 0, loc)

		// Never propose a slot in the past.
		if dayStart.Before(now) {
			dayStart = now
		}
		if !dayStart.Before(dayEnd) {
			continue
		}

		// Intervals belong to the day their start falls on.
		var todays []BusyInterval
		for _, b := range valid {
			y, m, d := b.Start.In(loc).Date()
			if y == date.Year() && m == date.Month() && d == date.Day() {
				todays = append(todays, b)
			}
		}
		sort.SliceStable(todays, func(i, j int) bool {
			return todays[i].Start.Before(todays[j].Start)
		})

		current := dayStart
		for _, b := range todays {
			bStart := b.Start.In(loc)
			bEnd := b.End.In(loc)

			if bStart.After(current) && bStart.Sub(current) >= need {
				slots = append(slots, newSlot(current, minTime(bStart, current.Add(need))))
			}
			// The cursor only ever moves forward, so overlapping or nested
			// intervals contribute no duplicate slots.
			if bEnd.After(current) {
				current = bEnd
			}
		}

		if dayEnd.Sub(current) >= need {
			slots = append(slots, newSlot(current, minTime(dayEnd, current.Add(need))))
		}
	}

	if len(slots) > MaxSlots {
		slots = slots[:MaxSlots]
	}
	return slots, nil
}

func newSlot(start, end time.Time) FreeSlot {
	return FreeSlot{
		Start:           start,
		End:             end,
		DurationMinutes: int(end.Sub(start) / time.Minute),
	}
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
