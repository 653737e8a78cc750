package calendar

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bytorbix/agendo/internal/logging"
	"github.com/bytorbix/agendo/internal/schedule"
)

// BusyIntervalsFromEvents converts timed events to busy intervals for the
// availability scanner. All-day events do not block working-hour slots and
// are excluded; cancelled events and events without parseable times are
// dropped.
func BusyIntervalsFromEvents(events []EventSummary) []schedule.BusyInterval {
	var busy []schedule.BusyInterval
	for _, ev := range events {
		if ev.AllDay || ev.Status == "cancelled" {
			continue
		}
		if ev.Start.IsZero() || ev.End.IsZero() {
			continue
		}
		busy = append(busy, schedule.BusyInterval{Start: ev.Start, End: ev.End})
	}
	return busy
}

// eventLister is the slice of Client that the availability fetch needs.
type eventLister interface {
	ListEvents(calendarID string, timeMin, timeMax time.Time, query string) ([]EventSummary, error)
}

// BusyIntervals fetches the timed events of the given calendars between
// timeMin and timeMax and returns them as busy intervals. A calendar whose
// fetch fails is skipped with a logged warning; an error is returned only
// when every calendar fails, so one broken calendar never empties the whole
// availability picture silently.
func (c *Client) BusyIntervals(calendarIDs []string, timeMin, timeMax time.Time) ([]schedule.BusyInterval, error) {
	return busyIntervals(c, calendarIDs, timeMin, timeMax)
}

func busyIntervals(l eventLister, calendarIDs []string, timeMin, timeMax time.Time) ([]schedule.BusyInterval, error) {
	var busy []schedule.BusyInterval
	var lastErr error
	failed := 0
	for _, id := range calendarIDs {
		events, err := l.ListEvents(id, timeMin, timeMax, "")
		if err != nil {
			slog.Warn("skipping calendar in availability fetch",
				logging.Operation("availability.fetch"),
				"calendarId", id,
				logging.Err(err))
			lastErr = err
			failed++
			continue
		}
		busy = append(busy, BusyIntervalsFromEvents(events)...)
	}
	if failed > 0 && failed == len(calendarIDs) {
		return nil, fmt.Errorf("all %d calendars failed to fetch: %w", failed, lastErr)
	}
	return busy, nil
}

// FindFreeSlots runs the availability scanner over the busy intervals of the
// given calendars, fetching events for the whole search horizon.
func (c *Client) FindFreeSlots(calendarIDs []string, cfg schedule.SearchConfig, now time.Time) ([]schedule.FreeSlot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc := cfg.Location()
	localNow := now.In(loc)
	// Fetch through the end of the last horizon day.
	horizonEnd := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, cfg.HorizonDays+1)

	busy, err := c.BusyIntervals(calendarIDs, localNow, horizonEnd)
	if err != nil {
		return nil, err
	}

	return schedule.FindFreeSlots(busy, cfg, now)
}
