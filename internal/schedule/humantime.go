package schedule

import (
	"strconv"
	"strings"
	"time"
)

// weekdayNames maps the names accepted by ParseHumanDate, checked in a fixed
// order so parsing stays deterministic.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// ParseHumanDate resolves a human-friendly date phrase to a calendar day
// (midnight in today's location). ISO dates pass through; "today",
// "tomorrow" and "next week" are relative; a weekday name resolves to its
// next occurrence (never today). Anything unrecognized falls back to today.
func ParseHumanDate(input string, today time.Time) time.Time {
	s := strings.ToLower(strings.TrimSpace(input))
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	if len(s) == 10 && strings.Contains(s, "-") {
		if t, err := time.ParseInLocation("2006-01-02", s, today.Location()); err == nil {
			return t
		}
	}

	switch {
	case s == "today":
		return day
	case s == "tomorrow":
		return day.AddDate(0, 0, 1)
	case strings.Contains(s, "next week"):
		return day.AddDate(0, 0, 7)
	}

	for _, wd := range weekdayNames {
		if strings.Contains(s, wd.name) {
			ahead := int(wd.day-day.Weekday()+7) % 7
			if ahead == 0 {
				ahead = 7
			}
			return day.AddDate(0, 0, ahead)
		}
	}

	return day
}

// vague time-of-day phrases, checked before clock-time parsing
var timeOfDay = []struct {
	phrase string
	hour   int
}{
	{"morning", 9},
	{"afternoon", 14},
	{"evening", 18},
	{"noon", 12},
}

// ParseHumanTime resolves a human-friendly time phrase to a start and end
// instant on the given day. Vague phrases map to fixed hours ("morning" is
// 09:00, "afternoon" 14:00, "evening" 18:00, "noon" 12:00); "2 PM" and
// "14:30" forms are parsed as clock times. The block defaults to one hour,
// capped at 23:00. Unparseable input yields 09:00 to 10:00.
func ParseHumanTime(input string, date time.Time) (start, end time.Time) {
	s := strings.ToLower(strings.TrimSpace(input))

	hour, minute, ok := -1, 0, false
	for _, tod := range timeOfDay {
		if strings.Contains(s, tod.phrase) {
			hour, ok = tod.hour, true
			break
		}
	}

	if !ok {
		switch {
		case strings.Contains(s, "am"), strings.Contains(s, "pm"):
			hour, minute, ok = parseClockTime(s)
		case strings.Contains(s, ":"):
			hour, minute, ok = parse24hTime(s)
		default:
			hour, ok = 9, true
		}
	}
	if !ok {
		hour, minute = 9, 0
	}

	start = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
	endHour := hour + 1
	if endHour > 23 {
		endHour = 23
	}
	end = time.Date(date.Year(), date.Month(), date.Day(), endHour, minute, 0, 0, date.Location())
	return start, end
}

// parseClockTime handles "2 PM", "2:30pm", "12 am" forms.
func parseClockTime(s string) (hour, minute int, ok bool) {
	pm := strings.Contains(s, "pm")
	s = strings.ReplaceAll(s, "pm", "")
	s = strings.ReplaceAll(s, "am", "")
	hour, minute, ok = parse24hTime(strings.TrimSpace(s))
	if !ok {
		return 0, 0, false
	}
	if pm && hour != 12 {
		hour += 12
	} else if !pm && hour == 12 {
		hour = 0
	}
	if hour > 23 {
		return 0, 0, false
	}
	return hour, minute, true
}

// parse24hTime handles "14:30" and bare-hour "14" forms.
func parse24hTime(s string) (hour, minute int, ok bool) {
	hourPart, minutePart, found := strings.Cut(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	if found {
		minute, err = strconv.Atoi(strings.TrimSpace(minutePart))
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, false
		}
	}
	return hour, minute, true
}

// ParseHumanDuration resolves phrases like "1 hour", "2 hours", "30 min" or
// "half an hour" to a duration. Unrecognized input defaults to one hour.
func ParseHumanDuration(input string) time.Duration {
	s := strings.ToLower(strings.TrimSpace(input))

	if strings.Contains(s, "half") || strings.Contains(s, "30 min") {
		return 30 * time.Minute
	}
	if n, ok := leadingNumber(s); ok {
		switch {
		case strings.Contains(s, "min"):
			return time.Duration(n) * time.Minute
		case strings.Contains(s, "hour"), strings.Contains(s, "hr"):
			return time.Duration(n) * time.Hour
		}
	}
	return time.Hour
}

// leadingNumber extracts the first run of digits in s.
func leadingNumber(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}
