package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// EventInput represents the input for creating or updating a calendar event
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []string
	Recurrence  []string // RRULE, EXRULE, RDATE, EXDATE

	// AllDay events carry dates without clock times
	AllDay bool

	// AddGoogleMeet attaches a Google Meet conference to the event
	AddGoogleMeet bool

	// SendUpdates controls attendee notifications: "all", "externalOnly", "none"
	SendUpdates string
}

// EventSummary represents a simplified calendar event for listing
type EventSummary struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Creator     string
	Organizer   string
	Status      string
	Attendees   []AttendeeInfo
	MeetLink    string
}

// AttendeeInfo represents information about an event attendee
type AttendeeInfo struct {
	Email          string
	DisplayName    string
	ResponseStatus string // "needsAction", "declined", "tentative", "accepted"
	Optional       bool
	Organizer      bool
}

// CalendarInfo represents information about a calendar
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string // "owner", "writer", "reader", "freeBusyReader"
}

// FreeBusyInfo represents availability information for a calendar
type FreeBusyInfo struct {
	Calendar string
	Busy     []TimeRange
	Errors   []string
}

// TimeRange represents a time range
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// parseEventTime reads one boundary of an event. Timed events carry an
// RFC3339 DateTime; all-day events carry a bare Date.
func parseEventTime(edt *calendar.EventDateTime) (t time.Time, allDay bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if edt.DateTime != "" {
		if parsed, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return parsed, false
		}
		return time.Time{}, false
	}
	if edt.Date != "" {
		if parsed, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// toEventSummary flattens a Google Calendar event into the local summary type.
func toEventSummary(event *calendar.Event) EventSummary {
	if event == nil {
		return EventSummary{}
	}

	summary := EventSummary{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Status:      event.Status,
	}

	summary.Start, summary.AllDay = parseEventTime(event.Start)
	summary.End, _ = parseEventTime(event.End)

	if event.Creator != nil {
		summary.Creator = event.Creator.Email
	}
	if event.Organizer != nil {
		summary.Organizer = event.Organizer.Email
	}

	for _, att := range event.Attendees {
		summary.Attendees = append(summary.Attendees, AttendeeInfo{
			Email:          att.Email,
			DisplayName:    att.DisplayName,
			ResponseStatus: att.ResponseStatus,
			Optional:       att.Optional,
			Organizer:      att.Organizer,
		})
	}

	if event.ConferenceData != nil {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				summary.MeetLink = ep.Uri
				break
			}
		}
	}

	return summary
}

// toCalendarInfo flattens a calendar list entry into the local info type.
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	if entry == nil {
		return CalendarInfo{}
	}
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}
