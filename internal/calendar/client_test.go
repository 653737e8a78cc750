package calendar

import (
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

func TestToEventSummaryNil(t *testing.T) {
	summary := toEventSummary(nil)
	if summary.ID != "" {
		t.Errorf("Expected empty ID for nil event, got %s", summary.ID)
	}
}

func TestToEventSummaryTimedEvent(t *testing.T) {
	event := &calendar.Event{
		Id:      "evt1",
		Summary: "Team sync",
		Status:  "confirmed",
		Start:   &calendar.EventDateTime{DateTime: "2025-06-02T10:00:00Z"},
		End:     &calendar.EventDateTime{DateTime: "2025-06-02T11:00:00Z"},
		Attendees: []*calendar.EventAttendee{
			{Email: "a@example.com", ResponseStatus: "accepted"},
		},
		ConferenceData: &calendar.ConferenceData{
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
			},
		},
	}

	summary := toEventSummary(event)
	if summary.ID != "evt1" {
		t.Errorf("Expected ID evt1, got %s", summary.ID)
	}
	if summary.AllDay {
		t.Error("Timed event should not be marked all-day")
	}
	want := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	if !summary.Start.Equal(want) {
		t.Errorf("Expected start %v, got %v", want, summary.Start)
	}
	if summary.End.Sub(summary.Start) != time.Hour {
		t.Errorf("Expected one-hour event, got %v", summary.End.Sub(summary.Start))
	}
	if len(summary.Attendees) != 1 || summary.Attendees[0].Email != "a@example.com" {
		t.Errorf("Unexpected attendees: %v", summary.Attendees)
	}
	if summary.MeetLink != "https://meet.google.com/abc-defg-hij" {
		t.Errorf("Unexpected meet link: %s", summary.MeetLink)
	}
}

func TestToEventSummaryAllDayEvent(t *testing.T) {
	event := &calendar.Event{
		Id:      "evt2",
		Summary: "Conference",
		Start:   &calendar.EventDateTime{Date: "2025-06-02"},
		End:     &calendar.EventDateTime{Date: "2025-06-03"},
	}

	summary := toEventSummary(event)
	if !summary.AllDay {
		t.Error("Date-only event should be marked all-day")
	}
	want := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	if !summary.Start.Equal(want) {
		t.Errorf("Expected start %v, got %v", want, summary.Start)
	}
}

func TestToCalendarInfo(t *testing.T) {
	info := toCalendarInfo(nil)
	if info.ID != "" {
		t.Errorf("Expected empty ID for nil entry, got %s", info.ID)
	}

	entry := &calendar.CalendarListEntry{
		Id:         "primary@example.com",
		Summary:    "Work",
		TimeZone:   "Europe/Berlin",
		Primary:    true,
		AccessRole: "owner",
	}
	info = toCalendarInfo(entry)
	if info.ID != "primary@example.com" || !info.Primary || info.AccessRole != "owner" {
		t.Errorf("Unexpected calendar info: %+v", info)
	}
}

func TestHasToken(t *testing.T) {
	// We don't care about the actual value, just that it doesn't panic
	_ = HasToken()
}

func TestHasTokenForAccount(t *testing.T) {
	_ = HasTokenForAccount("test-account")

	if HasTokenForAccount("") {
		t.Error("Expected false for empty account name")
	}
}

func TestHasTokenForAccountWithNilProvider(t *testing.T) {
	if HasTokenForAccountWithProvider("default", nil) {
		t.Error("Expected false for nil provider")
	}
}

func TestEventInputStructure(t *testing.T) {
	tests := []struct {
		name  string
		input EventInput
	}{
		{
			name: "basic event",
			input: EventInput{
				Summary: "Test Event",
				Start:   time.Now(),
				End:     time.Now().Add(time.Hour),
			},
		},
		{
			name: "recurring event",
			input: EventInput{
				Summary:    "Weekly Meeting",
				Start:      time.Now(),
				End:        time.Now().Add(time.Hour),
				Recurrence: []string{"RRULE:FREQ=WEEKLY;BYDAY=MO"},
			},
		},
		{
			name: "event with attendees and Meet",
			input: EventInput{
				Summary:       "Team Meeting",
				Start:         time.Now(),
				End:           time.Now().Add(time.Hour),
				Attendees:     []string{"user1@example.com", "user2@example.com"},
				AddGoogleMeet: true,
				SendUpdates:   "all",
			},
		},
		{
			name: "all-day event",
			input: EventInput{
				Summary: "Offsite",
				Start:   time.Now(),
				End:     time.Now().AddDate(0, 0, 1),
				AllDay:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.input.Summary == "" {
				t.Error("Expected non-empty summary")
			}
			if tt.input.Start.IsZero() || tt.input.End.IsZero() {
				t.Error("Expected non-zero times")
			}
			if tt.input.End.Before(tt.input.Start) {
				t.Error("End time should be after start time")
			}
		})
	}
}
