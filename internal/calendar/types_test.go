package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	calendar "google.golang.org/api/calendar/v3"
)

func TestToEventSummaryConversion(t *testing.T) {
	tests := []struct {
		name     string
		input    *calendar.Event
		expected EventSummary
	}{
		{
			name: "event with creator and organizer",
			input: &calendar.Event{
				Id:        "evt1",
				Summary:   "Planning",
				Creator:   &calendar.EventCreator{Email: "creator@example.com"},
				Organizer: &calendar.EventOrganizer{Email: "organizer@example.com"},
			},
			expected: EventSummary{
				ID:        "evt1",
				Summary:   "Planning",
				Creator:   "creator@example.com",
				Organizer: "organizer@example.com",
			},
		},
		{
			name: "attendee fields are carried over",
			input: &calendar.Event{
				Id: "evt2",
				Attendees: []*calendar.EventAttendee{
					{
						Email:          "opt@example.com",
						DisplayName:    "Optional Olga",
						ResponseStatus: "tentative",
						Optional:       true,
					},
					{
						Email:          "org@example.com",
						ResponseStatus: "accepted",
						Organizer:      true,
					},
				},
			},
			expected: EventSummary{
				ID: "evt2",
				Attendees: []AttendeeInfo{
					{
						Email:          "opt@example.com",
						DisplayName:    "Optional Olga",
						ResponseStatus: "tentative",
						Optional:       true,
					},
					{
						Email:          "org@example.com",
						ResponseStatus: "accepted",
						Organizer:      true,
					},
				},
			},
		},
		{
			name: "phone entry point is not a meet link",
			input: &calendar.Event{
				Id: "evt3",
				ConferenceData: &calendar.ConferenceData{
					EntryPoints: []*calendar.EntryPoint{
						{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
						{EntryPointType: "video", Uri: "https://meet.google.com/xyz-abcd-efg"},
					},
				},
			},
			expected: EventSummary{
				ID:       "evt3",
				MeetLink: "https://meet.google.com/xyz-abcd-efg",
			},
		},
		{
			name: "malformed start date is ignored",
			input: &calendar.Event{
				Id:    "evt4",
				Start: &calendar.EventDateTime{DateTime: "not-a-timestamp"},
			},
			expected: EventSummary{
				ID: "evt4",
			},
		},
		{
			name: "date-only end without start",
			input: &calendar.Event{
				Id:  "evt5",
				End: &calendar.EventDateTime{Date: "2025-06-03"},
			},
			expected: EventSummary{
				ID:  "evt5",
				End: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toEventSummary(tt.input))
		})
	}
}

func TestToCalendarInfoConversion(t *testing.T) {
	tests := []struct {
		name     string
		input    *calendar.CalendarListEntry
		expected CalendarInfo
	}{
		{
			name: "secondary calendar",
			input: &calendar.CalendarListEntry{
				Id:          "team@group.calendar.google.com",
				Summary:     "Team",
				Description: "Shared team calendar",
				TimeZone:    "America/New_York",
				AccessRole:  "writer",
			},
			expected: CalendarInfo{
				ID:          "team@group.calendar.google.com",
				Summary:     "Team",
				Description: "Shared team calendar",
				TimeZone:    "America/New_York",
				AccessRole:  "writer",
			},
		},
		{
			name:     "nil entry",
			input:    nil,
			expected: CalendarInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toCalendarInfo(tt.input))
		})
	}
}
