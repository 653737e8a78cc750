package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/bytorbix/agendo/internal/google"
)

// Client wraps the Google Calendar service
type Client struct {
	svc           *calendar.Service
	account       string // The account this client is associated with
	tokenProvider google.TokenProvider
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccountWithProvider checks if a valid OAuth token exists for the specified account
func HasTokenForAccountWithProvider(account string, provider google.TokenProvider) bool {
	if provider == nil {
		return false
	}
	return provider.HasTokenForAccount(account)
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	provider := google.NewFileTokenProvider()
	return HasTokenForAccountWithProvider(account, provider)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2 authentication for a specific account
// The OAuth token is retrieved from the provided token provider
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	conf := google.GetOAuthConfig()
	client := google.NewHTTPClient(ctx, conf.TokenSource(ctx, token))

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
	}, nil
}

// NewClientForAccount creates a new Calendar client with OAuth2 authentication for a specific account
// Uses the default file-based token provider
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	provider := google.NewFileTokenProvider()
	return NewClientForAccountWithProvider(ctx, account, provider)
}

// NewClient creates a new Calendar client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// ListEvents lists events in a calendar within a time range
func (c *Client) ListEvents(calendarID string, timeMin, timeMax time.Time, query string) ([]EventSummary, error) {
	call := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	if query != "" {
		call = call.Q(query)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}

	return summaries, nil
}

// ListDayEvents lists the events of a single calendar day in the given location
func (c *Client) ListDayEvents(calendarID string, date time.Time, loc *time.Location) ([]EventSummary, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	return c.ListEvents(calendarID, dayStart, dayEnd, "")
}

// SearchEvents finds events matching a free-text query, most recent horizon
// first. maxResults caps the returned list; zero means no cap.
func (c *Client) SearchEvents(calendarID, query string, timeMin, timeMax time.Time, maxResults int) ([]EventSummary, error) {
	summaries, err := c.ListEvents(calendarID, timeMin, timeMax, query)
	if err != nil {
		return nil, err
	}
	if maxResults > 0 && len(summaries) > maxResults {
		summaries = summaries[:maxResults]
	}
	return summaries, nil
}

// ResolveCalendarID resolves a calendar name to its ID. Values that already
// look like IDs ("primary" or anything containing "@") pass through. Name
// matching is case-insensitive, exact match first, then substring.
func (c *Client) ResolveCalendarID(nameOrID string) (string, error) {
	if nameOrID == "" || nameOrID == "primary" || strings.Contains(nameOrID, "@") {
		if nameOrID == "" {
			return "primary", nil
		}
		return nameOrID, nil
	}

	calendars, err := c.ListCalendars()
	if err != nil {
		return "", fmt.Errorf("failed to resolve calendar %q: %w", nameOrID, err)
	}

	want := strings.ToLower(nameOrID)
	for _, cal := range calendars {
		if strings.ToLower(cal.Summary) == want {
			return cal.ID, nil
		}
	}
	for _, cal := range calendars {
		if strings.Contains(strings.ToLower(cal.Summary), want) {
			return cal.ID, nil
		}
	}

	return "", fmt.Errorf("no calendar found matching %q", nameOrID)
}

// GetEvent retrieves a specific event by ID
func (c *Client) GetEvent(calendarID, eventID string) (*EventSummary, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	summary := toEventSummary(event)
	return &summary, nil
}

// CreateEvent creates a new calendar event
func (c *Client) CreateEvent(calendarID string, input EventInput) (*EventSummary, error) {
	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
	}

	// All-day events use Date instead of DateTime
	if input.AllDay {
		event.Start = &calendar.EventDateTime{
			Date: input.Start.Format("2006-01-02"),
		}
		event.End = &calendar.EventDateTime{
			Date: input.End.Format("2006-01-02"),
		}
	} else {
		if input.TimeZone == "" {
			input.TimeZone = "UTC"
		}
		event.Start = &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		}
		event.End = &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		}
	}

	if len(input.Attendees) > 0 {
		var attendees []*calendar.EventAttendee
		for _, email := range input.Attendees {
			attendees = append(attendees, &calendar.EventAttendee{
				Email: email,
			})
		}
		event.Attendees = attendees
	}

	if len(input.Recurrence) > 0 {
		event.Recurrence = input.Recurrence
	}

	call := c.svc.Events.Insert(calendarID, event)
	if input.AddGoogleMeet {
		call = call.ConferenceDataVersion(1)
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
			},
		}
	}
	if input.SendUpdates != "" {
		call = call.SendUpdates(input.SendUpdates)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	summary := toEventSummary(created)
	return &summary, nil
}

// UpdateEvent updates an existing calendar event. Only the fields set in
// input are changed; everything else keeps its current value.
func (c *Client) UpdateEvent(calendarID, eventID string, input EventInput) (*EventSummary, error) {
	existing, err := c.svc.Events.Get(calendarID, eventID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get existing event: %w", err)
	}

	if input.Summary != "" {
		existing.Summary = input.Summary
	}
	if input.Description != "" {
		existing.Description = input.Description
	}
	if input.Location != "" {
		existing.Location = input.Location
	}

	if !input.Start.IsZero() {
		if input.AllDay {
			existing.Start = &calendar.EventDateTime{
				Date: input.Start.Format("2006-01-02"),
			}
		} else {
			if input.TimeZone == "" {
				input.TimeZone = "UTC"
			}
			existing.Start = &calendar.EventDateTime{
				DateTime: input.Start.Format(time.RFC3339),
				TimeZone: input.TimeZone,
			}
		}
	}
	if !input.End.IsZero() {
		if input.AllDay {
			existing.End = &calendar.EventDateTime{
				Date: input.End.Format("2006-01-02"),
			}
		} else {
			if input.TimeZone == "" {
				input.TimeZone = "UTC"
			}
			existing.End = &calendar.EventDateTime{
				DateTime: input.End.Format(time.RFC3339),
				TimeZone: input.TimeZone,
			}
		}
	}

	if len(input.Attendees) > 0 {
		var attendees []*calendar.EventAttendee
		for _, email := range input.Attendees {
			attendees = append(attendees, &calendar.EventAttendee{
				Email: email,
			})
		}
		existing.Attendees = attendees
	}

	if len(input.Recurrence) > 0 {
		existing.Recurrence = input.Recurrence
	}

	call := c.svc.Events.Update(calendarID, eventID, existing)
	if input.SendUpdates != "" {
		call = call.SendUpdates(input.SendUpdates)
	}

	updated, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	summary := toEventSummary(updated)
	return &summary, nil
}

// DeleteEvent deletes a calendar event
func (c *Client) DeleteEvent(calendarID, eventID string) error {
	err := c.svc.Events.Delete(calendarID, eventID).Do()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// ListCalendars lists all calendars accessible to the user
func (c *Client) ListCalendars() ([]CalendarInfo, error) {
	list, err := c.svc.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	var calendars []CalendarInfo
	for _, entry := range list.Items {
		calendars = append(calendars, toCalendarInfo(entry))
	}

	return calendars, nil
}

// GetCalendar retrieves information about a specific calendar
func (c *Client) GetCalendar(calendarID string) (*CalendarInfo, error) {
	entry, err := c.svc.CalendarList.Get(calendarID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}

	info := toCalendarInfo(entry)
	return &info, nil
}

// GetPrimaryCalendar retrieves information about the primary calendar
func (c *Client) GetPrimaryCalendar() (*CalendarInfo, error) {
	return c.GetCalendar("primary")
}

// QueryFreeBusy checks availability for calendars in a time range
func (c *Client) QueryFreeBusy(timeMin, timeMax time.Time, calendarIDs []string) ([]FreeBusyInfo, error) {
	items := make([]*calendar.FreeBusyRequestItem, len(calendarIDs))
	for i, id := range calendarIDs {
		items[i] = &calendar.FreeBusyRequestItem{Id: id}
	}

	query := &calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}

	result, err := c.svc.Freebusy.Query(query).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}

	var infos []FreeBusyInfo
	for calID, cal := range result.Calendars {
		info := FreeBusyInfo{
			Calendar: calID,
		}

		for _, busy := range cal.Busy {
			start, _ := time.Parse(time.RFC3339, busy.Start)
			end, _ := time.Parse(time.RFC3339, busy.End)
			info.Busy = append(info.Busy, TimeRange{Start: start, End: end})
		}

		for _, err := range cal.Errors {
			info.Errors = append(info.Errors, err.Reason)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// GetGoogleMeetLink retrieves the Google Meet link from an event
func (c *Client) GetGoogleMeetLink(calendarID, eventID string) (string, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get event: %w", err)
	}

	if event.ConferenceData != nil {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				return ep.Uri, nil
			}
		}
	}

	return "", nil
}
