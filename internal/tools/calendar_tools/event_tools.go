package calendar_tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bytorbix/agendo/internal/calendar"
	"github.com/bytorbix/agendo/internal/instrumentation"
	"github.com/bytorbix/agendo/internal/schedule"
	"github.com/bytorbix/agendo/internal/server"
	"github.com/bytorbix/agendo/internal/tools/batch"
	"github.com/bytorbix/agendo/internal/tools/common"
)

// RegisterEventTools registers event-related tools with the MCP server
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List events tool (read-only, always available)
	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List calendar events within a time range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start time for the range (RFC3339 format, e.g., '2025-01-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End time for the range (RFC3339 format, e.g., '2025-01-31T23:59:59Z')"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query to filter events"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_list_events", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc)
		}))

	// List day events tool
	listDayEventsTool := mcp.NewTool("calendar_list_day_events",
		mcp.WithDescription("List all calendar events for a single day"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("The day to list, as YYYY-MM-DD or a phrase like 'today', 'tomorrow', 'friday'"),
		),
		mcp.WithString("timeZone",
			mcp.Description("IANA time zone for day boundaries (e.g., 'America/New_York'). Defaults to UTC."),
		),
	)

	s.AddTool(listDayEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_list_day_events", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListDayEvents(ctx, request, sc)
		}))

	// Search events tool
	searchEventsTool := mcp.NewTool("calendar_search_events",
		mcp.WithDescription("Search calendar events by text query"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text query matched against event titles, descriptions and attendees"),
		),
		mcp.WithString("timeMin",
			mcp.Description("Start of the search range (RFC3339). Defaults to now."),
		),
		mcp.WithString("timeMax",
			mcp.Description("End of the search range (RFC3339). Defaults to 30 days from now."),
		),
		mcp.WithString("maxResults",
			mcp.Description("Maximum number of events to return (default: 25)"),
		),
	)

	s.AddTool(searchEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_search_events", instrumentation.ServiceCalendar, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchEvents(ctx, request, sc)
		}))

	// Get event tool
	getEventTool := mcp.NewTool("calendar_get_event",
		mcp.WithDescription("Get details of a specific calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to retrieve"),
		),
	)

	s.AddTool(getEventTool, common.InstrumentedToolHandlerWithService(
		"calendar_get_event", instrumentation.ServiceCalendar, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEvent(ctx, request, sc)
		}))

	// Get Meet link tool
	getMeetLinkTool := mcp.NewTool("calendar_get_meet_link",
		mcp.WithDescription("Get the Google Meet link from a calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event"),
		),
	)

	s.AddTool(getMeetLinkTool, common.InstrumentedToolHandlerWithService(
		"calendar_get_meet_link", instrumentation.ServiceCalendar, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMeetLink(ctx, request, sc)
		}))

	// Register mutating tools only if not in read-only mode
	if sc.ReadOnly() {
		return nil
	}

	// Create event tool
	createEventTool := mcp.NewTool("calendar_create_event",
		mcp.WithDescription("Create a new calendar event (supports recurring, all-day, and Google Meet)"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC3339 format, e.g., '2025-01-15T14:00:00Z')"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC3339 format, e.g., '2025-01-15T15:00:00Z')"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone (e.g., 'America/New_York'). Defaults to UTC."),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
		mcp.WithString("recurrence",
			mcp.Description("Recurrence rule (e.g., 'RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR')"),
		),
		mcp.WithString("sendUpdates",
			mcp.Description("Attendee notification policy: 'all', 'externalOnly', or 'none' (default)"),
		),
		mcp.WithBoolean("allDay",
			mcp.Description("Create as all-day event (ignores time portion of start/end)"),
		),
		mcp.WithBoolean("addGoogleMeet",
			mcp.Description("Automatically add a Google Meet link to the event"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandlerWithService(
		"calendar_create_event", instrumentation.ServiceCalendar, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		}))

	// Update event tool
	updateEventTool := mcp.NewTool("calendar_update_event",
		mcp.WithDescription("Update an existing calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("summary",
			mcp.Description("New event title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("New event description"),
		),
		mcp.WithString("location",
			mcp.Description("New event location"),
		),
		mcp.WithString("start",
			mcp.Description("New start time (RFC3339 format)"),
		),
		mcp.WithString("end",
			mcp.Description("New end time (RFC3339 format)"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone (e.g., 'America/New_York')"),
		),
		mcp.WithString("attendees",
			mcp.Description("New comma-separated list of attendee email addresses"),
		),
		mcp.WithString("sendUpdates",
			mcp.Description("Attendee notification policy: 'all', 'externalOnly', or 'none' (default)"),
		),
		mcp.WithBoolean("allDay",
			mcp.Description("Update to be an all-day event (ignores time portion of start/end)"),
		),
	)

	s.AddTool(updateEventTool, common.InstrumentedToolHandlerWithService(
		"calendar_update_event", instrumentation.ServiceCalendar, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateEvent(ctx, request, sc)
		}))

	// Delete event tool
	deleteEventTool := mcp.NewTool("calendar_delete_event",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to delete, or an array of IDs for batch deletion"),
		),
	)

	s.AddTool(deleteEventTool, common.InstrumentedToolHandlerWithService(
		"calendar_delete_event", instrumentation.ServiceCalendar, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteEvent(ctx, request, sc)
		}))

	return nil
}

// resolveCalendarArg extracts the calendar argument and resolves calendar
// names to IDs. Defaults to "primary".
func resolveCalendarArg(args map[string]interface{}, client *calendar.Client) (string, error) {
	calendarID := "primary"
	if calIDVal, ok := args["calendarId"].(string); ok && calIDVal != "" {
		calendarID = calIDVal
	}
	return client.ResolveCalendarID(calendarID)
}

func formatEventList(events []calendar.EventSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d events:\n\n", len(events))
	for i, event := range events {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, event.Summary)
		fmt.Fprintf(&sb, "   ID: %s\n", event.ID)
		if event.AllDay {
			fmt.Fprintf(&sb, "   Date: %s (all day)\n", event.Start.Format("2006-01-02"))
		} else {
			fmt.Fprintf(&sb, "   Start: %s\n", event.Start.Format(time.RFC3339))
			fmt.Fprintf(&sb, "   End: %s\n", event.End.Format(time.RFC3339))
		}
		if event.Location != "" {
			fmt.Fprintf(&sb, "   Location: %s\n", event.Location)
		}
		if event.MeetLink != "" {
			fmt.Fprintf(&sb, "   Meet: %s\n", event.MeetLink)
		}
		if len(event.Attendees) > 0 {
			fmt.Fprintf(&sb, "   Attendees: %d\n", len(event.Attendees))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	timeMin, err := requiredTimeArg(args, "timeMin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	timeMax, err := requiredTimeArg(args, "timeMax")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := ""
	if queryVal, ok := args["query"].(string); ok {
		query = queryVal
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := resolveCalendarArg(args, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	events, err := client.ListEvents(calendarID, timeMin, timeMax, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
	}

	return mcp.NewToolResultText(formatEventList(events)), nil
}

func handleListDayEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	dateStr, ok := args["date"].(string)
	if !ok || dateStr == "" {
		return mcp.NewToolResultError("date is required"), nil
	}

	loc := time.UTC
	if tzVal, ok := args["timeZone"].(string); ok && tzVal != "" {
		parsed, err := time.LoadLocation(tzVal)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid timeZone: %v", err)), nil
		}
		loc = parsed
	}

	date := schedule.ParseHumanDate(dateStr, time.Now().In(loc))

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := resolveCalendarArg(args, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	events, err := client.ListDayEvents(calendarID, date, loc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list day events: %v", err)), nil
	}

	if len(events) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No events on %s", date.Format("Monday, January 2"))), nil
	}

	result := fmt.Sprintf("Events on %s:\n\n", date.Format("Monday, January 2"))
	result += formatEventList(events)
	return mcp.NewToolResultText(result), nil
}

func handleSearchEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	timeMin := time.Now()
	if timeMinStr, ok := args["timeMin"].(string); ok && timeMinStr != "" {
		parsed, err := time.Parse(time.RFC3339, timeMinStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMin format: %v", err)), nil
		}
		timeMin = parsed
	}

	timeMax := timeMin.AddDate(0, 0, 30)
	if timeMaxStr, ok := args["timeMax"].(string); ok && timeMaxStr != "" {
		parsed, err := time.Parse(time.RFC3339, timeMaxStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMax format: %v", err)), nil
		}
		timeMax = parsed
	}

	maxResults := 25
	if maxStr, ok := args["maxResults"].(string); ok && maxStr != "" {
		parsed, err := strconv.Atoi(maxStr)
		if err != nil || parsed <= 0 {
			return mcp.NewToolResultError("maxResults must be a positive integer"), nil
		}
		maxResults = parsed
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := resolveCalendarArg(args, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	events, err := client.SearchEvents(calendarID, query, timeMin, timeMax, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search events: %v", err)), nil
	}

	if len(events) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No events matching %q", query)), nil
	}

	return mcp.NewToolResultText(formatEventList(events)), nil
}

func handleGetEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := resolveCalendarArg(args, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	event, err := client.GetEvent(calendarID, eventID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get event: %v", err)), nil
	}

	result := fmt.Sprintf("Event: %s\n", event.Summary)
	result += fmt.Sprintf("ID: %s\n", event.ID)
	if event.AllDay {
		result += fmt.Sprintf("Date: %s (all day)\n", event.Start.Format("2006-01-02"))
	} else {
		result += fmt.Sprintf("Start: %s\n", event.Start.Format(time.RFC3339))
		result += fmt.Sprintf("End: %s\n", event.End.Format(time.RFC3339))
	}
	result += fmt.Sprintf("Status: %s\n", event.Status)
	if event.Description != "" {
		result += fmt.Sprintf("Description: %s\n", event.Description)
	}
	if event.Location != "" {
		result += fmt.Sprintf("Location: %s\n", event.Location)
	}
	if event.Creator != "" {
		result += fmt.Sprintf("Creator: %s\n", event.Creator)
	}
	if event.Organizer != "" {
		result += fmt.Sprintf("Organizer: %s\n", event.Organizer)
	}
	if event.MeetLink != "" {
		result += fmt.Sprintf("Google Meet: %s\n", event.MeetLink)
	}

	if len(event.Attendees) > 0 {
		result += fmt.Sprintf("\nAttendees (%d):\n", len(event.Attendees))
		for _, att := range event.Attendees {
			result += fmt.Sprintf("  - %s (%s)", att.Email, att.ResponseStatus)
			if att.DisplayName != "" {
				result += fmt.Sprintf(" - %s", att.DisplayName)
			}
			if att.Optional {
				result += " [optional]"
			}
			result += "\n"
		}
	}

	return mcp.NewToolResultText(result), nil
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	summary, ok := args["summary"].(string)
	if !ok || summary == "" {
		return mcp.NewToolResultError("summary is required"), nil
	}

	start, err := requiredTimeArg(args, "start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := requiredTimeArg(args, "end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !end.After(start) {
		return mcp.NewToolResultError("end must be after start"), nil
	}

	input := calendar.EventInput{
		Summary: summary,
		Start:   start,
		End:     end,
	}

	if desc, ok := args["description"].(string); ok {
		input.Description = desc
	}
	if loc, ok := args["location"].(string); ok {
		input.Location = loc
	}
	if tz, ok := args["timeZone"].(string); ok {
		input.TimeZone = tz
	}
	if sendUpdates, ok := args["sendUpdates"].(string); ok {
		input.SendUpdates = sendUpdates
	}

	if attendeesStr, ok := args["attendees"].(string); ok && attendeesStr != "" {
		input.Attendees = strings.Split(attendeesStr, ",")
		for i := range input.Attendees {
			input.Attendees[i] = strings.TrimSpace(input.Attendees[i])
		}
	}

	if recurrence, ok := args["recurrence"].(string); ok && recurrence != "" {
		input.Recurrence = []string{recurrence}
	}

	if allDay, ok := args["allDay"].(bool); ok {
		input.AllDay = allDay
	}
	if addMeet, ok := args["addGoogleMeet"].(bool); ok {
		input.AddGoogleMeet = addMeet
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := resolveCalendarArg(args, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	event, err := client.CreateEvent(calendarID, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
	}

	result := fmt.Sprintf("Successfully created event: %s\n", event.Summary)
	result += fmt.Sprintf("ID: %s\n", event.ID)
	result += fmt.Sprintf("Start: %s\n", event.Start.Format(time.RFC3339))
	result += fmt.Sprintf("End: %s\n", event.End.Format(time.RFC3339))
	if event.MeetLink != "" {
		result += fmt.Sprintf("Google Meet: %s\n", event.MeetLink)
	}

	return mcp.NewToolResultText(result), nil
}

func handleUpdateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	input := calendar.EventInput{}

	if summary, ok := args["summary"].(string); ok {
		input.Summary = summary
	}
	if desc, ok := args["description"].(string); ok {
		input.Description = desc
	}
	if loc, ok := args["location"].(string); ok {
		input.Location = loc
	}
	if tz, ok := args["timeZone"].(string); ok {
		input.TimeZone = tz
	}
	if sendUpdates, ok := args["sendUpdates"].(string); ok {
		input.SendUpdates = sendUpdates
	}

	if startStr, ok := args["start"].(string); ok && startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid start format: %v", err)), nil
		}
		input.Start = start
	}

	if endStr, ok := args["end"].(string); ok && endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid end format: %v", err)), nil
		}
		input.End = end
	}

	if attendeesStr, ok := args["attendees"].(string); ok && attendeesStr != "" {
		input.Attendees = strings.Split(attendeesStr, ",")
		for i := range input.Attendees {
			input.Attendees[i] = strings.TrimSpace(input.Attendees[i])
		}
	}

	if allDay, ok := args["allDay"].(bool); ok {
		input.AllDay = allDay
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := resolveCalendarArg(args, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	event, err := client.UpdateEvent(calendarID, eventID, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update event: %v", err)), nil
	}

	result := fmt.Sprintf("Successfully updated event: %s\n", event.Summary)
	result += fmt.Sprintf("ID: %s\n", event.ID)
	result += fmt.Sprintf("Start: %s\n", event.Start.Format(time.RFC3339))
	result += fmt.Sprintf("End: %s\n", event.End.Format(time.RFC3339))

	return mcp.NewToolResultText(result), nil
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	eventIDs, err := batch.ParseStringOrArray(args["eventId"], "eventId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := resolveCalendarArg(args, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	if len(eventIDs) == 1 {
		if err := client.DeleteEvent(calendarID, eventIDs[0]); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete event: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Successfully deleted event %s", eventIDs[0])), nil
	}

	results := batch.ProcessBatch(eventIDs, func(eventID string) (string, error) {
		if err := client.DeleteEvent(calendarID, eventID); err != nil {
			return "", err
		}
		return "Event deleted", nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleGetMeetLink(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := resolveCalendarArg(args, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	meetLink, err := client.GetGoogleMeetLink(calendarID, eventID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get Meet link: %v", err)), nil
	}

	if meetLink == "" {
		return mcp.NewToolResultText("No Google Meet link found for this event"), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Google Meet link: %s", meetLink)), nil
}
