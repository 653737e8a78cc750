package schedule_tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bytorbix/agendo/internal/calendar"
	"github.com/bytorbix/agendo/internal/google"
	"github.com/bytorbix/agendo/internal/instrumentation"
	"github.com/bytorbix/agendo/internal/schedule"
	"github.com/bytorbix/agendo/internal/server"
	"github.com/bytorbix/agendo/internal/tools/common"
)

// RegisterScheduleTools registers scheduling assistant tools with the MCP server
func RegisterScheduleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Find free time tool
	findFreeTimeTool := mcp.NewTool("schedule_find_free_time",
		mcp.WithDescription("Find open time slots in the calendar for a block of a given duration"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Description("Desired slot duration in minutes (default: 60)"),
		),
		mcp.WithNumber("horizonDays",
			mcp.Description("How many days ahead to search (default: 7)"),
		),
		mcp.WithNumber("workStartHour",
			mcp.Description("Start of the working day, 0-23 (default: 9)"),
		),
		mcp.WithNumber("workEndHour",
			mcp.Description("End of the working day, 0-23 (default: 17)"),
		),
		mcp.WithBoolean("includeWeekends",
			mcp.Description("Include Saturday and Sunday in the search (default: false)"),
		),
		mcp.WithString("timeZone",
			mcp.Description("IANA time zone for working hours (e.g., 'Europe/Berlin'). Defaults to UTC."),
		),
	)

	s.AddTool(findFreeTimeTool, common.InstrumentedToolHandlerWithService(
		"schedule_find_free_time", instrumentation.ServiceSchedule, instrumentation.OperationScan, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindFreeTime(ctx, request, sc)
		}))

	// Check availability tool
	checkAvailabilityTool := mcp.NewTool("schedule_check_availability",
		mcp.WithDescription("Check whether a given day and time is free, listing any conflicting events"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("The day to check: YYYY-MM-DD or a phrase like 'today', 'tomorrow', 'friday'"),
		),
		mcp.WithString("time",
			mcp.Description("Optional time of day: '14:00', '2pm', 'morning', 'afternoon', 'evening'"),
		),
		mcp.WithString("timeZone",
			mcp.Description("IANA time zone for day boundaries. Defaults to UTC."),
		),
	)

	s.AddTool(checkAvailabilityTool, common.InstrumentedToolHandlerWithService(
		"schedule_check_availability", instrumentation.ServiceSchedule, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCheckAvailability(ctx, request, sc)
		}))

	// Week schedule tool
	weekScheduleTool := mcp.NewTool("schedule_week_schedule",
		mcp.WithDescription("Show a unified seven-day view of calendar events and scheduled tasks"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("startDate",
			mcp.Description("First day of the view: YYYY-MM-DD or a phrase like 'today', 'monday' (default: today)"),
		),
		mcp.WithString("taskCalendar",
			mcp.Description("Name of the calendar holding scheduled tasks (default: 'Todoist')"),
		),
		mcp.WithString("timeZone",
			mcp.Description("IANA time zone for day boundaries. Defaults to UTC."),
		),
	)

	s.AddTool(weekScheduleTool, common.InstrumentedToolHandlerWithService(
		"schedule_week_schedule", instrumentation.ServiceSchedule, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleWeekSchedule(ctx, request, sc)
		}))

	// Suggest times tool
	suggestTimesTool := mcp.NewTool("schedule_suggest_times",
		mcp.WithDescription("Suggest time blocks for a set of tasks and judge whether the workload fits the horizon"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
		mcp.WithNumber("taskCount",
			mcp.Required(),
			mcp.Description("Number of tasks to schedule"),
		),
		mcp.WithNumber("hoursPerTask",
			mcp.Description("Estimated hours per task (default: 1)"),
		),
		mcp.WithNumber("horizonDays",
			mcp.Description("How many days ahead to plan (default: 7)"),
		),
		mcp.WithString("timeZone",
			mcp.Description("IANA time zone for working hours. Defaults to UTC."),
		),
	)

	s.AddTool(suggestTimesTool, common.InstrumentedToolHandlerWithService(
		"schedule_suggest_times", instrumentation.ServiceSchedule, instrumentation.OperationScan, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSuggestTimes(ctx, request, sc)
		}))

	return nil
}

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		if !calendar.HasTokenForAccount(account) {
			return nil, errors.New(google.GetAuthenticationErrorMessage(account))
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}
	return client, nil
}

func searchConfigFromArgs(args map[string]interface{}) schedule.SearchConfig {
	cfg := schedule.DefaultSearchConfig()

	if v, ok := args["durationMinutes"].(float64); ok && v > 0 {
		cfg.DurationNeeded = int(v)
	}
	if v, ok := args["horizonDays"].(float64); ok && v >= 0 {
		cfg.HorizonDays = int(v)
	}
	if v, ok := args["workStartHour"].(float64); ok {
		cfg.WorkStartHour = int(v)
	}
	if v, ok := args["workEndHour"].(float64); ok {
		cfg.WorkEndHour = int(v)
	}
	if v, ok := args["includeWeekends"].(bool); ok {
		cfg.ExcludeWeekends = !v
	}
	if v, ok := args["timeZone"].(string); ok && v != "" {
		cfg.TimeZone = v
	}

	return cfg
}

func loadLocationArg(args map[string]interface{}) (*time.Location, error) {
	tzVal, ok := args["timeZone"].(string)
	if !ok || tzVal == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(tzVal)
}

func formatSlots(slots []schedule.FreeSlot) string {
	var result string
	for i, slot := range slots {
		result += fmt.Sprintf("%d. %s from %s to %s (%d min)\n",
			i+1,
			slot.Start.Format("Mon, Jan 2"),
			slot.Start.Format("15:04"),
			slot.End.Format("15:04"),
			slot.DurationMinutes)
	}
	return result
}

func handleFindFreeTime(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	cfg := searchConfigFromArgs(args)
	if err := cfg.Validate(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid search parameters: %v", err)), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID := "primary"
	if calIDVal, ok := args["calendarId"].(string); ok && calIDVal != "" {
		calendarID = calIDVal
	}
	calendarID, err = client.ResolveCalendarID(calendarID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	slots, err := client.FindFreeSlots([]string{calendarID}, cfg, time.Now())
	if metrics := sc.Metrics(); metrics != nil {
		status := instrumentation.StatusSuccess
		if err != nil {
			status = instrumentation.StatusError
		}
		metrics.RecordAvailabilityScan(ctx, status, len(slots))
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find free time: %v", err)), nil
	}

	if len(slots) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No free %d-minute slots found in the next %d day(s) within working hours %02d:00-%02d:00",
			cfg.DurationNeeded, cfg.HorizonDays, cfg.WorkStartHour, cfg.WorkEndHour)), nil
	}

	result := fmt.Sprintf("Found %d free slot(s) for a %d-minute block:\n\n", len(slots), cfg.DurationNeeded)
	result += formatSlots(slots)
	return mcp.NewToolResultText(result), nil
}

func handleCheckAvailability(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	dateStr, ok := args["date"].(string)
	if !ok || dateStr == "" {
		return mcp.NewToolResultError("date is required"), nil
	}

	loc, err := loadLocationArg(args)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeZone: %v", err)), nil
	}

	day := schedule.ParseHumanDate(dateStr, time.Now().In(loc))

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID := "primary"
	if calIDVal, ok := args["calendarId"].(string); ok && calIDVal != "" {
		calendarID = calIDVal
	}
	calendarID, err = client.ResolveCalendarID(calendarID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	events, err := client.ListDayEvents(calendarID, day, loc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to check availability: %v", err)), nil
	}

	dayLabel := day.Format("Monday, January 2")

	// When a time of day is given, narrow the check to that block
	if timeStr, ok := args["time"].(string); ok && timeStr != "" {
		blockStart, blockEnd := schedule.ParseHumanTime(timeStr, day)
		var conflicts []calendar.EventSummary
		for _, event := range events {
			if event.AllDay {
				continue
			}
			if event.Start.Before(blockEnd) && event.End.After(blockStart) {
				conflicts = append(conflicts, event)
			}
		}

		if len(conflicts) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("%s %s-%s is FREE",
				dayLabel, blockStart.Format("15:04"), blockEnd.Format("15:04"))), nil
		}

		result := fmt.Sprintf("%s %s-%s has %d conflict(s):\n\n",
			dayLabel, blockStart.Format("15:04"), blockEnd.Format("15:04"), len(conflicts))
		for i, event := range conflicts {
			result += fmt.Sprintf("%d. %s (%s-%s)\n", i+1, event.Summary,
				event.Start.In(loc).Format("15:04"), event.End.In(loc).Format("15:04"))
		}
		return mcp.NewToolResultText(result), nil
	}

	if len(events) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("%s is completely FREE", dayLabel)), nil
	}

	result := fmt.Sprintf("%s has %d event(s):\n\n", dayLabel, len(events))
	for i, event := range events {
		if event.AllDay {
			result += fmt.Sprintf("%d. %s (all day)\n", i+1, event.Summary)
		} else {
			result += fmt.Sprintf("%d. %s (%s-%s)\n", i+1, event.Summary,
				event.Start.In(loc).Format("15:04"), event.End.In(loc).Format("15:04"))
		}
	}
	return mcp.NewToolResultText(result), nil
}

func handleWeekSchedule(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	loc, err := loadLocationArg(args)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeZone: %v", err)), nil
	}

	start := time.Now().In(loc)
	if startVal, ok := args["startDate"].(string); ok && startVal != "" {
		start = schedule.ParseHumanDate(startVal, start)
	} else {
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	}

	taskCalendar := "Todoist"
	if tcVal, ok := args["taskCalendar"].(string); ok && tcVal != "" {
		taskCalendar = tcVal
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// The task calendar is optional; skip it silently when absent
	taskCalendarID, taskErr := client.ResolveCalendarID(taskCalendar)

	result := fmt.Sprintf("Schedule for the week of %s:\n\n", start.Format("Monday, January 2"))
	for offset := 0; offset < 7; offset++ {
		day := start.AddDate(0, 0, offset)
		result += fmt.Sprintf("%s\n", day.Format("Monday, Jan 2"))

		events, err := client.ListDayEvents("primary", day, loc)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list events for %s: %v",
				day.Format("2006-01-02"), err)), nil
		}

		var tasks []calendar.EventSummary
		if taskErr == nil {
			tasks, err = client.ListDayEvents(taskCalendarID, day, loc)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list tasks for %s: %v",
					day.Format("2006-01-02"), err)), nil
			}
		}

		if len(events) == 0 && len(tasks) == 0 {
			result += "  (free)\n\n"
			continue
		}

		for _, event := range events {
			if event.AllDay {
				result += fmt.Sprintf("  [event] %s (all day)\n", event.Summary)
			} else {
				result += fmt.Sprintf("  [event] %s-%s %s\n",
					event.Start.In(loc).Format("15:04"), event.End.In(loc).Format("15:04"), event.Summary)
			}
		}
		for _, task := range tasks {
			if task.AllDay {
				result += fmt.Sprintf("  [task]  %s (all day)\n", task.Summary)
			} else {
				result += fmt.Sprintf("  [task]  %s-%s %s\n",
					task.Start.In(loc).Format("15:04"), task.End.In(loc).Format("15:04"), task.Summary)
			}
		}
		result += "\n"
	}

	return mcp.NewToolResultText(result), nil
}

func handleSuggestTimes(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	taskCountVal, ok := args["taskCount"].(float64)
	if !ok || taskCountVal <= 0 {
		return mcp.NewToolResultError("taskCount is required and must be positive"), nil
	}
	taskCount := int(taskCountVal)

	hoursPerTask := 1.0
	if v, ok := args["hoursPerTask"].(float64); ok && v > 0 {
		hoursPerTask = v
	}

	horizonDays := 7
	if v, ok := args["horizonDays"].(float64); ok && v > 0 {
		horizonDays = int(v)
	}

	cfg := schedule.DefaultSearchConfig()
	cfg.DurationNeeded = int(hoursPerTask * 60)
	cfg.HorizonDays = horizonDays
	if tzVal, ok := args["timeZone"].(string); ok && tzVal != "" {
		cfg.TimeZone = tzVal
	}
	if err := cfg.Validate(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid planning parameters: %v", err)), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID := "primary"
	if calIDVal, ok := args["calendarId"].(string); ok && calIDVal != "" {
		calendarID = calIDVal
	}
	calendarID, err = client.ResolveCalendarID(calendarID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	slots, err := client.FindFreeSlots([]string{calendarID}, cfg, time.Now())
	if metrics := sc.Metrics(); metrics != nil {
		status := instrumentation.StatusSuccess
		if err != nil {
			status = instrumentation.StatusError
		}
		metrics.RecordAvailabilityScan(ctx, status, len(slots))
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to plan tasks: %v", err)), nil
	}

	totalHours := float64(taskCount) * hoursPerTask
	hoursPerDay := totalHours / float64(horizonDays)

	feasibility := "feasible"
	if hoursPerDay > 8 {
		feasibility = "challenging"
	}

	result := fmt.Sprintf("Planning %d task(s) at %.1f hour(s) each: %.1f hours total over %d day(s) (%.1f h/day) - %s\n\n",
		taskCount, hoursPerTask, totalHours, horizonDays, hoursPerDay, feasibility)

	if len(slots) == 0 {
		result += "No free blocks of sufficient length found. Consider shortening tasks or extending the horizon."
		return mcp.NewToolResultText(result), nil
	}

	suggested := slots
	if len(suggested) > taskCount {
		suggested = suggested[:taskCount]
	}

	result += fmt.Sprintf("Suggested block(s) (%d of %d found):\n\n", len(suggested), len(slots))
	result += formatSlots(suggested)

	if len(suggested) < taskCount {
		result += fmt.Sprintf("\nOnly %d block(s) available for %d task(s); the remaining tasks need another horizon.",
			len(suggested), taskCount)
	}

	return mcp.NewToolResultText(result), nil
}
