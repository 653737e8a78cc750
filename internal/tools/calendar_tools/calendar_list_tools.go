package calendar_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bytorbix/agendo/internal/calendar"
	"github.com/bytorbix/agendo/internal/instrumentation"
	"github.com/bytorbix/agendo/internal/server"
	"github.com/bytorbix/agendo/internal/tools/common"
)

// RegisterCalendarListTools registers the tools for browsing a user's
// calendar list.
func RegisterCalendarListTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listCalendarsTool := mcp.NewTool("calendar_list_calendars",
		mcp.WithDescription("List all calendars accessible to the user"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(listCalendarsTool, common.InstrumentedToolHandlerWithService(
		"calendar_list_calendars", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListCalendars(ctx, request, sc)
		}))

	getCalendarTool := mcp.NewTool("calendar_get_calendar",
		mcp.WithDescription("Get information about a specific calendar"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Required(),
			mcp.Description("Calendar ID or calendar name (use 'primary' for the primary calendar)"),
		),
	)

	s.AddTool(getCalendarTool, common.InstrumentedToolHandlerWithService(
		"calendar_get_calendar", instrumentation.ServiceCalendar, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetCalendar(ctx, request, sc)
		}))

	return nil
}

func writeCalendarDetails(sb *strings.Builder, indent string, cal calendar.CalendarInfo) {
	fmt.Fprintf(sb, "%sID: %s\n", indent, cal.ID)
	fmt.Fprintf(sb, "%sAccess Role: %s\n", indent, cal.AccessRole)
	if cal.Description != "" {
		fmt.Fprintf(sb, "%sDescription: %s\n", indent, cal.Description)
	}
	if cal.TimeZone != "" {
		fmt.Fprintf(sb, "%sTime Zone: %s\n", indent, cal.TimeZone)
	}
}

func handleListCalendars(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendars, err := client.ListCalendars()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list calendars: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d calendar(s):\n\n", len(calendars))
	for i, cal := range calendars {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, cal.Summary)
		if cal.Primary {
			sb.WriteString("   [PRIMARY]\n")
		}
		writeCalendarDetails(&sb, "   ", cal)
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleGetCalendar(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	calendarArg, ok := args["calendarId"].(string)
	if !ok || calendarArg == "" {
		return mcp.NewToolResultError("calendarId is required"), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calendarID, err := client.ResolveCalendarID(calendarArg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar: %v", err)), nil
	}

	cal, err := client.GetCalendar(calendarID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get calendar: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Calendar: %s\n", cal.Summary)
	if cal.Primary {
		sb.WriteString("Type: PRIMARY\n")
	}
	writeCalendarDetails(&sb, "", *cal)

	return mcp.NewToolResultText(sb.String()), nil
}
