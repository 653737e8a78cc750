package calendar_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bytorbix/agendo/internal/instrumentation"
	"github.com/bytorbix/agendo/internal/server"
	"github.com/bytorbix/agendo/internal/tools/common"
)

// RegisterFreeBusyTools registers the availability query tool backed by the
// Calendar freebusy API.
func RegisterFreeBusyTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	queryFreeBusyTool := mcp.NewTool("calendar_query_freebusy",
		mcp.WithDescription("Check availability for one or more calendars/attendees in a time range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start time for the range (RFC3339 format, e.g., '2025-01-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End time for the range (RFC3339 format, e.g., '2025-01-31T23:59:59Z')"),
		),
		mcp.WithString("calendars",
			mcp.Required(),
			mcp.Description("Comma-separated list of calendar IDs or email addresses to check"),
		),
	)

	s.AddTool(queryFreeBusyTool, common.InstrumentedToolHandlerWithService(
		"calendar_query_freebusy", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleQueryFreeBusy(ctx, request, sc)
		}))

	return nil
}

func handleQueryFreeBusy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	calendarsStr, ok := args["calendars"].(string)
	if !ok || calendarsStr == "" {
		return mcp.NewToolResultError("calendars is required"), nil
	}
	calendars := strings.Split(calendarsStr, ",")
	for i := range calendars {
		calendars[i] = strings.TrimSpace(calendars[i])
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	freeBusyInfos, err := client.QueryFreeBusy(timeMin, timeMax, calendars)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to query free/busy: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Free/Busy information for %d calendar(s):\n\n", len(freeBusyInfos))
	for _, info := range freeBusyInfos {
		fmt.Fprintf(&sb, "Calendar: %s\n", info.Calendar)

		if len(info.Errors) > 0 {
			fmt.Fprintf(&sb, "  Errors: %s\n", strings.Join(info.Errors, ", "))
		}

		if len(info.Busy) == 0 {
			sb.WriteString("  Status: FREE for entire range\n")
		} else {
			fmt.Fprintf(&sb, "  Busy periods: %d\n", len(info.Busy))
			for i, busy := range info.Busy {
				fmt.Fprintf(&sb, "  %d. %s to %s\n",
					i+1,
					busy.Start.Format("2006-01-02 15:04"),
					busy.End.Format("2006-01-02 15:04"))
			}
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}
