package calendar_tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bytorbix/agendo/internal/calendar"
	"github.com/bytorbix/agendo/internal/google"
	"github.com/bytorbix/agendo/internal/server"
)

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
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

// requiredTimeArg reads a mandatory RFC3339 timestamp argument. The returned
// error message is suitable for an error tool result.
func requiredTimeArg(args map[string]interface{}, name string) (time.Time, error) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("Invalid %s format: %v", name, err)
	}
	return parsed, nil
}

// RegisterCalendarTools registers all Calendar-related tools with the MCP server
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}

	if err := RegisterCalendarListTools(s, sc); err != nil {
		return fmt.Errorf("failed to register calendar list tools: %w", err)
	}

	if err := RegisterFreeBusyTools(s, sc); err != nil {
		return fmt.Errorf("failed to register free/busy tools: %w", err)
	}

	return nil
}
