package cmd

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bytorbix/agendo/internal/server"
)

func TestRegisterAllTools(t *testing.T) {
	ctx := context.Background()

	sc, err := server.NewServerContext(ctx)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() {
		_ = sc.Shutdown()
	}()

	mcpSrv := mcpserver.NewMCPServer("agendo-test", "0.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	if err := registerAllTools(mcpSrv, sc); err != nil {
		t.Fatalf("registerAllTools() error = %v", err)
	}

	tools := mcpSrv.ListTools()
	byName := make(map[string]bool, len(tools))
	for _, st := range tools {
		byName[st.Tool.Name] = true
	}

	expected := []string{
		"google_get_auth_url",
		"google_save_auth_code",
		"calendar_list_events",
		"calendar_list_day_events",
		"calendar_search_events",
		"calendar_get_event",
		"calendar_get_meet_link",
		"calendar_create_event",
		"calendar_update_event",
		"calendar_delete_event",
		"calendar_list_calendars",
		"calendar_get_calendar",
		"calendar_query_freebusy",
		"schedule_find_free_time",
		"schedule_check_availability",
		"schedule_week_schedule",
		"schedule_suggest_times",
	}
	for _, name := range expected {
		if !byName[name] {
			t.Errorf("expected tool %q to be registered", name)
		}
	}
}

func TestRegisterAllToolsReadOnly(t *testing.T) {
	ctx := context.Background()

	sc, err := server.NewServerContext(ctx)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() {
		_ = sc.Shutdown()
	}()
	sc.SetReadOnly(true)

	mcpSrv := mcpserver.NewMCPServer("agendo-test", "0.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	if err := registerAllTools(mcpSrv, sc); err != nil {
		t.Fatalf("registerAllTools() error = %v", err)
	}

	byName := make(map[string]bool)
	for _, st := range mcpSrv.ListTools() {
		byName[st.Tool.Name] = true
	}

	for _, name := range []string{"calendar_create_event", "calendar_update_event", "calendar_delete_event"} {
		if byName[name] {
			t.Errorf("mutating tool %q must not be registered in read-only mode", name)
		}
	}
	if !byName["calendar_list_events"] {
		t.Error("read-only mode must still register calendar_list_events")
	}
}
