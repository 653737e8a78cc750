// Package schedule_tools provides MCP tools for scheduling assistance on top
// of Google Calendar.
//
// The tools combine the availability scanner from internal/schedule with the
// calendar client: finding open time blocks within working hours, checking a
// day (or a specific block of it) for conflicts, rendering a unified week view
// of events and scheduled tasks, and judging whether a batch of tasks fits
// into the coming days.
//
// Dates and times accept both machine formats (YYYY-MM-DD, HH:MM) and common
// phrases such as "tomorrow", "friday", "afternoon" or "2pm".
package schedule_tools
