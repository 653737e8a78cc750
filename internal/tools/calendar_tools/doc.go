// Package calendar_tools registers the Google Calendar MCP tools: listing,
// searching, creating, updating, and deleting events, browsing calendars,
// and querying free/busy availability.
//
// Every tool takes an optional account argument so one server can act on
// several authorized Google accounts.
package calendar_tools
