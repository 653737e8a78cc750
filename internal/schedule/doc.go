// Package schedule implements the availability scanner at the heart of
// agendo's scheduling tools.
//
// The scanner is a pure function over already-resolved busy intervals: given
// a working-hours window, a search horizon and a requested duration, it walks
// each day and reports the gaps large enough to hold the duration. All
// upstream concerns (fetching events, freebusy queries, timezone strings from
// user input) live in the calendar adapter layer, so the algorithm stays
// unit-testable without network access.
//
// The package also carries the natural-language date/time parsing heuristics
// used by the MCP tool layer ("tomorrow", "friday", "2 PM", "30 min").
package schedule
