// Package cmd implements the command-line interface for agendo.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide calendar and scheduling tools
//   - auth: Run the Google OAuth flow for a named account
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
