package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bytorbix/agendo/internal/server"
)

func newGenerateDocsCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "generate-docs",
		Short: "Generate MCP tool documentation",
		Long: `Generate markdown documentation for all available MCP tools.
The tool registry is introspected directly, so the output always matches
what the server actually exposes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateDocs(outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runGenerateDocs(outputFile string) error {
	// Registration needs a server context but no credentials.
	serverContext, err := server.NewServerContext(context.Background())
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		_ = serverContext.Shutdown()
	}()

	mcpSrv := mcpserver.NewMCPServer("agendo", version,
		mcpserver.WithToolCapabilities(true),
	)

	// Include mutating tools; docs cover the full surface.
	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	serverTools := mcpSrv.ListTools()
	tools := make([]mcp.Tool, 0, len(serverTools))
	for _, serverTool := range serverTools {
		tools = append(tools, serverTool.Tool)
	}

	markdown := renderToolsMarkdown(tools)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Documentation written to: %s\n", outputFile)
		return nil
	}
	fmt.Print(markdown)
	return nil
}

func renderToolsMarkdown(tools []mcp.Tool) string {
	var sb strings.Builder

	sb.WriteString("# MCP Tools Reference\n\n")
	sb.WriteString("This document lists every tool exposed when running agendo as an MCP server.\n\n")
	sb.WriteString("**Note:** This documentation is generated from the tool definitions.\n\n")

	byCategory := make(map[string][]mcp.Tool)
	for _, tool := range tools {
		category := toolCategory(tool.Name)
		byCategory[category] = append(byCategory[category], tool)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	sb.WriteString("## Table of Contents\n\n")
	for _, category := range categories {
		anchor := strings.ToLower(strings.ReplaceAll(category, " ", "-"))
		fmt.Fprintf(&sb, "- [%s](#%s)\n", category, anchor)
	}
	sb.WriteString("\n")

	sb.WriteString("## Multi-Account Support\n\n")
	sb.WriteString("All tools accept an optional `account` parameter selecting which Google account to act on:\n\n")
	sb.WriteString("- **Default behavior:** without `account`, the `default` account is used\n")
	sb.WriteString("- **Multiple accounts:** several Google accounts can be authorized side by side (e.g., `work`, `personal`)\n")
	sb.WriteString("- **Per-call selection:** each tool call may name a different account\n\n")

	for _, category := range categories {
		categoryTools := byCategory[category]
		sort.Slice(categoryTools, func(i, j int) bool {
			return categoryTools[i].Name < categoryTools[j].Name
		})

		fmt.Fprintf(&sb, "## %s\n\n", category)
		for _, tool := range categoryTools {
			sb.WriteString(renderToolMarkdown(tool))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func toolCategory(name string) string {
	prefix, _, _ := strings.Cut(name, "_")
	switch prefix {
	case "calendar":
		return "Calendar Tools"
	case "schedule":
		return "Scheduling Tools"
	case "google":
		return "Authentication Tools"
	default:
		return "Other"
	}
}

func renderToolMarkdown(tool mcp.Tool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "### %s\n\n", tool.Name)
	if tool.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", tool.Description)
	}

	if len(tool.InputSchema.Properties) == 0 {
		return sb.String()
	}

	sb.WriteString("**Arguments:**\n")

	propNames := make([]string, 0, len(tool.InputSchema.Properties))
	for name := range tool.InputSchema.Properties {
		propNames = append(propNames, name)
	}
	sort.Strings(propNames)

	for _, name := range propNames {
		propMap, ok := tool.InputSchema.Properties[name].(map[string]interface{})
		if !ok {
			continue
		}

		requiredStr := "optional"
		if slices.Contains(tool.InputSchema.Required, name) {
			requiredStr = "required"
		}

		fmt.Fprintf(&sb, "- `%s` (%s): ", name, requiredStr)
		if desc, ok := propMap["description"].(string); ok {
			sb.WriteString(desc)
		} else if propType, ok := propMap["type"].(string); ok {
			fmt.Fprintf(&sb, "%s parameter", propType)
		} else {
			sb.WriteString("any parameter")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
