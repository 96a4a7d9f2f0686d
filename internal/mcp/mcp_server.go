// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/shotdash/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Output formats of get_shot_chart.
const (
	FormatJSON    = "json"
	FormatSummary = "summary"
)

// NewMCPServer initializes and configures the shotdash MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(provider contract.ChartProvider, defaultGroup string) *server.MCPServer {
	s := server.NewMCPServer(
		"Shot Distribution Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		provider:     provider,
		defaultGroup: defaultGroup,
	}

	s.AddTool(mcp.NewTool("list_groups",
		mcp.WithDescription("List the selectable groups (team codes and aggregate views such as Leaders) with their kinds."),
	), h.handleListGroups)

	s.AddTool(mcp.NewTool("get_shot_chart",
		mcp.WithDescription("Build the shot distribution chart of one group: one bubble per player and minute, sized by shot frequency and colored by efficiency."),
		mcp.WithString("group", mcp.Description("Group to chart (defaults to the dashboard default group).")),
		mcp.WithString("format", mcp.Description("Response format: 'json' for the full figure, 'summary' for a compact description. Defaults to 'summary'."), mcp.Enum(FormatJSON, FormatSummary)),
	), h.handleGetShotChart)

	return s
}

// StartMCPServer serves the shotdash MCP server over stdio.
func StartMCPServer(_ context.Context, provider contract.ChartProvider, defaultGroup string) error {
	s := NewMCPServer(provider, defaultGroup)
	return server.ServeStdio(s)
}
