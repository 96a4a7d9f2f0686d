package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	provider     contract.ChartProvider
	defaultGroup string
}

func (h *toolHandler) handleListGroups(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(h.provider.Options(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetShotChart(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	group := strings.TrimSpace(request.GetString("group", ""))
	if group == "" {
		group = h.defaultGroup
	}
	format := strings.ToLower(request.GetString("format", FormatSummary))

	var data any
	switch format {
	case FormatJSON:
		data = h.provider.Update(group)
	case FormatSummary:
		data = core.Summarize(h.provider.Update(group))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid format %q: must be json or summary", format)), nil
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
