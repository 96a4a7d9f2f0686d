package cmd

import (
	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the shotdash MCP server",
	Long:    `Launch an MCP server over stdio that lets AI agents list groups and fetch shot charts.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctrl, err := loadController()
		if err != nil {
			return err
		}
		contract.LogInfo("Serving MCP over stdio")
		return mcp.StartMCPServer(rootCtx, ctrl, core.BuildLayout(ctrl, cfg.DefaultGroup).Dropdown.Default)
	},
}
