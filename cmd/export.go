package cmd

import (
	"fmt"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/internal/outwriter"
	"github.com/spf13/cobra"
)

// exportCmd writes one chart without starting the server.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the chart of one group.",
	Long: `Build the chart of one group and write it in the chosen format.

Formats:
- text: the mark table
- csv: the mark table as CSV
- json: the figure, exactly as the dashboard receives it
- svg, png: static renderings
- parquet: the group's raw rows

Examples:
  shotdash export --group TOR --output svg --output-file tor.svg
  shotdash export --group Leaders --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctrl, err := loadController()
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}
		group := cfg.Group
		if group == "" {
			group = core.BuildLayout(ctrl, cfg.DefaultGroup).Dropdown.Default
		}
		if _, ok := ctrl.Selection(group); !ok {
			contract.LogWarn("Unknown group", fmt.Errorf("%q has no rows, the chart is empty", group))
		}
		if err := outwriter.NewOutWriter().WriteChart(ctrl.Update(group), ctrl.Rows(group), cfg); err != nil {
			contract.LogFatal("Cannot export chart", err)
		}
	},
}
