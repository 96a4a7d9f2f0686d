package cmd

import (
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/internal/outwriter"
	"github.com/spf13/cobra"
)

// groupsCmd lists the dropdown options.
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the selectable groups and their kinds.",
	Long: `List every distinct group in the dataset, sorted, with its kind
(team or leaders). The default group is marked in the table.

Examples:
  shotdash groups
  shotdash groups --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctrl, err := loadController()
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}
		if err := outwriter.NewOutWriter().WriteGroups(ctrl.Options(), cfg); err != nil {
			contract.LogFatal("Cannot write groups", err)
		}
	},
}
