// Package cmd defines the command-line interface for shotdash.
package cmd

import (
	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data", contract.DefaultDataPath, "Path to the shot distribution dataset (csv, tsv or parquet)")
	rootCmd.PersistentFlags().String("addr", contract.DefaultAddr, "Address for the dashboard HTTP server")
	rootCmd.PersistentFlags().String("default-group", core.DefaultGroup, "Group selected when the page opens")
	rootCmd.PersistentFlags().String("size-column", string(schema.ShotsFreqCol), "Column encoded as bubble size")
	rootCmd.PersistentFlags().String("color-column", string(schema.PlPpsCol), "Column encoded as bubble color")
	rootCmd.PersistentFlags().String("color-range", contract.DefaultColorRange, "Color range as min,max (empty = derive from data)")
	rootCmd.PersistentFlags().String("color-scale", string(schema.DefaultColorScale), "Color scale: RdYlBu or RdYlBu_r or RdBu or RdBu_r or Viridis")
	rootCmd.PersistentFlags().String("aggregate-groups", contract.DefaultAggregateGroups, "Comma-separated groups that aggregate several teams")
	rootCmd.PersistentFlags().Int("team-height", core.DefaultTeamHeight, "Chart height for team groups")
	rootCmd.PersistentFlags().Int("leaders-height", core.DefaultLeadersHeight, "Chart height for aggregate groups")
	rootCmd.PersistentFlags().Int("chart-width", core.DefaultChartWidth, "Chart width")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or svg or png or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().StringP("group", "g", "", "Group to export (defaults to --default-group)")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}
}
