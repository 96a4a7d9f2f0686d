package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/internal/loader"
	"github.com/huangsam/shotdash/schema"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
// Without a subcommand it serves the dashboard.
var rootCmd = &cobra.Command{
	Use:   "shotdash",
	Short: "Serve an interactive dashboard of NBA shot distributions per minute.",
	Long: `Shotdash charts how often and how well each player shoots in every minute
of regulation time. Pick a team (or the league Leaders) from the dropdown to
redraw the chart.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runServe()
	},
}

// initConfig reads in the .env file, the config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		contract.LogWarn("Cannot load .env file", err)
	}

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".shotdash")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("SHOTDASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("data", contract.DefaultDataPath)
	viper.SetDefault("addr", contract.DefaultAddr)
	viper.SetDefault("default-group", core.DefaultGroup)
	viper.SetDefault("size-column", schema.ShotsFreqCol)
	viper.SetDefault("color-column", schema.PlPpsCol)
	viper.SetDefault("color-range", contract.DefaultColorRange)
	viper.SetDefault("color-scale", schema.DefaultColorScale)
	viper.SetDefault("aggregate-groups", contract.DefaultAggregateGroups)
	viper.SetDefault("team-height", core.DefaultTeamHeight)
	viper.SetDefault("leaders-height", core.DefaultLeadersHeight)
	viper.SetDefault("chart-width", core.DefaultChartWidth)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and parsing into the global cfg.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadController reads the dataset once and builds the chart controller over it.
func loadController() (*core.Controller, error) {
	ds, err := loader.Load(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", cfg.DataPath, err)
	}
	ctrl, err := core.NewController(ds, cfg.ControllerConfig())
	if err != nil {
		return nil, fmt.Errorf("invalid chart configuration: %w", err)
	}
	contract.LogInfo("Loaded %d rows in %d groups from %s", ds.Len(), len(ds.Groups()), cfg.DataPath)
	return ctrl, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
