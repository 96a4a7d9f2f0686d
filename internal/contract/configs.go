package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/schema"
)

// Default values for configuration.
const (
	DefaultDataPath        = "nba_shot_distribution_2019-20.csv"
	DefaultAddr            = ":8050"
	DefaultColorRange      = "90,120"
	DefaultAggregateGroups = "Leaders"
)

// Config holds the runtime configuration for the dashboard.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath     string
	Addr         string
	DefaultGroup string

	SizeColumn      schema.Column
	ColorColumn     schema.Column
	ColorRange      *schema.Range // nil means derive from the rows
	ColorScale      schema.ColorScale
	AggregateGroups []string

	TeamHeight    int
	LeadersHeight int
	ChartWidth    int

	Group      string // Group for one-shot commands such as export
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Data            string `mapstructure:"data"`
	SizeColumn      string `mapstructure:"size-column"`
	ColorColumn     string `mapstructure:"color-column"`
	ColorRange      string `mapstructure:"color-range"`
	ColorScale      string `mapstructure:"color-scale"`
	AggregateGroups string `mapstructure:"aggregate-groups"`
	TeamHeight      int    `mapstructure:"team-height"`
	LeadersHeight   int    `mapstructure:"leaders-height"`
	ChartWidth      int    `mapstructure:"chart-width"`
	DefaultGroup    string `mapstructure:"default-group"`
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	Width           int    `mapstructure:"width"`
	Color           string `mapstructure:"color"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`

	// --- Fields from exportCmd.Flags() ---
	Group string `mapstructure:"group"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.AggregateGroups != nil {
		clone.AggregateGroups = make([]string, len(c.AggregateGroups))
		copy(clone.AggregateGroups, c.AggregateGroups)
	}
	if c.ColorRange != nil {
		r := *c.ColorRange
		clone.ColorRange = &r
	}
	return &clone
}

// ControllerConfig converts the validated settings into the chart controller's parameters.
func (c *Config) ControllerConfig() core.ControllerConfig {
	clone := c.Clone()
	return core.ControllerConfig{
		Chart: core.ChartOptions{
			SizeColumn:  clone.SizeColumn,
			ColorColumn: clone.ColorColumn,
			ColorRange:  clone.ColorRange,
			ColorScale:  clone.ColorScale,
		},
		AggregateGroups: clone.AggregateGroups,
		TeamHeight:      clone.TeamHeight,
		LeadersHeight:   clone.LeadersHeight,
		Width:           clone.ChartWidth,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processChartInputs(cfg, input); err != nil {
		return err
	}
	return processCanvasSizes(cfg, input)
}

// validateSimpleInputs processes and validates all non-chart fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Group = strings.TrimSpace(input.Group)
	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	cfg.DataPath = strings.TrimSpace(input.Data)
	if cfg.DataPath == "" {
		return fmt.Errorf("data path must not be empty")
	}
	cfg.DefaultGroup = strings.TrimSpace(input.DefaultGroup)
	if cfg.DefaultGroup == "" {
		cfg.DefaultGroup = core.DefaultGroup
	}

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	color.NoColor = !colors

	// --- 1. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, svg, png, parquet", input.Output)
	}
	if input.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", input.Width)
	}
	return nil
}

// processChartInputs validates the encoding columns, color range and scale.
func processChartInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.SizeColumn = schema.Column(strings.ToLower(strings.TrimSpace(input.SizeColumn)))
	if _, ok := schema.ValidColumns[cfg.SizeColumn]; !ok {
		return fmt.Errorf("invalid size column '%s': %w", input.SizeColumn, core.ErrUnknownColumn)
	}
	cfg.ColorColumn = schema.Column(strings.ToLower(strings.TrimSpace(input.ColorColumn)))
	if _, ok := schema.ValidColumns[cfg.ColorColumn]; !ok {
		return fmt.Errorf("invalid color column '%s': %w", input.ColorColumn, core.ErrUnknownColumn)
	}

	r, err := ParseColorRange(input.ColorRange)
	if err != nil {
		return fmt.Errorf("invalid color range: %w", err)
	}
	cfg.ColorRange = r

	cfg.ColorScale = schema.ColorScale(strings.TrimSpace(input.ColorScale))
	if cfg.ColorScale == "" {
		cfg.ColorScale = schema.DefaultColorScale
	}
	if _, ok := schema.ValidColorScales[cfg.ColorScale]; !ok {
		return fmt.Errorf("invalid color scale '%s'. must be RdYlBu, RdYlBu_r, RdBu, RdBu_r, Viridis", input.ColorScale)
	}

	cfg.AggregateGroups = SplitList(input.AggregateGroups)
	return nil
}

// processCanvasSizes validates the chart canvas sizes.
func processCanvasSizes(cfg *Config, input *ConfigRawInput) error {
	sizes := []struct {
		name  string
		value int
		dst   *int
	}{
		{"team-height", input.TeamHeight, &cfg.TeamHeight},
		{"leaders-height", input.LeadersHeight, &cfg.LeadersHeight},
		{"chart-width", input.ChartWidth, &cfg.ChartWidth},
	}
	for _, s := range sizes {
		if s.value <= 0 {
			return fmt.Errorf("%s must be greater than 0 (received %d)", s.name, s.value)
		}
		*s.dst = s.value
	}
	return nil
}

// ParseColorRange parses "min,max" into a range. An empty string yields nil,
// which means the range is derived from the data.
func ParseColorRange(s string) (*schema.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected min,max but got %q", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid min %q: %w", parts[0], err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid max %q: %w", parts[1], err)
	}
	if !(lo < hi) {
		return nil, fmt.Errorf("min %v must be less than max %v", lo, hi)
	}
	return &schema.Range{Min: lo, Max: hi}, nil
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	out := []string{}
	for p := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
