package core

import (
	"fmt"
	"slices"

	"github.com/huangsam/shotdash/schema"
)

// Default canvas sizes, in pixels.
const (
	DefaultTeamHeight    = 500
	DefaultLeadersHeight = 850
	DefaultChartWidth    = 1250
)

// DefaultAggregateGroups are the group values that stand for an aggregate view.
var DefaultAggregateGroups = []string{"Leaders"}

// ControllerConfig holds the fixed parameters of the chart update.
type ControllerConfig struct {
	Chart           ChartOptions
	AggregateGroups []string // groups rendered as leaders views
	TeamHeight      int
	LeadersHeight   int
	Width           int
}

// DefaultControllerConfig returns the dashboard view: frequency for size,
// points per 100 shots for color over [90, 120].
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		Chart: ChartOptions{
			SizeColumn:  schema.ShotsFreqCol,
			ColorColumn: schema.PlPpsCol,
			ColorRange:  &schema.Range{Min: 90, Max: 120},
			ColorScale:  schema.DefaultColorScale,
		},
		AggregateGroups: slices.Clone(DefaultAggregateGroups),
		TeamHeight:      DefaultTeamHeight,
		LeadersHeight:   DefaultLeadersHeight,
		Width:           DefaultChartWidth,
	}
}

// Controller maps a selected group to a freshly built chart.
// It holds only immutable state and is safe for concurrent use.
type Controller struct {
	ds        *Dataset
	cfg       ControllerConfig
	aggregate map[string]struct{}
	options   []schema.Selection
}

// NewController validates the configuration and builds the dropdown options.
// A bad column or scale is reported here so that Update cannot fail later.
func NewController(ds *Dataset, cfg ControllerConfig) (*Controller, error) {
	if ds == nil {
		return nil, fmt.Errorf("nil dataset")
	}
	if err := cfg.Chart.Validate(); err != nil {
		return nil, err
	}
	if cfg.TeamHeight <= 0 || cfg.LeadersHeight <= 0 || cfg.Width <= 0 {
		return nil, fmt.Errorf("canvas sizes must be positive: team=%d leaders=%d width=%d",
			cfg.TeamHeight, cfg.LeadersHeight, cfg.Width)
	}
	if cfg.Chart.ColorRange != nil {
		r := *cfg.Chart.ColorRange
		cfg.Chart.ColorRange = &r
	}
	cfg.AggregateGroups = slices.Clone(cfg.AggregateGroups)

	c := &Controller{
		ds:        ds,
		cfg:       cfg,
		aggregate: make(map[string]struct{}, len(cfg.AggregateGroups)),
		options:   make([]schema.Selection, 0, len(ds.groups)),
	}
	for _, g := range cfg.AggregateGroups {
		c.aggregate[g] = struct{}{}
	}
	for _, g := range ds.Groups() {
		c.options = append(c.options, schema.Selection{Value: g, Kind: c.kindOf(g)})
	}
	return c, nil
}

func (c *Controller) kindOf(group string) schema.SelectionKind {
	if _, ok := c.aggregate[group]; ok {
		return schema.LeadersSelection
	}
	return schema.TeamSelection
}

// Options returns the dropdown options: the sorted distinct groups with their kinds.
func (c *Controller) Options() []schema.Selection {
	return slices.Clone(c.options)
}

// Selection resolves a value to its selection. The second return value
// reports whether the value is present in the dataset.
func (c *Controller) Selection(group string) (schema.Selection, bool) {
	for _, o := range c.options {
		if o.Value == group {
			return o, true
		}
	}
	return schema.Selection{Value: group, Kind: c.kindOf(group)}, false
}

// Update filters the dataset by group, builds and styles the chart, then applies
// the size policy of the selection kind. It never fails: an unknown group
// yields a chart with no marks.
func (c *Controller) Update(group string) schema.ChartSpec {
	sel, _ := c.Selection(group)
	rows := c.ds.Filter(group)

	spec, err := BuildChart(rows, c.cfg.Chart)
	if err != nil {
		// Options were validated in NewController.
		panic(fmt.Sprintf("build chart for %q: %v", group, err))
	}
	ApplyStyle(&spec)

	switch sel.Kind {
	case schema.LeadersSelection:
		spec.Layout.Height = c.cfg.LeadersHeight
	default:
		spec.Layout.Height = c.cfg.TeamHeight
	}
	spec.Layout.Width = c.cfg.Width
	spec.Layout.Meta = &schema.LayoutTag{Group: sel.Value, Kind: sel.Kind}
	return spec
}

// Rows returns the records of a group, for exports that need the raw data.
func (c *Controller) Rows(group string) []schema.ShotRecord {
	return c.ds.Filter(group)
}

// Config returns a copy of the controller configuration.
func (c *Controller) Config() ControllerConfig {
	cfg := c.cfg
	cfg.AggregateGroups = slices.Clone(c.cfg.AggregateGroups)
	if c.cfg.Chart.ColorRange != nil {
		r := *c.cfg.Chart.ColorRange
		cfg.Chart.ColorRange = &r
	}
	return cfg
}
