// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/shotdash/schema"

// ChartProvider maps a selected group to a chart.
// This allows the transports to be tested without a loaded dataset.
type ChartProvider interface {
	// Options returns the dropdown options in display order.
	Options() []schema.Selection

	// Update returns a freshly built chart for the group. It never fails;
	// an unknown group yields a chart with no marks.
	Update(group string) schema.ChartSpec
}
