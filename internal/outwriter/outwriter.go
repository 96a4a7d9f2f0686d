// Package outwriter has output and writer logic for the one-shot commands.
package outwriter

import (
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteGroups prints the dropdown options using the configured output format.
func (ow *OutWriter) WriteGroups(opts []schema.Selection, cfg *contract.Config) error {
	return PrintGroups(opts, cfg)
}

// WriteChart prints one chart using the configured output format.
// The rows are only used by the parquet format, which exports raw data.
func (ow *OutWriter) WriteChart(spec schema.ChartSpec, rows []schema.ShotRecord, cfg *contract.Config) error {
	return PrintChart(spec, rows, cfg)
}
