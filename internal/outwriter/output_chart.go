package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/internal/parquet"
	"github.com/huangsam/shotdash/internal/render"
	"github.com/huangsam/shotdash/schema"
)

// PrintChart outputs one chart, dispatching on the configured format.
func PrintChart(spec schema.ChartSpec, rows []schema.ShotRecord, cfg *contract.Config) error {
	var (
		write func(io.Writer) error
		label string
	)
	switch cfg.Output {
	case schema.JSONOut:
		write, label = func(w io.Writer) error { return writeJSONChart(w, spec) }, "JSON"
	case schema.CSVOut:
		write, label = func(w io.Writer) error { return writeCSVMarks(w, spec) }, "CSV"
	case schema.SVGOut:
		write, label = func(w io.Writer) error { return render.SVG(w, spec) }, "SVG"
	case schema.PNGOut:
		write, label = func(w io.Writer) error { return render.PNG(w, spec) }, "PNG"
	case schema.ParquetOut:
		write, label = func(w io.Writer) error { return parquet.WriteShotRecords(w, rows) }, "Parquet"
	default:
		write, label = func(w io.Writer) error { return writeMarkTable(w, spec, cfg) }, "table"
	}
	if err := writeWithFile(cfg.OutputFile, write, "Wrote "+label); err != nil {
		return fmt.Errorf("error writing %s output: %w", label, err)
	}
	return nil
}
