package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/schema"
)

// PrintGroups outputs the dropdown options, dispatching on the configured format.
func PrintGroups(opts []schema.Selection, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONGroups(w, opts)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVGroups(w, opts)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.TextOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGroupTable(w, opts, cfg.DefaultGroup, cfg.UseColors)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	default:
		return fmt.Errorf("output %q is not supported for groups. must be text, csv, json", cfg.Output)
	}
	return nil
}
