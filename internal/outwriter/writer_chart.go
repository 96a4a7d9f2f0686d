package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// markHeader is the CSV header of the mark table.
var markHeader = []string{
	"player",
	"minute",
	"size",
	"color",
	string(schema.MinStartCol),
	string(schema.MinEndCol),
	string(schema.ShotsCountCol),
	string(schema.ShotsMadeCol),
	string(schema.ShotsFreqCol),
	string(schema.ShotsAccCol),
}

func markRow(m schema.Mark, player string) []string {
	return []string{
		player,
		fmtFloat(m.Minute),
		fmtFloat(m.Size),
		fmtFloat(m.Color),
		fmtFloat(m.MinStart),
		fmtFloat(m.MinEnd),
		fmtFloat(m.ShotsCount),
		fmtFloat(m.ShotsMade),
		fmtFloat(m.ShotsFreq),
		fmtFloat(m.ShotsAcc),
	}
}

// writeJSONChart writes the figure exactly as the web update protocol returns it.
func writeJSONChart(w io.Writer, spec schema.ChartSpec) error {
	return writeJSON(w, spec)
}

// writeCSVMarks writes one row per mark.
func writeCSVMarks(w io.Writer, spec schema.ChartSpec) error {
	return writeCSVWithHeader(w, markHeader, func(cw *csv.Writer) error {
		for _, m := range core.Marks(spec) {
			if err := cw.Write(markRow(m, m.Player)); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeMarkTable renders the marks as a table followed by a one-line summary.
func writeMarkTable(w io.Writer, spec schema.ChartSpec, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Player", "Minute", "Size", "Color", "Start", "End", "Shots", "Made", "Freq", "Acc"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableLabelWidth(cfg)
	marks := core.Marks(spec)
	data := make([][]string, 0, len(marks))
	for _, m := range marks {
		data = append(data, markRow(m, contract.TruncateLabel(m.Player, maxWidth)))
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := core.Summarize(spec)
	_, err := fmt.Fprintf(w, "Showing %d marks for %s (%s) across %d players, color range %s to %s\n",
		s.Marks, s.Group, kindLabel(s.Kind, cfg.UseColors), len(s.Players), fmtFloat(s.ColorRange.Min), fmtFloat(s.ColorRange.Max))
	return err
}
