package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/huangsam/shotdash/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeJSONGroups writes the options as a JSON array of {value, kind}.
func writeJSONGroups(w io.Writer, opts []schema.Selection) error {
	if opts == nil {
		opts = []schema.Selection{}
	}
	return writeJSON(w, opts)
}

// writeCSVGroups writes one row per option.
func writeCSVGroups(w io.Writer, opts []schema.Selection) error {
	return writeCSVWithHeader(w, []string{"rank", "group", "kind"}, func(cw *csv.Writer) error {
		for i, o := range opts {
			if err := cw.Write([]string{strconv.Itoa(i + 1), o.Value, string(o.Kind)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeGroupTable renders the options as a table, marking the default group.
func writeGroupTable(w io.Writer, opts []schema.Selection, defaultGroup string, useColors bool) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Group", "Kind", "Default"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := make([][]string, 0, len(opts))
	for i, o := range opts {
		def := ""
		if o.Value == defaultGroup {
			def = "*"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			o.Value,
			kindLabel(o.Kind, useColors),
			def,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
