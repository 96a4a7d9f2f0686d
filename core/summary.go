package core

import "github.com/huangsam/shotdash/schema"

// Marks flattens the marks of a chart in trace order.
func Marks(spec schema.ChartSpec) []schema.Mark {
	marks := make([]schema.Mark, 0, spec.MarkCount())
	for _, t := range spec.Data {
		for i := range t.X {
			m := schema.Mark{
				Player: t.Y[i],
				Minute: t.X[i],
				Size:   t.Marker.Size[i],
				Color:  t.Marker.Color[i],
			}
			if i < len(t.CustomData) && len(t.CustomData[i]) == len(hoverColumns) {
				cd := t.CustomData[i]
				m.MinStart, m.MinEnd = cd[0], cd[1]
				m.ShotsCount, m.ShotsMade = cd[2], cd[3]
				m.ShotsFreq, m.ShotsAcc = cd[4], cd[5]
			}
			marks = append(marks, m)
		}
	}
	return marks
}

// Summarize describes a chart in a few fields.
func Summarize(spec schema.ChartSpec) schema.ChartSummary {
	s := schema.ChartSummary{
		Marks:   spec.MarkCount(),
		Players: append([]string{}, spec.Layout.YAxis.CategoryArray...),
		ColorRange: schema.Range{
			Min: spec.Layout.ColorAxis.CMin,
			Max: spec.Layout.ColorAxis.CMax,
		},
		Height: spec.Layout.Height,
		Width:  spec.Layout.Width,
	}
	if m := spec.Layout.Meta; m != nil {
		s.Group, s.Kind = m.Group, m.Kind
	}
	return s
}
