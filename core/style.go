package core

import "github.com/huangsam/shotdash/schema"

// Fixed look of every published chart.
const (
	BackgroundColor   = "white"
	FontFamily        = "Arial, Tahoma, Helvetica"
	FontSize          = 10
	FontColor         = "#404040"
	TopMargin         = 20
	MarkerLineWidth   = 1
	MarkerLineColor   = "Navy"
	ColorBarThickness = 15
	ColorBarOutline   = "#909090"
	ColorBarLength    = 300
	GridColor         = "LightGray"
	GridWidth         = 1
)

// ApplyStyle normalizes the cosmetic properties of a chart in place.
// It is idempotent and must run after BuildChart and before sizing.
func ApplyStyle(c *schema.ChartSpec) {
	l := &c.Layout
	l.PaperBGColor = BackgroundColor
	l.PlotBGColor = BackgroundColor
	l.Font = &schema.Font{Family: FontFamily, Size: FontSize, Color: FontColor}
	if l.Margin == nil {
		l.Margin = &schema.Margin{}
	}
	l.Margin.T = TopMargin

	for i := range c.Data {
		if c.Data[i].Mode != "markers" {
			continue
		}
		c.Data[i].Marker.Line = &schema.MarkerLine{Width: MarkerLineWidth, Color: MarkerLineColor}
	}

	cb := &l.ColorAxis.ColorBar
	cb.ThicknessMode = "pixels"
	cb.Thickness = ColorBarThickness
	cb.OutlineWidth = 1
	cb.OutlineColor = ColorBarOutline
	cb.LenMode = "pixels"
	cb.Len = ColorBarLength
	cb.YAnchor = "top"
	y := 1.0
	cb.Y = &y

	styleAxis(&l.XAxis)
	styleAxis(&l.YAxis)
	l.YAxis.TicksOn = "boundaries"
}

func styleAxis(a *schema.Axis) {
	a.ShowGrid = true
	a.GridWidth = GridWidth
	a.GridColor = GridColor
	a.FixedRange = true
}
