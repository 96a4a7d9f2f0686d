package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/schema"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// PNG draws the chart as a PNG image using go-chart.
// Players sit on integer y slots labelled with their names.
func PNG(w io.Writer, spec schema.ChartSpec) error {
	g := newGeometry(spec)
	pts := points(spec)

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.x, float64(p.slot)
	}

	gridStyle := chart.Style{
		StrokeColor: toDrawing(namedColor(core.GridColor)),
		StrokeWidth: core.GridWidth,
	}

	var xTicks []chart.Tick
	var xGrid []chart.GridLine
	for _, t := range spec.Layout.XAxis.TickVals {
		xTicks = append(xTicks, chart.Tick{Value: t, Label: fmt.Sprintf("%g", t)})
		xGrid = append(xGrid, chart.GridLine{Value: t})
	}
	var yTicks []chart.Tick
	var yGrid []chart.GridLine
	for i, p := range spec.Layout.YAxis.CategoryArray {
		yTicks = append(yTicks, chart.Tick{Value: float64(i), Label: p})
		yGrid = append(yGrid, chart.GridLine{Value: float64(i) - 0.5})
	}
	if n := len(spec.Layout.YAxis.CategoryArray); n > 0 {
		yGrid = append(yGrid, chart.GridLine{Value: float64(n) - 0.5})
	} else {
		yTicks = []chart.Tick{{Value: g.y0, Label: ""}, {Value: g.y1, Label: ""}}
	}

	// The frame series keeps the axes valid when a chart has fewer than two marks.
	frame := chart.ContinuousSeries{
		Name:    "frame",
		XValues: []float64{g.x0, g.x1},
		YValues: []float64{g.y0, g.y1},
		Style:   chart.Style{StrokeWidth: chart.Disabled},
	}
	series := []chart.Series{frame}
	if len(xs) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "marks",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
					return pts[index].radius
				},
				DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
					return toDrawing(pts[index].fill)
				},
			},
		})
	}

	ch := chart.Chart{
		Title:  chartTitle(spec),
		Width:  g.width,
		Height: g.height,
		Background: chart.Style{
			FillColor: toDrawing(namedColor(orDefault(spec.Layout.PaperBGColor, "white"))),
			Padding:   chart.Box{Top: marginTop + 20, Left: 16, Right: 16, Bottom: 12},
		},
		XAxis: chart.XAxis{
			Name:           axisName(spec.Layout.XAxis),
			Range:          &chart.ContinuousRange{Min: g.x0, Max: g.x1},
			Ticks:          xTicks,
			GridMajorStyle: gridStyle,
			GridLines:      xGrid,
		},
		YAxis: chart.YAxis{
			Name:           axisName(spec.Layout.YAxis),
			Range:          &chart.ContinuousRange{Min: g.y0, Max: g.y1},
			Ticks:          yTicks,
			GridMajorStyle: gridStyle,
			GridLines:      yGrid,
		},
		Series: series,
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render png: %w", err)
	}
	return nil
}

func axisName(a schema.Axis) string {
	if a.Title == nil {
		return ""
	}
	return a.Title.Text
}

// namedColors covers the CSS color names used by the chart style.
// Unknown names fall back to white.
var namedColors = map[string]color.RGBA{
	"LightGray": {R: 211, G: 211, B: 211, A: 255},
	"white":     {R: 255, G: 255, B: 255, A: 255},
}

func namedColor(name string) color.RGBA {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
