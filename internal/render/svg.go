package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/schema"
)

const gradientID = "colorbar"

// SVG draws the chart as an SVG document with one circle per mark.
func SVG(w io.Writer, spec schema.ChartSpec) error {
	ew := &errWriter{w: w}
	g := newGeometry(spec)
	canvas := svg.New(ew)

	canvas.Start(g.width, g.height)
	canvas.Title(chartTitle(spec))
	canvas.Rect(0, 0, g.width, g.height, "fill:"+orDefault(spec.Layout.PaperBGColor, "white"))
	canvas.Rect(marginLeft, marginTop, int(g.plotWidth()), int(g.plotHeight()),
		"fill:"+orDefault(spec.Layout.PlotBGColor, "white"))

	font := fontStyle(spec.Layout.Font)
	canvas.Gstyle(font)
	drawGrid(canvas, spec, g)
	drawAxisTitles(canvas, spec, g)
	canvas.Gend()

	drawMarks(canvas, spec, g)

	canvas.Gstyle(font)
	drawColorBar(canvas, spec, g)
	canvas.Gend()

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("failed to write svg: %w", ew.err)
	}
	return nil
}

func drawGrid(canvas *svg.SVG, spec schema.ChartSpec, g geometry) {
	gridStyle := fmt.Sprintf("stroke:%s;stroke-width:%v",
		orDefault(spec.Layout.XAxis.GridColor, core.GridColor), orDefaultF(spec.Layout.XAxis.GridWidth, core.GridWidth))
	top, bottom := marginTop, marginTop+int(g.plotHeight())
	for _, t := range spec.Layout.XAxis.TickVals {
		x := int(math.Round(g.px(t)))
		canvas.Line(x, top, x, bottom, gridStyle)
		canvas.Text(x, bottom+14, fmt.Sprintf("%g", t), "text-anchor:middle")
	}

	left, right := marginLeft, marginLeft+int(g.plotWidth())
	players := spec.Layout.YAxis.CategoryArray
	for i, p := range players {
		y := int(math.Round(g.py(float64(i))))
		if spec.Layout.YAxis.TicksOn == "boundaries" {
			b := int(math.Round(g.py(float64(i) - 0.5)))
			canvas.Line(left, b, right, b, gridStyle)
		} else {
			canvas.Line(left, y, right, y, gridStyle)
		}
		canvas.Text(left-6, y+4, p, "text-anchor:end")
	}
	if spec.Layout.YAxis.TicksOn == "boundaries" && len(players) > 0 {
		b := int(math.Round(g.py(float64(len(players)) - 0.5)))
		canvas.Line(left, b, right, b, gridStyle)
	}
}

func drawAxisTitles(canvas *svg.SVG, spec schema.ChartSpec, g geometry) {
	if t := spec.Layout.XAxis.Title; t != nil {
		canvas.Text(marginLeft+int(g.plotWidth())/2, g.height-12, t.Text, "text-anchor:middle")
	}
	if t := spec.Layout.YAxis.Title; t != nil {
		x, y := 14, marginTop+int(g.plotHeight())/2
		canvas.Text(x, y, t.Text, fmt.Sprintf("text-anchor:middle;transform-origin:%dpx %dpx;transform:rotate(-90deg)", x, y))
	}
}

func drawMarks(canvas *svg.SVG, spec schema.ChartSpec, g geometry) {
	stroke := "stroke:none"
	for _, t := range spec.Data {
		if l := t.Marker.Line; l != nil {
			stroke = fmt.Sprintf("stroke:%s;stroke-width:%v", l.Color, l.Width)
			break
		}
	}
	canvas.Gstyle(stroke)
	for _, p := range points(spec) {
		r := max(int(math.Round(p.radius)), 1)
		x, y := g.px(p.x), g.py(float64(p.slot))
		canvas.Circle(int(math.Round(x)), int(math.Round(y)), r, "fill:"+hexColor(p.fill))
	}
	canvas.Gend()
}

func drawColorBar(canvas *svg.SVG, spec schema.ChartSpec, g geometry) {
	ca := spec.Layout.ColorAxis
	if len(ca.ColorScale) == 0 {
		return
	}
	stops := make([]svg.Offcolor, len(ca.ColorScale))
	for i, s := range ca.ColorScale {
		c, err := core.ParseRGB(s.Color)
		if err != nil {
			continue
		}
		stops[i] = svg.Offcolor{Offset: uint8(math.Round(s.Pos * 100)), Color: hexColor(c), Opacity: 1}
	}
	canvas.Def()
	canvas.LinearGradient(gradientID, 0, 100, 0, 0, stops)
	canvas.DefEnd()

	thickness := int(orDefaultF(ca.ColorBar.Thickness, core.ColorBarThickness))
	length := int(orDefaultF(ca.ColorBar.Len, core.ColorBarLength))
	length = min(length, int(g.plotHeight()))
	x := marginLeft + int(g.plotWidth()) + 30
	y := marginTop + 24

	if t := ca.ColorBar.Title; t != nil {
		for i, line := range splitBreaks(t.Text) {
			canvas.Text(x, marginTop+8+i*12, line)
		}
		y += 12
	}
	outline := fmt.Sprintf("stroke:%s;stroke-width:%v",
		orDefault(ca.ColorBar.OutlineColor, core.ColorBarOutline), orDefaultF(ca.ColorBar.OutlineWidth, 1))
	canvas.Rect(x, y, thickness, length, fmt.Sprintf("fill:url(#%s);%s", gradientID, outline))
	canvas.Text(x+thickness+4, y+8, fmt.Sprintf("%g", ca.CMax))
	canvas.Text(x+thickness+4, y+length, fmt.Sprintf("%g", ca.CMin))
}
