// Package render draws static images of a chart spec.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/schema"
)

// Fallback canvas sizes for specs without a size policy.
const (
	fallbackWidth  = core.DefaultChartWidth
	fallbackHeight = core.DefaultTeamHeight
)

// Plot-area margins, in pixels.
const (
	marginLeft   = 170
	marginRight  = 130
	marginTop    = 20
	marginBottom = 50
)

// geometry maps data coordinates to canvas pixels.
type geometry struct {
	width, height int
	x0, x1        float64 // x data range
	y0, y1        float64 // y data range, in category slots
}

func newGeometry(spec schema.ChartSpec) geometry {
	g := geometry{
		width:  spec.Layout.Width,
		height: spec.Layout.Height,
		x0:     0,
		x1:     49,
		y0:     -1,
		y1:     float64(len(spec.Layout.YAxis.CategoryArray)),
	}
	if g.width <= 0 {
		g.width = fallbackWidth
	}
	if g.height <= 0 {
		g.height = fallbackHeight
	}
	if r := spec.Layout.XAxis.Range; len(r) == 2 && r[1] > r[0] {
		g.x0, g.x1 = r[0], r[1]
	}
	if r := spec.Layout.YAxis.Range; len(r) == 2 && r[1] > r[0] {
		g.y0, g.y1 = r[0], r[1]
	}
	return g
}

func (g geometry) plotWidth() float64 {
	return float64(max(g.width-marginLeft-marginRight, 1))
}

func (g geometry) plotHeight() float64 {
	return float64(max(g.height-marginTop-marginBottom, 1))
}

func (g geometry) px(x float64) float64 {
	return marginLeft + (x-g.x0)/(g.x1-g.x0)*g.plotWidth()
}

func (g geometry) py(y float64) float64 {
	return marginTop + g.plotHeight() - (y-g.y0)/(g.y1-g.y0)*g.plotHeight()
}

// point is one mark in data space, with players mapped to their category slot.
type point struct {
	x      float64
	slot   int
	radius float64 // pixels
	fill   color.RGBA
}

// points resolves every mark of the spec. Marks whose player is not a category are skipped.
func points(spec schema.ChartSpec) []point {
	slot := make(map[string]int, len(spec.Layout.YAxis.CategoryArray))
	for i, p := range spec.Layout.YAxis.CategoryArray {
		slot[p] = i
	}
	ca := spec.Layout.ColorAxis

	var out []point
	for _, t := range spec.Data {
		for i := range t.X {
			idx, ok := slot[t.Y[i]]
			if !ok {
				continue
			}
			out = append(out, point{
				x:      t.X[i],
				slot:   idx,
				radius: core.MarkerDiameter(t.Marker.Size[i], t.Marker.SizeRef) / 2,
				fill:   core.ColorAt(ca.ColorScale, ca.CMin, ca.CMax, t.Marker.Color[i]),
			})
		}
	}
	return out
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// errWriter remembers the first write error so drawing code can ignore it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func chartTitle(spec schema.ChartSpec) string {
	if m := spec.Layout.Meta; m != nil && m.Group != "" {
		return fmt.Sprintf("%s: %s", core.PageTitle, m.Group)
	}
	return core.PageTitle
}

func fontStyle(f *schema.Font) string {
	if f == nil {
		f = &schema.Font{Family: core.FontFamily, Size: core.FontSize, Color: core.FontColor}
	}
	return fmt.Sprintf("font-family:%s;font-size:%dpx;fill:%s", f.Family, f.Size, f.Color)
}

// splitBreaks splits plotly text on <br> tags.
func splitBreaks(s string) []string {
	return strings.Split(strings.NewReplacer("<BR>", "\n", "<br>", "\n").Replace(s), "\n")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDefaultF(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
