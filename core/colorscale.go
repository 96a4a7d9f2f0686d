package core

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/huangsam/shotdash/schema"
)

var rdYlBu = []string{
	"rgb(165,0,38)", "rgb(215,48,39)", "rgb(244,109,67)", "rgb(253,174,97)",
	"rgb(254,224,144)", "rgb(255,255,191)", "rgb(224,243,248)", "rgb(171,217,233)",
	"rgb(116,173,209)", "rgb(69,117,180)", "rgb(49,54,149)",
}

var rdBu = []string{
	"rgb(103,0,31)", "rgb(178,24,43)", "rgb(214,96,77)", "rgb(244,165,130)",
	"rgb(253,219,199)", "rgb(247,247,247)", "rgb(209,229,240)", "rgb(146,197,222)",
	"rgb(67,147,195)", "rgb(33,102,172)", "rgb(5,48,97)",
}

var viridis = []string{
	"rgb(68,1,84)", "rgb(72,40,120)", "rgb(62,73,137)", "rgb(49,104,142)",
	"rgb(38,130,142)", "rgb(31,158,137)", "rgb(53,183,121)", "rgb(110,206,88)",
	"rgb(181,222,43)", "rgb(253,231,37)",
}

// scaleColors maps each scale to its colors from low to high.
var scaleColors = map[schema.ColorScale]func() []string{
	schema.RdYlBuScale:  func() []string { return slices.Clone(rdYlBu) },
	schema.RdYlBuRScale: func() []string { return reversed(rdYlBu) },
	schema.RdBuScale:    func() []string { return slices.Clone(rdBu) },
	schema.RdBuRScale:   func() []string { return reversed(rdBu) },
	schema.ViridisScale: func() []string { return slices.Clone(viridis) },
}

func reversed(in []string) []string {
	out := slices.Clone(in)
	slices.Reverse(out)
	return out
}

// ColorScaleStops resolves a named scale to evenly spaced plotly color stops.
// An empty name resolves to schema.DefaultColorScale.
func ColorScaleStops(name schema.ColorScale) ([]schema.ColorStop, error) {
	if name == "" {
		name = schema.DefaultColorScale
	}
	colors, ok := scaleColors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColorScale, name)
	}
	cs := colors()
	stops := make([]schema.ColorStop, len(cs))
	last := float64(len(cs) - 1)
	for i, c := range cs {
		stops[i] = schema.ColorStop{Pos: float64(i) / last, Color: c}
	}
	return stops, nil
}

// ParseRGB parses a plotly "rgb(r,g,b)" color.
func ParseRGB(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ColorAt interpolates the color of v on the given stops over [cmin, cmax].
// Values outside the range are clamped to the end colors, as plotly does.
func ColorAt(stops []schema.ColorStop, cmin, cmax, v float64) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{A: 255}
	}
	t := 0.0
	if cmax > cmin {
		t = (v - cmin) / (cmax - cmin)
	}
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))

	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Pos {
			continue
		}
		a, errA := ParseRGB(lo.Color)
		b, errB := ParseRGB(hi.Color)
		if errA != nil || errB != nil {
			return color.RGBA{A: 255}
		}
		f := 0.0
		if hi.Pos > lo.Pos {
			f = (t - lo.Pos) / (hi.Pos - lo.Pos)
		}
		return color.RGBA{
			R: lerp(a.R, b.R, f),
			G: lerp(a.G, b.G, f),
			B: lerp(a.B, b.B, f),
			A: 255,
		}
	}
	c, err := ParseRGB(stops[len(stops)-1].Color)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

func lerp(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
