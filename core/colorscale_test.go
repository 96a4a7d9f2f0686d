package core

import (
	"errors"
	"image/color"
	"testing"

	"github.com/huangsam/shotdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorScaleStops(t *testing.T) {
	for name := range schema.ValidColorScales {
		t.Run(string(name), func(t *testing.T) {
			stops, err := ColorScaleStops(name)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(stops), 2)
			assert.Equal(t, 0.0, stops[0].Pos)
			assert.Equal(t, 1.0, stops[len(stops)-1].Pos)
			for i := 1; i < len(stops); i++ {
				assert.Greater(t, stops[i].Pos, stops[i-1].Pos)
			}
		})
	}

	def, err := ColorScaleStops("")
	require.NoError(t, err)
	rev, err := ColorScaleStops(schema.RdYlBuRScale)
	require.NoError(t, err)
	assert.Equal(t, rev, def)

	fwd, err := ColorScaleStops(schema.RdYlBuScale)
	require.NoError(t, err)
	assert.Equal(t, fwd[0].Color, rev[len(rev)-1].Color)

	_, err = ColorScaleStops("Jet")
	assert.True(t, errors.Is(err, ErrUnknownColorScale))
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("rgb(165,0,38)")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 165, G: 0, B: 38, A: 255}, c)

	for _, bad := range []string{"", "#ff0000", "rgb(1,2)", "rgb(300,0,0)"} {
		_, err := ParseRGB(bad)
		assert.Error(t, err, bad)
	}
}

func TestColorAt(t *testing.T) {
	stops := []schema.ColorStop{{Pos: 0, Color: "rgb(0,0,0)"}, {Pos: 1, Color: "rgb(200,100,50)"}}

	tests := []struct {
		name string
		v    float64
		want color.RGBA
	}{
		{"low end", 90, color.RGBA{0, 0, 0, 255}},
		{"high end", 120, color.RGBA{200, 100, 50, 255}},
		{"midpoint", 105, color.RGBA{100, 50, 25, 255}},
		{"clamped below", 10, color.RGBA{0, 0, 0, 255}},
		{"clamped above", 500, color.RGBA{200, 100, 50, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorAt(stops, 90, 120, tt.v))
		})
	}

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ColorAt(stops, 1, 1, 5), "degenerate range")
	assert.Equal(t, color.RGBA{A: 255}, ColorAt(nil, 0, 1, 0.5))
}

func TestColorAtScaleEnds(t *testing.T) {
	stops, err := ColorScaleStops(schema.RdYlBuRScale)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{49, 54, 149, 255}, ColorAt(stops, 90, 120, 90))
	assert.Equal(t, color.RGBA{165, 0, 38, 255}, ColorAt(stops, 90, 120, 120))
	assert.Equal(t, color.RGBA{255, 255, 191, 255}, ColorAt(stops, 90, 120, 105))
}
