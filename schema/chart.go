package schema

import (
	"encoding/json"
	"fmt"
)

// ChartSpec is a plotly-compatible figure. It serializes to the {data, layout}
// object that plotly.js accepts in Plotly.react.
type ChartSpec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one scatter trace of a figure.
type Trace struct {
	Type          string      `json:"type"`
	Mode          string      `json:"mode"`
	X             []float64   `json:"x"`
	Y             []string    `json:"y"`
	HoverText     []string    `json:"hovertext"`
	CustomData    [][]float64 `json:"customdata"`
	HoverTemplate string      `json:"hovertemplate"`
	Marker        Marker      `json:"marker"`
	ShowLegend    bool        `json:"showlegend"`
}

// Marker holds the per-mark encoding of a trace.
type Marker struct {
	Size      []float64   `json:"size"`
	SizeMode  string      `json:"sizemode"`
	SizeRef   float64     `json:"sizeref"`
	Color     []float64   `json:"color"`
	ColorAxis string      `json:"coloraxis,omitempty"`
	Line      *MarkerLine `json:"line,omitempty"`
}

// MarkerLine is the outline drawn around each mark.
type MarkerLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// Layout is the figure layout.
type Layout struct {
	PaperBGColor string     `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string     `json:"plot_bgcolor,omitempty"`
	Font         *Font      `json:"font,omitempty"`
	Margin       *Margin    `json:"margin,omitempty"`
	Height       int        `json:"height,omitempty"`
	Width        int        `json:"width,omitempty"`
	XAxis        Axis       `json:"xaxis"`
	YAxis        Axis       `json:"yaxis"`
	ColorAxis    ColorAxis  `json:"coloraxis"`
	Meta         *LayoutTag `json:"meta,omitempty"`
}

// LayoutTag carries the selection a figure was built for.
type LayoutTag struct {
	Group string        `json:"group"`
	Kind  SelectionKind `json:"kind"`
}

// Font is a plotly font spec.
type Font struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Color  string `json:"color"`
}

// Margin is a plotly margin spec. Zero values are left to plotly's defaults.
type Margin struct {
	T int `json:"t,omitempty"`
	L int `json:"l,omitempty"`
	R int `json:"r,omitempty"`
	B int `json:"b,omitempty"`
}

// Axis is a plotly axis spec.
type Axis struct {
	Title         *AxisTitle `json:"title,omitempty"`
	Range         []float64  `json:"range,omitempty"`
	TickVals      []float64  `json:"tickvals,omitempty"`
	Type          string     `json:"type,omitempty"`
	CategoryOrder string     `json:"categoryorder,omitempty"`
	CategoryArray []string   `json:"categoryarray,omitempty"`
	ShowGrid      bool       `json:"showgrid,omitempty"`
	GridWidth     float64    `json:"gridwidth,omitempty"`
	GridColor     string     `json:"gridcolor,omitempty"`
	FixedRange    bool       `json:"fixedrange,omitempty"`
	TicksOn       string     `json:"tickson,omitempty"`
}

// AxisTitle is the title of an axis or colorbar.
type AxisTitle struct {
	Text string `json:"text"`
}

// ColorAxis is the shared color axis the marks refer to.
type ColorAxis struct {
	CMin       float64     `json:"cmin"`
	CMax       float64     `json:"cmax"`
	ColorScale []ColorStop `json:"colorscale"`
	ColorBar   ColorBar    `json:"colorbar"`
}

// ColorBar is the legend drawn for a color axis.
type ColorBar struct {
	Title         *AxisTitle `json:"title,omitempty"`
	ThicknessMode string     `json:"thicknessmode,omitempty"`
	Thickness     float64    `json:"thickness,omitempty"`
	OutlineWidth  float64    `json:"outlinewidth,omitempty"`
	OutlineColor  string     `json:"outlinecolor,omitempty"`
	LenMode       string     `json:"lenmode,omitempty"`
	Len           float64    `json:"len,omitempty"`
	YAnchor       string     `json:"yanchor,omitempty"`
	Y             *float64   `json:"y,omitempty"`
}

// ColorStop is one [position, color] entry of a colorscale.
type ColorStop struct {
	Pos   float64
	Color string
}

// MarshalJSON encodes the stop as a two-element array.
func (c ColorStop) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Pos, c.Color})
}

// UnmarshalJSON decodes a two-element [position, color] array.
func (c *ColorStop) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("color stop needs 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &c.Pos); err != nil {
		return fmt.Errorf("color stop position: %w", err)
	}
	if err := json.Unmarshal(raw[1], &c.Color); err != nil {
		return fmt.Errorf("color stop color: %w", err)
	}
	return nil
}

// MarkCount returns the number of marks across all traces.
func (c ChartSpec) MarkCount() int {
	n := 0
	for _, t := range c.Data {
		n += len(t.X)
	}
	return n
}
