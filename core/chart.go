package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/huangsam/shotdash/schema"
)

const (
	// MaxBubbleSize is the nominal diameter of the largest bubble, in pixels.
	MaxBubbleSize = 15

	// SizeRef is the plotly sizeref for area-mode markers.
	SizeRef = 2.0 * 30 / (MaxBubbleSize * MaxBubbleSize)

	// ColorBarTitle labels the efficiency colorbar.
	ColorBarTitle = "Points per<BR>100 shots"

	minuteAxisMax  = 49
	minuteTickStep = 6
	minuteTickMax  = 48
)

// hoverColumns are carried in each mark's customdata, in this order.
var hoverColumns = []schema.Column{
	schema.MinStartCol,
	schema.MinEndCol,
	schema.ShotsCountCol,
	schema.ShotsMadeCol,
	schema.ShotsFreqCol,
	schema.ShotsAccCol,
}

// ChartOptions selects how rows are encoded into a chart.
type ChartOptions struct {
	SizeColumn  schema.Column
	ColorColumn schema.Column
	ColorRange  *schema.Range // nil means derive from the rows
	ColorScale  schema.ColorScale
}

// DefaultChartOptions mirrors the plain bubble chart: count for size, accuracy for color.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		SizeColumn:  schema.ShotsCountCol,
		ColorColumn: schema.PlAccCol,
		ColorScale:  schema.DefaultColorScale,
	}
}

// Validate checks that both columns are numeric measures and the scale is known.
func (o ChartOptions) Validate() error {
	for _, c := range []schema.Column{o.SizeColumn, o.ColorColumn} {
		if _, ok := schema.ValidColumns[c]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
	}
	if o.ColorScale != "" {
		if _, ok := schema.ValidColorScales[o.ColorScale]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColorScale, o.ColorScale)
		}
	}
	if o.ColorRange != nil && o.ColorRange.Min > o.ColorRange.Max {
		return fmt.Errorf("color range min %v exceeds max %v", o.ColorRange.Min, o.ColorRange.Max)
	}
	return nil
}

// BuildChart maps rows to a bubble chart placed by (minute, player).
// It emits one mark per distinct (player, min_mid) pair, keeping the first row of a duplicate.
// Players appear on the y axis in order of first appearance.
// The rows are not modified and the result shares no memory with them.
func BuildChart(rows []schema.ShotRecord, opts ChartOptions) (schema.ChartSpec, error) {
	if err := opts.Validate(); err != nil {
		return schema.ChartSpec{}, err
	}
	stops, err := ColorScaleStops(opts.ColorScale)
	if err != nil {
		return schema.ChartSpec{}, err
	}

	type markKey struct {
		player string
		minute float64
	}
	seen := make(map[markKey]struct{}, len(rows))
	seenPlayer := make(map[string]struct{})
	var players []string

	trace := schema.Trace{
		Type:          "scatter",
		Mode:          "markers",
		X:             []float64{},
		Y:             []string{},
		HoverText:     []string{},
		CustomData:    [][]float64{},
		HoverTemplate: hoverTemplate(opts),
		Marker: schema.Marker{
			Size:      []float64{},
			SizeMode:  "area",
			SizeRef:   SizeRef,
			Color:     []float64{},
			ColorAxis: "coloraxis",
		},
	}

	for _, r := range rows {
		k := markKey{r.Player, r.MinMid}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := seenPlayer[r.Player]; !ok {
			seenPlayer[r.Player] = struct{}{}
			players = append(players, r.Player)
		}

		size, _ := r.Value(opts.SizeColumn)
		col, _ := r.Value(opts.ColorColumn)
		custom := make([]float64, len(hoverColumns))
		for i, c := range hoverColumns {
			custom[i], _ = r.Value(c)
		}

		trace.X = append(trace.X, r.MinMid)
		trace.Y = append(trace.Y, r.Player)
		trace.HoverText = append(trace.HoverText, r.Player)
		trace.CustomData = append(trace.CustomData, custom)
		trace.Marker.Size = append(trace.Marker.Size, size)
		trace.Marker.Color = append(trace.Marker.Color, col)
	}

	cr := colorRange(trace.Marker.Color, opts.ColorRange)
	if players == nil {
		players = []string{}
	}

	spec := schema.ChartSpec{
		Data: []schema.Trace{trace},
		Layout: schema.Layout{
			XAxis: schema.Axis{
				Title:    &schema.AxisTitle{Text: "Minute"},
				Range:    []float64{0, minuteAxisMax},
				TickVals: minuteTicks(),
			},
			YAxis: schema.Axis{
				Title:         &schema.AxisTitle{Text: "Player"},
				Range:         []float64{-1, float64(len(players))},
				Type:          "category",
				CategoryOrder: "array",
				CategoryArray: players,
			},
			ColorAxis: schema.ColorAxis{
				CMin:       cr.Min,
				CMax:       cr.Max,
				ColorScale: stops,
				ColorBar: schema.ColorBar{
					Title: &schema.AxisTitle{Text: ColorBarTitle},
				},
			},
		},
	}
	return spec, nil
}

// colorRange returns the explicit range, or [min, max] over values.
// No values and no explicit range gives schema.DefaultEmptyRange.
func colorRange(values []float64, explicit *schema.Range) schema.Range {
	if explicit != nil {
		return *explicit
	}
	if len(values) == 0 {
		return schema.DefaultEmptyRange
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return schema.Range{Min: lo, Max: hi}
}

func minuteTicks() []float64 {
	ticks := make([]float64, 0, minuteTickMax/minuteTickStep+1)
	for t := 0; t <= minuteTickMax; t += minuteTickStep {
		ticks = append(ticks, float64(t))
	}
	return ticks
}

func hoverTemplate(opts ChartOptions) string {
	var sb strings.Builder
	sb.WriteString("<b>%{hovertext}</b><br><br>")
	sb.WriteString("min_mid=%{x}<br>player=%{y}<br>")
	fmt.Fprintf(&sb, "%s=%%{marker.size}<br>", opts.SizeColumn)
	for i, c := range hoverColumns {
		fmt.Fprintf(&sb, "%s=%%{customdata[%d]}<br>", c, i)
	}
	fmt.Fprintf(&sb, "%s=%%{marker.color}", opts.ColorColumn)
	sb.WriteString("<extra></extra>")
	return sb.String()
}

// MarkerDiameter returns the rendered diameter, in pixels, of an area-mode marker.
func MarkerDiameter(size, sizeRef float64) float64 {
	if size <= 0 || sizeRef <= 0 {
		return 0
	}
	return math.Sqrt(size / sizeRef)
}

// MarkerArea returns the rendered area of an area-mode marker.
// It is linear in size: doubling the size doubles the area exactly.
func MarkerArea(size, sizeRef float64) float64 {
	if size <= 0 || sizeRef <= 0 {
		return 0
	}
	return math.Pi / 4 * (size / sizeRef)
}
