// Package schema has configs, models and constants shared by all parts of shotdash.
package schema

// ShotRecord is one row of the shot distribution dataset.
// Each row describes one player's shooting inside one minute bucket of regulation time.
type ShotRecord struct {
	Group      string  `json:"group"`       // Team code (e.g. "TOR") or an aggregate such as "Leaders"
	Player     string  `json:"player"`      // Player name, or "Others" for the <1% bucket
	MinStart   float64 `json:"min_start"`   // Start of the minute bucket
	MinMid     float64 `json:"min_mid"`     // Midpoint of the minute bucket, used as the x coordinate
	MinEnd     float64 `json:"min_end"`     // End of the minute bucket
	ShotsCount float64 `json:"shots_count"` // Shots attempted in the bucket
	ShotsMade  float64 `json:"shots_made"`  // Shots made in the bucket
	ShotsFreq  float64 `json:"shots_freq"`  // Share of the team's shots taken by this player (percent)
	ShotsAcc   float64 `json:"shots_acc"`   // Field goal accuracy in the bucket (percent)
	PlAcc      float64 `json:"pl_acc"`      // Player accuracy over the season (percent)
	PlPps      float64 `json:"pl_pps"`      // Points per 100 shots
}

// Value returns the numeric measure stored under the given column.
// The second return value is false when the column is not a numeric measure.
func (r ShotRecord) Value(c Column) (float64, bool) {
	switch c {
	case MinStartCol:
		return r.MinStart, true
	case MinMidCol:
		return r.MinMid, true
	case MinEndCol:
		return r.MinEnd, true
	case ShotsCountCol:
		return r.ShotsCount, true
	case ShotsMadeCol:
		return r.ShotsMade, true
	case ShotsFreqCol:
		return r.ShotsFreq, true
	case ShotsAccCol:
		return r.ShotsAcc, true
	case PlAccCol:
		return r.PlAcc, true
	case PlPpsCol:
		return r.PlPps, true
	default:
		return 0, false
	}
}

// SetValue stores v under the given numeric column.
// It returns false when the column is not a numeric measure.
func (r *ShotRecord) SetValue(c Column, v float64) bool {
	switch c {
	case MinStartCol:
		r.MinStart = v
	case MinMidCol:
		r.MinMid = v
	case MinEndCol:
		r.MinEnd = v
	case ShotsCountCol:
		r.ShotsCount = v
	case ShotsMadeCol:
		r.ShotsMade = v
	case ShotsFreqCol:
		r.ShotsFreq = v
	case ShotsAccCol:
		r.ShotsAcc = v
	case PlAccCol:
		r.PlAcc = v
	case PlPpsCol:
		r.PlPps = v
	default:
		return false
	}
	return true
}

// Selection is a dropdown value together with its explicit kind.
type Selection struct {
	Value string        `json:"value"`
	Kind  SelectionKind `json:"kind"`
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Slice returns the range as a two-element slice, the shape plotly expects.
func (r Range) Slice() []float64 {
	return []float64{r.Min, r.Max}
}

// Mark is the flattened view of a single bubble in a chart.
type Mark struct {
	Player     string  `json:"player"`
	Minute     float64 `json:"minute"`
	Size       float64 `json:"size"`
	Color      float64 `json:"color"`
	MinStart   float64 `json:"min_start"`
	MinEnd     float64 `json:"min_end"`
	ShotsCount float64 `json:"shots_count"`
	ShotsMade  float64 `json:"shots_made"`
	ShotsFreq  float64 `json:"shots_freq"`
	ShotsAcc   float64 `json:"shots_acc"`
}

// ChartSummary is a compact description of a rendered chart.
type ChartSummary struct {
	Group      string        `json:"group"`
	Kind       SelectionKind `json:"kind"`
	Marks      int           `json:"marks"`
	Players    []string      `json:"players"`
	ColorRange Range         `json:"color_range"`
	Height     int           `json:"height"`
	Width      int           `json:"width"`
}
