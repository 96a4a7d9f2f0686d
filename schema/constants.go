package schema

// Custom string types for type safety.
type (
	// Column represents a numeric measure column of the dataset.
	Column string

	// SelectionKind represents what a dropdown value stands for.
	SelectionKind string

	// OutputMode represents the format of CLI output.
	OutputMode string

	// ColorScale represents a named continuous color scale.
	ColorScale string
)

// Text columns of the dataset.
const (
	GroupCol  = "group"
	PlayerCol = "player"
)

// Numeric measure columns of the dataset.
const (
	MinStartCol   Column = "min_start"
	MinMidCol     Column = "min_mid"
	MinEndCol     Column = "min_end"
	ShotsCountCol Column = "shots_count"
	ShotsMadeCol  Column = "shots_made"
	ShotsFreqCol  Column = "shots_freq"
	ShotsAccCol   Column = "shots_acc"
	PlAccCol      Column = "pl_acc"
	PlPpsCol      Column = "pl_pps"
)

// All selection kinds supported.
const (
	TeamSelection    SelectionKind = "team"    // ordinary three-letter team code
	LeadersSelection SelectionKind = "leaders" // aggregate view over the leaders of every team
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	SVGOut     OutputMode = "svg"
	PNGOut     OutputMode = "png"
	ParquetOut OutputMode = "parquet"
)

// All color scales supported.
const (
	RdYlBuScale  ColorScale = "RdYlBu"
	RdYlBuRScale ColorScale = "RdYlBu_r" // default
	RdBuScale    ColorScale = "RdBu"
	RdBuRScale   ColorScale = "RdBu_r"
	ViridisScale ColorScale = "Viridis"
)

// DefaultColorScale is used when no scale is configured.
const DefaultColorScale = RdYlBuRScale

// DefaultEmptyRange is the color range used when a chart has no rows
// and no explicit range was given.
var DefaultEmptyRange = Range{Min: 0, Max: 1}

// MeasureColumns lists every numeric column in file order.
var MeasureColumns = []Column{
	MinStartCol, MinMidCol, MinEndCol,
	ShotsCountCol, ShotsMadeCol, ShotsFreqCol, ShotsAccCol,
	PlAccCol, PlPpsCol,
}

// RequiredColumns lists every column the dataset file must carry.
var RequiredColumns = func() []string {
	cols := []string{GroupCol, PlayerCol}
	for _, c := range MeasureColumns {
		cols = append(cols, string(c))
	}
	return cols
}()

// ValidColumns lists all valid numeric columns.
var ValidColumns = func() map[Column]struct{} {
	m := make(map[Column]struct{}, len(MeasureColumns))
	for _, c := range MeasureColumns {
		m[c] = struct{}{}
	}
	return m
}()

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	SVGOut:     {},
	PNGOut:     {},
	ParquetOut: {},
}

// ValidColorScales lists all valid color scales.
var ValidColorScales = map[ColorScale]struct{}{
	RdYlBuScale:  {},
	RdYlBuRScale: {},
	RdBuScale:    {},
	RdBuRScale:   {},
	ViridisScale: {},
}
