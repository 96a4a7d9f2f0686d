package schema

// PageLayout is the static description of the dashboard page.
type PageLayout struct {
	Title    string   `json:"title"`
	Intro    string   `json:"intro"` // markdown
	Dropdown Dropdown `json:"dropdown"`
	Graph    Graph    `json:"graph"`
}

// Dropdown is the single-select group picker.
type Dropdown struct {
	ID      string      `json:"id"`
	Options []Selection `json:"options"`
	Default string      `json:"default"`
	Width   string      `json:"width"`
}

// Graph is the chart placeholder.
type Graph struct {
	ID             string `json:"id"`
	DisplayModeBar bool   `json:"displayModeBar"`
}
