package web

import "github.com/huangsam/shotdash/schema"

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate -f page.templ

// pageConfig is the client-side view of the layout.
type pageConfig struct {
	DropdownID     string `json:"dropdownId"`
	GraphID        string `json:"graphId"`
	Default        string `json:"default"`
	DisplayModeBar bool   `json:"displayModeBar"`
	ChartURL       string `json:"chartUrl"`
}

func pageConfigFor(layout schema.PageLayout) pageConfig {
	return pageConfig{
		DropdownID:     layout.Dropdown.ID,
		GraphID:        layout.Graph.ID,
		Default:        layout.Dropdown.Default,
		DisplayModeBar: layout.Graph.DisplayModeBar,
		ChartURL:       "/api/chart",
	}
}
