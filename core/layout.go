package core

import "github.com/huangsam/shotdash/schema"

// Page identifiers and defaults.
const (
	PageTitle     = "NBA Shooting Dashboard per Minute"
	DropdownID    = "group-select"
	DropdownWidth = "140px"
	GraphID       = "shot-dist-graph"
	DefaultGroup  = "TOR"
)

// IntroMarkdown is the explanatory text shown above the dropdown.
const IntroMarkdown = `#### Shot Frequencies & Efficiencies (2019-20 NBA Season)

This page compares players based on shot *frequency* and *efficiency*,
divided up into minutes of regulation time for each team.

Use the pulldown to select a team, or select 'Leaders' to see leaders from each team.

*Notes*:

* **Frequency**: A team's shots a player is taking, indicated by **size**.
* **Efficiency**: Points scored per 100 shots, indicated by **colour** (red == better, blue == worse).
* Players with <1% of team shots are shown under 'Others'
`

// OptionSource lists dropdown options.
type OptionSource interface {
	Options() []schema.Selection
}

// BuildLayout describes the page for the given options.
// The default group falls back to the first option when it is not offered.
func BuildLayout(src OptionSource, defaultGroup string) schema.PageLayout {
	opts := src.Options()
	if defaultGroup == "" {
		defaultGroup = DefaultGroup
	}
	return schema.PageLayout{
		Title: PageTitle,
		Intro: IntroMarkdown,
		Dropdown: schema.Dropdown{
			ID:      DropdownID,
			Options: opts,
			Default: resolveDefault(opts, defaultGroup),
			Width:   DropdownWidth,
		},
		Graph: schema.Graph{ID: GraphID, DisplayModeBar: false},
	}
}

func resolveDefault(opts []schema.Selection, want string) string {
	for _, o := range opts {
		if o.Value == want {
			return want
		}
	}
	if len(opts) > 0 {
		return opts[0].Value
	}
	return want
}
