package core

import (
	"fmt"
	"testing"

	"github.com/huangsam/shotdash/schema"
)

// leagueFixture builds a dataset shaped like a full season: 30 teams,
// 12 players each, one row per regulation minute.
func leagueFixture() []schema.ShotRecord {
	var records []schema.ShotRecord
	for team := range 30 {
		group := fmt.Sprintf("T%02d", team)
		for p := range 12 {
			player := fmt.Sprintf("%s Player %d", group, p)
			for m := range 48 {
				records = append(records, shot(group, player, float64(m)+0.5, float64(p+1), 90+float64(m%30)))
			}
		}
	}
	return records
}

// BenchmarkBuildChart benchmarks chart construction for one team.
func BenchmarkBuildChart(b *testing.B) {
	rows := mustDataset(leagueFixture()).Filter("T07")
	opts := DefaultChartOptions()

	for b.Loop() {
		if _, err := BuildChart(rows, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApplyStyle benchmarks styling a built chart.
func BenchmarkApplyStyle(b *testing.B) {
	rows := mustDataset(leagueFixture()).Filter("T07")
	spec, err := BuildChart(rows, DefaultChartOptions())
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		ApplyStyle(&spec)
	}
}

// BenchmarkControllerUpdate benchmarks the full update path a page request takes.
func BenchmarkControllerUpdate(b *testing.B) {
	ctrl, err := NewController(mustDataset(leagueFixture()), DefaultControllerConfig())
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		ctrl.Update("T07")
	}
}
