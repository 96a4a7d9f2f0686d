package core

import (
	"math"
	"testing"

	"github.com/huangsam/shotdash/schema"
)

// FuzzBuildChart checks mark and axis invariants on arbitrary rows.
func FuzzBuildChart(f *testing.F) {
	f.Add("A", "B", 1.5, 2.5, 10.0, 100.0)
	f.Add("A", "A", 1.5, 1.5, 0.0, 0.0)
	f.Add("", "x", -3.0, 48.0, -1.0, math.MaxFloat64)

	f.Fuzz(func(t *testing.T, p1, p2 string, m1, m2, size, col float64) {
		rows := []schema.ShotRecord{
			{Group: "G", Player: p1, MinMid: m1, ShotsFreq: size, PlPps: col},
			{Group: "G", Player: p2, MinMid: m2, ShotsFreq: size * 2, PlPps: col},
		}
		opts := dashboardOptions()
		opts.ColorRange = nil
		spec, err := BuildChart(rows, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		distinct := map[[2]any]struct{}{}
		players := map[string]struct{}{}
		for _, r := range rows {
			distinct[[2]any{r.Player, r.MinMid}] = struct{}{}
			players[r.Player] = struct{}{}
		}
		if math.IsNaN(m1) || math.IsNaN(m2) {
			return // NaN keys never compare equal
		}
		if got := spec.MarkCount(); got != len(distinct) {
			t.Errorf("marks = %d, want %d", got, len(distinct))
		}
		if got := len(spec.Layout.YAxis.CategoryArray); got != len(players) {
			t.Errorf("players = %d, want %d", got, len(players))
		}
		if spec.Layout.ColorAxis.CMin > spec.Layout.ColorAxis.CMax && !math.IsNaN(col) {
			t.Errorf("color range inverted: %v > %v", spec.Layout.ColorAxis.CMin, spec.Layout.ColorAxis.CMax)
		}
	})
}
