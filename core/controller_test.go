package core

import (
	"sync"
	"testing"

	"github.com/huangsam/shotdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, records []schema.ShotRecord) *Controller {
	t.Helper()
	ctrl, err := NewController(mustDataset(records), DefaultControllerConfig())
	require.NoError(t, err)
	return ctrl
}

func TestControllerEndToEnd(t *testing.T) {
	ctrl := newTestController(t, threeRowFixture())

	tests := []struct {
		group string
		marks int
	}{
		{"TOR", 2},
		{"BOS", 1},
		{"GSW", 0},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			spec := ctrl.Update(tt.group)
			assert.Equal(t, tt.marks, spec.MarkCount())
			assert.Equal(t, 500, spec.Layout.Height)
			assert.Equal(t, 1250, spec.Layout.Width)
			assert.Equal(t, tt.group, spec.Layout.Meta.Group)
		})
	}
}

func TestControllerSizePolicy(t *testing.T) {
	records := append(threeRowFixture(),
		shot("Leaders", "Kyle Lowry", 1.5, 20, 110),
		shot("Leaders", "Jayson Tatum", 1.5, 30, 115),
	)
	ctrl := newTestController(t, records)

	tor := ctrl.Update("TOR")
	assert.Equal(t, 500, tor.Layout.Height)
	assert.Equal(t, 1250, tor.Layout.Width)
	assert.Equal(t, schema.TeamSelection, tor.Layout.Meta.Kind)

	leaders := ctrl.Update("Leaders")
	assert.Equal(t, 850, leaders.Layout.Height)
	assert.Equal(t, 1250, leaders.Layout.Width)
	assert.Equal(t, schema.LeadersSelection, leaders.Layout.Meta.Kind)
	assert.Equal(t, 2, leaders.MarkCount())
}

func TestControllerAbsentLeaders(t *testing.T) {
	ctrl := newTestController(t, threeRowFixture())
	spec := ctrl.Update("Leaders")
	assert.Equal(t, 0, spec.MarkCount())
	assert.Equal(t, 850, spec.Layout.Height, "kind comes from configuration, not data")
}

func TestControllerLongTeamCode(t *testing.T) {
	// A value longer than three letters is not an aggregate unless configured.
	records := []schema.ShotRecord{shot("NOLA", "Zion Williamson", 3.5, 30, 120)}
	ctrl := newTestController(t, records)
	spec := ctrl.Update("NOLA")
	assert.Equal(t, 500, spec.Layout.Height)
}

func TestControllerOptions(t *testing.T) {
	records := []schema.ShotRecord{
		shot("TOR", "A", 1.5, 1, 100),
		shot("BOS", "B", 1.5, 1, 100),
		shot("Leaders", "A", 1.5, 1, 100),
		shot("TOR", "C", 2.5, 1, 100),
		shot("ATL", "D", 1.5, 1, 100),
		shot("BOS", "E", 3.5, 1, 100),
	}
	ctrl := newTestController(t, records)

	opts := ctrl.Options()
	assert.Equal(t, []schema.Selection{
		{Value: "ATL", Kind: schema.TeamSelection},
		{Value: "BOS", Kind: schema.TeamSelection},
		{Value: "Leaders", Kind: schema.LeadersSelection},
		{Value: "TOR", Kind: schema.TeamSelection},
	}, opts)

	opts[0].Value = "changed"
	assert.Equal(t, "ATL", ctrl.Options()[0].Value)

	sel, ok := ctrl.Selection("Leaders")
	assert.True(t, ok)
	assert.Equal(t, schema.LeadersSelection, sel.Kind)

	sel, ok = ctrl.Selection("GSW")
	assert.False(t, ok)
	assert.Equal(t, schema.TeamSelection, sel.Kind)
}

func TestControllerEmptyDataset(t *testing.T) {
	ctrl := newTestController(t, nil)
	assert.NotNil(t, ctrl.Options())
	assert.Empty(t, ctrl.Options())
	assert.Equal(t, 0, ctrl.Update("TOR").MarkCount())
}

func TestNewControllerErrors(t *testing.T) {
	ds := mustDataset(threeRowFixture())

	_, err := NewController(nil, DefaultControllerConfig())
	assert.Error(t, err)

	cfg := DefaultControllerConfig()
	cfg.Chart.ColorColumn = "pl_ppss"
	_, err = NewController(ds, cfg)
	assert.ErrorIs(t, err, ErrUnknownColumn)

	cfg = DefaultControllerConfig()
	cfg.Width = 0
	_, err = NewController(ds, cfg)
	assert.Error(t, err)
}

func TestControllerConfigIsolation(t *testing.T) {
	cfg := DefaultControllerConfig()
	ctrl, err := NewController(mustDataset(threeRowFixture()), cfg)
	require.NoError(t, err)

	cfg.Chart.ColorRange.Min = 0
	cfg.AggregateGroups[0] = "TOR"

	spec := ctrl.Update("TOR")
	assert.Equal(t, 90.0, spec.Layout.ColorAxis.CMin)
	assert.Equal(t, 500, spec.Layout.Height)

	got := ctrl.Config()
	got.Chart.ColorRange.Max = 1
	assert.Equal(t, 120.0, ctrl.Config().Chart.ColorRange.Max)
}

func TestControllerConcurrentUpdates(t *testing.T) {
	ctrl := newTestController(t, threeRowFixture())
	want := ctrl.Update("TOR")

	var wg sync.WaitGroup
	results := make([]schema.ChartSpec, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ctrl.Update("TOR")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
	results[0].Data[0].X[0] = -1
	assert.NotEqual(t, -1.0, results[1].Data[0].X[0])
}

func TestControllerRows(t *testing.T) {
	ctrl := newTestController(t, threeRowFixture())
	assert.Len(t, ctrl.Rows("TOR"), 2)
	assert.Empty(t, ctrl.Rows("GSW"))
}
