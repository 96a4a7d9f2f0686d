package loader

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/parquet"
	"github.com/huangsam/shotdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "group,player,min_start,min_mid,min_end,shots_count,shots_made,shots_freq,shots_acc,pl_acc,pl_pps"

const fixtureCSV = header + `
TOR,Kyle Lowry,1,1.5,2,10,4,20,40,41.6,110
TOR,Pascal Siakam,2,2.5,3,8,4,25,50,45.3,100
BOS,Jayson Tatum,1,1.5,2,9,5,30,55.6,45,115
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	ds, err := Load(writeFile(t, "shots.csv", fixtureCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"BOS", "TOR"}, ds.Groups())

	for _, r := range ds.Records() {
		assert.LessOrEqual(t, r.MinStart, r.MinMid)
		assert.LessOrEqual(t, r.MinMid, r.MinEnd)
	}
	first := ds.Records()[0]
	assert.Equal(t, schema.ShotRecord{
		Group: "TOR", Player: "Kyle Lowry",
		MinStart: 1, MinMid: 1.5, MinEnd: 2,
		ShotsCount: 10, ShotsMade: 4, ShotsFreq: 20, ShotsAcc: 40,
		PlAcc: 41.6, PlPps: 110,
	}, first)
}

func TestLoadTSV(t *testing.T) {
	content := strings.ReplaceAll(fixtureCSV, ",", "\t")
	ds, err := Load(writeFile(t, "shots.tsv", content))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestLoadParquet(t *testing.T) {
	records, err := ReadDelimited(strings.NewReader(fixtureCSV), ',')
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "shots.parquet")
	require.NoError(t, parquet.WriteShotRecordsFile(records, path))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, records, ds.Records())
}

func TestLoadParquetNonFinite(t *testing.T) {
	records, err := ReadDelimited(strings.NewReader(fixtureCSV), ',')
	require.NoError(t, err)
	records[1].PlPps = math.NaN()

	path := filepath.Join(t.TempDir(), "shots.parquet")
	require.NoError(t, parquet.WriteShotRecordsFile(records, path))

	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidRecord))
	assert.Contains(t, err.Error(), "pl_pps")
}

func TestLoadColumnOrderAndExtras(t *testing.T) {
	content := `season,pl_pps,pl_acc,shots_acc,shots_freq,shots_made,shots_count,min_end,min_mid,min_start,player,Group
2019-20,110,41.6,40,20,4,10,2,1.5,1,Kyle Lowry,TOR
`
	ds, err := Load(writeFile(t, "reordered.csv", content))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 110.0, ds.Records()[0].PlPps)
	assert.Equal(t, "TOR", ds.Records()[0].Group)
}

func TestLoadByteOrderMark(t *testing.T) {
	ds, err := Load(writeFile(t, "bom.csv", "\ufeff"+fixtureCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "shots.xlsx", fixtureCSV))
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	})

	t.Run("missing column", func(t *testing.T) {
		content := strings.Replace(fixtureCSV, "pl_pps", "pps", 1)
		_, err := Load(writeFile(t, "shots.csv", content))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingColumn))
		assert.Contains(t, err.Error(), "pl_pps")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Load(writeFile(t, "empty.csv", ""))
		assert.True(t, errors.Is(err, ErrMissingColumn))
	})

	t.Run("non-numeric value names line and column", func(t *testing.T) {
		content := strings.Replace(fixtureCSV, "Pascal Siakam,2,2.5", "Pascal Siakam,two,2.5", 1)
		_, err := Load(writeFile(t, "shots.csv", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
		assert.Contains(t, err.Error(), "min_start")
	})

	nonFinite := []struct {
		name, row, column string
	}{
		{"NaN minute", "Pascal Siakam,2,NaN,3,8,4,25,50,45.3,100", "min_mid"},
		{"lowercase nan", "Pascal Siakam,2,2.5,3,8,4,25,50,45.3,nan", "pl_pps"},
		{"Inf", "Pascal Siakam,2,2.5,3,Inf,4,25,50,45.3,100", "shots_count"},
		{"negative inf", "Pascal Siakam,2,2.5,3,8,4,-inf,50,45.3,100", "shots_freq"},
	}
	for _, tt := range nonFinite {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(fixtureCSV, "Pascal Siakam,2,2.5,3,8,4,25,50,45.3,100", tt.row, 1)
			_, err := Load(writeFile(t, "shots.csv", content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 3")
			assert.Contains(t, err.Error(), tt.column)
		})
	}

	t.Run("ragged row", func(t *testing.T) {
		_, err := Load(writeFile(t, "shots.csv", header+"\nTOR,x,1\n"))
		assert.Error(t, err)
	})

	t.Run("broken invariant", func(t *testing.T) {
		content := header + "\nTOR,Kyle Lowry,3,1.5,2,10,4,20,40,41.6,110\n"
		_, err := Load(writeFile(t, "shots.csv", content))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrInvalidRecord))
	})

	t.Run("empty player", func(t *testing.T) {
		content := header + "\nTOR, ,1,1.5,2,10,4,20,40,41.6,110\n"
		_, err := Load(writeFile(t, "shots.csv", content))
		assert.True(t, errors.Is(err, core.ErrInvalidRecord))
	})
}

func TestLoadHeaderOnly(t *testing.T) {
	ds, err := Load(writeFile(t, "header.csv", header+"\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}
