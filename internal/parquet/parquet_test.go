package parquet

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/shotdash/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []schema.ShotRecord {
	return []schema.ShotRecord{
		{
			Group: "TOR", Player: "Kyle Lowry",
			MinStart: 0, MinMid: 0.5, MinEnd: 1,
			ShotsCount: 12, ShotsMade: 5, ShotsFreq: 18.2, ShotsAcc: 41.7,
			PlAcc: 41.6, PlPps: 107.3,
		},
		{
			Group: "Leaders", Player: "James Harden",
			MinStart: 47, MinMid: 47.5, MinEnd: 48,
			ShotsCount: 40, ShotsMade: 19, ShotsFreq: 35, ShotsAcc: 47.5,
			PlAcc: 44.4, PlPps: 116.2,
		},
	}
}

func TestShotRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(ShotRow))
	require.NotNil(t, sch)

	for _, colName := range schema.RequiredColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestRecordConversion(t *testing.T) {
	records := sampleRecords()
	assert.Equal(t, records, ToRecords(FromRecords(records)))
	assert.Empty(t, FromRecords(nil))
}

func TestWriteAndReadShotRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteShotRecords(&buf, sampleRecords()))
	assert.Greater(t, buf.Len(), 0)

	got, err := ReadShotRecords(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)
}

func TestWriteShotRecordsFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "shots.parquet")
	require.NoError(t, WriteShotRecordsFile(sampleRecords(), outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	got, err := ReadShotRecordsFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)
}

func TestWriteShotRecordsFile_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteShotRecordsFile(nil, outputPath))

	got, err := ReadShotRecordsFile(outputPath)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteShotRecordsFile_BadPath(t *testing.T) {
	err := WriteShotRecordsFile(sampleRecords(), filepath.Join(t.TempDir(), "missing", "x.parquet"))
	assert.Error(t, err)
}

// wideRow has integer counts and an extra column, like a file exported by another tool.
type wideRow struct {
	Group      string  `parquet:"group"`
	Player     string  `parquet:"player"`
	MinStart   float64 `parquet:"min_start"`
	MinMid     float64 `parquet:"min_mid"`
	MinEnd     float64 `parquet:"min_end"`
	ShotsCount int64   `parquet:"shots_count"`
	ShotsMade  int32   `parquet:"shots_made"`
	ShotsFreq  float32 `parquet:"shots_freq"`
	ShotsAcc   float64 `parquet:"shots_acc"`
	PlAcc      float64 `parquet:"pl_acc"`
	PlPps      float64 `parquet:"pl_pps"`
	Season     string  `parquet:"season"`
}

func TestReadShotRecords_WidensNumbers(t *testing.T) {
	var buf bytes.Buffer
	w := parquet.NewGenericWriter[wideRow](&buf)
	_, err := w.Write([]wideRow{{
		Group: "BOS", Player: "Jayson Tatum",
		MinStart: 1, MinMid: 1.5, MinEnd: 2,
		ShotsCount: 7, ShotsMade: 3, ShotsFreq: 22.5, ShotsAcc: 42.9,
		PlAcc: 45, PlPps: 111, Season: "2019-20",
	}})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got, err := ReadShotRecords(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jayson Tatum", got[0].Player)
	assert.Equal(t, 7.0, got[0].ShotsCount)
	assert.Equal(t, 3.0, got[0].ShotsMade)
	assert.Equal(t, 22.5, got[0].ShotsFreq)
}

type narrowRow struct {
	Group  string `parquet:"group"`
	Player string `parquet:"player"`
}

func TestReadShotRecords_MissingColumn(t *testing.T) {
	var buf bytes.Buffer
	w := parquet.NewGenericWriter[narrowRow](&buf)
	_, err := w.Write([]narrowRow{{Group: "TOR", Player: "x"}})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = ReadShotRecords(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "min_start")
}

func TestReadShotRecords_NotParquet(t *testing.T) {
	data := []byte("group,player\nTOR,x\n")
	_, err := ReadShotRecords(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}
