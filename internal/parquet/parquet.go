// Package parquet reads and writes shot records as Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/shotdash/schema"
	"github.com/parquet-go/parquet-go"
)

// ErrMissingColumn is returned when a Parquet file lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// ShotRow is the Parquet layout of one shot record.
// Column names match the delimited dataset header.
type ShotRow struct {
	// Group is the team code or aggregate name
	Group string `parquet:"group,snappy,dict"`

	// Player is the player name
	Player string `parquet:"player,snappy,dict"`

	MinStart   float64 `parquet:"min_start,snappy"`
	MinMid     float64 `parquet:"min_mid,snappy"`
	MinEnd     float64 `parquet:"min_end,snappy"`
	ShotsCount float64 `parquet:"shots_count,snappy"`
	ShotsMade  float64 `parquet:"shots_made,snappy"`
	ShotsFreq  float64 `parquet:"shots_freq,snappy"`
	ShotsAcc   float64 `parquet:"shots_acc,snappy"`
	PlAcc      float64 `parquet:"pl_acc,snappy"`
	PlPps      float64 `parquet:"pl_pps,snappy"`
}

// FromRecords converts shot records to Parquet rows.
func FromRecords(records []schema.ShotRecord) []ShotRow {
	result := make([]ShotRow, len(records))
	for i, r := range records {
		result[i] = ShotRow(r)
	}
	return result
}

// ToRecords converts Parquet rows to shot records.
func ToRecords(rows []ShotRow) []schema.ShotRecord {
	result := make([]schema.ShotRecord, len(rows))
	for i, r := range rows {
		result[i] = schema.ShotRecord(r)
	}
	return result
}

// WriteShotRecords writes records to w as a single Parquet file.
func WriteShotRecords(w io.Writer, records []schema.ShotRecord) error {
	writer := parquet.NewGenericWriter[ShotRow](w)
	if _, err := writer.Write(FromRecords(records)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteShotRecordsFile writes records to a new Parquet file at outputPath.
func WriteShotRecordsFile(records []schema.ShotRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteShotRecords(file, records); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ReadShotRecords reads every row of a Parquet file into shot records.
// Columns are matched by name, extra columns are ignored, and integer or
// float32 measures are widened to float64.
func ReadShotRecords(r io.ReaderAt, size int64) ([]schema.ShotRecord, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	index := make(map[string]int)
	for i, path := range pf.Schema().Columns() {
		index[strings.ToLower(strings.Join(path, "."))] = i
	}
	byColumn := make(map[int]string, len(schema.RequiredColumns))
	for _, name := range schema.RequiredColumns {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		byColumn[i] = name
	}

	records := make([]schema.ShotRecord, 0, pf.NumRows())
	buf := make([]parquet.Row, 128)
	for _, rg := range pf.RowGroups() {
		rows := rg.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				rec, convErr := rowToRecord(row, byColumn, len(records)+1)
				if convErr != nil {
					_ = rows.Close()
					return nil, convErr
				}
				records = append(records, rec)
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				_ = rows.Close()
				return nil, fmt.Errorf("failed to read parquet rows: %w", err)
			}
		}
		if err := rows.Close(); err != nil {
			return nil, fmt.Errorf("failed to close parquet rows: %w", err)
		}
	}
	return records, nil
}

// ReadShotRecordsFile reads a Parquet file from disk.
func ReadShotRecordsFile(path string) ([]schema.ShotRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	return ReadShotRecords(file, info.Size())
}

func rowToRecord(row parquet.Row, byColumn map[int]string, rowNum int) (schema.ShotRecord, error) {
	var rec schema.ShotRecord
	for _, v := range row {
		name, ok := byColumn[v.Column()]
		if !ok {
			continue
		}
		switch name {
		case schema.GroupCol:
			rec.Group = v.String()
		case schema.PlayerCol:
			rec.Player = v.String()
		default:
			f, err := numericValue(v)
			if err != nil {
				return rec, fmt.Errorf("row %d column %s: %w", rowNum, name, err)
			}
			rec.SetValue(schema.Column(name), f)
		}
	}
	return rec, nil
}

func numericValue(v parquet.Value) (float64, error) {
	if v.IsNull() {
		return 0, fmt.Errorf("null value")
	}
	switch v.Kind() {
	case parquet.Double:
		return v.Double(), nil
	case parquet.Float:
		return float64(v.Float()), nil
	case parquet.Int32:
		return float64(v.Int32()), nil
	case parquet.Int64:
		return float64(v.Int64()), nil
	default:
		return 0, fmt.Errorf("non-numeric %s value", v.Kind())
	}
}
