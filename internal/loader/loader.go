// Package loader reads the shot distribution dataset from disk.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/parquet"
	"github.com/huangsam/shotdash/schema"
)

// ErrMissingColumn is returned when the dataset lacks a required column.
var ErrMissingColumn = parquet.ErrMissingColumn

// ErrUnsupportedFormat is returned for file extensions with no reader.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Load reads the dataset at path and validates it.
// The format is chosen by extension: .csv, .tsv and .txt are delimited, .parquet is Parquet.
func Load(path string) (*core.Dataset, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	ds, err := core.NewDataset(records)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return ds, nil
}

// ReadRecords reads the raw records at path without dataset validation.
func ReadRecords(path string) ([]schema.ShotRecord, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return readDelimitedFile(path, ',')
	case ".tsv":
		return readDelimitedFile(path, '\t')
	case ".parquet":
		records, err := parquet.ReadShotRecordsFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func readDelimitedFile(path string, comma rune) ([]schema.ShotRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	records, err := ReadDelimited(file, comma)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// ReadDelimited parses a delimited table with a header row.
// Columns are matched by name, case-insensitively, and extra columns are ignored.
func ReadDelimited(r io.Reader, comma rune) ([]schema.ShotRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty file: %w: %s", ErrMissingColumn, schema.GroupCol)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var records []schema.ShotRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rec, err := parseRow(reader, row, index)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// headerIndex maps each required column to its position in the header.
func headerIndex(header []string) (map[string]int, error) {
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := seen[name]; !dup {
			seen[name] = i
		}
	}
	index := make(map[string]int, len(schema.RequiredColumns))
	for _, col := range schema.RequiredColumns {
		i, ok := seen[col]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		index[col] = i
	}
	return index, nil
}

func parseRow(reader *csv.Reader, row []string, index map[string]int) (schema.ShotRecord, error) {
	rec := schema.ShotRecord{
		Group:  strings.TrimSpace(row[index[schema.GroupCol]]),
		Player: strings.TrimSpace(row[index[schema.PlayerCol]]),
	}
	for _, col := range schema.MeasureColumns {
		i := index[string(col)]
		raw := strings.TrimSpace(row[i])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			line, _ := reader.FieldPos(i)
			return rec, fmt.Errorf("line %d column %s: non-numeric value %q", line, col, raw)
		}
		rec.SetValue(col, v)
	}
	return rec, nil
}
