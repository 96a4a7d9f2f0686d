package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/schema"
)

// precision is the number of decimals used for measures in text and CSV output.
const precision = 2

// writeWithFile opens the output file (or stdout), runs the writer against it
// and reports where the output went.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		contract.LogInfo("%s to %s", successMsg, outputFile)
	}
	return nil
}

// writeJSON encodes data with a two-space indent.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader writes a header row followed by the rows produced by writeRows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// fmtFloat formats a measure with the package precision.
func fmtFloat(v float64) string {
	return fmt.Sprintf("%.*f", precision, v)
}

// kindLabel renders the selection kind, colored when the config allows it.
func kindLabel(kind schema.SelectionKind, useColors bool) string {
	if !useColors {
		return string(kind)
	}
	return contract.GetKindLabel(kind)
}
