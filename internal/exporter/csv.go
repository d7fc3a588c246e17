// Package exporter persists the cleaned dataset as flat files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/datachores/censusprep/internal/census"
)

// CSVOptions configures the CSV export.
type CSVOptions struct {
	// BOM prefixes the file with a UTF-8 byte order mark so Excel opens it
	// correctly.
	BOM bool
}

// WriteCSV writes the dataset to path, creating parent directories as needed.
// The file is written to a temp sibling and atomically renamed into place.
func WriteCSV(ds *census.Dataset, path string, opts CSVOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if err := writeCSVTo(f, ds, opts); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

func writeCSVTo(f *os.File, ds *census.Dataset, opts CSVOptions) error {
	if opts.BOM {
		if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}
	w := csv.NewWriter(f)
	if err := w.Write(ds.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range ds.Rows {
		if err := w.Write(recordFor(ds, i)); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

// recordFor renders row i as CSV cells in Columns() order.
func recordFor(ds *census.Dataset, i int) []string {
	r := &ds.Rows[i]
	cells := []string{
		r.State,
		FormatNumber(r.TotalPop),
		FormatNumber(r.Hispanic),
		FormatNumber(r.White),
		FormatNumber(r.Black),
		FormatNumber(r.Native),
		FormatNumber(r.Asian),
		FormatNumber(r.Pacific),
		FormatNumber(r.Income),
		FormatNumber(r.Male),
		FormatNumber(r.Female),
	}
	if ds.Derived {
		cells = append(cells, FormatNumber(r.FemaleProportion), FormatNumber(r.MaleProportion))
	}
	return cells
}

// FormatNumber renders a numeric cell with the shortest exact representation.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
