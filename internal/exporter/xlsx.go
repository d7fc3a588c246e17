package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/datachores/censusprep/internal/census"
)

const xlsxSheet = "Cleaned"

// WriteXLSX writes the dataset as a single-sheet workbook. Numeric cells are
// written as numbers so spreadsheet formulas work on them directly.
func WriteXLSX(ds *census.Dataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}

	wb := excelize.NewFile()
	defer wb.Close()
	if err := wb.SetSheetName(wb.GetSheetName(0), xlsxSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := ds.Columns()
	row := make([]any, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := setRow(wb, 1, row); err != nil {
		return err
	}

	for i := range ds.Rows {
		r := &ds.Rows[i]
		row = []any{
			r.State, r.TotalPop, r.Hispanic, r.White, r.Black, r.Native,
			r.Asian, r.Pacific, r.Income, r.Male, r.Female,
		}
		if ds.Derived {
			row = append(row, r.FemaleProportion, r.MaleProportion)
		}
		if err := setRow(wb, i+2, row); err != nil {
			return err
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func setRow(wb *excelize.File, n int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := wb.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
		return fmt.Errorf("write xlsx row %d: %w", n, err)
	}
	return nil
}
