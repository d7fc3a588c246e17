package exporter

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cleaned.xlsx")

	if err := WriteXLSX(sampleDataset(true), path); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	got, err := wb.GetCellValue("Cleaned", "A2")
	if err != nil {
		t.Fatalf("A2: %v", err)
	}
	if got != "Alabama" {
		t.Fatalf("A2 = %q, want Alabama", got)
	}
	header, err := wb.GetCellValue("Cleaned", "L1")
	if err != nil {
		t.Fatalf("L1: %v", err)
	}
	if header != "FemaleProportion" {
		t.Fatalf("L1 = %q, want FemaleProportion", header)
	}
}
