package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datachores/censusprep/internal/census"
)

func sampleDataset(derived bool) *census.Dataset {
	ds := &census.Dataset{Rows: []census.Row{
		{
			State: "Alabama", TotalPop: 4830620,
			Hispanic: 3.75, White: 61.88, Black: 31.25, Native: 0.45, Asian: 1.05, Pacific: 0.03,
			Income: 43296.36, Male: 2341093, Female: 2489527,
		},
	}}
	if derived {
		census.Derive(ds)
	}
	return ds
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "cleaned.csv")

	ds := sampleDataset(true)
	if err := WriteCSV(ds, path, CSVOptions{}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	wantHeader := append(append([]string{}, census.OutputColumns...), census.DerivedColumns...)
	if strings.Join(rows[0], ",") != strings.Join(wantHeader, ",") {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][0] != "Alabama" || rows[1][8] != "43296.36" {
		t.Fatalf("record = %v", rows[1])
	}

	// No leftover temp file after the atomic rename.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestWriteCSV_BOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cleaned.csv")
	if err := WriteCSV(sampleDataset(false), path, CSVOptions{BOM: true}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("expected UTF-8 BOM prefix")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4830620, "4830620"},
		{43296.36, "43296.36"},
		{0.5, "0.5"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
