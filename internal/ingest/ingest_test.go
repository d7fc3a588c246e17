package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const statesHeader = "State,TotalPop,Hispanic,White,Black,Native,Asian,Pacific,Income,GenderPop\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "states0.csv", statesHeader)
	writeFile(t, dir, "states1.csv", statesHeader)
	writeFile(t, dir, "notes.txt", "not a csv")

	files, err := Discover(filepath.Join(dir, "states*.csv"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v, want 2 matches", files)
	}
	if filepath.Base(files[0]) != "states0.csv" || filepath.Base(files[1]) != "states1.csv" {
		t.Fatalf("files not sorted: %v", files)
	}
}

func TestDiscover_LiteralPath(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "single.csv", statesHeader)
	files, err := Discover(p)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0] != p {
		t.Fatalf("files = %v", files)
	}
}

func TestDiscover_NoMatches(t *testing.T) {
	dir := t.TempDir()
	_, err := Discover(filepath.Join(dir, "states*.csv"))
	if !errors.Is(err, ErrNoInputs) {
		t.Fatalf("err = %v, want ErrNoInputs", err)
	}
}

func TestLoad_ConcatenatesAndAlignsByName(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "states0.csv", statesHeader+
		`Alabama,4830620,3.75%,61.88%,31.25%,0.45%,1.05%,0.03%,"$43,296.36",2341093M_2489527F`+"\n")
	// Same columns, different order, plus a pandas-style index column.
	b := writeFile(t, dir, "states1.csv",
		"Unnamed: 0,Income,State,TotalPop,Hispanic,White,Black,Native,Asian,Pacific,GenderPop\n"+
			`0,"$70,354.74",Alaska,733375,5.91%,60.91%,2.85%,16.39%,5.45%,1.06%,384160M_349215F`+"\n")

	res, err := Load([]string{a, b})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(res.Records))
	}
	if res.Sources[0].Rows != 1 || res.Sources[1].Rows != 1 {
		t.Fatalf("sources = %+v", res.Sources)
	}
	// Both rows aligned to canonical order regardless of file layout.
	if res.Records[0][0] != "Alabama" || res.Records[1][0] != "Alaska" {
		t.Fatalf("state cells = %q, %q", res.Records[0][0], res.Records[1][0])
	}
	if res.Records[1][8] != "$70,354.74" {
		t.Fatalf("income cell = %q", res.Records[1][8])
	}
}

func TestLoad_UnknownColumnWarns(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "states2.csv",
		"State,TotalPop,Hispanic,White,Black,Native,Asian,Pacific,Income,GenderPop,Region\n"+
			`Maine,1329100,1.45%,93.44%,1.05%,0.62%,1.02%,0.02%,"$49,331.00",649826M_679274F,Northeast`+"\n")
	res, err := Load([]string{p})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "Region") {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestLoad_MissingColumnFails(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "bad.csv", "State,TotalPop\nTexas,27429639\n")
	_, err := Load([]string{p})
	if err == nil || !strings.Contains(err.Error(), "missing required column") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoad_HeaderOnlyFileContributesZeroRows(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "empty.csv", statesHeader)
	res, err := Load([]string{p})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(res.Records) != 0 || res.Sources[0].Rows != 0 {
		t.Fatalf("records = %d, sources = %+v", len(res.Records), res.Sources)
	}
}

func TestLoad_TrulyEmptyFileFails(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "zero.csv", "")
	_, err := Load([]string{p})
	if err == nil {
		t.Fatal("expected error for file with no header")
	}
}
