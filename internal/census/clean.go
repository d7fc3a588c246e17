package census

import (
	"fmt"
	"strings"
)

// CleanStats summarizes what Clean did to the raw records.
type CleanStats struct {
	RowsIn     int
	RowsOut    int
	Duplicates int
	Warnings   []string
}

// Clean turns raw records (cells aligned to InputColumns order) into a typed
// Dataset: exact duplicate rows are dropped, the Income and share columns are
// normalized to numbers, and GenderPop is split into Male/Female. Unparseable
// cells become missing and are left for imputation.
func Clean(records [][]string) (*Dataset, CleanStats, error) {
	st := CleanStats{RowsIn: len(records)}
	ds := &Dataset{Rows: make([]Row, 0, len(records))}

	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if len(rec) != len(InputColumns) {
			return nil, st, fmt.Errorf("record %d: got %d cells, want %d", i+1, len(rec), len(InputColumns))
		}
		key := dedupeKey(rec)
		if _, ok := seen[key]; ok {
			st.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		row := Row{State: strings.TrimSpace(rec[0])}
		row.TotalPop = parseCount(rec[1])
		row.Hispanic = parseShare(rec[2])
		row.White = parseShare(rec[3])
		row.Black = parseShare(rec[4])
		row.Native = parseShare(rec[5])
		row.Asian = parseShare(rec[6])
		row.Pacific = parseShare(rec[7])
		row.Income = parseCurrency(rec[8])

		male, female, ok := parseGenderPop(rec[9])
		if !ok {
			st.Warnings = append(st.Warnings, fmt.Sprintf("row %d (%s): malformed GenderPop %q", i+1, row.State, strings.TrimSpace(rec[9])))
		}
		row.Male = male
		row.Female = female

		ds.Rows = append(ds.Rows, row)
	}
	st.RowsOut = len(ds.Rows)
	return ds, st, nil
}

// dedupeKey joins trimmed raw cells so duplicate detection happens on the
// original text, before any parsing or imputation.
func dedupeKey(rec []string) string {
	parts := make([]string, len(rec))
	for i, c := range rec {
		parts[i] = strings.TrimSpace(c)
	}
	return strings.Join(parts, "\x1f")
}
