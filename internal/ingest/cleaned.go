package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/datachores/censusprep/internal/census"
)

// LoadCleaned reads a previously cleaned CSV back into a Dataset, for
// commands that re-render charts without re-running the pipeline. Every
// numeric cell must parse; a cleaned file has no missing values.
func LoadCleaned(path string) (*census.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cleaned csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	pos := map[string]int{}
	for j, h := range header {
		pos[strings.TrimSpace(h)] = j
	}
	for _, want := range census.OutputColumns {
		if _, ok := pos[want]; !ok {
			return nil, fmt.Errorf("missing required column %q", want)
		}
	}
	_, hasDerived := pos[census.ColFemaleProportion]

	ds := &census.Dataset{}
	line := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line+1, err)
		}
		line++
		cell := func(name string) string {
			j := pos[name]
			if j >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[j])
		}
		num := func(name string) (float64, error) {
			v, err := strconv.ParseFloat(cell(name), 64)
			if err != nil {
				return 0, fmt.Errorf("row %d: column %s: %w", line, name, err)
			}
			return v, nil
		}

		row := census.Row{State: cell(census.ColState)}
		var errs []error
		for _, c := range []struct {
			name string
			dst  *float64
		}{
			{census.ColTotalPop, &row.TotalPop},
			{census.ColHispanic, &row.Hispanic},
			{census.ColWhite, &row.White},
			{census.ColBlack, &row.Black},
			{census.ColNative, &row.Native},
			{census.ColAsian, &row.Asian},
			{census.ColPacific, &row.Pacific},
			{census.ColIncome, &row.Income},
			{census.ColMale, &row.Male},
			{census.ColFemale, &row.Female},
		} {
			v, err := num(c.name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			*c.dst = v
		}
		if len(errs) > 0 {
			return nil, errs[0]
		}
		if hasDerived {
			if row.FemaleProportion, err = num(census.ColFemaleProportion); err != nil {
				return nil, err
			}
			if row.MaleProportion, err = num(census.ColMaleProportion); err != nil {
				return nil, err
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	if hasDerived {
		ds.Derived = true
	} else {
		census.Derive(ds)
	}
	return ds, nil
}
