// Package ingest discovers the raw census CSV files and loads them into one
// set of records aligned to the canonical column order.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/datachores/censusprep/internal/census"
)

// ErrNoInputs is returned when the glob matches no files.
var ErrNoInputs = errors.New("no input files matched")

// Source records where rows came from.
type Source struct {
	Path string
	Rows int
}

// Result holds the concatenated raw records, cells aligned to
// census.InputColumns order.
type Result struct {
	Records  [][]string
	Sources  []Source
	Warnings []string
}

// Discover expands pattern into a deduplicated, sorted list of files. A
// pattern that names an existing file literally is accepted as-is.
func Discover(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		if _, statErr := os.Stat(pattern); statErr == nil {
			matches = []string{pattern}
		}
	}
	seen := map[string]struct{}{}
	var files []string
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		files = append(files, m)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputs, pattern)
	}
	sort.Strings(files)
	return files, nil
}

// Load reads each CSV and concatenates the rows, matching columns by header
// name so files may order columns differently. Unknown columns are dropped
// with a warning; a missing required column is an error.
func Load(files []string) (*Result, error) {
	res := &Result{}
	for _, path := range files {
		n, err := loadOne(path, res)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		res.Sources = append(res.Sources, Source{Path: path, Rows: n})
	}
	return res, nil
}

func loadOne(path string, res *Result) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("empty file")
		}
		return 0, fmt.Errorf("read header: %w", err)
	}

	idx, unknown, err := alignHeader(header)
	if err != nil {
		return 0, err
	}
	for _, u := range unknown {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: ignoring unknown column %q", filepath.Base(path), u))
	}

	rows := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return rows, fmt.Errorf("read row %d: %w", rows+2, err)
		}
		aligned := make([]string, len(census.InputColumns))
		for i, j := range idx {
			if j < len(rec) {
				aligned[i] = rec[j]
			}
		}
		res.Records = append(res.Records, aligned)
		rows++
	}
	return rows, nil
}

// alignHeader maps canonical column positions to positions in the file's
// header. An unnamed leading index column (pandas-style) is tolerated.
func alignHeader(header []string) (idx []int, unknown []string, err error) {
	pos := map[string]int{}
	for j, h := range header {
		name := strings.TrimSpace(h)
		if name == "" || isIndexColumn(name) {
			continue
		}
		if _, dup := pos[name]; !dup {
			pos[name] = j
		}
	}
	idx = make([]int, len(census.InputColumns))
	for i, want := range census.InputColumns {
		j, ok := pos[want]
		if !ok {
			return nil, nil, fmt.Errorf("missing required column %q", want)
		}
		idx[i] = j
		delete(pos, want)
	}
	for name := range pos {
		unknown = append(unknown, name)
	}
	sort.Strings(unknown)
	return idx, unknown, nil
}

// isIndexColumn reports whether a header cell looks like an exported row
// index ("Unnamed: 0" or a bare number).
func isIndexColumn(name string) bool {
	if strings.HasPrefix(name, "Unnamed:") {
		return true
	}
	_, err := strconv.Atoi(name)
	return err == nil
}
