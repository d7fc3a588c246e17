// Package report renders the console summary and the per-run manifest.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/datachores/censusprep/internal/census"
	"github.com/datachores/censusprep/internal/stats"
)

// WriteSummary prints the dataset shape, per-column describe table, and the
// top-N states by income.
func WriteSummary(w io.Writer, ds *census.Dataset, topN int) {
	fmt.Fprintf(w, "Rows: %d  Columns: %d  States: %d  Total population: %.0f\n\n",
		len(ds.Rows), len(ds.Columns()), ds.States(), ds.TotalPopulation())

	writeDescribe(w, ds)
	if topN > 0 {
		fmt.Fprintln(w)
		writeTopIncome(w, ds, topN)
	}
}

func writeDescribe(w io.Writer, ds *census.Dataset) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Count", "Mean", "Std", "Min", "Median", "Max"})

	cols := census.NumericColumns()
	if ds.Derived {
		cols = append(cols, census.DerivedColumns...)
	}
	for _, name := range cols {
		s := stats.Describe(ds.Column(name))
		t.AppendRow(table.Row{
			name, s.Count,
			fmt.Sprintf("%.2f", s.Mean), fmt.Sprintf("%.2f", s.Std),
			fmt.Sprintf("%.2f", s.Min), fmt.Sprintf("%.2f", s.Median), fmt.Sprintf("%.2f", s.Max),
		})
	}
	t.Render()
}

func writeTopIncome(w io.Writer, ds *census.Dataset, n int) {
	idx := make([]int, len(ds.Rows))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ra, rb := &ds.Rows[idx[a]], &ds.Rows[idx[b]]
		if ra.Income == rb.Income {
			return ra.State < rb.State
		}
		return ra.Income > rb.Income
	})
	if n > len(idx) {
		n = len(idx)
	}

	fmt.Fprintf(w, "Top %d states by income:\n", n)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"State", "Income", "FemaleProportion"})
	for _, i := range idx[:n] {
		r := &ds.Rows[i]
		t.AppendRow(table.Row{r.State, fmt.Sprintf("$%.0f", r.Income), fmt.Sprintf("%.4f", r.FemaleProportion)})
	}
	t.Render()
}

// WriteMissing prints the per-column missing-cell counts, used by inspect
// before imputation has run.
func WriteMissing(w io.Writer, ds *census.Dataset) {
	counts := ds.MissingCounts()
	if len(counts) == 0 {
		fmt.Fprintln(w, "No missing numeric cells.")
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Missing values per column:")
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Missing"})
	for _, name := range names {
		t.AppendRow(table.Row{name, counts[name]})
	}
	t.Render()
}
