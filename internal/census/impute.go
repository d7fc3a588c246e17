package census

import (
	"fmt"
	"math"

	"github.com/datachores/censusprep/internal/stats"
)

// Imputation strategies.
const (
	StrategyMean      = "mean"
	StrategyRemainder = "remainder"
)

// ImputeStats reports how many cells were filled per column.
type ImputeStats struct {
	Filled   map[string]int
	Warnings []string
}

// Total returns the overall number of filled cells.
func (s ImputeStats) Total() int {
	n := 0
	for _, v := range s.Filled {
		n += v
	}
	return n
}

// Impute fills every missing numeric cell in place. StrategyMean replaces a
// missing cell with its column mean. StrategyRemainder applies to the share
// columns only: a row with exactly one missing share gets 100 minus the sum of
// the present shares; anything else falls back to the column mean. A column
// with no observed values at all is filled with zeros and flagged.
func Impute(ds *Dataset, strategy string) (ImputeStats, error) {
	switch strategy {
	case StrategyMean, StrategyRemainder:
	default:
		return ImputeStats{}, fmt.Errorf("unknown imputation strategy %q (use %s or %s)", strategy, StrategyMean, StrategyRemainder)
	}

	st := ImputeStats{Filled: map[string]int{}}

	if strategy == StrategyRemainder {
		shareGets := make([]func(*Row) *float64, 0, len(ShareColumns))
		for _, c := range numericColumns {
			if isShareColumn(c.name) {
				shareGets = append(shareGets, c.get)
			}
		}
		for i := range ds.Rows {
			missing := -1
			sum := 0.0
			multi := false
			for j, get := range shareGets {
				v := *get(&ds.Rows[i])
				if math.IsNaN(v) {
					if missing >= 0 {
						multi = true
					}
					missing = j
					continue
				}
				sum += v
			}
			if missing >= 0 && !multi {
				*shareGets[missing](&ds.Rows[i]) = 100 - sum
				st.Filled[ShareColumns[missing]]++
			}
		}
	}

	// Mean fill covers everything still missing, for both strategies.
	for _, c := range numericColumns {
		mean, n := stats.MeanSkipNaN(ds.Column(c.name))
		if n == 0 {
			mean = 0
			st.Warnings = append(st.Warnings, fmt.Sprintf("column %s has no observed values; filled with 0", c.name))
		}
		for i := range ds.Rows {
			cell := c.get(&ds.Rows[i])
			if math.IsNaN(*cell) {
				*cell = mean
				st.Filled[c.name]++
			}
		}
	}
	return st, nil
}

func isShareColumn(name string) bool {
	for _, s := range ShareColumns {
		if s == name {
			return true
		}
	}
	return false
}
