// Package stats provides the small set of numeric summaries the pipeline
// needs: NaN-aware moments, quantiles, and a least-squares line fit.
package stats

import (
	"math"
	"sort"
)

// MeanSkipNaN returns the mean of the non-NaN values and how many there were.
func MeanSkipNaN(vals []float64) (mean float64, n int) {
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		// Welford update keeps the running mean stable for large counts.
		n++
		mean += (v - mean) / float64(n)
	}
	return mean, n
}

// Summary holds describe-style statistics for one column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64
}

// Describe computes a Summary over the non-NaN values.
func Describe(vals []float64) Summary {
	s := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	var m2 float64
	kept := make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		kept = append(kept, v)
		s.Count++
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		delta := v - s.Mean
		s.Mean += delta / float64(s.Count)
		m2 += delta * (v - s.Mean)
	}
	if s.Count == 0 {
		return Summary{}
	}
	if s.Count > 1 {
		s.Std = math.Sqrt(m2 / float64(s.Count-1))
	}
	sort.Float64s(kept)
	s.Median = Quantile(kept, 0.5)
	return s
}

// Quantile interpolates the q-quantile of an ascending-sorted slice.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Median returns the median of the non-NaN values.
func Median(vals []float64) float64 {
	kept := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	sort.Float64s(kept)
	return Quantile(kept, 0.5)
}

// LinearFit computes the least-squares line y = slope*x + intercept over
// pairs where both values are present. ok is false with fewer than two usable
// pairs or zero variance in x.
func LinearFit(xs, ys []float64) (slope, intercept float64, ok bool) {
	var n, sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		if i >= len(ys) {
			break
		}
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		n++
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}
	if n < 2 {
		return 0, 0, false
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}

// Pearson computes the correlation coefficient over pairs where both values
// are present, clamped to [-1, 1]. Returns 0 when undefined.
func Pearson(xs, ys []float64) float64 {
	var n, sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range xs {
		if i >= len(ys) {
			break
		}
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		n++
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	if n < 2 {
		return 0
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
