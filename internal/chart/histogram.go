package chart

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/datachores/censusprep/internal/census"
	"github.com/datachores/censusprep/internal/stats"
)

// ShareHistogram renders the distribution of one demographic share column
// across states, with vertical mean and median reference lines, and saves it
// to path.
func ShareHistogram(ds *census.Dataset, column, path string, opt Options) error {
	vals := ds.Column(column)
	if vals == nil {
		return fmt.Errorf("unknown column %q", column)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s Population Across States", column)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = fmt.Sprintf("%s Population Percentage", column)
	p.Y.Label.Text = "Number of States"
	p.Add(plotter.NewGrid())

	bins := opt.Bins
	if bins <= 0 {
		bins = 15
	}
	hist, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return fmt.Errorf("histogram for %s: %w", column, err)
	}
	hist.FillColor = histColor
	p.Add(hist)

	// Tallest bin sets the height of the reference rules.
	var top float64
	for _, b := range hist.Bins {
		if b.Weight > top {
			top = b.Weight
		}
	}
	if top == 0 {
		top = 1
	}

	mean, _ := stats.MeanSkipNaN(vals)
	median := stats.Median(vals)
	for _, rule := range []struct {
		x     float64
		label string
		color color.Color
	}{
		{mean, fmt.Sprintf("Mean: %.1f%%", mean), meanColor},
		{median, fmt.Sprintf("Median: %.1f%%", median), medianColor},
	} {
		line, err := plotter.NewLine(plotter.XYs{{X: rule.x, Y: 0}, {X: rule.x, Y: top}})
		if err != nil {
			return fmt.Errorf("reference line: %w", err)
		}
		line.Color = rule.color
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(line)
		p.Legend.Add(rule.label, line)
	}
	p.Legend.Top = true

	return save(p, path, opt)
}

// HistogramPath returns the conventional filename for a share column's
// histogram, e.g. hispanic_distribution.png.
func HistogramPath(dir, column string) string {
	return filepath.Join(dir, strings.ToLower(column)+"_distribution.png")
}

// RenderAll writes the scatter chart plus one histogram per share column into
// dir and returns the paths written.
func RenderAll(ds *census.Dataset, dir string, opt Options) ([]string, error) {
	if len(ds.Rows) == 0 {
		return nil, fmt.Errorf("dataset is empty; nothing to chart")
	}
	scatterPath := filepath.Join(dir, "income_vs_female_proportion.png")
	if err := IncomeScatter(ds, scatterPath, opt); err != nil {
		return nil, err
	}
	paths := []string{scatterPath}
	for _, col := range census.ShareColumns {
		p := HistogramPath(dir, col)
		if err := ShareHistogram(ds, col, p, opt); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
