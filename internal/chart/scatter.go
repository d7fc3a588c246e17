// Package chart renders the pipeline's two fixed chart types as PNG files
// using gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/datachores/censusprep/internal/census"
	"github.com/datachores/censusprep/internal/stats"
)

// Options controls chart geometry.
type Options struct {
	WidthIn  float64
	HeightIn float64
	Bins     int
}

// DefaultOptions mirrors the pipeline's fixed chart shapes.
func DefaultOptions() Options {
	return Options{WidthIn: 10, HeightIn: 6, Bins: 15}
}

var (
	scatterColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	trendColor   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	meanColor    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	medianColor  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	histColor    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
)

// IncomeScatter renders state income against female population proportion
// with a least-squares trend line, and saves it to path.
func IncomeScatter(ds *census.Dataset, path string, opt Options) error {
	if !ds.Derived {
		return fmt.Errorf("dataset has no derived proportion columns")
	}
	xs := ds.Column(census.ColFemaleProportion)
	ys := ds.Column(census.ColIncome)

	p := plot.New()
	p.Title.Text = "State Income vs Female Population Proportion"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Proportion of Female Population"
	p.Y.Label.Text = "Average Income ($)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	sc.GlyphStyle.Color = scatterColor
	sc.GlyphStyle.Radius = vg.Points(4)
	p.Add(sc)

	if slope, intercept, ok := stats.LinearFit(xs, ys); ok {
		minX, maxX := xs[0], xs[0]
		for _, x := range xs {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		trend, err := plotter.NewLine(plotter.XYs{
			{X: minX, Y: slope*minX + intercept},
			{X: maxX, Y: slope*maxX + intercept},
		})
		if err != nil {
			return fmt.Errorf("trend line: %w", err)
		}
		trend.Color = trendColor
		trend.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(trend)
		p.Legend.Add(fmt.Sprintf("trend (r=%.2f)", stats.Pearson(xs, ys)), trend)
	}

	return save(p, path, opt)
}

func save(p *plot.Plot, path string, opt Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir charts dir: %w", err)
	}
	w := vg.Length(opt.WidthIn) * vg.Inch
	h := vg.Length(opt.HeightIn) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return nil
}
