package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datachores/censusprep/internal/census"
	"github.com/datachores/censusprep/internal/chart"
	"github.com/datachores/censusprep/internal/exporter"
	"github.com/datachores/censusprep/internal/ingest"
	"github.com/datachores/censusprep/internal/report"
)

var (
	cleanGlob      string
	cleanOut       string
	cleanXLSX      string
	cleanChartsDir string
	cleanImpute    string
	cleanNoCharts  bool
	cleanBOM       bool
	cleanManifest  string
)

var cleanCmd = &cobra.Command{
	Use:   "clean [glob]",
	Short: "Run the full pipeline: load, clean, impute, derive, export, chart",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()

		pattern := c.InputGlob
		if cleanGlob != "" {
			pattern = cleanGlob
		}
		if len(args) == 1 {
			pattern = args[0]
		}
		outCSV := c.OutputCSV
		if cleanOut != "" {
			outCSV = cleanOut
		}
		outXLSX := c.OutputXLSX
		if cmd.Flags().Changed("xlsx") {
			outXLSX = cleanXLSX
		}
		chartsDir := c.ChartsDir
		if cleanChartsDir != "" {
			chartsDir = cleanChartsDir
		}
		strategy := c.ImputeStrategy
		if cleanImpute != "" {
			strategy = cleanImpute
		}
		bom := c.ExcelBOM || cleanBOM
		manifestPath := ""
		if cmd.Flags().Changed("manifest") {
			manifestPath = cleanManifest
		} else if c.WriteManifest {
			manifestPath = c.ManifestPath
		}

		m := report.NewManifest()

		files, err := ingest.Discover(pattern)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("Found %d input files\n", len(files))
		}

		res, err := ingest.Load(files)
		if err != nil {
			return err
		}
		for _, s := range res.Sources {
			m.Inputs = append(m.Inputs, report.InputFile{Path: s.Path, Rows: s.Rows})
			if !quiet {
				fmt.Printf("✓ Loaded %s (%d rows)\n", filepath.Base(s.Path), s.Rows)
			}
		}
		warn(res.Warnings)

		ds, cleanStats, err := census.Clean(res.Records)
		if err != nil {
			return err
		}
		warn(cleanStats.Warnings)
		if !quiet && cleanStats.Duplicates > 0 {
			fmt.Printf("✓ Dropped %d duplicate rows (%d -> %d)\n", cleanStats.Duplicates, cleanStats.RowsIn, cleanStats.RowsOut)
		}
		m.RowsIn = cleanStats.RowsIn
		m.RowsOut = cleanStats.RowsOut
		m.DuplicatesDrop = cleanStats.Duplicates
		m.Warnings = append(m.Warnings, res.Warnings...)
		m.Warnings = append(m.Warnings, cleanStats.Warnings...)

		impStats, err := census.Impute(ds, strategy)
		if err != nil {
			return err
		}
		warn(impStats.Warnings)
		m.ImputeStrategy = strategy
		m.ImputedCells = impStats.Filled
		m.Warnings = append(m.Warnings, impStats.Warnings...)
		if !quiet && impStats.Total() > 0 {
			fmt.Printf("✓ Imputed %d missing cells (%s strategy)\n", impStats.Total(), strategy)
		}

		census.Derive(ds)

		if err := exporter.WriteCSV(ds, outCSV, exporter.CSVOptions{BOM: bom}); err != nil {
			return err
		}
		m.Outputs = append(m.Outputs, outCSV)
		if !quiet {
			fmt.Printf("✓ Cleaned dataset written to %s\n", outCSV)
		}

		if outXLSX != "" {
			if err := exporter.WriteXLSX(ds, outXLSX); err != nil {
				return err
			}
			m.Outputs = append(m.Outputs, outXLSX)
			if !quiet {
				fmt.Printf("✓ Workbook written to %s\n", outXLSX)
			}
		}

		if !cleanNoCharts {
			opt := chart.Options{WidthIn: c.ChartWidthIn, HeightIn: c.ChartHeightIn, Bins: c.HistogramBins}
			paths, err := chart.RenderAll(ds, chartsDir, opt)
			if err != nil {
				return err
			}
			m.Outputs = append(m.Outputs, paths...)
			if !quiet {
				for _, p := range paths {
					fmt.Printf("✓ Chart saved to %s\n", p)
				}
			}
		}

		if !quiet {
			fmt.Println()
			report.WriteSummary(os.Stdout, ds, c.TopN)
		}

		if manifestPath != "" {
			if err := m.Save(manifestPath); err != nil {
				return err
			}
			if !quiet {
				fmt.Printf("✓ Run manifest written to %s\n", manifestPath)
			}
		}
		return nil
	},
}

func warn(msgs []string) {
	for _, msg := range msgs {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", msg)
	}
}

func init() {
	cleanCmd.Flags().StringVar(&cleanGlob, "glob", "", "input file glob (overrides config)")
	cleanCmd.Flags().StringVar(&cleanOut, "out", "", "cleaned CSV output path (overrides config)")
	cleanCmd.Flags().StringVar(&cleanXLSX, "xlsx", "", "also export the cleaned table as XLSX to this path")
	cleanCmd.Flags().StringVar(&cleanChartsDir, "charts-dir", "", "directory for chart PNGs (overrides config)")
	cleanCmd.Flags().StringVar(&cleanImpute, "impute", "", "imputation strategy: mean|remainder (overrides config)")
	cleanCmd.Flags().BoolVar(&cleanNoCharts, "no-charts", false, "skip chart rendering")
	cleanCmd.Flags().BoolVar(&cleanBOM, "bom", false, "prefix the CSV with a UTF-8 BOM for Excel")
	cleanCmd.Flags().StringVar(&cleanManifest, "manifest", "", "write a YAML run manifest to this path")
	rootCmd.AddCommand(cleanCmd)
}
