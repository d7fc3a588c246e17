package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datachores/censusprep/internal/chart"
	"github.com/datachores/censusprep/internal/ingest"
)

var (
	chFlagIn  string
	chFlagDir string
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Re-render the charts from an already-cleaned CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		in := chFlagIn
		if in == "" {
			in = c.OutputCSV
		}
		dir := chFlagDir
		if dir == "" {
			dir = c.ChartsDir
		}

		ds, err := ingest.LoadCleaned(in)
		if err != nil {
			return err
		}
		opt := chart.Options{WidthIn: c.ChartWidthIn, HeightIn: c.ChartHeightIn, Bins: c.HistogramBins}
		paths, err := chart.RenderAll(ds, dir, opt)
		if err != nil {
			return err
		}
		if !quiet {
			for _, p := range paths {
				fmt.Printf("✓ Chart saved to %s\n", p)
			}
		}
		return nil
	},
}

func init() {
	chartsCmd.Flags().StringVar(&chFlagIn, "in", "", "cleaned CSV to read (defaults to configured output_csv)")
	chartsCmd.Flags().StringVar(&chFlagDir, "charts-dir", "", "directory for chart PNGs (overrides config)")
	rootCmd.AddCommand(chartsCmd)
}
