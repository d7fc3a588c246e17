package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/datachores/censusprep/internal/config"
)

var (
	// Global flags (wired to config in loadConfig)
	cfgFile string
	quiet   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "censusprep",
	Short: "censusprep: clean US state census CSVs and render summary charts",
	Long: `censusprep ingests fixed-schema US state census CSV files, concatenates
them, normalizes currency and percentage formatting, splits the composite
gender column, drops duplicates, imputes missing values, derives proportion
columns, and writes a cleaned CSV plus static chart images.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.censusprep/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress progress output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded config, loading defaults if the
// initializer was skipped (e.g. in tests driving commands directly).
func effectiveConfig() *cfgpkg.Global {
	if cfg == nil {
		c, err := cfgpkg.Load(cfgFile)
		if err == nil {
			cfg = c
		} else {
			cfg = &cfgpkg.Global{
				InputGlob:      "states*.csv",
				OutputCSV:      "cleaned_us_census_data.csv",
				ChartsDir:      ".",
				ImputeStrategy: "mean",
				ChartWidthIn:   10,
				ChartHeightIn:  6,
				HistogramBins:  15,
				TopN:           5,
				ManifestPath:   "censusprep_run.yaml",
			}
		}
	}
	return cfg
}
