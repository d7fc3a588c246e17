package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/datachores/censusprep/internal/census"
	cfgpkg "github.com/datachores/censusprep/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set censusprep configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("input_glob: %s\n", c.InputGlob)
		fmt.Printf("output_csv: %s\n", c.OutputCSV)
		if c.OutputXLSX != "" {
			fmt.Printf("output_xlsx: %s\n", c.OutputXLSX)
		}
		fmt.Printf("charts_dir: %s\n", c.ChartsDir)
		fmt.Printf("impute_strategy: %s\n", c.ImputeStrategy)
		fmt.Printf("chart_width_in: %.1f\n", c.ChartWidthIn)
		fmt.Printf("chart_height_in: %.1f\n", c.ChartHeightIn)
		fmt.Printf("histogram_bins: %d\n", c.HistogramBins)
		fmt.Printf("top_n: %d\n", c.TopN)
		fmt.Printf("excel_bom: %t\n", c.ExcelBOM)
		fmt.Printf("write_manifest: %t\n", c.WriteManifest)
		if c.WriteManifest {
			fmt.Printf("manifest_path: %s\n", c.ManifestPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := effectiveConfig()
		switch key {
		case "input_glob":
			c.InputGlob = val
		case "output_csv":
			c.OutputCSV = val
		case "output_xlsx":
			c.OutputXLSX = val
		case "charts_dir":
			c.ChartsDir = val
		case "impute_strategy":
			switch val {
			case census.StrategyMean, census.StrategyRemainder:
				c.ImputeStrategy = val
			default:
				return fmt.Errorf("invalid impute_strategy: %s (use mean or remainder)", val)
			}
		case "chart_width_in", "chart_height_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for %s: %v", key, val)
			}
			if key == "chart_width_in" {
				c.ChartWidthIn = f
			} else {
				c.ChartHeightIn = f
			}
		case "histogram_bins":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for histogram_bins: %v", val)
			}
			c.HistogramBins = i
		case "top_n":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for top_n: %v", val)
			}
			c.TopN = i
		case "excel_bom", "write_manifest":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %v", key, val)
			}
			if key == "excel_bom" {
				c.ExcelBOM = b
			} else {
				c.WriteManifest = b
			}
		case "manifest_path":
			c.ManifestPath = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
