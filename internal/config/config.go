package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	InputGlob      string  `mapstructure:"input_glob" yaml:"input_glob"`
	OutputCSV      string  `mapstructure:"output_csv" yaml:"output_csv"`
	OutputXLSX     string  `mapstructure:"output_xlsx" yaml:"output_xlsx"`
	ChartsDir      string  `mapstructure:"charts_dir" yaml:"charts_dir"`
	ImputeStrategy string  `mapstructure:"impute_strategy" yaml:"impute_strategy"`
	ChartWidthIn   float64 `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartHeightIn  float64 `mapstructure:"chart_height_in" yaml:"chart_height_in"`
	HistogramBins  int     `mapstructure:"histogram_bins" yaml:"histogram_bins"`
	TopN           int     `mapstructure:"top_n" yaml:"top_n"`
	ExcelBOM       bool    `mapstructure:"excel_bom" yaml:"excel_bom"`
	WriteManifest  bool    `mapstructure:"write_manifest" yaml:"write_manifest"`
	ManifestPath   string  `mapstructure:"manifest_path" yaml:"manifest_path"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.censusprep/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".censusprep")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CENSUSPREP")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input_glob", "states*.csv")
	v.SetDefault("output_csv", "cleaned_us_census_data.csv")
	v.SetDefault("output_xlsx", "")
	v.SetDefault("charts_dir", ".")
	v.SetDefault("impute_strategy", "mean")
	v.SetDefault("chart_width_in", 10.0)
	v.SetDefault("chart_height_in", 6.0)
	v.SetDefault("histogram_bins", 15)
	v.SetDefault("top_n", 5)
	v.SetDefault("excel_bom", false)
	v.SetDefault("write_manifest", false)
	v.SetDefault("manifest_path", "censusprep_run.yaml")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".censusprep")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
