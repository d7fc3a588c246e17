package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datachores/censusprep/internal/census"
	"github.com/datachores/censusprep/internal/ingest"
	"github.com/datachores/censusprep/internal/report"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [glob]",
	Short: "Load and summarize the inputs without writing anything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		pattern := c.InputGlob
		if len(args) == 1 {
			pattern = args[0]
		}

		files, err := ingest.Discover(pattern)
		if err != nil {
			return err
		}
		res, err := ingest.Load(files)
		if err != nil {
			return err
		}
		for _, s := range res.Sources {
			if !quiet {
				fmt.Printf("✓ Loaded %s (%d rows)\n", filepath.Base(s.Path), s.Rows)
			}
		}
		warn(res.Warnings)

		ds, st, err := census.Clean(res.Records)
		if err != nil {
			return err
		}
		warn(st.Warnings)
		if st.Duplicates > 0 {
			fmt.Printf("Duplicate rows: %d (%d -> %d)\n", st.Duplicates, st.RowsIn, st.RowsOut)
		}
		fmt.Println()
		report.WriteMissing(os.Stdout, ds)
		fmt.Println()
		report.WriteSummary(os.Stdout, ds, 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
