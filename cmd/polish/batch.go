package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"polish/internal/driver"
	"polish/internal/source"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file...",
	Short: "Evaluate expression files",
	Long: `Batch evaluates one prefix expression per line across the given files.
Blank lines and lines starting with '#' are skipped. Lines run in
parallel; results print in input order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	batchCmd.Flags().Int("max-depth", 0, "maximum operator nesting (0 = default)")
	batchCmd.Flags().Bool("power", false, "enable the '^' operator")
	batchCmd.Flags().Int("precision", -1, "decimal places in output (-1 = shortest)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	results, err := driver.EvalFiles(cmd.Context(), args, s.opts, jobs)
	if err != nil {
		return fmt.Errorf("batch evaluation failed: %w", err)
	}

	color := useColor(cmd, os.Stderr)
	failed := false
	for _, r := range results {
		if r.Skip {
			continue
		}
		if r.Ok() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s\n", r.Path, r.Line, formatValue(r.Value, s.precision))
			continue
		}
		failed = true
		in := source.New(fmt.Sprintf("%s:%d", r.Path, r.Line), r.Text)
		printDiagnostics(os.Stderr, r.Bag, in, color)
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
