package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"polish/internal/driver"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression...]",
	Short: "Evaluate a prefix expression",
	Long: `Evaluate an arithmetic expression written in Polish (prefix) notation.
The expression is taken from the arguments, or from stdin when none are given:

  polish eval "+ 5 1"
  polish eval + 5 1
  echo "* + 1 2 3" | polish eval`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Int("max-depth", 0, "maximum operator nesting (0 = default)")
	evalCmd.Flags().Bool("power", false, "enable the '^' operator")
	evalCmd.Flags().Int("precision", -1, "decimal places in output (-1 = shortest)")
}

func runEval(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	expr, err := readExpression(args)
	if err != nil {
		return err
	}

	name := "<arg>"
	if len(args) == 0 {
		name = "<stdin>"
	}

	res := driver.Eval(name, expr, s.opts)
	if !res.Ok() {
		printDiagnostics(os.Stderr, res.Bag, res.Input, useColor(cmd, os.Stderr))
		os.Exit(1)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatValue(res.Value, s.precision))
	return nil
}
