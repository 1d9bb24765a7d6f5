package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"polish/internal/diagfmt"
	"polish/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [expression...]",
	Short: "Tokenize a prefix expression",
	Long:  `Tokenize splits an expression into its classified tokens without evaluating it`,
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

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

	res := driver.Tokenize(name, expr, s.opts)

	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		printDiagnostics(os.Stderr, res.Bag, res.Input, useColor(cmd, os.Stderr))
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
