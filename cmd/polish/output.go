package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"polish/internal/diag"
	"polish/internal/diagfmt"
	"polish/internal/source"
)

// formatValue renders a result with the configured precision.
// A negative precision means the shortest exact representation.
func formatValue(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// printDiagnostics pretty-prints a sorted bag to w.
func printDiagnostics(w io.Writer, bag *diag.Bag, in *source.Input, color bool) {
	bag.Sort()
	diagfmt.Pretty(w, bag, in, diagfmt.PrettyOpts{Color: color})
}

// readExpression joins argument fragments, or reads stdin when no
// arguments were given.
func readExpression(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
