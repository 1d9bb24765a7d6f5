package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"polish/internal/history"
	"polish/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Interactive calculator",
	Long:  `Repl starts an interactive loop with recall of previous expressions`,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().Int("max-depth", 0, "maximum operator nesting (0 = default)")
	replCmd.Flags().Bool("power", false, "enable the '^' operator")
	replCmd.Flags().Bool("no-history", false, "do not read or write the history file")
}

func runRepl(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("repl requires a terminal; pipe expressions to 'polish eval' instead")
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return fmt.Errorf("failed to get no-history flag: %w", err)
	}

	var store *history.Store
	if !noHistory {
		// A broken cache dir only loses persistence, not the session.
		store, _ = history.Open("polish", s.histSize)
	}

	model := ui.NewReplModel(s.opts, store)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}
