package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"polish/internal/driver"
	"polish/internal/history"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// row is one evaluated expression with its rendered outcome.
type row struct {
	expr    string
	outcome string
	failed  bool
}

// ReplModel is the Bubble Tea model for the interactive loop. Recall with
// up/down walks previously entered expressions, including ones restored
// from the history store.
type ReplModel struct {
	input  textinput.Model
	rows   []row
	recall []string
	pos    int // recall position; len(recall) means "live" input
	opts   driver.Options
	store  *history.Store
	width  int
}

// NewReplModel builds the REPL model, preloading recall entries from the
// store. A nil store disables persistence.
func NewReplModel(opts driver.Options, store *history.Store) ReplModel {
	ti := textinput.New()
	ti.Prompt = "pn> "
	ti.Placeholder = "+ 5 1"
	ti.Focus()

	var recall []string
	if entries, err := store.Load(); err == nil {
		for _, e := range entries {
			recall = append(recall, e.Expr)
		}
	}

	return ReplModel{
		input:  ti,
		recall: recall,
		pos:    len(recall),
		opts:   opts,
		store:  store,
		width:  80,
	}
}

func (m ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit(), nil
		case "up":
			if m.pos > 0 {
				m.pos--
				m.input.SetValue(m.recall[m.pos])
				m.input.CursorEnd()
			}
			return m, nil
		case "down":
			if m.pos < len(m.recall) {
				m.pos++
				if m.pos == len(m.recall) {
					m.input.SetValue("")
				} else {
					m.input.SetValue(m.recall[m.pos])
					m.input.CursorEnd()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ReplModel) submit() ReplModel {
	expr := strings.TrimSpace(m.input.Value())
	if expr == "" {
		return m
	}

	res := driver.Eval("<repl>", expr, m.opts)

	entry := history.Entry{Expr: expr}
	r := row{expr: expr}
	if res.Ok() {
		r.outcome = strconv.FormatFloat(res.Value, 'g', -1, 64)
		entry.Value = res.Value
	} else {
		r.failed = true
		r.outcome = res.Bag.Items()[0].Message
		entry.Err = r.outcome
	}

	m.rows = append(m.rows, r)
	m.recall = append(m.recall, expr)
	m.pos = len(m.recall)
	m.input.SetValue("")

	// History write failures never break the loop.
	_ = m.store.Append(entry)

	return m
}

func (m ReplModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("polish notation calculator"))
	sb.WriteString("\n\n")

	pad := exprColumnWidth(m.rows)
	for _, r := range m.rows {
		sb.WriteString("  ")
		sb.WriteString(runewidth.FillRight(r.expr, pad))
		sb.WriteString("  ")
		if r.failed {
			sb.WriteString(errStyle.Render(r.outcome))
		} else {
			sb.WriteString(resultStyle.Render(r.outcome))
		}
		sb.WriteString("\n")
	}
	if len(m.rows) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("enter: evaluate • up/down: recall • ctrl+c: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// exprColumnWidth sizes the expression column, capped so one long
// expression does not push results off screen.
func exprColumnWidth(rows []row) int {
	const maxPad = 32
	pad := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.expr); w > pad {
			pad = w
		}
	}
	if pad > maxPad {
		pad = maxPad
	}
	return pad
}
