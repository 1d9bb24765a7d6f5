package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"polish/internal/diag"
	"polish/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	markColor = color.New(color.FgRed)
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() (call bag.Sort() first) and prints, per diagnostic:
//
//	<name>:<col>: <SEV> <CODE>: <message>
//	  <expression text>
//	  <caret underline covering the primary span>
//
// The caret line accounts for display width of the text before and
// inside the span, so wide runes stay aligned.
func Pretty(w io.Writer, bag *diag.Bag, in *source.Input, opts PrettyOpts) {
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s:%d: %s %s: %s\n", in.Name, d.Primary.Start+1, sev, d.Code.ID(), d.Message)
		writeCaretLine(w, in, d.Primary, opts)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "  note: %s\n", n.Msg)
			}
		}
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func writeCaretLine(w io.Writer, in *source.Input, sp source.Span, opts PrettyOpts) {
	text := in.Text()
	if text == "" || sp.Start > uint32(len(text)) {
		return
	}

	fmt.Fprintf(w, "  %s\n", text)

	pad := runewidth.StringWidth(in.Slice(source.Span{Start: 0, End: sp.Start}))
	width := runewidth.StringWidth(in.Slice(sp))
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = markColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}
