package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/showorder/internal/planner"
)

var (
	headerColor  = color.New(color.FgBlue, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	blockColor   = color.New(color.FgCyan)
)

// report writes human-readable command output. Progress and results go to
// out; warnings, conflicts and failures go to err so that machine-readable
// output on out stays parseable.
type report struct {
	out io.Writer
	err io.Writer
}

func newReport(cmd *cobra.Command) *report {
	return &report{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
}

func (r *report) section(title string) {
	_, _ = fmt.Fprintln(r.out)
	_, _ = headerColor.Fprintf(r.out, "▸ %s\n", title)
	_, _ = fmt.Fprintln(r.out)
}

func (r *report) success(format string, args ...any) {
	_, _ = successColor.Fprintf(r.out, "✓ %s\n", fmt.Sprintf(format, args...))
}

func (r *report) note(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *report) warn(format string, args ...any) {
	_, _ = warningColor.Fprintf(r.err, "⚠ %s\n", fmt.Sprintf(format, args...))
}

func (r *report) fail(format string, args ...any) {
	_, _ = errorColor.Fprintf(r.err, "✗ %s\n", fmt.Sprintf(format, args...))
}

// field prints one "label: value" line of a summary.
func (r *report) field(label string, value any) {
	_, _ = labelColor.Fprintf(r.out, "  %s: ", label)
	_, _ = valueColor.Fprintln(r.out, value)
}

func (r *report) rule() {
	_, _ = labelColor.Fprintln(r.out, "\n  "+strings.Repeat("─", 58))
}

// conflicts lists presolve conflicts, one per line.
func (r *report) conflicts(title string, list []planner.Conflict) {
	_, _ = headerColor.Fprintf(r.err, "%s\n", title)
	for _, c := range list {
		r.fail("%s: %s", c.Subject, c.Reason)
	}
}

// order prints a rendered running order, coloring the block separators.
func (r *report) order(lines []string, separator string) {
	for _, line := range lines {
		if line == separator {
			_, _ = blockColor.Fprintln(r.out, line)
			continue
		}
		_, _ = fmt.Fprintln(r.out, line)
	}
}

// table prints left-aligned columns under a header row.
func (r *report) table(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(c *color.Color, cells []string) {
		_, _ = fmt.Fprint(r.out, "  ")
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				_, _ = fmt.Fprint(r.out, "  ")
			}
			_, _ = c.Fprintf(r.out, "%-*s", widths[i], cell)
		}
		_, _ = fmt.Fprintln(r.out)
	}

	line(headerColor, headers)
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	line(valueColor, dashes)
	for _, row := range rows {
		line(valueColor, row)
	}
}

// plural formats a count with the matching noun.
func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
