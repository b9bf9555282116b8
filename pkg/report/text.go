// Package report renders analysis reports for people (styled text) and for
// tools (JSON).
package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/diag"
)

var (
	pathStyle     = lipgloss.NewStyle().Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	codeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	advisoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options controls text rendering.
type Options struct {
	// Color keeps ANSI styling. Without it the output is plain text.
	Color bool
}

func severityStyle(s diag.Severity) lipgloss.Style {
	switch s {
	case diag.Error:
		return errorStyle
	case diag.Warning:
		return warningStyle
	default:
		return advisoryStyle
	}
}

// Text writes one line per diagnostic and per failed pass, then a summary.
func Text(w io.Writer, r *analyzer.Report, opts Options) error {
	var sb strings.Builder
	path := pathStyle.Render(r.Path)

	for _, d := range r.Diagnostics.All() {
		fmt.Fprintf(&sb, "%s:%s: %s: %s %s\n",
			path,
			locationStyle.Render(d.Location.String()),
			severityStyle(d.Severity()).Render(d.Severity().String()),
			d.Message,
			codeStyle.Render("["+d.Kind.Code()+"]"),
		)
	}

	for _, fn := range r.Functions {
		if fn.Err == nil {
			continue
		}
		label := "skipped"
		if diag.IsInternal(fn.Err) {
			label = "internal error"
		}
		fmt.Fprintf(&sb, "%s:%s: %s: %s\n",
			path,
			locationStyle.Render(fn.Name),
			errorStyle.Render(label),
			fn.Err,
		)
	}

	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(summary(r))
	sb.WriteString("\n")

	out := sb.String()
	if !opts.Color {
		out = ansi.Strip(out)
	}
	_, err := io.WriteString(w, out)
	return err
}

func summary(r *analyzer.Report) string {
	bag := r.Diagnostics
	counts := []string{
		severityStyle(diag.Error).Render(plural(bag.Count(diag.Error), "error", "errors")),
		severityStyle(diag.Warning).Render(plural(bag.Count(diag.Warning), "warning", "warnings")),
		severityStyle(diag.Advisory).Render(plural(bag.Count(diag.Advisory), "advisory", "advisories")),
	}
	skipped := 0
	for _, fn := range r.Functions {
		if fn.Skipped() {
			skipped++
		}
	}
	scope := plural(len(r.Functions), "function", "functions")
	if skipped > 0 {
		scope += fmt.Sprintf(", %d skipped", skipped)
	}

	status := okStyle.Render("ok")
	if r.Failed() {
		status = errorStyle.Render("FAIL")
	}
	if r.Strict {
		status += dimStyle.Render(" (strict)")
	}
	return fmt.Sprintf("%s %s: %s in %s", status, pathStyle.Render(r.Path), strings.Join(counts, ", "), scope)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
