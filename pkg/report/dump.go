package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/lattice"
)

// Dump writes the control-flow graph of a pass with the environment on
// entry to every node, call resolutions and switch narrowing.
func Dump(w io.Writer, fn *analyzer.Function, opts Options) error {
	var sb strings.Builder
	if fn.Result == nil {
		fmt.Fprintf(&sb, "%s: %s\n", pathStyle.Render(fn.Name), errorStyle.Render(fn.Err.Error()))
		return write(w, sb.String(), opts)
	}

	res := fn.Result
	g := res.Graph
	header := fmt.Sprintf("%s(%s)", g.Name, lattice.FormatParams(g.Params))
	if g.Returns != nil {
		header += ": " + g.Returns.String()
	}
	sb.WriteString(pathStyle.Render(header) + "\n")
	if fn.Err != nil {
		fmt.Fprintf(&sb, "  %s\n", errorStyle.Render(fn.Err.Error()))
	}

	for _, n := range g.Nodes {
		sb.WriteString("  " + n.String())
		env, reachable := res.EnvAt(n.ID)
		if !reachable {
			sb.WriteString(" " + dimStyle.Render("(unreachable)") + "\n")
			continue
		}
		if res.Degraded[n.ID] {
			sb.WriteString(" " + warningStyle.Render("(degraded)"))
		}
		if visits := res.Visits(n.ID); visits > 1 {
			sb.WriteString(" " + dimStyle.Render(fmt.Sprintf("(%d visits)", visits)))
		}
		sb.WriteString("\n")
		for _, name := range env.Names() {
			t, _ := env.Lookup(name)
			fmt.Fprintf(&sb, "      %s: %s\n", locationStyle.Render(name), t)
		}
		if call, ok := res.Calls[n.ID]; ok {
			if call.Index >= 0 {
				fmt.Fprintf(&sb, "      %s overload %d: %s\n", okStyle.Render("=>"), call.Index, call.Signature)
			} else {
				fmt.Fprintf(&sb, "      %s unresolved: %s\n", errorStyle.Render("=>"), call.Return)
			}
		}
		if sw, ok := res.Switches[n.ID]; ok && sw.Residual != nil {
			fmt.Fprintf(&sb, "      %s residual: %s\n", okStyle.Render("=>"), sw.Residual)
		}
	}
	return write(w, sb.String(), opts)
}

func write(w io.Writer, s string, opts Options) error {
	if !opts.Color {
		s = ansi.Strip(s)
	}
	_, err := io.WriteString(w, s)
	return err
}
