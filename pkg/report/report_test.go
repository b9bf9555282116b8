package report

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/config"
	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/lattice"
	"github.com/vito/narrow/pkg/program"
)

func sampleReport(t *testing.T) *analyzer.Report {
	t.Helper()
	u := lattice.NewUniverse()

	area := flow.NewBuilder("area", nil, lattice.Number)
	area.Return(flow.Const{Type: u.Literal(1.0)})
	areaGraph, err := area.Build()
	require.NoError(t, err)

	count := flow.NewBuilder("count", nil, lattice.Undefined)
	count.Let("n", lattice.Number, flow.Const{Type: u.Literal("many")})
	countGraph, err := count.Build()
	require.NoError(t, err)

	prog := &program.Program{
		Path:     "inline.yaml",
		Universe: u,
		Graphs:   []*flow.Graph{areaGraph, countGraph},
	}
	report, err := analyzer.New(config.Default()).Analyze(context.Background(), prog)
	require.NoError(t, err)

	report.RunID = uuid.MustParse("7b0c8a5e-3f2d-4c1a-9e6b-2d4f8a1c0b3e")
	report.Functions = append(report.Functions, &analyzer.Function{
		Name: "big",
		Err:  fmt.Errorf("big: %w", diag.ErrBudgetExceeded),
	})
	report.Diagnostics.Add(
		diag.Budget(diag.Location{Function: "big", Node: 0}, 120, 100),
		diag.NonExhaustive(diag.Location{Function: "area", Node: 1}, u.Literal("square")),
	)
	return report
}

func TestText(t *testing.T) {
	report := sampleReport(t)

	var plain bytes.Buffer
	require.NoError(t, Text(&plain, report, Options{}))
	golden.Assert(t, plain.String(), "report.golden")

	var colored bytes.Buffer
	require.NoError(t, Text(&colored, report, Options{Color: true}))
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Equal(t, plain.String(), ansi.Strip(colored.String()))
}

func TestTextClean(t *testing.T) {
	u := lattice.NewUniverse()
	b := flow.NewBuilder("noop", nil, lattice.Undefined)
	g, err := b.Build()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Strict = true
	report, err := analyzer.New(cfg).Analyze(context.Background(), &program.Program{
		Path:     "inline.yaml",
		Universe: u,
		Graphs:   []*flow.Graph{g},
	})
	require.NoError(t, err)
	require.False(t, report.Failed())

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, report, Options{}))
	golden.Assert(t, buf.String(), "ok.golden")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleReport(t)))
	golden.Assert(t, buf.String(), "report.json.golden")
}

func TestDump(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	for _, name := range []string{"area", "count"} {
		fn, ok := report.Function(name)
		require.True(t, ok)
		require.NoError(t, Dump(&buf, fn, Options{}))
	}
	golden.Assert(t, buf.String(), "dump.golden")
}
