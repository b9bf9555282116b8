package rpc

import (
	"context"
	"errors"
	"testing"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/config"
	"github.com/vito/narrow/pkg/report"
)

const source = `
bodies:
  - name: orEmpty
    signature: "(x: string | null) => string"
    body:
      - if: x === null
        then:
          - return: '""'
      - return: x
  - name: count
    signature: "() => void"
    body:
      - let: n
        type: number
        value: '"many"'
`

func newClient(t *testing.T) *jrpc2.Client {
	t.Helper()
	s, err := NewServer(analyzer.New(config.Default()), 0)
	require.NoError(t, err)

	cch, sch := channel.Direct()
	srv := jrpc2.NewServer(s.Handlers(), nil).Start(sch)
	cli := jrpc2.NewClient(cch, nil)
	t.Cleanup(func() {
		cli.Close()
		srv.Wait()
	})
	return cli
}

func errorCode(t *testing.T, err error) jrpc2.Code {
	t.Helper()
	var rpcErr *jrpc2.Error
	require.True(t, errors.As(err, &rpcErr), "got %v", err)
	return rpcErr.Code
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	cli := newClient(t)

	var doc report.Document
	err := cli.CallResult(ctx, "narrow/analyze", AnalyzeParams{Path: "inline.yaml", Source: source}, &doc)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.RunID)
	assert.True(t, doc.Failed)
	require.Len(t, doc.Functions, 2)
	assert.Equal(t, "orEmpty", doc.Functions[0].Name)
	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, "assignability_error", doc.Diagnostics[0].Code)
	assert.Equal(t, "count", doc.Diagnostics[0].Location.Function)

	// orEmpty: 0 entry, 1 branch, 2 return "", 3 return x, 4 exit
	typeAt := func(node int) TypeAtResult {
		var res TypeAtResult
		err := cli.CallResult(ctx, "narrow/typeAt", TypeAtParams{RunID: doc.RunID, Function: "orEmpty", Node: node, Var: "x"}, &res)
		require.NoError(t, err)
		return res
	}
	assert.Equal(t, TypeAtResult{Reachable: true, Type: "string"}, typeAt(3))
	assert.Equal(t, TypeAtResult{Reachable: true, Type: "null"}, typeAt(2))
	assert.Equal(t, TypeAtResult{Reachable: false}, typeAt(4))

	var dump DumpResult
	err = cli.CallResult(ctx, "narrow/dump", DumpParams{RunID: doc.RunID, Function: "count"}, &dump)
	require.NoError(t, err)
	assert.Contains(t, dump.Text, `1 assign let n: number = "many" -> 2`)
}

func TestInvalidParams(t *testing.T) {
	ctx := context.Background()
	cli := newClient(t)

	_, err := cli.Call(ctx, "narrow/analyze", AnalyzeParams{})
	assert.Equal(t, jrpc2.InvalidParams, errorCode(t, err))

	_, err = cli.Call(ctx, "narrow/analyze", AnalyzeParams{Path: "bad.yaml", Source: "types:\n  A: B\n"})
	assert.Equal(t, jrpc2.InvalidParams, errorCode(t, err))
	assert.ErrorContains(t, err, `unknown type "B"`)

	_, err = cli.Call(ctx, "narrow/typeAt", TypeAtParams{RunID: "nope", Function: "f"})
	assert.Equal(t, jrpc2.InvalidParams, errorCode(t, err))
	assert.ErrorContains(t, err, `unknown run "nope"`)

	var doc report.Document
	require.NoError(t, cli.CallResult(ctx, "narrow/analyze", AnalyzeParams{Path: "inline.yaml", Source: source}, &doc))
	_, err = cli.Call(ctx, "narrow/typeAt", TypeAtParams{RunID: doc.RunID, Function: "orEmpty", Node: 99, Var: "x"})
	assert.Equal(t, jrpc2.InvalidParams, errorCode(t, err))

	_, err = cli.Call(ctx, "narrow/frobnicate", nil)
	assert.Equal(t, jrpc2.MethodNotFound, errorCode(t, err))
}
