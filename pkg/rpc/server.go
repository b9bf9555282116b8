// Package rpc serves the analyzer over JSON-RPC 2.0.
//
// Methods:
//
//	narrow/analyze  {path, source?}                   -> report document
//	narrow/typeAt   {run_id, function, node, var}     -> {type, reachable}
//	narrow/dump     {run_id, function}                -> {text}
//
// Reports are kept by run id so that typeAt and dump can query an earlier
// analysis.
package rpc

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/report"
)

// DefaultRetainedReports is the number of reports kept for queries.
const DefaultRetainedReports = 16

type Server struct {
	analyzer *analyzer.Analyzer
	reports  *lru.Cache[string, *analyzer.Report]
}

func NewServer(a *analyzer.Analyzer, retain int) (*Server, error) {
	if retain <= 0 {
		retain = DefaultRetainedReports
	}
	reports, err := lru.New[string, *analyzer.Report](retain)
	if err != nil {
		return nil, err
	}
	return &Server{analyzer: a, reports: reports}, nil
}

// Handlers returns the method table.
func (s *Server) Handlers() handler.Map {
	return handler.Map{
		"narrow/analyze": s.handleAnalyze,
		"narrow/typeAt":  s.handleTypeAt,
		"narrow/dump":    s.handleDump,
	}
}

// Serve handles requests on ch until the peer disconnects.
func (s *Server) Serve(ctx context.Context, ch channel.Channel) error {
	srv := jrpc2.NewServer(s.Handlers(), &jrpc2.ServerOptions{
		Logger: func(text string) { slog.DebugContext(ctx, text) },
	})
	srv.Start(ch)
	slog.InfoContext(ctx, "serving")
	err := srv.Wait()
	slog.InfoContext(ctx, "server closed", "error", err)
	return err
}

type AnalyzeParams struct {
	Path string `json:"path"`
	// Source is the program text. When empty, Path is read from disk.
	Source string `json:"source,omitempty"`
}

type TypeAtParams struct {
	RunID    string `json:"run_id"`
	Function string `json:"function"`
	Node     int    `json:"node"`
	Var      string `json:"var"`
}

type TypeAtResult struct {
	Reachable bool   `json:"reachable"`
	Type      string `json:"type,omitempty"`
}

type DumpParams struct {
	RunID    string `json:"run_id"`
	Function string `json:"function"`
}

type DumpResult struct {
	Text string `json:"text"`
}

func (s *Server) handleAnalyze(ctx context.Context, req *jrpc2.Request) (any, error) {
	if !req.HasParams() {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "missing parameters")
	}

	var params AnalyzeParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}
	if params.Path == "" {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "missing path")
	}

	var rep *analyzer.Report
	var err error
	if params.Source != "" {
		prog, perr := s.analyzer.Parse(ctx, params.Path, []byte(params.Source))
		if perr != nil {
			return nil, jrpc2.Errorf(jrpc2.InvalidParams, "%v", perr)
		}
		rep, err = s.analyzer.Analyze(ctx, prog)
	} else {
		prog, perr := s.analyzer.LoadFile(ctx, params.Path)
		if perr != nil {
			return nil, jrpc2.Errorf(jrpc2.InvalidParams, "%v", perr)
		}
		rep, err = s.analyzer.Analyze(ctx, prog)
	}
	if err != nil {
		return nil, err
	}

	s.reports.Add(rep.RunID.String(), rep)
	slog.DebugContext(ctx, "analyzed", "path", params.Path, "run", rep.RunID, "diagnostics", rep.Diagnostics.Len())
	return report.NewDocument(rep), nil
}

func (s *Server) lookup(runID, function string) (*analyzer.Report, *analyzer.Function, error) {
	rep, ok := s.reports.Get(runID)
	if !ok {
		return nil, nil, jrpc2.Errorf(jrpc2.InvalidParams, "unknown run %q", runID)
	}
	fn, ok := rep.Function(function)
	if !ok {
		return nil, nil, jrpc2.Errorf(jrpc2.InvalidParams, "run %s has no function %q", runID, function)
	}
	return rep, fn, nil
}

func (s *Server) handleTypeAt(ctx context.Context, req *jrpc2.Request) (any, error) {
	if !req.HasParams() {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "missing parameters")
	}

	var params TypeAtParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}
	rep, fn, err := s.lookup(params.RunID, params.Function)
	if err != nil {
		return nil, err
	}
	if fn.Result == nil || fn.Result.Graph.Node(flow.NodeID(params.Node)) == nil {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "function %s has no node %d", params.Function, params.Node)
	}

	t, ok := rep.TypeAt(params.Function, params.Node, params.Var)
	if !ok {
		return TypeAtResult{Reachable: fn.Result.Reachable(flow.NodeID(params.Node))}, nil
	}
	return TypeAtResult{Reachable: true, Type: t.String()}, nil
}

func (s *Server) handleDump(ctx context.Context, req *jrpc2.Request) (any, error) {
	if !req.HasParams() {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "missing parameters")
	}

	var params DumpParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}
	_, fn, err := s.lookup(params.RunID, params.Function)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := report.Dump(&buf, fn, report.Options{}); err != nil {
		return nil, err
	}
	return DumpResult{Text: buf.String()}, nil
}
