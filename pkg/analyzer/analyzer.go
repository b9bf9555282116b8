// Package analyzer runs the narrowing pass over every function body of a
// program, in parallel, and gathers the results into a Report.
package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vito/narrow/pkg/config"
	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
	"github.com/vito/narrow/pkg/program"
)

const instrumentationName = "github.com/vito/narrow/pkg/analyzer"

type Analyzer struct {
	config *config.Config
	tracer trace.Tracer
	logger *slog.Logger
}

type Option func(*Analyzer)

// WithTracerProvider sets where spans go. The global provider is used
// otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *Analyzer) {
		a.tracer = tp.Tracer(instrumentationName)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

func New(cfg *config.Config, opts ...Option) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &Analyzer{
		config: cfg,
		tracer: otel.Tracer(instrumentationName),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewUniverse creates a lattice configured for this analyzer.
func (a *Analyzer) NewUniverse() *lattice.Universe {
	return lattice.NewUniverse(a.config.UniverseOptions()...)
}

// LoadFile loads a program file into a fresh universe.
func (a *Analyzer) LoadFile(ctx context.Context, path string) (*program.Program, error) {
	_, span := a.tracer.Start(ctx, "load "+path)
	defer span.End()
	prog, err := program.Load(a.NewUniverse(), path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("narrow.functions", len(prog.Graphs)))
	return prog, nil
}

// Parse parses program source into a fresh universe. path only labels the
// program.
func (a *Analyzer) Parse(ctx context.Context, path string, src []byte) (*program.Program, error) {
	_, span := a.tracer.Start(ctx, "parse "+path)
	defer span.End()
	prog, err := program.Parse(a.NewUniverse(), path, src)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return prog, nil
}

// Check loads and analyzes a program file.
func (a *Analyzer) Check(ctx context.Context, path string) (*Report, error) {
	prog, err := a.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, prog)
}

// Analyze runs one pass per function body. Functions are independent:
// exceeding the node budget or hitting an internal error in one body is
// recorded on its Function and the others still run. Only cancellation
// aborts the analysis.
func (a *Analyzer) Analyze(ctx context.Context, prog *program.Program) (*Report, error) {
	report := &Report{
		RunID:       uuid.New(),
		Path:        prog.Path,
		Strict:      a.config.Strict,
		Functions:   make([]*Function, len(prog.Graphs)),
		Diagnostics: diag.NewBag(),
	}

	ctx, span := a.tracer.Start(ctx, "analyze "+prog.Path, trace.WithAttributes(
		attribute.String("narrow.run_id", report.RunID.String()),
		attribute.Int("narrow.functions", len(prog.Graphs)),
	))
	defer span.End()

	eval := guard.NewEvaluator(prog.Universe, prog)
	propagator := flow.NewPropagator(prog.Universe, eval, prog, a.config.FlowOptions())

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.config.Workers)
	for i, g := range prog.Graphs {
		eg.Go(func() error {
			fn, err := a.function(ctx, propagator, g)
			if err != nil {
				return err
			}
			report.Functions[i] = fn
			if fn.Result != nil {
				report.Diagnostics.Add(fn.Result.Diagnostics()...)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("narrow.diagnostics", report.Diagnostics.Len()))
	a.logger.Debug("analyzed", "path", prog.Path, "run", report.RunID, "functions", len(report.Functions), "diagnostics", report.Diagnostics.Len())
	return report, nil
}

func (a *Analyzer) function(ctx context.Context, propagator *flow.Propagator, g *flow.Graph) (*Function, error) {
	ctx, span := a.tracer.Start(ctx, "function "+g.Name, trace.WithAttributes(
		attribute.String("narrow.function", g.Name),
		attribute.Int("narrow.nodes", len(g.Nodes)),
	))
	defer span.End()

	start := time.Now()
	res, err := propagator.Run(ctx, g)
	fn := &Function{Name: g.Name, Result: res, Elapsed: time.Since(start)}
	switch {
	case err == nil:
	case errors.Is(err, diag.ErrBudgetExceeded):
		fn.Err = err
		span.SetStatus(codes.Error, err.Error())
		a.logger.Warn("skipped function", "function", g.Name, "nodes", len(g.Nodes), "limit", a.config.MaxNodes)
	case diag.IsInternal(err):
		fn.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.logger.Error("internal error", "function", g.Name, "error", err)
	default:
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if res != nil {
		span.SetAttributes(
			attribute.Int("narrow.reachable", len(res.In)),
			attribute.Int("narrow.diagnostics", len(res.Diagnostics())),
		)
	}
	return fn, nil
}
