package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/generic"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
	"github.com/vito/narrow/pkg/overload"
)

func run(t *testing.T, u *lattice.Universe, fns Functions, b *Builder) (*Graph, *Result) {
	t.Helper()
	g, err := b.Build()
	require.NoError(t, err)
	p := NewPropagator(u, guard.NewEvaluator(u, nil), fns, Options{})
	res, err := p.Run(context.Background(), g)
	require.NoError(t, err)
	return g, res
}

func kinds(ds []diag.Diagnostic) []diag.Kind {
	out := make([]diag.Kind, len(ds))
	for i, d := range ds {
		out[i] = d.Kind
	}
	return out
}

func TestNarrowingAlongEdges(t *testing.T) {
	u := lattice.NewUniverse()
	b := NewBuilder("f", []lattice.Param{{Name: "x", Type: u.Union(lattice.String, lattice.Number, lattice.Null)}}, nil)
	b.If(And{
		Left:  Test{guard.Equality{Op: guard.StrictNe, Left: guard.Ref{Var: "x"}, Right: lattice.Null}},
		Right: Test{guard.Typeof{Var: "x", Tag: "string"}},
	}, func(b *Builder) {
		b.Return(VarRef{Name: "x"})
	}, nil)
	b.Return(VarRef{Name: "x"})
	g, res := run(t, u, nil, b)

	returns := nodesOf(g, Return)
	require.Len(t, returns, 2)
	x, ok := res.TypeAt(returns[0], "x")
	require.True(t, ok)
	assert.Equal(t, lattice.String, x)
	x, _ = res.TypeAt(returns[1], "x")
	assert.Equal(t, u.Union(lattice.Number, lattice.Null), x)

	assert.False(t, res.Reachable(g.Exit))
	assert.Empty(t, res.Diagnostics())
}

func TestUnreachableBranch(t *testing.T) {
	u := lattice.NewUniverse()
	b := NewBuilder("f", []lattice.Param{{Name: "x", Type: lattice.String}}, nil)
	b.If(Test{guard.Typeof{Var: "x", Tag: "number"}}, func(b *Builder) {
		b.Call(CallSite{Callee: "missing", Args: []Expr{VarRef{Name: "x"}}})
	}, nil)
	g, res := run(t, u, nil, b)

	call := nodesOf(g, Call)[0]
	assert.False(t, res.Reachable(call))
	assert.NotContains(t, res.Calls, call)
	assert.True(t, res.Reachable(g.Exit))
	assert.Empty(t, res.Diagnostics())
}

func TestGraphWithoutBuilder(t *testing.T) {
	u := lattice.NewUniverse()
	g := &Graph{
		Name: "f",
		Nodes: []*Node{
			{ID: 0, Kind: Entry, Succs: []NodeID{1}},
			{ID: 1, Kind: Branch, Guard: guard.Typeof{Var: "x", Tag: "string"}, Succs: []NodeID{2, 3}},
			{ID: 2, Kind: Return, Value: VarRef{Name: "x"}},
			{ID: 3, Kind: Exit},
		},
		Entry:  0,
		Exit:   3,
		Params: []lattice.Param{{Name: "x", Type: u.Union(lattice.String, lattice.Number)}},
	}
	p := NewPropagator(u, guard.NewEvaluator(u, nil), nil, Options{})
	res, err := p.Run(context.Background(), g)
	require.NoError(t, err)

	for id := range g.Nodes {
		assert.True(t, res.Reachable(NodeID(id)), "node %d", id)
	}
	x, _ := res.TypeAt(2, "x")
	assert.Equal(t, lattice.String, x)
	x, _ = res.TypeAt(3, "x")
	assert.Equal(t, lattice.Number, x)
}

func TestAssignStructuralTarget(t *testing.T) {
	u := lattice.NewUniverse()
	hasLength := u.Object("", lattice.Prop{Name: "length", Type: lattice.Number})
	b := NewBuilder("f", nil, nil)
	b.Let("x", hasLength, Const{Type: u.Literal("abc")})
	b.If(Test{guard.Truthy{Var: "x"}}, func(b *Builder) {
		b.Assign("y", Const{Type: lattice.Number})
	}, nil)
	g, res := run(t, u, nil, b)

	assert.Empty(t, res.Diagnostics())
	require.True(t, res.Reachable(g.Exit))
	x, _ := res.TypeAt(g.Exit, "x")
	assert.Equal(t, u.Literal("abc"), x)
	assert.True(t, res.Reachable(nodesOf(g, Assign)[1]))
}

func TestAssignments(t *testing.T) {
	u := lattice.NewUniverse()
	b := NewBuilder("f", nil, nil)
	b.Let("x", lattice.Number, Const{Type: u.Literal("a")})
	b.Let("y", nil, Const{Type: u.Literal("a")})
	b.Assign("y", Const{Type: u.Literal("b")})
	b.Assign("y", Const{Type: u.Literal(1.0)})
	g, res := run(t, u, nil, b)

	ds := res.Diagnostics()
	require.Len(t, ds, 2)
	assert.Equal(t, diag.Location{Function: "f", Node: 1}, ds[0].Location)
	assert.Equal(t, diag.AssignabilityPayload{Target: "x", Source: u.Literal("a"), Declared: lattice.Number}, ds[0].Payload)
	assert.Equal(t, diag.AssignabilityPayload{Target: "y", Source: u.Literal(1.0), Declared: lattice.String}, ds[1].Payload)

	env, ok := res.EnvAt(g.Exit)
	require.True(t, ok)
	x, _ := env.Lookup("x")
	assert.Equal(t, lattice.Number, x)
	y, _ := env.Lookup("y")
	assert.Equal(t, lattice.String, y)

	y, _ = res.TypeAt(4, "y")
	assert.Equal(t, u.Literal("b"), y)
}

func TestSwitchExhaustiveness(t *testing.T) {
	u := lattice.NewUniverse()
	shape := func(kind string) lattice.Type {
		return u.Object("", lattice.Prop{Name: "kind", Type: u.Literal(kind)}, lattice.Prop{Name: "size", Type: lattice.Number})
	}
	circle, square, triangle := shape("circle"), shape("square"), shape("triangle")
	area := func(kinds ...string) *Builder {
		b := NewBuilder("getArea", []lattice.Param{{Name: "s", Type: u.Union(circle, square, triangle)}}, lattice.Number)
		var cases []Case
		for _, k := range kinds {
			cases = append(cases, Case{
				Values: []lattice.Type{u.Literal(k)},
				Body: func(b *Builder) {
					b.Return(PropRef{Var: "s", Prop: "size"})
				},
			})
		}
		b.Switch("s", "kind", cases, nil)
		return b
	}

	g, res := run(t, u, nil, area("circle", "square"))
	sw := nodesOf(g, Switch)[0]
	returns := nodesOf(g, Return)
	s, _ := res.TypeAt(returns[0], "s")
	assert.Equal(t, circle, s)
	s, _ = res.TypeAt(g.Exit, "s")
	assert.Equal(t, triangle, s)
	assert.Equal(t, triangle, res.Switches[sw].Residual)

	ds := res.Diagnostics()
	assert.Equal(t, []diag.Kind{diag.NonExhaustiveMatch, diag.AssignabilityError}, kinds(ds))
	assert.Equal(t, diag.NonExhaustivePayload{Residual: triangle}, ds[0].Payload)
	assert.Equal(t, int(g.Exit), ds[1].Location.Node)

	g, res = run(t, u, nil, area("circle", "square", "triangle"))
	assert.False(t, res.Reachable(g.Exit))
	assert.Empty(t, res.Diagnostics())
	assert.True(t, res.Switches[nodesOf(g, Switch)[0]].Exhaustive())
}

func TestCallResolution(t *testing.T) {
	u := lattice.NewUniverse()
	fn2, err := overload.NewSet(u, "fn2",
		[]generic.Signature{
			{Params: []lattice.Param{{Name: "b", Type: lattice.Boolean}}, Return: lattice.Number},
			{Params: []lattice.Param{{Name: "s", Type: lattice.String}}, Return: lattice.String},
		},
		generic.Signature{Params: []lattice.Param{{Name: "v", Type: u.Union(lattice.Boolean, lattice.String)}}, Return: u.Union(lattice.Number, lattice.String)},
	)
	require.NoError(t, err)
	fns := Functions{"fn2": fn2}

	cb := u.Function([]lattice.Param{{Name: "n", Type: lattice.Number}}, lattice.String)
	b := NewBuilder("f", []lattice.Param{
		{Name: "v", Type: u.Union(lattice.Boolean, lattice.String)},
		{Name: "cb", Type: cb},
	}, nil)
	b.If(Test{guard.Typeof{Var: "v", Tag: "boolean"}}, func(b *Builder) {
		b.Call(CallSite{Callee: "fn2", Args: []Expr{VarRef{Name: "v"}}, Result: "a", Declare: true})
	}, func(b *Builder) {
		b.Call(CallSite{Callee: "fn2", Args: []Expr{VarRef{Name: "v"}}, Result: "a", Declare: true})
	})
	b.Call(CallSite{Callee: "fn2", Args: []Expr{VarRef{Name: "v"}}, Result: "c", Declare: true})
	b.Call(CallSite{Callee: "cb", Args: []Expr{Const{Type: u.Literal(1.0)}}, Result: "d", Declare: true})
	g, res := run(t, u, fns, b)

	calls := nodesOf(g, Call)
	require.Len(t, calls, 4)
	assert.Equal(t, 0, res.Calls[calls[0]].Index)
	assert.Equal(t, 1, res.Calls[calls[1]].Index)
	assert.False(t, res.Calls[calls[2]].Resolved())
	assert.Equal(t, 0, res.Calls[calls[3]].Index)

	assert.Equal(t, []diag.Kind{diag.AmbiguousOverload}, kinds(res.Diagnostics()))

	env, _ := res.EnvAt(g.Exit)
	a, _ := env.Lookup("a")
	assert.Equal(t, u.Union(lattice.Number, lattice.String), a)
	c, _ := env.Lookup("c")
	assert.Equal(t, lattice.Unknown, c)
	d, _ := env.Lookup("d")
	assert.Equal(t, lattice.String, d)
}

func TestLoopConvergence(t *testing.T) {
	u := lattice.NewUniverse()
	declared := u.Union(lattice.String, lattice.Number, lattice.Boolean)
	b := NewBuilder("f", nil, nil)
	b.Let("s", declared, Const{Type: u.Literal("a")})
	b.While(Test{}, func(b *Builder) {
		b.If(Test{guard.Typeof{Var: "s", Tag: "string"}}, func(b *Builder) {
			b.Assign("s", Const{Type: u.Literal(1.0)})
		}, func(b *Builder) {
			b.Assign("s", Const{Type: u.Literal(true)})
		})
	})
	g, res := run(t, u, nil, b)

	headers := g.LoopHeaders()
	require.Len(t, headers, 1)
	// the join on the second visit still grows, so the third widens
	assert.Equal(t, 3, res.Visits(headers[0]))
	s, _ := res.TypeAt(headers[0], "s")
	assert.Equal(t, declared, s)
	assert.Empty(t, res.Diagnostics())

	// a loop that settles after one join keeps the joined type
	b = NewBuilder("h", nil, nil)
	b.Let("x", u.Union(lattice.String, lattice.Number), Const{Type: u.Literal("a")})
	b.While(Test{}, func(b *Builder) {
		b.Assign("x", Const{Type: u.Literal(1.0)})
	})
	g, res = run(t, u, nil, b)
	headers = g.LoopHeaders()
	require.Len(t, headers, 1)
	assert.Equal(t, 2, res.Visits(headers[0]))
	x, _ := res.TypeAt(headers[0], "x")
	assert.Equal(t, u.Union(u.Literal("a"), u.Literal(1.0)), x)

	// a loop that does not change its bindings settles on the first visit
	b = NewBuilder("g", []lattice.Param{{Name: "x", Type: u.Union(lattice.Number, lattice.Null)}}, nil)
	b.While(Test{guard.Equality{Op: guard.StrictNe, Left: guard.Ref{Var: "x"}, Right: lattice.Null}}, func(b *Builder) {
		b.Assign("x", Const{Type: lattice.Null})
	})
	g, res = run(t, u, nil, b)
	header := g.LoopHeaders()[0]
	assert.Equal(t, 1, res.Visits(header))
	x, _ = res.TypeAt(g.Exit, "x")
	assert.Equal(t, lattice.Null, x)
}

func TestBudgetAndInternalErrors(t *testing.T) {
	u := lattice.NewUniverse()
	b := NewBuilder("big", nil, nil)
	for range 5 {
		b.Assign("x", Const{Type: lattice.Number})
	}
	g, err := b.Build()
	require.NoError(t, err)

	p := NewPropagator(u, guard.NewEvaluator(u, nil), nil, Options{MaxNodes: 4})
	res, err := p.Run(context.Background(), g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, diag.ErrBudgetExceeded))
	require.NotNil(t, res)
	assert.Equal(t, []diag.Kind{diag.AnalysisBudgetExceeded}, kinds(res.Diagnostics()))

	bad := &Graph{Name: "bad", Nodes: []*Node{{ID: 0, Kind: Merge, Succs: []NodeID{0}}}}
	_, err = p.Run(context.Background(), bad)
	require.Error(t, err)
	assert.True(t, diag.IsInternal(err))
}
