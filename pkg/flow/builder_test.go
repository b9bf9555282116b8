package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
)

func nodesOf(g *Graph, kind NodeKind) []NodeID {
	var ids []NodeID
	for _, n := range g.Nodes {
		if n.Kind == kind {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func TestBuildIf(t *testing.T) {
	u := lattice.NewUniverse()
	b := NewBuilder("f", []lattice.Param{{Name: "x", Type: u.Union(lattice.String, lattice.Number)}}, nil)
	b.If(Test{guard.Typeof{Var: "x", Tag: "string"}}, func(b *Builder) {
		b.Return(VarRef{Name: "x"})
	}, nil)
	b.Return(Const{Type: lattice.Number})
	g, err := b.Build()
	require.NoError(t, err)

	require.Len(t, g.Nodes, 5)
	assert.Equal(t, `1 branch typeof x === "string" -> 2, 3`, g.Nodes[1].String())
	assert.Equal(t, "2 return x", g.Nodes[2].String())
	assert.Equal(t, "3 return number", g.Nodes[3].String())
	assert.Equal(t, NodeID(4), g.Exit)
	assert.Empty(t, g.Predecessors()[g.Exit])
	assert.Empty(t, g.LoopHeaders())
}

func TestBuildShortCircuit(t *testing.T) {
	b := NewBuilder("f", nil, nil)
	a := Test{guard.Truthy{Var: "a"}}
	c := Test{guard.Truthy{Var: "c"}}
	b.If(And{Left: a, Right: Not{Cond: c}}, func(b *Builder) {
		b.Assign("y", Const{Type: lattice.Number})
	}, nil)
	g, err := b.Build()
	require.NoError(t, err)

	branches := nodesOf(g, Branch)
	require.Len(t, branches, 2)
	first, second := g.Nodes[branches[0]], g.Nodes[branches[1]]
	assert.Equal(t, second.ID, first.Succs[0])
	// !c: the assignment is on the false edge of c
	assign := nodesOf(g, Assign)
	require.Len(t, assign, 1)
	assert.Equal(t, assign[0], second.Succs[1])
	// a false, c true and the assignment all reach the exit
	assert.ElementsMatch(t, []NodeID{first.ID, second.ID, assign[0]}, g.Predecessors()[g.Exit])
}

func TestBuildLoops(t *testing.T) {
	b := NewBuilder("f", nil, nil)
	b.While(Test{}, func(b *Builder) {
		b.If(Test{}, func(b *Builder) { b.Break() }, nil)
		b.If(Test{}, func(b *Builder) { b.Continue() }, nil)
		b.Assign("x", Const{Type: lattice.Number})
	})
	g, err := b.Build()
	require.NoError(t, err)

	headers := g.LoopHeaders()
	require.Len(t, headers, 1)
	header := g.Nodes[headers[0]]
	assert.Equal(t, Merge, header.Kind)
	// entry, continue and the end of the body
	assert.Len(t, g.Predecessors()[header.ID], 3)

	_, err = func() (*Graph, error) {
		b := NewBuilder("bad", nil, nil)
		b.Break()
		return b.Build()
	}()
	assert.ErrorContains(t, err, "bad: break outside of a loop or switch")

	_, err = func() (*Graph, error) {
		b := NewBuilder("bad", nil, nil)
		b.Switch("x", "", []Case{{Values: []lattice.Type{lattice.Null}, Body: func(b *Builder) { b.Continue() }}}, nil)
		return b.Build()
	}()
	assert.ErrorContains(t, err, "continue outside of a loop")
}

func TestBuildSwitch(t *testing.T) {
	u := lattice.NewUniverse()
	b := NewBuilder("f", nil, nil)
	b.Switch("s", "kind", []Case{
		{Values: []lattice.Type{u.Literal("a"), u.Literal("b")}, Body: func(b *Builder) {
			b.Assign("x", Const{Type: lattice.Number})
		}},
		{Values: []lattice.Type{u.Literal("c")}, Body: func(b *Builder) {
			b.Return(nil)
		}},
	}, nil)
	g, err := b.Build()
	require.NoError(t, err)

	sw := g.Nodes[nodesOf(g, Switch)[0]]
	require.Len(t, sw.Succs, 4)
	assert.False(t, sw.Switch.HasDefault)
	assert.Equal(t, sw.Succs[0], sw.Succs[1])
	assert.Equal(t, `switch s.kind ["a", "b", "c"]`, sw.Switch.String())
	assert.Equal(t, Return, g.Nodes[sw.Succs[2]].Kind)
	assert.Equal(t, g.Exit, sw.Succs[3])
}

func TestValidate(t *testing.T) {
	g := &Graph{Name: "bad", Nodes: []*Node{
		{ID: 0, Kind: Entry, Succs: []NodeID{1}},
		{ID: 1, Kind: Branch, Succs: []NodeID{2}},
		{ID: 2, Kind: Exit},
	}, Exit: 2}
	err := g.Validate()
	assert.EqualError(t, err, "internal error in bad at node 1: branch node has 1 successors, want 2")

	g = &Graph{Name: "empty"}
	assert.ErrorContains(t, g.Validate(), "graph has no entry node")
}
