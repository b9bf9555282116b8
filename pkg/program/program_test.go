package program

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
	"github.com/vito/narrow/pkg/overload"
)

func TestLoad(t *testing.T) {
	u := lattice.NewUniverse()
	prog, err := Load(u, "testdata/shapes.yaml")
	require.NoError(t, err)

	circle := u.Object("", lattice.Prop{Name: "kind", Type: u.Literal("circle")}, lattice.Prop{Name: "radius", Type: lattice.Number})
	assert.Equal(t, circle, prog.Aliases["Circle"])
	shape := prog.Aliases["Shape"]
	assert.Len(t, lattice.Members(shape), 3)

	dog, ok := u.Classes().Class("Dog")
	require.True(t, ok)
	assert.Equal(t, []string{"Animal"}, dog.Parents)
	_, hasName := dog.Instance.(*lattice.Object).Prop("name")
	assert.True(t, hasName)

	assert.Equal(t, guard.PredicateDecl{Position: 0, Narrows: prog.Aliases["Fish"]}, prog.Predicates["isFish"])

	fn2, ok := prog.Overloads("fn2")
	require.True(t, ok)
	assert.True(t, fn2.Overloaded())
	assert.Len(t, fn2.Signatures, 2)

	// bodies are callable too
	area, ok := prog.Overloads("getArea")
	require.True(t, ok)
	assert.Equal(t, lattice.Number, area.Signatures[0].Return)

	require.Len(t, prog.Graphs, 3)
	g, ok := prog.Graph("getArea")
	require.True(t, ok)
	require.Len(t, g.Nodes, 5)
	sw := g.Nodes[1]
	require.Equal(t, flow.Switch, sw.Kind)
	assert.Equal(t, "kind", sw.Switch.Prop)
	assert.Equal(t, []lattice.Type{u.Literal("circle"), u.Literal("square")}, sw.Switch.Cases)
	assert.False(t, sw.Switch.HasDefault)
	assert.Equal(t, lattice.Number, g.Returns)

	g, ok = prog.Graph("move")
	require.True(t, ok)
	assert.Equal(t, guard.Predicate{Fn: "isFish", Pos: 0, Var: "pet"}, g.Nodes[1].Guard)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		err  string
	}{
		{
			name: "undeclared parent",
			src:  "classes:\n  Cat:\n    extends: [Lion]\n",
			err:  "class Cat extends undeclared class Lion",
		},
		{
			name: "unknown type",
			src:  "types:\n  A: B\n",
			err:  `line 2: type A: "B": column 1: unknown type "B"`,
		},
		{
			name: "forward alias",
			src:  "types:\n  A: B[]\n  B: string\n",
			err:  `unknown type "B"`,
		},
		{
			name: "unknown statement",
			src:  "bodies:\n  - name: f\n    signature: () => void\n    body:\n      - frobnicate\n",
			err:  `unknown statement "frobnicate"`,
		},
		{
			name: "mixed statement",
			src:  "bodies:\n  - name: f\n    signature: () => void\n    body:\n      - if: x\n        while: y\n",
			err:  "body f: line 5: statement mixes if and while",
		},
		{
			name: "bad condition",
			src:  "bodies:\n  - name: f\n    signature: \"(x: string) => void\"\n    body:\n      - if: typeof x === 1\n",
			err:  `"typeof x === 1": column 14: no match found`,
		},
		{
			name: "break outside loop",
			src:  "bodies:\n  - name: f\n    signature: () => void\n    body:\n      - break\n",
			err:  "break outside of a loop or switch",
		},
		{
			name: "predicate parameter",
			src:  "functions:\n  isX:\n    signature: \"(a: unknown) => boolean\"\n    predicate: b is string\n",
			err:  "function isX: predicate: no parameter named b",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(lattice.NewUniverse(), "test.yaml", []byte(tc.src))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.err)
		})
	}
}

func TestIncompatibleOverloads(t *testing.T) {
	src := `
functions:
  f:
    overloads:
      - "(a: number) => void"
    implementation: "(a: string) => void"
`
	_, err := Parse(lattice.NewUniverse(), "test.yaml", []byte(src))
	require.Error(t, err)
	assert.True(t, errors.Is(err, overload.ErrIncompatibleImplementation))
	assert.ErrorContains(t, err, "function f: ")
}

func TestStatements(t *testing.T) {
	src := `
bodies:
  - name: loop
    signature: "(xs: number[], x: string | null) => void"
    body:
      - let: i
        value: 0
      - while: "?"
        do:
          - if: x
            then:
              - continue
          - assign: i
            value: number
          - break
      - throw: x
`
	u := lattice.NewUniverse()
	prog, err := Parse(u, "test.yaml", []byte(src))
	require.NoError(t, err)
	g, ok := prog.Graph("loop")
	require.True(t, ok)

	var kinds []flow.NodeKind
	for _, n := range g.Nodes {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, []flow.NodeKind{
		flow.Entry, flow.Assign, flow.Merge, flow.Branch, flow.Branch, flow.Assign, flow.Merge, flow.Throw, flow.Exit,
	}, kinds)
	assert.Len(t, g.LoopHeaders(), 1)
	assert.Equal(t, flow.Const{Type: u.Literal(0.0)}, g.Nodes[1].Value)
}
