package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
)

func TestTypes(t *testing.T) {
	u := lattice.NewUniverse()
	circle := u.Object("", lattice.Prop{Name: "kind", Type: u.Literal("circle")}, lattice.Prop{Name: "radius", Type: lattice.Number})
	p := New(u, Names{"Circle": circle}, nil)

	for _, tc := range []struct {
		src  string
		want lattice.Type
	}{
		{"string | number", u.Union(lattice.String, lattice.Number)},
		{"| null | undefined", u.Union(lattice.Null, lattice.Undefined)},
		{`"a" | 'b' | -1 | true`, u.Union(u.Literal("a"), u.Literal("b"), u.Literal(-1.0), u.Literal(true))},
		{"number[]", u.Array(lattice.Number)},
		{"Array<string>[]", u.Array(u.Array(lattice.String))},
		{"(string | number)[]", u.Array(u.Union(lattice.String, lattice.Number))},
		{"[string, number?, ...boolean[]]", u.Tuple([]lattice.Elem{{Type: lattice.String}, {Type: lattice.Number, Optional: true}}, lattice.Boolean)},
		{"Circle", circle},
		{`{ kind: "circle"; radius: number }`, circle},
		{"{ readonly length: number, name?: string }", u.Object("",
			lattice.Prop{Name: "length", Type: lattice.Number, Readonly: true},
			lattice.Prop{Name: "name", Type: lattice.String, Optional: true},
		)},
		{"(a: number, ...rest: string[]) => void", u.Function([]lattice.Param{
			{Name: "a", Type: lattice.Number},
			{Name: "rest", Type: u.Array(lattice.String), Rest: true},
		}, lattice.Undefined)},
		{"keyof Circle", u.Union(u.Literal("kind"), u.Literal("radius"))},
	} {
		got, err := p.Type(tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, got, tc.src)
	}

	_, err := p.Type("Square")
	assert.EqualError(t, err, `"Square": column 1: unknown type "Square"`)
	_, err = p.Type("string |")
	assert.ErrorContains(t, err, `"string |": column 9: no match found`)
	_, err = p.Type("string # number")
	assert.ErrorContains(t, err, "column 8: no match found")

	var serr *Error
	_, err = p.Type("[...string[], number]")
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "rest element must be last", serr.Msg)
	assert.Equal(t, 14, serr.Pos)
}

func TestClassNames(t *testing.T) {
	u := lattice.NewUniverse()
	dog, err := u.DeclareClass("Dog", nil, lattice.Prop{Name: "bark", Type: lattice.String})
	require.NoError(t, err)
	p := New(u, nil, nil)

	got, err := p.Type("Dog | null")
	require.NoError(t, err)
	assert.Equal(t, u.Union(dog, lattice.Null), got)

	e, err := p.Expr("new Dog()")
	require.NoError(t, err)
	assert.Equal(t, flow.Const{Type: dog}, e)
}

func TestSignatures(t *testing.T) {
	u := lattice.NewUniverse()
	p := New(u, nil, nil)

	sig, err := p.Signature("<T extends { length: number }>(a: T, b: T) => T")
	require.NoError(t, err)
	require.Len(t, sig.TypeParams, 1)
	T := sig.TypeParams[0]
	assert.Equal(t, "T", T.Name())
	assert.Equal(t, u.Object("", lattice.Prop{Name: "length", Type: lattice.Number}), T.Constraint())
	assert.Equal(t, []lattice.Param{{Name: "a", Type: T}, {Name: "b", Type: T}}, sig.Params)
	assert.Equal(t, lattice.Type(T), sig.Return)

	sig, err = p.Signature("<Input, Output>(arr: Input[], f: (arg: Input) => Output) => Output[]")
	require.NoError(t, err)
	assert.Len(t, sig.TypeParams, 2)
	assert.Equal(t, "<Input, Output>(arr: Input[], f: (arg: Input) => Output) => Output[]", sig.String())

	_, err = p.Signature("(...a: number, b: string) => void")
	assert.ErrorContains(t, err, "rest element must be an array type, got number")
	_, err = p.Signature("(...a: number[], b: string) => void")
	assert.ErrorContains(t, err, "column 18: rest parameter must be last")

	// type parameters do not leak between parses
	_, err = p.Type("T")
	assert.ErrorContains(t, err, `unknown type "T"`)
}

func TestConditions(t *testing.T) {
	u := lattice.NewUniverse()
	p := New(u, nil, guard.PredicateMap{"isFish": {Position: 0, Narrows: lattice.String}})

	for _, tc := range []struct {
		src  string
		want flow.Cond
	}{
		{`typeof x === "string"`, flow.Test{Guard: guard.Typeof{Var: "x", Tag: "string"}}},
		{`typeof x != "number"`, flow.Not{Cond: flow.Test{Guard: guard.Typeof{Var: "x", Tag: "number"}}}},
		{"x", flow.Test{Guard: guard.Truthy{Var: "x"}}},
		{"!x", flow.Not{Cond: flow.Test{Guard: guard.Truthy{Var: "x"}}}},
		{"x != null", flow.Test{Guard: guard.Equality{Op: guard.LooseNe, Left: guard.Ref{Var: "x"}, Right: lattice.Null}}},
		{`s.kind === "circle"`, flow.Test{Guard: guard.Equality{Op: guard.StrictEq, Left: guard.Ref{Var: "s", Prop: "kind"}, Right: u.Literal("circle")}}},
		{"x === y", flow.Test{Guard: guard.Equality{Op: guard.StrictEq, Left: guard.Ref{Var: "x"}, RightVar: "y"}}},
		{`"swim" in pet`, flow.Test{Guard: guard.In{Prop: "swim", Var: "pet"}}},
		{"d instanceof Date", flow.Test{Guard: guard.InstanceOf{Var: "d", Tag: "Date"}}},
		{"isFish(pet)", flow.Test{Guard: guard.Predicate{Fn: "isFish", Pos: 0, Var: "pet"}}},
		{"other(pet)", flow.Test{}},
		{"?", flow.Test{}},
		{"a && (b || !c)", flow.And{
			Left: flow.Test{Guard: guard.Truthy{Var: "a"}},
			Right: flow.Or{
				Left:  flow.Test{Guard: guard.Truthy{Var: "b"}},
				Right: flow.Not{Cond: flow.Test{Guard: guard.Truthy{Var: "c"}}},
			},
		}},
	} {
		got, err := p.Cond(tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, got, tc.src)
	}

	_, err := p.Cond("typeof x === number")
	assert.ErrorContains(t, err, "column 14: no match found")
	_, err = p.Cond("x === ")
	assert.Error(t, err)
}

func TestExprsAndCalls(t *testing.T) {
	u := lattice.NewUniverse()
	p := New(u, nil, nil)

	for _, tc := range []struct {
		src  string
		want flow.Expr
	}{
		{"x", flow.VarRef{Name: "x"}},
		{"s.radius", flow.PropRef{Var: "s", Prop: "radius"}},
		{`"a"`, flow.Const{Type: u.Literal("a")}},
		{"null", flow.Const{Type: lattice.Null}},
		{"number", flow.Const{Type: lattice.Number}},
		{"[1, 2]", flow.Const{Type: u.Tuple([]lattice.Elem{{Type: u.Literal(1.0)}, {Type: u.Literal(2.0)}}, nil)}},
	} {
		got, err := p.Expr(tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, got, tc.src)
	}

	site, err := p.Call(`combine<string | number>(a, "b", 3)`)
	require.NoError(t, err)
	assert.Equal(t, "combine", site.Callee)
	assert.Equal(t, []lattice.Type{u.Union(lattice.String, lattice.Number)}, site.TypeArgs)
	assert.Equal(t, []flow.Expr{flow.VarRef{Name: "a"}, flow.Const{Type: u.Literal("b")}, flow.Const{Type: u.Literal(3.0)}}, site.Args)

	_, err = p.Call("f(a")
	assert.ErrorContains(t, err, "column 4: no match found")
	_, err = p.Expr("new Cat()")
	assert.EqualError(t, err, `"new Cat()": column 1: unknown class "Cat"`)
}
