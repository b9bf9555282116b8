package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/lattice"
)

type mapEnv map[string]lattice.Type

func (m mapEnv) Lookup(name string) (lattice.Type, bool) {
	t, ok := m[name]
	return t, ok
}

type shapes struct {
	u                        *lattice.Universe
	circle, square, triangle lattice.Type
}

func newShapes() shapes {
	u := lattice.NewUniverse()
	kind := func(k string, extra ...lattice.Prop) lattice.Type {
		return u.Object("", append([]lattice.Prop{{Name: "kind", Type: u.Literal(k)}}, extra...)...)
	}
	return shapes{
		u:        u,
		circle:   kind("circle", lattice.Prop{Name: "radius", Type: lattice.Number}),
		square:   kind("square", lattice.Prop{Name: "sideLength", Type: lattice.Number}),
		triangle: kind("triangle", lattice.Prop{Name: "base", Type: lattice.Number}),
	}
}

func TestTypeof(t *testing.T) {
	u := lattice.NewUniverse()
	e := NewEvaluator(u, nil)

	r := e.Apply(Typeof{Var: "x", Tag: "string"}, u.Union(lattice.String, lattice.Number), nil)
	assert.Equal(t, lattice.String, r.True)
	assert.Equal(t, lattice.Number, r.False)
	assert.False(t, r.Degraded)

	obj := u.Object("", lattice.Prop{Name: "a", Type: lattice.Number})
	r = e.Apply(Typeof{Var: "x", Tag: "object"}, u.Union(lattice.Null, lattice.Number, obj), nil)
	assert.Equal(t, u.Union(lattice.Null, obj), r.True, "typeof null is object")
	assert.Equal(t, lattice.Number, r.False)

	fn := u.Function(nil, lattice.Undefined)
	r = e.Apply(Typeof{Var: "x", Tag: "function"}, u.Union(fn, lattice.String), nil)
	assert.Equal(t, fn, r.True)
	assert.Equal(t, lattice.String, r.False)

	r = e.Apply(Typeof{Var: "x", Tag: "number"}, lattice.Unknown, nil)
	assert.Equal(t, lattice.Number, r.True)
	assert.Equal(t, lattice.Unknown, r.False)

	r = e.Apply(Typeof{Var: "x", Tag: "bigint"}, lattice.Number, nil)
	assert.True(t, r.Degraded)
	assert.Equal(t, lattice.Number, r.True)
}

func TestTruthy(t *testing.T) {
	u := lattice.NewUniverse()
	e := NewEvaluator(u, nil)

	r := e.Apply(Truthy{Var: "x"}, u.Union(lattice.Null, lattice.Undefined, lattice.String, u.Literal(0.0)), nil)
	assert.Equal(t, lattice.String, r.True)
	assert.Equal(t, u.Union(lattice.Null, lattice.Undefined, lattice.String, u.Literal(0.0)), r.False)

	strs := u.Union(lattice.Null, lattice.String, u.Array(lattice.String))
	r = e.Apply(Truthy{Var: "strs"}, strs, nil)
	assert.Equal(t, u.Union(lattice.String, u.Array(lattice.String)), r.True)
	assert.Equal(t, u.Union(lattice.Null, lattice.String), r.False)

	r = e.Apply(Truthy{Var: "x"}, u.Union(u.Literal(""), u.Literal("a")), nil)
	assert.Equal(t, u.Literal("a"), r.True)
	assert.Equal(t, u.Literal(""), r.False)

	// plain primitives cannot be resolved either way
	r = e.Apply(Truthy{Var: "x"}, lattice.Number, nil)
	assert.Equal(t, lattice.Number, r.True)
	assert.Equal(t, lattice.Number, r.False)
}

func TestEquality(t *testing.T) {
	s := newShapes()
	u := s.u
	e := NewEvaluator(u, nil)

	t.Run("discriminant through a property reference", func(t *testing.T) {
		g := Equality{Op: StrictEq, Left: Ref{Var: "shape", Prop: "kind"}, Right: u.Literal("circle")}
		r := e.Apply(g, u.Union(s.circle, s.square), nil)
		assert.Equal(t, s.circle, r.True)
		assert.Equal(t, s.square, r.False)

		g.Op = StrictNe
		r = e.Apply(g, u.Union(s.circle, s.square), nil)
		assert.Equal(t, s.square, r.True)
		assert.Equal(t, s.circle, r.False)
	})

	t.Run("loose null", func(t *testing.T) {
		maybe := u.Union(lattice.Number, lattice.Null, lattice.Undefined)
		r := e.Apply(Equality{Op: LooseNe, Left: Ref{Var: "x"}, Right: lattice.Null}, maybe, nil)
		assert.Equal(t, lattice.Number, r.True)
		assert.Equal(t, u.Union(lattice.Null, lattice.Undefined), r.False)

		r = e.Apply(Equality{Op: LooseEq, Left: Ref{Var: "x"}, Right: lattice.Undefined}, maybe, nil)
		assert.Equal(t, u.Union(lattice.Null, lattice.Undefined), r.True)
		assert.Equal(t, lattice.Number, r.False)

		r = e.Apply(Equality{Op: StrictNe, Left: Ref{Var: "x"}, Right: lattice.Null}, maybe, nil)
		assert.Equal(t, u.Union(lattice.Number, lattice.Undefined), r.True)
	})

	t.Run("literal against a primitive", func(t *testing.T) {
		r := e.Apply(Equality{Op: StrictEq, Left: Ref{Var: "x"}, Right: u.Literal("a")}, u.Union(lattice.String, lattice.Number), nil)
		assert.Equal(t, u.Literal("a"), r.True)
		assert.Equal(t, u.Union(lattice.String, lattice.Number), r.False)

		r = e.Apply(Equality{Op: StrictEq, Left: Ref{Var: "b"}, Right: u.Literal(true)}, lattice.Boolean, nil)
		assert.Equal(t, u.Literal(true), r.True)
		assert.Equal(t, u.Literal(false), r.False)
	})

	t.Run("two variables", func(t *testing.T) {
		env := mapEnv{"y": u.Union(lattice.String, lattice.Boolean)}
		r := e.Apply(Equality{Op: StrictEq, Left: Ref{Var: "x"}, RightVar: "y"}, u.Union(lattice.String, lattice.Number), env)
		assert.Equal(t, lattice.String, r.True)
		assert.Equal(t, u.Union(lattice.String, lattice.Number), r.False)

		r = e.Apply(Equality{Op: StrictEq, Left: Ref{Var: "x"}, RightVar: "z"}, lattice.Number, env)
		assert.True(t, r.Degraded)
	})
}

func TestDiscriminant(t *testing.T) {
	s := newShapes()
	u := s.u
	e := NewEvaluator(u, nil)
	all := u.Union(s.circle, s.square, s.triangle)

	r := e.Apply(Discriminant{Var: "s", Prop: "kind", Value: u.Literal("triangle")}, all, nil)
	assert.Equal(t, s.triangle, r.True)
	assert.Equal(t, u.Union(s.circle, s.square), r.False)

	loose := u.Object("", lattice.Prop{Name: "kind", Type: lattice.String})
	r = e.Apply(Discriminant{Var: "s", Prop: "kind", Value: u.Literal("circle")}, u.Union(s.circle, loose), nil)
	assert.True(t, r.Degraded)
	assert.Equal(t, u.Union(s.circle, loose), r.True)
	assert.Equal(t, u.Union(s.circle, loose), r.False)

	r = e.Apply(Discriminant{Var: "s", Prop: "kind", Value: u.Literal("circle")}, u.Union(s.circle, lattice.Number), nil)
	assert.True(t, r.Degraded)
}

func TestIn(t *testing.T) {
	u := lattice.NewUniverse()
	e := NewEvaluator(u, nil)
	fish := u.Object("", lattice.Prop{Name: "swim", Type: u.Function(nil, lattice.Undefined)})
	bird := u.Object("", lattice.Prop{Name: "fly", Type: u.Function(nil, lattice.Undefined)})
	maybe := u.Object("", lattice.Prop{Name: "swim", Type: lattice.Number, Optional: true})

	r := e.Apply(In{Prop: "swim", Var: "pet"}, u.Union(fish, bird), nil)
	assert.Equal(t, fish, r.True)
	assert.Equal(t, bird, r.False)

	r = e.Apply(In{Prop: "swim", Var: "pet"}, u.Union(maybe, bird), nil)
	assert.Equal(t, maybe, r.True)
	assert.Equal(t, u.Union(maybe, bird), r.False)
}

func TestInstanceOf(t *testing.T) {
	u := lattice.NewUniverse()
	e := NewEvaluator(u, nil)
	animal, err := u.DeclareClass("Animal", nil, lattice.Prop{Name: "name", Type: lattice.String})
	require.NoError(t, err)
	dog, err := u.DeclareClass("Dog", []string{"Animal"}, lattice.Prop{Name: "bark", Type: u.Function(nil, lattice.Undefined)})
	require.NoError(t, err)

	r := e.Apply(InstanceOf{Var: "x", Tag: "Animal"}, u.Union(dog, lattice.String), nil)
	assert.Equal(t, dog, r.True)
	assert.Equal(t, lattice.String, r.False)

	r = e.Apply(InstanceOf{Var: "x", Tag: "Dog"}, animal, nil)
	assert.Equal(t, dog, r.True)
	assert.Equal(t, animal, r.False)

	r = e.Apply(InstanceOf{Var: "x", Tag: "Date"}, animal, nil)
	assert.True(t, r.Degraded)
}

func TestPredicate(t *testing.T) {
	u := lattice.NewUniverse()
	fish := u.Object("", lattice.Prop{Name: "swim", Type: u.Function(nil, lattice.Undefined)})
	bird := u.Object("", lattice.Prop{Name: "fly", Type: u.Function(nil, lattice.Undefined)})
	e := NewEvaluator(u, PredicateMap{"isFish": {Position: 0, Narrows: fish}})

	r := e.Apply(Predicate{Fn: "isFish", Pos: 0, Var: "pet"}, u.Union(fish, bird), nil)
	assert.Equal(t, fish, r.True)
	assert.Equal(t, bird, r.False)

	r = e.Apply(Predicate{Fn: "isFish", Pos: 1, Var: "pet"}, u.Union(fish, bird), nil)
	assert.True(t, r.Degraded)

	r = e.Apply(Predicate{Fn: "isBird", Pos: 0, Var: "pet"}, u.Union(fish, bird), nil)
	assert.True(t, r.Degraded)
}

func TestMonotonicity(t *testing.T) {
	s := newShapes()
	u := s.u
	_, err := u.DeclareClass("Box", nil, lattice.Prop{Name: "kind", Type: u.Literal("box")})
	require.NoError(t, err)
	e := NewEvaluator(u, PredicateMap{"isCircle": {Position: 0, Narrows: s.circle}})

	types := []lattice.Type{
		lattice.Never,
		lattice.Unknown,
		lattice.Boolean,
		u.Union(lattice.String, lattice.Number),
		u.Union(lattice.Number, lattice.Null, lattice.Undefined),
		u.Union(s.circle, s.square, s.triangle),
		u.Union(s.circle, lattice.Null, u.Array(lattice.Number)),
		u.Union(u.Literal(0.0), u.Literal(""), u.Literal(false), u.Literal("x")),
		u.TypeVar("T", u.Object("", lattice.Prop{Name: "length", Type: lattice.Number})),
		u.TypeVar("U", nil),
	}
	guards := []Guard{
		Typeof{Var: "x", Tag: "string"},
		Typeof{Var: "x", Tag: "object"},
		Typeof{Var: "x", Tag: "undefined"},
		Truthy{Var: "x"},
		Equality{Op: StrictEq, Left: Ref{Var: "x"}, Right: u.Literal("circle")},
		Equality{Op: LooseNe, Left: Ref{Var: "x"}, Right: lattice.Null},
		Equality{Op: StrictNe, Left: Ref{Var: "x", Prop: "kind"}, Right: u.Literal("square")},
		In{Prop: "radius", Var: "x"},
		InstanceOf{Var: "x", Tag: "Box"},
		Discriminant{Var: "x", Prop: "kind", Value: u.Literal("circle")},
		Predicate{Fn: "isCircle", Pos: 0, Var: "x"},
	}

	for _, ty := range types {
		for _, g := range guards {
			r := e.Apply(g, ty, nil)
			assert.True(t, u.Subtype(r.True, ty), "%s on %s: true branch %s", g, ty, r.True)
			assert.True(t, u.Subtype(r.False, ty), "%s on %s: false branch %s", g, ty, r.False)
		}
	}
}
