package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/lattice"
)

func lengthy(u *lattice.Universe) lattice.Type {
	return u.Object("", lattice.Prop{Name: "length", Type: lattice.Number})
}

func longest(u *lattice.Universe) Signature {
	T := u.TypeVar("T", lengthy(u))
	return Signature{
		TypeParams: []*lattice.TypeVar{T},
		Params:     []lattice.Param{{Name: "a", Type: T}, {Name: "b", Type: T}},
		Return:     T,
	}
}

func TestInferJoinsArguments(t *testing.T) {
	u := lattice.NewUniverse()
	s := NewSolver(u)
	sig := longest(u)
	T := sig.TypeParams[0]

	cs := s.Infer(sig, []lattice.Type{u.Array(lattice.Number), u.Array(lattice.Number)})
	lower, ok := cs.Lower(T)
	require.True(t, ok)
	assert.Equal(t, u.Array(lattice.Number), lower)
	assert.Equal(t, u.Array(lattice.Number), s.Substitute(sig.Return, cs))

	cs = s.Infer(sig, []lattice.Type{u.Array(lattice.Number), u.Array(lattice.String)})
	lower, _ = cs.Lower(T)
	assert.Equal(t, u.Union(u.Array(lattice.Number), u.Array(lattice.String)), lower)
}

func TestSolveConstraints(t *testing.T) {
	u := lattice.NewUniverse()
	s := NewSolver(u)
	sig := longest(u)

	t.Run("arrays satisfy the constraint", func(t *testing.T) {
		sol, err := s.Solve(sig, []lattice.Type{u.Array(lattice.Number), u.Array(lattice.Number)}, nil)
		require.NoError(t, err)
		assert.True(t, sol.OK())
		assert.Equal(t, u.Array(lattice.Number), sol.Signature.Return)
		assert.Empty(t, sol.Signature.TypeParams)
	})

	t.Run("strings have a length", func(t *testing.T) {
		sol, err := s.Solve(sig, []lattice.Type{u.Literal("123"), u.Literal("1234")}, nil)
		require.NoError(t, err)
		assert.True(t, sol.OK())
		assert.Equal(t, lattice.String, sol.Signature.Return)
	})

	t.Run("numbers violate the constraint", func(t *testing.T) {
		sol, err := s.Solve(sig, []lattice.Type{lattice.Number, lattice.Number}, nil)
		require.NoError(t, err)
		require.Len(t, sol.Violations, 1)
		v := sol.Violations[0]
		assert.Equal(t, "T", v.TypeVar.Name())
		assert.Equal(t, lattice.Number, v.Lower)
		assert.Equal(t, lengthy(u), v.Constraint)

		ds := sol.Diagnostics(diag.Location{Function: "main", Node: 3})
		require.Len(t, ds, 1)
		assert.Equal(t, diag.ConstraintViolation, ds[0].Kind)
	})
}

func TestStructuralMatching(t *testing.T) {
	u := lattice.NewUniverse()
	s := NewSolver(u)

	t.Run("array elements", func(t *testing.T) {
		T := u.TypeVar("T", nil)
		first := Signature{
			TypeParams: []*lattice.TypeVar{T},
			Params:     []lattice.Param{{Name: "arr", Type: u.Array(T)}},
			Return:     u.Union(T, lattice.Undefined),
		}
		sol, err := s.Solve(first, []lattice.Type{u.Array(lattice.Number)}, nil)
		require.NoError(t, err)
		assert.Equal(t, u.Union(lattice.Number, lattice.Undefined), sol.Signature.Return)

		sol, err = s.Solve(first, []lattice.Type{u.Tuple([]lattice.Elem{{Type: lattice.String}, {Type: lattice.Boolean}}, nil)}, nil)
		require.NoError(t, err)
		assert.Equal(t, u.Union(lattice.String, lattice.Boolean, lattice.Undefined), sol.Signature.Return)
	})

	t.Run("function parameters and returns", func(t *testing.T) {
		In := u.TypeVar("Input", nil)
		Out := u.TypeVar("Output", nil)
		mapSig := Signature{
			TypeParams: []*lattice.TypeVar{In, Out},
			Params: []lattice.Param{
				{Name: "arr", Type: u.Array(In)},
				{Name: "func", Type: u.Function([]lattice.Param{{Name: "arg", Type: In}}, Out)},
			},
			Return: u.Array(Out),
		}
		sol, err := s.Solve(mapSig, []lattice.Type{
			u.Array(lattice.String),
			u.Function([]lattice.Param{{Name: "n", Type: lattice.String}}, lattice.Number),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, u.Array(lattice.Number), sol.Signature.Return)
	})

	t.Run("object properties", func(t *testing.T) {
		T := u.TypeVar("T", nil)
		getName := Signature{
			TypeParams: []*lattice.TypeVar{T},
			Params:     []lattice.Param{{Name: "o", Type: u.Object("", lattice.Prop{Name: "name", Type: T})}},
			Return:     T,
		}
		arg := u.Object("", lattice.Prop{Name: "name", Type: u.Literal("x")}, lattice.Prop{Name: "age", Type: lattice.Number})
		sol, err := s.Solve(getName, []lattice.Type{arg}, nil)
		require.NoError(t, err)
		assert.Equal(t, lattice.String, sol.Signature.Return)
	})

	t.Run("unions with fixed members", func(t *testing.T) {
		T := u.TypeVar("T", nil)
		orDefault := Signature{
			TypeParams: []*lattice.TypeVar{T},
			Params:     []lattice.Param{{Name: "x", Type: u.Union(T, lattice.Undefined)}},
			Return:     T,
		}
		sol, err := s.Solve(orDefault, []lattice.Type{u.Union(lattice.Number, lattice.Undefined)}, nil)
		require.NoError(t, err)
		assert.Equal(t, lattice.Number, sol.Signature.Return)
	})

	t.Run("literal constraints keep literals", func(t *testing.T) {
		T := u.TypeVar("T", lattice.String)
		id := Signature{
			TypeParams: []*lattice.TypeVar{T},
			Params:     []lattice.Param{{Name: "x", Type: T}},
			Return:     T,
		}
		sol, err := s.Solve(id, []lattice.Type{u.Literal("a")}, nil)
		require.NoError(t, err)
		assert.Equal(t, u.Literal("a"), sol.Signature.Return)
	})
}

func TestUnderconstrained(t *testing.T) {
	u := lattice.NewUniverse()
	s := NewSolver(u)
	T := u.TypeVar("T", nil)
	create := Signature{TypeParams: []*lattice.TypeVar{T}, Return: T}

	sol, err := s.Solve(create, nil, nil)
	require.NoError(t, err)
	assert.True(t, sol.OK())
	assert.Equal(t, lattice.Unknown, sol.Signature.Return)
	assert.Equal(t, []*lattice.TypeVar{T}, sol.Underconstrained)

	ds := sol.Diagnostics(diag.Location{Function: "f"})
	require.Len(t, ds, 1)
	assert.Equal(t, diag.UnderconstrainedTypeVar, ds[0].Kind)
	assert.Equal(t, diag.Advisory, ds[0].Severity())
}

func TestExplicitTypeArguments(t *testing.T) {
	u := lattice.NewUniverse()
	s := NewSolver(u)
	T := u.TypeVar("Type", nil)
	combine := Signature{
		TypeParams: []*lattice.TypeVar{T},
		Params:     []lattice.Param{{Name: "arr1", Type: u.Array(T)}, {Name: "arr2", Type: u.Array(T)}},
		Return:     u.Array(T),
	}

	sn := u.Union(lattice.String, lattice.Number)
	sol, err := s.Solve(combine, []lattice.Type{u.Array(lattice.Number), u.Array(lattice.String)}, []lattice.Type{sn})
	require.NoError(t, err)
	assert.Equal(t, u.Array(sn), sol.Signature.Return)
	assert.Equal(t, u.Array(sn), sol.Signature.Params[0].Type)

	_, err = s.Solve(combine, nil, []lattice.Type{lattice.String, lattice.Number})
	assert.EqualError(t, err, "expected 1 type arguments, got 2")

	bounded := longest(u)
	sol, err = s.Solve(bounded, nil, []lattice.Type{lattice.Boolean})
	require.NoError(t, err)
	assert.False(t, sol.OK())
}

func TestSignatureArity(t *testing.T) {
	u := lattice.NewUniverse()
	sig := Signature{
		Params: []lattice.Param{
			{Name: "a", Type: lattice.Number},
			{Name: "b", Type: lattice.String, Optional: true},
			{Name: "rest", Type: u.Array(lattice.Boolean), Rest: true},
		},
		Return: lattice.Undefined,
	}
	lo, hi := sig.Arity()
	assert.Equal(t, 1, lo)
	assert.Equal(t, -1, hi)
	assert.False(t, sig.Accepts(0))
	assert.True(t, sig.Accepts(5))

	p, ok := sig.ParamType(4)
	require.True(t, ok)
	assert.Equal(t, lattice.Boolean, p)

	assert.Equal(t, "(a: number, b?: string, ...rest: boolean[]) => undefined", sig.String())
}
