package overload

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/generic"
	"github.com/vito/narrow/pkg/lattice"
)

var here = diag.Location{Function: "main", Node: 7}

func params(ts ...lattice.Type) []lattice.Param {
	ps := make([]lattice.Param, len(ts))
	for i, t := range ts {
		ps[i] = lattice.Param{Type: t}
	}
	return ps
}

func TestFirstMatchAndAmbiguity(t *testing.T) {
	u := lattice.NewUniverse()
	r := NewResolver(u)

	set, err := NewSet(u, "fn2",
		[]generic.Signature{
			{Params: params(lattice.Boolean), Return: lattice.Undefined},
			{Params: params(lattice.String), Return: lattice.Undefined},
		},
		generic.Signature{Params: params(u.Union(lattice.Boolean, lattice.String)), Return: lattice.Undefined},
	)
	require.NoError(t, err)
	assert.True(t, set.Overloaded())

	res := r.Resolve(set, []lattice.Type{lattice.Boolean}, nil, here)
	require.True(t, res.Resolved())
	assert.Equal(t, 0, res.Index)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, lattice.Undefined, res.Return)

	res = r.Resolve(set, []lattice.Type{u.Literal("x")}, nil, here)
	assert.Equal(t, 1, res.Index)

	res = r.Resolve(set, []lattice.Type{u.Union(lattice.Boolean, lattice.String)}, nil, here)
	assert.False(t, res.Resolved())
	assert.Equal(t, lattice.Unknown, res.Return)
	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, diag.AmbiguousOverload, d.Kind)
	assert.Equal(t, here, d.Location)
	assert.Equal(t, []string{"(arg0: boolean) => undefined", "(arg0: string) => undefined"}, d.Payload.(diag.OverloadPayload).Candidates)

	res = r.Resolve(set, []lattice.Type{lattice.Number}, nil, here)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diag.NoMatchingOverload, res.Diagnostics[0].Kind)
}

func TestArity(t *testing.T) {
	u := lattice.NewUniverse()
	r := NewResolver(u)
	date, err := u.DeclareClass("Date", nil)
	require.NoError(t, err)

	set, err := NewSet(u, "makeDate",
		[]generic.Signature{
			{Params: []lattice.Param{{Name: "timestamp", Type: lattice.Number}}, Return: date},
			{Params: []lattice.Param{{Name: "m", Type: lattice.Number}, {Name: "d", Type: lattice.Number}, {Name: "y", Type: lattice.Number}}, Return: date},
		},
		generic.Signature{
			Params: []lattice.Param{
				{Name: "mOrTimestamp", Type: lattice.Number},
				{Name: "d", Type: lattice.Number, Optional: true},
				{Name: "y", Type: lattice.Number, Optional: true},
			},
			Return: date,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Resolve(set, []lattice.Type{lattice.Number}, nil, here).Index)
	assert.Equal(t, 1, r.Resolve(set, []lattice.Type{lattice.Number, lattice.Number, lattice.Number}, nil, here).Index)

	res := r.Resolve(set, []lattice.Type{lattice.Number, lattice.Number}, nil, here)
	assert.False(t, res.Resolved())
	assert.Equal(t, diag.NoMatchingOverload, res.Diagnostics[0].Kind)

	// the implementation signature is not callable
	res = r.Resolve(set, nil, nil, here)
	assert.False(t, res.Resolved())
}

func TestRestParameters(t *testing.T) {
	u := lattice.NewUniverse()
	r := NewResolver(u)
	sum := Single("sum", generic.Signature{
		Params: []lattice.Param{{Name: "nums", Type: u.Array(lattice.Number), Rest: true}},
		Return: lattice.Number,
	})

	assert.True(t, r.Resolve(sum, nil, nil, here).Resolved())
	assert.True(t, r.Resolve(sum, []lattice.Type{lattice.Number, u.Literal(2.0), lattice.Number}, nil, here).Resolved())

	res := r.Resolve(sum, []lattice.Type{lattice.Number, lattice.String}, nil, here)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diag.AssignabilityError, res.Diagnostics[0].Kind)
	assert.Equal(t, "argument 2 of sum", res.Diagnostics[0].Payload.(diag.AssignabilityPayload).Target)
}

func TestIncompatibleImplementation(t *testing.T) {
	u := lattice.NewUniverse()
	_, err := NewSet(u, "f",
		[]generic.Signature{{Params: params(lattice.Number), Return: lattice.Undefined}},
		generic.Signature{Params: params(lattice.String), Return: lattice.Undefined},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleImplementation))
	assert.Contains(t, err.Error(), "parameter 1: number is not assignable to string")

	_, err = NewSet(u, "g",
		[]generic.Signature{{Params: params(lattice.Number), Return: lattice.Undefined}},
		generic.Signature{Params: params(lattice.Number, lattice.Number), Return: lattice.Undefined},
	)
	assert.ErrorContains(t, err, "implementation requires 2 arguments")
}

func TestGenericCalls(t *testing.T) {
	u := lattice.NewUniverse()
	r := NewResolver(u)
	T := u.TypeVar("T", u.Object("", lattice.Prop{Name: "length", Type: lattice.Number}))
	longest := Single("longest", generic.Signature{
		TypeParams: []*lattice.TypeVar{T},
		Params:     []lattice.Param{{Name: "a", Type: T}, {Name: "b", Type: T}},
		Return:     T,
	})

	res := r.Resolve(longest, []lattice.Type{u.Array(lattice.Number), u.Array(lattice.Number)}, nil, here)
	require.True(t, res.Resolved())
	assert.Equal(t, u.Array(lattice.Number), res.Return)

	res = r.Resolve(longest, []lattice.Type{lattice.Number, lattice.Number}, nil, here)
	assert.False(t, res.Resolved())
	assert.Equal(t, lattice.Unknown, res.Return)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diag.ConstraintViolation, res.Diagnostics[0].Kind)

	U := u.TypeVar("U", nil)
	combine := Single("combine", generic.Signature{
		TypeParams: []*lattice.TypeVar{U},
		Params:     []lattice.Param{{Name: "a", Type: u.Array(U)}, {Name: "b", Type: u.Array(U)}},
		Return:     u.Array(U),
	})
	sn := u.Union(lattice.String, lattice.Number)
	res = r.Resolve(combine, []lattice.Type{u.Array(lattice.Number), u.Array(lattice.String)}, []lattice.Type{sn}, here)
	require.True(t, res.Resolved())
	assert.Equal(t, u.Array(sn), res.Return)

	res = r.Resolve(combine, []lattice.Type{u.Array(lattice.Number), u.Array(lattice.String)}, []lattice.Type{lattice.Number}, here)
	assert.False(t, res.Resolved())
	assert.Equal(t, diag.AssignabilityError, res.Diagnostics[0].Kind)
}
