package exhaust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
)

func TestCheckExhaustive(t *testing.T) {
	u := lattice.NewUniverse()
	c := NewChecker(guard.NewEvaluator(u, nil))
	shape := func(kind string) lattice.Type {
		return u.Object("",
			lattice.Prop{Name: "kind", Type: u.Literal(kind)},
			lattice.Prop{Name: "size", Type: lattice.Number},
		)
	}
	circle, square, triangle := shape("circle"), shape("square"), shape("triangle")
	shapes := u.Union(circle, square, triangle)
	loc := diag.Location{Function: "getArea", Node: 2}

	residual, d := c.CheckExhaustive(shapes, "kind", []lattice.Type{u.Literal("circle"), u.Literal("square")}, loc)
	assert.Equal(t, triangle, residual)
	require.NotNil(t, d)
	assert.Equal(t, diag.NonExhaustiveMatch, d.Kind)
	assert.Equal(t, loc, d.Location)
	assert.Equal(t, diag.NonExhaustivePayload{Residual: triangle}, d.Payload)

	residual, d = c.CheckExhaustive(shapes, "kind", []lattice.Type{u.Literal("circle"), u.Literal("square"), u.Literal("triangle")}, loc)
	assert.Equal(t, lattice.Never, residual)
	assert.Nil(t, d)
}

func TestCheckCases(t *testing.T) {
	u := lattice.NewUniverse()
	c := NewChecker(guard.NewEvaluator(u, nil))

	abc := u.Union(u.Literal("a"), u.Literal("b"), u.Literal("c"))
	res := c.Check(abc, "", []lattice.Type{u.Literal("b"), u.Literal("b"), u.Literal("a")})
	assert.Equal(t, []lattice.Type{u.Literal("b"), lattice.Never, u.Literal("a")}, res.Cases)
	assert.Equal(t, u.Literal("c"), res.Residual)
	assert.False(t, res.Exhaustive())

	loose := u.Object("", lattice.Prop{Name: "kind", Type: lattice.String})
	res = c.Check(loose, "kind", []lattice.Type{u.Literal("a")})
	assert.True(t, res.Degraded)
	assert.Equal(t, loose, res.Residual)

	residual, d := c.CheckExhaustive(loose, "kind", []lattice.Type{u.Literal("a")}, diag.Location{Function: "f"})
	assert.Equal(t, loose, residual)
	assert.Nil(t, d)
}
