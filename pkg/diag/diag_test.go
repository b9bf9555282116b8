package diag

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/narrow/pkg/lattice"
)

func TestKindCodes(t *testing.T) {
	assert.Equal(t, "non_exhaustive_match", NonExhaustiveMatch.Code())
	assert.Equal(t, "ambiguous_overload", AmbiguousOverload.Code())
	assert.Equal(t, "analysis_budget_exceeded", AnalysisBudgetExceeded.Code())

	for k := NonExhaustiveMatch; k <= AnalysisBudgetExceeded; k++ {
		back, ok := KindFromCode(k.Code())
		require.True(t, ok, k.String())
		assert.Equal(t, k, back)
	}
	_, ok := KindFromCode("nope")
	assert.False(t, ok)
}

func TestSeverities(t *testing.T) {
	assert.Equal(t, Warning, NonExhaustiveMatch.Severity())
	assert.Equal(t, Advisory, UnderconstrainedTypeVar.Severity())
	assert.Equal(t, Error, NoMatchingOverload.Severity())
}

func TestBag(t *testing.T) {
	bag := NewBag()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loc := Location{Function: fmt.Sprintf("f%d", i%2), Node: 10 - i}
			bag.Add(NonExhaustive(loc, lattice.Number))
		}(i)
	}
	wg.Wait()

	require.Equal(t, 10, bag.Len())
	assert.Equal(t, 10, bag.Count(Warning))
	assert.False(t, bag.Failed(false))
	assert.True(t, bag.Failed(true))

	all := bag.All()
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1].Location, all[i].Location
		if prev.Function == cur.Function {
			assert.LessOrEqual(t, prev.Node, cur.Node)
		} else {
			assert.Less(t, prev.Function, cur.Function)
		}
	}

	bag.Add(Underconstrained(Location{Function: "g"}, "T"))
	assert.Len(t, bag.OfKind(UnderconstrainedTypeVar), 1)
	assert.False(t, bag.Failed(false))

	bag.Add(Budget(Location{Function: "h"}, 20, 10))
	assert.True(t, bag.Failed(false))
}

func TestDiagnosticMessages(t *testing.T) {
	loc := Location{Function: "area", Node: 4}
	d := NonExhaustive(loc, lattice.Number)
	assert.Equal(t, "area#4: non_exhaustive_match: switch is not exhaustive: number is not handled", d.String())

	c := Constraint(loc, "T", lattice.Number, lattice.String)
	assert.Equal(t, ConstraintPayload{TypeVar: "T", Lower: lattice.Number, Constraint: lattice.String}, c.Payload)
}

func TestInternalError(t *testing.T) {
	err := Internalf("f", 3, "branch node has %d successors", 1)
	assert.EqualError(t, err, "internal error in f at node 3: branch node has 1 successors")
	assert.True(t, IsInternal(errors.Wrap(err, "analyzing")))
	assert.False(t, IsInternal(ErrBudgetExceeded))

	recovered := AsInternal("g", 0, lattice.ContractViolation{Msg: "boom"})
	assert.Contains(t, recovered.Error(), "lattice contract violation: boom")
	assert.Contains(t, fmt.Sprintf("%+v", recovered), "diag_test.go")
}
