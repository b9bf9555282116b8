// Package exhaust checks switch-like constructs over discriminated unions
// for exhaustiveness.
package exhaust

import (
	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
)

// Checker narrows a subject type case by case.
type Checker struct {
	eval *guard.Evaluator
}

func NewChecker(eval *guard.Evaluator) *Checker {
	return &Checker{eval: eval}
}

// Result describes one switch.
type Result struct {
	// Cases holds the subject type narrowed for each case, in order. A
	// Never entry is a case that can never match.
	Cases []lattice.Type
	// Residual is what remains after the last case: the type seen by the
	// default clause.
	Residual lattice.Type
	// Degraded is set when a case could not narrow the subject, e.g. the
	// union is not discriminated by prop.
	Degraded bool
}

// Exhaustive reports whether every member of the subject is handled.
func (r Result) Exhaustive() bool {
	return r.Residual == lattice.Never
}

// Check matches subject against each case value in order. With prop set
// the cases compare subject.prop, otherwise the subject itself.
func (c *Checker) Check(subject lattice.Type, prop string, cases []lattice.Type) Result {
	res := Result{Cases: make([]lattice.Type, len(cases)), Residual: subject}
	for i, value := range cases {
		var g guard.Guard
		if prop != "" {
			g = guard.Discriminant{Prop: prop, Value: value}
		} else {
			g = guard.Equality{Op: guard.StrictEq, Right: value}
		}
		r := c.eval.Apply(g, res.Residual, nil)
		res.Cases[i] = r.True
		res.Residual = r.False
		res.Degraded = res.Degraded || r.Degraded
	}
	return res
}

// CheckExhaustive returns the residual of a switch over union on prop and,
// when it is not Never, a NonExhaustiveMatch diagnostic at loc. A degraded
// check has no diagnostic.
func (c *Checker) CheckExhaustive(union lattice.Type, prop string, cases []lattice.Type, loc diag.Location) (lattice.Type, *diag.Diagnostic) {
	res := c.Check(union, prop, cases)
	if res.Exhaustive() || res.Degraded {
		return res.Residual, nil
	}
	d := diag.NonExhaustive(loc, res.Residual)
	return res.Residual, &d
}
