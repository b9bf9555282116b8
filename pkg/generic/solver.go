package generic

import (
	"fmt"

	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/lattice"
)

// ConstraintSet accumulates, per type parameter, the join of every type it
// was matched against. It is built fresh for one call site.
type ConstraintSet struct {
	u     *lattice.Universe
	vars  []*lattice.TypeVar
	lower map[*lattice.TypeVar]lattice.Type
}

func NewConstraintSet(u *lattice.Universe, vars ...*lattice.TypeVar) *ConstraintSet {
	return &ConstraintSet{
		u:     u,
		vars:  vars,
		lower: make(map[*lattice.TypeVar]lattice.Type, len(vars)),
	}
}

// Vars returns the type parameters in declaration order.
func (cs *ConstraintSet) Vars() []*lattice.TypeVar {
	return cs.vars
}

// Has reports whether tv is one of the solved type parameters.
func (cs *ConstraintSet) Has(tv *lattice.TypeVar) bool {
	for _, v := range cs.vars {
		if v == tv {
			return true
		}
	}
	return false
}

// Add joins t into the lower bound of tv.
func (cs *ConstraintSet) Add(tv *lattice.TypeVar, t lattice.Type) {
	if prev, ok := cs.lower[tv]; ok {
		t = cs.u.Join(prev, t)
	}
	cs.lower[tv] = t
}

// Lower returns the accumulated lower bound of tv, if it was ever matched.
func (cs *ConstraintSet) Lower(tv *lattice.TypeVar) (lattice.Type, bool) {
	t, ok := cs.lower[tv]
	return t, ok
}

// Subs binds every matched type parameter to its lower bound and every
// unmatched one to Unknown.
func (cs *ConstraintSet) Subs() lattice.Subs {
	subs := lattice.NewSubs()
	for _, tv := range cs.vars {
		if t, ok := cs.lower[tv]; ok {
			subs.Add(tv, t)
		} else {
			subs.Add(tv, lattice.Unknown)
		}
	}
	return subs
}

// Violation is a lower bound that does not satisfy the declared constraint.
type Violation struct {
	TypeVar    *lattice.TypeVar
	Lower      lattice.Type
	Constraint lattice.Type
}

// Solution is the outcome of solving a generic call.
type Solution struct {
	Constraints *ConstraintSet
	Subs        lattice.Subs

	// Signature is the instantiated signature.
	Signature Signature

	Violations []Violation
	// Underconstrained lists the type parameters that occur only in the
	// return type and were resolved to Unknown.
	Underconstrained []*lattice.TypeVar
}

// OK reports whether every constraint holds.
func (sol Solution) OK() bool {
	return len(sol.Violations) == 0
}

// Diagnostics reports the solution's findings at loc.
func (sol Solution) Diagnostics(loc diag.Location) []diag.Diagnostic {
	var ds []diag.Diagnostic
	for _, v := range sol.Violations {
		ds = append(ds, diag.Constraint(loc, v.TypeVar.Name(), v.Lower, v.Constraint))
	}
	for _, tv := range sol.Underconstrained {
		ds = append(ds, diag.Underconstrained(loc, tv.Name()))
	}
	return ds
}

// Solver infers type parameter bindings at call sites.
type Solver struct {
	u *lattice.Universe
}

func NewSolver(u *lattice.Universe) *Solver {
	return &Solver{u: u}
}

// Infer matches each argument against its parameter type and returns the
// accumulated lower bounds.
func (s *Solver) Infer(sig Signature, args []lattice.Type) *ConstraintSet {
	cs := NewConstraintSet(s.u, sig.TypeParams...)
	for i, arg := range args {
		param, ok := sig.ParamType(i)
		if !ok {
			break
		}
		s.match(cs, param, arg)
	}
	return cs
}

// Substitute replaces the solved type parameters in t.
func (s *Solver) Substitute(t lattice.Type, cs *ConstraintSet) lattice.Type {
	return s.u.Apply(t, cs.Subs())
}

// Solve infers the bindings of sig's type parameters from args, or takes
// them from explicit type arguments when given, and checks every binding
// against its constraint.
func (s *Solver) Solve(sig Signature, args []lattice.Type, explicit []lattice.Type) (Solution, error) {
	cs := NewConstraintSet(s.u, sig.TypeParams...)
	if len(explicit) > 0 {
		if len(explicit) != len(sig.TypeParams) {
			return Solution{}, fmt.Errorf("expected %d type arguments, got %d", len(sig.TypeParams), len(explicit))
		}
		for i, tv := range sig.TypeParams {
			cs.Add(tv, explicit[i])
		}
	} else {
		cs = s.Infer(sig, args)
	}

	inParams := lattice.NewTypeVarSet()
	for _, p := range sig.Params {
		inParams = inParams.Union(lattice.FreeTypeVars(p.Type))
	}

	sol := Solution{Constraints: cs, Subs: lattice.NewSubs()}
	for _, tv := range sig.TypeParams {
		lower, bound := cs.Lower(tv)
		switch {
		case bound && len(explicit) > 0:
			sol.Subs.Add(tv, lower)
		case bound:
			sol.Subs.Add(tv, s.widen(tv, lower))
		case inParams.Contains(tv) && tv.Constraint() != nil:
			// only reachable through an omitted optional argument
			sol.Subs.Add(tv, tv.Constraint())
		case inParams.Contains(tv):
			sol.Subs.Add(tv, lattice.Unknown)
		default:
			sol.Subs.Add(tv, lattice.Unknown)
			sol.Underconstrained = append(sol.Underconstrained, tv)
		}
	}

	for _, tv := range sig.TypeParams {
		if tv.Constraint() == nil {
			continue
		}
		lower, _ := sol.Subs.Get(tv)
		constraint := s.u.Apply(tv.Constraint(), sol.Subs)
		if !s.u.Subtype(lower, constraint) {
			sol.Violations = append(sol.Violations, Violation{
				TypeVar:    tv,
				Lower:      lower,
				Constraint: constraint,
			})
		}
	}

	sol.Signature = sig.Instantiate(s.u, sol.Subs)
	return sol, nil
}

// widen replaces literal members of an inferred binding by their base
// primitive, unless the constraint asks for literal or primitive types.
func (s *Solver) widen(tv *lattice.TypeVar, t lattice.Type) lattice.Type {
	if c := tv.Constraint(); c != nil {
		for _, m := range lattice.Members(c) {
			switch m.Kind() {
			case lattice.KindLiteral, lattice.KindBoolean, lattice.KindNumber, lattice.KindString:
				return t
			}
		}
	}
	members := lattice.Members(t)
	widened := make([]lattice.Type, len(members))
	for i, m := range members {
		if lit, ok := m.(*lattice.Literal); ok {
			widened[i] = lit.Base()
		} else {
			widened[i] = m
		}
	}
	return s.u.Union(widened...)
}

// match walks param and arg in parallel, binding each solved type parameter
// found in param to the corresponding part of arg.
func (s *Solver) match(cs *ConstraintSet, param, arg lattice.Type) {
	if len(lattice.FreeTypeVars(param)) == 0 {
		return
	}
	if tv, ok := param.(*lattice.TypeVar); ok {
		if cs.Has(tv) {
			cs.Add(tv, arg)
		}
		return
	}
	if au, ok := arg.(*lattice.Union); ok && param.Kind() != lattice.KindUnion {
		for _, m := range au.Members() {
			s.match(cs, param, m)
		}
		return
	}

	switch p := param.(type) {
	case *lattice.Union:
		s.matchUnion(cs, p, arg)
	case *lattice.Intersection:
		for _, m := range p.Members() {
			s.match(cs, m, arg)
		}
	case *lattice.Tuple:
		if a, ok := arg.(*lattice.Tuple); ok {
			s.matchTuple(cs, p, a)
		}
	case *lattice.Object:
		for _, pp := range p.Props() {
			if ap, ok := s.u.PropertyOf(arg, pp.Name); ok {
				s.match(cs, pp.Type, ap.Type)
			}
		}
	case *lattice.Function:
		a, ok := arg.(*lattice.Function)
		if !ok {
			return
		}
		for i, pp := range p.Params() {
			if i >= len(a.Params()) {
				break
			}
			s.match(cs, pp.Type, a.Params()[i].Type)
		}
		s.match(cs, p.Return(), a.Return())
	}
}

// matchUnion handles parameters like T | undefined: argument members
// covered by the fixed members are dropped and the rest bind the single
// type parameter member.
func (s *Solver) matchUnion(cs *ConstraintSet, p *lattice.Union, arg lattice.Type) {
	var vars, fixed []lattice.Type
	for _, m := range p.Members() {
		if tv, ok := m.(*lattice.TypeVar); ok && cs.Has(tv) {
			vars = append(vars, m)
		} else {
			fixed = append(fixed, m)
		}
	}
	if len(vars) != 1 {
		return
	}
	rest := s.u.Filter(arg, func(m lattice.Type) bool {
		for _, f := range fixed {
			if s.u.Subtype(m, f) {
				return false
			}
		}
		return true
	})
	if rest != lattice.Never {
		s.match(cs, vars[0], rest)
	}
}

func (s *Solver) matchTuple(cs *ConstraintSet, p, a *lattice.Tuple) {
	for i, ae := range a.Elems() {
		switch {
		case i < len(p.Elems()):
			s.match(cs, p.Elems()[i].Type, ae.Type)
		case p.Rest() != nil:
			s.match(cs, p.Rest(), ae.Type)
		}
	}
	if a.Rest() == nil {
		return
	}
	for _, pe := range p.Elems()[min(len(a.Elems()), len(p.Elems())):] {
		s.match(cs, pe.Type, a.Rest())
	}
	if p.Rest() != nil {
		s.match(cs, p.Rest(), a.Rest())
	}
}
