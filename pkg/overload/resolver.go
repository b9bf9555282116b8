package overload

import (
	"fmt"

	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/generic"
	"github.com/vito/narrow/pkg/lattice"
)

// Result is the resolution of one call site.
type Result struct {
	Callee string
	Args   []lattice.Type

	// Index of the chosen signature in declaration order, -1 when the call
	// did not resolve.
	Index int
	// Signature is the chosen signature, instantiated when generic.
	Signature generic.Signature
	// Return is the call's type: the instantiated return type, or Unknown
	// when the call did not resolve.
	Return lattice.Type

	Diagnostics []diag.Diagnostic
}

// Resolved reports whether a signature was chosen.
func (r Result) Resolved() bool {
	return r.Index >= 0
}

// Resolver picks signatures for call sites.
type Resolver struct {
	u      *lattice.Universe
	solver *generic.Solver
}

func NewResolver(u *lattice.Universe) *Resolver {
	return &Resolver{u: u, solver: generic.NewSolver(u)}
}

// attempt is the outcome of checking one signature.
type attempt struct {
	ok  bool
	sig generic.Signature
	sol *generic.Solution
	// badArg is the first argument not assignable to its parameter, or -1
	// for arity and constraint failures.
	badArg int
}

func (r *Resolver) try(sig generic.Signature, args, explicit []lattice.Type) attempt {
	if !sig.Accepts(len(args)) {
		return attempt{badArg: -1}
	}
	if len(explicit) > 0 && len(explicit) != len(sig.TypeParams) {
		return attempt{badArg: -1}
	}
	inst := sig
	var sol *generic.Solution
	if sig.IsGeneric() {
		s, err := r.solver.Solve(sig, args, explicit)
		if err != nil {
			return attempt{badArg: -1}
		}
		sol = &s
		inst = s.Signature
	}
	for i, arg := range args {
		param, _ := inst.ParamType(i)
		if !r.u.Subtype(arg, param) {
			return attempt{sig: inst, sol: sol, badArg: i}
		}
	}
	if sol != nil && !sol.OK() {
		return attempt{sig: inst, sol: sol, badArg: -1}
	}
	return attempt{ok: true, sig: inst, sol: sol, badArg: -1}
}

// Resolve picks the first signature of set, in declaration order, whose
// arity fits args and whose parameters accept every argument type. When
// none does, it reports why: an argument whose union type spans several
// signatures is AmbiguousOverload, anything else NoMatchingOverload. A
// non-overloaded function reports the offending argument or constraint
// instead.
func (r *Resolver) Resolve(set *Set, args []lattice.Type, explicit []lattice.Type, loc diag.Location) Result {
	res := Result{Callee: set.Name, Args: args, Index: -1, Return: lattice.Unknown}

	var first *attempt
	for i, sig := range set.Signatures {
		a := r.try(sig, args, explicit)
		if a.ok {
			res.Index = i
			res.Signature = a.sig
			res.Return = a.sig.Return
			if a.sol != nil {
				res.Diagnostics = a.sol.Diagnostics(loc)
			}
			return res
		}
		if first == nil {
			first = &a
		}
	}

	if !set.Overloaded() && first != nil {
		res.Diagnostics = r.explain(set, *first, args, loc)
		return res
	}

	if candidates, ok := r.ambiguity(set, args, explicit); ok {
		res.Diagnostics = []diag.Diagnostic{diag.Ambiguous(loc, set.Name, args, candidates)}
		return res
	}
	res.Diagnostics = []diag.Diagnostic{diag.NoMatch(loc, set.Name, args, signatureStrings(set.Signatures))}
	return res
}

// explain reports why the only signature of a plain function rejected the
// call.
func (r *Resolver) explain(set *Set, a attempt, args []lattice.Type, loc diag.Location) []diag.Diagnostic {
	switch {
	case a.badArg >= 0:
		param, _ := a.sig.ParamType(a.badArg)
		target := fmt.Sprintf("argument %d of %s", a.badArg+1, set.Name)
		return []diag.Diagnostic{diag.Assignability(loc, target, args[a.badArg], param)}
	case a.sol != nil && !a.sol.OK():
		return a.sol.Diagnostics(loc)
	}
	return []diag.Diagnostic{diag.NoMatch(loc, set.Name, args, signatureStrings(set.Signatures))}
}

// ambiguity reports whether some union-typed argument would resolve if each
// of its members were passed on its own, each member still matching some
// signature but no single signature covering them all.
func (r *Resolver) ambiguity(set *Set, args, explicit []lattice.Type) ([]string, bool) {
	for k, arg := range args {
		members := lattice.Members(arg)
		if len(members) < 2 {
			continue
		}
		matched := map[int]bool{}
		covered := true
		for _, m := range members {
			split := append([]lattice.Type(nil), args...)
			split[k] = m
			idx := -1
			for i, sig := range set.Signatures {
				if r.try(sig, split, explicit).ok {
					idx = i
					break
				}
			}
			if idx < 0 {
				covered = false
				break
			}
			matched[idx] = true
		}
		if !covered || len(matched) < 2 {
			continue
		}
		var candidates []string
		for i, sig := range set.Signatures {
			if matched[i] {
				candidates = append(candidates, sig.String())
			}
		}
		return candidates, true
	}
	return nil, false
}

func signatureStrings(sigs []generic.Signature) []string {
	out := make([]string, len(sigs))
	for i, sig := range sigs {
		out[i] = sig.String()
	}
	return out
}
