package overload

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"github.com/vito/narrow/pkg/generic"
	"github.com/vito/narrow/pkg/lattice"
)

// ErrIncompatibleImplementation is returned by NewSet when an overload
// signature is not covered by the implementation signature.
var ErrIncompatibleImplementation = stderrors.New("overload signature is not compatible with its implementation")

// Set is an ordered list of call signatures sharing one implementation.
// Declaration order is fixed at construction and decides resolution.
type Set struct {
	Name           string
	Signatures     []generic.Signature
	Implementation generic.Signature
}

// Single wraps a plain function declaration. Its one signature is both the
// callable signature and the implementation.
func Single(name string, sig generic.Signature) *Set {
	return &Set{
		Name:           name,
		Signatures:     []generic.Signature{sig},
		Implementation: sig,
	}
}

// NewSet builds an overload set, checking that the implementation accepts
// everything each overload accepts and returns something compatible. The
// implementation signature itself is not callable.
func NewSet(u *lattice.Universe, name string, sigs []generic.Signature, impl generic.Signature) (*Set, error) {
	if len(sigs) == 0 {
		return Single(name, impl), nil
	}
	for i, sig := range sigs {
		if err := compatible(u, sig, impl); err != nil {
			return nil, errors.Wrapf(err, "%s overload %d %s", name, i+1, sig)
		}
	}
	return &Set{
		Name:           name,
		Signatures:     append([]generic.Signature(nil), sigs...),
		Implementation: impl,
	}, nil
}

// Overloaded reports whether the set declares separate overload signatures.
func (s *Set) Overloaded() bool {
	return len(s.Signatures) > 1 || (len(s.Signatures) == 1 && !sameSignature(s.Signatures[0], s.Implementation))
}

func sameSignature(a, b generic.Signature) bool {
	if len(a.Params) != len(b.Params) || len(a.TypeParams) != len(b.TypeParams) || a.Return != b.Return {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	for i := range a.TypeParams {
		if a.TypeParams[i] != b.TypeParams[i] {
			return false
		}
	}
	return true
}

func compatible(u *lattice.Universe, sig, impl generic.Signature) error {
	lo, hi := sig.Arity()
	implLo, implHi := impl.Arity()
	if implLo > lo {
		return errors.Wrapf(ErrIncompatibleImplementation, "implementation requires %d arguments", implLo)
	}
	if implHi >= 0 && (hi < 0 || hi > implHi) {
		return errors.Wrapf(ErrIncompatibleImplementation, "implementation accepts at most %d arguments", implHi)
	}
	n := len(sig.Params)
	for i := 0; i < n; i++ {
		st, _ := sig.ParamType(i)
		it, ok := impl.ParamType(i)
		if !ok || len(lattice.FreeTypeVars(st)) > 0 || len(lattice.FreeTypeVars(it)) > 0 {
			continue
		}
		if !u.Subtype(st, it) {
			return errors.Wrapf(ErrIncompatibleImplementation, "parameter %d: %s is not assignable to %s", i+1, st, it)
		}
	}
	if len(lattice.FreeTypeVars(sig.Return)) == 0 && len(lattice.FreeTypeVars(impl.Return)) == 0 &&
		!u.Subtype(sig.Return, impl.Return) && !u.Subtype(impl.Return, sig.Return) {
		return errors.Wrapf(ErrIncompatibleImplementation, "return type %s is not compatible with %s", sig.Return, impl.Return)
	}
	return nil
}
