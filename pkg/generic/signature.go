package generic

import (
	"fmt"
	"strings"

	"github.com/vito/narrow/pkg/lattice"
)

// Signature is a call signature, generic when it declares type parameters.
type Signature struct {
	TypeParams []*lattice.TypeVar
	Params     []lattice.Param
	Return     lattice.Type
}

// IsGeneric reports whether the signature declares type parameters.
func (sig Signature) IsGeneric() bool {
	return len(sig.TypeParams) > 0
}

// Arity returns the minimum and maximum number of arguments accepted. max
// is -1 when the last parameter is a rest parameter.
func (sig Signature) Arity() (min, max int) {
	for _, p := range sig.Params {
		switch {
		case p.Rest:
			return min, -1
		case !p.Optional:
			min++
		}
	}
	return min, len(sig.Params)
}

// Accepts reports whether n arguments fit the signature's arity.
func (sig Signature) Accepts(n int) bool {
	min, max := sig.Arity()
	return n >= min && (max < 0 || n <= max)
}

// ParamType returns the type expected for the argument at position i,
// looking through a trailing rest parameter.
func (sig Signature) ParamType(i int) (lattice.Type, bool) {
	if i < 0 {
		return nil, false
	}
	for j, p := range sig.Params {
		if p.Rest {
			if t, ok := p.Type.(*lattice.Tuple); ok && t.Rest() != nil {
				if i-j < len(t.Elems()) {
					return t.Elems()[i-j].Type, true
				}
				return t.Rest(), true
			}
			return p.Type, true
		}
		if j == i {
			return p.Type, true
		}
	}
	return nil, false
}

// Type is the signature as a function type, without its type parameters.
func (sig Signature) Type(u *lattice.Universe) lattice.Type {
	return u.Function(sig.Params, sig.Return)
}

func (sig Signature) String() string {
	var sb strings.Builder
	if len(sig.TypeParams) > 0 {
		decls := make([]string, len(sig.TypeParams))
		for i, tv := range sig.TypeParams {
			decls[i] = tv.Declaration()
		}
		sb.WriteString("<" + strings.Join(decls, ", ") + ">")
	}
	fmt.Fprintf(&sb, "(%s) => %s", lattice.FormatParams(sig.Params), sig.Return)
	return sb.String()
}

// Instantiate substitutes subs throughout the signature. The result has no
// type parameters left for the bound ones.
func (sig Signature) Instantiate(u *lattice.Universe, subs lattice.Subs) Signature {
	var free []*lattice.TypeVar
	for _, tv := range sig.TypeParams {
		if _, bound := subs.Get(tv); !bound {
			free = append(free, tv)
		}
	}
	params := make([]lattice.Param, len(sig.Params))
	for i, p := range sig.Params {
		p.Type = u.Apply(p.Type, subs)
		params[i] = p
	}
	return Signature{
		TypeParams: free,
		Params:     params,
		Return:     u.Apply(sig.Return, subs),
	}
}
