package lattice

import "sort"

// Subs maps type parameters to the types they are instantiated with.
type Subs map[*TypeVar]Type

// NewSubs creates an empty substitution.
func NewSubs() Subs {
	return make(Subs)
}

// Add records a binding and returns the substitution.
func (s Subs) Add(tv *TypeVar, t Type) Subs {
	s[tv] = t
	return s
}

// Get returns the binding of tv.
func (s Subs) Get(tv *TypeVar) (Type, bool) {
	t, ok := s[tv]
	return t, ok
}

// Substitution is a single binding.
type Substitution struct {
	Tv *TypeVar
	T  Type
}

// Iter returns the bindings ordered by type parameter name.
func (s Subs) Iter() []Substitution {
	result := make([]Substitution, 0, len(s))
	for tv, t := range s {
		result = append(result, Substitution{Tv: tv, T: t})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Tv.name < result[j].Tv.name })
	return result
}

// Apply replaces every bound type parameter occurring in t. Unbound
// parameters are left in place.
func (u *Universe) Apply(t Type, subs Subs) Type {
	if len(subs) == 0 {
		return u.Normalize(t)
	}
	return u.rebuild(t, func(n Type) (Type, bool) {
		tv, ok := n.(*TypeVar)
		if !ok {
			return nil, false
		}
		r, ok := subs[tv]
		return r, ok
	})
}

// FreeTypeVars returns the type parameters occurring in t, including inside
// constraints.
func FreeTypeVars(t Type) TypeVarSet {
	set := NewTypeVarSet()
	collectTypeVars(t, set)
	return set
}

func collectTypeVars(t Type, set TypeVarSet) {
	switch t := t.(type) {
	case *TypeVar:
		if set.Contains(t) {
			return
		}
		set.Add(t)
		if t.constraint != nil {
			collectTypeVars(t.constraint, set)
		}
	case *Object:
		for _, p := range t.props {
			collectTypeVars(p.Type, set)
		}
	case *Tuple:
		for _, e := range t.elems {
			collectTypeVars(e.Type, set)
		}
		if t.rest != nil {
			collectTypeVars(t.rest, set)
		}
	case *Function:
		for _, p := range t.params {
			collectTypeVars(p.Type, set)
		}
		collectTypeVars(t.ret, set)
	case *Union:
		for _, m := range t.members {
			collectTypeVars(m, set)
		}
	case *Intersection:
		for _, m := range t.members {
			collectTypeVars(m, set)
		}
	}
}
