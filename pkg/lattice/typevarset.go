package lattice

import "sort"

// TypeVarSet represents a set of type parameters
type TypeVarSet map[*TypeVar]bool

// NewTypeVarSet creates a new TypeVarSet
func NewTypeVarSet(tvs ...*TypeVar) TypeVarSet {
	set := make(TypeVarSet)
	for _, tv := range tvs {
		set[tv] = true
	}
	return set
}

// Union returns the union of two TypeVarSets
func (tvs TypeVarSet) Union(other TypeVarSet) TypeVarSet {
	result := make(TypeVarSet, len(tvs)+len(other))
	for tv := range tvs {
		result[tv] = true
	}
	for tv := range other {
		result[tv] = true
	}
	return result
}

func (tvs TypeVarSet) Contains(tv *TypeVar) bool {
	return tvs[tv]
}

func (tvs TypeVarSet) Add(tv *TypeVar) {
	tvs[tv] = true
}

func (tvs TypeVarSet) Remove(tv *TypeVar) {
	delete(tvs, tv)
}

// ToSlice converts the set to a slice ordered by name.
func (tvs TypeVarSet) ToSlice() []*TypeVar {
	result := make([]*TypeVar, 0, len(tvs))
	for tv := range tvs {
		result = append(result, tv)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].name < result[j].name })
	return result
}
