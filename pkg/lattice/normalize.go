package lattice

import (
	"sort"
	"strings"
)

// Union interns the normalized union of ts: nested unions are flattened,
// Never members dropped, duplicates removed, literals absorbed by a present
// base primitive, and true|false collapsed to boolean. An Unknown member
// makes the whole union Unknown. Member order never affects the result.
func (u *Universe) Union(ts ...Type) Type {
	seen := make(map[string]bool, len(ts))
	var flat []Type
	var add func(t Type) bool
	add = func(t Type) bool {
		u.mustCanonical(t)
		switch t.Kind() {
		case KindNever:
			return true
		case KindUnknown:
			return false
		case KindUnion:
			for _, m := range t.(*Union).members {
				if !add(m) {
					return false
				}
			}
			return true
		}
		if !seen[t.Key()] {
			seen[t.Key()] = true
			flat = append(flat, t)
		}
		return true
	}
	for _, t := range ts {
		if !add(t) {
			return Unknown
		}
	}

	hasTrue := seen[u.Literal(true).Key()]
	hasFalse := seen[u.Literal(false).Key()]
	if hasTrue && hasFalse && !seen[Boolean.Key()] {
		seen[Boolean.Key()] = true
		flat = append(flat, Boolean)
	}

	members := flat[:0]
	for _, t := range flat {
		if lit, ok := t.(*Literal); ok && seen[lit.base.Key()] {
			continue
		}
		members = append(members, u.canonical(t))
	}
	return u.unionOf(members)
}

func (u *Universe) unionOf(members []Type) Type {
	switch len(members) {
	case 0:
		return Never
	case 1:
		return members[0]
	}
	sortByKey(members)
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key()
	}
	return u.intern(&Union{
		members: append([]Type(nil), members...),
		key:     "U(" + strings.Join(keys, "|") + ")",
	})
}

// Intersect interns the normalized intersection of ts. Intersections
// distribute over unions, provably disjoint members collapse the result to
// Never, compatible object shapes merge, and a member that is a subtype of
// another absorbs it.
func (u *Universe) Intersect(ts ...Type) Type {
	seen := make(map[string]bool, len(ts))
	var flat []Type
	var add func(t Type) bool
	add = func(t Type) bool {
		u.mustCanonical(t)
		switch t.Kind() {
		case KindUnknown:
			return true
		case KindNever:
			return false
		case KindIntersection:
			for _, m := range t.(*Intersection).members {
				if !add(m) {
					return false
				}
			}
			return true
		}
		if !seen[t.Key()] {
			seen[t.Key()] = true
			flat = append(flat, u.canonical(t))
		}
		return true
	}
	for _, t := range ts {
		if !add(t) {
			return Never
		}
	}

	for i, t := range flat {
		if un, ok := t.(*Union); ok {
			rest := make([]Type, 0, len(flat)-1)
			rest = append(rest, flat[:i]...)
			rest = append(rest, flat[i+1:]...)
			parts := make([]Type, len(un.members))
			for j, m := range un.members {
				parts[j] = u.Intersect(append([]Type{m}, rest...)...)
			}
			return u.Union(parts...)
		}
	}

	members := flat
	for changed := true; changed; {
		changed = false
	pairs:
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				var keep Type
				switch {
				case u.Subtype(a, b):
					keep = a
				case u.Subtype(b, a):
					keep = b
				case u.Disjoint(a, b):
					return Never
				default:
					merged, ok := u.mergeObjects(a, b)
					if !ok {
						continue
					}
					keep = merged
				}
				if keep == Never {
					return Never
				}
				next := make([]Type, 0, len(members)-1)
				next = append(next, members[:i]...)
				next = append(next, keep)
				next = append(next, members[i+1:j]...)
				next = append(next, members[j+1:]...)
				members = next
				changed = true
				break pairs
			}
		}
	}

	switch len(members) {
	case 0:
		return Unknown
	case 1:
		return members[0]
	}
	sortByKey(members)
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key()
	}
	return u.intern(&Intersection{
		members: append([]Type(nil), members...),
		key:     "I(" + strings.Join(keys, "&") + ")",
	})
}

// mergeObjects combines two object shapes whose tags are compatible into
// one shape carrying every property; shared properties meet.
func (u *Universe) mergeObjects(a, b Type) (Type, bool) {
	oa, ok := a.(*Object)
	if !ok {
		return nil, false
	}
	ob, ok := b.(*Object)
	if !ok {
		return nil, false
	}
	tag := oa.tag
	switch {
	case oa.tag == ob.tag:
	case oa.tag == "":
		tag = ob.tag
	case ob.tag == "":
	case u.classes.Extends(oa.tag, ob.tag):
	case u.classes.Extends(ob.tag, oa.tag):
		tag = ob.tag
	default:
		return nil, false
	}

	props := make([]Prop, 0, len(oa.props)+len(ob.props))
	for _, pa := range oa.props {
		pb, shared := ob.Prop(pa.Name)
		if !shared {
			props = append(props, pa)
			continue
		}
		met := u.Intersect(pa.Type, pb.Type)
		if met == Never && !(pa.Optional && pb.Optional) {
			return Never, true
		}
		props = append(props, Prop{
			Name:     pa.Name,
			Type:     met,
			Optional: pa.Optional && pb.Optional,
			Readonly: pa.Readonly && pb.Readonly,
		})
	}
	for _, pb := range ob.props {
		if _, shared := oa.Prop(pb.Name); !shared {
			props = append(props, pb)
		}
	}
	return u.Object(tag, props...), true
}

// Join is the least upper bound of a and b.
func (u *Universe) Join(a, b Type) Type {
	return u.Union(a, b)
}

// Meet is the greatest lower bound of a and b; Never when they are
// provably disjoint.
func (u *Universe) Meet(a, b Type) Type {
	return u.Intersect(a, b)
}

// Normalize returns the canonical node of t in this universe. It is
// idempotent, and re-interns types built by another universe.
func (u *Universe) Normalize(t Type) Type {
	u.mustCanonical(t)
	return u.canonical(t)
}

func (u *Universe) canonical(t Type) Type {
	if existing, ok := u.Lookup(t.Key()); ok {
		return existing
	}
	return u.rebuild(t, func(Type) (Type, bool) { return nil, false })
}

// rebuild reconstructs t bottom-up through this universe's constructors,
// letting replace substitute any node before its children are visited.
func (u *Universe) rebuild(t Type, replace func(Type) (Type, bool)) Type {
	if r, ok := replace(t); ok {
		return r
	}
	switch t := t.(type) {
	case *Primitive:
		return t
	case *Literal:
		return u.Literal(t.value)
	case *Object:
		props := make([]Prop, len(t.props))
		for i, p := range t.props {
			p.Type = u.rebuild(p.Type, replace)
			props[i] = p
		}
		return u.Object(t.tag, props...)
	case *Tuple:
		elems := make([]Elem, len(t.elems))
		for i, e := range t.elems {
			e.Type = u.rebuild(e.Type, replace)
			elems[i] = e
		}
		var rest Type
		if t.rest != nil {
			rest = u.rebuild(t.rest, replace)
		}
		return u.Tuple(elems, rest)
	case *Function:
		params := make([]Param, len(t.params))
		for i, p := range t.params {
			p.Type = u.rebuild(p.Type, replace)
			params[i] = p
		}
		return u.Function(params, u.rebuild(t.ret, replace))
	case *Union:
		members := make([]Type, len(t.members))
		for i, m := range t.members {
			members[i] = u.rebuild(m, replace)
		}
		return u.Union(members...)
	case *Intersection:
		members := make([]Type, len(t.members))
		for i, m := range t.members {
			members[i] = u.rebuild(m, replace)
		}
		return u.Intersect(members...)
	case *TypeVar:
		var constraint Type
		if t.constraint != nil {
			constraint = u.rebuild(t.constraint, replace)
		}
		return u.TypeVar(t.name, constraint)
	}
	panic(violation("unknown type %T", t))
}

// Members returns the members of a union, nothing for Never, and the type
// itself otherwise.
func Members(t Type) []Type {
	switch t.Kind() {
	case KindNever:
		return nil
	case KindUnion:
		return t.(*Union).members
	}
	return []Type{t}
}

// Filter keeps the members of t that satisfy keep.
func (u *Universe) Filter(t Type, keep func(Type) bool) Type {
	var kept []Type
	for _, m := range Members(t) {
		if keep(m) {
			kept = append(kept, m)
		}
	}
	return u.Union(kept...)
}

// Remove drops the member m from t.
func (u *Universe) Remove(t, m Type) Type {
	return u.Filter(t, func(x Type) bool { return x != m })
}

// IsUnit reports whether t has exactly one inhabitant (a literal, null or
// undefined), so equality against it can narrow the false branch.
func IsUnit(t Type) bool {
	switch t.Kind() {
	case KindLiteral, KindNull, KindUndefined:
		return true
	}
	return false
}

func sortByKey(ts []Type) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Key() < ts[j].Key() })
}
