package lattice

// Subtype reports whether a <: b. The relation is reflexive and transitive,
// with Never below and Unknown above every type. Answers are memoized.
func (u *Universe) Subtype(a, b Type) bool {
	u.mustCanonical(a)
	u.mustCanonical(b)
	if a == b || a.Key() == b.Key() {
		return true
	}
	pair := typePair{a, b}
	if u.subtypes != nil {
		if ok, hit := u.subtypes.Get(pair); hit {
			return ok
		}
	}
	ok := u.subtype(a, b)
	if u.subtypes != nil {
		u.subtypes.Add(pair, ok)
	}
	return ok
}

func (u *Universe) subtype(a, b Type) bool {
	if a.Key() == b.Key() {
		return true
	}
	switch {
	case a.Kind() == KindNever, b.Kind() == KindUnknown:
		return true
	case a.Kind() == KindUnknown, b.Kind() == KindNever:
		return false
	}

	if ua, ok := a.(*Union); ok {
		for _, m := range ua.members {
			if !u.Subtype(m, b) {
				return false
			}
		}
		return true
	}
	if ib, ok := b.(*Intersection); ok {
		for _, m := range ib.members {
			if !u.Subtype(a, m) {
				return false
			}
		}
		return true
	}
	if tv, ok := a.(*TypeVar); ok {
		if ub, ok := b.(*Union); ok {
			for _, m := range ub.members {
				if u.Subtype(a, m) {
					return true
				}
			}
		}
		return tv.constraint != nil && u.Subtype(tv.constraint, b)
	}
	if ub, ok := b.(*Union); ok {
		for _, m := range ub.members {
			if u.Subtype(a, m) {
				return true
			}
		}
		// a single intersection member may still cover the union
		if ia, ok := a.(*Intersection); ok {
			for _, m := range ia.members {
				if u.Subtype(m, b) {
					return true
				}
			}
		}
		return false
	}
	if ia, ok := a.(*Intersection); ok {
		for _, m := range ia.members {
			if u.Subtype(m, b) {
				return true
			}
		}
		if ob, ok := b.(*Object); ok {
			return u.objectSubtype(a, ob)
		}
		return false
	}
	switch b := b.(type) {
	case *Primitive:
		lit, ok := a.(*Literal)
		return ok && lit.base == b
	case *Object:
		return u.objectSubtype(a, b)
	case *Tuple:
		ta, ok := a.(*Tuple)
		return ok && u.tupleSubtype(ta, b)
	case *Function:
		fa, ok := a.(*Function)
		return ok && u.functionSubtype(fa, b)
	}
	return false
}

// objectSubtype implements width and depth subtyping: every required
// property of b must exist in a with a compatible type and at least the
// same writability. Extra properties in a are permitted.
func (u *Universe) objectSubtype(a Type, b *Object) bool {
	switch a.Kind() {
	case KindNull, KindUndefined:
		return false
	}
	if b.tag != "" {
		oa, ok := a.(*Object)
		if !ok || oa.tag == "" || !u.classes.Extends(oa.tag, b.tag) {
			return false
		}
	}
	for _, pb := range b.props {
		pa, ok := u.PropertyOf(a, pb.Name)
		if !ok {
			if pb.Optional {
				continue
			}
			return false
		}
		if pa.Optional && !pb.Optional {
			return false
		}
		if pa.Readonly && !pb.Readonly {
			return false
		}
		if !u.Subtype(pa.Type, pb.Type) {
			return false
		}
	}
	return true
}

func (u *Universe) tupleSubtype(a, b *Tuple) bool {
	for i, eb := range b.elems {
		if i < len(a.elems) {
			ea := a.elems[i]
			if ea.Optional && !eb.Optional {
				return false
			}
			if !u.Subtype(ea.Type, eb.Type) {
				return false
			}
			continue
		}
		// a may be shorter than b: only optional positions may be missing
		if !eb.Optional {
			return false
		}
		if a.rest != nil && !u.Subtype(a.rest, eb.Type) {
			return false
		}
	}
	for _, ea := range a.elems[min(len(a.elems), len(b.elems)):] {
		if b.rest == nil || !u.Subtype(ea.Type, b.rest) {
			return false
		}
	}
	if a.rest != nil {
		return b.rest != nil && u.Subtype(a.rest, b.rest)
	}
	return true
}

// functionSubtype: parameters are contravariant, returns covariant, and a
// function taking fewer parameters may stand in for one taking more. A
// target returning undefined (void) accepts any return.
func (u *Universe) functionSubtype(a, b *Function) bool {
	required := 0
	for _, p := range a.params {
		if !p.Optional && !p.Rest {
			required++
		}
	}
	bHasRest := len(b.params) > 0 && b.params[len(b.params)-1].Rest
	if required > len(b.params) && !bHasRest {
		return false
	}
	for i, pa := range a.params {
		if i >= len(b.params) {
			break
		}
		pb := b.params[i]
		if !u.Subtype(paramElem(pb), paramElem(pa)) {
			return false
		}
	}
	if b.ret == Undefined {
		return true
	}
	return u.Subtype(a.ret, b.ret)
}

func paramElem(p Param) Type {
	if p.Rest {
		if t, ok := p.Type.(*Tuple); ok && t.rest != nil {
			return t.rest
		}
	}
	return p.Type
}

// PropertyOf returns the property name of t as seen by structural checks.
// Strings, tuples and arrays expose length: number; a union has a property
// only if every member has it.
func (u *Universe) PropertyOf(t Type, name string) (Prop, bool) {
	switch t := t.(type) {
	case *Object:
		return t.Prop(name)
	case *Tuple:
		if name == "length" {
			return Prop{Name: name, Type: Number}, true
		}
	case *Literal:
		if t.base == String && name == "length" {
			return Prop{Name: name, Type: u.Literal(float64(len([]rune(t.value.(string)))))}, true
		}
	case *Primitive:
		if t == String && name == "length" {
			return Prop{Name: name, Type: Number}, true
		}
	case *TypeVar:
		if t.constraint != nil {
			return u.PropertyOf(t.constraint, name)
		}
	case *Intersection:
		var found []Prop
		for _, m := range t.members {
			if p, ok := u.PropertyOf(m, name); ok {
				found = append(found, p)
			}
		}
		if len(found) == 0 {
			return Prop{}, false
		}
		merged := found[0]
		for _, p := range found[1:] {
			merged.Type = u.Intersect(merged.Type, p.Type)
			merged.Optional = merged.Optional && p.Optional
			merged.Readonly = merged.Readonly && p.Readonly
		}
		return merged, true
	case *Union:
		var types []Type
		merged := Prop{Name: name}
		for _, m := range t.members {
			p, ok := u.PropertyOf(m, name)
			if !ok {
				return Prop{}, false
			}
			types = append(types, p.Type)
			merged.Optional = merged.Optional || p.Optional
			merged.Readonly = merged.Readonly || p.Readonly
		}
		merged.Type = u.Union(types...)
		return merged, true
	}
	return Prop{}, false
}

// Keys returns the union of string literals naming the properties of t
// (keyof), or Never when t has none.
func (u *Universe) Keys(t Type) Type {
	obj, ok := t.(*Object)
	if !ok {
		return Never
	}
	keys := make([]Type, len(obj.props))
	for i, p := range obj.props {
		keys[i] = u.Literal(p.Name)
	}
	return u.Union(keys...)
}

type category uint8

const (
	catUnknown category = iota
	catNull
	catUndefined
	catBoolean
	catNumber
	catString
	catObject
)

func categoryOf(t Type) category {
	switch t.Kind() {
	case KindNull:
		return catNull
	case KindUndefined:
		return catUndefined
	case KindBoolean:
		return catBoolean
	case KindNumber:
		return catNumber
	case KindString:
		return catString
	case KindObject, KindTuple, KindFunction:
		return catObject
	case KindLiteral:
		return categoryOf(t.(*Literal).base)
	case KindTypeVar:
		if c := t.(*TypeVar).constraint; c != nil && c.Kind() != KindUnion {
			return categoryOf(c)
		}
	}
	return catUnknown
}

// Disjoint reports whether a and b provably share no inhabitant: distinct
// primitive categories, distinct literals, objects that disagree on a
// required property, or fixed tuples of different lengths.
func (u *Universe) Disjoint(a, b Type) bool {
	if a.Key() == b.Key() {
		return a.Kind() == KindNever
	}
	if a.Kind() == KindNever || b.Kind() == KindNever {
		return true
	}
	if a.Kind() == KindUnion || b.Kind() == KindUnion {
		for _, ma := range Members(a) {
			for _, mb := range Members(b) {
				if !u.Disjoint(ma, mb) {
					return false
				}
			}
		}
		return true
	}
	// strings carry length, so a shape may hold a primitive
	if u.Subtype(a, b) || u.Subtype(b, a) {
		return false
	}
	ca, cb := categoryOf(a), categoryOf(b)
	if ca != catUnknown && cb != catUnknown && ca != cb {
		return true
	}
	if _, ok := a.(*Literal); ok {
		if _, ok := b.(*Literal); ok {
			return true
		}
	}
	oa, aObj := a.(*Object)
	ob, bObj := b.(*Object)
	if aObj && bObj {
		for _, pa := range oa.props {
			pb, ok := ob.Prop(pa.Name)
			if !ok || pa.Optional || pb.Optional {
				continue
			}
			if u.Disjoint(pa.Type, pb.Type) {
				return true
			}
		}
		return false
	}
	ta, aTup := a.(*Tuple)
	tb, bTup := b.(*Tuple)
	if aTup && bTup {
		if ta.rest == nil && tb.rest == nil && fixedLen(ta) && fixedLen(tb) && len(ta.elems) != len(tb.elems) {
			return true
		}
		for i := 0; i < min(len(ta.elems), len(tb.elems)); i++ {
			ea, eb := ta.elems[i], tb.elems[i]
			if !ea.Optional && !eb.Optional && u.Disjoint(ea.Type, eb.Type) {
				return true
			}
		}
	}
	return false
}

func fixedLen(t *Tuple) bool {
	for _, e := range t.elems {
		if e.Optional {
			return false
		}
	}
	return true
}
