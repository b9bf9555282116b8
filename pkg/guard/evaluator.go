package guard

import (
	"log/slog"

	"github.com/vito/narrow/pkg/lattice"
)

// PredicateDecl is the narrowing contract of a user-defined type predicate:
// the parameter at Position is Narrows when the predicate returns true.
type PredicateDecl struct {
	Position int
	Narrows  lattice.Type
}

// Predicates looks up user predicate declarations by function name.
type Predicates interface {
	Predicate(fn string) (PredicateDecl, bool)
}

// PredicateMap is a Predicates backed by a map.
type PredicateMap map[string]PredicateDecl

func (m PredicateMap) Predicate(fn string) (PredicateDecl, bool) {
	decl, ok := m[fn]
	return decl, ok
}

// Env resolves the current type of a variable, used when a guard compares
// two variables.
type Env interface {
	Lookup(name string) (lattice.Type, bool)
}

// Result is the outcome of applying a guard to a type.
type Result struct {
	True  lattice.Type
	False lattice.Type

	// Degraded is set when the guard could not narrow, e.g. a discriminant
	// check over a union that is not discriminated. Both branches then carry
	// the input type.
	Degraded bool
	Reason   string
}

// Evaluator applies guards to types. It only derives new types through its
// universe and never holds per-call state, so one Evaluator can serve
// concurrent passes.
type Evaluator struct {
	u     *lattice.Universe
	preds Predicates
}

func NewEvaluator(u *lattice.Universe, preds Predicates) *Evaluator {
	if preds == nil {
		preds = PredicateMap{}
	}
	return &Evaluator{u: u, preds: preds}
}

// Apply splits current, the type of g's target, into the refinements for
// the branch where g holds and the branch where it does not. env may be nil
// unless g compares two variables.
//
// Both results are always subtypes of current.
func (e *Evaluator) Apply(g Guard, current lattice.Type, env Env) Result {
	var r Result
	switch g := g.(type) {
	case Typeof:
		r = e.typeOf(g, current)
	case Truthy:
		r = e.truthy(current)
	case Equality:
		r = e.equality(g, current, env)
	case In:
		r = e.in(g, current)
	case InstanceOf:
		r = e.instanceOf(g, current)
	case Discriminant:
		r = e.discriminant(current, g.Prop, g.Value)
	case Predicate:
		r = e.predicate(g, current)
	default:
		r = degraded(current, "unsupported guard")
	}
	if r.Degraded {
		slog.Debug("guard degraded", "guard", g.String(), "type", current.String(), "reason", r.Reason)
	}
	return e.monotone(g, current, r)
}

func (e *Evaluator) monotone(g Guard, current lattice.Type, r Result) Result {
	if !e.u.Subtype(r.True, current) {
		slog.Debug("guard widened true branch", "guard", g.String(), "type", current.String(), "result", r.True.String())
		r.True = current
		r.Degraded = true
	}
	if !e.u.Subtype(r.False, current) {
		slog.Debug("guard widened false branch", "guard", g.String(), "type", current.String(), "result", r.False.String())
		r.False = current
		r.Degraded = true
	}
	return r
}

func degraded(current lattice.Type, reason string) Result {
	return Result{True: current, False: current, Degraded: true, Reason: reason}
}

// split partitions the members of t by f, which returns the part of a
// member for each branch (Never to omit it).
func (e *Evaluator) split(t lattice.Type, f func(m lattice.Type) (yes, no lattice.Type)) Result {
	var yes, no []lattice.Type
	for _, m := range lattice.Members(t) {
		y, n := f(m)
		yes = append(yes, y)
		no = append(no, n)
	}
	return Result{True: e.u.Union(yes...), False: e.u.Union(no...)}
}

func (r Result) swap() Result {
	r.True, r.False = r.False, r.True
	return r
}

var typeofTags = map[string]bool{
	"string":    true,
	"number":    true,
	"boolean":   true,
	"undefined": true,
	"object":    true,
	"function":  true,
}

// TypeofTag is the result of typeof for values of t, or "" when it is not
// statically known.
func TypeofTag(t lattice.Type) string {
	switch t.Kind() {
	case lattice.KindNull, lattice.KindObject, lattice.KindTuple:
		return "object"
	case lattice.KindUndefined:
		return "undefined"
	case lattice.KindBoolean:
		return "boolean"
	case lattice.KindNumber:
		return "number"
	case lattice.KindString:
		return "string"
	case lattice.KindFunction:
		return "function"
	case lattice.KindLiteral:
		return TypeofTag(t.(*lattice.Literal).Base())
	case lattice.KindTypeVar:
		if c := t.(*lattice.TypeVar).Constraint(); c != nil {
			return TypeofTag(c)
		}
	case lattice.KindIntersection:
		for _, m := range t.(*lattice.Intersection).Members() {
			if tag := TypeofTag(m); tag != "" {
				return tag
			}
		}
	case lattice.KindUnion:
		tag := ""
		for i, m := range t.(*lattice.Union).Members() {
			mt := TypeofTag(m)
			if i > 0 && mt != tag {
				return ""
			}
			tag = mt
		}
		return tag
	}
	return ""
}

func (e *Evaluator) typeofType(tag string) (lattice.Type, bool) {
	switch tag {
	case "string":
		return lattice.String, true
	case "number":
		return lattice.Number, true
	case "boolean":
		return lattice.Boolean, true
	case "undefined":
		return lattice.Undefined, true
	case "object":
		return e.u.Union(lattice.Null, e.u.Object("")), true
	}
	return nil, false
}

func (e *Evaluator) typeOf(g Typeof, current lattice.Type) Result {
	if !typeofTags[g.Tag] {
		return degraded(current, "unsupported typeof tag "+g.Tag)
	}
	return e.split(current, func(m lattice.Type) (lattice.Type, lattice.Type) {
		switch TypeofTag(m) {
		case g.Tag:
			return m, lattice.Never
		case "":
			if t, ok := e.typeofType(g.Tag); ok {
				return e.u.Meet(m, t), m
			}
			return m, m
		default:
			return lattice.Never, m
		}
	})
}

// truthiness reports whether values of t can be truthy and can be falsy.
func truthiness(t lattice.Type) (canTrue, canFalse bool) {
	switch t.Kind() {
	case lattice.KindNever:
		return false, false
	case lattice.KindNull, lattice.KindUndefined:
		return false, true
	case lattice.KindLiteral:
		falsy := t.(*lattice.Literal).Falsy()
		return !falsy, falsy
	case lattice.KindObject, lattice.KindTuple, lattice.KindFunction:
		return true, false
	case lattice.KindTypeVar:
		if c := t.(*lattice.TypeVar).Constraint(); c != nil {
			return truthiness(c)
		}
	case lattice.KindUnion:
		for _, m := range t.(*lattice.Union).Members() {
			mt, mf := truthiness(m)
			canTrue = canTrue || mt
			canFalse = canFalse || mf
		}
		return canTrue, canFalse
	case lattice.KindIntersection:
		canTrue, canFalse = true, true
		for _, m := range t.(*lattice.Intersection).Members() {
			mt, mf := truthiness(m)
			canTrue = canTrue && mt
			canFalse = canFalse && mf
		}
		return canTrue, canFalse
	}
	// Boolean, Number, String and Unknown: not resolvable statically.
	return true, true
}

func (e *Evaluator) truthy(current lattice.Type) Result {
	return e.split(current, func(m lattice.Type) (lattice.Type, lattice.Type) {
		canTrue, canFalse := truthiness(m)
		yes, no := lattice.Type(lattice.Never), lattice.Type(lattice.Never)
		if canTrue {
			yes = m
		}
		if canFalse {
			no = m
		}
		return yes, no
	})
}

func (e *Evaluator) equality(g Equality, current lattice.Type, env Env) Result {
	right := g.Right
	if g.RightVar != "" {
		if env == nil {
			return degraded(current, "no environment to resolve "+g.RightVar)
		}
		t, ok := env.Lookup(g.RightVar)
		if !ok {
			return degraded(current, "unbound variable "+g.RightVar)
		}
		right = t
	}
	if right == nil {
		return degraded(current, "equality without a right side")
	}
	if g.Op.Loose() && (right == lattice.Null || right == lattice.Undefined) {
		right = e.u.Union(lattice.Null, lattice.Undefined)
	}

	var r Result
	if g.Left.Prop != "" {
		r = e.discriminant(current, g.Left.Prop, right)
	} else {
		r = Result{True: e.u.Meet(current, right), False: e.without(current, right)}
	}
	if g.Op.Negated() {
		r = r.swap()
	}
	return r
}

// without removes the values of right from t, which is only possible when
// right consists of unit types.
func (e *Evaluator) without(t, right lattice.Type) lattice.Type {
	units := lattice.Members(right)
	for _, m := range units {
		if !lattice.IsUnit(m) {
			return t
		}
	}
	excluded := func(m lattice.Type) bool {
		for _, x := range units {
			if m == x {
				return true
			}
		}
		return false
	}
	var kept []lattice.Type
	for _, m := range lattice.Members(t) {
		switch {
		case excluded(m):
		case m == lattice.Boolean:
			// boolean is finite: true | false minus the excluded ones.
			for _, b := range []bool{true, false} {
				if lit := e.u.Literal(b); !excluded(lit) {
					kept = append(kept, lit)
				}
			}
		default:
			kept = append(kept, m)
		}
	}
	return e.u.Union(kept...)
}

func allUnits(t lattice.Type) bool {
	members := lattice.Members(t)
	if len(members) == 0 {
		return false
	}
	for _, m := range members {
		if !lattice.IsUnit(m) {
			return false
		}
	}
	return true
}

// discriminant narrows a discriminated union by the value of its tag
// property. Every member must carry the property typed as unit types;
// otherwise the guard degrades to a no-op.
func (e *Evaluator) discriminant(current lattice.Type, prop string, value lattice.Type) Result {
	if !allUnits(value) {
		return degraded(current, "discriminant value "+value.String()+" is not a literal")
	}
	var yes, no []lattice.Type
	for _, m := range lattice.Members(current) {
		p, ok := e.u.PropertyOf(m, prop)
		if !ok {
			return degraded(current, m.String()+" has no property "+prop)
		}
		field := p.Type
		if p.Optional {
			field = e.u.Union(field, lattice.Undefined)
		}
		if !allUnits(field) {
			return degraded(current, "property "+prop+" of "+m.String()+" is not a literal")
		}
		if e.u.Meet(field, value) != lattice.Never {
			yes = append(yes, m)
		}
		if e.without(field, value) != lattice.Never {
			no = append(no, m)
		}
	}
	return Result{True: e.u.Union(yes...), False: e.u.Union(no...)}
}

func (e *Evaluator) in(g In, current lattice.Type) Result {
	return e.split(current, func(m lattice.Type) (lattice.Type, lattice.Type) {
		switch m.Kind() {
		case lattice.KindUnknown:
			return m, m
		case lattice.KindObject, lattice.KindTuple, lattice.KindFunction,
			lattice.KindIntersection, lattice.KindTypeVar:
			p, ok := e.u.PropertyOf(m, g.Prop)
			switch {
			case !ok && m.Kind() == lattice.KindTypeVar:
				return m, m
			case !ok:
				return lattice.Never, m
			case p.Optional:
				return m, m
			default:
				return m, lattice.Never
			}
		}
		// in on a primitive throws, so it never reaches the true branch.
		return lattice.Never, m
	})
}

func (e *Evaluator) instanceOf(g InstanceOf, current lattice.Type) Result {
	class, ok := e.u.Classes().Class(g.Tag)
	if !ok {
		return degraded(current, "undeclared class "+g.Tag)
	}
	instance := class.Instance
	if instance == nil {
		instance = e.u.Object(g.Tag)
	}
	classes := e.u.Classes()
	return e.split(current, func(m lattice.Type) (lattice.Type, lattice.Type) {
		switch m := m.(type) {
		case *lattice.Object:
			switch {
			case m.Tag() == "":
				return e.u.Meet(m, instance), m
			case classes.Extends(m.Tag(), g.Tag):
				return m, lattice.Never
			case classes.Extends(g.Tag, m.Tag()):
				return instance, m
			default:
				return lattice.Never, m
			}
		case *lattice.Primitive:
			if m == lattice.Unknown {
				return instance, m
			}
			return lattice.Never, m
		case *lattice.Literal:
			return lattice.Never, m
		}
		return e.u.Meet(m, instance), m
	})
}

func (e *Evaluator) predicate(g Predicate, current lattice.Type) Result {
	decl, ok := e.preds.Predicate(g.Fn)
	if !ok {
		return degraded(current, "undeclared predicate "+g.Fn)
	}
	if decl.Position != g.Pos {
		return degraded(current, "predicate "+g.Fn+" does not narrow this argument")
	}
	no := e.u.Filter(current, func(m lattice.Type) bool {
		return !e.u.Subtype(m, decl.Narrows)
	})
	return Result{True: e.narrowTo(current, decl.Narrows), False: no}
}

// narrowTo refines current to target: the members already assignable to
// target if there are any, otherwise the meet of both.
func (e *Evaluator) narrowTo(current, target lattice.Type) lattice.Type {
	assignable := e.u.Filter(current, func(m lattice.Type) bool {
		return e.u.Subtype(m, target)
	})
	if assignable != lattice.Never {
		return assignable
	}
	return e.u.Meet(current, target)
}
