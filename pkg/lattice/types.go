package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Type.
type Kind uint8

const (
	KindNever Kind = iota
	KindUnknown
	KindNull
	KindUndefined
	KindBoolean
	KindNumber
	KindString
	KindLiteral
	KindObject
	KindTuple
	KindFunction
	KindUnion
	KindIntersection
	KindTypeVar
)

var kindNames = [...]string{
	KindNever:        "never",
	KindUnknown:      "unknown",
	KindNull:         "null",
	KindUndefined:    "undefined",
	KindBoolean:      "boolean",
	KindNumber:       "number",
	KindString:       "string",
	KindLiteral:      "literal",
	KindObject:       "object",
	KindTuple:        "tuple",
	KindFunction:     "function",
	KindUnion:        "union",
	KindIntersection: "intersection",
	KindTypeVar:      "typevar",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Type is a node in the lattice. Types are immutable and interned by a
// Universe: two types are structurally equal exactly when they are the same
// node, so Eq is an identity comparison.
type Type interface {
	Kind() Kind
	// Key is the canonical structural key the type is interned under.
	Key() string
	Name() string
	Eq(Type) bool
	fmt.Stringer

	sealed()
}

// Primitive is one of the built-in atomic types.
type Primitive struct {
	kind Kind
}

var (
	Never     Type = &Primitive{KindNever}
	Unknown   Type = &Primitive{KindUnknown}
	Null      Type = &Primitive{KindNull}
	Undefined Type = &Primitive{KindUndefined}
	Boolean   Type = &Primitive{KindBoolean}
	Number    Type = &Primitive{KindNumber}
	String    Type = &Primitive{KindString}
)

var primitives = []Type{Never, Unknown, Null, Undefined, Boolean, Number, String}

func (p *Primitive) Kind() Kind { return p.kind }
func (p *Primitive) Key() string { return p.kind.String() }
func (p *Primitive) Name() string { return p.kind.String() }
func (p *Primitive) String() string { return p.kind.String() }
func (p *Primitive) Eq(other Type) bool { return Type(p) == other }
func (p *Primitive) sealed() {}

// Literal is a unit type: a single string, number or boolean value.
type Literal struct {
	base  Type
	value any
	key   string
}

// Base returns the primitive the literal widens to.
func (l *Literal) Base() Type { return l.base }

// Value returns the literal's value: a string, float64 or bool.
func (l *Literal) Value() any { return l.value }

func (l *Literal) Kind() Kind { return KindLiteral }
func (l *Literal) Key() string { return l.key }
func (l *Literal) Name() string { return l.String() }
func (l *Literal) Eq(other Type) bool { return Type(l) == other }
func (l *Literal) sealed() {}

func (l *Literal) String() string {
	return formatLiteralValue(l.value)
}

// Falsy reports whether the literal is one of JavaScript's falsy values.
func (l *Literal) Falsy() bool {
	switch v := l.value.(type) {
	case bool:
		return !v
	case float64:
		return v == 0 || v != v
	case string:
		return v == ""
	}
	return false
}

func formatLiteralValue(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Prop is a property of an object shape.
type Prop struct {
	Name     string
	Type     Type
	Optional bool
	Readonly bool
}

// Object is a structural object shape, optionally carrying a nominal class
// tag used by instanceof narrowing.
type Object struct {
	props []Prop // sorted by name
	tag   string
	key   string
}

// Props returns the object's properties sorted by name.
func (o *Object) Props() []Prop { return o.props }

// Tag returns the nominal class tag, or "" for a plain shape.
func (o *Object) Tag() string { return o.tag }

// Prop looks up a property by name.
func (o *Object) Prop(name string) (Prop, bool) {
	for _, p := range o.props {
		if p.Name == name {
			return p, true
		}
	}
	return Prop{}, false
}

func (o *Object) Kind() Kind { return KindObject }
func (o *Object) Key() string { return o.key }
func (o *Object) Name() string { return o.String() }
func (o *Object) Eq(other Type) bool { return Type(o) == other }
func (o *Object) sealed() {}

func (o *Object) String() string {
	if o.tag != "" {
		return o.tag
	}
	if len(o.props) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, p := range o.props {
		if i > 0 {
			b.WriteString("; ")
		}
		if p.Readonly {
			b.WriteString("readonly ")
		}
		b.WriteString(p.Name)
		if p.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(p.Type.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Elem is a positional tuple element.
type Elem struct {
	Type     Type
	Optional bool
}

// Tuple is a fixed sequence of elements with an optional rest element type.
// An array T[] is a Tuple with no elements and rest T.
type Tuple struct {
	elems []Elem
	rest  Type
	key   string
}

func (t *Tuple) Elems() []Elem { return t.elems }

// Rest returns the rest element type, or nil.
func (t *Tuple) Rest() Type { return t.rest }

// IsArray reports whether the tuple is a plain array type.
func (t *Tuple) IsArray() bool { return len(t.elems) == 0 && t.rest != nil }

func (t *Tuple) Kind() Kind { return KindTuple }
func (t *Tuple) Key() string { return t.key }
func (t *Tuple) Name() string { return t.String() }
func (t *Tuple) Eq(other Type) bool { return Type(t) == other }
func (t *Tuple) sealed() {}

func (t *Tuple) String() string {
	if t.IsArray() {
		return wrapComposite(t.rest) + "[]"
	}
	parts := make([]string, 0, len(t.elems)+1)
	for _, e := range t.elems {
		s := e.Type.String()
		if e.Optional {
			s += "?"
		}
		parts = append(parts, s)
	}
	if t.rest != nil {
		parts = append(parts, "..."+wrapComposite(t.rest)+"[]")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Param is a function parameter.
type Param struct {
	Name     string
	Type     Type
	Optional bool
	// Rest marks a trailing rest parameter; its Type is the array type.
	Rest bool
}

// Function is a call signature type.
type Function struct {
	params []Param
	ret    Type
	key    string
}

func (f *Function) Params() []Param { return f.params }
func (f *Function) Return() Type { return f.ret }

func (f *Function) Kind() Kind { return KindFunction }
func (f *Function) Key() string { return f.key }
func (f *Function) Name() string { return f.String() }
func (f *Function) Eq(other Type) bool { return Type(f) == other }
func (f *Function) sealed() {}

func (f *Function) String() string {
	return fmt.Sprintf("(%s) => %s", FormatParams(f.params), f.ret)
}

// FormatParams renders a parameter list the way it is written in a
// signature.
func FormatParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		switch {
		case p.Rest:
			parts[i] = fmt.Sprintf("...%s: %s", name, p.Type)
		case p.Optional:
			parts[i] = fmt.Sprintf("%s?: %s", name, p.Type)
		default:
			parts[i] = fmt.Sprintf("%s: %s", name, p.Type)
		}
	}
	return strings.Join(parts, ", ")
}

// Union is a normalized union: flattened, deduplicated, at least two
// members, sorted by key.
type Union struct {
	members []Type
	key     string
}

func (u *Union) Members() []Type { return u.members }

func (u *Union) Kind() Kind { return KindUnion }
func (u *Union) Key() string { return u.key }
func (u *Union) Name() string { return u.String() }
func (u *Union) Eq(other Type) bool { return Type(u) == other }
func (u *Union) sealed() {}

func (u *Union) String() string {
	parts := make([]string, len(u.members))
	for i, m := range u.members {
		parts[i] = wrapFunction(m)
	}
	return strings.Join(parts, " | ")
}

// Intersection is a normalized intersection of at least two members that
// could not be merged or proven disjoint.
type Intersection struct {
	members []Type
	key     string
}

func (i *Intersection) Members() []Type { return i.members }

func (i *Intersection) Kind() Kind { return KindIntersection }
func (i *Intersection) Key() string { return i.key }
func (i *Intersection) Name() string { return i.String() }
func (i *Intersection) Eq(other Type) bool { return Type(i) == other }
func (i *Intersection) sealed() {}

func (i *Intersection) String() string {
	parts := make([]string, len(i.members))
	for j, m := range i.members {
		parts[j] = wrapComposite(m)
	}
	return strings.Join(parts, " & ")
}

// TypeVar is a generic type parameter with an optional upper-bound
// constraint.
type TypeVar struct {
	name       string
	constraint Type
	key        string
}

func (tv *TypeVar) Constraint() Type { return tv.constraint }

func (tv *TypeVar) Kind() Kind { return KindTypeVar }
func (tv *TypeVar) Key() string { return tv.key }
func (tv *TypeVar) Name() string { return tv.name }
func (tv *TypeVar) String() string { return tv.name }
func (tv *TypeVar) Eq(other Type) bool { return Type(tv) == other }
func (tv *TypeVar) sealed() {}

// Declaration renders the type parameter as declared, e.g. "T extends { length: number }".
func (tv *TypeVar) Declaration() string {
	if tv.constraint == nil {
		return tv.name
	}
	return fmt.Sprintf("%s extends %s", tv.name, tv.constraint)
}

func wrapComposite(t Type) string {
	switch t.Kind() {
	case KindUnion, KindIntersection, KindFunction:
		return "(" + t.String() + ")"
	}
	return t.String()
}

func wrapFunction(t Type) string {
	if t.Kind() == KindFunction {
		return "(" + t.String() + ")"
	}
	return t.String()
}
