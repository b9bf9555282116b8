package guard

import (
	"fmt"

	"github.com/vito/narrow/pkg/lattice"
)

// Guard is a narrowing predicate observed at a conditional. Guards are a
// closed set; adding one means adding a variant here and a rule in the
// Evaluator.
type Guard interface {
	// Target is the variable the guard narrows.
	Target() string
	fmt.Stringer
	guard()
}

// Ref is a variable reference, optionally through one property access
// (x.kind).
type Ref struct {
	Var  string
	Prop string
}

func (r Ref) String() string {
	if r.Prop == "" {
		return r.Var
	}
	return r.Var + "." + r.Prop
}

// Op is an equality operator.
type Op int

const (
	StrictEq Op = iota
	StrictNe
	LooseEq
	LooseNe
)

func (op Op) String() string {
	switch op {
	case StrictEq:
		return "==="
	case StrictNe:
		return "!=="
	case LooseEq:
		return "=="
	default:
		return "!="
	}
}

// Negated reports whether the operator is an inequality.
func (op Op) Negated() bool {
	return op == StrictNe || op == LooseNe
}

// Loose reports whether the operator is == or !=.
func (op Op) Loose() bool {
	return op == LooseEq || op == LooseNe
}

// ParseOp parses one of ===, !==, == and !=.
func ParseOp(s string) (Op, error) {
	switch s {
	case "===":
		return StrictEq, nil
	case "!==":
		return StrictNe, nil
	case "==":
		return LooseEq, nil
	case "!=":
		return LooseNe, nil
	}
	return 0, fmt.Errorf("unknown equality operator %q", s)
}

// Typeof is typeof v === "tag".
type Typeof struct {
	Var string
	Tag string
}

// Truthy is a bare use of v as a condition.
type Truthy struct {
	Var string
}

// Equality compares a reference against a type (usually a literal, null or
// undefined) or against another variable.
type Equality struct {
	Op   Op
	Left Ref
	// Right is the compared type. When RightVar is set it is looked up in
	// the environment instead.
	Right    lattice.Type
	RightVar string
}

// In is "prop" in v.
type In struct {
	Prop string
	Var  string
}

// InstanceOf is v instanceof Tag.
type InstanceOf struct {
	Var string
	Tag string
}

// Discriminant is v.prop === literal over a discriminated union.
type Discriminant struct {
	Var   string
	Prop  string
	Value lattice.Type
}

// Predicate is a call to a user-defined type predicate fn whose parameter
// at Pos is bound to Var, e.g. isFish(pet) for isFish(pet: Fish | Bird):
// pet is Fish.
type Predicate struct {
	Fn  string
	Pos int
	Var string
}

func (g Typeof) Target() string       { return g.Var }
func (g Truthy) Target() string       { return g.Var }
func (g Equality) Target() string     { return g.Left.Var }
func (g In) Target() string           { return g.Var }
func (g InstanceOf) Target() string   { return g.Var }
func (g Discriminant) Target() string { return g.Var }
func (g Predicate) Target() string    { return g.Var }

func (Typeof) guard()       {}
func (Truthy) guard()       {}
func (Equality) guard()     {}
func (In) guard()           {}
func (InstanceOf) guard()   {}
func (Discriminant) guard() {}
func (Predicate) guard()    {}

func (g Typeof) String() string {
	return fmt.Sprintf("typeof %s === %q", g.Var, g.Tag)
}

func (g Truthy) String() string {
	return g.Var
}

func (g Equality) String() string {
	right := g.RightVar
	if right == "" {
		right = g.Right.String()
	}
	return fmt.Sprintf("%s %s %s", g.Left, g.Op, right)
}

func (g In) String() string {
	return fmt.Sprintf("%q in %s", g.Prop, g.Var)
}

func (g InstanceOf) String() string {
	return fmt.Sprintf("%s instanceof %s", g.Var, g.Tag)
}

func (g Discriminant) String() string {
	return fmt.Sprintf("%s.%s === %s", g.Var, g.Prop, g.Value)
}

func (g Predicate) String() string {
	return fmt.Sprintf("%s(#%d: %s)", g.Fn, g.Pos, g.Var)
}
