package diag

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/vito/narrow/pkg/lattice"
)

// Kind classifies an analysis finding.
type Kind int

const (
	NonExhaustiveMatch Kind = iota + 1
	AmbiguousOverload
	NoMatchingOverload
	ConstraintViolation
	UnderconstrainedTypeVar
	AssignabilityError
	AnalysisBudgetExceeded
)

var kindNames = map[Kind]string{
	NonExhaustiveMatch:      "NonExhaustiveMatch",
	AmbiguousOverload:       "AmbiguousOverload",
	NoMatchingOverload:      "NoMatchingOverload",
	ConstraintViolation:     "ConstraintViolation",
	UnderconstrainedTypeVar: "UnderconstrainedTypeVar",
	AssignabilityError:      "AssignabilityError",
	AnalysisBudgetExceeded:  "AnalysisBudgetExceeded",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code is the stable snake_case identifier of the kind, e.g.
// "non_exhaustive_match".
func (k Kind) Code() string {
	return strcase.ToSnake(k.String())
}

// KindFromCode parses a Code back into a Kind.
func KindFromCode(code string) (Kind, bool) {
	for k, name := range kindNames {
		if strcase.ToSnake(name) == code || name == code {
			return k, true
		}
	}
	return 0, false
}

// Severity orders findings for presentation and strict mode.
type Severity int

const (
	Advisory Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Advisory:
		return "advisory"
	case Warning:
		return "warning"
	default:
		return "error"
	}
}

// Severity of a kind. Non-exhaustive matches are warnings and
// underconstrained type parameters advisories; callers in strict mode
// promote both.
func (k Kind) Severity() Severity {
	switch k {
	case NonExhaustiveMatch:
		return Warning
	case UnderconstrainedTypeVar:
		return Advisory
	}
	return Error
}

// Location attributes a finding to a CFG node of a function. Translating
// it into a source span is up to the caller.
type Location struct {
	Function string `json:"function"`
	Node     int    `json:"node"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s#%d", l.Function, l.Node)
}

// Diagnostic is a recoverable analysis finding.
type Diagnostic struct {
	Kind     Kind
	Location Location
	Message  string
	Payload  Payload
}

func (d Diagnostic) Severity() Severity {
	return d.Kind.Severity()
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Kind.Code(), d.Message)
}

// Payload carries the kind-specific data of a diagnostic.
type Payload interface {
	payload()
}

type NonExhaustivePayload struct {
	Residual lattice.Type
}

type OverloadPayload struct {
	Callee     string
	Args       []lattice.Type
	Candidates []string
}

type ConstraintPayload struct {
	TypeVar    string
	Lower      lattice.Type
	Constraint lattice.Type
}

type UnderconstrainedPayload struct {
	TypeVar string
}

type AssignabilityPayload struct {
	// Target is the variable or parameter being assigned.
	Target   string
	Source   lattice.Type
	Declared lattice.Type
}

type BudgetPayload struct {
	Nodes int
	Limit int
}

func (NonExhaustivePayload) payload()    {}
func (OverloadPayload) payload()         {}
func (ConstraintPayload) payload()       {}
func (UnderconstrainedPayload) payload() {}
func (AssignabilityPayload) payload()    {}
func (BudgetPayload) payload()           {}

func NonExhaustive(loc Location, residual lattice.Type) Diagnostic {
	return Diagnostic{
		Kind:     NonExhaustiveMatch,
		Location: loc,
		Message:  fmt.Sprintf("switch is not exhaustive: %s is not handled", residual),
		Payload:  NonExhaustivePayload{Residual: residual},
	}
}

func Ambiguous(loc Location, callee string, args []lattice.Type, candidates []string) Diagnostic {
	return Diagnostic{
		Kind:     AmbiguousOverload,
		Location: loc,
		Message: fmt.Sprintf("call %s(%s) is ambiguous: a union argument spans overloads %s",
			callee, joinTypes(args), strings.Join(candidates, ", ")),
		Payload: OverloadPayload{Callee: callee, Args: args, Candidates: candidates},
	}
}

func NoMatch(loc Location, callee string, args []lattice.Type, candidates []string) Diagnostic {
	return Diagnostic{
		Kind:     NoMatchingOverload,
		Location: loc,
		Message:  fmt.Sprintf("no overload of %s matches (%s)", callee, joinTypes(args)),
		Payload:  OverloadPayload{Callee: callee, Args: args, Candidates: candidates},
	}
}

func Constraint(loc Location, typeVar string, lower, constraint lattice.Type) Diagnostic {
	return Diagnostic{
		Kind:     ConstraintViolation,
		Location: loc,
		Message:  fmt.Sprintf("type %s inferred for %s does not satisfy the constraint %s", lower, typeVar, constraint),
		Payload:  ConstraintPayload{TypeVar: typeVar, Lower: lower, Constraint: constraint},
	}
}

func Underconstrained(loc Location, typeVar string) Diagnostic {
	return Diagnostic{
		Kind:     UnderconstrainedTypeVar,
		Location: loc,
		Message:  fmt.Sprintf("type parameter %s cannot be inferred from the arguments; using unknown", typeVar),
		Payload:  UnderconstrainedPayload{TypeVar: typeVar},
	}
}

func Assignability(loc Location, target string, source, declared lattice.Type) Diagnostic {
	return Diagnostic{
		Kind:     AssignabilityError,
		Location: loc,
		Message:  fmt.Sprintf("type %s is not assignable to %s (declared %s)", source, target, declared),
		Payload:  AssignabilityPayload{Target: target, Source: source, Declared: declared},
	}
}

func Budget(loc Location, nodes, limit int) Diagnostic {
	return Diagnostic{
		Kind:     AnalysisBudgetExceeded,
		Location: loc,
		Message:  fmt.Sprintf("function has %d CFG nodes, exceeding the limit of %d", nodes, limit),
		Payload:  BudgetPayload{Nodes: nodes, Limit: limit},
	}
}

func joinTypes(ts []lattice.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
