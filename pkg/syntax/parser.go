// Package syntax parses the compact TypeScript-like notation used by
// program files for types, signatures, conditions, values and calls.
package syntax

//go:generate go tool pigeon -optimize-parser -o notation.peg.go notation.peg

import (
	"fmt"

	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/generic"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
)

// Scope resolves named types such as aliases.
type Scope interface {
	Type(name string) (lattice.Type, bool)
}

// Names is a Scope backed by a map.
type Names map[string]lattice.Type

func (n Names) Type(name string) (lattice.Type, bool) {
	t, ok := n[name]
	return t, ok
}

// Parser parses notation against a universe. Names it cannot find in its
// scope are looked up as declared classes.
type Parser struct {
	u     *lattice.Universe
	scope Scope
	preds guard.Predicates
}

// New creates a Parser. scope and preds may be nil.
func New(u *lattice.Universe, scope Scope, preds guard.Predicates) *Parser {
	if scope == nil {
		scope = Names{}
	}
	if preds == nil {
		preds = guard.PredicateMap{}
	}
	return &Parser{u: u, scope: scope, preds: preds}
}

// Type parses a type expression.
func (p *Parser) Type(src string) (lattice.Type, error) {
	return parse(p, src, "TypeEntry", nil, (*resolver).typ)
}

// TypeIn parses a type expression in which the given type parameters are
// visible.
func (p *Parser) TypeIn(src string, params []*lattice.TypeVar) (lattice.Type, error) {
	vars := map[string]*lattice.TypeVar{}
	for _, tv := range params {
		vars[tv.Name()] = tv
	}
	return parse(p, src, "TypeEntry", vars, (*resolver).typ)
}

// Signature parses a call signature: [<T extends C, ...>](params) => ret.
func (p *Parser) Signature(src string) (generic.Signature, error) {
	return parse(p, src, "SignatureEntry", nil, (*resolver).signature)
}

// Cond parses a branch condition.
func (p *Parser) Cond(src string) (flow.Cond, error) {
	return parse(p, src, "CondEntry", nil, (*resolver).cond)
}

// Expr parses a value: a variable, a property read, new Class, or a type
// standing for a value of that type (literals, null, etc).
func (p *Parser) Expr(src string) (flow.Expr, error) {
	return parse(p, src, "ExprEntry", nil, (*resolver).expr)
}

// Call parses a call expression: f[<T, ...>](args).
func (p *Parser) Call(src string) (flow.CallSite, error) {
	return parse(p, src, "CallEntry", nil, (*resolver).call)
}

// resolver turns one parsed source string into engine values.
type resolver struct {
	*Parser
	src  string
	vars map[string]*lattice.TypeVar
	// offset of the last node visited, for errors raised by the lattice
	pos int
}

func parse[N, T any](p *Parser, src, entry string, vars map[string]*lattice.TypeVar, resolve func(*resolver, N) T) (res T, err error) {
	node, err := Parse("", []byte(src), Entrypoint(entry))
	if err != nil {
		return res, syntaxError(src, err)
	}
	if vars == nil {
		vars = map[string]*lattice.TypeVar{}
	}
	r := &resolver{Parser: p, src: src, vars: vars}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case *Error:
				err = e
			case lattice.ContractViolation:
				err = &Error{Source: src, Pos: r.pos, Msg: e.Msg}
			default:
				panic(e)
			}
		}
	}()
	return resolve(r, node.(N)), nil
}

func (r *resolver) fail(pos int, format string, args ...any) {
	panic(&Error{Source: r.src, Pos: pos, Msg: fmt.Sprintf(format, args...)})
}
