package program

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/lattice"
)

// Stmt is one statement of a body. The keyword key present decides its
// kind:
//
//	- let: x            # optional type and value
//	- assign: x         # value, or call
//	- call: f(a, b)     # with let or assign to keep the result
//	- if: cond          # then, else
//	- while: cond       # do
//	- switch: s.kind    # cases, default
//	- return: x         # value optional
//	- throw: x
//	- break
//	- continue
type Stmt struct {
	Let    string `yaml:"let"`
	Assign string `yaml:"assign"`
	Type   string `yaml:"type"`
	Value  string `yaml:"value"`
	Call   string `yaml:"call"`

	If   string `yaml:"if"`
	Then []Stmt `yaml:"then"`
	Else []Stmt `yaml:"else"`

	While string `yaml:"while"`
	Do    []Stmt `yaml:"do"`

	Switch  string   `yaml:"switch"`
	Cases   []Clause `yaml:"cases"`
	Default []Stmt   `yaml:"default"`

	Return string `yaml:"return"`
	Throw  string `yaml:"throw"`

	Line int    `yaml:"-"`
	keys []string
}

// Clause is a switch case.
type Clause struct {
	Case []string `yaml:"case"`
	Do   []Stmt   `yaml:"do"`
}

var keywords = []string{"if", "while", "switch", "call", "let", "assign", "return", "throw", "break", "continue"}

// UnmarshalYAML accepts a mapping, or a bare keyword scalar such as break.
func (s *Stmt) UnmarshalYAML(node *yaml.Node) error {
	s.Line = node.Line
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Value {
		case "break", "continue", "return":
			s.keys = []string{node.Value}
			return nil
		}
		return fmt.Errorf("line %d: unknown statement %q", node.Line, node.Value)
	case yaml.MappingNode:
		type raw Stmt
		if err := node.Decode((*raw)(s)); err != nil {
			return err
		}
		s.Line = node.Line
		for i := 0; i+1 < len(node.Content); i += 2 {
			s.keys = append(s.keys, node.Content[i].Value)
		}
		return nil
	}
	return fmt.Errorf("line %d: a statement must be a mapping or a keyword", node.Line)
}

func (s Stmt) has(key string) bool {
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Kind is the statement keyword.
func (s Stmt) Kind() (string, error) {
	var found []string
	for _, kw := range keywords {
		if s.has(kw) {
			found = append(found, kw)
		}
	}
	switch {
	case len(found) == 0:
		return "", fmt.Errorf("line %d: statement has none of %s", s.Line, strings.Join(keywords, ", "))
	case len(found) == 1:
		return found[0], nil
	}
	// call combines with let or assign to bind its result
	sort.Strings(found)
	if len(found) == 2 && found[0] == "assign" && found[1] == "call" || len(found) == 2 && found[0] == "call" && found[1] == "let" {
		return "call", nil
	}
	return "", fmt.Errorf("line %d: statement mixes %s", s.Line, strings.Join(found, " and "))
}

type bodyLoader struct {
	*loader
	typeParams []*lattice.TypeVar
}

func (bl *bodyLoader) stmts(b *flow.Builder, ss []Stmt) error {
	for _, s := range ss {
		if err := bl.stmt(b, s); err != nil {
			return err
		}
	}
	return nil
}

// nested builds a block inside a Builder callback, keeping the first error.
func (bl *bodyLoader) nested(ss []Stmt, errp *error) func(*flow.Builder) {
	return func(b *flow.Builder) {
		if *errp != nil {
			return
		}
		*errp = bl.stmts(b, ss)
	}
}

func (bl *bodyLoader) value(s Stmt) (flow.Expr, error) {
	if !s.has("value") {
		return nil, nil
	}
	e, err := bl.p.Expr(s.Value)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", s.Line, err)
	}
	return e, nil
}

func (bl *bodyLoader) stmt(b *flow.Builder, s Stmt) error {
	kind, err := s.Kind()
	if err != nil {
		return err
	}
	wrap := func(err error) error {
		if err == nil {
			return nil
		}
		return fmt.Errorf("line %d: %w", s.Line, err)
	}

	switch kind {
	case "let":
		var ann lattice.Type
		if s.Type != "" {
			if ann, err = bl.p.TypeIn(s.Type, bl.typeParams); err != nil {
				return wrap(err)
			}
		}
		value, err := bl.value(s)
		if err != nil {
			return err
		}
		b.Let(s.Let, ann, value)

	case "assign":
		value, err := bl.value(s)
		if err != nil {
			return err
		}
		if value == nil {
			return wrap(fmt.Errorf("assign %s: missing value", s.Assign))
		}
		b.Assign(s.Assign, value)

	case "call":
		site, err := bl.p.Call(s.Call)
		if err != nil {
			return wrap(err)
		}
		switch {
		case s.has("let"):
			site.Result, site.Declare = s.Let, true
		case s.has("assign"):
			site.Result = s.Assign
		}
		b.Call(site)

	case "if":
		cond, err := bl.p.Cond(s.If)
		if err != nil {
			return wrap(err)
		}
		var inner error
		var els func(*flow.Builder)
		if s.has("else") {
			els = bl.nested(s.Else, &inner)
		}
		b.If(cond, bl.nested(s.Then, &inner), els)
		return inner

	case "while":
		cond, err := bl.p.Cond(s.While)
		if err != nil {
			return wrap(err)
		}
		var inner error
		b.While(cond, bl.nested(s.Do, &inner))
		return inner

	case "switch":
		v, prop, _ := strings.Cut(strings.TrimSpace(s.Switch), ".")
		var inner error
		cases := make([]flow.Case, len(s.Cases))
		for i, c := range s.Cases {
			for _, src := range c.Case {
				t, err := bl.p.Type(src)
				if err != nil {
					return wrap(fmt.Errorf("case %d: %w", i+1, err))
				}
				cases[i].Values = append(cases[i].Values, t)
			}
			cases[i].Body = bl.nested(c.Do, &inner)
		}
		var def func(*flow.Builder)
		if s.has("default") {
			def = bl.nested(s.Default, &inner)
		}
		b.Switch(v, prop, cases, def)
		return inner

	case "return":
		var value flow.Expr
		if s.Return != "" {
			if value, err = bl.p.Expr(s.Return); err != nil {
				return wrap(err)
			}
		}
		b.Return(value)

	case "throw":
		value, err := bl.p.Expr(s.Throw)
		if err != nil {
			return wrap(err)
		}
		b.Throw(value)

	case "break":
		b.Break()

	case "continue":
		b.Continue()
	}
	return nil
}
