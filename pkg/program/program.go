// Package program loads program files: a catalogue of type aliases,
// classes, declared functions, overload sets and type predicates, plus the
// function bodies to analyze, described as structured statements.
package program

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/generic"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
	"github.com/vito/narrow/pkg/overload"
	"github.com/vito/narrow/pkg/syntax"
)

// File is the YAML document.
type File struct {
	// Types and Classes are mappings whose order matters: a declaration
	// may only refer to earlier ones.
	Types     yaml.Node           `yaml:"types"`
	Classes   yaml.Node           `yaml:"classes"`
	Functions map[string]Function `yaml:"functions"`
	Bodies    []Body              `yaml:"bodies"`
}

// Class declares a nominal type.
type Class struct {
	Extends []string `yaml:"extends"`
	// Props is an object type giving the instance properties.
	Props string `yaml:"props"`
}

// Function declares a callable. Either Signature or Overloads plus
// Implementation is set.
type Function struct {
	Signature      string   `yaml:"signature"`
	Overloads      []string `yaml:"overloads"`
	Implementation string   `yaml:"implementation"`
	// Predicate declares a type predicate, written "param is Type".
	Predicate string `yaml:"predicate"`
}

// Body is a function body to analyze.
type Body struct {
	Name      string `yaml:"name"`
	Signature string `yaml:"signature"`
	Body      []Stmt `yaml:"body"`
}

// Program is a loaded program file.
type Program struct {
	Path       string
	Universe   *lattice.Universe
	Aliases    syntax.Names
	Functions  flow.Functions
	Predicates guard.PredicateMap
	Graphs     []*flow.Graph
}

// Overloads implements flow.Catalogue.
func (p *Program) Overloads(callee string) (*overload.Set, bool) {
	return p.Functions.Overloads(callee)
}

// Predicate implements guard.Predicates.
func (p *Program) Predicate(fn string) (guard.PredicateDecl, bool) {
	return p.Predicates.Predicate(fn)
}

// Graph returns the body named name.
func (p *Program) Graph(name string) (*flow.Graph, bool) {
	for _, g := range p.Graphs {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// Load reads and parses a program file.
func Load(u *lattice.Universe, path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}
	prog, err := Parse(u, path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

// Parse parses a program from YAML. Types are interned into u.
func Parse(u *lattice.Universe, path string, data []byte) (*Program, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	prog := &Program{
		Path:       path,
		Universe:   u,
		Aliases:    syntax.Names{},
		Functions:  flow.Functions{},
		Predicates: guard.PredicateMap{},
	}
	l := &loader{prog: prog, p: syntax.New(u, prog.Aliases, prog.Predicates)}
	if err := l.classes(&file.Classes); err != nil {
		return nil, err
	}
	if err := l.types(&file.Types); err != nil {
		return nil, err
	}
	if err := l.functions(file.Functions); err != nil {
		return nil, err
	}
	for _, body := range file.Bodies {
		g, err := l.body(body)
		if err != nil {
			return nil, fmt.Errorf("body %s: %w", body.Name, err)
		}
		prog.Graphs = append(prog.Graphs, g)
	}
	return prog, nil
}

type loader struct {
	prog *Program
	p    *syntax.Parser
}

// pairs returns the key/value nodes of a mapping in document order.
func pairs(node *yaml.Node, what string) ([][2]*yaml.Node, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s must be a mapping", node.Line, what)
	}
	var out [][2]*yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, [2]*yaml.Node{node.Content[i], node.Content[i+1]})
	}
	return out, nil
}

func (l *loader) types(node *yaml.Node) error {
	kvs, err := pairs(node, "types")
	if err != nil {
		return err
	}
	for _, kv := range kvs {
		name := kv[0].Value
		if _, exists := l.prog.Aliases[name]; exists {
			return fmt.Errorf("line %d: type %s declared twice", kv[0].Line, name)
		}
		t, err := l.p.Type(kv[1].Value)
		if err != nil {
			return fmt.Errorf("line %d: type %s: %w", kv[1].Line, name, err)
		}
		l.prog.Aliases[name] = t
	}
	return nil
}

func (l *loader) classes(node *yaml.Node) error {
	kvs, err := pairs(node, "classes")
	if err != nil {
		return err
	}
	for _, kv := range kvs {
		name := kv[0].Value
		var class Class
		if err := kv[1].Decode(&class); err != nil {
			return fmt.Errorf("line %d: class %s: %w", kv[1].Line, name, err)
		}
		var props []lattice.Prop
		if class.Props != "" {
			t, err := l.p.Type(class.Props)
			if err != nil {
				return fmt.Errorf("line %d: class %s: %w", kv[1].Line, name, err)
			}
			obj, ok := t.(*lattice.Object)
			if !ok {
				return fmt.Errorf("line %d: class %s: props must be an object type, got %s", kv[1].Line, name, t)
			}
			props = obj.Props()
		}
		if _, err := l.prog.Universe.DeclareClass(name, class.Extends, props...); err != nil {
			return fmt.Errorf("line %d: %w", kv[0].Line, err)
		}
	}
	return nil
}

func (l *loader) functions(fns map[string]Function) error {
	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := l.function(name, fns[name]); err != nil {
			return fmt.Errorf("function %s: %w", name, err)
		}
	}
	return nil
}

func (l *loader) function(name string, fn Function) error {
	u := l.prog.Universe
	var set *overload.Set
	switch {
	case fn.Signature != "" && len(fn.Overloads) > 0:
		return fmt.Errorf("signature and overloads are exclusive")
	case fn.Signature != "":
		sig, err := l.p.Signature(fn.Signature)
		if err != nil {
			return err
		}
		set = overload.Single(name, sig)
	case len(fn.Overloads) > 0:
		if fn.Implementation == "" {
			return fmt.Errorf("overloads require an implementation signature")
		}
		sigs := make([]generic.Signature, len(fn.Overloads))
		for i, src := range fn.Overloads {
			sig, err := l.p.Signature(src)
			if err != nil {
				return fmt.Errorf("overload %d: %w", i+1, err)
			}
			sigs[i] = sig
		}
		impl, err := l.p.Signature(fn.Implementation)
		if err != nil {
			return fmt.Errorf("implementation: %w", err)
		}
		set, err = overload.NewSet(u, name, sigs, impl)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("missing signature")
	}
	l.prog.Functions[name] = set

	if fn.Predicate != "" {
		decl, err := l.predicate(set.Implementation, fn.Predicate)
		if err != nil {
			return fmt.Errorf("predicate: %w", err)
		}
		l.prog.Predicates[name] = decl
	}
	return nil
}

// predicate parses "param is Type" against sig.
func (l *loader) predicate(sig generic.Signature, src string) (guard.PredicateDecl, error) {
	param, typ, ok := strings.Cut(strings.TrimSpace(src), " is ")
	if !ok {
		return guard.PredicateDecl{}, fmt.Errorf("expected \"param is Type\", got %q", src)
	}
	param = strings.TrimSpace(param)
	for i, p := range sig.Params {
		if p.Name != param {
			continue
		}
		t, err := l.p.TypeIn(typ, sig.TypeParams)
		if err != nil {
			return guard.PredicateDecl{}, err
		}
		return guard.PredicateDecl{Position: i, Narrows: t}, nil
	}
	return guard.PredicateDecl{}, fmt.Errorf("no parameter named %s", param)
}

func (l *loader) body(body Body) (*flow.Graph, error) {
	if body.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	sig, err := l.p.Signature(body.Signature)
	if err != nil {
		return nil, err
	}
	if _, declared := l.prog.Functions[body.Name]; !declared {
		l.prog.Functions[body.Name] = overload.Single(body.Name, sig)
	}
	b := flow.NewBuilder(body.Name, sig.Params, sig.Return)
	bl := &bodyLoader{loader: l, typeParams: sig.TypeParams}
	if err := bl.stmts(b, body.Body); err != nil {
		return nil, err
	}
	return b.Build()
}
