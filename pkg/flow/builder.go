package flow

import (
	"fmt"

	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
)

// Cond is a branch condition before lowering to Branch nodes.
type Cond interface {
	cond()
}

// Test is a single guard. A nil Guard is a condition the engine cannot
// interpret.
type Test struct {
	Guard guard.Guard
}

// Not negates a condition.
type Not struct {
	Cond Cond
}

// And is a short-circuit conjunction.
type And struct {
	Left, Right Cond
}

// Or is a short-circuit disjunction.
type Or struct {
	Left, Right Cond
}

func (Test) cond() {}
func (Not) cond()  {}
func (And) cond()  {}
func (Or) cond()   {}

// Case is one clause of a switch. Values share the body.
type Case struct {
	Values []lattice.Type
	Body   func(*Builder)
}

// exit is an unconnected successor slot.
type exit struct {
	node NodeID
	slot int
}

// scope is a break target, and a continue target for loops.
type scope struct {
	breaks []exit
	// header is the loop header, or -1 for a switch.
	header NodeID
	parent *scope
}

// Builder constructs a Graph from structured control flow. Statements are
// appended at the current position; after Return, Throw, Break or Continue
// the position is unreachable until control flow rejoins.
type Builder struct {
	g       *Graph
	pending []exit
	scope   *scope
	err     error
}

// NewBuilder starts a graph for a function with the given parameters and
// declared return type (nil when unchecked).
func NewBuilder(name string, params []lattice.Param, returns lattice.Type) *Builder {
	g := &Graph{
		Name:     name,
		Params:   params,
		Returns:  returns,
		Declared: map[string]lattice.Type{},
	}
	for _, p := range params {
		g.Declared[p.Name] = p.Type
	}
	b := &Builder{g: g}
	entry := b.node(Entry)
	g.Entry = entry.ID
	b.pending = []exit{{entry.ID, 0}}
	return b
}

// node allocates a node without connecting it.
func (b *Builder) node(kind NodeKind) *Node {
	slots := kind.slots()
	if slots < 0 {
		slots = 0
	}
	n := &Node{ID: NodeID(len(b.g.Nodes)), Kind: kind, Succs: make([]NodeID, slots)}
	for i := range n.Succs {
		n.Succs[i] = -1
	}
	b.g.Nodes = append(b.g.Nodes, n)
	return n
}

func (b *Builder) link(from exit, to NodeID) {
	b.g.Nodes[from.node].Succs[from.slot] = to
}

// emit allocates a node at the current position. Several pending exits
// are first joined by a Merge node.
func (b *Builder) emit(kind NodeKind) *Node {
	if len(b.pending) > 1 && kind != Merge && kind != Exit {
		b.emit(Merge)
	}
	n := b.node(kind)
	for _, e := range b.pending {
		b.link(e, n.ID)
	}
	b.pending = nil
	for i := range n.Succs {
		b.pending = append(b.pending, exit{n.ID, i})
	}
	return n
}

func (b *Builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = fmt.Errorf("%s: %s", b.g.Name, fmt.Sprintf(format, args...))
	}
}

// Reachable reports whether the current position can be reached.
func (b *Builder) Reachable() bool {
	return len(b.pending) > 0
}

// Assign appends name = value.
func (b *Builder) Assign(name string, value Expr) {
	n := b.emit(Assign)
	n.Var = name
	n.Value = value
}

// Let appends a declaration of name. A nil annotation takes the declared
// type from the initializer, widened.
func (b *Builder) Let(name string, annotation lattice.Type, value Expr) {
	if value == nil {
		value = Const{Type: lattice.Undefined}
	}
	n := b.emit(Assign)
	n.Var = name
	n.Value = value
	n.Declare = true
	n.Annotation = annotation
	if annotation != nil {
		b.g.Declared[name] = annotation
	}
}

// Call appends a call.
func (b *Builder) Call(site CallSite) {
	n := b.emit(Call)
	n.Call = &site
}

// Return appends a return; value may be nil.
func (b *Builder) Return(value Expr) {
	n := b.emit(Return)
	n.Value = value
}

// Throw appends a throw.
func (b *Builder) Throw(value Expr) {
	n := b.emit(Throw)
	n.Value = value
}

// If appends a conditional. els may be nil.
func (b *Builder) If(c Cond, then, els func(*Builder)) {
	t, f := b.lower(c)
	b.pending = t
	if then != nil {
		then(b)
	}
	after := b.pending
	b.pending = f
	if els != nil {
		els(b)
	}
	b.pending = append(after, b.pending...)
}

// While appends a loop. A nil condition loops until a break.
func (b *Builder) While(c Cond, body func(*Builder)) {
	header := b.emit(Merge)
	var done []exit
	if c != nil {
		var t []exit
		t, done = b.lower(c)
		b.pending = t
	}
	b.scope = &scope{header: header.ID, parent: b.scope}
	if body != nil {
		body(b)
	}
	for _, e := range b.pending {
		b.link(e, header.ID)
	}
	s := b.scope
	b.scope = s.parent
	b.pending = append(done, s.breaks...)
}

// Switch appends a switch over v, or over v.prop when prop is set. A nil
// def means there is no default clause. Falling off the end of a clause
// leaves the switch.
func (b *Builder) Switch(v, prop string, cases []Case, def func(*Builder)) {
	site := &SwitchSite{Var: v, Prop: prop, HasDefault: def != nil}
	bodies := make([]int, 0)
	for ci, c := range cases {
		for _, val := range c.Values {
			site.Cases = append(site.Cases, val)
			bodies = append(bodies, ci)
		}
	}
	n := b.emit(Switch)
	n.Switch = site
	n.Succs = make([]NodeID, len(site.Cases)+1)
	for i := range n.Succs {
		n.Succs[i] = -1
	}

	b.scope = &scope{header: -1, parent: b.scope}
	for ci, c := range cases {
		b.pending = nil
		for slot, body := range bodies {
			if body == ci {
				b.pending = append(b.pending, exit{n.ID, slot})
			}
		}
		if c.Body != nil {
			c.Body(b)
		}
		b.scope.breaks = append(b.scope.breaks, b.pending...)
	}
	b.pending = []exit{{n.ID, len(site.Cases)}}
	if def != nil {
		def(b)
	}
	s := b.scope
	b.scope = s.parent
	b.pending = append(b.pending, s.breaks...)
}

// Break leaves the innermost loop or switch.
func (b *Builder) Break() {
	if b.scope == nil {
		b.fail("break outside of a loop or switch")
		return
	}
	b.scope.breaks = append(b.scope.breaks, b.pending...)
	b.pending = nil
}

// Continue jumps to the innermost loop header.
func (b *Builder) Continue() {
	s := b.scope
	for s != nil && s.header < 0 {
		s = s.parent
	}
	if s == nil {
		b.fail("continue outside of a loop")
		return
	}
	for _, e := range b.pending {
		b.link(e, s.header)
	}
	b.pending = nil
}

// lower emits the branch chain for c and returns the exits taken when it
// holds and when it does not.
func (b *Builder) lower(c Cond) (t, f []exit) {
	switch c := c.(type) {
	case Test:
		n := b.emit(Branch)
		n.Guard = c.Guard
		b.pending = nil
		return []exit{{n.ID, 0}}, []exit{{n.ID, 1}}
	case Not:
		t, f := b.lower(c.Cond)
		return f, t
	case And:
		lt, lf := b.lower(c.Left)
		b.pending = lt
		rt, rf := b.lower(c.Right)
		return rt, append(lf, rf...)
	case Or:
		lt, lf := b.lower(c.Left)
		b.pending = lf
		rt, rf := b.lower(c.Right)
		return append(lt, rt...), rf
	}
	b.fail("unsupported condition %T", c)
	return b.pending, nil
}

// Build finishes the graph, connecting the fallthrough position to the
// exit node.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	end := b.emit(Exit)
	b.g.Exit = end.ID
	b.pending = nil
	return b.g, b.g.Validate()
}
