package flow

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/exhaust"
	"github.com/vito/narrow/pkg/generic"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
	"github.com/vito/narrow/pkg/overload"
)

// Catalogue supplies the overload sets of declared functions.
type Catalogue interface {
	Overloads(callee string) (*overload.Set, bool)
}

// Functions is a Catalogue backed by a map.
type Functions map[string]*overload.Set

func (f Functions) Overloads(callee string) (*overload.Set, bool) {
	set, ok := f[callee]
	return set, ok
}

// DefaultMaxLoopVisits is how many times a loop header propagates before
// changed bindings are widened to their declared types.
const DefaultMaxLoopVisits = 2

type Options struct {
	// MaxNodes aborts a pass over a larger graph. Zero means no limit.
	MaxNodes int
	// MaxLoopVisits defaults to DefaultMaxLoopVisits.
	MaxLoopVisits int
}

// Propagator threads type environments through a CFG, narrowing at
// branches and checking assignments, calls, switches and returns.
type Propagator struct {
	u         *lattice.Universe
	eval      *guard.Evaluator
	resolver  *overload.Resolver
	checker   *exhaust.Checker
	catalogue Catalogue
	opts      Options
}

func NewPropagator(u *lattice.Universe, eval *guard.Evaluator, catalogue Catalogue, opts Options) *Propagator {
	if catalogue == nil {
		catalogue = Functions{}
	}
	if opts.MaxLoopVisits <= 0 {
		opts.MaxLoopVisits = DefaultMaxLoopVisits
	}
	return &Propagator{
		u:         u,
		eval:      eval,
		resolver:  overload.NewResolver(u),
		checker:   exhaust.NewChecker(eval),
		catalogue: catalogue,
		opts:      opts,
	}
}

// Result holds the outcome of one pass. Nodes missing from In are
// unreachable.
type Result struct {
	Graph *Graph
	// In is the environment on entry to each reachable node.
	In map[NodeID]Env
	// Calls is the resolution of each reachable call node.
	Calls map[NodeID]overload.Result
	// Switches is the per-case narrowing of each reachable switch node.
	Switches map[NodeID]exhaust.Result
	// Degraded lists branch and switch nodes whose guard could not narrow.
	Degraded map[NodeID]bool

	visits      map[NodeID]int
	diagnostics map[NodeID][]diag.Diagnostic
}

// Reachable reports whether some path from the entry reaches id.
func (r *Result) Reachable(id NodeID) bool {
	_, ok := r.In[id]
	return ok
}

// Visits returns how many times id propagated a new environment.
func (r *Result) Visits(id NodeID) int {
	return r.visits[id]
}

// EnvAt returns the environment on entry to id.
func (r *Result) EnvAt(id NodeID) (Env, bool) {
	env, ok := r.In[id]
	return env, ok
}

// TypeAt returns the type of name on entry to id.
func (r *Result) TypeAt(id NodeID, name string) (lattice.Type, bool) {
	env, ok := r.In[id]
	if !ok {
		return nil, false
	}
	return env.Lookup(name)
}

// Diagnostics returns the findings of the pass ordered by node.
func (r *Result) Diagnostics() []diag.Diagnostic {
	ids := make([]NodeID, 0, len(r.diagnostics))
	for id := range r.diagnostics {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []diag.Diagnostic
	for _, id := range ids {
		out = append(out, r.diagnostics[id]...)
	}
	return out
}

type edge struct {
	from NodeID
	slot int
}

// pass is the mutable state of one Run.
type pass struct {
	*Propagator
	g        *Graph
	res      *Result
	edges    map[edge]Env
	declared map[string]lattice.Type
	headers  map[NodeID]bool
	preds    [][]NodeID
	order    map[NodeID]int
	dirty    map[NodeID]bool
	current  NodeID
}

// Run propagates environments over g until they are stable.
//
// A graph larger than MaxNodes yields a result carrying only the budget
// diagnostic, and diag.ErrBudgetExceeded. A malformed graph or a violated
// lattice contract yields a *diag.InternalError.
func (p *Propagator) Run(ctx context.Context, g *Graph) (res *Result, err error) {
	if p.opts.MaxNodes > 0 && len(g.Nodes) > p.opts.MaxNodes {
		loc := diag.Location{Function: g.Name, Node: int(g.Entry)}
		return &Result{
			Graph: g,
			diagnostics: map[NodeID][]diag.Diagnostic{
				g.Entry: {diag.Budget(loc, len(g.Nodes), p.opts.MaxNodes)},
			},
		}, fmt.Errorf("%s: %w", g.Name, diag.ErrBudgetExceeded)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	ps := &pass{
		Propagator: p,
		g:          g,
		res: &Result{
			Graph:       g,
			In:          map[NodeID]Env{},
			Calls:       map[NodeID]overload.Result{},
			Switches:    map[NodeID]exhaust.Result{},
			Degraded:    map[NodeID]bool{},
			visits:      map[NodeID]int{},
			diagnostics: map[NodeID][]diag.Diagnostic{},
		},
		edges:    map[edge]Env{},
		declared: map[string]lattice.Type{},
		headers:  map[NodeID]bool{},
		order:    map[NodeID]int{},
		dirty:    map[NodeID]bool{},
		current:  g.Entry,
		preds:    g.Predecessors(),
	}
	for name, t := range g.Declared {
		ps.declared[name] = t
	}
	for i, id := range g.ReversePostorder() {
		ps.order[id] = i
	}
	for _, id := range g.LoopHeaders() {
		ps.headers[id] = true
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = diag.AsInternal(g.Name, int(ps.current), r)
		}
	}()

	slog.Debug("propagating", "function", g.Name, "nodes", len(g.Nodes))
	ps.dirty[g.Entry] = true
	for len(ps.dirty) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ps.current = ps.next()
		delete(ps.dirty, ps.current)
		ps.visit(ps.current)
	}
	slog.Debug("propagated", "function", g.Name, "reachable", len(ps.res.In), "diagnostics", len(ps.res.diagnostics))
	return ps.res, nil
}

// next picks the dirty node earliest in reverse postorder.
func (ps *pass) next() NodeID {
	best := NodeID(-1)
	for id := range ps.dirty {
		if best < 0 || ps.order[id] < ps.order[best] {
			best = id
		}
	}
	return best
}

func (ps *pass) loc(id NodeID) diag.Location {
	return diag.Location{Function: ps.g.Name, Node: int(id)}
}

// entryEnv binds each parameter to its declared type.
func (ps *pass) entryEnv() Env {
	vars := map[string]lattice.Type{}
	for _, p := range ps.g.Params {
		t := p.Type
		if p.Optional && !p.Rest {
			t = ps.u.Union(t, lattice.Undefined)
		}
		vars[p.Name] = t
	}
	return Env{vars: vars}
}

// incoming joins the environments of the live edges into id.
func (ps *pass) incoming(id NodeID) (Env, bool) {
	var envs []Env
	seen := map[edge]bool{}
	for _, pred := range ps.preds[id] {
		for slot, s := range ps.g.Nodes[pred].Succs {
			e := edge{pred, slot}
			if s != id || seen[e] {
				continue
			}
			seen[e] = true
			if env, ok := ps.edges[e]; ok {
				envs = append(envs, env)
			}
		}
	}
	if len(envs) == 0 {
		return Env{}, false
	}
	return join(ps.u, envs, ps.unbound), true
}

// unbound is the type of a variable on a path that never assigned it.
func (ps *pass) unbound(name string) lattice.Type {
	if t, ok := ps.declared[name]; ok {
		return t
	}
	return lattice.Undefined
}

func (ps *pass) visit(id NodeID) {
	n := ps.g.Nodes[id]
	var in Env
	if id == ps.g.Entry {
		in = ps.entryEnv()
	} else {
		var ok bool
		in, ok = ps.incoming(id)
		if !ok {
			return
		}
	}

	prev, seen := ps.res.In[id]
	if ps.headers[id] && seen {
		in = ps.widen(id, prev, in)
	}
	if seen && prev.Equal(in) {
		return
	}
	ps.res.In[id] = in
	ps.res.visits[id]++

	delete(ps.res.diagnostics, id)
	outs := ps.transfer(n, in)
	for slot, succ := range n.Succs {
		e := edge{id, slot}
		old, had := ps.edges[e]
		out := outs[slot]
		if out == nil {
			if had {
				delete(ps.edges, e)
				ps.dirty[succ] = true
			}
			continue
		}
		if !had || !old.Equal(*out) {
			ps.edges[e] = *out
			ps.dirty[succ] = true
		}
	}
}

// widen keeps a loop header's environment from growing forever. Bindings
// already covered by the previous environment keep it; once the header has
// propagated MaxLoopVisits times, a binding that would still change is
// widened to its declared type.
func (ps *pass) widen(id NodeID, prev, in Env) Env {
	vars := make(map[string]lattice.Type, in.Len())
	limit := ps.res.visits[id] >= ps.opts.MaxLoopVisits
	for _, name := range in.Names() {
		t, _ := in.Lookup(name)
		old, had := prev.Lookup(name)
		switch {
		case had && ps.u.Subtype(t, old):
			t = old
		case limit:
			if d, ok := ps.declared[name]; ok {
				t = d
			} else {
				t = lattice.Unknown
			}
			slog.Debug("widened loop binding", "function", ps.g.Name, "node", int(id), "var", name, "type", t.String())
		}
		vars[name] = t
	}
	return Env{vars: vars}
}

// transfer computes the environment leaving each successor slot of n. A
// nil entry marks a dead edge.
func (ps *pass) transfer(n *Node, in Env) []*Env {
	outs := make([]*Env, len(n.Succs))
	all := func(env Env) []*Env {
		for i := range outs {
			outs[i] = &env
		}
		return outs
	}
	switch n.Kind {
	case Entry, Merge:
		return all(in)
	case Assign:
		return all(ps.assign(n, in, n.Var, ps.typeOf(n.Value, in), n.Declare, n.Annotation))
	case Call:
		return all(ps.call(n, in))
	case Branch:
		return ps.branch(n, in, outs)
	case Switch:
		return ps.switchOn(n, in, outs)
	case Return:
		t := lattice.Undefined
		if n.Value != nil {
			t = ps.typeOf(n.Value, in)
		}
		ps.checkReturn(n.ID, t)
	case Exit:
		ps.checkReturn(n.ID, lattice.Undefined)
	}
	return outs
}

func (ps *pass) checkReturn(id NodeID, t lattice.Type) {
	if ps.g.Returns == nil || ps.u.Subtype(t, ps.g.Returns) {
		return
	}
	ps.report(id, diag.Assignability(ps.loc(id), "return value", t, ps.g.Returns))
}

func (ps *pass) report(id NodeID, ds ...diag.Diagnostic) {
	ps.res.diagnostics[id] = append(ps.res.diagnostics[id], ds...)
}

// assign binds name to t, checked against its declared type. A failed
// check binds the declared type so later nodes see a sound bound.
func (ps *pass) assign(n *Node, in Env, name string, t lattice.Type, declare bool, annotation lattice.Type) Env {
	if declare && annotation == nil {
		d := widenLiterals(ps.u, t)
		if old, ok := ps.declared[name]; ok {
			d = ps.u.Join(old, d)
		}
		ps.declared[name] = d
	}
	if d, ok := ps.declared[name]; ok {
		if !ps.u.Subtype(t, d) {
			ps.report(n.ID, diag.Assignability(ps.loc(n.ID), name, t, d))
			return in.With(name, d)
		}
		t = ps.u.Meet(t, d)
	}
	return in.With(name, t)
}

func (ps *pass) call(n *Node, in Env) Env {
	site := n.Call
	args := make([]lattice.Type, len(site.Args))
	for i, a := range site.Args {
		args[i] = ps.typeOf(a, in)
	}
	loc := ps.loc(n.ID)

	set, ok := ps.lookupCallee(site.Callee, in)
	var res overload.Result
	if ok {
		res = ps.resolver.Resolve(set, args, site.TypeArgs, loc)
	} else {
		res = overload.Result{
			Callee:      site.Callee,
			Args:        args,
			Index:       -1,
			Return:      lattice.Unknown,
			Diagnostics: []diag.Diagnostic{diag.NoMatch(loc, site.Callee, args, nil)},
		}
	}
	ps.res.Calls[n.ID] = res
	ps.report(n.ID, res.Diagnostics...)

	if site.Result == "" {
		return in
	}
	return ps.assign(n, in, site.Result, res.Return, site.Declare, nil)
}

// lookupCallee finds the overload set of a declared function, or treats a
// variable of function type as a single signature.
func (ps *pass) lookupCallee(name string, in Env) (*overload.Set, bool) {
	if t, ok := in.Lookup(name); ok {
		if fn, ok := t.(*lattice.Function); ok {
			return overload.Single(name, generic.Signature{Params: fn.Params(), Return: fn.Return()}), true
		}
	}
	return ps.catalogue.Overloads(name)
}

func (ps *pass) branch(n *Node, in Env, outs []*Env) []*Env {
	if n.Guard == nil {
		outs[0], outs[1] = &in, &in
		return outs
	}
	target := n.Guard.Target()
	cur, ok := in.Lookup(target)
	if !ok {
		cur = ps.unbound(target)
	}
	r := ps.eval.Apply(n.Guard, cur, in)
	if r.Degraded {
		ps.res.Degraded[n.ID] = true
	}
	for slot, t := range []lattice.Type{r.True, r.False} {
		if t == lattice.Never {
			continue
		}
		env := in.With(target, t)
		outs[slot] = &env
	}
	return outs
}

func (ps *pass) switchOn(n *Node, in Env, outs []*Env) []*Env {
	site := n.Switch
	subject, ok := in.Lookup(site.Var)
	if !ok {
		subject = ps.unbound(site.Var)
	}
	r := ps.checker.Check(subject, site.Prop, site.Cases)
	ps.res.Switches[n.ID] = r
	if r.Degraded {
		ps.res.Degraded[n.ID] = true
		slog.Debug("switch subject is not discriminated", "function", ps.g.Name, "node", int(n.ID), "prop", site.Prop)
	}
	for i, t := range r.Cases {
		if t == lattice.Never {
			continue
		}
		env := in.With(site.Var, t)
		outs[i] = &env
	}
	if r.Residual != lattice.Never {
		env := in.With(site.Var, r.Residual)
		outs[len(outs)-1] = &env
		if !site.HasDefault && !r.Degraded {
			ps.report(n.ID, diag.NonExhaustive(ps.loc(n.ID), r.Residual))
		}
	}
	return outs
}

// typeOf is the static type of e in env.
func (ps *pass) typeOf(e Expr, env Env) lattice.Type {
	switch e := e.(type) {
	case Const:
		return e.Type
	case VarRef:
		if t, ok := env.Lookup(e.Name); ok {
			return t
		}
		if t, ok := ps.declared[e.Name]; ok {
			return t
		}
		if set, ok := ps.catalogue.Overloads(e.Name); ok && !set.Overloaded() {
			return set.Signatures[0].Type(ps.u)
		}
		return lattice.Unknown
	case PropRef:
		base := ps.typeOf(VarRef{Name: e.Var}, env)
		p, ok := ps.u.PropertyOf(base, e.Prop)
		if !ok {
			return lattice.Unknown
		}
		if p.Optional {
			return ps.u.Union(p.Type, lattice.Undefined)
		}
		return p.Type
	}
	panic(diag.Internalf(ps.g.Name, int(ps.current), "unsupported expression %T", e))
}

// widenLiterals replaces literal members by their base primitive, the
// declared type of an unannotated let.
func widenLiterals(u *lattice.Universe, t lattice.Type) lattice.Type {
	members := lattice.Members(t)
	widened := make([]lattice.Type, len(members))
	for i, m := range members {
		if lit, ok := m.(*lattice.Literal); ok {
			widened[i] = lit.Base()
		} else {
			widened[i] = m
		}
	}
	return u.Union(widened...)
}
