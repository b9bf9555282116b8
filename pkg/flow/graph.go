package flow

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/guard"
	"github.com/vito/narrow/pkg/lattice"
)

// NodeID indexes Graph.Nodes.
type NodeID int

// NodeKind is what a CFG node does.
type NodeKind int

const (
	Entry NodeKind = iota
	Assign
	Branch
	Merge
	Return
	Throw
	Call
	Switch
	Exit
)

func (k NodeKind) String() string {
	switch k {
	case Entry:
		return "entry"
	case Assign:
		return "assign"
	case Branch:
		return "branch"
	case Merge:
		return "merge"
	case Return:
		return "return"
	case Throw:
		return "throw"
	case Call:
		return "call"
	case Switch:
		return "switch"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// slots is the number of successors a node of the kind must have, or -1
// when it varies.
func (k NodeKind) slots() int {
	switch k {
	case Branch:
		return 2
	case Switch:
		return -1
	case Return, Throw, Exit:
		return 0
	}
	return 1
}

// Expr is an expression whose static type the propagator can compute from
// the environment.
type Expr interface {
	fmt.Stringer
	expr()
}

// Const is an expression of a known type, typically a literal.
type Const struct {
	Type lattice.Type
}

// VarRef reads a variable.
type VarRef struct {
	Name string
}

// PropRef reads a property of a variable.
type PropRef struct {
	Var  string
	Prop string
}

func (Const) expr()   {}
func (VarRef) expr()  {}
func (PropRef) expr() {}

func (e Const) String() string   { return e.Type.String() }
func (e VarRef) String() string  { return e.Name }
func (e PropRef) String() string { return e.Var + "." + e.Prop }

// CallSite is a call expression.
type CallSite struct {
	Callee   string
	Args     []Expr
	TypeArgs []lattice.Type
	// Result names the variable receiving the call's value, if any.
	Result string
	// Declare marks Result as introduced by the call (let x = f()).
	Declare bool
}

func (c *CallSite) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	var targs string
	if len(c.TypeArgs) > 0 {
		ts := make([]string, len(c.TypeArgs))
		for i, t := range c.TypeArgs {
			ts[i] = t.String()
		}
		targs = "<" + strings.Join(ts, ", ") + ">"
	}
	call := fmt.Sprintf("%s%s(%s)", c.Callee, targs, strings.Join(args, ", "))
	if c.Result != "" {
		return c.Result + " = " + call
	}
	return call
}

// SwitchSite is a switch over a variable, or over one of its properties.
// Successor i is taken for Cases[i]; the last successor is the default
// clause, or the code after the switch when there is none.
type SwitchSite struct {
	Var        string
	Prop       string
	Cases      []lattice.Type
	HasDefault bool
}

func (s *SwitchSite) String() string {
	subject := s.Var
	if s.Prop != "" {
		subject += "." + s.Prop
	}
	cases := make([]string, len(s.Cases))
	for i, c := range s.Cases {
		cases[i] = c.String()
	}
	return fmt.Sprintf("switch %s [%s]", subject, strings.Join(cases, ", "))
}

// Node is a CFG node. Which fields are set depends on Kind.
type Node struct {
	ID    NodeID
	Kind  NodeKind
	Succs []NodeID

	// Assign: Var = Value. Return and Throw may carry a Value.
	Var   string
	Value Expr
	// Declare marks an Assign introducing Var; Annotation is its declared
	// type, if written.
	Declare    bool
	Annotation lattice.Type

	// Branch: nil means a condition the engine cannot interpret; both
	// successors then see the unchanged environment.
	Guard guard.Guard

	Call   *CallSite
	Switch *SwitchSite
}

func (n *Node) String() string {
	var detail string
	switch n.Kind {
	case Assign:
		decl := ""
		if n.Declare {
			decl = "let "
		}
		ann := ""
		if n.Annotation != nil {
			ann = ": " + n.Annotation.String()
		}
		detail = fmt.Sprintf("%s%s%s = %s", decl, n.Var, ann, n.Value)
	case Branch:
		if n.Guard != nil {
			detail = n.Guard.String()
		} else {
			detail = "?"
		}
	case Call:
		detail = n.Call.String()
	case Switch:
		detail = n.Switch.String()
	case Return, Throw:
		if n.Value != nil {
			detail = n.Value.String()
		}
	}
	succs := make([]string, len(n.Succs))
	for i, s := range n.Succs {
		succs[i] = fmt.Sprint(int(s))
	}
	line := fmt.Sprintf("%d %s", n.ID, n.Kind)
	if detail != "" {
		line += " " + detail
	}
	if len(succs) > 0 {
		line += " -> " + strings.Join(succs, ", ")
	}
	return line
}

// Graph is the control-flow graph of one function body.
type Graph struct {
	Name  string
	Nodes []*Node
	Entry NodeID
	Exit  NodeID

	// Params lists the parameters in order; their declared types seed the
	// entry environment.
	Params []lattice.Param
	// Returns is the declared return type, nil when unchecked.
	Returns lattice.Type
	// Declared holds the written upper bound of each parameter and
	// annotated local. Assignments are checked against it.
	Declared map[string]lattice.Type
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.Nodes) {
		return nil
	}
	return g.Nodes[id]
}

// Validate checks the structural invariants the propagator relies on.
// Violations are internal errors, not findings.
func (g *Graph) Validate() error {
	entry := g.Node(g.Entry)
	if entry == nil || entry.Kind != Entry {
		return diag.Internalf(g.Name, int(g.Entry), "graph has no entry node")
	}
	for i, n := range g.Nodes {
		if n == nil || n.ID != NodeID(i) {
			return diag.Internalf(g.Name, i, "node %d is missing or misnumbered", i)
		}
		want := n.Kind.slots()
		if n.Kind == Switch {
			if n.Switch == nil {
				return diag.Internalf(g.Name, i, "switch node without a subject")
			}
			want = len(n.Switch.Cases) + 1
		}
		if len(n.Succs) != want {
			return diag.Internalf(g.Name, i, "%s node has %d successors, want %d", n.Kind, len(n.Succs), want)
		}
		for _, s := range n.Succs {
			if g.Node(s) == nil {
				return diag.Internalf(g.Name, i, "%s node has dangling successor %d", n.Kind, s)
			}
		}
		switch {
		case n.Kind == Call && n.Call == nil:
			return diag.Internalf(g.Name, i, "call node without a call site")
		case n.Kind == Assign && (n.Var == "" || n.Value == nil):
			return diag.Internalf(g.Name, i, "assign node without a target or value")
		case n.Kind == Entry && NodeID(i) != g.Entry:
			return diag.Internalf(g.Name, i, "second entry node")
		}
	}
	return nil
}

// Predecessors returns, for each node, the distinct nodes with an edge to
// it, derived from Succs.
func (g *Graph) Predecessors() [][]NodeID {
	preds := make([][]NodeID, len(g.Nodes))
	for _, n := range g.Nodes {
		for i, s := range n.Succs {
			if slices.Contains(n.Succs[:i], s) {
				continue
			}
			preds[s] = append(preds[s], n.ID)
		}
	}
	return preds
}

// ReversePostorder returns the nodes reachable from the entry, each before
// its successors except along back edges.
func (g *Graph) ReversePostorder() []NodeID {
	seen := make([]bool, len(g.Nodes))
	var post []NodeID
	var visit func(id NodeID)
	visit = func(id NodeID) {
		seen[id] = true
		for _, s := range g.Nodes[id].Succs {
			if !seen[s] {
				visit(s)
			}
		}
		post = append(post, id)
	}
	visit(g.Entry)
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}

// LoopHeaders returns the targets of back edges in reverse postorder.
func (g *Graph) LoopHeaders() []NodeID {
	rpo := g.ReversePostorder()
	order := make(map[NodeID]int, len(rpo))
	for i, id := range rpo {
		order[id] = i
	}
	headers := map[NodeID]bool{}
	for _, id := range rpo {
		for _, s := range g.Nodes[id].Succs {
			if order[s] <= order[id] {
				headers[s] = true
			}
		}
	}
	out := make([]NodeID, 0, len(headers))
	for id := range headers {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%s)", g.Name, lattice.FormatParams(g.Params))
	if g.Returns != nil {
		fmt.Fprintf(&sb, ": %s", g.Returns)
	}
	sb.WriteString("\n")
	for _, n := range g.Nodes {
		sb.WriteString("  " + n.String() + "\n")
	}
	return sb.String()
}
