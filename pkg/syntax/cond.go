package syntax

import (
	"fmt"

	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/guard"
)

func (r *resolver) cond(n CondNode) flow.Cond {
	switch n := n.(type) {
	case OrNode:
		return flow.Or{Left: r.cond(n.Left), Right: r.cond(n.Right)}
	case AndNode:
		return flow.And{Left: r.cond(n.Left), Right: r.cond(n.Right)}
	case NotNode:
		return flow.Not{Cond: r.cond(n.Cond)}
	case OpaqueNode:
		return flow.Test{}
	case TypeofNode:
		var c flow.Cond = flow.Test{Guard: guard.Typeof{Var: n.Var, Tag: n.Tag}}
		if r.op(n.Op).Negated() {
			c = flow.Not{Cond: c}
		}
		return c
	case InNode:
		return flow.Test{Guard: guard.In{Prop: n.Prop, Var: n.Var}}
	case InstanceofNode:
		if n.Ref.Prop != "" {
			return flow.Test{}
		}
		return flow.Test{Guard: guard.InstanceOf{Var: n.Ref.Var, Tag: n.Class}}
	case TruthyNode:
		if n.Ref.Prop != "" {
			// truthiness of a property does not narrow the variable
			return flow.Test{}
		}
		return flow.Test{Guard: guard.Truthy{Var: n.Ref.Var}}
	case CompareNode:
		g := guard.Equality{
			Op:   r.op(n.Op),
			Left: guard.Ref{Var: n.Ref.Var, Prop: n.Ref.Prop},
		}
		switch right := n.Right.(type) {
		case RefNode:
			g.RightVar = right.Var
		case TypeNode:
			g.Right = r.typ(right)
		}
		return flow.Test{Guard: g}
	case PredicateNode:
		return r.predicate(n)
	}
	panic(fmt.Sprintf("unknown condition node %T", n))
}

func (r *resolver) op(s string) guard.Op {
	op, err := guard.ParseOp(s)
	if err != nil {
		r.fail(r.pos, "%s", err)
	}
	return op
}

// predicate resolves a call to a user-defined type predicate. Calls the
// catalogue does not declare as predicates are opaque conditions.
func (r *resolver) predicate(n PredicateNode) flow.Cond {
	r.pos = n.Pos
	args := r.exprs(n.Args)
	decl, ok := r.preds.Predicate(n.Fn)
	if !ok || decl.Position < 0 || decl.Position >= len(args) {
		return flow.Test{}
	}
	v, ok := args[decl.Position].(flow.VarRef)
	if !ok {
		return flow.Test{}
	}
	return flow.Test{Guard: guard.Predicate{Fn: n.Fn, Pos: decl.Position, Var: v.Name}}
}

func (r *resolver) expr(n ExprNode) flow.Expr {
	switch n := n.(type) {
	case VarNode:
		return flow.VarRef{Name: n.Name}
	case FieldNode:
		return flow.PropRef{Var: n.Var, Prop: n.Prop}
	case NewNode:
		r.pos = n.Pos
		if class, ok := r.u.Classes().Class(n.Class); ok && class.Instance != nil {
			return flow.Const{Type: class.Instance}
		}
		r.fail(n.Pos, "unknown class %q", n.Class)
	case ConstNode:
		return flow.Const{Type: r.typ(n.Type)}
	}
	panic(fmt.Sprintf("unknown expression node %T", n))
}

func (r *resolver) exprs(ns []ExprNode) []flow.Expr {
	var es []flow.Expr
	for _, n := range ns {
		es = append(es, r.expr(n))
	}
	return es
}

func (r *resolver) call(n CallNode) flow.CallSite {
	site := flow.CallSite{Callee: n.Callee, Args: r.exprs(n.Args)}
	if len(n.TypeArgs) > 0 {
		site.TypeArgs = r.types(n.TypeArgs)
	}
	return site
}
