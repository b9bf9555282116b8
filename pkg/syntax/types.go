package syntax

import (
	"fmt"

	"github.com/vito/narrow/pkg/generic"
	"github.com/vito/narrow/pkg/lattice"
)

var primitives = map[string]lattice.Type{
	"string":    lattice.String,
	"number":    lattice.Number,
	"boolean":   lattice.Boolean,
	"null":      lattice.Null,
	"undefined": lattice.Undefined,
	"void":      lattice.Undefined,
	"unknown":   lattice.Unknown,
	"any":       lattice.Unknown,
	"never":     lattice.Never,
}

func (r *resolver) typ(n TypeNode) lattice.Type {
	switch n := n.(type) {
	case UnionNode:
		return r.u.Union(r.types(n.Members)...)
	case IntersectionNode:
		return r.u.Intersect(r.types(n.Members)...)
	case ArrayNode:
		return r.u.Array(r.typ(n.Elem))
	case LiteralNode:
		return r.u.Literal(n.Value)
	case NameNode:
		return r.named(n)
	case KeyofNode:
		return r.u.Keys(r.typ(n.Of))
	case ObjectNode:
		props := make([]lattice.Prop, len(n.Props))
		for i, p := range n.Props {
			props[i] = lattice.Prop{
				Name:     p.Name,
				Type:     r.typ(p.Type),
				Optional: p.Optional,
				Readonly: p.Readonly,
			}
		}
		return r.u.Object("", props...)
	case TupleNode:
		return r.tuple(n)
	case FunctionNode:
		return r.u.Function(r.params(n.Params), r.typ(n.Return))
	}
	panic(fmt.Sprintf("unknown type node %T", n))
}

func (r *resolver) types(ns []TypeNode) []lattice.Type {
	ts := make([]lattice.Type, len(ns))
	for i, n := range ns {
		ts[i] = r.typ(n)
	}
	return ts
}

func (r *resolver) named(n NameNode) lattice.Type {
	r.pos = n.Pos
	switch n.Name {
	case "true":
		return r.u.Literal(true)
	case "false":
		return r.u.Literal(false)
	}
	if t, ok := primitives[n.Name]; ok {
		return t
	}
	if tv, ok := r.vars[n.Name]; ok {
		return tv
	}
	if t, ok := r.scope.Type(n.Name); ok {
		return t
	}
	if class, ok := r.u.Classes().Class(n.Name); ok && class.Instance != nil {
		return class.Instance
	}
	r.fail(n.Pos, "unknown type %q", n.Name)
	return nil
}

func (r *resolver) tuple(n TupleNode) lattice.Type {
	var elems []lattice.Elem
	var rest lattice.Type
	for _, e := range n.Elems {
		if rest != nil {
			r.fail(e.Pos, "rest element must be last")
		}
		r.pos = e.Pos
		t := r.typ(e.Type)
		if e.Rest {
			rest = r.restElem(e.Pos, t)
			continue
		}
		elems = append(elems, lattice.Elem{Type: t, Optional: e.Optional})
	}
	return r.u.Tuple(elems, rest)
}

// restElem is the element type of a spread array type.
func (r *resolver) restElem(pos int, t lattice.Type) lattice.Type {
	tup, ok := t.(*lattice.Tuple)
	if !ok || !tup.IsArray() {
		r.fail(pos, "rest element must be an array type, got %s", t)
	}
	return tup.Rest()
}

func (r *resolver) params(decls []ParamDecl) []lattice.Param {
	params := make([]lattice.Param, len(decls))
	for i, d := range decls {
		if i > 0 && decls[i-1].Rest {
			r.fail(d.Pos, "rest parameter must be last")
		}
		r.pos = d.Pos
		p := lattice.Param{
			Name:     d.Name,
			Type:     r.typ(d.Type),
			Optional: d.Optional,
			Rest:     d.Rest,
		}
		if p.Rest {
			r.restElem(d.Pos, p.Type)
		}
		params[i] = p
	}
	return params
}

// signature brings each type parameter into scope before resolving the
// constraints of the ones after it.
func (r *resolver) signature(n SignatureDecl) generic.Signature {
	var sig generic.Signature
	for _, tp := range n.TypeParams {
		var constraint lattice.Type
		if tp.Constraint != nil {
			constraint = r.typ(tp.Constraint)
		}
		tv := r.u.TypeVar(tp.Name, constraint)
		r.vars[tp.Name] = tv
		sig.TypeParams = append(sig.TypeParams, tv)
	}
	sig.Params = r.params(n.Params)
	sig.Return = r.typ(n.Return)
	return sig
}
