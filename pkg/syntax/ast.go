package syntax

// TypeNode is a parsed type expression. Names are resolved against a
// scope only when a Parser converts the node into a lattice type.
type TypeNode interface {
	typeNode()
}

type UnionNode struct {
	Members []TypeNode
}

type IntersectionNode struct {
	Members []TypeNode
}

// ArrayNode is T[] or Array<T>.
type ArrayNode struct {
	Elem TypeNode
}

// LiteralNode holds a string, float64 or bool.
type LiteralNode struct {
	Value any
}

// NameNode is a primitive, type parameter, alias or class name. Pos is
// its byte offset in the source.
type NameNode struct {
	Name string
	Pos  int
}

type KeyofNode struct {
	Of TypeNode
}

type ObjectNode struct {
	Props []PropDecl
}

type PropDecl struct {
	Name     string
	Type     TypeNode
	Optional bool
	Readonly bool
}

type TupleNode struct {
	Elems []ElemDecl
}

// ElemDecl is a tuple element; Rest marks a trailing ...T[].
type ElemDecl struct {
	Type     TypeNode
	Optional bool
	Rest     bool
	Pos      int
}

type FunctionNode struct {
	Params []ParamDecl
	Return TypeNode
}

type ParamDecl struct {
	Name     string
	Type     TypeNode
	Optional bool
	Rest     bool
	Pos      int
}

type TypeParamDecl struct {
	Name       string
	Constraint TypeNode
}

// SignatureDecl is a call signature with optional type parameters.
type SignatureDecl struct {
	TypeParams []TypeParamDecl
	Params     []ParamDecl
	Return     TypeNode
}

func (UnionNode) typeNode()        {}
func (IntersectionNode) typeNode() {}
func (ArrayNode) typeNode()        {}
func (LiteralNode) typeNode()      {}
func (NameNode) typeNode()         {}
func (KeyofNode) typeNode()        {}
func (ObjectNode) typeNode()       {}
func (TupleNode) typeNode()        {}
func (FunctionNode) typeNode()     {}

// CondNode is a parsed branch condition.
type CondNode interface {
	condNode()
}

type OrNode struct {
	Left, Right CondNode
}

type AndNode struct {
	Left, Right CondNode
}

type NotNode struct {
	Cond CondNode
}

// OpaqueNode is a condition the engine does not interpret, written ?.
type OpaqueNode struct{}

type TypeofNode struct {
	Var string
	Op  string
	Tag string
}

type InNode struct {
	Prop string
	Var  string
}

type InstanceofNode struct {
	Ref   RefNode
	Class string
}

type TruthyNode struct {
	Ref RefNode
}

// CompareNode is ref op right, where right is either a RefNode naming a
// variable or a TypeNode.
type CompareNode struct {
	Ref   RefNode
	Op    string
	Right any
}

type PredicateNode struct {
	Fn   string
	Args []ExprNode
	Pos  int
}

// RefNode is v or v.prop.
type RefNode struct {
	Var  string
	Prop string
}

func (OrNode) condNode()         {}
func (AndNode) condNode()        {}
func (NotNode) condNode()        {}
func (OpaqueNode) condNode()     {}
func (TypeofNode) condNode()     {}
func (InNode) condNode()         {}
func (InstanceofNode) condNode() {}
func (TruthyNode) condNode()     {}
func (CompareNode) condNode()    {}
func (PredicateNode) condNode()  {}

// ExprNode is a parsed value.
type ExprNode interface {
	exprNode()
}

type VarNode struct {
	Name string
}

type FieldNode struct {
	Var  string
	Prop string
}

type NewNode struct {
	Class string
	Pos   int
}

// ConstNode stands for a value of the given type.
type ConstNode struct {
	Type TypeNode
}

func (VarNode) exprNode()   {}
func (FieldNode) exprNode() {}
func (NewNode) exprNode()   {}
func (ConstNode) exprNode() {}

type CallNode struct {
	Callee   string
	TypeArgs []TypeNode
	Args     []ExprNode
}
