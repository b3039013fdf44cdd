/*
File    : symstatic/cst/cst.go

Package cst defines the concrete syntax tree produced directly by the
parser. It mirrors surface syntax closely — including redundant
grouping parentheses and the undifferentiated `let` form — and is
rewritten into the ast package's typed nodes by the weeder.
*/
package cst

import "github.com/danilopedraza/symstatic/token"

// Node is any concrete syntax tree node. Every node knows its own source
// Position so diagnostics and later AST nodes can point back at it.
type Node interface {
	Pos() token.Position
}

// Base embeds the source Position every concrete node carries. It is
// exported so callers outside the package (the parser) can build node
// literals directly: cst.Tuple{Base: cst.At(pos), Elems: ...}.
type Base struct {
	Position token.Position
}

func (b Base) Pos() token.Position { return b.Position }

// At wraps a Position into a Base, for building node literals.
func At(pos token.Position) Base { return Base{pos} }

// Ident is a bare identifier reference.
type Ident struct {
	Base
	Name string
}

// Integer is an unparsed run of decimal digits.
type Integer struct {
	Base
	Digits string
}

// StringLit is a double-quoted string literal with escapes resolved.
type StringLit struct {
	Base
	Value string
}

// CharLit is a single-quoted character literal.
type CharLit struct {
	Base
	Value rune
}

// BooleanLit is the `true` or `false` literal.
type BooleanLit struct {
	Base
	Value bool
}

// Wildcard is the bare `_` token.
type Wildcard struct {
	Base
}

// Grouping is a parenthesized sub-expression `(expr)`. The weeder
// collapses it to its Inner node.
type Grouping struct {
	Base
	Inner Node
}

// Tuple is a parenthesized, comma-separated list of elements containing
// at least one comma (so `(x,)` is a one-element tuple), or the empty
// tuple `()`.
type Tuple struct {
	Base
	Elems []Node
}

// SetLiteral is `{e1, e2, ...}`, including the empty set `{}`.
type SetLiteral struct {
	Base
	Elems []Node
}

// SetComprehension is `{elem : prop}`.
type SetComprehension struct {
	Base
	Elem Node
	Prop Node
}

// ListLiteral is `[e1, e2, ...]`, including the empty list `[]`.
type ListLiteral struct {
	Base
	Elems []Node
}

// ListComprehension is `[transform : prop]`.
type ListComprehension struct {
	Base
	Transform Node
	Prop      Node
}

// Prepend is `[head|tail]`.
type Prepend struct {
	Base
	Head Node
	Tail Node
}

// Prefix is a unary operator applied to an operand: `-x`, `~x`, `!x`.
type Prefix struct {
	Base
	Op      token.Kind
	Operand Node
}

// Infix is a binary operator applied to two operands.
type Infix struct {
	Base
	Op  token.Kind
	Lhs Node
	Rhs Node
}

// If is `if cond then a else b`; both branches are mandatory.
type If struct {
	Base
	Cond Node
	Then Node
	Else Node
}

// For is `for ident in iterable : body`.
type For struct {
	Base
	Var      *Ident
	Iterable Node
	Body     Node
}

// Signature is a `let` binder head: a bare name, or a name with a type
// annotation (`name : Type`).
type Signature struct {
	Base
	Ident *Ident
	Type  Node // nil when no annotation is present
}

// Let is the concrete shape of every `let` form before the weeder
// decides whether it is a value binding or a function-clause add. Params
// is nil for `let name := value` and non-nil (possibly empty) for
// `let name(p1, p2) := value`. Value is nil for a bare signature with no
// `:=` (e.g. a type declaration `let x : Int`).
type Let struct {
	Base
	Signature *Signature
	Params    []Node // nil when this is a plain value binding
	Value     Node   // nil when there is no `:= value` part
}

// Call is a function application `callee(arg1, arg2, ...)`.
type Call struct {
	Base
	Callee Node
	Args   []Node
}

// ImportName is one `(name, position)` pair inside an `ImportFrom` list.
type ImportName struct {
	Base
	Name string
}

// ImportFrom is the concrete form of the module-import construct.
type ImportFrom struct {
	Base
	Module string
	Names  []*ImportName
}

// New constructors take a token.Position explicitly so the parser can
// stamp each node with the position of the token that introduced it.

func NewIdent(name string, pos token.Position) *Ident { return &Ident{At(pos), name} }
func NewInteger(digits string, pos token.Position) *Integer {
	return &Integer{At(pos), digits}
}
func NewStringLit(v string, pos token.Position) *StringLit { return &StringLit{At(pos), v} }
func NewCharLit(v rune, pos token.Position) *CharLit       { return &CharLit{At(pos), v} }
func NewBooleanLit(v bool, pos token.Position) *BooleanLit { return &BooleanLit{At(pos), v} }
func NewWildcard(pos token.Position) *Wildcard             { return &Wildcard{At(pos)} }
