/*
File    : symstatic/ast/ast.go

Package ast defines the typed tree the evaluator walks. It is produced
from the cst package by the weeder, which erases purely syntactic
nodes (grouping parentheses), lowers sugar (arrow functions, split
`let` forms) and rejects ill-formed shapes. An AST is immutable once
built; every node keeps the Position of the CST node it was woven from.
*/
package ast

import "github.com/danilopedraza/symstatic/token"

// Node is any AST node.
type Node interface {
	Pos() token.Position
}

type base struct {
	Position token.Position
}

func (b base) Pos() token.Position { return b.Position }

// Symbol is a bare identifier reference, resolved against the
// environment at evaluation time.
type Symbol struct {
	base
	Name string
}

// Integer is an unparsed run of decimal digits; the evaluator parses it
// into an arbitrary-precision value.
type Integer struct {
	base
	Digits string
}

type String struct {
	base
	Value string
}

type Char struct {
	base
	Value rune
}

type Boolean struct {
	base
	Value bool
}

// Wildcard is `_`, valid only in pattern position.
type Wildcard struct {
	base
}

type Tuple struct {
	base
	Elems []Node
}

// ExtensionSet is a set written out element by element: `{e1, e2, ...}`.
type ExtensionSet struct {
	base
	Elems []Node
}

// ExtensionList is a list written out element by element: `[e1, e2, ...]`.
type ExtensionList struct {
	base
	Elems []Node
}

// ComprehensionSet is `{elem : prop}`: a set defined by predicate.
type ComprehensionSet struct {
	base
	Elem Node
	Prop Node
}

// ComprehensionList is `[transform : prop]`: a list built by mapping
// `transform` over every value satisfying `prop`.
type ComprehensionList struct {
	base
	Transform Node
	Prop      Node
}

// Prepend is `[head|tail]`, both as an expression and as a list pattern.
type Prepend struct {
	base
	Head Node
	Tail Node
}

type Prefix struct {
	base
	Op      token.Kind
	Operand Node
}

type Infix struct {
	base
	Op  token.Kind
	Lhs Node
	Rhs Node
}

type If struct {
	base
	Cond Node
	Then Node
	Else Node
}

type For struct {
	base
	Var      string
	Iterable Node
	Body     Node
}

// Let is a variable binding (Params == nil) or a function-clause add
// (Params != nil, one row per re-declaration of the same Ident).
type Let struct {
	base
	Ident  string
	Params []Node // nil for a value binding; patterns for a function clause
	Value  Node
}

// Signature is a bare `name` or `name : type` declaration with no bound
// value yet. The type is kept on the node only; evaluating a Signature
// neither records nor checks it and yields the empty tuple, per the
// language's non-goal of static typing.
type Signature struct {
	base
	Ident string
	Type  Node // nil when unannotated
}

// Function is an anonymous (or lowered arrow) function literal with a
// single clause.
type Function struct {
	base
	Params []Node // patterns
	Body   Node
}

type Call struct {
	base
	Callee Node
	Args   []Node
}

// ImportName is one requested symbol in an ImportFrom, its own Position
// preserved for SymbolNotFound diagnostics.
type ImportName struct {
	base
	Name string
}

type ImportFrom struct {
	base
	Module string
	Names  []ImportName
}

// New constructors stamp each node with the Position of the CST node it
// was woven from.

func NewSymbol(name string, pos token.Position) *Symbol   { return &Symbol{base{pos}, name} }
func NewInteger(digits string, pos token.Position) *Integer {
	return &Integer{base{pos}, digits}
}
func NewString(v string, pos token.Position) *String   { return &String{base{pos}, v} }
func NewChar(v rune, pos token.Position) *Char          { return &Char{base{pos}, v} }
func NewBoolean(v bool, pos token.Position) *Boolean    { return &Boolean{base{pos}, v} }
func NewWildcard(pos token.Position) *Wildcard          { return &Wildcard{base{pos}} }

func NewTuple(elems []Node, pos token.Position) *Tuple { return &Tuple{base{pos}, elems} }

func NewExtensionSet(elems []Node, pos token.Position) *ExtensionSet {
	return &ExtensionSet{base{pos}, elems}
}

func NewExtensionList(elems []Node, pos token.Position) *ExtensionList {
	return &ExtensionList{base{pos}, elems}
}

func NewComprehensionSet(elem, prop Node, pos token.Position) *ComprehensionSet {
	return &ComprehensionSet{base{pos}, elem, prop}
}

func NewComprehensionList(transform, prop Node, pos token.Position) *ComprehensionList {
	return &ComprehensionList{base{pos}, transform, prop}
}

func NewPrepend(head, tail Node, pos token.Position) *Prepend {
	return &Prepend{base{pos}, head, tail}
}

func NewPrefix(op token.Kind, operand Node, pos token.Position) *Prefix {
	return &Prefix{base{pos}, op, operand}
}

func NewInfix(op token.Kind, lhs, rhs Node, pos token.Position) *Infix {
	return &Infix{base{pos}, op, lhs, rhs}
}

func NewIf(cond, then, els Node, pos token.Position) *If {
	return &If{base{pos}, cond, then, els}
}

func NewFor(v string, iterable, body Node, pos token.Position) *For {
	return &For{base{pos}, v, iterable, body}
}

func NewLet(ident string, params []Node, value Node, pos token.Position) *Let {
	return &Let{base{pos}, ident, params, value}
}

func NewSignature(ident string, typ Node, pos token.Position) *Signature {
	return &Signature{base{pos}, ident, typ}
}

func NewFunction(params []Node, body Node, pos token.Position) *Function {
	return &Function{base{pos}, params, body}
}

func NewCall(callee Node, args []Node, pos token.Position) *Call {
	return &Call{base{pos}, callee, args}
}

func NewImportName(name string, pos token.Position) *ImportName {
	return &ImportName{base{pos}, name}
}

func NewImportFrom(module string, names []ImportName, pos token.Position) *ImportFrom {
	return &ImportFrom{base{pos}, module, names}
}
