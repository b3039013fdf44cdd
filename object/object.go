/*
File    : symstatic/object/object.go

Package object defines the runtime values the evaluator produces and
consumes. Every concrete type implements the Object interface, modeled
on the teacher interpreter's GoMixObject (GetType/ToString), collapsed
to a single GetType/String pair since komodo has no separate
human/debug display mode.
*/
package object

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/danilopedraza/symstatic/ast"
)

// Kind identifies the runtime type of an Object.
type Kind string

const (
	IntegerKind           Kind = "int"
	BooleanKind           Kind = "bool"
	CharKind              Kind = "char"
	StringKind            Kind = "string"
	SymbolKind            Kind = "symbol"
	TupleKind             Kind = "tuple"
	ListKind              Kind = "list"
	SetKind               Kind = "set"
	ComprehensionSetKind  Kind = "comprehension-set"
	FunctionKind          Kind = "func"
	ErrorKind             Kind = "error"
)

// Object is any runtime value the evaluator can produce.
type Object interface {
	GetType() Kind
	String() string
}

// Integer is an arbitrary-precision signed integer, backed by math/big
// since komodo places no bound on integer magnitude.
type Integer struct {
	Value *big.Int
}

func NewInteger(v *big.Int) *Integer { return &Integer{Value: v} }

func NewIntegerFromInt64(v int64) *Integer { return &Integer{Value: big.NewInt(v)} }

func (i *Integer) GetType() Kind { return IntegerKind }
func (i *Integer) String() string { return i.Value.String() }

// Boolean is true or false.
type Boolean struct {
	Value bool
}

func NewBoolean(v bool) *Boolean { return &Boolean{Value: v} }

func (b *Boolean) GetType() Kind  { return BooleanKind }
func (b *Boolean) String() string { return fmt.Sprintf("%t", b.Value) }

// Char is a single rune.
type Char struct {
	Value rune
}

func NewChar(v rune) *Char { return &Char{Value: v} }

func (c *Char) GetType() Kind  { return CharKind }
func (c *Char) String() string { return string(c.Value) }

// String is a sequence of runes, displayed unquoted.
type String struct {
	Value string
}

func NewString(v string) *String { return &String{Value: v} }

func (s *String) GetType() Kind  { return StringKind }
func (s *String) String() string { return s.Value }

// Symbol is the value an unbound identifier evaluates to.
type Symbol struct {
	Name string
}

func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

func (s *Symbol) GetType() Kind  { return SymbolKind }
func (s *Symbol) String() string { return s.Name }

// Tuple is an ordered, fixed-arity heterogeneous grouping.
type Tuple struct {
	Elems []Object
}

func NewTuple(elems []Object) *Tuple { return &Tuple{Elems: elems} }

func (t *Tuple) GetType() Kind { return TupleKind }
func (t *Tuple) String() string {
	return "(" + join(t.Elems) + ")"
}

// List is an ordered, mutable-length sequence.
type List struct {
	Elems []Object
}

func NewList(elems []Object) *List { return &List{Elems: elems} }

func (l *List) GetType() Kind { return ListKind }
func (l *List) String() string {
	return "[" + join(l.Elems) + "]"
}

// Set is an insertion-ordered collection of values written out
// element by element, compared set-equal (order-independent) but
// displayed in the order elements were first inserted.
type Set struct {
	Elems []Object
}

func NewSet(elems []Object) *Set { return &Set{Elems: elems} }

func (s *Set) GetType() Kind { return SetKind }
func (s *Set) String() string {
	return "{" + join(s.Elems) + "}"
}

// Has reports whether v is a member of the set by value equality.
func (s *Set) Has(v Object) bool {
	for _, e := range s.Elems {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

// ComprehensionSet is a set defined by predicate rather than
// enumeration. It is never iterated or expanded: membership is tested
// by binding Elem and re-entering the evaluator with Prop, never by
// walking an underlying collection.
type ComprehensionSet struct {
	// The element symbol and predicate are not stored here: evaluating
	// the predicate needs the evaluator, and object cannot import eval
	// (eval imports object), so both live behind the Checker interface,
	// implemented by the eval package.
	Checker Checker
}

// Checker tests whether a candidate value satisfies a comprehension
// set's membership predicate. The eval package supplies the concrete
// implementation, which evaluates the predicate in a fresh environment
// holding only the candidate binding, not the defining environment.
type Checker interface {
	Test(candidate Object) (bool, error)
}

func NewComprehensionSet(checker Checker) *ComprehensionSet {
	return &ComprehensionSet{Checker: checker}
}

func (c *ComprehensionSet) GetType() Kind  { return ComprehensionSetKind }
func (c *ComprehensionSet) String() string { return "{...}" }

// Function is either a builtin (Extern) or a user-defined, possibly
// multi-clause function (DefinedFunction). Both satisfy Object through
// the same Function wrapper so the evaluator has one call path.
type Function struct {
	Extern          ExternFunc
	DefinedFunction *DefinedFunction
}

// ExternFunc is a builtin implemented in Go.
type ExternFunc func(args []Object) (Object, error)

// DefinedFunction is a user-defined function, built up clause by
// clause as successive `let name(pattern, ...) := body` forms are
// evaluated against the same name.
type DefinedFunction struct {
	Clauses []FunctionClause
}

// FunctionClause is one pattern/body pair of a (possibly multi-clause)
// defined function.
type FunctionClause struct {
	Patterns []ast.Node
	Body     ast.Node
}

func NewExternFunction(fn ExternFunc) *Function {
	return &Function{Extern: fn}
}

func NewDefinedFunction(clauses ...FunctionClause) *Function {
	return &Function{DefinedFunction: &DefinedFunction{Clauses: clauses}}
}

func (f *Function) GetType() Kind  { return FunctionKind }
func (f *Function) String() string { return "<function>" }

// AddClause returns a new Function with clause appended to the
// existing DefinedFunction's clause list, implementing the language's
// multi-clause redefinition: `let f(...) := ...` adds to `f` rather
// than replacing it, unless f does not yet exist or is not a defined
// function.
func (f *Function) AddClause(clause FunctionClause) *Function {
	if f == nil || f.DefinedFunction == nil {
		return NewDefinedFunction(clause)
	}
	clauses := append(append([]FunctionClause{}, f.DefinedFunction.Clauses...), clause)
	return &Function{DefinedFunction: &DefinedFunction{Clauses: clauses}}
}

// Error is a failed runtime assertion: the only kind of Object-level
// error that flows through ordinary evaluation rather than as a Go
// error return, since `assert` is a callable the caller can inspect.
type Error struct {
	Message string
}

func NewError(msg string) *Error { return &Error{Message: msg} }

func (e *Error) GetType() Kind  { return ErrorKind }
func (e *Error) String() string { return fmt.Sprintf("assertion failed: %s", e.Message) }

func join(objs []Object) string {
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = o.String()
	}
	return strings.Join(parts, ", ")
}

// Equal implements the language's universal `==`: defined for any two
// values of any type, false across mismatched types, structural for
// composite values, set-equal (order-independent) for sets.
func Equal(a, b Object) bool {
	if a.GetType() != b.GetType() {
		return false
	}
	switch x := a.(type) {
	case *Integer:
		return x.Value.Cmp(b.(*Integer).Value) == 0
	case *Boolean:
		return x.Value == b.(*Boolean).Value
	case *Char:
		return x.Value == b.(*Char).Value
	case *String:
		return x.Value == b.(*String).Value
	case *Symbol:
		return x.Name == b.(*Symbol).Name
	case *Tuple:
		y := b.(*Tuple)
		if len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Equal(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	case *List:
		y := b.(*List)
		if len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Equal(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	case *Set:
		y := b.(*Set)
		for _, e := range x.Elems {
			if !y.Has(e) {
				return false
			}
		}
		for _, e := range y.Elems {
			if !x.Has(e) {
				return false
			}
		}
		return true
	case *Function:
		return x == b.(*Function)
	default:
		return a == b
	}
}
