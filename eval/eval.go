/*
File    : symstatic/eval/eval.go

Package eval walks the typed ast tree against an env.Environment and
produces object.Object values. Dispatch follows the same shape as the
reference evaluator this language was distilled from: undeclared
symbols evaluate to themselves, DefinedFunction clauses are tried in
order through the match package, For/comprehension/call bodies each
push and pop their own scope, and ComprehensionSet is never expanded —
only tested for membership, by re-entering the evaluator.
*/
package eval

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/danilopedraza/symstatic/ast"
	"github.com/danilopedraza/symstatic/env"
	"github.com/danilopedraza/symstatic/match"
	"github.com/danilopedraza/symstatic/object"
	"github.com/danilopedraza/symstatic/token"
)

// Error is any positioned evaluation-time failure.
type Error struct {
	Pos  token.Position
	Kind string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

func newError(pos token.Position, kind string, format string, args ...any) *Error {
	return &Error{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

const (
	KindMissingFunctionArguments = "MissingFunctionArguments"
	KindNonCallableObject        = "NonCallableObject"
	KindNonExistentOperation     = "NonExistentOperation"
	KindNonIterableObject        = "NonIterableObject"
	KindNonPrependableObject     = "NonPrependableObject"
	KindNoMatchingClause         = "NoMatchingClause"
	KindReadOnlyBinding          = "ReadOnlyBinding"
	KindArityMismatch            = "ArityMismatch"
	KindSymbolNotFound           = "SymbolNotFound"
	KindBadComprehensionProp     = "BadComprehensionProp"
	KindWildcardInExpression     = "WildcardInExpression"
)

// Evaluator holds the global environment plus the I/O streams println,
// print, and getln read and write to. It is grounded on the teacher
// interpreter's eval.Evaluator (Writer io.Writer, Reader *bufio.Reader,
// SetWriter/SetReader), so the same Evaluator instance can drive a
// file run, a REPL session, or a test with redirected I/O.
type Evaluator struct {
	Global *env.Environment
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Evaluator with a fresh global Environment, builtins
// registered, stdout for output, and stdin for input.
func New() *Evaluator {
	e := &Evaluator{
		Global: env.New(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
	e.registerBuiltins(e.Global)
	return e
}

// SetWriter redirects println/print output, e.g. to a test buffer or
// a TCP connection in server mode.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects getln input.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// Eval evaluates node against e's global environment.
func (e *Evaluator) Eval(node ast.Node) (object.Object, error) {
	return e.eval(node, e.Global)
}

// EvalIn evaluates node against a caller-supplied environment, used by
// module loading to evaluate an imported file's top level in its own
// temporary environment.
func (e *Evaluator) EvalIn(node ast.Node, scope *env.Environment) (object.Object, error) {
	return e.eval(node, scope)
}

func (e *Evaluator) eval(node ast.Node, scope *env.Environment) (object.Object, error) {
	switch n := node.(type) {
	case *ast.Symbol:
		return e.symbol(n, scope)
	case *ast.Integer:
		return e.integer(n)
	case *ast.String:
		return object.NewString(n.Value), nil
	case *ast.Char:
		return object.NewChar(n.Value), nil
	case *ast.Boolean:
		return object.NewBoolean(n.Value), nil
	case *ast.Wildcard:
		return nil, newError(n.Pos(), KindWildcardInExpression, "wildcard is only valid in pattern position")
	case *ast.Tuple:
		elems, err := e.evalList(n.Elems, scope)
		if err != nil {
			return nil, err
		}
		return object.NewTuple(elems), nil
	case *ast.ExtensionSet:
		elems, err := e.evalList(n.Elems, scope)
		if err != nil {
			return nil, err
		}
		return object.NewSet(elems), nil
	case *ast.ExtensionList:
		elems, err := e.evalList(n.Elems, scope)
		if err != nil {
			return nil, err
		}
		return object.NewList(elems), nil
	case *ast.ComprehensionSet:
		return e.comprehensionSet(n), nil
	case *ast.ComprehensionList:
		return e.comprehensionList(n, scope)
	case *ast.Prepend:
		return e.prepend(n, scope)
	case *ast.Prefix:
		return e.prefix(n, scope)
	case *ast.Infix:
		return e.infix(n, scope)
	case *ast.If:
		return e.if_(n, scope)
	case *ast.For:
		return e.for_(n, scope)
	case *ast.Let:
		return e.let(n, scope)
	case *ast.Signature:
		return object.NewTuple(nil), nil
	case *ast.Function:
		return object.NewDefinedFunction(object.FunctionClause{Patterns: n.Params, Body: n.Body}), nil
	case *ast.Call:
		return e.call(n, scope)
	case *ast.ImportFrom:
		return nil, newError(n.Pos(), KindSymbolNotFound, "import must be resolved by the module loader, not evaluated directly")
	default:
		return nil, newError(node.Pos(), "UnknownNode", "%T", node)
	}
}

func (e *Evaluator) evalList(nodes []ast.Node, scope *env.Environment) ([]object.Object, error) {
	out := make([]object.Object, 0, len(nodes))
	for _, n := range nodes {
		v, err := e.eval(n, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (e *Evaluator) symbol(n *ast.Symbol, scope *env.Environment) (object.Object, error) {
	if v, ok := scope.Get(n.Name); ok {
		return v, nil
	}
	return object.NewSymbol(n.Name), nil
}

func (e *Evaluator) integer(n *ast.Integer) (object.Object, error) {
	v, ok := new(big.Int).SetString(n.Digits, 10)
	if !ok {
		return nil, newError(n.Pos(), "BadIntegerLiteral", "%q", n.Digits)
	}
	return object.NewInteger(v), nil
}

func truthy(v object.Object) bool {
	b, ok := v.(*object.Boolean)
	return ok && b.Value
}

func (e *Evaluator) prefix(n *ast.Prefix, scope *env.Environment) (object.Object, error) {
	operand, err := e.eval(n.Operand, scope)
	if err != nil {
		return nil, err
	}

	var res object.Object
	switch n.Op {
	case token.MINUS:
		res, err = object.Neg(operand)
	case token.BITNOT:
		res, err = object.BitNot(operand)
	case token.NOT:
		res, err = object.Not(operand)
	default:
		return nil, newError(n.Pos(), KindNonExistentOperation, "unknown prefix operator %s", n.Op)
	}
	if err != nil {
		return nil, newError(n.Pos(), KindNonExistentOperation, "%s %s", n.Op, operand.GetType())
	}
	return res, nil
}

func (e *Evaluator) infix(n *ast.Infix, scope *env.Environment) (object.Object, error) {
	lhs, err := e.eval(n.Lhs, scope)
	if err != nil {
		return nil, err
	}
	// `||` and `&&` short-circuit: a true left operand of `||` or a
	// false left operand of `&&` decides the result unevaluated.
	if b, ok := lhs.(*object.Boolean); ok {
		if (n.Op == token.OR && b.Value) || (n.Op == token.AND && !b.Value) {
			return object.NewBoolean(b.Value), nil
		}
	}
	rhs, err := e.eval(n.Rhs, scope)
	if err != nil {
		return nil, err
	}

	if n.Op == token.IN {
		return e.contains(rhs, lhs, n.Pos())
	}

	var res object.Object
	switch n.Op {
	case token.PLUS:
		res, err = object.Add(lhs, rhs)
	case token.MINUS:
		res, err = object.Sub(lhs, rhs)
	case token.STAR:
		res, err = object.Mul(lhs, rhs)
	case token.SLASH:
		res, err = object.Div(lhs, rhs)
	case token.PERCENT:
		res, err = object.Mod(lhs, rhs)
	case token.DSTAR:
		res, err = object.Pow(lhs, rhs)
	case token.LT:
		res, err = object.Lt(lhs, rhs)
	case token.LE:
		res, err = object.Le(lhs, rhs)
	case token.GT:
		res, err = object.Gt(lhs, rhs)
	case token.GE:
		res, err = object.Ge(lhs, rhs)
	case token.EQ:
		res, err = object.Eq(lhs, rhs)
	case token.NEQ:
		res, err = object.Neq(lhs, rhs)
	case token.AND:
		res, err = object.And(lhs, rhs)
	case token.OR:
		res, err = object.Or(lhs, rhs)
	case token.BITAND:
		res, err = object.BitAnd(lhs, rhs)
	case token.BITXOR:
		res, err = object.BitXor(lhs, rhs)
	case token.SHL:
		res, err = object.Shl(lhs, rhs)
	case token.SHR:
		res, err = object.Shr(lhs, rhs)
	default:
		return nil, newError(n.Pos(), KindNonExistentOperation, "unknown infix operator %s", n.Op)
	}
	if err != nil {
		return nil, newError(n.Pos(), KindNonExistentOperation, "%s %s %s", lhs.GetType(), n.Op, rhs.GetType())
	}
	return res, nil
}

// contains implements `in`, checking ComprehensionSet membership by
// re-entering the evaluator before falling back to the linear/set
// search object.Contains performs for List and Set.
func (e *Evaluator) contains(rhs, lhs object.Object, pos token.Position) (object.Object, error) {
	if cs, ok := rhs.(*object.ComprehensionSet); ok {
		ok, err := cs.Checker.Test(lhs)
		if err != nil {
			return nil, err
		}
		return object.NewBoolean(ok), nil
	}
	res, err := object.Contains(rhs, lhs)
	if err != nil {
		return nil, newError(pos, KindNonExistentOperation, "in on %s", rhs.GetType())
	}
	return res, nil
}

func (e *Evaluator) if_(n *ast.If, scope *env.Environment) (object.Object, error) {
	cond, err := e.eval(n.Cond, scope)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return e.eval(n.Then, scope)
	}
	return e.eval(n.Else, scope)
}

// elements returns the iteration sequence of an object valid as a For
// or comprehension iterable: ExtensionList, ExtensionSet, Tuple, or
// String (iterated rune by rune).
func elements(v object.Object) ([]object.Object, bool) {
	switch x := v.(type) {
	case *object.List:
		return x.Elems, true
	case *object.Set:
		return x.Elems, true
	case *object.Tuple:
		return x.Elems, true
	case *object.String:
		runes := []rune(x.Value)
		out := make([]object.Object, len(runes))
		for i, r := range runes {
			out[i] = object.NewChar(r)
		}
		return out, true
	}
	return nil, false
}

func (e *Evaluator) for_(n *ast.For, scope *env.Environment) (object.Object, error) {
	iterable, err := e.eval(n.Iterable, scope)
	if err != nil {
		return nil, err
	}
	items, ok := elements(iterable)
	if !ok {
		return nil, newError(n.Iterable.Pos(), KindNonIterableObject, "%s", iterable.GetType())
	}

	inner := scope.PushScope()
	for _, item := range items {
		inner.Set(n.Var, item)
		if _, err := e.eval(n.Body, inner); err != nil {
			return nil, err
		}
	}

	return object.NewTuple(nil), nil
}

func (e *Evaluator) comprehensionList(n *ast.ComprehensionList, scope *env.Environment) (object.Object, error) {
	prop, ok := n.Prop.(*ast.Infix)
	if !ok || prop.Op != token.IN {
		return nil, newError(n.Pos(), KindBadComprehensionProp, "list comprehension predicate must be `symbol in iterable`")
	}
	symbol, ok := prop.Lhs.(*ast.Symbol)
	if !ok {
		return nil, newError(prop.Pos(), KindBadComprehensionProp, "left side of `in` must be a bare symbol")
	}

	iterable, err := e.eval(prop.Rhs, scope)
	if err != nil {
		return nil, err
	}
	items, ok := elements(iterable)
	if !ok {
		return nil, newError(prop.Rhs.Pos(), KindNonIterableObject, "%s", iterable.GetType())
	}

	inner := scope.PushScope()
	result := make([]object.Object, 0, len(items))
	for _, item := range items {
		inner.Set(symbol.Name, item)
		v, err := e.eval(n.Transform, inner)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}

	return object.NewList(result), nil
}

// checker implements object.Checker for a ComprehensionSet's element
// symbol and predicate expression. It does not close over the scope
// the set literal was built in: membership is decided by evaluating
// the predicate in an empty environment extended with only the
// candidate binding, not the defining scope's outer bindings.
type checker struct {
	eval *Evaluator
	elem string
	prop ast.Node
}

func (c *checker) Test(candidate object.Object) (bool, error) {
	inner := env.New()
	inner.Set(c.elem, candidate)
	v, err := c.eval.eval(c.prop, inner)
	if err != nil {
		return false, err
	}
	return truthy(v), nil
}

func (e *Evaluator) comprehensionSet(n *ast.ComprehensionSet) object.Object {
	name := ""
	if sym, ok := n.Elem.(*ast.Symbol); ok {
		name = sym.Name
	}
	return object.NewComprehensionSet(&checker{eval: e, elem: name, prop: n.Prop})
}

func (e *Evaluator) prepend(n *ast.Prepend, scope *env.Environment) (object.Object, error) {
	head, err := e.eval(n.Head, scope)
	if err != nil {
		return nil, err
	}
	tailVal, err := e.eval(n.Tail, scope)
	if err != nil {
		return nil, err
	}
	tail, ok := tailVal.(*object.List)
	if !ok {
		return nil, newError(n.Tail.Pos(), KindNonPrependableObject, "%s", tailVal.GetType())
	}
	elems := append([]object.Object{head}, tail.Elems...)
	return object.NewList(elems), nil
}

func (e *Evaluator) let(n *ast.Let, scope *env.Environment) (object.Object, error) {
	if n.Params == nil {
		value, err := e.eval(n.Value, scope)
		if err != nil {
			return nil, err
		}
		if !scope.Set(n.Ident, value) {
			return nil, newError(n.Pos(), KindReadOnlyBinding, "%s is bound immutably in this scope", n.Ident)
		}
		return value, nil
	}
	return e.letFunction(n, scope)
}

func (e *Evaluator) letFunction(n *ast.Let, scope *env.Environment) (object.Object, error) {
	clause := object.FunctionClause{Patterns: n.Params, Body: n.Value}

	existing, ok := scope.Get(n.Ident)
	if !ok {
		fn := object.NewDefinedFunction(clause)
		scope.SetImmutable(n.Ident, fn)
		return fn, nil
	}

	fn, ok := existing.(*object.Function)
	if !ok || fn.DefinedFunction == nil {
		return nil, newError(n.Pos(), KindArityMismatch, "%s is not a function", n.Ident)
	}
	if len(fn.DefinedFunction.Clauses) > 0 && len(fn.DefinedFunction.Clauses[0].Patterns) != len(n.Params) {
		return nil, newError(n.Pos(), KindArityMismatch, "clause for %s has %d parameters, expected %d",
			n.Ident, len(n.Params), len(fn.DefinedFunction.Clauses[0].Patterns))
	}

	updated := fn.AddClause(clause)
	scope.SetImmutable(n.Ident, updated)
	return updated, nil
}

func (e *Evaluator) call(n *ast.Call, scope *env.Environment) (object.Object, error) {
	callee, err := e.eval(n.Callee, scope)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*object.Function)
	if !ok {
		return nil, newError(n.Callee.Pos(), KindNonCallableObject, "%s", callee.GetType())
	}

	args, err := e.evalList(n.Args, scope)
	if err != nil {
		return nil, err
	}

	if fn.Extern != nil {
		return fn.Extern(args)
	}

	if fn.DefinedFunction == nil || len(fn.DefinedFunction.Clauses) == 0 {
		return nil, newError(n.Pos(), KindNoMatchingClause, "function has no clauses")
	}
	if len(args) < len(fn.DefinedFunction.Clauses[0].Patterns) {
		return nil, newError(n.Pos(), KindMissingFunctionArguments, "got %d, want %d", len(args), len(fn.DefinedFunction.Clauses[0].Patterns))
	}

	for _, clause := range fn.DefinedFunction.Clauses {
		bindings, ok := match.Call(func(node ast.Node) (object.Object, error) {
			return e.eval(node, env.New())
		}, clause.Patterns, args)
		if !ok {
			continue
		}
		inner := scope.PushScope()
		for name, v := range bindings {
			inner.Set(name, v)
		}
		return e.eval(clause.Body, inner)
	}

	return nil, newError(n.Pos(), KindNoMatchingClause, "no clause of %s matches the given arguments", describeCallee(n.Callee))
}

func describeCallee(node ast.Node) string {
	if sym, ok := node.(*ast.Symbol); ok {
		return sym.Name
	}
	return "<function>"
}
