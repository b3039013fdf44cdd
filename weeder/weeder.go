/*
File    : symstatic/weeder/weeder.go

Package weeder rewrites the concrete syntax tree into the typed ast
tree the evaluator walks. It is a total function over any cst.Node:
every grouping parenthesis is erased, arrow functions are lowered into
ast.Function literals, and every concrete `let` shape is resolved into
either a signature, a value binding, or a function clause. A function
clause with no body, or a node kind the weeder does not know, is
reported as a BadSyntax error rather than silently coerced. Parameter
patterns (on the left of `->` or in a `let` clause) are weeded as
ordinary expressions; the weeder does not reject non-pattern shapes
there.
*/
package weeder

import (
	"fmt"

	"github.com/danilopedraza/symstatic/ast"
	"github.com/danilopedraza/symstatic/cst"
	"github.com/danilopedraza/symstatic/token"
)

// BadSyntax reports a CST shape that parses but has no valid meaning,
// such as a let-clause with parameters but no body.
type BadSyntax struct {
	Pos token.Position
	Msg string
}

func (e *BadSyntax) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Weed converts one top-level CST node into its AST form.
func Weed(node cst.Node) (ast.Node, error) {
	return weed(node)
}

// Program weeds a whole slice of top-level CST nodes, stopping at the
// first error.
func Program(nodes []cst.Node) ([]ast.Node, error) {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		woven, err := weed(n)
		if err != nil {
			return nil, err
		}
		out = append(out, woven)
	}
	return out, nil
}

func weedSlice(nodes []cst.Node) ([]ast.Node, error) {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		woven, err := weed(n)
		if err != nil {
			return nil, err
		}
		out = append(out, woven)
	}
	return out, nil
}

func weed(node cst.Node) (ast.Node, error) {
	switch n := node.(type) {
	case *cst.Grouping:
		return weed(n.Inner)

	case *cst.Ident:
		return ast.NewSymbol(n.Name, n.Pos()), nil
	case *cst.Integer:
		return ast.NewInteger(n.Digits, n.Pos()), nil
	case *cst.StringLit:
		return ast.NewString(n.Value, n.Pos()), nil
	case *cst.CharLit:
		return ast.NewChar(n.Value, n.Pos()), nil
	case *cst.BooleanLit:
		return ast.NewBoolean(n.Value, n.Pos()), nil
	case *cst.Wildcard:
		return ast.NewWildcard(n.Pos()), nil

	case *cst.Tuple:
		elems, err := weedSlice(n.Elems)
		if err != nil {
			return nil, err
		}
		return ast.NewTuple(elems, n.Pos()), nil

	case *cst.SetLiteral:
		elems, err := weedSlice(n.Elems)
		if err != nil {
			return nil, err
		}
		return ast.NewExtensionSet(elems, n.Pos()), nil

	case *cst.ListLiteral:
		elems, err := weedSlice(n.Elems)
		if err != nil {
			return nil, err
		}
		return ast.NewExtensionList(elems, n.Pos()), nil

	case *cst.SetComprehension:
		elem, err := weed(n.Elem)
		if err != nil {
			return nil, err
		}
		prop, err := weed(n.Prop)
		if err != nil {
			return nil, err
		}
		return ast.NewComprehensionSet(elem, prop, n.Pos()), nil

	case *cst.ListComprehension:
		transform, err := weed(n.Transform)
		if err != nil {
			return nil, err
		}
		prop, err := weed(n.Prop)
		if err != nil {
			return nil, err
		}
		return ast.NewComprehensionList(transform, prop, n.Pos()), nil

	case *cst.Prepend:
		head, err := weed(n.Head)
		if err != nil {
			return nil, err
		}
		tail, err := weed(n.Tail)
		if err != nil {
			return nil, err
		}
		return ast.NewPrepend(head, tail, n.Pos()), nil

	case *cst.Prefix:
		operand, err := weed(n.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewPrefix(n.Op, operand, n.Pos()), nil

	case *cst.Infix:
		return weedInfix(n)

	case *cst.If:
		cond, err := weed(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := weed(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := weed(n.Else)
		if err != nil {
			return nil, err
		}
		return ast.NewIf(cond, then, els, n.Pos()), nil

	case *cst.For:
		iterable, err := weed(n.Iterable)
		if err != nil {
			return nil, err
		}
		body, err := weed(n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewFor(n.Var.Name, iterable, body, n.Pos()), nil

	case *cst.Call:
		callee, err := weed(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := weedSlice(n.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewCall(callee, args, n.Pos()), nil

	case *cst.Let:
		return weedLet(n)

	case *cst.ImportFrom:
		names := make([]ast.ImportName, 0, len(n.Names))
		for _, name := range n.Names {
			names = append(names, *ast.NewImportName(name.Name, name.Pos()))
		}
		return ast.NewImportFrom(n.Module, names, n.Pos()), nil

	default:
		return nil, &BadSyntax{Pos: node.Pos(), Msg: fmt.Sprintf("unweavable node %T", node)}
	}
}

// weedInfix lowers `->` arrow expressions into ast.Function literals
// and passes every other infix operator straight through.
func weedInfix(n *cst.Infix) (ast.Node, error) {
	if n.Op != token.ARROW {
		lhs, err := weed(n.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := weed(n.Rhs)
		if err != nil {
			return nil, err
		}
		return ast.NewInfix(n.Op, lhs, rhs, n.Pos()), nil
	}

	params, err := weedParamList(n.Lhs)
	if err != nil {
		return nil, err
	}

	body, err := weed(n.Rhs)
	if err != nil {
		return nil, err
	}

	return ast.NewFunction(params, body, n.Pos()), nil
}

// weedParamList interprets the left side of an arrow function as a
// parameter pattern list: a bare tuple unpacks into one pattern per
// element (including the empty tuple, a zero-parameter function), and
// anything else is a single parameter pattern.
func weedParamList(lhs cst.Node) ([]ast.Node, error) {
	if tuple, ok := lhs.(*cst.Tuple); ok {
		return weedPatternSlice(tuple.Elems)
	}
	pattern, err := weedPattern(lhs)
	if err != nil {
		return nil, err
	}
	return []ast.Node{pattern}, nil
}

func weedPatternSlice(nodes []cst.Node) ([]ast.Node, error) {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		p, err := weedPattern(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// weedPattern weeds a node appearing in pattern position. Patterns are
// a subset of expressions (symbols, wildcards, list prepend/extension
// shapes, and literals used as equality patterns), so weeding reuses
// the same logic as expressions; the match package enforces structural
// legality at match time.
func weedPattern(node cst.Node) (ast.Node, error) {
	return weed(node)
}

// weedLet resolves a concrete `let` into one of three AST shapes:
// a bare signature (no value), a value binding (no params), or a
// function clause (params present).
func weedLet(n *cst.Let) (ast.Node, error) {
	if n.Value == nil {
		if n.Params != nil {
			return nil, &BadSyntax{Pos: n.Pos(), Msg: "function clause has no body"}
		}
		var typ ast.Node
		if n.Signature.Type != nil {
			woven, err := weed(n.Signature.Type)
			if err != nil {
				return nil, err
			}
			typ = woven
		}
		return ast.NewSignature(n.Signature.Ident.Name, typ, n.Pos()), nil
	}

	value, err := weed(n.Value)
	if err != nil {
		return nil, err
	}

	if n.Params == nil {
		return ast.NewLet(n.Signature.Ident.Name, nil, value, n.Pos()), nil
	}

	params, err := weedPatternSlice(n.Params)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = []ast.Node{}
	}

	return ast.NewLet(n.Signature.Ident.Name, params, value, n.Pos()), nil
}
