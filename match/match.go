/*
File    : symstatic/match/match.go

Package match implements the structural pattern matching used to
dispatch a call against a defined function's clauses. It is a direct
port of the matcher every clause lookup in komodo is built on:
Wildcard matches anything and binds nothing, Symbol captures the whole
value, ExtensionList matches an exact-length list elementwise, Prepend
matches a non-empty list by head/tail, and any other node is evaluated
in an empty environment and compared for equality against the value.
*/
package match

import (
	"github.com/danilopedraza/symstatic/ast"
	"github.com/danilopedraza/symstatic/object"
)

// Bindings maps pattern-captured names to the values they matched.
type Bindings map[string]object.Object

// Evaluator is supplied by the eval package at call time so match can
// evaluate a literal pattern (e.g. matching against the integer 0)
// without importing eval, which itself imports match.
type Evaluator func(node ast.Node) (object.Object, error)

// Call matches a full argument list against one clause's parameter
// patterns, returning the bindings of every capture on success.
func Call(eval Evaluator, patterns []ast.Node, args []object.Object) (Bindings, bool) {
	return matchList(eval, patterns, args)
}

func matchList(eval Evaluator, patterns []ast.Node, vals []object.Object) (Bindings, bool) {
	if len(patterns) != len(vals) {
		return nil, false
	}

	result := Bindings{}
	for i, pattern := range patterns {
		b, ok := match(eval, pattern, vals[i])
		if !ok {
			return nil, false
		}
		if joined, ok := join(result, b); ok {
			result = joined
		} else {
			return nil, false
		}
	}
	return result, true
}

func match(eval Evaluator, pattern ast.Node, val object.Object) (Bindings, bool) {
	switch p := pattern.(type) {
	case *ast.Wildcard:
		return Bindings{}, true
	case *ast.Symbol:
		return Bindings{p.Name: val}, true
	case *ast.ExtensionList:
		list, ok := val.(*object.List)
		if !ok {
			return nil, false
		}
		return matchList(eval, p.Elems, list.Elems)
	case *ast.Prepend:
		list, ok := val.(*object.List)
		if !ok || len(list.Elems) == 0 {
			return nil, false
		}
		head, ok := match(eval, p.Head, list.Elems[0])
		if !ok {
			return nil, false
		}
		tail, ok := match(eval, p.Tail, object.NewList(list.Elems[1:]))
		if !ok {
			return nil, false
		}
		return join(head, tail)
	default:
		return matchConstant(eval, pattern, val)
	}
}

func matchConstant(eval Evaluator, pattern ast.Node, val object.Object) (Bindings, bool) {
	result, err := eval(pattern)
	if err != nil {
		return nil, false
	}
	if object.Equal(result, val) {
		return Bindings{}, true
	}
	return nil, false
}

// join unions two successful binding sets, failing if the same name is
// bound to two different values by different patterns in the clause.
func join(a, b Bindings) (Bindings, bool) {
	out := Bindings{}
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok && !object.Equal(existing, v) {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}
