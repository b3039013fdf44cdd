/*
File    : symstatic/match/match_test.go
*/
package match

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilopedraza/symstatic/ast"
	"github.com/danilopedraza/symstatic/object"
	"github.com/danilopedraza/symstatic/token"
)

func noopEval(node ast.Node) (object.Object, error) {
	if sym, ok := node.(*ast.Symbol); ok {
		return object.NewSymbol(sym.Name), nil
	}
	if n, ok := node.(*ast.Integer); ok {
		v, _ := new(big.Int).SetString(n.Digits, 10)
		return object.NewInteger(v), nil
	}
	return nil, nil
}

func TestMatch_WildcardMatchesAnything(t *testing.T) {
	patterns := []ast.Node{ast.NewWildcard(token.Position{})}
	args := []object.Object{object.NewIntegerFromInt64(5)}
	b, ok := Call(noopEval, patterns, args)
	require.True(t, ok)
	assert.Empty(t, b)
}

func TestMatch_SymbolCaptures(t *testing.T) {
	patterns := []ast.Node{ast.NewSymbol("x", token.Position{})}
	args := []object.Object{object.NewIntegerFromInt64(5)}
	b, ok := Call(noopEval, patterns, args)
	require.True(t, ok)
	assert.Equal(t, int64(5), b["x"].(*object.Integer).Value.Int64())
}

func TestMatch_ExtensionListElementwise(t *testing.T) {
	pattern := ast.NewExtensionList([]ast.Node{ast.NewSymbol("a", token.Position{})}, token.Position{})
	val := object.NewList([]object.Object{object.NewIntegerFromInt64(1)})
	b, ok := match(noopEval, pattern, val)
	require.True(t, ok)
	assert.Equal(t, int64(1), b["a"].(*object.Integer).Value.Int64())
}

func TestMatch_ExtensionListLengthMismatchFails(t *testing.T) {
	pattern := ast.NewExtensionList([]ast.Node{ast.NewSymbol("a", token.Position{})}, token.Position{})
	val := object.NewList([]object.Object{object.NewIntegerFromInt64(1), object.NewIntegerFromInt64(2)})
	_, ok := match(noopEval, pattern, val)
	assert.False(t, ok)
}

func TestMatch_PrependHeadTail(t *testing.T) {
	pattern := ast.NewPrepend(
		ast.NewSymbol("first", token.Position{}),
		ast.NewSymbol("rest", token.Position{}),
		token.Position{},
	)
	val := object.NewList([]object.Object{object.NewIntegerFromInt64(4)})
	b, ok := match(noopEval, pattern, val)
	require.True(t, ok)
	assert.Equal(t, int64(4), b["first"].(*object.Integer).Value.Int64())
	assert.Equal(t, []object.Object{}, b["rest"].(*object.List).Elems)
}

func TestMatch_PrependEmptyListFails(t *testing.T) {
	pattern := ast.NewPrepend(
		ast.NewSymbol("first", token.Position{}),
		ast.NewSymbol("rest", token.Position{}),
		token.Position{},
	)
	val := object.NewList(nil)
	_, ok := match(noopEval, pattern, val)
	assert.False(t, ok)
}

func TestMatch_ConflictingBindingsFail(t *testing.T) {
	patterns := []ast.Node{
		ast.NewSymbol("x", token.Position{}),
		ast.NewSymbol("x", token.Position{}),
	}
	args := []object.Object{
		object.NewIntegerFromInt64(1),
		object.NewIntegerFromInt64(2),
	}
	_, ok := Call(noopEval, patterns, args)
	assert.False(t, ok)
}

func TestMatch_TwoArgs(t *testing.T) {
	patterns := []ast.Node{
		ast.NewExtensionList([]ast.Node{ast.NewSymbol("a", token.Position{})}, token.Position{}),
		ast.NewExtensionList([]ast.Node{ast.NewSymbol("b", token.Position{})}, token.Position{}),
	}
	args := []object.Object{
		object.NewList([]object.Object{object.NewIntegerFromInt64(1)}),
		object.NewList([]object.Object{object.NewIntegerFromInt64(2)}),
	}
	b, ok := Call(noopEval, patterns, args)
	require.True(t, ok)
	assert.Equal(t, int64(1), b["a"].(*object.Integer).Value.Int64())
	assert.Equal(t, int64(2), b["b"].(*object.Integer).Value.Int64())
}
