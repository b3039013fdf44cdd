/*
File    : symstatic/weeder/weeder_test.go
*/
package weeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilopedraza/symstatic/ast"
	"github.com/danilopedraza/symstatic/parser"
)

func weedSrc(t *testing.T, src string) ast.Node {
	t.Helper()
	p := parser.New(src)
	node, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, node)

	woven, err := Weed(node)
	require.NoError(t, err)
	return woven
}

func TestWeeder_GroupingErased(t *testing.T) {
	node := weedSrc(t, "(1 + 2)")
	_, ok := node.(*ast.Infix)
	assert.True(t, ok)
}

func TestWeeder_ArrowSingleParam(t *testing.T) {
	node := weedSrc(t, "x -> x + 1")
	fn, ok := node.(*ast.Function)
	require.True(t, ok)
	require.Len(t, fn.Params, 1)
	sym, ok := fn.Params[0].(*ast.Symbol)
	require.True(t, ok)
	assert.Equal(t, "x", sym.Name)
}

func TestWeeder_ArrowMultiParam(t *testing.T) {
	node := weedSrc(t, "(x, y) -> x + y")
	fn, ok := node.(*ast.Function)
	require.True(t, ok)
	assert.Len(t, fn.Params, 2)
}

func TestWeeder_ArrowZeroParam(t *testing.T) {
	node := weedSrc(t, "() -> 1")
	fn, ok := node.(*ast.Function)
	require.True(t, ok)
	assert.Empty(t, fn.Params)
}

func TestWeeder_LetValueBinding(t *testing.T) {
	node := weedSrc(t, "let x := 5")
	let, ok := node.(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "x", let.Ident)
	assert.Nil(t, let.Params)
}

func TestWeeder_LetFunctionClause(t *testing.T) {
	node := weedSrc(t, "let add(x, y) := x + y")
	let, ok := node.(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "add", let.Ident)
	assert.Len(t, let.Params, 2)
}

func TestWeeder_BareSignature(t *testing.T) {
	node := weedSrc(t, "let x : Int")
	sig, ok := node.(*ast.Signature)
	require.True(t, ok)
	assert.Equal(t, "x", sig.Ident)
	assert.NotNil(t, sig.Type)
}

func TestWeeder_ComprehensionSet(t *testing.T) {
	node := weedSrc(t, "{x : x > 0}")
	comp, ok := node.(*ast.ComprehensionSet)
	require.True(t, ok)
	assert.NotNil(t, comp.Elem)
	assert.NotNil(t, comp.Prop)
}

func TestWeeder_ComprehensionList(t *testing.T) {
	node := weedSrc(t, "[x * 2 : x in xs]")
	comp, ok := node.(*ast.ComprehensionList)
	require.True(t, ok)
	assert.NotNil(t, comp.Transform)
}

func TestWeeder_Prepend(t *testing.T) {
	node := weedSrc(t, "[x|xs]")
	prep, ok := node.(*ast.Prepend)
	require.True(t, ok)
	assert.NotNil(t, prep.Head)
	assert.NotNil(t, prep.Tail)
}

func TestWeeder_ForLoop(t *testing.T) {
	node := weedSrc(t, "for x in xs : x")
	forNode, ok := node.(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "x", forNode.Var)
}
