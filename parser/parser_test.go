/*
File    : symstatic/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilopedraza/symstatic/cst"
	"github.com/danilopedraza/symstatic/token"
)

func parseOne(t *testing.T, src string) cst.Node {
	t.Helper()
	p := New(src)
	node, err := p.Next()
	require.NoError(t, err)
	require.False(t, p.HasErrors())
	require.NotNil(t, node)
	return node
}

func TestParser_IntegerLiteral(t *testing.T) {
	node := parseOne(t, "42")
	lit, ok := node.(*cst.Integer)
	require.True(t, ok)
	assert.Equal(t, "42", lit.Digits)
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	node := parseOne(t, "1 + 2 * 3")
	infix, ok := node.(*cst.Infix)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, infix.Op)

	rhs, ok := infix.Rhs.(*cst.Infix)
	require.True(t, ok)
	assert.Equal(t, token.STAR, rhs.Op)
}

func TestParser_ExponentRightAssociative(t *testing.T) {
	node := parseOne(t, "2 ** 3 ** 2")
	infix, ok := node.(*cst.Infix)
	require.True(t, ok)
	assert.Equal(t, token.DSTAR, infix.Op)

	lhs, ok := infix.Lhs.(*cst.Integer)
	require.True(t, ok)
	assert.Equal(t, "2", lhs.Digits)

	rhs, ok := infix.Rhs.(*cst.Infix)
	require.True(t, ok)
	assert.Equal(t, token.DSTAR, rhs.Op)
}

func TestParser_PrefixMinus(t *testing.T) {
	node := parseOne(t, "-x")
	prefix, ok := node.(*cst.Prefix)
	require.True(t, ok)
	assert.Equal(t, token.MINUS, prefix.Op)
	_, ok = prefix.Operand.(*cst.Ident)
	assert.True(t, ok)
}

func TestParser_Call(t *testing.T) {
	node := parseOne(t, "f(1, 2, 3)")
	call, ok := node.(*cst.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 3)
}

func TestParser_EmptyTuple(t *testing.T) {
	node := parseOne(t, "()")
	tuple, ok := node.(*cst.Tuple)
	require.True(t, ok)
	assert.Empty(t, tuple.Elems)
}

func TestParser_Grouping(t *testing.T) {
	node := parseOne(t, "(1 + 2)")
	_, ok := node.(*cst.Grouping)
	assert.True(t, ok)
}

func TestParser_Tuple(t *testing.T) {
	node := parseOne(t, "(1, 2)")
	tuple, ok := node.(*cst.Tuple)
	require.True(t, ok)
	assert.Len(t, tuple.Elems, 2)
}

func TestParser_SetLiteral(t *testing.T) {
	node := parseOne(t, "{1, 2, 3}")
	set, ok := node.(*cst.SetLiteral)
	require.True(t, ok)
	assert.Len(t, set.Elems, 3)
}

func TestParser_SetComprehension(t *testing.T) {
	node := parseOne(t, "{x : x > 0}")
	comp, ok := node.(*cst.SetComprehension)
	require.True(t, ok)
	assert.NotNil(t, comp.Elem)
	assert.NotNil(t, comp.Prop)
}

func TestParser_ListComprehension(t *testing.T) {
	node := parseOne(t, "[x * 2 : x in xs]")
	comp, ok := node.(*cst.ListComprehension)
	require.True(t, ok)
	assert.NotNil(t, comp.Transform)
	assert.NotNil(t, comp.Prop)
}

func TestParser_Prepend(t *testing.T) {
	node := parseOne(t, "[x|xs]")
	prep, ok := node.(*cst.Prepend)
	require.True(t, ok)
	assert.NotNil(t, prep.Head)
	assert.NotNil(t, prep.Tail)
}

func TestParser_If(t *testing.T) {
	node := parseOne(t, "if x > 0 then 1 else 0")
	iff, ok := node.(*cst.If)
	require.True(t, ok)
	assert.NotNil(t, iff.Cond)
	assert.NotNil(t, iff.Then)
	assert.NotNil(t, iff.Else)
}

func TestParser_For(t *testing.T) {
	node := parseOne(t, "for x in xs : x")
	forNode, ok := node.(*cst.For)
	require.True(t, ok)
	assert.Equal(t, "x", forNode.Var.Name)
}

func TestParser_LetValue(t *testing.T) {
	node := parseOne(t, "let x := 5")
	letNode, ok := node.(*cst.Let)
	require.True(t, ok)
	assert.Equal(t, "x", letNode.Signature.Ident.Name)
	assert.Nil(t, letNode.Params)
	assert.NotNil(t, letNode.Value)
}

func TestParser_LetFunction(t *testing.T) {
	node := parseOne(t, "let add(x, y) := x + y")
	letNode, ok := node.(*cst.Let)
	require.True(t, ok)
	assert.Equal(t, "add", letNode.Signature.Ident.Name)
	assert.Len(t, letNode.Params, 2)
}

func TestParser_ArrowFunction(t *testing.T) {
	node := parseOne(t, "x -> x + 1")
	infix, ok := node.(*cst.Infix)
	require.True(t, ok)
	assert.Equal(t, token.ARROW, infix.Op)
}

func TestParser_Program(t *testing.T) {
	p := New("let x := 1\nlet y := 2\nx + y")
	nodes, err := p.Program()
	require.NoError(t, err)
	assert.Len(t, nodes, 3)
}

func TestParser_UnexpectedToken(t *testing.T) {
	p := New(")")
	_, err := p.Next()
	assert.Error(t, err)
}
