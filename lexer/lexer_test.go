/*
File    : symstatic/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danilopedraza/symstatic/token"
)

func kinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	l := New(src)
	var got []token.Kind
	for {
		tok, err := l.Next()
		assert.NoError(t, err)
		if tok.Kind == token.EOF {
			break
		}
		got = append(got, tok.Kind)
	}
	return got
}

func TestLexer_Integers(t *testing.T) {
	assert.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT}, kinds(t, "123 + 31"))
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{":=", []token.Kind{token.ASSIGN}},
		{"->", []token.Kind{token.ARROW}},
		{"**", []token.Kind{token.DSTAR}},
		{"/=", []token.Kind{token.NEQ}},
		{"<= >= == && ||", []token.Kind{token.LE, token.GE, token.EQ, token.AND, token.OR}},
		{"<< >>", []token.Kind{token.SHL, token.SHR}},
		{"~ ! & ^ |", []token.Kind{token.BITNOT, token.NOT, token.BITAND, token.BITXOR, token.PIPE}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kinds(t, tt.input), tt.input)
	}
}

func TestLexer_KeywordsAndIdents(t *testing.T) {
	assert.Equal(t,
		[]token.Kind{token.LET, token.IDENT, token.ASSIGN, token.IF, token.TRUE, token.THEN, token.FALSE, token.ELSE},
		kinds(t, "let x := if true then false else"),
	)
}

func TestLexer_Wildcard(t *testing.T) {
	assert.Equal(t, []token.Kind{token.UNDERSCORE, token.COMMA, token.IDENT}, kinds(t, "_, _abc"))
}

func TestLexer_StringAndChar(t *testing.T) {
	l := New(`"hello\n" 'a'`)

	str, err := l.Next()
	assert.NoError(t, err)
	assert.Equal(t, token.STRING, str.Kind)
	assert.Equal(t, "hello\n", str.Literal)

	ch, err := l.Next()
	assert.NoError(t, err)
	assert.Equal(t, token.CHAR, ch.Kind)
	assert.Equal(t, "a", ch.Literal)
}

func TestLexer_Brackets(t *testing.T) {
	assert.Equal(t,
		[]token.Kind{token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET, token.LPAREN, token.RPAREN, token.PIPE, token.COLON},
		kinds(t, "{ } [ ] ( ) | :"),
	)
}

func TestLexer_UnexpectedChar(t *testing.T) {
	l := New("@")
	_, err := l.Next()
	assert.Error(t, err)
	var lexErr *Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, '@', lexErr.Char)
}

func TestLexer_Positions(t *testing.T) {
	l := New("ab\ncd")
	first, err := l.Next()
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Pos.Line)
	assert.Equal(t, 1, first.Pos.Column)

	nl, err := l.Next()
	assert.NoError(t, err)
	assert.Equal(t, token.NEWLINE, nl.Kind)

	second, err := l.Next()
	assert.NoError(t, err)
	assert.Equal(t, 2, second.Pos.Line)
	assert.Equal(t, 1, second.Pos.Column)
}

func TestLexer_EOFRepeats(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		assert.NoError(t, err)
		assert.Equal(t, token.EOF, tok.Kind)
	}
}
