/*
File    : symstatic/parser/parser.go

Package parser implements a Pratt (operator-precedence) parser over the
token stream produced by the lexer. It follows the teacher interpreter's
parser shape — a struct holding the lexer plus one token of lookahead,
`parseExpression(precedence)` dispatching a prefix parser by token kind
and then looping over infix parsers while the next operator binds
tighter than the caller's — generalized to komodo's grammar and to
returning errors rather than panicking: parsing stops at the first
error, which Program reports to the caller.
*/
package parser

import (
	"fmt"

	"github.com/danilopedraza/symstatic/cst"
	"github.com/danilopedraza/symstatic/lexer"
	"github.com/danilopedraza/symstatic/token"
)

// precedence levels, ascending, exactly as the language specifies:
// Lowest < Correspondence < Or < LogicAnd < BitwiseXor < BitwiseAnd <
// Comparison < Shift < Addition < Multiplication < Exponentiation <
// Call < Highest. `|` has no bitwise-or meaning in this language — it
// only introduces a list's prepend pattern, `[head|tail]`, which
// parseBracket handles directly rather than through this table.
type precedence int

const (
	LOWEST precedence = iota
	CORRESPONDENCE
	OR
	LOGICAND
	BITXOR
	BITAND
	COMPARISON
	SHIFT
	ADDITION
	MULTIPLICATION
	EXPONENT
	CALL
	HIGHEST
)

var infixPrecedence = map[token.Kind]precedence{
	token.ARROW:   CORRESPONDENCE,
	token.OR:      OR,
	token.AND:     LOGICAND,
	token.BITXOR:  BITXOR,
	token.BITAND:  BITAND,
	token.EQ:      COMPARISON,
	token.NEQ:     COMPARISON,
	token.LT:      COMPARISON,
	token.LE:      COMPARISON,
	token.GT:      COMPARISON,
	token.GE:      COMPARISON,
	token.IN:      COMPARISON,
	token.SHL:     SHIFT,
	token.SHR:     SHIFT,
	token.PLUS:    ADDITION,
	token.MINUS:   ADDITION,
	token.STAR:    MULTIPLICATION,
	token.SLASH:   MULTIPLICATION,
	token.PERCENT: MULTIPLICATION,
	token.DSTAR:   EXPONENT,
	token.LPAREN:  CALL,
}

// rightAssociative marks operators that bind to the right, so the
// recursive parse of the right-hand side uses prec-1 rather than prec.
var rightAssociative = map[token.Kind]bool{
	token.DSTAR: true,
	token.ARROW: true,
}

// UnexpectedTokenError reports a token that did not match any expected
// kind at the current parse position.
type UnexpectedTokenError struct {
	Expected []token.Kind
	Got      token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s: unexpected token %s, expected one of %v", e.Got.Pos, e.Got.Kind, e.Expected)
}

// EOFError reports that input ran out where any token was expected.
type EOFError struct {
	Pos token.Position
}

func (e *EOFError) Error() string { return fmt.Sprintf("%s: unexpected end of input", e.Pos) }

// EOFExpectingError reports that input ran out where a specific set of
// kinds was expected.
type EOFExpectingError struct {
	Expected []token.Kind
	Pos      token.Position
}

func (e *EOFExpectingError) Error() string {
	return fmt.Sprintf("%s: unexpected end of input, expected one of %v", e.Pos, e.Expected)
}

// ExpectedExpressionError reports a token that cannot start an
// expression.
type ExpectedExpressionError struct {
	Got token.Token
}

func (e *ExpectedExpressionError) Error() string {
	return fmt.Sprintf("%s: expected expression, got %s", e.Got.Pos, e.Got.Kind)
}

// Parser consumes a lexer's token stream and yields one CST node per
// call to Next. Lexer and parse errors are recorded rather than
// panicking; once one is recorded, no further nodes are produced.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	errors []error
}

// New creates a Parser over src.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	for {
		tok, err := p.lex.Next()
		if err != nil {
			p.errors = append(p.errors, err)
			continue
		}
		p.peek = tok
		return
	}
}

func (p *Parser) skipStatementSeparators() {
	for p.cur.Kind == token.NEWLINE {
		p.advance()
	}
}

func (p *Parser) curPrecedence() precedence {
	if prec, ok := infixPrecedence[p.cur.Kind]; ok {
		return prec
	}
	return LOWEST
}

// HasErrors reports whether any error has been recorded so far.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every error recorded so far.
func (p *Parser) Errors() []error { return p.errors }

// Next parses and returns the next top-level CST node, or (nil, nil)
// when the input is exhausted. Once an error is produced, subsequent
// calls keep returning nil, nil: callers should stop after the first
// error, per the language's "report first error" policy at this stage.
func (p *Parser) Next() (cst.Node, error) {
	p.skipStatementSeparators()
	if p.cur.Kind == token.EOF {
		return nil, nil
	}
	if p.HasErrors() {
		return nil, nil
	}

	node, err := p.parseExpression(LOWEST)
	if err != nil {
		p.errors = append(p.errors, err)
		return nil, err
	}
	return node, nil
}

// Program drains Next until exhaustion or the first error. A lexer
// error recorded while reading ahead is returned as that error too.
func (p *Parser) Program() ([]cst.Node, error) {
	var nodes []cst.Node
	for {
		node, err := p.Next()
		if err != nil {
			return nodes, err
		}
		if node == nil {
			if p.HasErrors() {
				return nodes, p.errors[0]
			}
			return nodes, nil
		}
		nodes = append(nodes, node)
	}
}

func (p *Parser) parseExpression(prec precedence) (cst.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind != token.NEWLINE && p.cur.Kind != token.EOF && prec < p.curPrecedence() {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parsePrefix() (cst.Node, error) {
	tok := p.cur

	switch tok.Kind {
	case token.LET:
		return p.parseLet()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.LPAREN:
		return p.parseParenOrTuple()
	case token.LBRACE:
		return p.parseBrace()
	case token.LBRACKET:
		return p.parseBracket()
	case token.TRUE:
		p.advance()
		return cst.NewBooleanLit(true, tok.Pos), nil
	case token.FALSE:
		p.advance()
		return cst.NewBooleanLit(false, tok.Pos), nil
	case token.INT:
		p.advance()
		return cst.NewInteger(tok.Literal, tok.Pos), nil
	case token.IDENT:
		p.advance()
		return cst.NewIdent(tok.Literal, tok.Pos), nil
	case token.STRING:
		p.advance()
		return cst.NewStringLit(tok.Literal, tok.Pos), nil
	case token.CHAR:
		p.advance()
		return cst.NewCharLit([]rune(tok.Literal)[0], tok.Pos), nil
	case token.UNDERSCORE:
		p.advance()
		return cst.NewWildcard(tok.Pos), nil
	case token.MINUS, token.BITNOT, token.NOT:
		p.advance()
		operand, err := p.parseExpression(HIGHEST)
		if err != nil {
			return nil, err
		}
		return &cst.Prefix{Base: cst.At(tok.Pos), Op: tok.Kind, Operand: operand}, nil
	case token.EOF:
		return nil, &EOFError{Pos: tok.Pos}
	default:
		return nil, &ExpectedExpressionError{Got: tok}
	}
}

// expect checks that cur has the given kind, advances past it, and
// returns its token; otherwise it returns a positioned error.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind == token.EOF {
		return token.Token{}, &EOFExpectingError{Expected: []token.Kind{kind}, Pos: p.cur.Pos}
	}
	if p.cur.Kind != kind {
		return token.Token{}, &UnexpectedTokenError{Expected: []token.Kind{kind}, Got: p.cur}
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

func (p *Parser) parseInfix(left cst.Node) (cst.Node, error) {
	tok := p.cur

	if tok.Kind == token.LPAREN {
		return p.parseCall(left)
	}

	prec := p.curPrecedence()
	p.advance()

	rhsPrec := prec
	if rightAssociative[tok.Kind] {
		rhsPrec = prec - 1
	}

	right, err := p.parseExpression(rhsPrec)
	if err != nil {
		return nil, err
	}

	return &cst.Infix{Base: cst.At(tok.Pos), Op: tok.Kind, Lhs: left, Rhs: right}, nil
}

func (p *Parser) parseCall(callee cst.Node) (cst.Node, error) {
	pos := p.cur.Pos
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var args []cst.Node
	for p.cur.Kind != token.RPAREN {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.cur.Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	return &cst.Call{Base: cst.At(pos), Callee: callee, Args: args}, nil
}

// parseParenOrTuple parses `()`, `(expr)`, or `(e1, e2, ...)`.
func (p *Parser) parseParenOrTuple() (cst.Node, error) {
	pos := p.cur.Pos
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	if p.cur.Kind == token.RPAREN {
		p.advance()
		return &cst.Tuple{Base: cst.At(pos)}, nil
	}

	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.cur.Kind != token.COMMA {
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &cst.Grouping{Base: cst.At(pos), Inner: first}, nil
	}

	elems := []cst.Node{first}
	for p.cur.Kind == token.COMMA {
		p.advance()
		if p.cur.Kind == token.RPAREN {
			break
		}
		elem, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	return &cst.Tuple{Base: cst.At(pos), Elems: elems}, nil
}

// parseBrace parses `{}`, `{e1, e2, ...}`, or `{elem : prop}`.
func (p *Parser) parseBrace() (cst.Node, error) {
	pos := p.cur.Pos
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	if p.cur.Kind == token.RBRACE {
		p.advance()
		return &cst.SetLiteral{Base: cst.At(pos)}, nil
	}

	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.cur.Kind == token.COLON {
		p.advance()
		prop, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		return &cst.SetComprehension{Base: cst.At(pos), Elem: first, Prop: prop}, nil
	}

	elems := []cst.Node{first}
	for p.cur.Kind == token.COMMA {
		p.advance()
		if p.cur.Kind == token.RBRACE {
			break
		}
		elem, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}

	return &cst.SetLiteral{Base: cst.At(pos), Elems: elems}, nil
}

// parseBracket parses `[]`, `[e1, e2, ...]`, `[transform : prop]`, or
// `[head|tail]`.
func (p *Parser) parseBracket() (cst.Node, error) {
	pos := p.cur.Pos
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}

	if p.cur.Kind == token.RBRACKET {
		p.advance()
		return &cst.ListLiteral{Base: cst.At(pos)}, nil
	}

	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	switch p.cur.Kind {
	case token.COLON:
		p.advance()
		prop, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return &cst.ListComprehension{Base: cst.At(pos), Transform: first, Prop: prop}, nil
	case token.PIPE:
		p.advance()
		tail, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return &cst.Prepend{Base: cst.At(pos), Head: first, Tail: tail}, nil
	}

	elems := []cst.Node{first}
	for p.cur.Kind == token.COMMA {
		p.advance()
		if p.cur.Kind == token.RBRACKET {
			break
		}
		elem, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}

	return &cst.ListLiteral{Base: cst.At(pos), Elems: elems}, nil
}

// parseIf parses `if cond then a else b`.
func (p *Parser) parseIf() (cst.Node, error) {
	pos := p.cur.Pos
	p.advance() // `if`

	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}

	then, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.ELSE); err != nil {
		return nil, err
	}

	els, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	return &cst.If{Base: cst.At(pos), Cond: cond, Then: then, Else: els}, nil
}

// parseFor parses `for ident in iterable : body`.
func (p *Parser) parseFor() (cst.Node, error) {
	pos := p.cur.Pos
	p.advance() // `for`

	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	ident := cst.NewIdent(name.Literal, name.Pos)

	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}

	iterable, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}

	body, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	return &cst.For{Base: cst.At(pos), Var: ident, Iterable: iterable, Body: body}, nil
}

// parseLet parses every shape of `let`: a bare value binding
// `let name := value`, a type-annotated signature with no value
// `let name : Type`, and a function clause `let name(p1, p2) := value`.
func (p *Parser) parseLet() (cst.Node, error) {
	pos := p.cur.Pos
	p.advance() // `let`

	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	ident := cst.NewIdent(name.Literal, name.Pos)

	sig := &cst.Signature{Base: cst.At(name.Pos), Ident: ident}

	if p.cur.Kind == token.COLON {
		p.advance()
		typ, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		sig.Type = typ
	}

	var params []cst.Node
	if p.cur.Kind == token.LPAREN {
		p.advance()
		for p.cur.Kind != token.RPAREN {
			param, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.cur.Kind == token.COMMA {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		if params == nil {
			params = []cst.Node{}
		}
	}

	if p.cur.Kind != token.ASSIGN {
		return &cst.Let{Base: cst.At(pos), Signature: sig, Params: params}, nil
	}

	p.advance() // `:=`
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	return &cst.Let{Base: cst.At(pos), Signature: sig, Params: params, Value: value}, nil
}
