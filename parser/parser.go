/*
File: kira/parser/parser.go

Package parser implements Kira's statement grammar (recursive descent) and
expression grammar (Pratt/top-down operator precedence). It consumes tokens
from lexer.Lexer and produces a *Program: an ordered list of Statement.
*/
package parser

import (
	"fmt"

	"github.com/kira-lang/kira/lexer"
)

type (
	prefixParseFn func() Expression
	infixParseFn  func(left Expression) Expression
)

// Parser holds all state needed to turn a token stream into an AST. It
// collects every error it encounters rather than panicking on the first,
// so a REPL or file runner can report as much as possible in one pass.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []*Error

	prefixFns map[lexer.Type]prefixParseFn
	infixFns  map[lexer.Type]infixParseFn
}

// Error is a parse-time diagnostic with source position.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: ParseError: %s", e.Line, e.Column, e.Message)
}

// New creates a Parser over src, ready for Parse.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.prefixFns = make(map[lexer.Type]prefixParseFn)
	p.infixFns = make(map[lexer.Type]infixParseFn)
	p.registerPrefix()
	p.registerInfix()

	// prime curToken/peekToken
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

// Errors returns every parse error collected so far.
func (p *Parser) Errors() []*Error { return p.errors }

func (p *Parser) errorf(tok lexer.Token, format string, args ...interface{}) {
	p.errors = append(p.errors, &Error{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) curIs(t lexer.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.Type) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it matches t, otherwise records an
// error and leaves the cursor where it is.
func (p *Parser) expectPeek(t lexer.Type) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken, "expected %s, got %s", t, p.peekToken.Type)
	return false
}

// Parse consumes the whole token stream and returns the resulting Program.
// If the lexer hit a malformed token, that is surfaced as a ParseError too,
// since the lexer is not restartable and the parser cannot do better than
// stop.
func (p *Parser) Parse() *Program {
	prog := &Program{}
	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}
	if lexErr := p.lex.Err(); lexErr != nil {
		p.errors = append(p.errors, &Error{Line: lexErr.Line, Column: lexErr.Column, Message: lexErr.Message})
	}
	return prog
}
