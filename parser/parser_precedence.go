/*
File: kira/parser/parser_precedence.go
*/
package parser

import "github.com/kira-lang/kira/lexer"

// Precedence levels, low to high; unary binds tighter than `**`, so
// `-2 ** 2` parses as `(-2) ** 2`.
const (
	LOWEST int = iota
	ASSIGN     // =              right-assoc
	LOGICOR    // or
	LOGICAND   // and
	NOTPREC    // not            prefix
	EQUALS     // == !=
	COMPARE    // < <= > >=
	SUM        // + -
	PRODUCT    // * / %
	POWER      // **             right-assoc
	PREFIX     // unary - +
	CALLIDX    // f(...) a[...]
)

var precedences = map[lexer.Type]int{
	lexer.ASSIGN:   ASSIGN,
	lexer.OR:       LOGICOR,
	lexer.AND:      LOGICAND,
	lexer.EQ:       EQUALS,
	lexer.NEQ:      EQUALS,
	lexer.LT:       COMPARE,
	lexer.LTE:      COMPARE,
	lexer.GT:       COMPARE,
	lexer.GTE:      COMPARE,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.STAR:     PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.STARSTAR: POWER,
	lexer.LPAREN:   CALLIDX,
	lexer.LBRACKET: CALLIDX,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}
