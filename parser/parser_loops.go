/*
File: kira/parser/parser_loops.go
*/
package parser

import "github.com/kira-lang/kira/lexer"

// parseWhileStatement parses `while cond { body }`.
func (p *Parser) parseWhileStatement() Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpression()
	return &WhileStatement{base: base{tok}, Condition: cond, Body: body}
}

// parseForStatement parses `for name in iterable { body }`.
func (p *Parser) parseForStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.IN) {
		return nil
	}
	p.nextToken()
	iterable := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpression()
	return &ForStatement{base: base{tok}, Name: name, Iterable: iterable, Body: body}
}
