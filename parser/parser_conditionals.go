/*
File: kira/parser/parser_conditionals.go
*/
package parser

import "github.com/kira-lang/kira/lexer"

// parseIfExpression parses `if cond { ... }` with an optional `else`,
// where `else if` folds into a nested *IfExpression in Alternative.
func (p *Parser) parseIfExpression() Expression {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	consequence := p.parseBlockExpression()

	ifExpr := &IfExpression{base: base{tok}, Condition: cond, Consequence: consequence}

	if p.peekIs(lexer.ELSE) {
		p.nextToken()
		if p.peekIs(lexer.IF) {
			p.nextToken()
			nested := p.parseIfExpression()
			ifExpr.Alternative = &BlockExpression{
				base:       base{p.curToken},
				Statements: []Statement{&ExpressionStatement{base: base{p.curToken}, Expr: nested}},
			}
			return ifExpr
		}
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		ifExpr.Alternative = p.parseBlockExpression()
	}
	return ifExpr
}
