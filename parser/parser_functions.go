/*
File: kira/parser/parser_functions.go
*/
package parser

import "github.com/kira-lang/kira/lexer"

// parseFunctionLiteral parses an anonymous `fn(params) { body }`.
func (p *Parser) parseFunctionLiteral() Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseFunctionParams()
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpression()
	return &FunctionLiteral{base: base{tok}, Params: params, Body: body}
}

// parseFunctionStatement parses `fn name(params) { body }`: a named
// declaration whose name is visible inside its own body for recursion.
func (p *Parser) parseFunctionStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseFunctionParams()
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpression()
	return &FunctionStatement{base: base{tok}, Name: name, Params: params, Body: body}
}

func (p *Parser) parseFunctionParams() []*Identifier {
	var params []*Identifier
	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, &Identifier{base: base{p.curToken}, Name: p.curToken.Literal})
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &Identifier{base: base{p.curToken}, Name: p.curToken.Literal})
	}
	p.expectPeek(lexer.RPAREN)
	return params
}
