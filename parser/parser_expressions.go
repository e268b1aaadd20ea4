/*
File: kira/parser/parser_expressions.go

The Pratt engine: registration of null-denotation (prefix) and
left-denotation (infix) handlers, and the precedence-climbing loop itself.
*/
package parser

import "github.com/kira-lang/kira/lexer"

func (p *Parser) registerPrefix() {
	p.prefixFns[lexer.INT] = p.parseIntegerLiteral
	p.prefixFns[lexer.FLOAT] = p.parseFloatLiteral
	p.prefixFns[lexer.STRING] = p.parseStringLiteral
	p.prefixFns[lexer.TRUE] = p.parseBooleanLiteral
	p.prefixFns[lexer.FALSE] = p.parseBooleanLiteral
	p.prefixFns[lexer.NULL] = p.parseNullLiteral
	p.prefixFns[lexer.IDENT] = p.parseIdentifier
	p.prefixFns[lexer.LPAREN] = p.parseGroupedExpression
	p.prefixFns[lexer.LBRACKET] = p.parseArrayLiteral
	p.prefixFns[lexer.LBRACE] = p.parseDictLiteral
	p.prefixFns[lexer.MINUS] = p.parsePrefixExpression
	p.prefixFns[lexer.PLUS] = p.parsePrefixExpression
	p.prefixFns[lexer.NOT] = p.parseNotExpression
	p.prefixFns[lexer.IF] = p.parseIfExpression
	p.prefixFns[lexer.FN] = p.parseFunctionLiteral
}

func (p *Parser) registerInfix() {
	for _, t := range []lexer.Type{lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH,
		lexer.PERCENT, lexer.STARSTAR, lexer.EQ, lexer.NEQ, lexer.LT, lexer.LTE,
		lexer.GT, lexer.GTE, lexer.AND, lexer.OR} {
		p.infixFns[t] = p.parseInfixExpression
	}
	p.infixFns[lexer.ASSIGN] = p.parseAssignExpression
	p.infixFns[lexer.LPAREN] = p.parseCallExpression
	p.infixFns[lexer.LBRACKET] = p.parseIndexExpression
}

// parseExpression implements the precedence-climbing Pratt loop: parse a
// null-denotation, then repeatedly fold in left-denotations whose
// precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) Expression {
	prefix, ok := p.prefixFns[p.curToken.Type]
	if !ok {
		p.errorf(p.curToken, "unexpected token %s", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMICOLON) && minPrec < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{base: base{p.curToken}, Name: p.curToken.Literal}
}

func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}

// parsePrefixExpression handles unary `-` and `+`, binding tighter than
// `**` (PREFIX > POWER).
func (p *Parser) parsePrefixExpression() Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &PrefixExpression{base: base{tok}, Operator: op, Right: right}
}

// parseNotExpression handles `not`, whose precedence (below EQUALS) makes
// `not a == b` parse as `not (a == b)`.
func (p *Parser) parseNotExpression() Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(NOTPREC)
	return &PrefixExpression{base: base{tok}, Operator: "not", Right: right}
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	tok := p.curToken
	op := tok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	var right Expression
	if tok.Type == lexer.STARSTAR {
		right = p.parseExpression(prec - 1) // right-associative
	} else {
		right = p.parseExpression(prec)
	}
	return &InfixExpression{base: base{tok}, Left: left, Operator: op, Right: right}
}

// parseAssignExpression implements right-associative `=`: the LHS must
// already be an *Identifier or *IndexExpression, checked here rather than
// at parse-grammar level since both parse through the same Pratt slot.
func (p *Parser) parseAssignExpression(left Expression) Expression {
	tok := p.curToken
	switch left.(type) {
	case *Identifier, *IndexExpression:
	default:
		p.errorf(tok, "invalid assignment target")
	}
	p.nextToken()
	value := p.parseExpression(ASSIGN - 1) // right-assoc
	return &AssignExpression{base: base{tok}, Target: left, Value: value}
}

func (p *Parser) parseCallExpression(callee Expression) Expression {
	tok := p.curToken
	args := p.parseExpressionList(lexer.RPAREN)
	return &CallExpression{base: base{tok}, Callee: callee, Args: args}
}

func (p *Parser) parseIndexExpression(left Expression) Expression {
	tok := p.curToken
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &IndexExpression{base: base{tok}, Left: left, Index: idx}
}

// parseExpressionList parses a comma-separated list terminated by end,
// consuming end itself. Used for call arguments and array elements.
func (p *Parser) parseExpressionList(end lexer.Type) []Expression {
	var list []Expression
	if p.peekIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}
