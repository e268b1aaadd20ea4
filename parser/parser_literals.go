/*
File: kira/parser/parser_literals.go
*/
package parser

import (
	"strconv"

	"github.com/kira-lang/kira/lexer"
)

func (p *Parser) parseIntegerLiteral() Expression {
	tok := p.curToken
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf(tok, "invalid integer literal %q", tok.Literal)
		return nil
	}
	return &IntegerLiteral{base: base{tok}, Value: v}
}

func (p *Parser) parseFloatLiteral() Expression {
	tok := p.curToken
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok, "invalid float literal %q", tok.Literal)
		return nil
	}
	return &FloatLiteral{base: base{tok}, Value: v}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{base: base{p.curToken}, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{base: base{p.curToken}, Value: p.curIs(lexer.TRUE)}
}

func (p *Parser) parseNullLiteral() Expression {
	return &NullLiteral{base: base{p.curToken}}
}

func (p *Parser) parseArrayLiteral() Expression {
	tok := p.curToken
	elems := p.parseExpressionList(lexer.RBRACKET)
	return &ArrayLiteral{base: base{tok}, Elements: elems}
}

// parseDictLiteral parses `{ key: value, ... }`.
func (p *Parser) parseDictLiteral() Expression {
	tok := p.curToken
	dict := &DictLiteral{base: base{tok}}
	for !p.peekIs(lexer.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		dict.Keys = append(dict.Keys, key)
		dict.Values = append(dict.Values, val)
		if p.peekIs(lexer.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return dict
}
