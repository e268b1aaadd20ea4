/*
File: kira/parser/parser_statements.go
*/
package parser

import "github.com/kira-lang/kira/lexer"

// parseStatement dispatches on the current token to one of the statement
// grammar productions, falling back to an expression statement.
func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case lexer.SEMICOLON:
		return nil
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.CONST:
		return p.parseConstStatement()
	case lexer.FN:
		if p.peekIs(lexer.IDENT) {
			return p.parseFunctionStatement()
		}
		return p.parseExpressionStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	p.skipPeekSemicolon()
	return &LetStatement{base: base{tok}, Name: name, Value: val}
}

func (p *Parser) parseConstStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	p.skipPeekSemicolon()
	return &ConstStatement{base: base{tok}, Name: name, Value: val}
}

func (p *Parser) parseReturnStatement() Statement {
	tok := p.curToken
	stmt := &ReturnStatement{base: base{tok}}
	if p.peekIs(lexer.SEMICOLON) || p.peekIs(lexer.RBRACE) || p.peekIs(lexer.EOF) {
		p.skipPeekSemicolon()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.skipPeekSemicolon()
	return stmt
}

func (p *Parser) parseExpressionStatement() Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	p.skipPeekSemicolon()
	return &ExpressionStatement{base: base{tok}, Expr: expr}
}

// skipPeekSemicolon consumes an optional trailing `;` at the peek position;
// semicolons are accepted but never required.
func (p *Parser) skipPeekSemicolon() {
	if p.peekIs(lexer.SEMICOLON) {
		p.nextToken()
	}
}

// parseBlockExpression parses `{ stmt... }`, assumed to start at `{`.
func (p *Parser) parseBlockExpression() *BlockExpression {
	tok := p.curToken
	block := &BlockExpression{base: base{tok}}
	p.nextToken()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	if p.curIs(lexer.EOF) {
		p.errorf(tok, "unterminated block, expected '}'")
	}
	return block
}
