package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextToken_Operators(t *testing.T) {
	src := `+-*/%** = == != < <= > >= ( ) { } [ ] , : ;`
	want := []Type{
		PLUS, MINUS, STAR, SLASH, PERCENT, STARSTAR,
		ASSIGN, EQ, NEQ, LT, LTE, GT, GTE,
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, COLON, SEMICOLON,
	}
	l := New(src)
	for i, w := range want {
		tok := l.NextToken()
		require.NoErrorf(t, errOf(l), "token %d", i)
		assert.Equalf(t, w, tok.Type, "token %d (%q)", i, tok.Literal)
	}
	assert.Equal(t, EOF, l.NextToken().Type)
}

func TestNextToken_Keywords(t *testing.T) {
	src := `let const fn return if else while for in and or not true false null foo_bar`
	want := []Type{LET, CONST, FN, RETURN, IF, ELSE, WHILE, FOR, IN, AND, OR, NOT, TRUE, FALSE, NULL, IDENT}
	l := New(src)
	for i, w := range want {
		tok := l.NextToken()
		assert.Equalf(t, w, tok.Type, "token %d", i)
	}
}

func TestNextToken_NumbersAndStrings(t *testing.T) {
	l := New(`42 3.14 "hi\nthere"`)

	tok := l.NextToken()
	assert.Equal(t, INT, tok.Type)
	assert.Equal(t, "42", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, FLOAT, tok.Type)
	assert.Equal(t, "3.14", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "hi\nthere", tok.Literal)
}

func TestNextToken_PositionTracking(t *testing.T) {
	l := New("let x =\n  10")
	tok := l.NextToken() // let
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 1, tok.Column)

	tok = l.NextToken() // x
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 5, tok.Column)

	for tok.Type != INT {
		tok = l.NextToken()
	}
	assert.Equal(t, 2, tok.Line)
}

func TestNextToken_CommentsAreSkipped(t *testing.T) {
	l := New("1 # a comment\n+ 2")
	tok := l.NextToken()
	assert.Equal(t, INT, tok.Type)
	tok = l.NextToken()
	assert.Equal(t, PLUS, tok.Type)
	tok = l.NextToken()
	assert.Equal(t, INT, tok.Type)
	assert.Equal(t, "2", tok.Literal)
}

func TestNextToken_UnterminatedStringIsLexError(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	assert.Equal(t, EOF, tok.Type)
	require.Error(t, errOf(l))
}

func TestNextToken_UnknownCharacterIsLexError(t *testing.T) {
	l := New("1 @ 2")
	l.NextToken()
	tok := l.NextToken()
	assert.Equal(t, EOF, tok.Type)
	require.Error(t, errOf(l))
}

func TestLexemeReconstitutesSourceSlice(t *testing.T) {
	src := "foo + 123"
	l := New(src)
	tokens, lexErr := l.Tokens()
	require.Nil(t, lexErr)
	require.Len(t, tokens, 3)
	assert.Equal(t, "foo", tokens[0].Literal)
	assert.Equal(t, "+", tokens[1].Literal)
	assert.Equal(t, "123", tokens[2].Literal)
}

func errOf(l *Lexer) error {
	if e := l.Err(); e != nil {
		return e
	}
	return nil
}
