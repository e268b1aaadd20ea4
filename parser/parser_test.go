package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *Program {
	t.Helper()
	p := New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return prog
}

func firstExpr(t *testing.T, prog *Program) Expression {
	t.Helper()
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ExpressionStatement)
	require.True(t, ok, "expected an expression statement, got %T", prog.Statements[0])
	return stmt.Expr
}

func TestPrecedence_ArithmeticString(t *testing.T) {
	cases := map[string]string{
		"1 + 2 * 3":    "(1 + (2 * 3))",
		"(1 + 2) * 3":  "((1 + 2) * 3)",
		"2 ** 3 ** 2":  "(2 ** (3 ** 2))", // right-associative
		"1 + 2 == 3":   "((1 + 2) == 3)",
		"a = b = 1":    "(a = (b = 1))", // right-associative
		"not a == b":   "(not (a == b))",
		"not a and b":  "((not a) and b)",
		"-2 ** 2":      "((- 2) ** 2)", // unary binds tighter than **
		"-a[0]":        "(- (a[0]))",
		"a and b or c": "((a and b) or c)",
		"1 < 2 and 2":  "((1 < 2) and 2)",
		"1 + -1":       "(1 + (- 1))",
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			prog := parseOK(t, src)
			expr := firstExpr(t, prog)
			assert.Equal(t, want, expr.String())
		})
	}
}

func TestUnaryBindsTighterThanPower(t *testing.T) {
	// -2 ** 2 parses as (-2) ** 2, matching the documented precedence table
	// (unary above `**`), so the numeric result would be 4, not -4.
	prog := parseOK(t, "-2 ** 2")
	expr := firstExpr(t, prog).(*InfixExpression)
	assert.Equal(t, "**", expr.Operator)
	left, ok := expr.Left.(*PrefixExpression)
	require.True(t, ok)
	assert.Equal(t, "-", left.Operator)
}

func TestAssignmentRightAssociative(t *testing.T) {
	prog := parseOK(t, "a = b = 1")
	expr := firstExpr(t, prog).(*AssignExpression)
	_, ok := expr.Target.(*Identifier)
	require.True(t, ok)
	_, ok = expr.Value.(*AssignExpression)
	require.True(t, ok, "expected nested assignment on the right")
}

func TestAssignmentToIndexTarget(t *testing.T) {
	prog := parseOK(t, "a[0] = 1")
	expr := firstExpr(t, prog).(*AssignExpression)
	_, ok := expr.Target.(*IndexExpression)
	require.True(t, ok)
}

func TestAssignmentInvalidTargetIsParseError(t *testing.T) {
	p := New("1 = 2")
	p.Parse()
	require.NotEmpty(t, p.Errors())
}

func TestArrayLiteral(t *testing.T) {
	prog := parseOK(t, "[1, 2, 3]")
	arr := firstExpr(t, prog).(*ArrayLiteral)
	assert.Len(t, arr.Elements, 3)
}

func TestEmptyArrayLiteral(t *testing.T) {
	prog := parseOK(t, "[]")
	arr := firstExpr(t, prog).(*ArrayLiteral)
	assert.Empty(t, arr.Elements)
}

func TestDictLiteral(t *testing.T) {
	prog := parseOK(t, `{"a": 1, "b": 2}`)
	dict := firstExpr(t, prog).(*DictLiteral)
	require.Len(t, dict.Keys, 2)
	require.Len(t, dict.Values, 2)
}

func TestEmptyDictLiteral(t *testing.T) {
	prog := parseOK(t, "{}")
	dict := firstExpr(t, prog).(*DictLiteral)
	assert.Empty(t, dict.Keys)
}

func TestFunctionLiteral(t *testing.T) {
	prog := parseOK(t, "fn(a, b) { a + b }")
	fn := firstExpr(t, prog).(*FunctionLiteral)
	assert.Equal(t, "", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "b", fn.Params[1].Name)
}

func TestFunctionStatement(t *testing.T) {
	prog := parseOK(t, "fn add(a, b) { return a + b }")
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*FunctionStatement)
	require.True(t, ok)
	assert.Equal(t, "add", stmt.Name)
	require.Len(t, stmt.Params, 2)
}

func TestCallExpression(t *testing.T) {
	prog := parseOK(t, "add(1, 2 * 3)")
	call := firstExpr(t, prog).(*CallExpression)
	ident, ok := call.Callee.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "add", ident.Name)
	require.Len(t, call.Args, 2)
}

func TestIfElseIfChainFoldsIntoNestedAlternative(t *testing.T) {
	prog := parseOK(t, `
		if a {
			1
		} else if b {
			2
		} else {
			3
		}
	`)
	ifExpr := firstExpr(t, prog).(*IfExpression)
	require.NotNil(t, ifExpr.Alternative)
	require.Len(t, ifExpr.Alternative.Statements, 1)
	nested, ok := ifExpr.Alternative.Statements[0].(*ExpressionStatement)
	require.True(t, ok)
	nestedIf, ok := nested.Expr.(*IfExpression)
	require.True(t, ok, "else-if should fold into a nested IfExpression")
	require.NotNil(t, nestedIf.Alternative)
}

func TestWhileStatement(t *testing.T) {
	prog := parseOK(t, "while x < 10 { x = x + 1 }")
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*WhileStatement)
	require.True(t, ok)
	assert.NotNil(t, stmt.Condition)
	assert.Len(t, stmt.Body.Statements, 1)
}

func TestForStatement(t *testing.T) {
	prog := parseOK(t, "for x in arr { print(x) }")
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ForStatement)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Name)
}

func TestLetAndConstStatements(t *testing.T) {
	prog := parseOK(t, "let x = 1\nconst y = 2")
	require.Len(t, prog.Statements, 2)
	letStmt, ok := prog.Statements[0].(*LetStatement)
	require.True(t, ok)
	assert.Equal(t, "x", letStmt.Name)
	constStmt, ok := prog.Statements[1].(*ConstStatement)
	require.True(t, ok)
	assert.Equal(t, "y", constStmt.Name)
}

func TestBareReturn(t *testing.T) {
	prog := parseOK(t, "fn f() { return }")
	stmt := prog.Statements[0].(*FunctionStatement)
	ret, ok := stmt.Body.Statements[0].(*ReturnStatement)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestIfConsequenceIsABlockExpression(t *testing.T) {
	prog := parseOK(t, "if true { let x = 1\nx + 1 }")
	ifExpr, ok := firstExpr(t, prog).(*IfExpression)
	require.True(t, ok)
	require.Len(t, ifExpr.Consequence.Statements, 2)
	_, ok = ifExpr.Consequence.Statements[1].(*ExpressionStatement)
	require.True(t, ok)
}

func TestUnterminatedBlockIsParseError(t *testing.T) {
	p := New("if true { 1 + 1")
	p.Parse()
	require.NotEmpty(t, p.Errors())
	found := false
	for _, e := range p.Errors() {
		if strings.Contains(e.Message, "unterminated block") {
			found = true
		}
	}
	assert.True(t, found, "expected an 'unterminated block' error, got %v", p.Errors())
}

func TestParseErrorOnUnexpectedToken(t *testing.T) {
	p := New("let = 1")
	p.Parse()
	assert.NotEmpty(t, p.Errors())
}

func TestParseErrorReportsPosition(t *testing.T) {
	p := New("let x =\n  )")
	p.Parse()
	require.NotEmpty(t, p.Errors())
	assert.Equal(t, 2, p.Errors()[0].Line)
}
