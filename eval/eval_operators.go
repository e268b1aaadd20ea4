/*
File: kira/eval/eval_operators.go

Prefix (-, +, not), infix (arithmetic, comparison, and/or) and assignment.
*/
package eval

import (
	"math"

	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
	"github.com/kira-lang/kira/scope"
)

func (e *Evaluator) evalPrefixExpression(n *parser.PrefixExpression, env *scope.Scope) objects.Object {
	right := e.Eval(n.Right, env)
	if objects.IsError(right) {
		return right
	}
	line, col := n.Pos()

	if n.Operator == "not" {
		return &objects.Boolean{Value: !objects.Truthy(right)}
	}
	switch v := right.(type) {
	case *objects.Integer:
		if n.Operator == "-" {
			return &objects.Integer{Value: -v.Value}
		}
		return v
	case *objects.Float:
		if n.Operator == "-" {
			return &objects.Float{Value: -v.Value}
		}
		return v
	default:
		return &objects.Error{Kind: "TypeError", Message: "unary " + n.Operator + " requires a numeric operand", Line: line, Column: col}
	}
}

// evalInfixExpression dispatches `and`/`or` (short-circuit, before
// operands are both forced) first, then evaluates both sides for every
// other operator.
func (e *Evaluator) evalInfixExpression(n *parser.InfixExpression, env *scope.Scope) objects.Object {
	if n.Operator == "and" || n.Operator == "or" {
		return e.evalLogical(n, env)
	}

	left := e.Eval(n.Left, env)
	if objects.IsError(left) {
		return left
	}
	right := e.Eval(n.Right, env)
	if objects.IsError(right) {
		return right
	}
	line, col := n.Pos()

	switch n.Operator {
	case "==":
		return &objects.Boolean{Value: objects.Equals(left, right)}
	case "!=":
		return &objects.Boolean{Value: !objects.Equals(left, right)}
	case "<", "<=", ">", ">=":
		return evalComparison(n.Operator, left, right, line, col)
	case "+", "-", "*", "/", "%", "**":
		return evalArithmetic(n.Operator, left, right, line, col)
	default:
		return &objects.Error{Kind: "TypeError", Message: "unknown operator " + n.Operator, Line: line, Column: col}
	}
}

// evalLogical returns the operand value itself, not a coerced bool, and
// never evaluates the right side when the left side already decides the
// result.
func (e *Evaluator) evalLogical(n *parser.InfixExpression, env *scope.Scope) objects.Object {
	left := e.Eval(n.Left, env)
	if objects.IsError(left) {
		return left
	}
	if n.Operator == "and" {
		if !objects.Truthy(left) {
			return left
		}
		return e.Eval(n.Right, env)
	}
	// or
	if objects.Truthy(left) {
		return left
	}
	return e.Eval(n.Right, env)
}

func numberOf(o objects.Object) (float64, bool, bool) {
	switch v := o.(type) {
	case *objects.Integer:
		return float64(v.Value), true, true
	case *objects.Float:
		return v.Value, false, true
	default:
		return 0, false, false
	}
}

func evalComparison(op string, left, right objects.Object, line, col int) objects.Object {
	if ls, ok := left.(*objects.String); ok {
		if rs, ok := right.(*objects.String); ok {
			return &objects.Boolean{Value: stringCompare(op, ls.Value, rs.Value)}
		}
	}
	lf, _, lok := numberOf(left)
	rf, _, rok := numberOf(right)
	if !lok || !rok {
		return &objects.Error{Kind: "TypeError", Message: "'" + op + "' requires two numbers or two strings", Line: line, Column: col}
	}
	switch op {
	case "<":
		return &objects.Boolean{Value: lf < rf}
	case "<=":
		return &objects.Boolean{Value: lf <= rf}
	case ">":
		return &objects.Boolean{Value: lf > rf}
	default: // >=
		return &objects.Boolean{Value: lf >= rf}
	}
}

func stringCompare(op, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	default:
		return a >= b
	}
}

// evalArithmetic implements + - * / % ** over ints and floats, plus `+`
// for string concatenation. Division is always true division (float
// result); `%` truncates toward zero; `**` of two non-negative-exponent
// ints stays an int.
func evalArithmetic(op string, left, right objects.Object, line, col int) objects.Object {
	if op == "+" {
		if ls, ok := left.(*objects.String); ok {
			rs, ok := right.(*objects.String)
			if !ok {
				return &objects.Error{Kind: "TypeError", Message: "cannot add string and " + objects.TypeName(right), Line: line, Column: col}
			}
			return &objects.String{Value: ls.Value + rs.Value}
		}
		if _, ok := right.(*objects.String); ok {
			if _, ok := left.(*objects.String); !ok {
				return &objects.Error{Kind: "TypeError", Message: "cannot add " + objects.TypeName(left) + " and string", Line: line, Column: col}
			}
		}
	}

	li, liInt, liOk := numberOf(left)
	ri, riInt, riOk := numberOf(right)
	if !liOk || !riOk {
		return &objects.Error{Kind: "TypeError", Message: "'" + op + "' requires two numbers", Line: line, Column: col}
	}
	bothInt := liInt && riInt

	switch op {
	case "+":
		if bothInt {
			return &objects.Integer{Value: left.(*objects.Integer).Value + right.(*objects.Integer).Value}
		}
		return &objects.Float{Value: li + ri}
	case "-":
		if bothInt {
			return &objects.Integer{Value: left.(*objects.Integer).Value - right.(*objects.Integer).Value}
		}
		return &objects.Float{Value: li - ri}
	case "*":
		if bothInt {
			return &objects.Integer{Value: left.(*objects.Integer).Value * right.(*objects.Integer).Value}
		}
		return &objects.Float{Value: li * ri}
	case "/":
		if ri == 0 {
			return &objects.Error{Kind: "ZeroDivisionError", Message: "division by zero", Line: line, Column: col}
		}
		return &objects.Float{Value: li / ri}
	case "%":
		if ri == 0 {
			return &objects.Error{Kind: "ZeroDivisionError", Message: "modulo by zero", Line: line, Column: col}
		}
		if bothInt {
			a, b := left.(*objects.Integer).Value, right.(*objects.Integer).Value
			return &objects.Integer{Value: a - (a/b)*b} // truncated toward zero, matching Go's %
		}
		return &objects.Float{Value: math.Mod(li, ri)}
	case "**":
		if bothInt && right.(*objects.Integer).Value >= 0 {
			return &objects.Integer{Value: intPow(left.(*objects.Integer).Value, right.(*objects.Integer).Value)}
		}
		return &objects.Float{Value: math.Pow(li, ri)}
	default:
		return &objects.Error{Kind: "TypeError", Message: "unknown operator " + op, Line: line, Column: col}
	}
}

func intPow(base, exp int64) int64 {
	var result int64 = 1
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

// evalAssignExpression handles `target = value` for both Identifier and
// Index targets; the parser already rejected any other target shape.
func (e *Evaluator) evalAssignExpression(n *parser.AssignExpression, env *scope.Scope) objects.Object {
	val := e.Eval(n.Value, env)
	if objects.IsError(val) {
		return val
	}
	line, col := n.Pos()

	switch target := n.Target.(type) {
	case *parser.Identifier:
		if env.IsConst(target.Name) {
			return &objects.Error{Kind: "ConstError", Message: "cannot assign to const '" + target.Name + "'", Line: line, Column: col}
		}
		if !env.Assign(target.Name, val) {
			return &objects.Error{Kind: "NameError", Message: "undefined name '" + target.Name + "'", Line: line, Column: col}
		}
		return val
	case *parser.IndexExpression:
		return e.evalIndexAssign(target, val, env)
	default:
		return &objects.Error{Kind: "ParseError", Message: "invalid assignment target", Line: line, Column: col}
	}
}

func (e *Evaluator) evalIndexAssign(target *parser.IndexExpression, val objects.Object, env *scope.Scope) objects.Object {
	left := e.Eval(target.Left, env)
	if objects.IsError(left) {
		return left
	}
	index := e.Eval(target.Index, env)
	if objects.IsError(index) {
		return index
	}
	line, col := target.Pos()

	switch container := left.(type) {
	case *objects.Array:
		idx, ok := index.(*objects.Integer)
		if !ok {
			return &objects.Error{Kind: "TypeError", Message: "array index must be an int", Line: line, Column: col}
		}
		if idx.Value < 0 || idx.Value >= int64(len(container.Elements)) {
			return &objects.Error{Kind: "IndexError", Message: "array index out of range", Line: line, Column: col}
		}
		container.Elements[idx.Value] = val
		return val
	case *objects.Dict:
		container.Set(index, val)
		return val
	default:
		return &objects.Error{Kind: "TypeError", Message: "cannot index-assign " + objects.TypeName(left), Line: line, Column: col}
	}
}
