/*
File: kira/eval/eval_control.go

if/while/for and the `return` statement.
*/
package eval

import (
	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
	"github.com/kira-lang/kira/scope"
)

// evalReturnStatement evaluates a `return` statement and wraps the result in
// an *objects.ReturnValue.
//
// ReturnValue is a sentinel, not a language value: it exists purely to
// unwind through evalStatements/evalBlock/the loop bodies above without
// being mistaken for an ordinary value along the way. callFunction is the
// only place that unwraps it back into the value it carries (eval_functions.go).
// A bare `return` (n.Value == nil) is equivalent to `return null`.
//
// Example:
//
//	fn f() { return 1 + 2 }   // ReturnValue{Value: Integer{3}}
//	fn g() { return }         // ReturnValue{Value: Null{}}
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatement, env *scope.Scope) objects.Object {
	if n.Value == nil {
		return &objects.ReturnValue{Value: &objects.Null{}}
	}
	val := e.Eval(n.Value, env)
	if objects.IsError(val) {
		return val
	}
	return &objects.ReturnValue{Value: val}
}

// evalIfExpression evaluates `if cond { ... } else { ... }` as an expression:
// its value is whatever the taken branch's block evaluates to (the value of
// its last expression statement), or Null if the condition is false and
// there is no `else`. Each branch runs in its own child scope, so a `let`
// inside a branch never leaks into the surrounding frame. An `else if` chain
// is not special syntax here: the parser folds it into a nested IfExpression
// as Alternative, so this function never needs to know the chain is there.
func (e *Evaluator) evalIfExpression(n *parser.IfExpression, env *scope.Scope) objects.Object {
	cond := e.Eval(n.Condition, env)
	if objects.IsError(cond) {
		return cond
	}
	if objects.Truthy(cond) {
		return e.evalBlock(n.Consequence, env.Child())
	}
	if n.Alternative != nil {
		return e.evalBlock(n.Alternative, env.Child())
	}
	return &objects.Null{}
}

// evalWhileStatement repeatedly evaluates Condition and, while it is
// truthy, runs Body in a fresh child scope per iteration (so a `let`
// declared inside the loop body doesn't persist or shadow itself across
// iterations). A `return` inside the body propagates out immediately as an
// *objects.ReturnValue, stopping the loop; an error does the same. The
// statement itself is never a value producer: it always yields Null.
func (e *Evaluator) evalWhileStatement(n *parser.WhileStatement, env *scope.Scope) objects.Object {
	for {
		cond := e.Eval(n.Condition, env)
		if objects.IsError(cond) {
			return cond
		}
		if !objects.Truthy(cond) {
			break
		}
		result := e.evalBlock(n.Body, env.Child())
		if objects.IsError(result) {
			return result
		}
		if _, ok := result.(*objects.ReturnValue); ok {
			return result
		}
	}
	return &objects.Null{}
}

// evalForStatement evaluates `for name in iterable { body }`.
//
// iterable is evaluated once, then walked according to its runtime type:
//   - Array: each element, in index order.
//   - String: each rune, re-boxed as a one-character String (matching
//     Kira's "strings are sequences of one-character strings" model, not
//     raw bytes).
//   - Dict: each key, in insertion order (the same order `keys()` returns).
//
// Any other type is a TypeError. Each iteration binds name in its own
// child scope via `run`, so the loop variable never escapes the loop and a
// `let` shadowing it inside the body is safe. A `return` or error from the
// body stops the loop immediately and propagates out; otherwise the
// statement yields Null.
func (e *Evaluator) evalForStatement(n *parser.ForStatement, env *scope.Scope) objects.Object {
	iterable := e.Eval(n.Iterable, env)
	if objects.IsError(iterable) {
		return iterable
	}

	run := func(item objects.Object) objects.Object {
		child := env.Child()
		child.Bind(n.Name, item, false)
		return e.evalBlock(n.Body, child.Child())
	}

	switch v := iterable.(type) {
	case *objects.Array:
		for _, item := range v.Elements {
			result := run(item)
			if objects.IsError(result) {
				return result
			}
			if _, ok := result.(*objects.ReturnValue); ok {
				return result
			}
		}
	case *objects.String:
		for _, r := range v.Value {
			result := run(&objects.String{Value: string(r)})
			if objects.IsError(result) {
				return result
			}
			if _, ok := result.(*objects.ReturnValue); ok {
				return result
			}
		}
	case *objects.Dict:
		for _, k := range v.Keys {
			result := run(v.Pairs[k].Key)
			if objects.IsError(result) {
				return result
			}
			if _, ok := result.(*objects.ReturnValue); ok {
				return result
			}
		}
	default:
		line, col := n.Pos()
		return &objects.Error{Kind: "TypeError", Message: "cannot iterate over " + objects.TypeName(iterable), Line: line, Column: col}
	}
	return &objects.Null{}
}
