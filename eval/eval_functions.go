/*
File: kira/eval/eval_functions.go

Function literals, named function declarations, and calls. Every closure
captures its defining *scope.Scope by pointer — never a copy — so two
functions sharing a frame (e.g. a counter returned by a factory function)
observe each other's mutations to that frame.
*/
package eval

import (
	"strconv"

	"github.com/kira-lang/kira/function"
	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
	"github.com/kira-lang/kira/scope"
)

// evalFunctionLiteral turns a `fn(...) { ... }` expression into a callable
// value. env is captured by pointer as the closure's lexical parent: it is
// not copied or flattened, so variables bound in env after this literal is
// created (e.g. a sibling `let` later in the same block) are still visible
// to the function body when it finally runs, and mutations the function
// makes through that frame (via `=`, not `let`) are visible to env's other
// readers too.
func (e *Evaluator) evalFunctionLiteral(n *parser.FunctionLiteral, env *scope.Scope) objects.Object {
	return &function.Function{Params: n.Params, Body: n.Body, Env: env}
}

// evalFunctionStatement binds the name before constructing the Function so
// the body can call itself; anonymous fn literals skip this.
func (e *Evaluator) evalFunctionStatement(n *parser.FunctionStatement, env *scope.Scope) objects.Object {
	if env.Declared(n.Name) {
		line, col := n.Pos()
		return &objects.Error{Kind: "NameError", Message: "'" + n.Name + "' already defined in this scope", Line: line, Column: col}
	}
	env.Bind(n.Name, &objects.Null{}, false)
	fn := &function.Function{Name: n.Name, Params: n.Params, Body: n.Body, Env: env}
	env.Assign(n.Name, fn)
	return &objects.Null{}
}

// evalCallExpression evaluates a call `callee(args...)`. callee is
// evaluated first (so `(make_adder(1))(2)` works: the callee need not be a
// bare identifier), then every argument left to right, short-circuiting on
// the first error either side produces. Dispatch is on the callee's runtime
// type: a user-defined *function.Function goes through callFunction (which
// enforces arity and the recursion-depth guard), a *objects.Builtin invokes
// its Go implementation directly and is responsible for its own arity
// checking, and anything else is a TypeError — Kira has no implicit
// call-like coercion for other types.
func (e *Evaluator) evalCallExpression(n *parser.CallExpression, env *scope.Scope) objects.Object {
	callee := e.Eval(n.Callee, env)
	if objects.IsError(callee) {
		return callee
	}

	args := make([]objects.Object, 0, len(n.Args))
	for _, a := range n.Args {
		val := e.Eval(a, env)
		if objects.IsError(val) {
			return val
		}
		args = append(args, val)
	}
	line, col := n.Pos()

	switch fn := callee.(type) {
	case *function.Function:
		return e.callFunction(fn, args, line, col)
	case *objects.Builtin:
		return fn.Fn(e, args)
	default:
		return &objects.Error{Kind: "TypeError", Message: "cannot call " + objects.TypeName(callee), Line: line, Column: col}
	}
}

// callFunction runs fn's body against args in a fresh child scope of fn.Env
// (never of the caller's scope — that's what makes it lexical rather than
// dynamic scoping). It enforces two invariants before running anything:
// exact arity (no default/variadic parameters in user-defined functions)
// and the maxCallDepth recursion guard, which exists because this
// evaluator has no native stack-overflow protection of its own and an
// unbounded `fn loop(n) { loop(n+1) }` would otherwise exhaust the host
// goroutine's stack instead of producing a catchable Kira error.
//
// The function's body is evaluated with evalStatements, which returns
// either a plain value (an implicit "falls off the end" return of the last
// statement), an *objects.ReturnValue (from an explicit `return`), or an
// error. Only the ReturnValue case needs unwrapping here: the caller of
// callFunction should never see the sentinel type.
func (e *Evaluator) callFunction(fn *function.Function, args []objects.Object, line, col int) objects.Object {
	if len(args) != len(fn.Params) {
		return &objects.Error{Kind: "ArityError", Message: functionArityMessage(fn, len(args)), Line: line, Column: col}
	}
	if e.depth >= maxCallDepth {
		return &objects.Error{Kind: "RecursionError", Message: "maximum call depth exceeded", Line: line, Column: col}
	}

	callEnv := fn.Env.Child()
	for i, param := range fn.Params {
		callEnv.Bind(param.Name, args[i], false)
	}

	e.depth++
	result := e.evalStatements(fn.Body.Statements, callEnv)
	e.depth--

	if objects.IsError(result) {
		return result
	}
	if rv, ok := result.(*objects.ReturnValue); ok {
		return rv.Value
	}
	return result
}

func functionArityMessage(fn *function.Function, got int) string {
	name := fn.Name
	if name == "" {
		name = "anonymous"
	}
	return name + "() takes " + strconv.Itoa(len(fn.Params)) + " argument(s), got " + strconv.Itoa(got)
}

// Call implements objects.Runtime so builtins could invoke Kira functions
// if a future higher-order builtin needs it; none of the current closed
// set does.
func (e *Evaluator) Call(fn objects.Object, args []objects.Object) objects.Object {
	f, ok := fn.(*function.Function)
	if !ok {
		return objects.NewError("TypeError", "cannot call %s", objects.TypeName(fn))
	}
	return e.callFunction(f, args, 0, 0)
}
