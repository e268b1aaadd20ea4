/*
File: kira/eval/evaluator.go

Package eval walks a *parser.Program against a chain of *scope.Scope
frames, producing objects.Object values or an *objects.Error. There is no
panic/recover-based control flow for language-level errors: every failure
is an ordinary value that short-circuits the walk; even an AST node of
unexpected concrete type reaching Eval's default arm yields an internal
TypeError value. panic/recover is reserved for other host bugs and is only
recovered at the two outermost drivers, the REPL line handler and the file
runner.
*/
package eval

import (
	"bufio"
	"io"

	"github.com/kira-lang/kira/builtins"
	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
	"github.com/kira-lang/kira/scope"
)

// maxCallDepth bounds recursion so a runaway function surfaces a
// RecursionError instead of crashing the host process with a stack
// overflow.
const maxCallDepth = 2000

// Evaluator owns the global scope and the call-depth counter used for the
// recursion guard. It is stateful across calls: a REPL reuses one
// Evaluator across lines so `let`/`const` bindings persist.
type Evaluator struct {
	Global *scope.Scope
	depth  int
}

// New creates an Evaluator with a fresh global scope pre-populated with
// every builtin, reading from in and writing to out.
func New(out io.Writer, in io.Reader) *Evaluator {
	global := scope.New(nil)
	builtins.Register(global, &builtins.Streams{Out: out, In: bufio.NewReader(in)})
	return &Evaluator{Global: global}
}

// Run evaluates a whole program in the evaluator's global scope and
// returns the value of its final expression statement (Null otherwise).
func (e *Evaluator) Run(prog *parser.Program) objects.Object {
	return e.evalStatements(prog.Statements, e.Global)
}

// Eval dispatches a single AST node. Callers that need runtime errors to
// surface via Go's error mechanism instead should check objects.IsError
// on the result.
func (e *Evaluator) Eval(node parser.Node, env *scope.Scope) objects.Object {
	switch n := node.(type) {

	// literals
	case *parser.IntegerLiteral:
		return &objects.Integer{Value: n.Value}
	case *parser.FloatLiteral:
		return &objects.Float{Value: n.Value}
	case *parser.StringLiteral:
		return &objects.String{Value: n.Value}
	case *parser.BooleanLiteral:
		return &objects.Boolean{Value: n.Value}
	case *parser.NullLiteral:
		return &objects.Null{}

	case *parser.Identifier:
		return e.evalIdentifier(n, env)

	case *parser.ArrayLiteral:
		return e.evalArrayLiteral(n, env)
	case *parser.DictLiteral:
		return e.evalDictLiteral(n, env)
	case *parser.IndexExpression:
		return e.evalIndexExpression(n, env)

	case *parser.PrefixExpression:
		return e.evalPrefixExpression(n, env)
	case *parser.InfixExpression:
		return e.evalInfixExpression(n, env)
	case *parser.AssignExpression:
		return e.evalAssignExpression(n, env)

	case *parser.IfExpression:
		return e.evalIfExpression(n, env)
	case *parser.BlockExpression:
		return e.evalBlock(n, env.Child())

	case *parser.FunctionLiteral:
		return e.evalFunctionLiteral(n, env)
	case *parser.CallExpression:
		return e.evalCallExpression(n, env)

	// statements
	case *parser.ExpressionStatement:
		return e.Eval(n.Expr, env)
	case *parser.LetStatement:
		return e.evalLetStatement(n, env)
	case *parser.ConstStatement:
		return e.evalConstStatement(n, env)
	case *parser.FunctionStatement:
		return e.evalFunctionStatement(n, env)
	case *parser.ReturnStatement:
		return e.evalReturnStatement(n, env)
	case *parser.WhileStatement:
		return e.evalWhileStatement(n, env)
	case *parser.ForStatement:
		return e.evalForStatement(n, env)

	default:
		return objects.NewError("TypeError", "internal: unhandled AST node %T", node)
	}
}

// evalStatements evaluates a flat list of statements in env and returns
// the value of the final one when it is an *parser.ExpressionStatement,
// else Null — the rule a *parser.BlockExpression also follows once it has
// introduced its own child scope.
func (e *Evaluator) evalStatements(stmts []parser.Statement, env *scope.Scope) objects.Object {
	var last objects.Object = &objects.Null{}
	for _, stmt := range stmts {
		val := e.Eval(stmt, env)
		if objects.IsError(val) {
			return val
		}
		if _, ok := val.(*objects.ReturnValue); ok {
			return val
		}
		last = val
	}
	if len(stmts) > 0 {
		if _, ok := stmts[len(stmts)-1].(*parser.ExpressionStatement); ok {
			return last
		}
	}
	return &objects.Null{}
}

func (e *Evaluator) evalBlock(block *parser.BlockExpression, env *scope.Scope) objects.Object {
	return e.evalStatements(block.Statements, env)
}
