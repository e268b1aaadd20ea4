/*
File: kira/eval/eval_bindings.go

Identifier lookup and the `let`/`const` declaration statements.
*/
package eval

import (
	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
	"github.com/kira-lang/kira/scope"
)

func (e *Evaluator) evalIdentifier(n *parser.Identifier, env *scope.Scope) objects.Object {
	val, ok := env.LookUp(n.Name)
	if !ok {
		line, col := n.Pos()
		return &objects.Error{Kind: "NameError", Message: "undefined name '" + n.Name + "'", Line: line, Column: col}
	}
	return val
}

func (e *Evaluator) evalLetStatement(n *parser.LetStatement, env *scope.Scope) objects.Object {
	if env.Declared(n.Name) {
		line, col := n.Pos()
		return &objects.Error{Kind: "NameError", Message: "'" + n.Name + "' already defined in this scope", Line: line, Column: col}
	}
	val := e.Eval(n.Value, env)
	if objects.IsError(val) {
		return val
	}
	env.Bind(n.Name, val, false)
	return &objects.Null{}
}

func (e *Evaluator) evalConstStatement(n *parser.ConstStatement, env *scope.Scope) objects.Object {
	if env.Declared(n.Name) {
		line, col := n.Pos()
		return &objects.Error{Kind: "NameError", Message: "'" + n.Name + "' already defined in this scope", Line: line, Column: col}
	}
	val := e.Eval(n.Value, env)
	if objects.IsError(val) {
		return val
	}
	env.Bind(n.Name, val, true)
	return &objects.Null{}
}
