/*
File: kira/function/function.go

Package function defines the Function value. It is kept separate from
objects to avoid an import cycle: a Function's Body is a *parser.BlockExpression
and its Env is a *scope.Scope, but scope.Scope holds objects.Object values,
so objects cannot import parser/scope, and this package sits above both.
*/
package function

import (
	"strings"

	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
	"github.com/kira-lang/kira/scope"
)

// Function is a closure: its parameter list, body, and the lexical scope
// active at the point it was defined, captured by reference so that
// mutations through one closure are visible to every other closure sharing
// the same frame.
type Function struct {
	Name   string
	Params []*parser.Identifier
	Body   *parser.BlockExpression
	Env    *scope.Scope
}

func (f *Function) Type() objects.Type { return objects.FunctionType }

func (f *Function) ToString() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return "<fn " + name + ">"
}

func (f *Function) ToObject() string { return f.ToString() }

// ParamNames renders the parameter list for diagnostics.
func (f *Function) ParamNames() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
