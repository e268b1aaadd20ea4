/*
File: kira/eval/eval_collections.go

Array/dict literal construction and indexing.
*/
package eval

import (
	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
	"github.com/kira-lang/kira/scope"
)

func (e *Evaluator) evalArrayLiteral(n *parser.ArrayLiteral, env *scope.Scope) objects.Object {
	arr := &objects.Array{}
	for _, elemNode := range n.Elements {
		val := e.Eval(elemNode, env)
		if objects.IsError(val) {
			return val
		}
		arr.Elements = append(arr.Elements, val)
	}
	return arr
}

func (e *Evaluator) evalDictLiteral(n *parser.DictLiteral, env *scope.Scope) objects.Object {
	dict := objects.NewDict()
	for i, keyNode := range n.Keys {
		key := e.Eval(keyNode, env)
		if objects.IsError(key) {
			return key
		}
		val := e.Eval(n.Values[i], env)
		if objects.IsError(val) {
			return val
		}
		dict.Set(key, val)
	}
	return dict
}

func (e *Evaluator) evalIndexExpression(n *parser.IndexExpression, env *scope.Scope) objects.Object {
	left := e.Eval(n.Left, env)
	if objects.IsError(left) {
		return left
	}
	index := e.Eval(n.Index, env)
	if objects.IsError(index) {
		return index
	}
	line, col := n.Pos()

	switch container := left.(type) {
	case *objects.Array:
		idx, ok := index.(*objects.Integer)
		if !ok {
			return &objects.Error{Kind: "TypeError", Message: "array index must be an int", Line: line, Column: col}
		}
		if idx.Value < 0 || idx.Value >= int64(len(container.Elements)) {
			return &objects.Error{Kind: "IndexError", Message: "array index out of range", Line: line, Column: col}
		}
		return container.Elements[idx.Value]
	case *objects.String:
		idx, ok := index.(*objects.Integer)
		if !ok {
			return &objects.Error{Kind: "TypeError", Message: "string index must be an int", Line: line, Column: col}
		}
		runes := []rune(container.Value)
		if idx.Value < 0 || idx.Value >= int64(len(runes)) {
			return &objects.Error{Kind: "IndexError", Message: "string index out of range", Line: line, Column: col}
		}
		return &objects.String{Value: string(runes[idx.Value])}
	case *objects.Dict:
		val, ok := container.Get(objects.HashKey(index))
		if !ok {
			return &objects.Error{Kind: "KeyError", Message: "key not found: " + index.ToObject(), Line: line, Column: col}
		}
		return val
	default:
		return &objects.Error{Kind: "TypeError", Message: "cannot index " + objects.TypeName(left), Line: line, Column: col}
	}
}
