/*
File    : kira/objects/objects.go

Package objects defines the runtime value model: the tagged variant every
Kira expression evaluates to, plus the primitive, reference, and callable
kinds it carries.
*/
package objects

import (
	"fmt"
	"strconv"
)

// Type tags a concrete Object's kind, used by the `type()` builtin and by
// type-dispatch inside the evaluator and builtins.
type Type string

const (
	IntegerType  Type = "int"
	FloatType    Type = "float"
	StringType   Type = "string"
	BooleanType  Type = "bool"
	NullType     Type = "null"
	ArrayType    Type = "array"
	DictType     Type = "dict"
	FunctionType Type = "function"
	BuiltinType  Type = "builtin"
	ErrorType    Type = "error"
	ReturnType   Type = "return" // internal control-flow wrapper, never user-visible
)

// Object is the interface every Kira runtime value implements.
type Object interface {
	Type() Type
	// ToString is the "print form" used by print/println and str(): a
	// string's raw contents.
	ToString() string
	// ToObject is the "inspect form" used by the REPL, by the CLI's echo of
	// a program's final value, and by nested array/dict elements: strings
	// are quoted and escaped.
	ToObject() string
}

// Truthy implements Kira's truthiness rule: false, null, 0, 0.0, "", [], {}
// are falsy; everything else is truthy.
func Truthy(o Object) bool {
	switch v := o.(type) {
	case *Boolean:
		return v.Value
	case *Null:
		return false
	case *Integer:
		return v.Value != 0
	case *Float:
		return v.Value != 0
	case *String:
		return v.Value != ""
	case *Array:
		return len(v.Elements) != 0
	case *Dict:
		return len(v.Keys) != 0
	default:
		return true
	}
}

// Integer is Kira's 64-bit two's-complement integer; overflow wraps per
// Go's native int64 arithmetic.
type Integer struct{ Value int64 }

func (i *Integer) Type() Type       { return IntegerType }
func (i *Integer) ToString() string { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) ToObject() string { return i.ToString() }

// Float is Kira's 64-bit IEEE-754 float. Display always shows a decimal
// point or an exponent.
type Float struct{ Value float64 }

func (f *Float) Type() Type { return FloatType }
func (f *Float) ToString() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}
func (f *Float) ToObject() string { return f.ToString() }

// String is Kira's immutable UTF-8 string value.
type String struct{ Value string }

func (s *String) Type() Type       { return StringType }
func (s *String) ToString() string { return s.Value }
func (s *String) ToObject() string {
	return strconv.Quote(s.Value)
}

// Boolean wraps a Go bool.
type Boolean struct{ Value bool }

func (b *Boolean) Type() Type       { return BooleanType }
func (b *Boolean) ToString() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) ToObject() string { return b.ToString() }

// Null is Kira's sole null value.
type Null struct{}

func (n *Null) Type() Type       { return NullType }
func (n *Null) ToString() string { return "null" }
func (n *Null) ToObject() string { return "null" }

// Error is a runtime error value. Kind is one of the taxonomy names
// (NameError, TypeError, ...); it is not itself a distinct Object kind
// users can construct — there is no catch construct.
type Error struct {
	Kind    string
	Message string
	Line    int
	Column  int
}

func (e *Error) Type() Type { return ErrorType }
func (e *Error) ToString() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
func (e *Error) ToObject() string { return e.ToString() }

// ReturnValue wraps the value carried by a `return` statement so it can
// propagate up through nested blocks and loops until it is consumed at a
// call boundary. It is never visible to Kira code.
type ReturnValue struct{ Value Object }

func (r *ReturnValue) Type() Type       { return ReturnType }
func (r *ReturnValue) ToString() string { return r.Value.ToString() }
func (r *ReturnValue) ToObject() string { return r.Value.ToObject() }

// IsError reports whether o is a runtime Error.
func IsError(o Object) bool {
	_, ok := o.(*Error)
	return ok
}

// NewError constructs an Error with no position information; callers that
// have a token attach Line/Column separately.
func NewError(kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// TypeName renders the display tag used by the `type()` builtin. Every
// concrete Object (including *function.Function, which lives in a separate
// package to avoid an import cycle with scope and parser) reports its own
// tag through Type(), so no type switch is needed here.
func TypeName(o Object) string {
	return string(o.Type())
}
