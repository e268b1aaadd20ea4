package objects

// Runtime is the narrow surface builtins need to call back into the
// evaluator, without importing eval (which imports objects) and risking a
// cycle. Only functions/closures go through Call; scalar builtins never
// need it.
type Runtime interface {
	// Call invokes a Kira function value with the given arguments and
	// returns its result or an *Error.
	Call(fn Object, args []Object) Object
}

// CallbackFunc is a builtin's Go implementation. rt is the calling
// evaluator, passed on every call so a builtin can invoke a Kira function
// value (none of the current builtins does); args excludes the builtin's
// own name.
type CallbackFunc func(rt Runtime, args []Object) Object

// Builtin wraps a native Go function as a callable Kira value. Each Fn
// checks its own argument count (exact or ranged) and returns an ArityError
// itself, since arities vary from fixed (len takes 1) to ranged (range
// takes 1 to 3) to open-ended (print, min, max, sum).
type Builtin struct {
	Name string
	Fn   CallbackFunc
}

func (b *Builtin) Type() Type       { return BuiltinType }
func (b *Builtin) ToString() string { return "<builtin " + b.Name + ">" }
func (b *Builtin) ToObject() string { return b.ToString() }
