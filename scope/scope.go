/*
File: kira/scope/scope.go
*/
package scope

import "github.com/kira-lang/kira/objects"

// Scope is one frame of the lexical scope chain: block, function call, or
// the global frame at the root. Lookup walks outward through Parent;
// binding always happens in the current frame.
//
// Closures capture a *Scope by pointer, never by value: a function literal
// and every sibling that shares the same defining frame sees the same
// mutations to that frame's Variables, which is what makes a counter
// closure over a shared variable observe each other's increments.
type Scope struct {
	Variables map[string]objects.Object
	Consts    map[string]bool
	Parent    *Scope
}

// New creates an empty scope chained to parent. parent == nil makes it the
// global scope.
func New(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Object),
		Consts:    make(map[string]bool),
		Parent:    parent,
	}
}

// Child creates a fresh nested scope for a block, loop iteration, or
// function call.
func (s *Scope) Child() *Scope {
	return New(s)
}

// LookUp walks this scope and its ancestors and returns the first binding
// found for name.
func (s *Scope) LookUp(name string) (objects.Object, bool) {
	if obj, ok := s.Variables[name]; ok {
		return obj, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return nil, false
}

// Bind declares name in the current frame only, marking it const when
// isConst is true. A redeclaration in the same frame silently overwrites
// the previous binding; the evaluator is responsible for rejecting
// redeclaration where that matters.
func (s *Scope) Bind(name string, obj objects.Object, isConst bool) {
	s.Variables[name] = obj
	if isConst {
		s.Consts[name] = true
	} else {
		delete(s.Consts, name)
	}
}

// Assign mutates name in place in the frame where it was originally bound,
// walking outward from the current scope. It returns false if name is
// undeclared anywhere in the chain.
func (s *Scope) Assign(name string, obj objects.Object) bool {
	if _, ok := s.Variables[name]; ok {
		s.Variables[name] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, obj)
	}
	return false
}

// IsConst reports whether name is const in the frame where Assign would
// actually write it. It mirrors Assign's resolution order exactly: the
// first frame that owns a binding for name settles the question, so a
// `let` shadowing an outer `const` of the same name is never mistaken for
// the outer binding.
func (s *Scope) IsConst(name string) bool {
	if _, ok := s.Variables[name]; ok {
		return s.Consts[name]
	}
	if s.Parent != nil {
		return s.Parent.IsConst(name)
	}
	return false
}

// Declared reports whether name is bound in this exact frame, ignoring
// parents. Used to reject `let x` twice in the same block.
func (s *Scope) Declared(name string) bool {
	_, ok := s.Variables[name]
	return ok
}
