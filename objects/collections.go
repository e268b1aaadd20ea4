/*
File    : kira/objects/collections.go

Array and Dict are Kira's two reference types: assignment aliases them, and
index-assignment mutates the shared underlying object.
*/
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Array is an ordered, mutable sequence of Object, shared by reference.
type Array struct {
	Elements []Object
}

func (a *Array) Type() Type { return ArrayType }
func (a *Array) ToString() string {
	return a.render(func(o Object) string { return o.ToObject() })
}
func (a *Array) ToObject() string { return a.ToString() }

func (a *Array) render(elem func(Object) string) string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = elem(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DictPair is one key/value entry of a Dict, keeping the original key
// Object (for display) alongside its value.
type DictPair struct {
	Key   Object
	Value Object
}

// Dict is an insertion-ordered, mutable string-or-hashable-scalar-keyed
// mapping, shared by reference.
type Dict struct {
	Keys  []string // hash keys, insertion order
	Pairs map[string]DictPair
}

// NewDict creates an empty Dict ready for use.
func NewDict() *Dict {
	return &Dict{Pairs: make(map[string]DictPair)}
}

func (d *Dict) Type() Type { return DictType }

func (d *Dict) ToString() string {
	parts := make([]string, 0, len(d.Keys))
	for _, k := range d.Keys {
		pair := d.Pairs[k]
		parts = append(parts, fmt.Sprintf("%s: %s", pair.Key.ToObject(), pair.Value.ToObject()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (d *Dict) ToObject() string { return d.ToString() }

// Get looks up key (already hashed with HashKey) and returns its value.
func (d *Dict) Get(hashKey string) (Object, bool) {
	pair, ok := d.Pairs[hashKey]
	if !ok {
		return nil, false
	}
	return pair.Value, true
}

// Set inserts or overwrites key -> value, preserving first-insertion order.
func (d *Dict) Set(key, value Object) {
	hk := HashKey(key)
	if _, exists := d.Pairs[hk]; !exists {
		d.Keys = append(d.Keys, hk)
	}
	d.Pairs[hk] = DictPair{Key: key, Value: value}
}

// HashKey renders a canonical, type-discriminating key so that values of
// different Kira types never collide, while 1 and 1.0 — both numeric — hash
// the same way, matching `1 == 1.0` holding for equality.
func HashKey(o Object) string {
	switch v := o.(type) {
	case *String:
		return "s:" + v.Value
	case *Integer:
		return "n:" + strconv.FormatFloat(float64(v.Value), 'g', -1, 64)
	case *Float:
		return "n:" + strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *Boolean:
		return "b:" + strconv.FormatBool(v.Value)
	case *Null:
		return "null"
	default:
		return "o:" + o.ToObject()
	}
}
