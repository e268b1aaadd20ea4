/*
File: kira/builtins/builtins.go

Package builtins implements the closed set of native functions that
populate the root scope: print/println/input, type inspection and
coercion, array/dict/string helpers. Every entry is registered as a
const *objects.Builtin so `len = 1` in user code is a ConstError, not a
silent overwrite (a top-level `let len = 1` is a NameError, since the name
is already defined in the root scope).
*/
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/scope"
)

// Streams is the I/O the `print`/`println`/`input` builtins read and write.
type Streams struct {
	Out io.Writer
	In  *bufio.Reader
}

// Register installs every builtin into root, marked const.
func Register(root *scope.Scope, streams *Streams) {
	for name, fn := range all(streams) {
		root.Bind(name, &objects.Builtin{Name: name, Fn: fn}, true)
	}
}

func all(streams *Streams) map[string]objects.CallbackFunc {
	return map[string]objects.CallbackFunc{
		"print":    biPrint(streams, false),
		"println":  biPrint(streams, true),
		"input":    biInput(streams),
		"len":      biLen,
		"type":     biType,
		"str":      biStr,
		"int":      biInt,
		"float":    biFloat,
		"range":    biRange,
		"push":     biPush,
		"pop":      biPop,
		"first":    biFirst,
		"last":     biLast,
		"rest":     biRest,
		"sorted":   biSorted,
		"reversed": biReversed,
		"join":     biJoin,
		"keys":     biKeys,
		"values":   biValues,
		"abs":      biAbs,
		"min":      biMin,
		"max":      biMax,
		"sum":      biSum,
		"split":    biSplit,
		"upper":    biUpper,
		"lower":    biLower,
		"strip":    biStrip,
		"replace":  biReplace,
		"contains": biContains,
	}
}

func argErr(name, format string, args ...interface{}) *objects.Error {
	return objects.NewError("ArityError", "%s: "+format, append([]interface{}{name}, args...)...)
}

func typeErr(name, format string, args ...interface{}) *objects.Error {
	return objects.NewError("TypeError", "%s: "+format, append([]interface{}{name}, args...)...)
}

func exactArity(name string, args []objects.Object, n int) *objects.Error {
	if len(args) != n {
		return argErr(name, "expected %d argument(s), got %d", n, len(args))
	}
	return nil
}

func biPrint(streams *Streams, newline bool) objects.CallbackFunc {
	return func(rt objects.Runtime, args []objects.Object) objects.Object {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.ToString()
		}
		fmt.Fprint(streams.Out, strings.Join(parts, " "))
		if newline {
			fmt.Fprintln(streams.Out)
		}
		return &objects.Null{}
	}
}

func biInput(streams *Streams) objects.CallbackFunc {
	return func(rt objects.Runtime, args []objects.Object) objects.Object {
		if len(args) > 1 {
			return argErr("input", "expected at most 1 argument, got %d", len(args))
		}
		if len(args) == 1 {
			s, ok := args[0].(*objects.String)
			if !ok {
				return typeErr("input", "prompt must be a string")
			}
			fmt.Fprint(streams.Out, s.Value)
		}
		line, err := streams.In.ReadString('\n')
		if err != nil && line == "" {
			return objects.NewError("ValueError", "input: end of input")
		}
		line = strings.TrimRight(line, "\r\n")
		return &objects.String{Value: line}
	}
}

func biLen(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("len", args, 1); err != nil {
		return err
	}
	switch v := args[0].(type) {
	case *objects.String:
		return &objects.Integer{Value: int64(utf8.RuneCountInString(v.Value))}
	case *objects.Array:
		return &objects.Integer{Value: int64(len(v.Elements))}
	case *objects.Dict:
		return &objects.Integer{Value: int64(len(v.Keys))}
	default:
		return typeErr("len", "unsupported type %s", objects.TypeName(args[0]))
	}
}

func biType(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("type", args, 1); err != nil {
		return err
	}
	return &objects.String{Value: objects.TypeName(args[0])}
}

func biStr(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("str", args, 1); err != nil {
		return err
	}
	return &objects.String{Value: args[0].ToString()}
}

func biInt(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("int", args, 1); err != nil {
		return err
	}
	switch v := args[0].(type) {
	case *objects.Integer:
		return v
	case *objects.Float:
		return &objects.Integer{Value: int64(v.Value)}
	case *objects.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return objects.NewError("ValueError", "int: invalid literal %q", v.Value)
		}
		return &objects.Integer{Value: n}
	default:
		return typeErr("int", "cannot convert %s to int", objects.TypeName(args[0]))
	}
}

func biFloat(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("float", args, 1); err != nil {
		return err
	}
	switch v := args[0].(type) {
	case *objects.Float:
		return v
	case *objects.Integer:
		return &objects.Float{Value: float64(v.Value)}
	case *objects.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return objects.NewError("ValueError", "float: invalid literal %q", v.Value)
		}
		return &objects.Float{Value: f}
	default:
		return typeErr("float", "cannot convert %s to float", objects.TypeName(args[0]))
	}
}

func asInt(name string, o objects.Object) (int64, *objects.Error) {
	i, ok := o.(*objects.Integer)
	if !ok {
		return 0, typeErr(name, "expected int argument")
	}
	return i.Value, nil
}

func biRange(rt objects.Runtime, args []objects.Object) objects.Object {
	var start, stop, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		n, err := asInt("range", args[0])
		if err != nil {
			return err
		}
		stop = n
	case 2:
		a, err := asInt("range", args[0])
		if err != nil {
			return err
		}
		b, err2 := asInt("range", args[1])
		if err2 != nil {
			return err2
		}
		start, stop = a, b
	case 3:
		a, err := asInt("range", args[0])
		if err != nil {
			return err
		}
		b, err2 := asInt("range", args[1])
		if err2 != nil {
			return err2
		}
		s, err3 := asInt("range", args[2])
		if err3 != nil {
			return err3
		}
		start, stop, step = a, b, s
	default:
		return argErr("range", "expected 1 to 3 arguments, got %d", len(args))
	}
	if step == 0 {
		return objects.NewError("ValueError", "range: step must not be zero")
	}
	arr := &objects.Array{}
	if step > 0 {
		for i := start; i < stop; i += step {
			arr.Elements = append(arr.Elements, &objects.Integer{Value: i})
		}
	} else {
		for i := start; i > stop; i += step {
			arr.Elements = append(arr.Elements, &objects.Integer{Value: i})
		}
	}
	return arr
}

func asArray(name string, o objects.Object) (*objects.Array, *objects.Error) {
	arr, ok := o.(*objects.Array)
	if !ok {
		return nil, typeErr(name, "expected array argument, got %s", objects.TypeName(o))
	}
	return arr, nil
}

func biPush(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("push", args, 2); err != nil {
		return err
	}
	arr, err := asArray("push", args[0])
	if err != nil {
		return err
	}
	arr.Elements = append(arr.Elements, args[1])
	return arr
}

func biPop(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("pop", args, 1); err != nil {
		return err
	}
	arr, err := asArray("pop", args[0])
	if err != nil {
		return err
	}
	if len(arr.Elements) == 0 {
		return objects.NewError("IndexError", "pop: array is empty")
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last
}

func biFirst(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("first", args, 1); err != nil {
		return err
	}
	arr, err := asArray("first", args[0])
	if err != nil {
		return err
	}
	if len(arr.Elements) == 0 {
		return objects.NewError("IndexError", "first: array is empty")
	}
	return arr.Elements[0]
}

func biLast(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("last", args, 1); err != nil {
		return err
	}
	arr, err := asArray("last", args[0])
	if err != nil {
		return err
	}
	if len(arr.Elements) == 0 {
		return objects.NewError("IndexError", "last: array is empty")
	}
	return arr.Elements[len(arr.Elements)-1]
}

func biRest(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("rest", args, 1); err != nil {
		return err
	}
	arr, err := asArray("rest", args[0])
	if err != nil {
		return err
	}
	if len(arr.Elements) == 0 {
		return &objects.Array{}
	}
	rest := make([]objects.Object, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &objects.Array{Elements: rest}
}

// less orders two scalars for `sorted`: numerics by value, strings
// lexicographically. Mixed or unsupported kinds are a TypeError.
func less(a, b objects.Object) (bool, *objects.Error) {
	if af, aok := numericOf(a); aok {
		if bf, bok := numericOf(b); bok {
			return af < bf, nil
		}
	}
	if as, aok := a.(*objects.String); aok {
		if bs, bok := b.(*objects.String); bok {
			return as.Value < bs.Value, nil
		}
	}
	return false, typeErr("sorted", "cannot compare %s and %s", objects.TypeName(a), objects.TypeName(b))
}

func numericOf(o objects.Object) (float64, bool) {
	switch v := o.(type) {
	case *objects.Integer:
		return float64(v.Value), true
	case *objects.Float:
		return v.Value, true
	default:
		return 0, false
	}
}

func biSorted(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("sorted", args, 1); err != nil {
		return err
	}
	arr, err := asArray("sorted", args[0])
	if err != nil {
		return err
	}
	out := make([]objects.Object, len(arr.Elements))
	copy(out, arr.Elements)
	var sortErr *objects.Error
	sort.SliceStable(out, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		lt, e := less(out[i], out[j])
		if e != nil {
			sortErr = e
		}
		return lt
	})
	if sortErr != nil {
		return sortErr
	}
	return &objects.Array{Elements: out}
}

func biReversed(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("reversed", args, 1); err != nil {
		return err
	}
	arr, err := asArray("reversed", args[0])
	if err != nil {
		return err
	}
	out := make([]objects.Object, len(arr.Elements))
	for i, e := range arr.Elements {
		out[len(arr.Elements)-1-i] = e
	}
	return &objects.Array{Elements: out}
}

func biJoin(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("join", args, 2); err != nil {
		return err
	}
	arr, err := asArray("join", args[0])
	if err != nil {
		return err
	}
	sep, ok := args[1].(*objects.String)
	if !ok {
		return typeErr("join", "separator must be a string")
	}
	parts := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		s, ok := e.(*objects.String)
		if !ok {
			return typeErr("join", "element %d is not a string", i)
		}
		parts[i] = s.Value
	}
	return &objects.String{Value: strings.Join(parts, sep.Value)}
}

func asDict(name string, o objects.Object) (*objects.Dict, *objects.Error) {
	d, ok := o.(*objects.Dict)
	if !ok {
		return nil, typeErr(name, "expected dict argument, got %s", objects.TypeName(o))
	}
	return d, nil
}

func biKeys(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("keys", args, 1); err != nil {
		return err
	}
	d, err := asDict("keys", args[0])
	if err != nil {
		return err
	}
	arr := &objects.Array{}
	for _, k := range d.Keys {
		arr.Elements = append(arr.Elements, d.Pairs[k].Key)
	}
	return arr
}

func biValues(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("values", args, 1); err != nil {
		return err
	}
	d, err := asDict("values", args[0])
	if err != nil {
		return err
	}
	arr := &objects.Array{}
	for _, k := range d.Keys {
		arr.Elements = append(arr.Elements, d.Pairs[k].Value)
	}
	return arr
}

func biAbs(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("abs", args, 1); err != nil {
		return err
	}
	switch v := args[0].(type) {
	case *objects.Integer:
		if v.Value < 0 {
			return &objects.Integer{Value: -v.Value}
		}
		return v
	case *objects.Float:
		if v.Value < 0 {
			return &objects.Float{Value: -v.Value}
		}
		return v
	default:
		return typeErr("abs", "expected numeric argument, got %s", objects.TypeName(args[0]))
	}
}

// numericArgs collects either a single array argument or the variadic
// argument list itself, per spec for min/max/sum.
func numericArgs(name string, args []objects.Object) ([]objects.Object, *objects.Error) {
	if len(args) == 1 {
		if arr, ok := args[0].(*objects.Array); ok {
			if len(arr.Elements) == 0 {
				return nil, argErr(name, "array argument must not be empty")
			}
			return arr.Elements, nil
		}
	}
	if len(args) == 0 {
		return nil, argErr(name, "expected at least 1 argument")
	}
	return args, nil
}

func biMin(rt objects.Runtime, args []objects.Object) objects.Object {
	vals, err := numericArgs("min", args)
	if err != nil {
		return err
	}
	best := vals[0]
	bestF, ok := numericOf(best)
	if !ok {
		return typeErr("min", "expected numeric arguments")
	}
	for _, v := range vals[1:] {
		f, ok := numericOf(v)
		if !ok {
			return typeErr("min", "expected numeric arguments")
		}
		if f < bestF {
			best, bestF = v, f
		}
	}
	return best
}

func biMax(rt objects.Runtime, args []objects.Object) objects.Object {
	vals, err := numericArgs("max", args)
	if err != nil {
		return err
	}
	best := vals[0]
	bestF, ok := numericOf(best)
	if !ok {
		return typeErr("max", "expected numeric arguments")
	}
	for _, v := range vals[1:] {
		f, ok := numericOf(v)
		if !ok {
			return typeErr("max", "expected numeric arguments")
		}
		if f > bestF {
			best, bestF = v, f
		}
	}
	return best
}

func biSum(rt objects.Runtime, args []objects.Object) objects.Object {
	vals, err := numericArgs("sum", args)
	if err != nil {
		return err
	}
	var total float64
	allInt := true
	for _, v := range vals {
		switch n := v.(type) {
		case *objects.Integer:
			total += float64(n.Value)
		case *objects.Float:
			total += n.Value
			allInt = false
		default:
			return typeErr("sum", "expected numeric arguments")
		}
	}
	if allInt {
		return &objects.Integer{Value: int64(total)}
	}
	return &objects.Float{Value: total}
}

func asString(name string, o objects.Object) (string, *objects.Error) {
	s, ok := o.(*objects.String)
	if !ok {
		return "", typeErr(name, "expected string argument, got %s", objects.TypeName(o))
	}
	return s.Value, nil
}

func biSplit(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("split", args, 2); err != nil {
		return err
	}
	s, err := asString("split", args[0])
	if err != nil {
		return err
	}
	sep, err2 := asString("split", args[1])
	if err2 != nil {
		return err2
	}
	parts := strings.Split(s, sep)
	arr := &objects.Array{}
	for _, p := range parts {
		arr.Elements = append(arr.Elements, &objects.String{Value: p})
	}
	return arr
}

func biUpper(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("upper", args, 1); err != nil {
		return err
	}
	s, err := asString("upper", args[0])
	if err != nil {
		return err
	}
	return &objects.String{Value: strings.ToUpper(s)}
}

func biLower(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("lower", args, 1); err != nil {
		return err
	}
	s, err := asString("lower", args[0])
	if err != nil {
		return err
	}
	return &objects.String{Value: strings.ToLower(s)}
}

func biStrip(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("strip", args, 1); err != nil {
		return err
	}
	s, err := asString("strip", args[0])
	if err != nil {
		return err
	}
	return &objects.String{Value: strings.TrimSpace(s)}
}

func biReplace(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("replace", args, 3); err != nil {
		return err
	}
	s, err := asString("replace", args[0])
	if err != nil {
		return err
	}
	old, err2 := asString("replace", args[1])
	if err2 != nil {
		return err2
	}
	nw, err3 := asString("replace", args[2])
	if err3 != nil {
		return err3
	}
	return &objects.String{Value: strings.ReplaceAll(s, old, nw)}
}

func biContains(rt objects.Runtime, args []objects.Object) objects.Object {
	if err := exactArity("contains", args, 2); err != nil {
		return err
	}
	switch c := args[0].(type) {
	case *objects.Array:
		for _, e := range c.Elements {
			if objects.Equals(e, args[1]) {
				return &objects.Boolean{Value: true}
			}
		}
		return &objects.Boolean{Value: false}
	case *objects.Dict:
		_, ok := c.Get(objects.HashKey(args[1]))
		return &objects.Boolean{Value: ok}
	case *objects.String:
		item, err := asString("contains", args[1])
		if err != nil {
			return err
		}
		return &objects.Boolean{Value: strings.Contains(c.Value, item)}
	default:
		return typeErr("contains", "unsupported container type %s", objects.TypeName(args[0]))
	}
}
