package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
)

func run(t *testing.T, src string) (objects.Object, *bytes.Buffer) {
	t.Helper()
	p := parser.New(src)
	prog := p.Parse()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())

	var out bytes.Buffer
	e := New(&out, strings.NewReader(""))
	return e.Run(prog), &out
}

func requireNoError(t *testing.T, result objects.Object) {
	t.Helper()
	if errObj, ok := result.(*objects.Error); ok {
		t.Fatalf("unexpected %s: %s", errObj.Kind, errObj.Message)
	}
}

func TestArithmeticBasics(t *testing.T) {
	result, _ := run(t, "let x = 10\nlet y = 20\nx + y")
	requireNoError(t, result)
	assert.Equal(t, int64(30), result.(*objects.Integer).Value)
}

func TestPowerStaysIntForNonNegativeExponent(t *testing.T) {
	result, _ := run(t, "2 ** 10")
	requireNoError(t, result)
	i, ok := result.(*objects.Integer)
	require.True(t, ok, "expected Integer, got %T", result)
	assert.Equal(t, int64(1024), i.Value)
}

func TestDivisionIsAlwaysFloat(t *testing.T) {
	result, _ := run(t, "15 / 4")
	requireNoError(t, result)
	f, ok := result.(*objects.Float)
	require.True(t, ok, "expected Float, got %T", result)
	assert.Equal(t, 3.75, f.Value)
}

func TestModuloTruncatesTowardZero(t *testing.T) {
	result, _ := run(t, "17 % 5")
	requireNoError(t, result)
	assert.Equal(t, int64(2), result.(*objects.Integer).Value)
}

func TestFibonacciRecursion(t *testing.T) {
	src := `
		fn fib(n) {
			if n < 2 {
				return n
			}
			return fib(n - 1) + fib(n - 2)
		}
		fib(10)
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	assert.Equal(t, int64(55), result.(*objects.Integer).Value)
}

func TestClosuresFromSameFactoryCaptureIndependentFrames(t *testing.T) {
	src := `
		fn make_adder(n) {
			fn adder(x) {
				return x + n
			}
			return adder
		}
		let add7 = make_adder(7)
		let add9 = make_adder(9)
		[add7(1), add9(1), add7(2)]
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	arr := result.(*objects.Array)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, int64(8), arr.Elements[0].(*objects.Integer).Value)
	assert.Equal(t, int64(10), arr.Elements[1].(*objects.Integer).Value)
	assert.Equal(t, int64(9), arr.Elements[2].(*objects.Integer).Value)
}

func TestClosureMutationOfCapturedFramePersistsAcrossCalls(t *testing.T) {
	src := `
		fn make_counter() {
			let count = 0
			fn inc() {
				count = count + 1
				return count
			}
			return inc
		}
		let counter = make_counter()
		counter()
		counter()
		counter()
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	assert.Equal(t, int64(3), result.(*objects.Integer).Value)
}

func TestArrayAliasingMutatesSharedUnderlyingArray(t *testing.T) {
	src := `
		let a = [1, 2]
		let b = a
		b[0] = 9
		a[0]
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	assert.Equal(t, int64(9), result.(*objects.Integer).Value)
}

func TestLogicalAndShortCircuitsWithoutEvaluatingRight(t *testing.T) {
	// division by zero on the right would error if evaluated
	result, _ := run(t, "false and (1 / 0)")
	requireNoError(t, result)
	assert.False(t, objects.Truthy(result))
}

func TestLogicalOrShortCircuitsWithoutEvaluatingRight(t *testing.T) {
	result, _ := run(t, "true or (1 / 0)")
	requireNoError(t, result)
	assert.True(t, objects.Truthy(result))
}

func TestLogicalOperatorsReturnOperandValueNotCoercedBool(t *testing.T) {
	result, _ := run(t, `0 or "fallback"`)
	requireNoError(t, result)
	assert.Equal(t, "fallback", result.(*objects.String).Value)
}

func TestConstReassignmentIsConstError(t *testing.T) {
	result, _ := run(t, "const x = 1\nx = 2")
	errObj, ok := result.(*objects.Error)
	require.True(t, ok, "expected an error, got %T", result)
	assert.Equal(t, "ConstError", errObj.Kind)
}

func TestLetShadowingOuterConstIsReassignable(t *testing.T) {
	src := `
		const x = 1
		fn f() {
			let x = 2
			x = 3
			return x
		}
		f()
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	assert.Equal(t, int64(3), result.(*objects.Integer).Value)
}

func TestAssigningOuterConstThroughChildScopeIsStillConstError(t *testing.T) {
	src := `
		const x = 1
		if true {
			x = 2
		}
	`
	result, _ := run(t, src)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok, "expected an error, got %T", result)
	assert.Equal(t, "ConstError", errObj.Kind)
}

func TestSortedDoesNotMutateOriginalArray(t *testing.T) {
	src := `
		let a = [3, 1, 2]
		let b = sorted(a)
		[a, b]
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	pair := result.(*objects.Array)
	original := pair.Elements[0].(*objects.Array)
	sortedArr := pair.Elements[1].(*objects.Array)
	assert.Equal(t, []int64{3, 1, 2}, intsOf(t, original))
	assert.Equal(t, []int64{1, 2, 3}, intsOf(t, sortedArr))
}

func TestDictKeysPreserveInsertionOrder(t *testing.T) {
	src := `
		let d = {}
		d["z"] = 1
		d["a"] = 2
		d["m"] = 3
		keys(d)
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	arr := result.(*objects.Array)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, "z", arr.Elements[0].(*objects.String).Value)
	assert.Equal(t, "a", arr.Elements[1].(*objects.String).Value)
	assert.Equal(t, "m", arr.Elements[2].(*objects.String).Value)
}

func TestNameErrorOnUnboundIdentifier(t *testing.T) {
	result, _ := run(t, "doesNotExist")
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "NameError", errObj.Kind)
}

func TestTypeErrorOnMixedArithmetic(t *testing.T) {
	result, _ := run(t, `1 + "x"`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "TypeError", errObj.Kind)
}

func TestIndexErrorOutOfRange(t *testing.T) {
	result, _ := run(t, "let a = [1, 2]\na[5]")
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "IndexError", errObj.Kind)
}

func TestKeyErrorOnMissingDictKey(t *testing.T) {
	result, _ := run(t, `let d = {"a": 1}
d["missing"]`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "KeyError", errObj.Kind)
}

func TestArityErrorOnWrongArgumentCount(t *testing.T) {
	result, _ := run(t, "fn f(a, b) { a + b }\nf(1)")
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "ArityError", errObj.Kind)
}

func TestZeroDivisionError(t *testing.T) {
	result, _ := run(t, "1 / 0")
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "ZeroDivisionError", errObj.Kind)
}

func TestRecursionErrorOnUnboundedRecursion(t *testing.T) {
	result, _ := run(t, "fn loop(n) { return loop(n + 1) }\nloop(0)")
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "RecursionError", errObj.Kind)
}

func TestWhileLoopAccumulates(t *testing.T) {
	src := `
		let i = 0
		let total = 0
		while i < 5 {
			total = total + i
			i = i + 1
		}
		total
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	assert.Equal(t, int64(10), result.(*objects.Integer).Value)
}

func TestForLoopOverArray(t *testing.T) {
	src := `
		let total = 0
		for x in [1, 2, 3, 4] {
			total = total + x
		}
		total
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	assert.Equal(t, int64(10), result.(*objects.Integer).Value)
}

func TestForLoopOverStringIsRuneByRune(t *testing.T) {
	src := `
		let out = []
		for c in "ab" {
			out = push(out, c)
		}
		out
	`
	result, _ := run(t, src)
	requireNoError(t, result)
	arr := result.(*objects.Array)
	require.Len(t, arr.Elements, 2)
	assert.Equal(t, "a", arr.Elements[0].(*objects.String).Value)
	assert.Equal(t, "b", arr.Elements[1].(*objects.String).Value)
}

func TestIfExpressionValueIsItsBlockFinalExpression(t *testing.T) {
	result, _ := run(t, "let x = if true { let y = 1\ny + 1 }\nx")
	requireNoError(t, result)
	assert.Equal(t, int64(2), result.(*objects.Integer).Value)
}

func TestEqualityIsCrossTypeNumeric(t *testing.T) {
	result, _ := run(t, "1 == 1.0")
	requireNoError(t, result)
	assert.True(t, result.(*objects.Boolean).Value)
}

func TestPrintWritesToStreamWithoutTrailingNewline(t *testing.T) {
	result, out := run(t, `print("hi")`)
	requireNoError(t, result)
	assert.Equal(t, "hi", out.String())
}

func intsOf(t *testing.T, arr *objects.Array) []int64 {
	t.Helper()
	out := make([]int64, len(arr.Elements))
	for i, e := range arr.Elements {
		out[i] = e.(*objects.Integer).Value
	}
	return out
}
