package objects

// Equals implements Kira's `==`: cross-type numerics compare by numeric
// value (`1 == 1.0` is true); any other cross-type pair is simply not
// equal, never an error. Shared by the evaluator's `==`/`!=` and by the
// `contains` builtin's array-membership check (its dict-key check goes
// through HashKey instead).
func Equals(a, b Object) bool {
	if af, aok := numericValue(a); aok {
		if bf, bok := numericValue(b); bok {
			return af == bf
		}
		return false
	}
	switch av := a.(type) {
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, k := range av.Keys {
			bp, ok := bv.Pairs[k]
			if !ok || !Equals(av.Pairs[k].Value, bp.Value) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func numericValue(o Object) (float64, bool) {
	switch v := o.(type) {
	case *Integer:
		return float64(v.Value), true
	case *Float:
		return v.Value, true
	default:
		return 0, false
	}
}
