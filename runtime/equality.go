package runtime

import "sort"

// ApproxEqual implements `~=`, structural weak equality on non-function
// values (§4.7). It returns NotInDomain if either operand is callable —
// Fun/Native identity is intentionally not comparable this way.
func ApproxEqual(a, b Value) (bool, RuntimeError) {
	if Callable(a) {
		return false, NotInDomain{Value: a, Explanation: "functions are not comparable with `~=`"}
	}
	if Callable(b) {
		return false, NotInDomain{Value: b, Explanation: "functions are not comparable with `~=`"}
	}
	return valuesEqual(a, b), nil
}

func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case Str:
		bv, ok := b.(Str)
		return ok && av.Value == bv.Value
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av.Value == bv.Value
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case Unit:
		bv, ok := b.(Unit)
		return ok && av.Magnitude.Equal(bv.Magnitude) && Equal(av.Dim, bv.Dim)
	case *Table:
		bv, ok := b.(*Table)
		return ok && tablesEqual(av, bv)
	default:
		return false
	}
}

// tablesEqual treats two tables as equal when they hold the same
// multiset of keys (order-independent — {a:1,b:2} ~= {b:2,a:1}) and,
// for each key, ~=-equal values.
func tablesEqual(a, b *Table) bool {
	ak, bk := a.Keys(), b.Keys()
	if len(ak) != len(bk) {
		return false
	}
	sort.Strings(ak)
	sort.Strings(bk)
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
	}
	for _, k := range ak {
		av, _ := a.Get(k)
		bv, _ := b.Get(k)
		if !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}
