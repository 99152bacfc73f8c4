package prelude

import "github.com/lambda-lang/lambda/runtime"

// entry is one ordered (key, value) pair fed into newModule — a plain
// slice rather than a Go map so module construction doesn't depend on
// Go's randomised map iteration order for something that ends up as a
// Table's insertion order (invariant b, §3).
type entry struct {
	key   string
	value runtime.Value
}

// newModule builds a table-backed native module (§4.7): a Table whose
// own `__table__` entry points back at itself, so `IO :__table__` (or
// any module) can be introspected the same way a literal table can.
// A module responds to application the same way any Table does — via
// eval.Apply's Table row — so no special "module" runtime kind exists.
func newModule(entries ...entry) *runtime.Table {
	t := runtime.NewTable()
	for _, e := range entries {
		t.Set(e.key, e.value)
	}
	t.Set("__table__", t)
	return t
}
