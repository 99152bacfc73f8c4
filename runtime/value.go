// Package runtime defines the evaluator's runtime data model: tagged
// Values, the SI Dimension vector that annotates numeric Units, the
// parent-chain Environment, and the RuntimeError union (§3, §4.6).
package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lambda-lang/lambda/ast"
)

// Value is the sealed interface every runtime value implements. Like
// ast.Expr there is no virtual dispatch beyond the marker method;
// callers switch on the concrete type (§9 "tagged unions everywhere").
type Value interface {
	// Type names the runtime kind for error messages (UnexpectedType).
	Type() string
	// String renders the value for REPL echo and debug output.
	String() string
	valueNode()
}

// Str is a string value.
type Str struct {
	Value string
}

func (Str) valueNode()       {}
func (Str) Type() string     { return "string" }
func (s Str) String() string { return strconv.Quote(s.Value) }

// Unit is a decimal magnitude with an SI-exponent dimension vector.
type Unit struct {
	Magnitude decimal.Decimal
	Dim       Dimension
}

func (Unit) valueNode()   {}
func (Unit) Type() string { return "unit" }
func (u Unit) String() string {
	dim := u.Dim.String()
	if dim == "" {
		return u.Magnitude.String()
	}
	return u.Magnitude.String() + " " + dim
}

// Symbol is a `:name` or `:op` value, the one-and-only table key kind.
type Symbol struct {
	Value string
}

func (Symbol) valueNode()       {}
func (Symbol) Type() string     { return "symbol" }
func (s Symbol) String() string { return ":" + s.Value }

// Bool is a boolean value, produced by comparisons and consumed by Cond.
type Bool struct {
	Value bool
}

func (Bool) valueNode()   {}
func (Bool) Type() string { return "bool" }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Table is an ordered string-keyed record (invariant b, §3): iteration
// order is insertion order, and re-Set on an existing key overwrites the
// value in place without moving it to the end.
type Table struct {
	keys []string
	vals map[string]Value
}

// NewTable returns an empty table ready for Set.
func NewTable() *Table {
	return &Table{vals: make(map[string]Value)}
}

// Set installs value at key, appending key to the iteration order only
// the first time it is seen.
func (t *Table) Set(key string, value Value) {
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = value
}

// Get looks up key, returning ok=false for a missing key rather than a
// zero Value — callers translate that into MissingKey.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.vals[key]
	return v, ok
}

// Keys returns a defensive copy of the table's keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t *Table) Len() int { return len(t.keys) }

func (*Table) valueNode()   {}
func (*Table) Type() string { return "table" }
func (t *Table) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(t.vals[k].String())
	}
	b.WriteByte('}')
	return b.String()
}

// Fun is a closure: a Lambda paired with the environment it was created
// in. EnvRef is retained exactly, not copied (invariant d, §3).
type Fun struct {
	Lam     ast.Lambda
	Closure EnvRef
}

func (Fun) valueNode()   {}
func (Fun) Type() string { return "function" }
func (f Fun) String() string {
	return ast.Lam{Lambda: f.Lam}.String()
}

// LazyName is either a literal name or a thunk that produces one. The
// thunk form lets a curried native defer formatting its own name until
// something actually asks for it (e.g. an unapplied `+` printed by
// Refl) instead of building the string on every partial application.
type LazyName struct {
	literal string
	thunk   func() string
}

// Name wraps a literal native name.
func Name(name string) LazyName { return LazyName{literal: name} }

// Thunk wraps a deferred native name.
func Thunk(f func() string) LazyName { return LazyName{thunk: f} }

// Resolve produces the name, invoking the thunk if present.
func (n LazyName) Resolve() string {
	if n.thunk != nil {
		return n.thunk()
	}
	return n.literal
}

// NativeFunc is the signature every built-in implements: given the
// argument and the caller's environment (needed by a few natives, e.g.
// `.=`, that must observe or mutate it), produce a Value or a
// RuntimeError.
type NativeFunc func(arg Value, env EnvRef) (Value, RuntimeError)

// Native is a built-in callee. Identity is observational by name only
// (§9 open question): a Native is shown by its Name.Resolve(), and
// Natives are never compared — `~=`, `==` and `!=` reject any callable
// operand with NotInDomain — so no pointer or reflect identity is used.
type Native struct {
	Name LazyName
	Fun  NativeFunc
}

func (Native) valueNode()   {}
func (Native) Type() string { return "native" }
func (n Native) String() string {
	return fmt.Sprintf("<native %s>", n.Name.Resolve())
}

// Callable reports whether v is something apply can invoke as a
// function — used by the `~=` weak-equality guard (§4.7: "structural
// weak equality on non-function values") and by error messages that
// need to describe the "table|function|native" callee union (§4.6).
func Callable(v Value) bool {
	switch v.(type) {
	case Fun, Native:
		return true
	default:
		return false
	}
}
