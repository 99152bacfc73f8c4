package prelude

import (
	"github.com/shopspring/decimal"

	"github.com/lambda-lang/lambda/runtime"
)

// buildReflModule assembles the Refl module (§4.7): introspection over
// runtime values, grounded on invariant (a)'s captured_names field,
// which exists specifically to feed "the prelude's reflective
// pretty-printer" (§3).
func buildReflModule() *runtime.Table {
	return newModule(
		entry{"type_of", reflTypeOf()},
		entry{"captures", reflCaptures()},
		entry{"arity_hint", reflArityHint()},
	)
}

func reflTypeOf() runtime.Native {
	return unary("Refl:type_of", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		return runtime.Str{Value: arg.Type()}, nil
	})
}

// reflCaptures exposes a Fun's captured_names as a set-shaped Table —
// each captured name mapped to Bool(true) — rather than a
// decimal-indexed array, since callers care whether a given name was
// captured, not the order invariant (a) happened to collect them in.
func reflCaptures() runtime.Native {
	return unary("Refl:captures", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		fn, ok := arg.(runtime.Fun)
		if !ok {
			return nil, runtime.UnexpectedType{Expected: "function", Got: arg.Type()}
		}
		tbl := runtime.NewTable()
		for _, name := range fn.Lam.Captured {
			tbl.Set(name, runtime.Bool{Value: true})
		}
		return tbl, nil
	})
}

// reflArityHint always reports 1: every Fun in the language takes
// exactly one argument (§4.6's apply discipline), so this is a
// constant rather than a real inspection — kept as its own entry so
// callers don't have to special-case "arity is always 1" themselves.
func reflArityHint() runtime.Native {
	return unary("Refl:arity_hint", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		if _, ok := arg.(runtime.Fun); !ok {
			if _, ok := arg.(runtime.Native); !ok {
				return nil, runtime.UnexpectedType{Expected: "function", Got: arg.Type()}
			}
		}
		return runtime.Unit{Magnitude: decimal.NewFromInt(1), Dim: runtime.Zero()}, nil
	})
}
