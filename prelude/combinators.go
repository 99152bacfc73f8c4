package prelude

import (
	"fmt"

	"github.com/lambda-lang/lambda/runtime"
)

// compose builds the Native that applies first, then second, to its
// single argument: compose(f, g)(x) = g(f(x)).
func compose(first, second runtime.Value) runtime.Native {
	name := runtime.Thunk(func() string { return fmt.Sprintf("(%s . %s)", first.String(), second.String()) })
	return runtime.Native{Name: name, Fun: func(arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		mid, err := callback(first, arg, env)
		if err != nil {
			return nil, err
		}
		return callback(second, mid, env)
	}}
}

// leftToRightOp implements `>>`: `f >> g` applies f then g. Neither
// operand is checked for callability up front — f and g may be Table
// values too (the apply table's duck-typing extends to composition),
// so the check is left to eval.Apply at call time.
func leftToRightOp() runtime.Native {
	return binary(">>", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		return compose(l, r), nil
	})
}

// rightToLeftOp implements `<<`: `f << g` applies g then f, the usual
// mathematical composition order.
func rightToLeftOp() runtime.Native {
	return binary("<<", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		return compose(r, l), nil
	})
}

// forwardPipeOp implements `|>`: `a |> f` is `f a` with the value
// written first.
func forwardPipeOp() runtime.Native {
	return binary("|>", func(l, r runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		return callback(r, l, env)
	})
}

// reversePipeOp implements `$`: `f $ a` is `f a` with the function
// written first, at low enough precedence to avoid parenthesising a.
func reversePipeOp() runtime.Native {
	return binary("$", func(l, r runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		return callback(l, r, env)
	})
}
