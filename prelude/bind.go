package prelude

import "github.com/lambda-lang/lambda/runtime"

// defineOp implements `.=`: `:name .= value` installs name in the
// environment active at the point `.=` is actually applied to value —
// not the environment where the symbol operand was evaluated, since
// that is always just the global prelude table's own environment.
// At the REPL top level that is the root environment; inside a lambda
// body it is that call's fresh environment (§4.7, §5).
func defineOp() runtime.Native {
	return binary(".=", func(l, r runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		sym, err := requireSymbol(l)
		if err != nil {
			return nil, err
		}
		env.Define(sym.Value, r)
		return r, nil
	})
}
