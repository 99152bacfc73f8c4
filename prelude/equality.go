package prelude

import "github.com/lambda-lang/lambda/runtime"

// approxEqualOp implements `~=`, structural weak equality on
// non-function values (§4.7).
func approxEqualOp() runtime.Native {
	return binary("~=", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		eq, err := runtime.ApproxEqual(l, r)
		if err != nil {
			return nil, err
		}
		return runtime.Bool{Value: eq}, nil
	})
}

// equalOp and notEqualOp give `==`/`!=` a home in the default
// precedence table (§4.4's ParseOptions reserves priorities for them)
// as plain aliases of `~=`/not(`~=`) — the language has only one
// equality notion, structural weak equality, so `==` does not need a
// stricter variant.
func equalOp() runtime.Native {
	return binary("==", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		eq, err := runtime.ApproxEqual(l, r)
		if err != nil {
			return nil, err
		}
		return runtime.Bool{Value: eq}, nil
	})
}

func notEqualOp() runtime.Native {
	return binary("!=", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		eq, err := runtime.ApproxEqual(l, r)
		if err != nil {
			return nil, err
		}
		return runtime.Bool{Value: !eq}, nil
	})
}
