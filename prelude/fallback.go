package prelude

import (
	"fmt"

	"github.com/lambda-lang/lambda/runtime"
)

// fallbackOp implements `|?`: given two callees, returns a callable
// that tries the first and, on MissingKey, falls back to the second;
// any other error propagates (§4.7, §8: `({x: 1} |? {y: 2}) :y` = 2).
func fallbackOp() runtime.Native {
	return binary("|?", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		name := runtime.Thunk(func() string { return fmt.Sprintf("(%s |? %s)", l.String(), r.String()) })
		return runtime.Native{Name: name, Fun: func(arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
			v, err := callback(l, arg, env)
			if err == nil {
				return v, nil
			}
			if _, missing := err.(runtime.MissingKey); !missing {
				return nil, err
			}
			return callback(r, arg, env)
		}}, nil
	})
}
