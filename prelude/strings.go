package prelude

import "github.com/lambda-lang/lambda/runtime"

// concatOp implements `++`, string concatenation (§4.7, §8 scenario 5:
// `"hello" ++ " " ++ "world"` → `Str("hello world")`).
func concatOp() runtime.Native {
	return binary("++", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		ls, err := requireStr(l)
		if err != nil {
			return nil, err
		}
		rs, err := requireStr(r)
		if err != nil {
			return nil, err
		}
		return runtime.Str{Value: ls.Value + rs.Value}, nil
	})
}
