// Package prelude builds the root environment interpret starts every
// program in: arithmetic, composition, equality, binding, dimension
// constructors, and the IO/Str/Sym/Refl/Imp modules (§4.7).
//
// Grounded on akashmaji946-go-mix/std's `Builtin{Name, Callback}`
// registry split one file per concern the way std/math.go,
// std/strings.go, std/arrays.go are split — generalized from a flat
// name->callback registry into curried runtime.Native values, since
// every operator here is called through the same one-argument `apply`
// path as user functions (§4.6), not through a separate builtin-call
// opcode.
package prelude

import (
	"fmt"

	"github.com/lambda-lang/lambda/eval"
	"github.com/lambda-lang/lambda/runtime"
)

// unary wraps a single-argument Go function as a Native.
func unary(name string, fn runtime.NativeFunc) runtime.Native {
	return runtime.Native{Name: runtime.Name(name), Fun: fn}
}

// binary wraps a two-argument Go function as a curried pair of
// Natives: the first application captures the left operand and
// returns a Native closing over it, the second actually computes.
// This is the curried-builtin shape every infix operator in the
// language needs, since apply only ever passes one argument at a time
// (§4.6's apply table).
func binary(name string, fn func(left, right runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError)) runtime.Native {
	return runtime.Native{
		Name: runtime.Name(name),
		Fun: func(left runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
			contName := runtime.Thunk(func() string { return fmt.Sprintf("%s(%s)", name, left.String()) })
			return runtime.Native{
				Name: contName,
				Fun: func(right runtime.Value, env2 runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
					return fn(left, right, env2)
				},
			}, nil
		},
	}
}

// ternary wraps a three-argument Go function as a curried chain of
// three Natives, one application deep each, the same currying trick
// binary uses extended one level further for builtins like
// Str:slice and Str:replace that need three arguments.
func ternary(name string, fn func(a, b, c runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError)) runtime.Native {
	return runtime.Native{
		Name: runtime.Name(name),
		Fun: func(a runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
			name1 := runtime.Thunk(func() string { return fmt.Sprintf("%s(%s)", name, a.String()) })
			return runtime.Native{
				Name: name1,
				Fun: func(b runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
					name2 := runtime.Thunk(func() string { return fmt.Sprintf("%s(%s, %s)", name, a.String(), b.String()) })
					return runtime.Native{
						Name: name2,
						Fun: func(c runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
							return fn(a, b, c, env)
						},
					}, nil
				},
			}, nil
		},
	}
}

func requireUnit(v runtime.Value) (runtime.Unit, runtime.RuntimeError) {
	u, ok := v.(runtime.Unit)
	if !ok {
		return runtime.Unit{}, runtime.UnexpectedType{Expected: "unit", Got: v.Type()}
	}
	return u, nil
}

func requireStr(v runtime.Value) (runtime.Str, runtime.RuntimeError) {
	s, ok := v.(runtime.Str)
	if !ok {
		return runtime.Str{}, runtime.UnexpectedType{Expected: "string", Got: v.Type()}
	}
	return s, nil
}

func requireBool(v runtime.Value) (runtime.Bool, runtime.RuntimeError) {
	b, ok := v.(runtime.Bool)
	if !ok {
		return runtime.Bool{}, runtime.UnexpectedType{Expected: "bool", Got: v.Type()}
	}
	return b, nil
}

func requireSymbol(v runtime.Value) (runtime.Symbol, runtime.RuntimeError) {
	s, ok := v.(runtime.Symbol)
	if !ok {
		return runtime.Symbol{}, runtime.UnexpectedType{Expected: "symbol", Got: v.Type()}
	}
	return s, nil
}

// requireIndex validates that v is a dimensionless integer Unit and
// returns it as an int, the domain check every natural-number-index
// builtin (Str:slice's bounds) needs.
func requireIndex(v runtime.Value) (int, runtime.RuntimeError) {
	u, err := requireUnit(v)
	if err != nil {
		return 0, err
	}
	if !u.Dim.IsZero() || !u.Magnitude.IsInteger() {
		return 0, runtime.NotInDomain{Value: v, Explanation: "index must be a dimensionless integer"}
	}
	return int(u.Magnitude.IntPart()), nil
}

// callback adapts eval.Apply to the (Value, Value, Env) -> (Value,
// RuntimeError) shape composition operators need when they invoke a
// user-supplied function.
func callback(fn, arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
	return eval.Apply(fn, arg, env)
}
