package prelude

import (
	"github.com/lambda-lang/lambda/eval"
	"github.com/lambda-lang/lambda/runtime"
)

// controlSignal marks the sentinel RuntimeErrors early_return/while
// install to unwind the evaluator back to the native frame that
// installed them (§9's "Outcome" design note): a distinct tagged
// channel layered on top of the ordinary RuntimeError short-circuit
// instead of a second return path through interpret/apply. Only the
// installing Imp native ever inspects one; every other caller treats
// it as an opaque RuntimeError and propagates it, which is exactly the
// unwind behaviour a signal needs.
type controlSignal interface {
	runtime.RuntimeError
	isControlSignal()
}

type returnSignal struct{ Value runtime.Value }

func (returnSignal) runtimeErrorNode() {}
func (returnSignal) isControlSignal()  {}
func (returnSignal) Error() string     { return "early_return used outside Imp:early_return" }

type breakSignal struct{}

func (breakSignal) runtimeErrorNode() {}
func (breakSignal) isControlSignal()  {}
func (breakSignal) Error() string     { return "break used outside Imp:while" }

type continueSignal struct{}

func (continueSignal) runtimeErrorNode() {}
func (continueSignal) isControlSignal()  {}
func (continueSignal) Error() string     { return "continue used outside Imp:while" }

// buildImpModule assembles the Imp module (§4.7): imperative control
// flow primitives built on the non-local exits above.
func buildImpModule() *runtime.Table {
	return newModule(
		entry{"early_return", impEarlyReturn()},
		entry{"while", impWhile()},
		entry{"when", impWhen()},
		entry{"chain", impChain()},
	)
}

// impEarlyReturn takes a one-argument function f and calls it with a
// fresh `return` native. If f (or anything it calls) applies `return`
// to a value, early_return resolves to that value instead of f's own
// result; otherwise it resolves to whatever f actually returned.
func impEarlyReturn() runtime.Native {
	return unary("Imp:early_return", func(body runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		returnFn := runtime.Native{Name: runtime.Name("return"), Fun: func(v runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
			return nil, returnSignal{Value: v}
		}}
		result, err := eval.Apply(body, returnFn, env)
		if err != nil {
			if rs, ok := err.(returnSignal); ok {
				return rs.Value, nil
			}
			return nil, err
		}
		return result, nil
	})
}

// impWhile takes a Table-shaped argument with `cond` and `body`
// callables (duck-typed through apply, the same contract bind uses for
// PTable parameters — §4.6). It re-evaluates cond, applied to a fresh
// empty Table, before each iteration and then applies body. `break`/
// `continue` natives reach body the same way early_return injects
// `return`: as entries of the Table body is applied to, not by
// mutating any environment.
func impWhile() runtime.Native {
	return unary("Imp:while", func(arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		cond, err := tableField(arg, "cond", env)
		if err != nil {
			return nil, err
		}
		body, err := tableField(arg, "body", env)
		if err != nil {
			return nil, err
		}

		breakFn := runtime.Native{Name: runtime.Name("break"), Fun: func(_ runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
			return nil, breakSignal{}
		}}
		continueFn := runtime.Native{Name: runtime.Name("continue"), Fun: func(_ runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
			return nil, continueSignal{}
		}}
		loopArg := runtime.NewTable()
		loopArg.Set("break", breakFn)
		loopArg.Set("continue", continueFn)

		last := runtime.Value(runtime.Bool{Value: false})
		for {
			test, testErr := eval.Apply(cond, runtime.NewTable(), env)
			if testErr != nil {
				return nil, testErr
			}
			b, ok := test.(runtime.Bool)
			if !ok {
				return nil, runtime.UnexpectedType{Expected: "boolean", Got: test.Type()}
			}
			if !b.Value {
				return last, nil
			}
			result, bodyErr := eval.Apply(body, loopArg, env)
			if bodyErr != nil {
				switch bodyErr.(type) {
				case breakSignal:
					return last, nil
				case continueSignal:
					continue
				default:
					return nil, bodyErr
				}
			}
			last = result
		}
	})
}

// impWhen applies the Table argument's `body` field only if its `cond`
// field is true; otherwise it resolves to Bool(false) without calling
// `body`. (`then` is a keyword, so it cannot be a table-literal key.)
func impWhen() runtime.Native {
	return unary("Imp:when", func(arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		condVal, err := tableField(arg, "cond", env)
		if err != nil {
			return nil, err
		}
		cond, err := requireBool(condVal)
		if err != nil {
			return nil, err
		}
		if !cond.Value {
			return runtime.Bool{Value: false}, nil
		}
		body, err := tableField(arg, "body", env)
		if err != nil {
			return nil, err
		}
		return eval.Apply(body, runtime.NewTable(), env)
	})
}

// impChain threads an accumulator through an ordered Table of
// single-argument steps, starting from an empty Table, short-circuiting
// on the first RuntimeError — the sequential-statement idiom a
// language with only expressions needs built as a library function
// instead of syntax.
func impChain() runtime.Native {
	return unary("Imp:chain", func(arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		steps, ok := arg.(*runtime.Table)
		if !ok {
			return nil, runtime.UnexpectedType{Expected: "table", Got: arg.Type()}
		}
		var acc runtime.Value = runtime.NewTable()
		for _, key := range steps.Keys() {
			step, _ := steps.Get(key)
			result, err := eval.Apply(step, acc, env)
			if err != nil {
				return nil, err
			}
			acc = result
		}
		return acc, nil
	})
}

// tableField duck-type-extracts key from v via apply, the same
// mechanism bind uses for PTable destructuring.
func tableField(v runtime.Value, key string, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
	return eval.Apply(v, runtime.Symbol{Value: key}, env)
}
