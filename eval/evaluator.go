// Package eval is the tree-walking evaluator: interpret walks an
// ast.Expr against a runtime.Environment, apply dispatches on the
// callee's runtime kind, and bind destructures a call argument against
// a lambda's parameter pattern (§4.6).
//
// Grounded on akashmaji946-go-mix/eval/eval_expressions.go's Eval type
// switch and akashmaji946-go-mix/eval/evaluator.go's CallFunction
// dispatch, generalized from a single "call this function object" path
// into the three-way Native/Fun/Table apply table §4.6 specifies.
package eval

import (
	"fmt"

	"github.com/lambda-lang/lambda/ast"
	"github.com/lambda-lang/lambda/runtime"
)

// Interpret evaluates expr against env, short-circuiting on the first
// RuntimeError and propagating it up through the call stack as an
// ordinary return value.
func Interpret(expr ast.Expr, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
	switch e := expr.(type) {
	case ast.Dec:
		return runtime.Unit{Magnitude: e.Value, Dim: runtime.Zero()}, nil

	case ast.Str:
		return runtime.Str{Value: e.Value}, nil

	case ast.Symbol:
		return runtime.Symbol{Value: e.Value}, nil

	case ast.Table:
		tbl := runtime.NewTable()
		for _, entry := range e.Entries {
			v, err := Interpret(entry.Value, env)
			if err != nil {
				return nil, err
			}
			tbl.Set(entry.Key, v)
		}
		return tbl, nil

	case ast.Name:
		v, ok := env.Lookup(e.Value)
		if !ok {
			return nil, runtime.UndefinedName{Name: e.Value}
		}
		return v, nil

	case ast.App:
		fn, err := Interpret(e.Fun, env)
		if err != nil {
			return nil, err
		}
		arg, err := Interpret(e.Arg, env)
		if err != nil {
			return nil, err
		}
		return Apply(fn, arg, env)

	case ast.Cond:
		t, err := Interpret(e.Test, env)
		if err != nil {
			return nil, err
		}
		b, ok := t.(runtime.Bool)
		if !ok {
			return nil, runtime.UnexpectedType{Expected: "boolean", Got: t.Type()}
		}
		if b.Value {
			return Interpret(e.Then, env)
		}
		return Interpret(e.Else, env)

	case ast.Lam:
		return runtime.Fun{Lam: e.Lambda, Closure: env}, nil

	default:
		return nil, runtime.Other{Value: runtime.Str{Value: fmt.Sprintf("cannot evaluate %T", expr)}}
	}
}

// Apply dispatches a single-argument call on callee's runtime kind
// (§4.6's apply table). env is the caller's environment: for a Fun it
// is only ever threaded into bind (to evaluate destructuring
// sub-calls), never used as the function body's lexical scope — that
// scope is always the closure env, per the table's own note.
func Apply(callee runtime.Value, arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
	switch c := callee.(type) {
	case runtime.Native:
		return c.Fun(arg, env)

	case runtime.Fun:
		bindings, err := Bind(c.Lam.Param, arg, env)
		if err != nil {
			return nil, err
		}
		callEnv := runtime.NewEnvironment(c.Closure)
		for _, b := range bindings {
			callEnv.Define(b.Name, b.Value)
		}
		return Interpret(c.Lam.Body, callEnv)

	case *runtime.Table:
		sym, ok := arg.(runtime.Symbol)
		if !ok {
			return nil, runtime.UnexpectedType{Expected: "symbol", Got: arg.Type()}
		}
		v, ok := c.Get(sym.Value)
		if !ok {
			return nil, runtime.MissingKey{Key: sym.Value}
		}
		return v, nil

	default:
		return nil, runtime.UnexpectedType{Expected: "table|function|native", Got: callee.Type()}
	}
}

// Binding is one (name, value) pair produced by Bind, ready to be
// installed into a fresh call environment.
type Binding struct {
	Name  string
	Value runtime.Value
}

// Bind destructures value against param. A PTable entry's extraction is
// itself an Apply call against value — the duck-typing contract (§4.6):
// any callee that answers Symbol arguments sensibly can be destructured
// as if it were a table, literal or not.
func Bind(param ast.Pattern, value runtime.Value, env runtime.EnvRef) ([]Binding, runtime.RuntimeError) {
	switch p := param.(type) {
	case ast.PSingle:
		return []Binding{{Name: p.Name, Value: value}}, nil

	case ast.PTable:
		var out []Binding
		for _, entry := range p.Entries {
			extracted, err := Apply(value, runtime.Symbol{Value: entry.Key}, env)
			if err != nil {
				return nil, err
			}
			sub, err := Bind(entry.Sub, extracted, env)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil

	default:
		return nil, runtime.UnexpectedType{Expected: "pattern", Got: fmt.Sprintf("%T", param)}
	}
}
