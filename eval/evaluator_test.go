package eval

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-lang/lambda/ast"
	"github.com/lambda-lang/lambda/runtime"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func unit(s string) runtime.Unit {
	return runtime.Unit{Magnitude: dec(s), Dim: runtime.Zero()}
}

func TestInterpretDecWrapsInDimensionlessUnit(t *testing.T) {
	v, err := Interpret(ast.Dec{Value: dec("4")}, runtime.NewEnvironment(nil))
	require.Nil(t, err)
	assert.Equal(t, unit("4"), v)
}

func TestInterpretNameLooksUpEnvironment(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	env.Define("x", runtime.Str{Value: "hi"})
	v, err := Interpret(ast.Name{Value: "x"}, env)
	require.Nil(t, err)
	assert.Equal(t, runtime.Str{Value: "hi"}, v)
}

func TestInterpretUndefinedNameErrors(t *testing.T) {
	_, err := Interpret(ast.Name{Value: "nope"}, runtime.NewEnvironment(nil))
	require.Error(t, err)
	assert.Equal(t, runtime.UndefinedName{Name: "nope"}, err)
}

func TestInterpretTableEvaluatesEntriesInOrder(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	v, err := Interpret(ast.Table{Entries: []ast.TableEntry{
		{Key: "x", Value: ast.Dec{Value: dec("10")}},
		{Key: "y", Value: ast.Dec{Value: dec("20")}},
	}}, env)
	require.Nil(t, err)
	tbl := v.(*runtime.Table)
	assert.Equal(t, []string{"x", "y"}, tbl.Keys())
}

// TestTableApplicationReturnsValueOrMissingKey pins §8's table
// application property: `{x: 10, y: 20} :y` → Unit(20),
// `{x: 10} :z` → MissingKey("z").
func TestTableApplicationReturnsValueOrMissingKey(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	expr := ast.App{
		Fun: ast.Table{Entries: []ast.TableEntry{{Key: "x", Value: ast.Dec{Value: dec("10")}}, {Key: "y", Value: ast.Dec{Value: dec("20")}}}},
		Arg: ast.Symbol{Value: "y"},
	}
	v, err := Interpret(expr, env)
	require.Nil(t, err)
	assert.Equal(t, unit("20"), v)

	missExpr := ast.App{
		Fun: ast.Table{Entries: []ast.TableEntry{{Key: "x", Value: ast.Dec{Value: dec("10")}}}},
		Arg: ast.Symbol{Value: "z"},
	}
	_, err = Interpret(missExpr, env)
	assert.Equal(t, runtime.MissingKey{Key: "z"}, err)
}

func TestTableApplicationRejectsNonSymbolArgument(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	expr := ast.App{
		Fun: ast.Table{Entries: []ast.TableEntry{{Key: "x", Value: ast.Dec{Value: dec("1")}}}},
		Arg: ast.Dec{Value: dec("1")},
	}
	_, err := Interpret(expr, env)
	ute, ok := err.(runtime.UnexpectedType)
	require.True(t, ok)
	assert.Equal(t, "symbol", ute.Expected)
}

// TestApplicationOfCurriedLambda pins §8 scenario 2: `(x y. x) 7 9` →
// Unit(7).
func TestApplicationOfCurriedLambda(t *testing.T) {
	lam := ast.NewLambda(ast.PSingle{Name: "x"},
		ast.Lam{Lambda: ast.NewLambda(ast.PSingle{Name: "y"}, ast.Name{Value: "x"})})
	expr := ast.App{
		Fun: ast.App{Fun: ast.Lam{Lambda: lam}, Arg: ast.Dec{Value: dec("7")}},
		Arg: ast.Dec{Value: dec("9")},
	}
	v, err := Interpret(expr, runtime.NewEnvironment(nil))
	require.Nil(t, err)
	assert.Equal(t, unit("7"), v)
}

func TestCondSelectsBranchByBoolTest(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	env.Define("flag", runtime.Bool{Value: false})
	expr := ast.Cond{Test: ast.Name{Value: "flag"}, Then: ast.Dec{Value: dec("1")}, Else: ast.Dec{Value: dec("2")}}
	v, err := Interpret(expr, env)
	require.Nil(t, err)
	assert.Equal(t, unit("2"), v)
}

func TestCondRejectsNonBoolTest(t *testing.T) {
	expr := ast.Cond{Test: ast.Dec{Value: dec("1")}, Then: ast.Dec{Value: dec("1")}, Else: ast.Dec{Value: dec("2")}}
	_, err := Interpret(expr, runtime.NewEnvironment(nil))
	ute, ok := err.(runtime.UnexpectedType)
	require.True(t, ok)
	assert.Equal(t, "boolean", ute.Expected)
}

// TestApplyOnNonCalleeIsUnexpectedType covers the apply table's `other`
// row.
func TestApplyOnNonCalleeIsUnexpectedType(t *testing.T) {
	_, err := Apply(runtime.Str{Value: "not callable"}, runtime.Bool{Value: true}, runtime.NewEnvironment(nil))
	ute, ok := err.(runtime.UnexpectedType)
	require.True(t, ok)
	assert.Equal(t, "table|function|native", ute.Expected)
}

// TestDuckTypedTableDestructuring pins §4.6's duck-typing contract: a
// PTable parameter extracts through Apply, so it works against a
// Native standing in for "any callee that answers Symbol arguments"
// just as well as a literal Table.
func TestDuckTypedTableDestructuring(t *testing.T) {
	native := runtime.Native{Name: runtime.Name("probe"), Fun: func(arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		sym := arg.(runtime.Symbol)
		if sym.Value == "a" {
			return unit("1"), nil
		}
		return unit("2"), nil
	}}
	pattern := ast.PTable{Entries: []ast.PatternEntry{
		{Key: "a", Sub: ast.PSingle{Name: "first"}},
		{Key: "b", Sub: ast.PSingle{Name: "second"}},
	}}
	bindings, err := Bind(pattern, native, runtime.NewEnvironment(nil))
	require.Nil(t, err)
	require.Len(t, bindings, 2)
	assert.Equal(t, "first", bindings[0].Name)
	assert.Equal(t, unit("1"), bindings[0].Value)
	assert.Equal(t, "second", bindings[1].Name)
	assert.Equal(t, unit("2"), bindings[1].Value)
}

// TestNativeCompositionSeesCallerEnvironment exercises the Native row
// of the apply table together with the env threading .= relies on: a
// native that mutates the environment it's given, applied twice in a
// row (as `:name .= value` desugars to), observes the same env both
// times.
func TestNativeCompositionSeesCallerEnvironment(t *testing.T) {
	defineOp := runtime.Native{Name: runtime.Name(".="), Fun: func(nameVal runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		name := nameVal.(runtime.Symbol).Value
		return runtime.Native{Name: runtime.Name("_.=_cont"), Fun: func(value runtime.Value, env2 runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
			env2.Define(name, value)
			return value, nil
		}}, nil
	}}
	env := runtime.NewEnvironment(nil)
	env.Define(".=", defineOp)

	expr := ast.App{
		Fun: ast.App{Fun: ast.Name{Value: ".="}, Arg: ast.Symbol{Value: "x"}},
		Arg: ast.Dec{Value: dec("42")},
	}
	_, err := Interpret(expr, env)
	require.Nil(t, err)

	v, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, unit("42"), v)
}
