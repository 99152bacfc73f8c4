package prelude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-lang/lambda/eval"
	"github.com/lambda-lang/lambda/lexer"
	"github.com/lambda-lang/lambda/parser"
	"github.com/lambda-lang/lambda/runtime"
)

func TestReflTypeOf(t *testing.T) {
	assert.Equal(t, runtime.Str{Value: "string"}, run(t, `Refl :type_of "hi"`))
	assert.Equal(t, runtime.Str{Value: "unit"}, run(t, `Refl :type_of 1`))
}

func TestReflCapturesReportsNamesAsASet(t *testing.T) {
	v := run(t, `:x .= 1; Refl :captures (y. x + y)`)
	tbl, ok := v.(*runtime.Table)
	require.True(t, ok)
	xVal, found := tbl.Get("x")
	require.True(t, found)
	assert.Equal(t, runtime.Bool{Value: true}, xVal)
}

func TestReflCapturesRejectsNonFunction(t *testing.T) {
	toks, err := lexer.Tokenize(`Refl :captures 1`, false)
	require.NoError(t, err)
	exprs, err := parser.ParseMultiline(toks, parser.DefaultOptions())
	require.NoError(t, err)
	env := Root(&fakeIO{}, "")
	_, rerr := eval.Interpret(exprs[0], env)
	require.NotNil(t, rerr)
	_, ok := rerr.(runtime.UnexpectedType)
	assert.True(t, ok, "expected UnexpectedType, got %T", rerr)
}

func TestReflArityHintIsAlwaysOne(t *testing.T) {
	assert.Equal(t, unit("1"), run(t, `Refl :arity_hint (y. y)`))
}
