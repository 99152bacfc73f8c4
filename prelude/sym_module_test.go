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

func TestSymName(t *testing.T) {
	assert.Equal(t, runtime.Str{Value: "hello"}, run(t, `Sym :name :hello`))
}

func TestSymOfAcceptsBareNameOrOp(t *testing.T) {
	assert.Equal(t, runtime.Symbol{Value: "hello"}, run(t, `Sym :of "hello"`))
	assert.Equal(t, runtime.Symbol{Value: "+"}, run(t, `Sym :of "+"`))
}

func TestSymOfRejectsEmptyString(t *testing.T) {
	assertSymOfRejects(t, `Sym :of ""`)
}

func TestSymOfRejectsMultiTokenString(t *testing.T) {
	assertSymOfRejects(t, `Sym :of "1 + 2"`)
}

func assertSymOfRejects(t *testing.T, src string) {
	t.Helper()
	toks, err := lexer.Tokenize(src, false)
	require.NoError(t, err)
	exprs, err := parser.ParseMultiline(toks, parser.DefaultOptions())
	require.NoError(t, err)
	env := Root(&fakeIO{}, "")
	_, rerr := eval.Interpret(exprs[0], env)
	require.NotNil(t, rerr)
	_, ok := rerr.(runtime.NotInDomain)
	assert.True(t, ok, "expected NotInDomain, got %T", rerr)
}
