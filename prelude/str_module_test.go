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

func TestStrLen(t *testing.T) {
	assert.Equal(t, unit("5"), run(t, `Str :len "hello"`))
}

func TestStrUpperLowerTrim(t *testing.T) {
	assert.Equal(t, runtime.Str{Value: "HELLO"}, run(t, `Str :upper "hello"`))
	assert.Equal(t, runtime.Str{Value: "hello"}, run(t, `Str :lower "HELLO"`))
	assert.Equal(t, runtime.Str{Value: "hi"}, run(t, `Str :trim "  hi  "`))
}

func TestStrSplitJoinRoundTrips(t *testing.T) {
	assert.Equal(t, runtime.Str{Value: "a-b-c"}, run(t, `Str :join (Str :split "a,b,c" ",") "-"`))
}

func TestStrSliceExtractsHalfOpenRange(t *testing.T) {
	assert.Equal(t, runtime.Str{Value: "ell"}, run(t, `Str :slice "hello" 1 4`))
}

func TestStrSliceRejectsOutOfRangeBounds(t *testing.T) {
	toks, err := lexer.Tokenize(`Str :slice "hi" 0 5`, false)
	require.NoError(t, err)
	exprs, err := parser.ParseMultiline(toks, parser.DefaultOptions())
	require.NoError(t, err)
	env := Root(&fakeIO{}, "")
	_, rerr := eval.Interpret(exprs[0], env)
	require.NotNil(t, rerr)
	_, ok := rerr.(runtime.NotInDomain)
	assert.True(t, ok, "expected NotInDomain, got %T", rerr)
}

func TestStrReplaceAllOccurrences(t *testing.T) {
	assert.Equal(t, runtime.Str{Value: "bonono"}, run(t, `Str :replace "banana" "a" "o"`))
}

func TestStrContains(t *testing.T) {
	assert.Equal(t, runtime.Bool{Value: true}, run(t, `Str :contains "hello" "ell"`))
}
