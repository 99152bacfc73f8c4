package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeBasics(t *testing.T) {
	toks, err := Tokenize(`x y. x + 2`, false)
	require.NoError(t, err)
	assert.Equal(t, []Kind{Name, Name, Dot, Name, Op, Dec}, kinds(toks))
}

func TestKeywordsNotPrefixOfIdentifier(t *testing.T) {
	toks, err := Tokenize(`iffy then1 elsewhere`, false)
	require.NoError(t, err)
	for _, tok := range toks {
		assert.Equal(t, Name, tok.Kind)
	}
}

func TestPredicateAndBangIdentifiers(t *testing.T) {
	toks, err := Tokenize(`upper? not!`, false)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "upper?", toks[0].Text)
	assert.Equal(t, "not!", toks[1].Text)
}

func TestLeadingMinusIsPartOfNumber(t *testing.T) {
	toks, err := Tokenize(`a -1`, false)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Name, toks[0].Kind)
	assert.Equal(t, Dec, toks[1].Kind)
	assert.Equal(t, "-1", toks[1].Text)
}

func TestMinusWithSpaceIsOperator(t *testing.T) {
	toks, err := Tokenize(`a - 1`, false)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, Op, toks[1].Kind)
	assert.Equal(t, "-", toks[1].Text)
}

func TestDotVsOperatorRun(t *testing.T) {
	toks, err := Tokenize(`a.b a.. a.+b`, false)
	require.NoError(t, err)
	// a . b
	assert.Equal(t, []Kind{Name, Dot, Name}, kinds(toks[0:3]))
}

func TestDecimalWithFractionAndExponent(t *testing.T) {
	toks, err := Tokenize(`3.14 2e10 1.5e-3`, false)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	for _, tok := range toks {
		assert.Equal(t, Dec, tok.Kind)
	}
	assert.Equal(t, "1.5e-3", toks[2].Text)
}

func TestStringLiteralsWithEscapes(t *testing.T) {
	toks, err := Tokenize(`'a\'b' "c\"d"`, false)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, String1, toks[0].Kind)
	assert.Equal(t, String2, toks[1].Kind)
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	_, err := Tokenize(`"unterminated`, false)
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestCommentsAreWhitespace(t *testing.T) {
	toks, err := Tokenize("x # a comment\ny", false)
	require.NoError(t, err)
	assert.Equal(t, []Kind{Name, Name}, kinds(toks))
}

func TestWhitespaceRetainedOnRequest(t *testing.T) {
	toks, err := Tokenize("x  y", true)
	require.NoError(t, err)
	assert.Equal(t, []Kind{Name, Ws, Name}, kinds(toks))
}

func TestLexRoundTrip(t *testing.T) {
	src := "x + 2 * (y - 1); # trailing comment\n"
	toks, err := Tokenize(src, true)
	require.NoError(t, err)
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Text
	}
	assert.Equal(t, src, rebuilt)
}

func TestInvalidCharacterProducesLexError(t *testing.T) {
	_, err := Tokenize(`x @ y`, false)
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "@", lexErr.Snippet)
}

func TestBacktickAndSymbolPunctuation(t *testing.T) {
	toks, err := Tokenize("`f` :sym", false)
	require.NoError(t, err)
	assert.Equal(t, []Kind{Backtick, Name, Backtick, Colon, Name}, kinds(toks))
}
