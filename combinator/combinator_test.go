package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// digit is a minimal token-less parser used to exercise the combinator
// engine in isolation from the lexer/parser packages.
func digit() Parser[byte, byte] {
	return func(in []byte) (byte, []byte, *ParseError) {
		if len(in) == 0 || in[0] < '0' || in[0] > '9' {
			return 0, in, Recoverable("expected digit")
		}
		return in[0], in[1:], nil
	}
}

func letter() Parser[byte, byte] {
	return func(in []byte) (byte, []byte, *ParseError) {
		if len(in) == 0 || in[0] < 'a' || in[0] > 'z' {
			return 0, in, Recoverable("expected letter")
		}
		return in[0], in[1:], nil
	}
}

func TestMap(t *testing.T) {
	p := Map(digit(), func(b byte) int { return int(b - '0') })
	v, rest, err := p([]byte("5x"))
	require.Nil(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, []byte("x"), rest)
}

func TestOrTriesSecondOnRecoverableFailure(t *testing.T) {
	p := Or[byte, byte](digit(), letter())
	v, rest, err := p([]byte("az"))
	require.Nil(t, err)
	assert.Equal(t, byte('a'), v)
	assert.Equal(t, []byte("z"), rest)
}

func TestOrPropagatesUnrecoverableFailure(t *testing.T) {
	committed := OrBail(digit(), "needed a digit here")
	p := Or[byte, byte](committed, letter())
	_, rest, err := p([]byte("az"))
	require.NotNil(t, err)
	assert.False(t, err.Recoverable)
	assert.Equal(t, "needed a digit here", err.Msg)
	assert.Equal(t, []byte("az"), rest)
}

func TestMany(t *testing.T) {
	p := Many(digit())
	v, rest, err := p([]byte("123x"))
	require.Nil(t, err)
	assert.Equal(t, []byte{'1', '2', '3'}, v)
	assert.Equal(t, []byte("x"), rest)
}

func TestManyAtLeastFailsUnrecoverably(t *testing.T) {
	p := ManyAtLeast(digit(), 1, "need at least one digit")
	_, _, err := p([]byte("abc"))
	require.NotNil(t, err)
	assert.False(t, err.Recoverable)
}

func TestSurroundedBy(t *testing.T) {
	open := func(in []byte) (byte, []byte, *ParseError) {
		if len(in) == 0 || in[0] != '(' {
			return 0, in, Recoverable("expected (")
		}
		return in[0], in[1:], nil
	}
	closeP := func(in []byte) (byte, []byte, *ParseError) {
		if len(in) == 0 || in[0] != ')' {
			return 0, in, Recoverable("expected )")
		}
		return in[0], in[1:], nil
	}
	p := SurroundedBy(open, digit(), closeP)
	v, rest, err := p([]byte("(7)x"))
	require.Nil(t, err)
	assert.Equal(t, byte('7'), v)
	assert.Equal(t, []byte("x"), rest)
}

func TestLazyAllowsRecursiveDefinition(t *testing.T) {
	var digits Parser[byte, []byte]
	digits = Lazy(func() Parser[byte, []byte] {
		return Many(digit())
	})
	v, _, err := digits([]byte("42"))
	require.Nil(t, err)
	assert.Equal(t, []byte{'4', '2'}, v)
}

func TestMaybeNeverFails(t *testing.T) {
	p := Maybe(digit())
	v, rest, err := p([]byte("x"))
	require.Nil(t, err)
	assert.False(t, v.Second)
	assert.Equal(t, []byte("x"), rest)
}

func TestLookAheadDoesNotConsume(t *testing.T) {
	p := LookAhead(digit())
	_, rest, err := p([]byte("5x"))
	require.Nil(t, err)
	assert.Equal(t, []byte("5x"), rest)
}

func TestNehtKeepsLeft(t *testing.T) {
	p := Neht(digit(), letter())
	v, rest, err := p([]byte("5az"))
	require.Nil(t, err)
	assert.Equal(t, byte('5'), v)
	assert.Equal(t, []byte("z"), rest)
}
