package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-lang/lambda/runtime"
)

type fakeIO struct{}

func (fakeIO) ReadLine() (string, error) { return "", nil }
func (fakeIO) WriteLine(string)          {}
func (fakeIO) Exit()                     {}
func (fakeIO) ResolveModule(_, _ string) (runtime.Value, error, bool) {
	return nil, nil, false
}

func TestRunLineEvaluatesSingleExpression(t *testing.T) {
	ip := New(fakeIO{}, nil, nil, "")
	v, err := ip.RunLine("2 + 2")
	require.Nil(t, err)
	u, ok := v.(runtime.Unit)
	require.True(t, ok)
	assert.Equal(t, "4", u.Magnitude.String())
}

func TestRunLineRejectsTrailingInput(t *testing.T) {
	ip := New(fakeIO{}, nil, nil, "")
	_, err := ip.RunLine("2 + 2; 3")
	require.NotNil(t, err)
	_, ok := err.(ParseError)
	assert.True(t, ok, "expected ParseError, got %T", err)
}

func TestRunMultilineSharesStateAcrossStatements(t *testing.T) {
	ip := New(fakeIO{}, nil, nil, "")
	v, err := ip.RunMultilineReturnLast(":x .= 10; x + 1")
	require.Nil(t, err)
	u, ok := v.(runtime.Unit)
	require.True(t, ok)
	assert.Equal(t, "11", u.Magnitude.String())
}

func TestRunLineSurfacesRuntimeError(t *testing.T) {
	ip := New(fakeIO{}, nil, nil, "")
	_, err := ip.RunLine("undefined_name")
	require.NotNil(t, err)
	rerr, ok := err.(RuntimeErr)
	require.True(t, ok, "expected RuntimeErr, got %T", err)
	_, ok = rerr.Err.(runtime.UndefinedName)
	assert.True(t, ok)
}

func TestRunLineSurfacesLexError(t *testing.T) {
	ip := New(fakeIO{}, nil, nil, "")
	_, err := ip.RunLine(`"unterminated`)
	require.NotNil(t, err)
	_, ok := err.(LexError)
	assert.True(t, ok, "expected LexError, got %T", err)
}
