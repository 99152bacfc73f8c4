package eval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lambda-lang/lambda/eval"
	"github.com/lambda-lang/lambda/lexer"
	"github.com/lambda-lang/lambda/parser"
	"github.com/lambda-lang/lambda/prelude"
	"github.com/lambda-lang/lambda/runtime"
)

type fakeIO struct{}

func (fakeIO) ReadLine() (string, error) { return "", nil }
func (fakeIO) WriteLine(string)          {}
func (fakeIO) Exit()                     {}
func (fakeIO) ResolveModule(_, _ string) (runtime.Value, error, bool) {
	return nil, nil, false
}

func evalSrc(t *testing.T, src string) runtime.Value {
	t.Helper()
	toks, err := lexer.Tokenize(src, false)
	require.NoError(t, err)
	exprs, err := parser.ParseMultiline(toks, parser.DefaultOptions())
	require.NoError(t, err)
	v, rerr := eval.Interpret(exprs[0], prelude.Root(fakeIO{}, ""))
	require.Nil(t, rerr)
	return v
}

// unitComparers' decimal comparer treats two decimal.Decimals as equal by value,
// regardless of internal scale — decimal.Div's result (division by
// default carries 16 fractional digits) and a bare integer literal can
// both represent "3" with different exponents, so reflect.DeepEqual
// (what testify's assert.Equal falls back to) sees them as distinct
// structs even though Decimal.Equal and this language's own `~=`
// operator both treat them as the same number.
var unitComparers = []cmp.Option{
	cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) }),
	cmp.Comparer(func(x, y runtime.Dimension) bool { return runtime.Equal(x, y) }),
}

func TestDivisionResultComparesEqualDespiteDifferingScale(t *testing.T) {
	got := evalSrc(t, "6 / 2")
	want := runtime.Unit{Magnitude: decimal.RequireFromString("3"), Dim: runtime.Zero()}

	if diff := cmp.Diff(want, got, unitComparers...); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestArithmeticPipelineStructurallyEqualAcrossRepresentations(t *testing.T) {
	got := evalSrc(t, "(10 / 4) * 2")
	want := runtime.Unit{Magnitude: decimal.RequireFromString("5"), Dim: runtime.Zero()}

	if diff := cmp.Diff(want, got, unitComparers...); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}
