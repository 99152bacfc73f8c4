package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-lang/lambda/ast"
	"github.com/lambda-lang/lambda/lexer"
	"github.com/lambda-lang/lambda/parser"
)

// parseExpr parses src to completion, failing the test if any input is
// left unconsumed — a stand-in for "ast" in the parse(unparse(ast))
// round-trip property (§8).
func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	toks, err := lexer.Tokenize(src, false)
	require.NoError(t, err)
	e, rest, err := parser.ParseExpression(toks, parser.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, rest)
	return e
}

func assertRoundTrips(t *testing.T, src string) {
	t.Helper()
	want := parseExpr(t, src)
	text := ast.Unparse(want)
	got := parseExpr(t, text)
	assert.Equal(t, want, got, "parse(unparse(parse(%q))) diverged, unparsed to %q", src, text)
}

func TestUnparseRoundTripsApplication(t *testing.T) {
	assertRoundTrips(t, "f x y")
}

func TestUnparseRoundTripsInfixChain(t *testing.T) {
	assertRoundTrips(t, "1 + 2 * 3")
}

func TestUnparseRoundTripsMultiParamLambda(t *testing.T) {
	assertRoundTrips(t, "a b c. a")
}

func TestUnparseRoundTripsLeftSection(t *testing.T) {
	assertRoundTrips(t, "(+ 1)")
}

func TestUnparseRoundTripsRightSection(t *testing.T) {
	assertRoundTrips(t, "(1 +)")
}

func TestUnparseRoundTripsBareOperator(t *testing.T) {
	assertRoundTrips(t, "(+)")
}

func TestUnparseRoundTripsTable(t *testing.T) {
	assertRoundTrips(t, "{x: 1, y: 2}")
}

func TestUnparseRoundTripsCond(t *testing.T) {
	assertRoundTrips(t, "if true then 1 else 2")
}

func TestUnparseRoundTripsSymbol(t *testing.T) {
	assertRoundTrips(t, ":foo")
}

func TestUnparseRoundTripsTablePatternShorthand(t *testing.T) {
	assertRoundTrips(t, "{x, y}. x")
}

func TestUnparseLeftSectionPrintsCanonicalForm(t *testing.T) {
	e := parseExpr(t, "(+ 1)")
	assert.Equal(t, "(+ 1)", ast.Unparse(e))
}

func TestUnparseMultiParamLambdaReassociates(t *testing.T) {
	// a. (b. (c. a)) is exactly what "a b c. a" desugars to (§4.4);
	// Unparse should re-associate it back into the sugared form.
	inner := ast.Lam{Lambda: ast.NewLambda(ast.PSingle{Name: "c"}, ast.Name{Value: "a"})}
	middle := ast.Lam{Lambda: ast.NewLambda(ast.PSingle{Name: "b"}, inner)}
	outer := ast.Lam{Lambda: ast.NewLambda(ast.PSingle{Name: "a"}, middle)}
	assert.Equal(t, "a b c. a", ast.Unparse(outer))
}
