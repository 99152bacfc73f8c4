package runtime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTablePreservesInsertionOrderAndOverwritesInPlace(t *testing.T) {
	tbl := NewTable()
	tbl.Set("a", Str{Value: "1"})
	tbl.Set("b", Str{Value: "2"})
	tbl.Set("a", Str{Value: "3"})

	assert.Equal(t, []string{"a", "b"}, tbl.Keys())
	v, ok := tbl.Get("a")
	assert.True(t, ok)
	assert.Equal(t, Str{Value: "3"}, v)
}

func TestTableMissingKey(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.Get("missing")
	assert.False(t, ok)
}

func TestCallableDistinguishesFunctionsFromData(t *testing.T) {
	assert.True(t, Callable(Fun{}))
	assert.True(t, Callable(Native{}))
	assert.False(t, Callable(Str{Value: "x"}))
	assert.False(t, Callable(Bool{Value: true}))
}

func TestLazyNameResolvesThunkOnlyWhenAsked(t *testing.T) {
	called := false
	n := Thunk(func() string {
		called = true
		return "plus"
	})
	assert.False(t, called)
	assert.Equal(t, "plus", n.Resolve())
	assert.True(t, called)
}

func TestUnitStringOmitsDimensionWhenDimensionless(t *testing.T) {
	u := Unit{Magnitude: decimal.RequireFromString("4"), Dim: Zero()}
	assert.Equal(t, "4", u.String())
}

func TestUnitStringIncludesDimension(t *testing.T) {
	u := Unit{Magnitude: decimal.RequireFromString("3"), Dim: Single(L)}
	assert.Equal(t, "3 {L:1}", u.String())
}
