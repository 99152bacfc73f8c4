package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapturedNamesMinimal(t *testing.T) {
	// x. y  -> captures {y}
	lam := NewLambda(PSingle{Name: "x"}, Name{Value: "y"})
	assert.Equal(t, []string{"y"}, lam.Captured)
}

func TestCapturedNamesEmptyWhenFullyBound(t *testing.T) {
	// f. x. f x -> captures {}
	inner := NewLambda(PSingle{Name: "x"}, App{Fun: Name{Value: "f"}, Arg: Name{Value: "x"}})
	outer := NewLambda(PSingle{Name: "f"}, Lam{Lambda: inner})
	assert.Empty(t, outer.Captured)
}

func TestCapturedNamesDedupPreservesOrder(t *testing.T) {
	body := App{Fun: Name{Value: "a"}, Arg: App{Fun: Name{Value: "b"}, Arg: Name{Value: "a"}}}
	lam := NewLambda(PSingle{Name: "z"}, body)
	assert.Equal(t, []string{"a", "b"}, lam.Captured)
}

func TestBoundOfTablePattern(t *testing.T) {
	p := PTable{Entries: []PatternEntry{
		{Key: "x", Sub: PSingle{Name: "x"}},
		{Key: "y", Sub: PTable{Entries: []PatternEntry{{Key: "z", Sub: PSingle{Name: "z"}}}}},
	}}
	assert.Equal(t, []string{"x", "z"}, Bound(p))
}
