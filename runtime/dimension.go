package runtime

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// BaseUnit is one of the seven SI base dimensions (§3).
type BaseUnit int

const (
	T  BaseUnit = iota // time
	L                   // length
	M                   // mass
	I                   // electric current
	Th                  // thermodynamic temperature
	N                   // amount of substance
	J                   // luminous intensity
)

var baseUnitNames = map[BaseUnit]string{T: "T", L: "L", M: "M", I: "I", Th: "Th", N: "N", J: "J"}

func (u BaseUnit) String() string { return baseUnitNames[u] }

// Dimension is the exact-rational exponent vector over the seven base
// units; an absent key means exponent zero. Dimension is always kept
// reduced (invariant c, §3): Reduce strips zero entries so two
// dimensions with the same effective exponents compare Equal regardless
// of how they were built.
type Dimension map[BaseUnit]*big.Rat

// Zero is the dimensionless vector.
func Zero() Dimension { return Dimension{} }

// Single builds a dimension with exponent 1 for a single base unit —
// the literal dimension constructors (`meters`, `kilograms`, ...) build
// their result this way.
func Single(u BaseUnit) Dimension {
	return Dimension{u: big.NewRat(1, 1)}
}

// IsZero reports whether every exponent reduces to 0 (dimensionless).
func (d Dimension) IsZero() bool {
	return len(d.Reduce()) == 0
}

// Reduce returns a copy with every zero-valued entry dropped.
func (d Dimension) Reduce() Dimension {
	out := make(Dimension, len(d))
	for u, r := range d {
		if r != nil && r.Sign() != 0 {
			out[u] = new(big.Rat).Set(r)
		}
	}
	return out
}

// Add combines two dimensions by summing exponents per base unit —
// used for `*`, which multiplies Units and so adds their dimensions.
func Add(a, b Dimension) Dimension {
	out := make(Dimension)
	for u, r := range a {
		out[u] = new(big.Rat).Set(r)
	}
	for u, r := range b {
		if cur, ok := out[u]; ok {
			out[u] = new(big.Rat).Add(cur, r)
		} else {
			out[u] = new(big.Rat).Set(r)
		}
	}
	return out.Reduce()
}

// Sub combines two dimensions by subtracting exponents per base unit —
// used for `/`, which divides Units and so subtracts their dimensions.
func Sub(a, b Dimension) Dimension {
	neg := make(Dimension, len(b))
	for u, r := range b {
		neg[u] = new(big.Rat).Neg(r)
	}
	return Add(a, neg)
}

// Scale multiplies every exponent by factor — used by `^` (integer
// powers) and `^/` (n-th roots, factor = 1/n).
func Scale(d Dimension, factor *big.Rat) Dimension {
	out := make(Dimension, len(d))
	for u, r := range d {
		out[u] = new(big.Rat).Mul(r, factor)
	}
	return out.Reduce()
}

// Equal compares two dimensions componentwise after reducing both.
func Equal(a, b Dimension) bool {
	ar, br := a.Reduce(), b.Reduce()
	if len(ar) != len(br) {
		return false
	}
	for u, r := range ar {
		other, ok := br[u]
		if !ok || r.Cmp(other) != 0 {
			return false
		}
	}
	return true
}

// String renders a dimension as "{U:exp, ...}" in a stable base-unit
// order, matching the `DimensionMismatch{left:{L:1}, right:{T:1}}`
// rendering in error messages (§8 scenario 6).
func (d Dimension) String() string {
	r := d.Reduce()
	if len(r) == 0 {
		return ""
	}
	units := make([]BaseUnit, 0, len(r))
	for u := range r {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i] < units[j] })
	var b strings.Builder
	b.WriteByte('{')
	for i, u := range units {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%s", u, r[u].RatString())
	}
	b.WriteByte('}')
	return b.String()
}
