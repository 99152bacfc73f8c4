package prelude

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/lambda-lang/lambda/runtime"
)

func addOp() runtime.Native {
	return binary("+", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		lu, err := requireUnit(l)
		if err != nil {
			return nil, err
		}
		ru, err := requireUnit(r)
		if err != nil {
			return nil, err
		}
		if !runtime.Equal(lu.Dim, ru.Dim) {
			return nil, runtime.DimensionMismatch{Left: lu.Dim, Right: ru.Dim}
		}
		return runtime.Unit{Magnitude: lu.Magnitude.Add(ru.Magnitude), Dim: lu.Dim}, nil
	})
}

func subOp() runtime.Native {
	return binary("-", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		lu, err := requireUnit(l)
		if err != nil {
			return nil, err
		}
		ru, err := requireUnit(r)
		if err != nil {
			return nil, err
		}
		if !runtime.Equal(lu.Dim, ru.Dim) {
			return nil, runtime.DimensionMismatch{Left: lu.Dim, Right: ru.Dim}
		}
		return runtime.Unit{Magnitude: lu.Magnitude.Sub(ru.Magnitude), Dim: lu.Dim}, nil
	})
}

func mulOp() runtime.Native {
	return binary("*", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		lu, err := requireUnit(l)
		if err != nil {
			return nil, err
		}
		ru, err := requireUnit(r)
		if err != nil {
			return nil, err
		}
		return runtime.Unit{Magnitude: lu.Magnitude.Mul(ru.Magnitude), Dim: runtime.Add(lu.Dim, ru.Dim)}, nil
	})
}

func divOp() runtime.Native {
	return binary("/", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		lu, err := requireUnit(l)
		if err != nil {
			return nil, err
		}
		ru, err := requireUnit(r)
		if err != nil {
			return nil, err
		}
		if ru.Magnitude.IsZero() {
			return nil, runtime.NotInDomain{Value: r, Explanation: "division by zero"}
		}
		return runtime.Unit{Magnitude: lu.Magnitude.Div(ru.Magnitude), Dim: runtime.Sub(lu.Dim, ru.Dim)}, nil
	})
}

func modOp() runtime.Native {
	return binary("%", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		lu, err := requireUnit(l)
		if err != nil {
			return nil, err
		}
		ru, err := requireUnit(r)
		if err != nil {
			return nil, err
		}
		if !runtime.Equal(lu.Dim, ru.Dim) {
			return nil, runtime.DimensionMismatch{Left: lu.Dim, Right: ru.Dim}
		}
		if ru.Magnitude.IsZero() {
			return nil, runtime.NotInDomain{Value: r, Explanation: "modulo by zero"}
		}
		return runtime.Unit{Magnitude: lu.Magnitude.Mod(ru.Magnitude), Dim: lu.Dim}, nil
	})
}

// powInt computes base^n for an integer n via repeated squaring,
// supporting negative n through a final reciprocal.
func powInt(base decimal.Decimal, n int64) decimal.Decimal {
	if n == 0 {
		return decimal.NewFromInt(1)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := decimal.NewFromInt(1)
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		n >>= 1
	}
	if neg {
		result = decimal.NewFromInt(1).Div(result)
	}
	return result
}

// exponentInt validates that v is a dimensionless integer Unit and
// returns its value as an int64, the shared domain check `^` and `^/`
// both require.
func exponentInt(v runtime.Value) (int64, runtime.RuntimeError) {
	u, err := requireUnit(v)
	if err != nil {
		return 0, err
	}
	if !u.Dim.IsZero() || !u.Magnitude.IsInteger() {
		return 0, runtime.NotInDomain{Value: v, Explanation: "exponent must be a dimensionless integer"}
	}
	return u.Magnitude.IntPart(), nil
}

func powOp() runtime.Native {
	return binary("^", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		base, err := requireUnit(l)
		if err != nil {
			return nil, err
		}
		n, err := exponentInt(r)
		if err != nil {
			return nil, err
		}
		return runtime.Unit{
			Magnitude: powInt(base.Magnitude, n),
			Dim:       runtime.Scale(base.Dim, big.NewRat(n, 1)),
		}, nil
	})
}

// nthRootMagnitude computes the real n-th root of base, handling a
// negative base with an odd n by rooting the absolute value and
// restoring the sign (math.Pow of a negative base to a fractional
// exponent is NaN in Go). Callers must have already rejected an even
// root of a negative base as NotInDomain.
func nthRootMagnitude(base decimal.Decimal, n int64) decimal.Decimal {
	f, _ := base.Float64()
	neg := f < 0
	if neg {
		f = -f
	}
	root := math.Pow(f, 1/float64(n))
	if neg {
		root = -root
	}
	return decimal.NewFromFloat(root)
}

func rootOp() runtime.Native {
	return binary("^/", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		base, err := requireUnit(l)
		if err != nil {
			return nil, err
		}
		n, err := exponentInt(r)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, runtime.NotInDomain{Value: r, Explanation: "root index must not be zero"}
		}
		if base.Magnitude.IsNegative() && n%2 == 0 {
			return nil, runtime.NotInDomain{Value: l, Explanation: "even root of a negative magnitude"}
		}
		return runtime.Unit{
			Magnitude: nthRootMagnitude(base.Magnitude, n),
			Dim:       runtime.Scale(base.Dim, big.NewRat(1, n)),
		}, nil
	})
}

func comparisonOp(name string, cmp func(c int) bool) runtime.Native {
	return binary(name, func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		lu, err := requireUnit(l)
		if err != nil {
			return nil, err
		}
		ru, err := requireUnit(r)
		if err != nil {
			return nil, err
		}
		if !runtime.Equal(lu.Dim, ru.Dim) {
			return nil, runtime.DimensionMismatch{Left: lu.Dim, Right: ru.Dim}
		}
		return runtime.Bool{Value: cmp(lu.Magnitude.Cmp(ru.Magnitude))}, nil
	})
}

func ltOp() runtime.Native { return comparisonOp("<", func(c int) bool { return c < 0 }) }
func gtOp() runtime.Native { return comparisonOp(">", func(c int) bool { return c > 0 }) }
func leOp() runtime.Native { return comparisonOp("<=", func(c int) bool { return c <= 0 }) }
func geOp() runtime.Native { return comparisonOp(">=", func(c int) bool { return c >= 0 }) }
