package prelude

import "github.com/lambda-lang/lambda/runtime"

// dimensionConstructor builds a literal dimension constructor like
// `meters`: it takes a dimensionless Unit and re-tags it with the
// given base unit's dimension (§4.7).
func dimensionConstructor(name string, base runtime.BaseUnit) runtime.Native {
	return unary(name, func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		u, err := requireUnit(arg)
		if err != nil {
			return nil, err
		}
		if !u.Dim.IsZero() {
			return nil, runtime.NotInDomain{Value: arg, Explanation: name + " expects a dimensionless magnitude"}
		}
		return runtime.Unit{Magnitude: u.Magnitude, Dim: runtime.Single(base)}, nil
	})
}

func secondsOp() runtime.Native   { return dimensionConstructor("seconds", runtime.T) }
func metersOp() runtime.Native    { return dimensionConstructor("meters", runtime.L) }
func kilogramsOp() runtime.Native { return dimensionConstructor("kilograms", runtime.M) }
func amperesOp() runtime.Native   { return dimensionConstructor("amperes", runtime.I) }
func kelvinsOp() runtime.Native   { return dimensionConstructor("kelvins", runtime.Th) }
func molesOp() runtime.Native     { return dimensionConstructor("moles", runtime.N) }
func candelasOp() runtime.Native  { return dimensionConstructor("candelas", runtime.J) }
