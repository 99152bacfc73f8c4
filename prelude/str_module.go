package prelude

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lambda-lang/lambda/runtime"
)

// buildStrModule assembles the Str module (§4.7): `upper`, `lower`,
// `split`, `join`, `trim`, `len`, `slice`, `contains`, `replace`,
// grounded on akashmaji946-go-mix/std/strings.go's stringMethods
// table, generalized from that package's variadic-args Callback shape
// to the curried unary/binary/ternary natives every builtin here uses
// (§4.6's single-argument apply discipline).
func buildStrModule() *runtime.Table {
	return newModule(
		entry{"len", strLen()},
		entry{"upper", strUnary("Str:upper", strings.ToUpper)},
		entry{"lower", strUnary("Str:lower", strings.ToLower)},
		entry{"trim", strUnary("Str:trim", strings.TrimSpace)},
		entry{"contains", strContains()},
		entry{"split", strSplit()},
		entry{"join", strJoin()},
		entry{"slice", strSlice()},
		entry{"replace", strReplace()},
	)
}

func strUnary(name string, fn func(string) string) runtime.Native {
	return unary(name, func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		s, err := requireStr(arg)
		if err != nil {
			return nil, err
		}
		return runtime.Str{Value: fn(s.Value)}, nil
	})
}

func strLen() runtime.Native {
	return unary("Str:len", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		s, err := requireStr(arg)
		if err != nil {
			return nil, err
		}
		return runtime.Unit{Magnitude: decimal.NewFromInt(int64(len([]rune(s.Value)))), Dim: runtime.Zero()}, nil
	})
}

func strContains() runtime.Native {
	return binary("Str:contains", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		hay, err := requireStr(l)
		if err != nil {
			return nil, err
		}
		needle, err := requireStr(r)
		if err != nil {
			return nil, err
		}
		return runtime.Bool{Value: strings.Contains(hay.Value, needle.Value)}, nil
	})
}

// strSplit splits on a separator, returning a Table keyed by decimal
// index ("0", "1", ...) since the language has no array type — a
// table with numeric string keys is the idiomatic stand-in (§3's
// Table is "the primary record/namespace construct", GLOSSARY).
func strSplit() runtime.Native {
	return binary("Str:split", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		s, err := requireStr(l)
		if err != nil {
			return nil, err
		}
		sep, err := requireStr(r)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(s.Value, sep.Value)
		tbl := runtime.NewTable()
		for i, part := range parts {
			tbl.Set(decimal.NewFromInt(int64(i)).String(), runtime.Str{Value: part})
		}
		return tbl, nil
	})
}

// strJoin is split's inverse: a decimal-indexed Table of strings (the
// shape strSplit itself produces) plus a separator. Keys are visited
// in the table's own insertion order, not sorted numerically, so
// joining a hand-built table depends on the order its entries were
// Set in — exactly split's own output order, and any table built the
// same way.
func strJoin() runtime.Native {
	return binary("Str:join", func(l, r runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		tbl, ok := l.(*runtime.Table)
		if !ok {
			return nil, runtime.UnexpectedType{Expected: "table", Got: l.Type()}
		}
		sep, err := requireStr(r)
		if err != nil {
			return nil, err
		}
		var parts []string
		for _, key := range tbl.Keys() {
			v, _ := tbl.Get(key)
			s, err := requireStr(v)
			if err != nil {
				return nil, err
			}
			parts = append(parts, s.Value)
		}
		return runtime.Str{Value: strings.Join(parts, sep.Value)}, nil
	})
}

// strSlice extracts the half-open rune range [start, end) of a
// string, the JS/Python `slice` convention rather than
// akashmaji946-go-mix/std/strings.go's substring(str, start, length)
// — chosen because `slice` names the former in every language that
// uses that name (§9 Open Question, recorded in DESIGN.md).
func strSlice() runtime.Native {
	return ternary("Str:slice", func(a, b, c runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		s, err := requireStr(a)
		if err != nil {
			return nil, err
		}
		start, err := requireIndex(b)
		if err != nil {
			return nil, err
		}
		end, err := requireIndex(c)
		if err != nil {
			return nil, err
		}
		runes := []rune(s.Value)
		if start < 0 || end < start || end > len(runes) {
			return nil, runtime.NotInDomain{Value: c, Explanation: "slice bounds out of range"}
		}
		return runtime.Str{Value: string(runes[start:end])}, nil
	})
}

func strReplace() runtime.Native {
	return ternary("Str:replace", func(a, b, c runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		s, err := requireStr(a)
		if err != nil {
			return nil, err
		}
		old, err := requireStr(b)
		if err != nil {
			return nil, err
		}
		new_, err := requireStr(c)
		if err != nil {
			return nil, err
		}
		return runtime.Str{Value: strings.ReplaceAll(s.Value, old.Value, new_.Value)}, nil
	})
}
