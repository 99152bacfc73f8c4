package prelude

import (
	"github.com/lambda-lang/lambda/lexer"
	"github.com/lambda-lang/lambda/runtime"
)

// buildSymModule assembles the Sym module (§4.7): conversions between
// symbols and strings, the two table-key-shaped values in the
// language.
func buildSymModule() *runtime.Table {
	return newModule(
		entry{"name", symName()},
		entry{"of", symOf()},
	)
}

func symName() runtime.Native {
	return unary("Sym:name", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		sym, err := requireSymbol(arg)
		if err != nil {
			return nil, err
		}
		return runtime.Str{Value: sym.Value}, nil
	})
}

// symOf builds a Symbol from a string, validating that the string is
// exactly what a `:name`/`:op` literal's lexer production accepts on
// its own — a single Name or Op token and nothing else — so `Sym:of`
// can never manufacture a Symbol the lexer itself could never produce
// (e.g. `Sym:of "1 + 2"` or `Sym:of ""`).
func symOf() runtime.Native {
	return unary("Sym:of", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		s, err := requireStr(arg)
		if err != nil {
			return nil, err
		}
		if !isBareNameOrOp(s.Value) {
			return nil, runtime.NotInDomain{Value: arg, Explanation: "Sym:of requires a string that lexes as a single name or operator"}
		}
		return runtime.Symbol{Value: s.Value}, nil
	})
}

// isBareNameOrOp reports whether s, lexed on its own, produces exactly
// one Name or Op token — i.e. s is a single bare identifier or
// operator with nothing else trailing it (Tokenize never returns the
// trailing EOF marker, so one token is the whole of a bare name/op).
func isBareNameOrOp(s string) bool {
	toks, err := lexer.Tokenize(s, false)
	if err != nil || len(toks) != 1 {
		return false
	}
	switch toks[0].Kind {
	case lexer.Name, lexer.Op:
		return true
	default:
		return false
	}
}
