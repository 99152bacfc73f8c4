package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lambda-lang/lambda/combinator"
	"github.com/lambda-lang/lambda/lexer"
)

type tparser[A any] = combinator.Parser[lexer.Token, A]

// kind matches a single token of the given Kind, failing recoverably so
// Or can try the next alternative.
func kind(k lexer.Kind) tparser[lexer.Token] {
	return func(in []lexer.Token) (lexer.Token, []lexer.Token, *combinator.ParseError) {
		if len(in) == 0 || in[0].Kind != k {
			return lexer.Token{}, in, combinator.Recoverable(fmt.Sprintf("expected %s", k))
		}
		return in[0], in[1:], nil
	}
}

// text matches a token of the given kind and extracts its text.
func text(k lexer.Kind) tparser[string] {
	return combinator.Map(kind(k), func(t lexer.Token) string { return t.Text })
}

// nameOrOp matches a Name or Op token and returns its text, the shared
// "key" production used by table entries, param entries, and symbols.
func nameOrOp() tparser[string] {
	return combinator.Or(text(lexer.Name), text(lexer.Op))
}

func parseDec(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// unescapeString strips the surrounding quote characters (lexer.Token.Text
// keeps them, see lexer.Lexer.scanString) and processes backslash escapes
// in the remaining body.
func unescapeString(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '\'':
				b.WriteByte('\'')
			case '"':
				b.WriteByte('"')
			default:
				b.WriteByte(body[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
