// Package parser implements the combinator-based expression grammar of
// §4.4: a recursive-descent parser built from the primitives in package
// combinator, resolving infix operator chains through package
// shuntingyard.
package parser

import (
	"github.com/lambda-lang/lambda/ast"
	"github.com/lambda-lang/lambda/combinator"
	"github.com/lambda-lang/lambda/lexer"
	"github.com/lambda-lang/lambda/shuntingyard"
)

// synthetic is the binder operator sections desugar into; each section
// builds its own lambda scope so reuse of the same name across sections
// never collides.
const synthetic = "_"

// grammar bundles the mutually recursive productions so they can close
// over a single ParseOptions pointer, re-read on every ParseExpression
// call (§4.4).
type grammar struct {
	opts *ParseOptions

	expr        tparser[ast.Expr]
	lambda      tparser[ast.Expr]
	infix       tparser[ast.Expr]
	application tparser[ast.Expr]
	atomic      tparser[ast.Expr]
	param       tparser[ast.Pattern]
	tableLit    tparser[ast.Expr]
	cond        tparser[ast.Expr]
	symbol      tparser[ast.Expr]
	infixOp     tparser[ast.OpTerm]
	parenForms  tparser[ast.Expr]
}

func newGrammar(opts *ParseOptions) *grammar {
	g := &grammar{opts: opts}

	// Every field is wrapped in Lazy: the grammar is mutually recursive
	// (expr -> lambda/infix -> application -> atomic -> parenForms ->
	// expr, infixOp -> expr, ...), so the underlying parser tree for each
	// production can only be safely built once every other field has
	// been assigned, i.e. on first actual use, never at construction
	// time.
	g.expr = combinator.Lazy(func() tparser[ast.Expr] {
		return combinator.Or(g.lambda, g.infix)
	})
	g.lambda = combinator.Lazy(func() tparser[ast.Expr] { return lambdaParser(g) })
	g.infix = combinator.Lazy(func() tparser[ast.Expr] { return infixParser(g) })
	g.application = combinator.Lazy(func() tparser[ast.Expr] { return applicationParser(g) })
	g.atomic = combinator.Lazy(func() tparser[ast.Expr] {
		return combinator.Or(g.parenForms,
			combinator.Or(decParser(),
				combinator.Or(strParser(),
					combinator.Or(nameParser(),
						combinator.Or(g.cond,
							combinator.Or(g.symbol, g.tableLit))))))
	})
	g.param = combinator.Lazy(func() tparser[ast.Pattern] { return paramParser(g) })
	g.tableLit = combinator.Lazy(func() tparser[ast.Expr] { return tableParser(g) })
	g.cond = combinator.Lazy(func() tparser[ast.Expr] { return condParser(g) })
	g.symbol = combinator.Lazy(func() tparser[ast.Expr] { return symbolParser(g) })
	g.infixOp = combinator.Lazy(func() tparser[ast.OpTerm] { return infixOpParser(g) })
	g.parenForms = combinator.Lazy(func() tparser[ast.Expr] { return parenFormsParser(g) })

	return g
}

// ParseExpression parses a single top-level expression from tokens,
// returning the unconsumed remainder. opts is read, not copied, so a
// change made to its priority table between calls is visible to the
// very next call (§4.4, §9).
func ParseExpression(tokens []lexer.Token, opts *ParseOptions) (ast.Expr, []lexer.Token, error) {
	g := newGrammar(opts)
	e, rest, err := g.expr(tokens)
	if err != nil {
		return nil, tokens, err
	}
	rest = skipSemicolon(rest)
	return e, rest, nil
}

// ParseMultiline repeatedly runs the expression parser until the token
// stream (Ws tokens already dropped) is exhausted (§4.4).
func ParseMultiline(tokens []lexer.Token, opts *ParseOptions) ([]ast.Expr, error) {
	var exprs []ast.Expr
	rest := tokens
	for len(rest) > 0 {
		e, next, err := ParseExpression(rest, opts)
		if err != nil {
			return exprs, err
		}
		exprs = append(exprs, e)
		rest = next
	}
	return exprs, nil
}

func skipSemicolon(in []lexer.Token) []lexer.Token {
	if len(in) > 0 && in[0].Kind == lexer.Semicolon {
		return in[1:]
	}
	return in
}

// lambdaParser implements `lambda := param+ "." expr`, folding multiple
// parameters into nested single-argument lambdas (desugaring rule 1,
// §4.4). Written as a direct closure rather than combinator glue: if no
// `.` follows the parameter run, it fails recoverably and returns the
// original input untouched, letting expr fall back to infix.
func lambdaParser(g *grammar) tparser[ast.Expr] {
	return func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		params, rest, err := combinator.Many(g.param)(in)
		if err != nil {
			return nil, in, err
		}
		if len(params) == 0 {
			return nil, in, combinator.Recoverable("not a lambda: no parameter precedes `.`")
		}
		_, rest, err = kind(lexer.Dot)(rest)
		if err != nil {
			return nil, in, err
		}
		body, rest, err := combinator.OrBail(g.expr, "Expected expression after `.`")(rest)
		if err != nil {
			return nil, in, err
		}
		return foldLambda(params, body), rest, nil
	}
}

func foldLambda(params []ast.Pattern, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = ast.Lam{Lambda: ast.NewLambda(params[i], body)}
	}
	return body
}

// infixParser implements `infix := application ( infix_op application )*`
// and resolves the resulting OpList through shunting-yard immediately,
// using the grammar's current opts (§4.5).
func infixParser(g *grammar) tparser[ast.Expr] {
	chunk := combinator.Map(
		combinator.PairOf(g.infixOp, g.application),
		func(p combinator.Pair[ast.OpTerm, ast.Expr]) ast.OpChunk {
			return ast.OpChunk{Op: p.First, Rhs: p.Second}
		},
	)
	return combinator.Map(
		combinator.PairOf(g.application, combinator.Many(chunk)),
		func(p combinator.Pair[ast.Expr, []ast.OpChunk]) ast.Expr {
			list := ast.OpList{Initial: p.First, Chunks: p.Second}
			return shuntingyard.Resolve(list, g.opts)
		},
	)
}

// applicationParser implements `application := atomic+`, left-folding
// into curried App nodes.
func applicationParser(g *grammar) tparser[ast.Expr] {
	return combinator.Map(
		combinator.ManyAtLeast(g.atomic, 1, "expected an expression"),
		func(atoms []ast.Expr) ast.Expr {
			e := atoms[0]
			for _, a := range atoms[1:] {
				e = ast.App{Fun: e, Arg: a}
			}
			return e
		},
	)
}

func decParser() tparser[ast.Expr] {
	return func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		tok, rest, err := kind(lexer.Dec)(in)
		if err != nil {
			return nil, in, err
		}
		d, perr := parseDec(tok.Text)
		if perr != nil {
			return nil, in, combinator.Unrecoverable("invalid number literal: " + tok.Text)
		}
		return ast.Dec{Value: d}, rest, nil
	}
}

func strParser() tparser[ast.Expr] {
	str := combinator.Or(text(lexer.String1), text(lexer.String2))
	return combinator.Map(str, func(s string) ast.Expr { return ast.Str{Value: unescapeString(s)} })
}

func nameParser() tparser[ast.Expr] {
	return combinator.Map(text(lexer.Name), func(s string) ast.Expr { return ast.Name{Value: s} })
}

// condParser implements `cond := "if" expr "then" expr "else" expr`
// with or_bail at every mandatory element past the leading `if` (§4.4
// error discipline).
func condParser(g *grammar) tparser[ast.Expr] {
	return func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		_, rest, err := kind(lexer.If)(in)
		if err != nil {
			return nil, in, err
		}
		test, rest, err := combinator.OrBail(g.expr, "Expected expression after `if`")(rest)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = combinator.OrBail(kind(lexer.Then), "Expected `then`")(rest)
		if err != nil {
			return nil, in, err
		}
		thenE, rest, err := combinator.OrBail(g.expr, "Expected expression for `then` branch")(rest)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = combinator.OrBail(kind(lexer.Else), "Expected `else`")(rest)
		if err != nil {
			return nil, in, err
		}
		elseE, rest, err := combinator.OrBail(g.expr, "Expected expression after `else`")(rest)
		if err != nil {
			return nil, in, err
		}
		return ast.Cond{Test: test, Then: thenE, Else: elseE}, rest, nil
	}
}

// symbolParser implements `symbol := ":" ( name | op )`.
func symbolParser(g *grammar) tparser[ast.Expr] {
	return func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		_, rest, err := kind(lexer.Colon)(in)
		if err != nil {
			return nil, in, err
		}
		name, rest, err := combinator.OrBail(nameOrOp(), "Expected name or operator after `:`")(rest)
		if err != nil {
			return nil, in, err
		}
		return ast.Symbol{Value: name}, rest, nil
	}
}

// infixOpParser implements `infix_op := op | "`" expr "`"`.
//
// The backtick content is parsed as an application, not a full expr:
// a full expr would let infix chunk-extension see the closing backtick
// and misread it as the opening of a second backtick operator, since
// backtick is the one delimiter the grammar also uses as content. An
// application (one or more atomics) covers every realistic use — a
// bare name or a partially-applied function — without that ambiguity.
func infixOpParser(g *grammar) tparser[ast.OpTerm] {
	plain := combinator.Map(text(lexer.Op), func(s string) ast.OpTerm { return ast.InfixOp{Name: s} })
	backticked := combinator.Map(
		combinator.SurroundedBy(
			kind(lexer.Backtick),
			combinator.OrBail(g.application, "Expected expression inside backticks"),
			combinator.OrBail(kind(lexer.Backtick), "Unclosed backtick operator"),
		),
		func(e ast.Expr) ast.OpTerm { return ast.ExprOp{Expr: e} },
	)
	return combinator.Or(plain, backticked)
}

// tableParser implements `table := "{" ( entry ("," entry)* ","? )? "}"`.
func tableParser(g *grammar) tparser[ast.Expr] {
	entry := func(in []lexer.Token) (ast.TableEntry, []lexer.Token, *combinator.ParseError) {
		key, rest, err := nameOrOp()(in)
		if err != nil {
			return ast.TableEntry{}, in, err
		}
		_, rest, err = kind(lexer.Colon)(rest)
		if err != nil {
			return ast.TableEntry{}, in, err
		}
		val, rest, err := combinator.OrBail(g.expr, "Expected expression after `:` in table entry")(rest)
		if err != nil {
			return ast.TableEntry{}, in, err
		}
		return ast.TableEntry{Key: key, Value: val}, rest, nil
	}
	return func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		_, rest, err := kind(lexer.LBrace)(in)
		if err != nil {
			return nil, in, err
		}
		entries, rest, err := commaSeparated(entry)(rest)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = combinator.OrBail(kind(lexer.RBrace), "Unclosed `{` in table literal")(rest)
		if err != nil {
			return nil, in, err
		}
		return ast.Table{Entries: entries}, rest, nil
	}
}

// paramParser implements `param := name | op | "{" param_entry,* "}"`.
func paramParser(g *grammar) tparser[ast.Pattern] {
	single := combinator.Map(nameOrOp(), func(s string) ast.Pattern { return ast.PSingle{Name: s} })
	return combinator.Or(single, combinator.Lazy(func() tparser[ast.Pattern] { return paramTableParser(g) }))
}

// paramTableParser implements the `"{" param_entry,* "}"` alternative,
// where `param_entry := (name|op) ":" param | (name|op)` and the bare
// form is the shorthand `k` ≡ `k: k` (desugaring rule 5, §4.4).
//
// Every internal check here stays recoverable, even past the `:`, on
// purpose: `{k: v}` is the same token shape as a table literal, and
// `expr := lambda | infix` tries this production speculatively before
// falling back to parsing the same tokens as a table. Committing early
// with or_bail would turn an ordinary table literal like `{a: 1}` into
// a hard parameter-pattern error instead of a valid table. The or_bail
// the grammar promises for malformed tables still fires — just from
// tableParser, once the lambda attempt has cleanly backed out.
func paramTableParser(g *grammar) tparser[ast.Pattern] {
	entry := func(in []lexer.Token) (ast.PatternEntry, []lexer.Token, *combinator.ParseError) {
		key, rest, err := nameOrOp()(in)
		if err != nil {
			return ast.PatternEntry{}, in, err
		}
		_, afterColon, colonErr := kind(lexer.Colon)(rest)
		if colonErr == nil {
			sub, rest2, subErr := g.param(afterColon)
			if subErr != nil {
				if !subErr.Recoverable {
					return ast.PatternEntry{}, in, subErr
				}
				return ast.PatternEntry{}, in, combinator.Recoverable("not a parameter pattern")
			}
			return ast.PatternEntry{Key: key, Sub: sub}, rest2, nil
		}
		return ast.PatternEntry{Key: key, Sub: ast.PSingle{Name: key}}, rest, nil
	}
	return func(in []lexer.Token) (ast.Pattern, []lexer.Token, *combinator.ParseError) {
		_, rest, err := kind(lexer.LBrace)(in)
		if err != nil {
			return nil, in, err
		}
		entries, rest, err := commaSeparated(entry)(rest)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = kind(lexer.RBrace)(rest)
		if err != nil {
			return nil, in, combinator.Recoverable("not a parameter pattern: missing `}`")
		}
		return ast.PTable{Entries: entries}, rest, nil
	}
}

// commaSeparated parses zero or more items of p separated by `,`, with
// an optional trailing comma, consistent with both table literals and
// parameter-pattern tables.
func commaSeparated[A any](item tparser[A]) tparser[[]A] {
	return func(in []lexer.Token) ([]A, []lexer.Token, *combinator.ParseError) {
		first, rest, err := item(in)
		if err != nil {
			if !err.Recoverable {
				return nil, in, err
			}
			return []A{}, in, nil
		}
		items := []A{first}
		cur := rest
		for {
			_, afterComma, commaErr := kind(lexer.Comma)(cur)
			if commaErr != nil {
				break
			}
			next, afterItem, itemErr := item(afterComma)
			if itemErr != nil {
				if !itemErr.Recoverable {
					return nil, in, itemErr
				}
				cur = afterComma // trailing comma
				break
			}
			items = append(items, next)
			cur = afterItem
		}
		return items, cur, nil
	}
}

// parenFormsParser disambiguates the four grammar productions that
// start with "(": the three operator-section shapes (§4.4) and a plain
// grouped expression. Sections are tried first because each requires an
// exact shape ending in the very next `)`; a plain `(expr)` that merely
// starts the same way falls through to the general form once the
// section attempts fail recoverably.
func parenFormsParser(g *grammar) tparser[ast.Expr] {
	leftSection := func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		_, rest, err := kind(lexer.LParen)(in)
		if err != nil {
			return nil, in, err
		}
		op, rest, err := g.infixOp(rest)
		if err != nil {
			return nil, in, err
		}
		operand, rest, err := g.atomic(rest)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = kind(lexer.RParen)(rest)
		if err != nil {
			return nil, in, err
		}
		return desugarLeftSection(op, operand), rest, nil
	}
	rightSection := func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		_, rest, err := kind(lexer.LParen)(in)
		if err != nil {
			return nil, in, err
		}
		operand, rest, err := g.atomic(rest)
		if err != nil {
			return nil, in, err
		}
		op, rest, err := g.infixOp(rest)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = kind(lexer.RParen)(rest)
		if err != nil {
			return nil, in, err
		}
		return desugarRightSection(op, operand), rest, nil
	}
	bareOp := func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		_, rest, err := kind(lexer.LParen)(in)
		if err != nil {
			return nil, in, err
		}
		op, rest, err := g.infixOp(rest)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = kind(lexer.RParen)(rest)
		if err != nil {
			return nil, in, err
		}
		return opAsExpr(op), rest, nil
	}
	general := func(in []lexer.Token) (ast.Expr, []lexer.Token, *combinator.ParseError) {
		_, rest, err := kind(lexer.LParen)(in)
		if err != nil {
			return nil, in, err
		}
		e, rest, err := combinator.OrBail(g.expr, "Expected expression after `(`")(rest)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = combinator.OrBail(kind(lexer.RParen), "Unclosed `(`")(rest)
		if err != nil {
			return nil, in, err
		}
		return e, rest, nil
	}
	return combinator.Or(leftSection, combinator.Or(rightSection, combinator.Or(bareOp, general)))
}

func opAsExpr(op ast.OpTerm) ast.Expr {
	switch t := op.(type) {
	case ast.InfixOp:
		return ast.Name{Value: t.Name}
	case ast.ExprOp:
		return t.Expr
	default:
		return nil
	}
}

// desugarLeftSection implements `(⊕ e) ≡ _. _ ⊕ e` (rule 2, §4.4).
func desugarLeftSection(op ast.OpTerm, rhs ast.Expr) ast.Expr {
	body := ast.App{Fun: ast.App{Fun: opAsExpr(op), Arg: ast.Name{Value: synthetic}}, Arg: rhs}
	return ast.Lam{Lambda: ast.NewLambda(ast.PSingle{Name: synthetic}, body)}
}

// desugarRightSection implements `(e ⊕) ≡ (⊕) e` (rule 3, §4.4).
func desugarRightSection(op ast.OpTerm, lhs ast.Expr) ast.Expr {
	return ast.App{Fun: opAsExpr(op), Arg: lhs}
}
