// Package interp is the host-facing layer (§6): Interpreter wraps the
// lexer/parser/eval pipeline behind run_ast/run_line/run_multiline/
// run_multiline_return_last, and LangError is the closed union a host
// renders into a user-visible message (§7) instead of the raw
// runtime.RuntimeError the core itself trades in.
//
// Grounded on akashmaji946-go-mix/main/main.go's
// executeFileWithRecovery and repl/repl.go's executeWithRecovery,
// both of which thread "lex/parse error vs. eval error vs. success"
// through a single function — generalized here into a typed sum
// instead of a panic-recover plus string formatting, since the core
// never panics on a plain RuntimeError (§7: RuntimeError is always a
// normal return value).
package interp

import "github.com/lambda-lang/lambda/runtime"

// LangError is the sealed union Interpreter methods return instead of
// a bare Go error: LexError, ParseError, or a wrapped RuntimeError.
type LangError interface {
	error
	langErrorNode()
}

// LexError reports a source span the lexer could not tokenize.
type LexError struct {
	Message string
}

func (LexError) langErrorNode() {}
func (e LexError) Error() string { return "lex error: " + e.Message }

// ParseError reports a grammar production that failed to match.
type ParseError struct {
	Message string
}

func (ParseError) langErrorNode() {}
func (e ParseError) Error() string { return "parse error: " + e.Message }

// RuntimeErr wraps a runtime.RuntimeError the evaluator produced.
// Named RuntimeErr rather than RuntimeError to avoid colliding with
// runtime.RuntimeError in call sites that import both packages
// unqualified-ish (interp.RuntimeErr{Err: a runtime.RuntimeError}).
type RuntimeErr struct {
	Err runtime.RuntimeError
}

func (RuntimeErr) langErrorNode() {}
func (e RuntimeErr) Error() string { return e.Err.Error() }
