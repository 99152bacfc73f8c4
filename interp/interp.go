package interp

import (
	"github.com/lambda-lang/lambda/ast"
	"github.com/lambda-lang/lambda/eval"
	"github.com/lambda-lang/lambda/lexer"
	"github.com/lambda-lang/lambda/parser"
	"github.com/lambda-lang/lambda/prelude"
	"github.com/lambda-lang/lambda/runtime"
)

// Interpreter is the one stateful object a host drives (§6),
// generalized from akashmaji946-go-mix's eval.Evaluator being the
// object repl.Repl.Start and main.runFile each hold onto across
// however many lines or statements they feed it.
type Interpreter struct {
	env      runtime.EnvRef
	opts     *parser.ParseOptions
	location string
}

// New builds an Interpreter. A nil parentEnv builds a fresh prelude
// root via prelude.Root(handle, location) — the common case, one
// interpreter per REPL session or script run, location being that
// run's own file path (empty for the REPL). A non-nil parentEnv is
// used as the interpreter's environment as is, and no prelude is built
// for it (internal/modules passes nil, so every loaded module gets its
// own fresh prelude root). A nil opts uses parser.DefaultOptions().
func New(handle prelude.IOHandle, parentEnv runtime.EnvRef, opts *parser.ParseOptions, location string) *Interpreter {
	env := parentEnv
	if env == nil {
		env = prelude.Root(handle, location)
	}
	if opts == nil {
		opts = parser.DefaultOptions()
	}
	return &Interpreter{env: env, opts: opts, location: location}
}

// Env exposes the interpreter's root environment, e.g. for a module
// resolver that wants to evaluate a loaded file's statements against
// their own fresh child environment instead of the caller's.
func (ip *Interpreter) Env() runtime.EnvRef { return ip.env }

// RunAST evaluates an already-parsed expression against the
// interpreter's environment.
func (ip *Interpreter) RunAST(expr ast.Expr) (runtime.Value, LangError) {
	v, err := eval.Interpret(expr, ip.env)
	if err != nil {
		return nil, RuntimeErr{Err: err}
	}
	return v, nil
}

func (ip *Interpreter) tokenize(src string) ([]lexer.Token, LangError) {
	toks, err := lexer.Tokenize(src, false)
	if err != nil {
		return nil, LexError{Message: err.Error()}
	}
	return toks, nil
}

// RunLine parses exactly one expression from src; a non-empty
// remainder after that expression is a parse error (§6).
func (ip *Interpreter) RunLine(src string) (runtime.Value, LangError) {
	toks, lerr := ip.tokenize(src)
	if lerr != nil {
		return nil, lerr
	}
	expr, rest, err := parser.ParseExpression(toks, ip.opts)
	if err != nil {
		return nil, ParseError{Message: err.Error()}
	}
	if len(rest) > 0 {
		return nil, ParseError{Message: "unexpected input after expression"}
	}
	return ip.RunAST(expr)
}

// RunMultiline parses and evaluates every semicolon-separated
// statement in src in order, stopping at the first error, and returns
// every successfully produced value.
func (ip *Interpreter) RunMultiline(src string) ([]runtime.Value, LangError) {
	toks, lerr := ip.tokenize(src)
	if lerr != nil {
		return nil, lerr
	}
	exprs, err := parser.ParseMultiline(toks, ip.opts)
	if err != nil {
		return nil, ParseError{Message: err.Error()}
	}
	results := make([]runtime.Value, 0, len(exprs))
	for _, e := range exprs {
		v, rerr := ip.RunAST(e)
		if rerr != nil {
			return results, rerr
		}
		results = append(results, v)
	}
	return results, nil
}

// RunMultilineReturnLast is RunMultiline, keeping only the final
// statement's value — the shape a script runner or module loader wants
// (§6, used by internal/script and internal/modules).
func (ip *Interpreter) RunMultilineReturnLast(src string) (runtime.Value, LangError) {
	results, err := ip.RunMultiline(src)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return runtime.NewTable(), nil
	}
	return results[len(results)-1], nil
}
