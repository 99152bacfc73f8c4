// Package script runs a source file non-interactively, the batch
// counterpart to internal/shell's interactive REPL (§6). Grounded on
// akashmaji946-go-mix/main/main.go's runFile/executeFileWithRecovery:
// read the whole file, evaluate it top to bottom, print the last
// result or report the error, exit nonzero on failure. Unlike the
// teacher it never panics partway through parsing — interp.Interpreter
// already turns every lex/parse/runtime failure into a LangError value
// instead of a Go panic, so there is nothing here to recover().
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lambda-lang/lambda/internal/modules"
	"github.com/lambda-lang/lambda/interp"
	"github.com/lambda-lang/lambda/parser"
	"github.com/lambda-lang/lambda/runtime"
)

// BatchIO is the IOHandle for non-interactive execution (§6): reads
// come from a buffered reader over stdin, writes go straight to a
// writer, no colorization, no readline history. Exit calls os.Exit
// directly since a script has no REPL loop to unwind to.
type BatchIO struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBatchIO builds a BatchIO reading from in and writing to out.
func NewBatchIO(in io.Reader, out io.Writer) *BatchIO {
	return &BatchIO{in: bufio.NewReader(in), out: out}
}

func (b *BatchIO) ReadLine() (string, error) {
	line, err := b.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return trimNewline(line), nil
}

func (b *BatchIO) WriteLine(s string) {
	fmt.Fprintln(b.out, s)
}

func (b *BatchIO) Exit() { os.Exit(0) }

func (b *BatchIO) ResolveModule(_, _ string) (runtime.Value, error, bool) {
	return nil, nil, false
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// Run reads path, evaluates its contents top to bottom against a fresh
// root environment, and returns the last statement's result; out
// receives only what the program itself writes through IO. A file that
// can't be read returns a plain error; a file that fails to lex, parse,
// or evaluate returns the resulting LangError — mirroring executeFileWithRecovery's "report and exit 1" without
// baking os.Exit into this package.
func Run(path string, out io.Writer, opts *parser.ParseOptions) (runtime.Value, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %q: %w", path, err)
	}

	handle := NewBatchIO(os.Stdin, out)
	resolver := modules.NewResolver(handle, opts, filepath.Dir(path))
	it := interp.New(resolver, nil, opts, path)
	v, lerr := it.RunMultilineReturnLast(string(source))
	if lerr != nil {
		return v, lerr
	}
	return v, nil
}
