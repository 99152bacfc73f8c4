// Package shell implements the interactive REPL front end (§4.7's
// state machine, §6's TerminalIO). Grounded on
// akashmaji946-go-mix/repl/repl.go: chzyer/readline for line editing
// and history, fatih/color for banner/result/error rendering, a
// top-level loop that reads a line, evaluates it against a
// long-lived environment, and prints the result — generalized from a
// single stateful evaluator object to interp.Interpreter, and from a
// bare string exit message to the state machine's SIGINT prompt.
package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lambda-lang/lambda/internal/modules"
	"github.com/lambda-lang/lambda/interp"
	"github.com/lambda-lang/lambda/parser"
	"github.com/lambda-lang/lambda/runtime"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// The REPL session states of §4.7, held in Shell.state as a plain
// int32 so the Ctrl+C signal goroutine can read it with atomic.LoadInt32
// without a pointer conversion between named types.
const (
	stateIdle int32 = iota
	stateReading
	stateParsing
	stateEvaluating
	statePrinting
)

// TerminalIO is the readline-backed prelude.IOHandle for interactive
// sessions (§6). ReadLine/WriteLine share the same readline.Instance
// the Shell loop drives, so a `IO:read_line` call from inside user code
// gets the same history and line-editing the top-level prompt does.
type TerminalIO struct {
	rl       *readline.Instance
	resolver *modules.Resolver
}

func (t *TerminalIO) ReadLine() (string, error) {
	line, err := t.rl.Readline()
	if err != nil {
		return "", err
	}
	return line, nil
}

func (t *TerminalIO) WriteLine(s string) { fmt.Fprintln(t.rl.Stdout(), s) }

func (t *TerminalIO) Exit() { t.resolver.Exit() }

func (t *TerminalIO) ResolveModule(fromLocation, moduleName string) (runtime.Value, error, bool) {
	return t.resolver.ResolveModule(fromLocation, moduleName)
}

// Shell is a single interactive session: banner, prompt, readline
// instance, and the Interpreter it feeds lines into.
type Shell struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	state int32
}

// New builds a Shell with the given banner/version/prompt text.
func New(banner, version, author, line, license, prompt string) *Shell {
	return &Shell{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the startup banner to writer.
func (s *Shell) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", s.Line)
	greenColor.Fprintf(writer, "%s\n", s.Banner)
	blueColor.Fprintf(writer, "%s\n", s.Line)
	yellowColor.Fprintln(writer, "Version: "+s.Version+" | Author: "+s.Author+" | License: "+s.License)
	blueColor.Fprintf(writer, "%s\n", s.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, Ctrl+C to interrupt.")
	blueColor.Fprintf(writer, "%s\n", s.Line)
}

// Run drives the read-eval-print loop over stdin/stdout until the user
// exits, reading and evaluating one statement group per line against a
// freshly built root environment, opts, and baseDir for module
// resolution.
func (s *Shell) Run(opts *parser.ParseOptions, baseDir string) {
	s.PrintBanner(os.Stdout)

	rl, err := readline.New(s.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	term := &TerminalIO{rl: rl}
	resolver := modules.NewResolver(term, opts, baseDir)
	term.resolver = resolver
	it := interp.New(resolver, nil, opts, "")

	s.installInterruptPrompt(rl)

	for {
		atomic.StoreInt32(&s.state, stateReading)
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if s.confirmExit(rl) {
				break
			}
			continue
		}
		if err != nil {
			rl.Stdout().Write([]byte("Good bye.\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			rl.Stdout().Write([]byte("Good bye.\n"))
			break
		}

		rl.SaveHistory(line)
		atomic.StoreInt32(&s.state, stateEvaluating)
		s.evaluate(rl.Stdout(), it, line)
		atomic.StoreInt32(&s.state, stateIdle)
	}
}

// confirmExit implements the "Exit [y/n]?" prompt SIGINT triggers from
// the Reading state (§4.7).
func (s *Shell) confirmExit(rl *readline.Instance) bool {
	redColor.Fprint(rl.Stdout(), "Exit [y/n]? ")
	answer, err := rl.Readline()
	if err != nil {
		return true
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// installInterruptPrompt notes that SIGINT delivered while outside the
// Reading state (i.e. mid-Evaluating) cannot actually abort an
// in-flight eval.Interpret call — the evaluator is a synchronous,
// uninterruptible recursive walk with no cancellation hook — so all
// this handler does there is print a notice that the current
// evaluation runs to completion; os/signal.Notify is deliberately not
// wired to anything more invasive than that.
func (s *Shell) installInterruptPrompt(rl *readline.Instance) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		for range sig {
			if atomic.LoadInt32(&s.state) != stateReading {
				redColor.Fprintln(rl.Stdout(), "\n[interrupted] finishing current evaluation")
			}
		}
	}()
}

// evaluate runs one line through it and prints its result or error,
// mirroring executeWithRecovery's colorized success/failure split —
// without the panic recovery, since interp.Interpreter already turns
// every failure into a returned LangError instead of a panic.
func (s *Shell) evaluate(out io.Writer, it *interp.Interpreter, line string) {
	atomic.StoreInt32(&s.state, stateParsing)
	v, lerr := it.RunMultilineReturnLast(line)
	atomic.StoreInt32(&s.state, statePrinting)
	if lerr != nil {
		redColor.Fprintf(out, "%s\n", lerr.Error())
		return
	}
	if v != nil {
		yellowColor.Fprintf(out, "%s\n", v.String())
	}
}
