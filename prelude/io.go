package prelude

import (
	"github.com/lambda-lang/lambda/eval"
	"github.com/lambda-lang/lambda/runtime"
)

// IOHandle is the external collaborator the core consumes for every
// observable effect (§6): reading a line, writing a line, exiting the
// session, and resolving a module by name. The core never touches a
// file descriptor, socket, or terminal directly — every IO module
// entry below is a thin native wrapper around one of these methods.
type IOHandle interface {
	ReadLine() (string, error)
	WriteLine(string)
	Exit()
	// ResolveModule evaluates moduleName relative to fromLocation and
	// returns its value. found=false means "no such module" (§6's
	// `None`); err carries a rendered LangError from a module that
	// failed to lex, parse, or evaluate.
	ResolveModule(fromLocation, moduleName string) (value runtime.Value, err error, found bool)
}

// buildIOModule assembles the IO module table (§4.7) against handle.
// Every entry takes exactly one argument, per the language's arity-1
// discipline (GLOSSARY): read_line/exit ignore theirs. location is
// this environment's own file path, passed through to ioImport.
func buildIOModule(handle IOHandle, location string) *runtime.Table {
	return newModule(
		entry{"read_line", ioReadLine(handle)},
		entry{"write_line", ioWriteLine(handle)},
		entry{"print", ioPrint(handle)},
		entry{"exit", ioExit(handle)},
		entry{"define", defineOp()},
		entry{"forget", ioForget()},
		entry{"import", ioImport(handle, location)},
		entry{"try", ioTry()},
	)
}

// ioTry calls arg with an empty Table and reifies the outcome (§7:
// "IO:try reifies errors into table values so user code can recover")
// as {ok: true, value: v} or {ok: false, error: <table>}. Control
// signals (return/break/continue) are not errors in this sense — they
// are still unwinding toward their own installer — so they pass
// through untouched rather than being caught here.
func ioTry() runtime.Native {
	return unary("IO:try", func(arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		result, err := eval.Apply(arg, runtime.NewTable(), env)
		if err != nil {
			if _, signal := err.(controlSignal); signal {
				return nil, err
			}
			tbl := runtime.NewTable()
			tbl.Set("ok", runtime.Bool{Value: false})
			tbl.Set("error", errorToTable(err))
			return tbl, nil
		}
		tbl := runtime.NewTable()
		tbl.Set("ok", runtime.Bool{Value: true})
		tbl.Set("value", result)
		return tbl, nil
	})
}

// errorToTable renders a RuntimeError as a Table carrying a `kind`
// symbol plus whatever fields that error variant has, so user code can
// pattern-match on :kind the way it destructures any other record.
func errorToTable(err runtime.RuntimeError) *runtime.Table {
	tbl := runtime.NewTable()
	switch e := err.(type) {
	case runtime.UnexpectedType:
		tbl.Set("kind", runtime.Symbol{Value: "unexpected_type"})
		tbl.Set("expected", runtime.Str{Value: e.Expected})
		tbl.Set("got", runtime.Str{Value: e.Got})
	case runtime.MissingKey:
		tbl.Set("kind", runtime.Symbol{Value: "missing_key"})
		tbl.Set("key", runtime.Str{Value: e.Key})
	case runtime.UndefinedName:
		tbl.Set("kind", runtime.Symbol{Value: "undefined_name"})
		tbl.Set("name", runtime.Str{Value: e.Name})
	case runtime.DimensionMismatch:
		tbl.Set("kind", runtime.Symbol{Value: "dimension_mismatch"})
		tbl.Set("left", runtime.Str{Value: e.Left.String()})
		tbl.Set("right", runtime.Str{Value: e.Right.String()})
	case runtime.NotInDomain:
		tbl.Set("kind", runtime.Symbol{Value: "not_in_domain"})
		tbl.Set("value", e.Value)
		tbl.Set("explanation", runtime.Str{Value: e.Explanation})
	case runtime.Other:
		tbl.Set("kind", runtime.Symbol{Value: "other"})
		tbl.Set("value", e.Value)
	default:
		tbl.Set("kind", runtime.Symbol{Value: "other"})
		tbl.Set("message", runtime.Str{Value: err.Error()})
	}
	return tbl
}

func ioReadLine(handle IOHandle) runtime.Native {
	return unary("IO:read_line", func(_ runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		line, err := handle.ReadLine()
		if err != nil {
			return nil, runtime.Other{Value: runtime.Str{Value: err.Error()}}
		}
		return runtime.Str{Value: line}, nil
	})
}

func ioWriteLine(handle IOHandle) runtime.Native {
	return unary("IO:write_line", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		s, err := requireStr(arg)
		if err != nil {
			return nil, err
		}
		handle.WriteLine(s.Value)
		return s, nil
	})
}

func ioPrint(handle IOHandle) runtime.Native {
	return unary("IO:print", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		handle.WriteLine(arg.String())
		return arg, nil
	})
}

func ioExit(handle IOHandle) runtime.Native {
	return unary("IO:exit", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		handle.Exit()
		return arg, nil
	})
}

func ioForget() runtime.Native {
	return unary("IO:forget", func(arg runtime.Value, env runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		sym, err := requireSymbol(arg)
		if err != nil {
			return nil, err
		}
		env.Forget(sym.Value)
		return sym, nil
	})
}

func ioImport(handle IOHandle, location string) runtime.Native {
	return unary("IO:import", func(arg runtime.Value, _ runtime.EnvRef) (runtime.Value, runtime.RuntimeError) {
		path, err := requireStr(arg)
		if err != nil {
			return nil, err
		}
		value, resolveErr, found := handle.ResolveModule(location, path.Value)
		if !found {
			return nil, runtime.MissingKey{Key: path.Value}
		}
		if resolveErr != nil {
			return nil, runtime.Other{Value: runtime.Str{Value: resolveErr.Error()}}
		}
		return value, nil
	})
}
