package prelude

import "github.com/lambda-lang/lambda/runtime"

// Root builds the environment every program starts evaluating against
// (§4.7): every infix operator, dimension constructor, and the
// IO/Str/Sym/Refl/Imp modules, bound directly into a fresh
// parent-less Environment the way a top-level scope is
// built once per run and handed down through Interpret's env
// parameter. handle wires the IO module's effects to the host;
// location is this environment's own file path (empty for a
// top-level REPL session), threaded into IO:import as the
// `from_location` resolve_module expects (§6) so a module importing a
// sibling resolves relative to itself rather than always falling back
// to the top-level script's base directory.
func Root(handle IOHandle, location string) runtime.EnvRef {
	env := runtime.NewEnvironment(nil)

	env.Define("true", runtime.Bool{Value: true})
	env.Define("false", runtime.Bool{Value: false})

	for _, op := range []runtime.Native{
		addOp(), subOp(), mulOp(), divOp(), modOp(), powOp(), rootOp(),
		ltOp(), gtOp(), leOp(), geOp(),
		concatOp(),
		leftToRightOp(), rightToLeftOp(), forwardPipeOp(), reversePipeOp(),
		fallbackOp(),
		approxEqualOp(), equalOp(), notEqualOp(),
		defineOp(),
		secondsOp(), metersOp(), kilogramsOp(), amperesOp(), kelvinsOp(), molesOp(), candelasOp(),
	} {
		env.Define(op.Name.Resolve(), op)
	}

	env.Define("IO", buildIOModule(handle, location))
	env.Define("Str", buildStrModule())
	env.Define("Sym", buildSymModule())
	env.Define("Refl", buildReflModule())
	env.Define("Imp", buildImpModule())

	return env
}
