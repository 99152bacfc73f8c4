package runtime

// EnvRef is the reference type a Fun closes over and the evaluator
// threads through interpret/apply/bind (§3 "EnvRef").
type EnvRef = *Environment

// Environment is one node of the parent-chain scope graph rooted at the
// prelude. Lookups walk the parent chain; a Define only ever touches
// the node it is called on.
//
// Unlike a copy-on-write scope, Environment is never snapshotted:
// invariant d requires a Fun to observe mutations made to its closure
// node after the Fun was created (`.=` at the REPL top level must be
// visible to functions already defined there), so every Environment is
// shared by reference for as long as anything still points at it.
type Environment struct {
	parent *Environment
	names  map[string]Value
}

// NewEnvironment creates a child of parent (nil for the root).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, names: make(map[string]Value)}
}

// Lookup walks the parent chain, returning the first binding found.
func (e *Environment) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.names[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define installs name in this environment node only, overwriting any
// existing binding at this node. This is the single mutation primitive
// behind `.=` and the prelude's own population of the root environment.
func (e *Environment) Define(name string, v Value) {
	e.names[name] = v
}

// Forget removes name from this environment node only, the mutation
// primitive behind IO:forget. It does not search the parent chain: a
// name still visible through a parent after Forget is not an error,
// mirroring Define's own node-local scope.
func (e *Environment) Forget(name string) {
	delete(e.names, name)
}
