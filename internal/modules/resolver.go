// Package modules implements the filesystem-backed module resolver
// prelude.IOHandle.ResolveModule delegates to (§5, §6): each module
// path is read once, parsed, evaluated, and memoised by its resolved
// path, with a circular-import sentinel installed for the duration of
// a load so a cycle resolves to a value instead of recursing forever.
//
// Grounded on akashmaji946-go-mix/file/file.go's FileObject{Handle
// *os.File} pattern: a builtin that owns a real OS resource behind a
// narrow interface, generalized from "a handle one file builtin reads
// from" to "a handle one resolver reads a whole module body from".
package modules

import (
	"os"
	"path/filepath"

	"github.com/lambda-lang/lambda/interp"
	"github.com/lambda-lang/lambda/parser"
	"github.com/lambda-lang/lambda/prelude"
	"github.com/lambda-lang/lambda/runtime"
)

// circularImportSentinel is the value a resolve_module call sees when
// it reaches a module still in the middle of loading itself (§5):
// `Symbol("__circular_import__")`, replaced with the real value on
// success or removed on failure so a later distinct import attempt
// isn't stuck with a stale sentinel.
var circularImportSentinel = runtime.Symbol{Value: "__circular_import__"}

// Resolver implements prelude.IOHandle's ResolveModule against the
// filesystem, relative to baseDir when a module path isn't absolute
// and the importing file's own location when it is known.
type Resolver struct {
	handle  prelude.IOHandle
	opts    *parser.ParseOptions
	baseDir string
	cache   map[string]runtime.Value
}

// NewResolver builds a Resolver. handle carries the real read_line/
// write_line/exit effects; Resolver itself satisfies prelude.IOHandle
// by forwarding those three to handle and answering ResolveModule
// itself, so passing a *Resolver (not the bare handle) into
// interp.New for both the top-level program and every module it loads
// is what lets nested imports share this Resolver's cache instead of
// each module getting its own dead-end "nothing ever resolves" handle.
func NewResolver(handle prelude.IOHandle, opts *parser.ParseOptions, baseDir string) *Resolver {
	return &Resolver{handle: handle, opts: opts, baseDir: baseDir, cache: make(map[string]runtime.Value)}
}

func (r *Resolver) ReadLine() (string, error) { return r.handle.ReadLine() }
func (r *Resolver) WriteLine(s string)        { r.handle.WriteLine(s) }
func (r *Resolver) Exit()                     { r.handle.Exit() }

func (r *Resolver) resolvePath(fromLocation, moduleName string) string {
	if filepath.IsAbs(moduleName) {
		return filepath.Clean(moduleName)
	}
	dir := r.baseDir
	if fromLocation != "" {
		dir = filepath.Dir(fromLocation)
	}
	return filepath.Clean(filepath.Join(dir, moduleName))
}

// ResolveModule evaluates moduleName relative to fromLocation, caching
// by resolved path. A path not found on disk returns found=false (§6's
// `None`); any lex/parse/runtime error in the module body is returned
// as err with found=true, since the file did exist.
func (r *Resolver) ResolveModule(fromLocation, moduleName string) (runtime.Value, error, bool) {
	path := r.resolvePath(fromLocation, moduleName)

	if v, ok := r.cache[path]; ok {
		return v, nil, true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, false
		}
		return nil, err, true
	}

	r.cache[path] = circularImportSentinel
	sub := interp.New(r, nil, r.opts, path)
	value, lerr := sub.RunMultilineReturnLast(string(data))
	if lerr != nil {
		delete(r.cache, path)
		return nil, lerr, true
	}
	r.cache[path] = value
	return value, nil, true
}
