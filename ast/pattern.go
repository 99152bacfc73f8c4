package ast

// Pattern is a lambda parameter: either a single bound name or a
// duck-typed table destructuring.
type Pattern interface {
	patternNode()
}

// PSingle binds the whole argument to Name.
type PSingle struct {
	Name string
}

// PatternEntry destructures the value extracted at Key into Sub. The
// shorthand form `k` desugars to `k: k` at parse time (§4.4), so by the
// time a PatternEntry reaches here Sub is always present.
type PatternEntry struct {
	Key string
	Sub Pattern
}

// PTable destructures a table-like value: for each entry, the runtime
// extracts the value at Key (via apply, duck-typed — §4.6) and
// recursively binds it against Sub.
type PTable struct {
	Entries []PatternEntry
}

func (PSingle) patternNode() {}
func (PTable) patternNode()  {}

// Bound returns the set of names a pattern binds, in first-occurrence
// order, used by NewLambda to compute captured_names (§4.2).
func Bound(p Pattern) []string {
	switch pat := p.(type) {
	case PSingle:
		return []string{pat.Name}
	case PTable:
		var names []string
		seen := map[string]bool{}
		for _, e := range pat.Entries {
			for _, n := range Bound(e.Sub) {
				if !seen[n] {
					seen[n] = true
					names = append(names, n)
				}
			}
		}
		return names
	default:
		return nil
	}
}
