package ast

// NewLambda builds a Lambda, computing Captured as the free variables of
// body not bound by param, deduplicated in first-occurrence order
// (invariant a, §3; property "closure capture minimality", §8).
func NewLambda(param Pattern, body Expr) Lambda {
	bound := map[string]bool{}
	for _, n := range Bound(param) {
		bound[n] = true
	}
	free := Free(body)
	captured := make([]string, 0, len(free))
	for _, n := range free {
		if !bound[n] {
			captured = append(captured, n)
		}
	}
	return Lambda{Param: param, Body: body, Captured: captured}
}

// Free computes the free variables of e in first-occurrence order. A
// nested Lam is treated opaquely via its already-computed Captured field
// (§4.2) rather than re-descending into its body.
func Free(e Expr) []string {
	seen := map[string]bool{}
	var out []string
	add := func(names []string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	switch n := e.(type) {
	case Name:
		add([]string{n.Value})
	case Dec, Str, Symbol:
		// no free variables
	case Table:
		for _, entry := range n.Entries {
			add(Free(entry.Value))
		}
	case App:
		add(Free(n.Fun))
		add(Free(n.Arg))
	case Cond:
		add(Free(n.Test))
		add(Free(n.Then))
		add(Free(n.Else))
	case Lam:
		add(n.Lambda.Captured)
	}
	return out
}
