package ast

import (
	"strconv"
	"strings"
)

// Unparse re-synthesises the surface syntax of expr (§9 "Lambda
// equality / printing"): it recognises desugarLeftSection's synthetic
// `_. _ op rhs` shape and prints it back as the left-section surface
// form `(op rhs)`, and it re-associates a chain of nested Lam bodies
// back into the multi-parameter sugar `a b c. body`. Everything else
// is purely structural — curried application and the shunting-yard's
// own infix reductions share one tree shape, `App(App(f,a),b)`, so
// there is no separate infix-aware case: flattening the App chain and
// printing its head as a bare operator when the head Name isn't a
// valid identifier reproduces either one. Unparse never attempts to
// reverse a beta-reduction; it only ever looks at shape.
func Unparse(e Expr) string {
	switch n := e.(type) {
	case Name:
		return unparseName(n.Value)
	case Dec:
		return n.Value.String()
	case Str:
		return strconv.Quote(n.Value)
	case Symbol:
		return ":" + n.Value
	case Table:
		return unparseTable(n)
	case App:
		return unparseApp(n)
	case Cond:
		return "if " + Unparse(n.Test) + " then " + Unparse(n.Then) + " else " + Unparse(n.Else)
	case Lam:
		return unparseLam(n)
	default:
		return ""
	}
}

// unparseAtomic renders e the way the grammar's `atomic` production
// requires when e sits in an operand position: Name/Dec/Str/Symbol/
// Table are already atomic on their own, everything else (App, Cond,
// Lam) gets wrapped in parens since a bare cond or lambda would
// otherwise swallow whatever follows it.
func unparseAtomic(e Expr) string {
	switch e.(type) {
	case Name, Dec, Str, Symbol, Table:
		return Unparse(e)
	default:
		return "(" + Unparse(e) + ")"
	}
}

// unparseName prints a Name the way it would have to be written to
// parse back to the same Name: bare if it is a valid identifier,
// parenthesized bare-op form (the grammar's `"(" infix_op ")"`
// production) otherwise, since an operator token is never itself a
// valid `atomic`.
func unparseName(v string) string {
	if isIdentifier(v) {
		return v
	}
	return "(" + v + ")"
}

func isIdentifier(v string) bool {
	if v == "" || !isNameStartByte(v[0]) {
		return false
	}
	for i := 1; i < len(v); i++ {
		if !isNameContByte(v[i]) {
			return false
		}
	}
	return true
}

func isNameStartByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isNameContByte(c byte) bool {
	return isNameStartByte(c) || (c >= '0' && c <= '9')
}

func unparseTable(t Table) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, entry := range t.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(entry.Key)
		b.WriteString(": ")
		b.WriteString(Unparse(entry.Value))
	}
	b.WriteByte('}')
	return b.String()
}

func unparseApp(a App) string {
	fn, args := flattenApp(a)
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, unparseAtomic(fn))
	for _, arg := range args {
		parts = append(parts, unparseAtomic(arg))
	}
	return strings.Join(parts, " ")
}

// flattenApp walks a left-nested App chain back into its head callee
// and the ordered list of arguments it was applied to.
func flattenApp(a App) (Expr, []Expr) {
	var args []Expr
	var cur Expr = a
	for {
		app, ok := cur.(App)
		if !ok {
			break
		}
		args = append(args, app.Arg)
		cur = app.Fun
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return cur, args
}

func unparseLam(l Lam) string {
	// asLeftSection only ever recognises a section built from an actual
	// InfixOp token, never a backtick ExprOp, so op is the bare operator
	// text itself — printed raw here since the surrounding parens are
	// the grammar's own `"(" infix_op atomic ")"` delimiters, not the
	// bare-op-atomic production unparseName produces elsewhere.
	if op, rhs, ok := asLeftSection(l.Lambda); ok {
		return "(" + op + " " + unparseAtomic(rhs) + ")"
	}
	params, body := flattenLam(l)
	return strings.Join(params, " ") + ". " + Unparse(body)
}

// sectionBinder is the synthetic parameter name left sections bind,
// mirroring parser.synthetic — the two must stay in sync since this is
// the only place outside the parser that needs to recognise the shape
// desugarLeftSection builds.
const sectionBinder = "_"

// asLeftSection reports whether lam is exactly the shape
// desugarLeftSection builds for `(op rhs)`: a single `_` parameter
// whose body applies op to `_` and then to rhs.
func asLeftSection(lam Lambda) (op string, rhs Expr, ok bool) {
	single, isSingle := lam.Param.(PSingle)
	if !isSingle || single.Name != sectionBinder {
		return "", nil, false
	}
	outer, isApp := lam.Body.(App)
	if !isApp {
		return "", nil, false
	}
	inner, isApp := outer.Fun.(App)
	if !isApp {
		return "", nil, false
	}
	opName, isName := inner.Fun.(Name)
	if !isName {
		return "", nil, false
	}
	bound, isName := inner.Arg.(Name)
	if !isName || bound.Value != sectionBinder {
		return "", nil, false
	}
	return opName.Value, outer.Arg, true
}

// flattenLam re-associates a chain of nested single-expression Lam
// bodies into the parameter list the multi-parameter sugar `a b c.
// body` would have produced, stopping at the first body that is
// itself a left section (so that shape still prints as `(op rhs)`
// instead of being absorbed into the parameter list) or that isn't a
// Lam at all.
func flattenLam(l Lam) ([]string, Expr) {
	params := []string{unparsePattern(l.Lambda.Param)}
	body := l.Lambda.Body
	for {
		next, isLam := body.(Lam)
		if !isLam {
			break
		}
		if _, _, isSection := asLeftSection(next.Lambda); isSection {
			break
		}
		params = append(params, unparsePattern(next.Lambda.Param))
		body = next.Lambda.Body
	}
	return params, body
}

func (n Name) String() string   { return Unparse(n) }
func (n Dec) String() string    { return Unparse(n) }
func (n Str) String() string    { return Unparse(n) }
func (n Symbol) String() string { return Unparse(n) }
func (n Table) String() string  { return Unparse(n) }
func (n App) String() string    { return Unparse(n) }
func (n Cond) String() string   { return Unparse(n) }
func (n Lam) String() string    { return Unparse(n) }

// unparsePattern prints a lambda parameter pattern, reconstructing
// the shorthand table-entry form `k` whenever a PTable entry's
// sub-pattern is exactly `k: k` (§4.4's own shorthand desugaring, run
// in reverse).
func unparsePattern(p Pattern) string {
	switch pat := p.(type) {
	case PSingle:
		return pat.Name
	case PTable:
		parts := make([]string, len(pat.Entries))
		for i, entry := range pat.Entries {
			if single, ok := entry.Sub.(PSingle); ok && single.Name == entry.Key {
				parts[i] = entry.Key
				continue
			}
			parts[i] = entry.Key + ": " + unparsePattern(entry.Sub)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}
