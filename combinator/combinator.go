// Package combinator implements a tiny parser-combinator library over an
// arbitrary token stream (§4.3). It is grounded on the shape of
// oleiade-gomme's rune-level combinators (a bare `func(input) Result`
// parser type, an explicit remaining-input slice) generalized to operate
// over any token type via Go generics, and extended with the
// recoverable/unrecoverable failure distinction the reference language's
// error discipline (§4.4, §7) requires but gomme's rune grammar does not.
package combinator

// ParseError carries whether the failure is recoverable: a recoverable
// error means "this alternative didn't match, try the next one"; an
// unrecoverable error means "this branch was committed to and failed",
// and must propagate past any enclosing Or.
type ParseError struct {
	Msg         string
	Recoverable bool
}

func (e *ParseError) Error() string { return e.Msg }

func recoverable(msg string) *ParseError   { return &ParseError{Msg: msg, Recoverable: true} }
func unrecoverable(msg string) *ParseError { return &ParseError{Msg: msg, Recoverable: false} }

// Parser is a pure function of its input stream: given a slice of tokens
// it returns either a value and the unconsumed remainder, or an error and
// the original stream. Parsers never mutate or backtrack input state
// other than by returning the stream unchanged on failure (§4.3 contract).
type Parser[T any, A any] func(input []T) (A, []T, *ParseError)

// Map transforms a successful parse's payload.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return func(in []T) (B, []T, *ParseError) {
		a, rest, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a), rest, nil
	}
}

// FlatMap sequences two parsers, letting the second depend on the first's
// result.
func FlatMap[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return func(in []T) (B, []T, *ParseError) {
		a, rest, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a)(rest)
	}
}

// Then runs p then q and keeps q's value, discarding p's.
func Then[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	return FlatMap(p, func(A) Parser[T, B] { return q })
}

// Neht runs p then q and keeps p's value, discarding q's. The name is
// "then" reversed: it discards the right operand instead of the left.
func Neht[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, A] {
	return func(in []T) (A, []T, *ParseError) {
		a, rest, err := p(in)
		if err != nil {
			var zero A
			return zero, in, err
		}
		_, rest2, err := q(rest)
		if err != nil {
			var zero A
			return zero, in, err
		}
		return a, rest2, nil
	}
}

// Or tries p; if p fails recoverably, tries q against the original input.
// If p fails unrecoverably, that error propagates immediately without
// trying q — this is the only mechanism by which a committed branch's
// error message survives past an enclosing alternative (§4.3).
func Or[T, A any](p, q Parser[T, A]) Parser[T, A] {
	return func(in []T) (A, []T, *ParseError) {
		a, rest, err := p(in)
		if err == nil {
			return a, rest, nil
		}
		if !err.Recoverable {
			var zero A
			return zero, in, err
		}
		return q(in)
	}
}

// OrBail reinterprets any failure from p as unrecoverable, replacing its
// message with msg. Used to give the user a specific diagnostic instead
// of a generic fallback once a grammar production has committed (§4.4).
func OrBail[T, A any](p Parser[T, A], msg string) Parser[T, A] {
	return func(in []T) (A, []T, *ParseError) {
		a, rest, err := p(in)
		if err != nil {
			var zero A
			return zero, in, unrecoverable(msg)
		}
		return a, rest, nil
	}
}

// LookAhead succeeds with p's value but never consumes input.
func LookAhead[T, A any](p Parser[T, A]) Parser[T, A] {
	return func(in []T) (A, []T, *ParseError) {
		a, _, err := p(in)
		if err != nil {
			var zero A
			return zero, in, err
		}
		return a, in, nil
	}
}

// Many applies p zero or more times until it fails recoverably.
func Many[T, A any](p Parser[T, A]) Parser[T, []A] {
	return func(in []T) ([]A, []T, *ParseError) {
		var results []A
		rest := in
		for {
			a, next, err := p(rest)
			if err != nil {
				if !err.Recoverable {
					return nil, in, err
				}
				break
			}
			if len(next) == len(rest) {
				// p succeeded without consuming input; stop to avoid looping forever.
				break
			}
			results = append(results, a)
			rest = next
		}
		return results, rest, nil
	}
}

// ManyAtLeast requires at least n successful applications of p, failing
// unrecoverably with failMsg otherwise.
func ManyAtLeast[T, A any](p Parser[T, A], n int, failMsg string) Parser[T, []A] {
	return func(in []T) ([]A, []T, *ParseError) {
		results, rest, err := Many(p)(in)
		if err != nil {
			return nil, in, err
		}
		if len(results) < n {
			return nil, in, unrecoverable(failMsg)
		}
		return results, rest, nil
	}
}

// SurroundedBy parses open, then inner, then close, returning inner's
// value.
func SurroundedBy[T, O, A, C any](open Parser[T, O], inner Parser[T, A], close Parser[T, C]) Parser[T, A] {
	return Neht(Then(open, inner), close)
}

type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf runs p then q and returns both values.
func PairOf[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, Pair[A, B]] {
	return func(in []T) (Pair[A, B], []T, *ParseError) {
		a, rest, err := p(in)
		if err != nil {
			return Pair[A, B]{}, in, err
		}
		b, rest2, err := q(rest)
		if err != nil {
			return Pair[A, B]{}, in, err
		}
		return Pair[A, B]{First: a, Second: b}, rest2, nil
	}
}

// Always succeeds without consuming input, always returning a.
func Always[T, A any](a A) Parser[T, A] {
	return func(in []T) (A, []T, *ParseError) { return a, in, nil }
}

// Lazy defers construction of a parser until it first runs, which is how
// mutually-recursive grammar productions (expr <-> atomic) tie the knot
// without infinite recursion at construction time (§9).
func Lazy[T, A any](thunk func() Parser[T, A]) Parser[T, A] {
	var cached Parser[T, A]
	return func(in []T) (A, []T, *ParseError) {
		if cached == nil {
			cached = thunk()
		}
		return cached(in)
	}
}

// Maybe turns a recoverable failure into a zero-value, ok=false result
// without consuming input; it fails only when p fails unrecoverably,
// passing that error through.
func Maybe[T, A any](p Parser[T, A]) Parser[T, Pair[A, bool]] {
	return func(in []T) (Pair[A, bool], []T, *ParseError) {
		a, rest, err := p(in)
		if err != nil {
			if !err.Recoverable {
				return Pair[A, bool]{}, in, err
			}
			var zero A
			return Pair[A, bool]{First: zero, Second: false}, in, nil
		}
		return Pair[A, bool]{First: a, Second: true}, rest, nil
	}
}

// Fail builds a parser that always fails recoverably with msg — a
// convenience for grammar alternatives with no better base case.
func Fail[T, A any](msg string) Parser[T, A] {
	return func(in []T) (A, []T, *ParseError) {
		var zero A
		return zero, in, recoverable(msg)
	}
}

// Recoverable and Unrecoverable expose the two ParseError constructors to
// callers outside the package (the expression parser's token-matching
// primitives need to report "token didn't match" as recoverable).
func Recoverable(msg string) *ParseError   { return recoverable(msg) }
func Unrecoverable(msg string) *ParseError { return unrecoverable(msg) }
