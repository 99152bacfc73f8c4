package runtime

import "fmt"

// RuntimeError is the closed union the evaluator returns alongside
// every Value (§3, §4.6). Every variant also satisfies error so Go
// callers can use it directly in an `if err != nil` check; the host's
// LangError layer is what actually renders it to a user.
type RuntimeError interface {
	error
	runtimeErrorNode()
}

// UnexpectedType is raised whenever apply/interpret finds a Value of
// the wrong kind — a non-Bool Cond test, a non-Symbol table argument,
// a callee that is neither Table, Fun, nor Native.
type UnexpectedType struct {
	Expected string
	Got      string
}

func (UnexpectedType) runtimeErrorNode() {}
func (e UnexpectedType) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// MissingKey is raised when a Table is applied to a Symbol it has no
// entry for.
type MissingKey struct {
	Key string
}

func (MissingKey) runtimeErrorNode() {}
func (e MissingKey) Error() string   { return fmt.Sprintf("missing key %q", e.Key) }

// UndefinedName is raised when a Name fails to resolve anywhere in the
// environment chain.
type UndefinedName struct {
	Name string
}

func (UndefinedName) runtimeErrorNode() {}
func (e UndefinedName) Error() string   { return fmt.Sprintf("undefined name %q", e.Name) }

// DimensionMismatch is raised by `+`/`-`/comparisons when their two
// operands' dimensions are not Equal.
type DimensionMismatch struct {
	Left  Dimension
	Right Dimension
}

func (DimensionMismatch) runtimeErrorNode() {}
func (e DimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %s vs %s", e.Left, e.Right)
}

// NotInDomain is raised for operations that are well-typed but
// ill-defined for the given value — division by zero, a non-integer
// `^` exponent, an even root of a negative magnitude.
type NotInDomain struct {
	Value       Value
	Explanation string
}

func (NotInDomain) runtimeErrorNode() {}
func (e NotInDomain) Error() string {
	return fmt.Sprintf("%s not in domain: %s", e.Value.String(), e.Explanation)
}

// Other wraps a Value (e.g. the message of a host I/O or module
// resolution failure) that does not correspond to any of the above
// kinds.
type Other struct {
	Value Value
}

func (Other) runtimeErrorNode() {}
func (e Other) Error() string   { return fmt.Sprintf("error: %s", e.Value.String()) }
