// Package ast defines the tagged-union expression, pattern, and operator
// types the parser builds and the evaluator walks (§3, §4.2).
package ast

import "github.com/shopspring/decimal"

// Expr is the sealed interface implemented by every expression node.
// There is no virtual dispatch beyond the marker method and String,
// which every node gets for free from Unparse — callers switch on the
// concrete type, matching the "tagged unions everywhere" design note
// (§9).
type Expr interface {
	exprNode()
	String() string
}

// Name is a bare identifier or operator name looked up in the environment.
type Name struct {
	Value string
}

// Dec is an arbitrary-precision decimal literal, dimensionless until the
// evaluator wraps it as a Unit.
type Dec struct {
	Value decimal.Decimal
}

// Str is a string literal.
type Str struct {
	Value string
}

// Symbol is a `:name` or `:op` literal.
type Symbol struct {
	Value string
}

// TableEntry is one ordered (key, value expression) pair of a table
// literal.
type TableEntry struct {
	Key   string
	Value Expr
}

// Table is an ordered record literal; duplicate keys overwrite at
// evaluation time, and iteration order is insertion order (invariant b).
type Table struct {
	Entries []TableEntry
}

// App is curried function application: `fun arg`.
type App struct {
	Fun Expr
	Arg Expr
}

// Cond is `if Test then Then else Else`.
type Cond struct {
	Test Expr
	Then Expr
	Else Expr
}

// Lambda is a single-parameter function literal. Captured holds the
// free variables of Body not bound by Param, computed once at
// construction time by NewLambda (§4.2) and never recomputed.
type Lambda struct {
	Param    Pattern
	Body     Expr
	Captured []string
}

// Lam wraps a Lambda as an expression.
type Lam struct {
	Lambda Lambda
}

func (Name) exprNode()   {}
func (Dec) exprNode()    {}
func (Str) exprNode()    {}
func (Symbol) exprNode() {}
func (Table) exprNode()  {}
func (App) exprNode()    {}
func (Cond) exprNode()   {}
func (Lam) exprNode()    {}
