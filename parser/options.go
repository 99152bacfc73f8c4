package parser

import (
	"github.com/lambda-lang/lambda/ast"
	"github.com/lambda-lang/lambda/shuntingyard"
)

// ParseOptions is the runtime-mutable operator precedence table (§4.4,
// §4.5). It is held by reference and every ParseExpression call reads
// it fresh instead of baking priorities into the grammar at construction
// time, so a change made to it between calls takes effect on the next
// call. No built-in of the prelude mutates it.
type ParseOptions struct {
	Priorities       map[string]ast.Priority
	BacktickPriority ast.Priority
	DefaultPriority  ast.Priority
}

var _ shuntingyard.PriorityLookup = (*ParseOptions)(nil)

// PriorityFor implements shuntingyard.PriorityLookup: an InfixOp looks
// itself up in Priorities, falling back to DefaultPriority; an ExprOp
// (a backtick-quoted expression used as an operator) always uses
// BacktickPriority (§4.5).
func (o *ParseOptions) PriorityFor(op ast.OpTerm) ast.Priority {
	switch t := op.(type) {
	case ast.InfixOp:
		if p, ok := o.Priorities[t.Name]; ok {
			return p
		}
		return o.DefaultPriority
	case ast.ExprOp:
		return o.BacktickPriority
	default:
		return o.DefaultPriority
	}
}

// DefaultOptions returns the baseline precedence table the prelude
// installs before evaluating anything. Strengths are an arbitrary but
// internally consistent scale; higher binds tighter.
func DefaultOptions() *ParseOptions {
	left := func(s int) ast.Priority { return ast.Priority{Strength: s, Assoc: ast.Left} }
	right := func(s int) ast.Priority { return ast.Priority{Strength: s, Assoc: ast.Right} }
	return &ParseOptions{
		Priorities: map[string]ast.Priority{
			"$":  right(1),
			"|?": right(2),
			"|>": left(3),
			"<<": right(4),
			">>": left(4),
			"~=": left(5),
			"==": left(5),
			"!=": left(5),
			"<":  left(5),
			">":  left(5),
			"<=": left(5),
			">=": left(5),
			"++": right(6),
			"+":  left(7),
			"-":  left(7),
			"*":  left(8),
			"/":  left(8),
			"%":  left(8),
			"^":  right(9),
			"^/": right(9),
		},
		BacktickPriority: left(9),
		DefaultPriority:  left(5),
	}
}
