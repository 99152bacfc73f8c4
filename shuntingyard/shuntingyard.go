// Package shuntingyard resolves an ast.OpList into a binary application
// tree using Dijkstra's shunting-yard algorithm with runtime-configurable
// operator precedence (§4.5).
package shuntingyard

import "github.com/lambda-lang/lambda/ast"

// PriorityLookup resolves an operator placeholder to its binding
// strength and associativity. parser.ParseOptions implements this so
// shuntingyard never needs to import the parser package back.
type PriorityLookup interface {
	PriorityFor(op ast.OpTerm) ast.Priority
}

// Resolve turns list into a single Expr. Its precondition and
// postcondition are the §4.5 invariant: exactly one operand remains on
// the operand stack once every operator has been reduced.
func Resolve(list ast.OpList, lookup PriorityLookup) ast.Expr {
	operands := []ast.Expr{list.Initial}
	var operators []ast.OpTerm

	reduce := func() {
		n := len(operators)
		op := operators[n-1]
		operators = operators[:n-1]

		m := len(operands)
		right := operands[m-1]
		left := operands[m-2]
		operands = operands[:m-2]

		var opExpr ast.Expr
		switch o := op.(type) {
		case ast.InfixOp:
			opExpr = ast.Name{Value: o.Name}
		case ast.ExprOp:
			opExpr = o.Expr
		}
		operands = append(operands, ast.App{
			Fun: ast.App{Fun: opExpr, Arg: left},
			Arg: right,
		})
	}

	for _, chunk := range list.Chunks {
		cur := lookup.PriorityFor(chunk.Op)
		for len(operators) > 0 {
			top := lookup.PriorityFor(operators[len(operators)-1])
			if !beats(top, cur) {
				break
			}
			reduce()
		}
		operators = append(operators, chunk.Op)
		operands = append(operands, chunk.Rhs)
	}

	for len(operators) > 0 {
		reduce()
	}

	return operands[0]
}

// beats reports whether the operator on top of the stack must be reduced
// before the current operator is pushed: the top operator beats the
// current one iff the current binds less tightly, or they bind equally
// and the current is left-associative (§4.5).
func beats(top, cur ast.Priority) bool {
	if cur.Strength < top.Strength {
		return true
	}
	return cur.Strength == top.Strength && cur.Assoc == ast.Left
}
