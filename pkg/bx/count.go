package bx

import "github.com/hashicorp/go-set/v3"

// Depth returns the longest path from e to a leaf. Atoms have depth 0.
func Depth(e Expr) uint32 {
	op, ok := e.(*Operator)
	if !ok {
		return 0
	}
	var max uint32
	for _, arg := range op.args {
		if d := Depth(arg); d > max {
			max = d
		}
	}
	return max + 1
}

// Size returns the node count of the tree: atoms count one, operators
// one plus the sum of their operands.
func Size(e Expr) uint32 {
	op, ok := e.(*Operator)
	if !ok {
		return 1
	}
	var n uint32 = 1
	for _, arg := range op.args {
		n += Size(arg)
	}
	return n
}

// AtomCount returns the number of atom occurrences in the tree.
func AtomCount(e Expr) uint32 {
	op, ok := e.(*Operator)
	if !ok {
		return 1
	}
	var n uint32
	for _, arg := range op.args {
		n += AtomCount(arg)
	}
	return n
}

// OpCount returns the number of operator nodes in the tree.
func OpCount(e Expr) uint32 {
	op, ok := e.(*Operator)
	if !ok {
		return 0
	}
	var n uint32 = 1
	for _, arg := range op.args {
		n += OpCount(arg)
	}
	return n
}

// Support returns the set of variables e depends on syntactically.
// Complements contribute their underlying variable.
func Support(e Expr) *set.Set[*Literal] {
	return set.From(supportVars(e))
}

// Degree returns the cardinality of the support.
func Degree(e Expr) uint32 {
	return uint32(len(supportVars(e)))
}

// supportVars collects the support in first-visit order; the SAT
// bridge relies on the determinism for its variable indexing.
func supportVars(e Expr) []*Literal {
	var vars []*Literal
	seen := make(map[*Literal]struct{})
	Walk(e, func(n Expr) bool {
		if lit, ok := n.(*Literal); ok {
			x := lit.Abs()
			if _, dup := seen[x]; !dup {
				seen[x] = struct{}{}
				vars = append(vars, x)
			}
		}
		return true
	})
	return vars
}
