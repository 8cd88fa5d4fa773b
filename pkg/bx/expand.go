package bx

// Boolean calculus over cofactors: the smoothing, consensus, and
// derivative of an expression with respect to a variable list are the
// OR-, AND-, and XOR-reductions of its cofactor sequence. The
// reductions drain the cofactor iterator eagerly; only the simplified
// cofactors are held.

// Smoothing returns the existential quantification of e over vars.
func Smoothing(e Expr, vars []*Literal) Expr {
	return reduceCofactors(e, vars, OrS)
}

// Consensus returns the universal quantification of e over vars.
func Consensus(e Expr, vars []*Literal) Expr {
	return reduceCofactors(e, vars, AndS)
}

// Derivative returns the Boolean difference of e over vars.
func Derivative(e Expr, vars []*Literal) Expr {
	return reduceCofactors(e, vars, XorS)
}

func reduceCofactors(e Expr, vars []*Literal, reduce func(...Expr) Expr) Expr {
	args := make([]Expr, 0, 1<<len(vars))
	it := Cofactors(e, vars)
	for cf, ok := it.Next(); ok; cf, ok = it.Next() {
		args = append(args, cf)
	}
	return reduce(args...)
}

// Expand returns the Shannon expansion of e over vars: an if-then-else
// tree selecting on each variable in turn, whose leaves are the
// cofactors of e.
func Expand(e Expr, vars []*Literal) Expr {
	if len(vars) == 0 {
		return e
	}
	x := vars[0]
	f1 := Expand(Restrict(e, Point{x: One}), vars[1:])
	f0 := Expand(Restrict(e, Point{x: Zero}), vars[1:])
	return IteS(x, f1, f0)
}
