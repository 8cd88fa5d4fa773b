package bx

import "sort"

// CNF/DNF flattening. The input is an NNF tree, so every node is a
// literal or a lattice operator. The recursion alternates polarity:
// under an OR the children are driven to DNF, under an AND to CNF, so
// each parent sees a two-level structure it can materialise as clause
// sets, absorb, and (when the polarities oppose) distribute with
// tautology elimination. Worst-case exponential, as CNF/DNF is.

// ToCNF converts e to conjunctive normal form.
func ToCNF(e Expr) Expr { return nnfToCNF(ToNNF(e)) }

// ToDNF converts e to disjunctive normal form.
func ToDNF(e Expr) Expr { return nnfToDNF(ToNNF(e)) }

// clause is a set of literals canonicalised as a sorted, duplicate
// free sequence, enabling linear-merge subset checks.
type clause []*Literal

func (c clause) contains(x *Literal) bool {
	i := sort.Search(len(c), func(i int) bool { return !litLess(c[i], x) })
	return i < len(c) && c[i] == x
}

// with returns a copy of c with x inserted in order. Inserting a
// literal already present returns an unchanged copy.
func (c clause) with(x *Literal) clause {
	i := sort.Search(len(c), func(i int) bool { return !litLess(c[i], x) })
	if i < len(c) && c[i] == x {
		return append(clause(nil), c...)
	}
	out := make(clause, 0, len(c)+1)
	out = append(out, c[:i]...)
	out = append(out, x)
	return append(out, c[i:]...)
}

// Subset relation flags returned by litsCmp.
const (
	xsSubsetYs = 1 << 0
	ysSubsetXs = 1 << 1
)

// litsCmp compares two canonical clauses with a single linear merge
// and reports the subset relation in both directions.
func litsCmp(xs, ys clause) uint8 {
	ret := uint8(xsSubsetYs | ysSubsetXs)

	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		x, y := xs[i], ys[j]
		switch {
		case x == y:
			i++
			j++
		case litLess(x, y):
			ret &^= xsSubsetYs
			i++
		default:
			ret &^= ysSubsetXs
			j++
		}
	}
	if i < len(xs) {
		ret &^= xsSubsetYs
	}
	if j < len(ys) {
		ret &^= ysSubsetXs
	}
	return ret
}

// absorb drops every clause that is a superset of another clause.
func absorb(clauses []clause) []clause {
	if len(clauses) < 2 {
		return clauses
	}

	keep := make([]bool, len(clauses))
	for i := range keep {
		keep[i] = true
	}

	drop := false
	for i := 0; i < len(clauses)-1; i++ {
		if !keep[i] {
			continue
		}
		for j := i + 1; j < len(clauses); j++ {
			cmp := litsCmp(clauses[i], clauses[j])
			if cmp&xsSubsetYs != 0 {
				keep[j] = false
				drop = true
			} else if cmp&ysSubsetXs != 0 {
				keep[i] = false
				drop = true
				break
			}
		}
	}

	if !drop {
		return clauses
	}
	kept := make([]clause, 0, len(clauses))
	for i, c := range clauses {
		if keep[i] {
			kept = append(kept, c)
		}
	}
	return kept
}

// product distributes the clause sets: the Cartesian product of one
// literal per clause, dropping candidates that would contain a literal
// and its negation, re-absorbing after each step to bound blow-up.
func product(clauses []clause) []clause {
	prod := []clause{{}}

	for _, cl := range clauses {
		var next []clause
		for _, factor := range prod {
			for _, x := range cl {
				xn := Not(x).(*Literal)
				if !factor.contains(xn) {
					next = append(next, factor.with(x))
				}
			}
		}
		prod = absorb(next)
	}
	return prod
}

// twoLevelClauses materialises the operands of a two-level lattice
// operator as canonical clauses. Every operand is a literal or a
// clause operator by the time this runs.
func twoLevelClauses(op *Operator) []clause {
	clauses := make([]clause, 0, len(op.args))
	for _, arg := range op.args {
		var cl clause
		if x, ok := arg.(*Literal); ok {
			cl = clause{x}
		} else {
			sub := arg.(*Operator)
			for _, subarg := range sub.args {
				cl = cl.with(subarg.(*Literal))
			}
		}
		clauses = append(clauses, cl)
	}
	return clauses
}

func nnfToCNF(e Expr) Expr {
	op, ok := e.(*Operator)
	if !ok || op.IsClause() {
		return e
	}

	f := nnfToCNF
	if op.kind == KOr {
		f = nnfToDNF
	}
	return flattenCNF(Simplify(op.transform(f)))
}

func flattenCNF(e Expr) Expr {
	op, ok := e.(*Operator)
	if !ok || op.IsClause() {
		return e
	}

	clauses := absorb(twoLevelClauses(op))
	if op.kind == KOr {
		clauses = product(clauses)
	}

	args := make([]Expr, 0, len(clauses))
	for _, cl := range clauses {
		args = append(args, OrS(litExprs(cl)...))
	}
	return AndS(args...)
}

func nnfToDNF(e Expr) Expr {
	op, ok := e.(*Operator)
	if !ok || op.IsClause() {
		return e
	}

	f := nnfToDNF
	if op.kind != KOr {
		f = nnfToCNF
	}
	return flattenDNF(Simplify(op.transform(f)))
}

func flattenDNF(e Expr) Expr {
	op, ok := e.(*Operator)
	if !ok || op.IsClause() {
		return e
	}

	clauses := absorb(twoLevelClauses(op))
	if op.kind == KAnd {
		clauses = product(clauses)
	}

	args := make([]Expr, 0, len(clauses))
	for _, cl := range clauses {
		args = append(args, AndS(litExprs(cl)...))
	}
	return OrS(args...)
}

func litExprs(cl clause) []Expr {
	out := make([]Expr, len(cl))
	for i, x := range cl {
		out[i] = x
	}
	return out
}
