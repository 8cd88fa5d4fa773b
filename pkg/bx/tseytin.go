package bx

import "strconv"

// Tseytin encoding: every operator subexpression is replaced by a
// fresh auxiliary variable constrained to equal its definition. The
// result is a CNF equisatisfiable with the input; models restricted to
// the input's variables satisfy the input.

// Tseytin encodes e into the given context, naming auxiliary variables
// prefix_0, prefix_1, ... Atoms encode as themselves. Use a dedicated
// context when the auxiliaries must be distinguishable from the
// input's variables (the SAT bridge does).
func Tseytin(e Expr, ctx *Context, prefix string) Expr {
	op, ok := e.(*Operator)
	if !ok {
		return e
	}

	t := &tseytin{ctx: ctx, prefix: prefix}
	top := t.nameOp(op)

	cnfs := make([]Expr, 0, len(t.keys)+1)
	cnfs = append(cnfs, top)
	for i, key := range t.keys {
		cnfs = append(cnfs, eqVar(t.vals[i], key))
	}
	return AndS(cnfs...)
}

type tseytin struct {
	ctx    *Context
	prefix string
	index  int

	// Constraints in allocation order: keys[i] names vals[i].
	keys []*Literal
	vals []*Operator
}

// nameOp allocates a fresh variable for op, substitutes fresh
// variables for its operator operands, and records the constraint.
func (t *tseytin) nameOp(op *Operator) *Literal {
	key := t.ctx.GetVar(t.prefix + "_" + strconv.Itoa(t.index))
	t.index++
	val := t.substArgs(op)
	t.keys = append(t.keys, key)
	t.vals = append(t.vals, val)
	return key
}

func (t *tseytin) substArgs(op *Operator) *Operator {
	found := false
	args := make([]Expr, len(op.args))
	for i, arg := range op.args {
		if sub, ok := arg.(*Operator); ok {
			found = true
			args[i] = t.nameOp(sub)
		} else {
			args[i] = arg
		}
	}
	if found {
		return fromArgs(op.kind, args)
	}
	return op
}

// eqVar returns the CNF clause bundle asserting x equals the operator
// applied to its (now atomic) operands. The lattice, implication, and
// if-then-else bundles are O(arity) clauses; EQ/NEQ add two clauses per
// operand pair, O(arity^2); the parity kinds need all 2^n sign
// patterns, so callers are expected to binary-split wide XORs first.
func eqVar(op *Operator, x *Literal) Expr {
	switch op.kind {
	case KNor:
		// x = ~(a | b | ...) <=> (~x | ~a) & (~x | ~b) & ... & (x | a | b | ...)
		clauses := make([]Expr, 0, len(op.args)+1)
		for _, arg := range op.args {
			clauses = append(clauses, Or(Not(x), Not(arg)))
		}
		clauses = append(clauses, Or(prepend(x, op.args)...))
		return AndS(clauses...)

	case KOr:
		// x = a | b | ... <=> (x | ~a) & (x | ~b) & ... & (~x | a | b | ...)
		clauses := make([]Expr, 0, len(op.args)+1)
		for _, arg := range op.args {
			clauses = append(clauses, Or(x, Not(arg)))
		}
		clauses = append(clauses, Or(prepend(Not(x), op.args)...))
		return AndS(clauses...)

	case KNand:
		// x = ~(a & b & ...) <=> (x | a) & (x | b) & ... & (~x | ~a | ~b | ...)
		clauses := make([]Expr, 0, len(op.args)+1)
		for _, arg := range op.args {
			clauses = append(clauses, Or(x, arg))
		}
		clauses = append(clauses, Or(prepend(Not(x), inverted(op.args))...))
		return AndS(clauses...)

	case KAnd:
		// x = a & b & ... <=> (~x | a) & (~x | b) & ... & (x | ~a | ~b | ...)
		clauses := make([]Expr, 0, len(op.args)+1)
		for _, arg := range op.args {
			clauses = append(clauses, Or(Not(x), arg))
		}
		clauses = append(clauses, Or(prepend(x, inverted(op.args))...))
		return AndS(clauses...)

	case KXnor:
		return parityClauses(Expr(x), op.args)

	case KXor:
		return parityClauses(Not(x), op.args)

	case KNeq:
		// Dual of EQ with the sign of x flipped.
		return eqClauses(Not(x), op.args)

	case KEq:
		return eqClauses(Expr(x), op.args)

	case KNimpl:
		p, q := op.args[0], op.args[1]
		return AndS(Or(Not(x), p), Or(Not(x), Not(q)), Or(x, Not(p), q))

	case KImpl:
		p, q := op.args[0], op.args[1]
		return AndS(Or(x, p), Or(x, Not(q)), Or(Not(x), Not(p), q))

	case KNite:
		s, d1, d0 := op.args[0], op.args[1], op.args[2]
		return AndS(
			Or(Not(x), Not(s), Not(d1)),
			Or(Not(x), s, Not(d0)),
			Or(x, Not(s), d1),
			Or(x, s, d0),
			Or(x, d1, d0),
		)

	case KIte:
		s, d1, d0 := op.args[0], op.args[1], op.args[2]
		return AndS(
			Or(x, Not(s), Not(d1)),
			Or(x, s, Not(d0)),
			Or(Not(x), Not(s), d1),
			Or(Not(x), s, d0),
			Or(Not(x), d1, d0),
		)
	}
	panic("bx: unknown operator kind")
}

// parityClauses emits every sign pattern of (seed | +-a0 | ... | +-an)
// whose negation count has the parity fixed by the seed: each operand
// doubles the pattern set, once as-is and once with the previous head
// and the new operand both flipped.
func parityClauses(seed Expr, args []Expr) Expr {
	stack := [][]Expr{{seed}}

	for _, arg := range args {
		next := make([][]Expr, 0, 2*len(stack))
		for _, lits := range stack {
			fst := make([]Expr, 0, len(lits)+1)
			fst = append(fst, lits...)
			fst = append(fst, arg)

			snd := make([]Expr, 0, len(lits)+1)
			snd = append(snd, Not(lits[0]))
			snd = append(snd, lits[1:]...)
			snd = append(snd, Not(arg))

			next = append(next, fst, snd)
		}
		stack = next
	}

	clauses := make([]Expr, 0, len(stack))
	for _, lits := range stack {
		clauses = append(clauses, Or(lits...))
	}
	return AndS(clauses...)
}

func eqClauses(x Expr, args []Expr) Expr {
	var clauses []Expr
	clauses = append(clauses, Or(prepend(x, args)...))
	clauses = append(clauses, Or(prepend(x, inverted(args))...))
	for i := 0; i < len(args); i++ {
		for j := i + 1; j < len(args); j++ {
			clauses = append(clauses, Or(Not(x), Not(args[i]), args[j]))
			clauses = append(clauses, Or(Not(x), args[i], Not(args[j])))
		}
	}
	return AndS(clauses...)
}

func prepend(head Expr, rest []Expr) []Expr {
	out := make([]Expr, 0, len(rest)+1)
	out = append(out, head)
	return append(out, rest...)
}

func inverted(args []Expr) []Expr {
	out := make([]Expr, len(args))
	for i, arg := range args {
		out[i] = Not(arg)
	}
	return out
}
