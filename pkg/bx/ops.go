package bx

import "slices"

// Constructors for every operator kind, in raw and simplifying
// variants. Raw constructors build unsimplified nodes but still apply
// the degenerate-arity rules: Or/And/Xor with no operands return their
// identity, with one operand return it unchanged; the negated forms
// return the negation of the same; Eq/Neq with fewer than two operands
// are trivially One/Zero. Impl and Ite take exact arity by signature.

// Or returns the disjunction of args.
func Or(args ...Expr) Expr {
	switch len(args) {
	case 0:
		return Zero
	case 1:
		return args[0]
	}
	return &Operator{kind: KOr, args: slices.Clone(args)}
}

// Nor returns the negated disjunction of args.
func Nor(args ...Expr) Expr { return Not(Or(args...)) }

// And returns the conjunction of args.
func And(args ...Expr) Expr {
	switch len(args) {
	case 0:
		return One
	case 1:
		return args[0]
	}
	return &Operator{kind: KAnd, args: slices.Clone(args)}
}

// Nand returns the negated conjunction of args.
func Nand(args ...Expr) Expr { return Not(And(args...)) }

// Xor returns the odd-parity function of args.
func Xor(args ...Expr) Expr {
	switch len(args) {
	case 0:
		return Zero
	case 1:
		return args[0]
	}
	return &Operator{kind: KXor, args: slices.Clone(args)}
}

// Xnor returns the even-parity function of args.
func Xnor(args ...Expr) Expr { return Not(Xor(args...)) }

// Eq returns the all-equal function of args.
func Eq(args ...Expr) Expr {
	if len(args) < 2 {
		return One
	}
	return &Operator{kind: KEq, args: slices.Clone(args)}
}

// Neq returns the not-all-equal function of args.
func Neq(args ...Expr) Expr { return Not(Eq(args...)) }

// Impl returns the implication p -> q.
func Impl(p, q Expr) Expr {
	return &Operator{kind: KImpl, args: []Expr{p, q}}
}

// Nimpl returns the negated implication ~(p -> q).
func Nimpl(p, q Expr) Expr {
	return &Operator{kind: KNimpl, args: []Expr{p, q}}
}

// Ite returns if s then d1 else d0.
func Ite(s, d1, d0 Expr) Expr {
	return &Operator{kind: KIte, args: []Expr{s, d1, d0}}
}

// Nite returns the negated if-then-else.
func Nite(s, d1, d0 Expr) Expr {
	return &Operator{kind: KNite, args: []Expr{s, d1, d0}}
}

// OrS and friends are the simplifying constructor variants.

func OrS(args ...Expr) Expr   { return Simplify(Or(args...)) }
func NorS(args ...Expr) Expr  { return Simplify(Nor(args...)) }
func AndS(args ...Expr) Expr  { return Simplify(And(args...)) }
func NandS(args ...Expr) Expr { return Simplify(Nand(args...)) }
func XorS(args ...Expr) Expr  { return Simplify(Xor(args...)) }
func XnorS(args ...Expr) Expr { return Simplify(Xnor(args...)) }
func EqS(args ...Expr) Expr   { return Simplify(Eq(args...)) }
func NeqS(args ...Expr) Expr  { return Simplify(Neq(args...)) }

func ImplS(p, q Expr) Expr      { return Simplify(Impl(p, q)) }
func NimplS(p, q Expr) Expr     { return Simplify(Nimpl(p, q)) }
func IteS(s, d1, d0 Expr) Expr  { return Simplify(Ite(s, d1, d0)) }
func NiteS(s, d1, d0 Expr) Expr { return Simplify(Nite(s, d1, d0)) }

// OneHot0 returns the function that is true when at most one of args
// is true: the AND of all pairwise exclusions.
func OneHot0(args ...Expr) Expr {
	n := len(args)
	terms := make([]Expr, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			terms = append(terms, Or(Not(args[i]), Not(args[j])))
		}
	}
	return And(terms...)
}

// OneHot returns the function that is true when exactly one of args is
// true.
func OneHot(args ...Expr) Expr {
	n := len(args)
	terms := make([]Expr, 0, n*(n-1)/2+1)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			terms = append(terms, Or(Not(args[i]), Not(args[j])))
		}
	}
	terms = append(terms, Or(args...))
	return And(terms...)
}
