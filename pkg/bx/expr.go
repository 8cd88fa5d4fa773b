// Package bx implements a Boolean expression algebra: an immutable
// expression DAG with structural simplification, negation push-down,
// normal-form conversion (NNF/CNF/DNF), Tseytin CNF encoding, variable
// substitution, and SAT-backed satisfiability and equivalence queries.
//
// Expressions are built from the constant singletons (Zero, One,
// Logical, Illogical), literals obtained from a Context, and the
// operator constructors (Or, And, Xor, ... and their simplifying S
// variants). Nodes are immutable and shared by reference; every
// transformation returns a possibly new subgraph and never mutates its
// input.
package bx

// Expr is a node in the expression DAG. The three implementations are
// *Constant, *Literal, and *Operator; passes dispatch on the concrete
// type and, within operators, on the Kind.
type Expr interface {
	Kind() Kind
	String() string
}

// Constant is one of the four constant atoms. Constants are
// process-lifetime singletons and compare by identity; never construct
// one directly.
type Constant struct {
	kind Kind
}

// The constant singletons. Logical is the unknown-but-well-formed
// value X; Illogical is the ill-formed value ? that poisons every
// simplification it reaches.
var (
	Zero      = &Constant{KZero}
	One       = &Constant{KOne}
	Logical   = &Constant{KLog}
	Illogical = &Constant{KIll}
)

// Kind returns the node's kind tag.
func (c *Constant) Kind() Kind { return c.kind }

// Literal is a variable (positive polarity) or its complement.
// Literals are interned by their Context: the same (context, id) pair
// is always the same pointer, so negation and set membership reduce to
// identity operations. The id's low bit is the polarity; id^1 is the
// opposite literal.
type Literal struct {
	ctx  *Context
	id   uint32
	kind Kind
}

// Kind returns KVar for a variable, KComp for a complement.
func (l *Literal) Kind() Kind { return l.kind }

// Context returns the interning context that owns this literal.
func (l *Literal) Context() *Context { return l.ctx }

// ID returns the literal's id. The low bit is the polarity; the upper
// bits are the variable slot.
func (l *Literal) ID() uint32 { return l.id }

// Name returns the variable name this literal refers to.
func (l *Literal) Name() string { return l.ctx.GetName(l.id) }

// Abs returns the positive literal of the same variable.
func (l *Literal) Abs() *Literal {
	if l.kind == KVar {
		return l
	}
	return l.ctx.GetLit(l.id | 1)
}

// Operator is an operator node: a kind, an ordered operand list, and
// the simple flag. Operands of the commutative kinds are semantically
// a multiset; construction preserves the given order but nothing may
// rely on it for identity. The simple flag asserts the subtree is
// already in simplified canonical shape and must only be set by the
// simplifier.
type Operator struct {
	kind   Kind
	simple bool
	args   []Expr
}

// Kind returns the operator's kind tag.
func (op *Operator) Kind() Kind { return op.kind }

// Simple reports whether the subtree is known to be simplified.
func (op *Operator) Simple() bool { return op.simple }

// Args returns the operand list. Callers must not modify it.
func (op *Operator) Args() []Expr { return op.args }

// IsClause reports whether every operand is a literal.
func (op *Operator) IsClause() bool {
	for _, arg := range op.args {
		if _, ok := arg.(*Literal); !ok {
			return false
		}
	}
	return true
}

// fromArgs builds an unsimplified operator of the same kind over new
// operands. Used by passes that rebuild a node after transforming its
// operand list.
func fromArgs(kind Kind, args []Expr) *Operator {
	return &Operator{kind: kind, args: args}
}

// transform applies f to every operand and rebuilds the operator when
// anything changed, preserving sharing otherwise.
func (op *Operator) transform(f func(Expr) Expr) *Operator {
	mod := false
	args := make([]Expr, len(op.args))
	for i, arg := range op.args {
		args[i] = f(arg)
		if args[i] != arg {
			mod = true
		}
	}
	if mod {
		return fromArgs(op.kind, args)
	}
	return op
}

// IsCNF reports whether e is a conjunctive normal form: One, a
// literal, an OR clause, or an AND of literals and OR clauses.
func IsCNF(e Expr) bool {
	switch t := e.(type) {
	case *Constant:
		return t == One
	case *Literal:
		return true
	case *Operator:
		switch t.kind {
		case KOr:
			return t.IsClause()
		case KAnd:
			for _, arg := range t.args {
				if _, ok := arg.(*Literal); ok {
					continue
				}
				if sub, ok := arg.(*Operator); ok && sub.kind == KOr && sub.IsClause() {
					continue
				}
				return false
			}
			return true
		}
	}
	return false
}

// IsDNF reports whether e is a disjunctive normal form: Zero, a
// literal, an AND clause, or an OR of literals and AND clauses.
func IsDNF(e Expr) bool {
	switch t := e.(type) {
	case *Constant:
		return t == Zero
	case *Literal:
		return true
	case *Operator:
		switch t.kind {
		case KAnd:
			return t.IsClause()
		case KOr:
			for _, arg := range t.args {
				if _, ok := arg.(*Literal); ok {
					continue
				}
				if sub, ok := arg.(*Operator); ok && sub.kind == KAnd && sub.IsClause() {
					continue
				}
				return false
			}
			return true
		}
	}
	return false
}
