package bx

import (
	"github.com/hashicorp/go-hclog"
)

// Point assigns constants to variables. Keys are positive literals.
type Point map[*Literal]*Constant

// VarMap substitutes expressions for variables. Keys are positive
// literals.
type VarMap map[*Literal]Expr

// logger carries internal diagnostics (solver UNKNOWN results). It
// defaults to a null logger; see SetLogger.
var logger hclog.Logger = hclog.NewNullLogger()

// SetLogger installs the package diagnostics logger.
func SetLogger(l hclog.Logger) { logger = l }

// Sat reports whether e is satisfiable, and on success returns an
// assignment of every support variable to a constant. Zero, Logical
// (not provably true), and Illogical are unsatisfiable; One is
// satisfiable with the empty assignment; a literal is satisfiable with
// its implied assignment. Operators are Tseytin-encoded into a private
// context and handed to the default solver; auxiliary variables are
// filtered from the returned point. A solver UNKNOWN is reported as
// unsatisfiable.
func Sat(e Expr) (Point, bool) { return SatWith(NewSolver, e) }

// SatWith is Sat with a caller-supplied solver factory.
func SatWith(newSolver func() Solver, e Expr) (Point, bool) {
	switch t := e.(type) {
	case *Constant:
		if t == One {
			return Point{}, true
		}
		return nil, false
	case *Literal:
		if t.kind == KVar {
			return Point{t: One}, true
		}
		return Point{t.Abs(): Zero}, true
	}

	aux := NewContext()
	cnf := Tseytin(e, aux, "a")

	// Simplification inside the encoding can collapse the CNF.
	if _, ok := cnf.(*Operator); !ok {
		if lit, ok := cnf.(*Literal); ok && lit.ctx != aux {
			return SatWith(newSolver, lit)
		}
		if cnf == One || isLit(cnf) {
			return Point{}, true
		}
		return nil, false
	}

	support := supportVars(cnf)
	litIdx := make(map[*Literal]int, 2*len(support))
	for i, x := range support {
		litIdx[x] = i + 1
		litIdx[Not(x).(*Literal)] = -(i + 1)
	}

	solver := newSolver()
	solver.NewVariables(len(support))
	for _, cl := range cnfClauses(cnf) {
		solver.AddClause(clauseInts(cl, litIdx))
	}

	status := solver.Solve()
	if status == StatusUnknown {
		logger.Warn("solver returned unknown; reporting unsatisfiable",
			"size", Size(e))
	}
	if status != StatusSat {
		return nil, false
	}

	return decodeModel(solver, support, aux), true
}

// cnfClauses returns the clause list of a Tseytin CNF: the args of the
// top AND, or the expression itself when the conjunction collapsed.
func cnfClauses(cnf Expr) []Expr {
	if op, ok := cnf.(*Operator); ok && op.kind == KAnd {
		return op.args
	}
	return []Expr{cnf}
}

// clauseInts maps a clause (an OR of literals, or a lone literal) to
// solver literals.
func clauseInts(cl Expr, litIdx map[*Literal]int) []int {
	if x, ok := cl.(*Literal); ok {
		return []int{litIdx[x]}
	}
	op := cl.(*Operator)
	lits := make([]int, len(op.args))
	for i, arg := range op.args {
		lits[i] = litIdx[arg.(*Literal)]
	}
	return lits
}

func decodeModel(solver Solver, support []*Literal, aux *Context) Point {
	point := Point{}
	for i, x := range support {
		if x.ctx == aux {
			continue
		}
		val, ok := solver.Value(i + 1)
		if !ok {
			continue
		}
		if val {
			point[x] = One
		} else {
			point[x] = Zero
		}
	}
	return point
}

// Equiv reports whether a and b compute the same function: their XOR
// is unsatisfiable.
func Equiv(a, b Expr) bool {
	_, sat := Sat(Xor(a, b))
	return !sat
}

// SatIter enumerates the satisfying points of an expression one at a
// time. After each model the iterator adds a blocking clause over the
// reported (non-auxiliary) variables and resolves, so each projected
// model is produced exactly once. The solver instance lives for the
// duration of the iteration.
type SatIter struct {
	solver  Solver
	aux     *Context
	support []*Literal
	litIdx  map[*Literal]int

	// Atom fast path: a single precomputed solution.
	one     Point
	hasOne  bool
	started bool
	done    bool
}

// NewSatIter returns an iterator over the models of e, using the
// default solver.
func NewSatIter(e Expr) *SatIter { return NewSatIterWith(NewSolver, e) }

// NewSatIterWith is NewSatIter with a caller-supplied solver factory.
func NewSatIterWith(newSolver func() Solver, e Expr) *SatIter {
	it := &SatIter{}

	switch t := e.(type) {
	case *Constant:
		if t == One {
			it.one = Point{}
			it.hasOne = true
		} else {
			it.done = true
		}
		return it
	case *Literal:
		if t.kind == KVar {
			it.one = Point{t: One}
		} else {
			it.one = Point{t.Abs(): Zero}
		}
		it.hasOne = true
		return it
	}

	aux := NewContext()
	cnf := Tseytin(e, aux, "a")
	if _, ok := cnf.(*Operator); !ok {
		if lit, ok := cnf.(*Literal); ok && lit.ctx != aux {
			return NewSatIterWith(newSolver, lit)
		}
		if cnf == Zero || cnf == Logical || cnf == Illogical {
			it.done = true
		} else {
			it.one = Point{}
			it.hasOne = true
		}
		return it
	}

	it.aux = aux
	it.support = supportVars(cnf)
	it.litIdx = make(map[*Literal]int, 2*len(it.support))
	for i, x := range it.support {
		it.litIdx[x] = i + 1
		it.litIdx[Not(x).(*Literal)] = -(i + 1)
	}

	it.solver = newSolver()
	it.solver.NewVariables(len(it.support))
	for _, cl := range cnfClauses(cnf) {
		it.solver.AddClause(clauseInts(cl, it.litIdx))
	}
	return it
}

// Next returns the next satisfying point. ok is false when the
// expression has no further models.
func (it *SatIter) Next() (Point, bool) {
	if it.done {
		return nil, false
	}
	if it.hasOne {
		if it.started {
			it.done = true
			return nil, false
		}
		it.started = true
		return it.one, true
	}

	status := it.solver.Solve()
	if status == StatusUnknown {
		logger.Warn("solver returned unknown during iteration; stopping")
	}
	if status != StatusSat {
		it.done = true
		return nil, false
	}

	point := decodeModel(it.solver, it.support, it.aux)
	it.block(point)
	return point, true
}

// block forbids the given assignment: the OR of the negations of all
// witnessed literals. An empty assignment means the expression is
// constant over its own variables; iteration ends after it.
func (it *SatIter) block(point Point) {
	if len(point) == 0 {
		it.done = true
		return
	}
	lits := make([]int, 0, len(point))
	for x, c := range point {
		idx := it.litIdx[x]
		if c == One {
			lits = append(lits, -idx)
		} else {
			lits = append(lits, idx)
		}
	}
	it.solver.AddClause(lits)
}
