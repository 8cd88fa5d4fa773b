package bx

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// SolveStatus is the tri-state outcome of a Solver run.
type SolveStatus int

const (
	StatusUnsat SolveStatus = iota
	StatusSat
	StatusUnknown
)

func (s SolveStatus) String() string {
	switch s {
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	}
	return "unknown"
}

// Solver is the external CDCL collaborator behind Sat and SatIter.
// Variables are numbered 1..n after NewVariables; clause literals are
// signed DIMACS-style ints (+v asserts the variable, -v its negation).
// Any solver matching this interface can be plugged in via SatWith.
type Solver interface {
	NewVariables(n int)
	AddClause(lits []int)
	Solve() SolveStatus
	// Value reports the model value of variable v after a sat Solve.
	// ok is false when the solver left the variable undefined.
	Value(v int) (val bool, ok bool)
}

// NewSolver returns the default solver, backed by gini.
func NewSolver() Solver { return &giniSolver{g: gini.New()} }

type giniSolver struct {
	g *gini.Gini
	n int
}

func (s *giniSolver) NewVariables(n int) { s.n += n }

func (s *giniSolver) AddClause(lits []int) {
	for _, l := range lits {
		if l < 0 {
			s.g.Add(z.Var(-l).Neg())
		} else {
			s.g.Add(z.Var(l).Pos())
		}
	}
	s.g.Add(z.LitNull)
}

func (s *giniSolver) Solve() SolveStatus {
	switch s.g.Solve() {
	case 1:
		return StatusSat
	case -1:
		return StatusUnsat
	}
	return StatusUnknown
}

func (s *giniSolver) Value(v int) (bool, bool) {
	if v < 1 || v > s.n {
		return false, false
	}
	return s.g.Value(z.Var(v).Pos()), true
}
