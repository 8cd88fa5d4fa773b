package bx

import (
	"strings"
	"testing"
)

func TestTseytinAtoms(t *testing.T) {
	ctx, xs := testVars(1)

	atoms := []Expr{Zero, One, Logical, Illogical, xs[0], Not(xs[0])}
	for _, a := range atoms {
		if got := Tseytin(a, ctx, "a"); got != a {
			t.Errorf("Tseytin(%s) = %s, want the atom itself", a, got)
		}
	}
}

func TestTseytinOperators(t *testing.T) {
	_, xs := testVars(4)

	exprs := []Expr{
		NorS(xs[0], XorS(xs[1], xs[2]), xs[3]),
		OrS(xs[0], XnorS(xs[1], xs[2]), xs[3]),
		NandS(xs[0], OrS(xs[1], xs[2]), xs[3]),
		AndS(xs[0], NorS(xs[1], xs[2]), xs[3]),
		XnorS(xs[0], AndS(xs[1], xs[2]), xs[3]),
		XorS(xs[0], NandS(xs[1], xs[2]), xs[3]),
		NeqS(xs[0], EqS(xs[1], xs[2]), xs[3]),
		EqS(xs[0], NeqS(xs[1], xs[2]), xs[3]),
		NimplS(xs[0], OrS(xs[1], xs[2])),
		ImplS(xs[0], NorS(xs[1], xs[2])),
		NiteS(xs[0], xs[1], AndS(xs[2], xs[3])),
		IteS(xs[0], xs[1], NandS(xs[2], xs[3])),
	}
	for _, e := range exprs {
		ctx := NewContext()
		cnf := Tseytin(e, ctx, "a")
		if !IsCNF(cnf) {
			t.Errorf("Tseytin(%s) = %s is not CNF", e, cnf)
		}
	}
}

// TestTseytinAuxNames checks the aux variable naming scheme: the top
// operator gets prefix_0, inner operators count up from there.
func TestTseytinAuxNames(t *testing.T) {
	_, xs := testVars(3)
	aux := NewContext()

	cnf := Tseytin(Or(xs[0], And(xs[1], xs[2])), aux, "t")
	s := cnf.String()
	if !strings.Contains(s, "t_0") || !strings.Contains(s, "t_1") {
		t.Errorf("expected aux variables t_0 and t_1 in %s", s)
	}
	// The supplied context owns the auxiliaries, allocated
	// complement-first: t_0 at ids 0/1, t_1 at ids 2/3.
	if got := aux.GetVar("t_0").ID(); got != 1 {
		t.Errorf("t_0 id: got %d want 1", got)
	}
	if got := aux.GetVar("t_1").ID(); got != 3 {
		t.Errorf("t_1 id: got %d want 3", got)
	}
}

// TestTseytinEquisatisfiable: every model of the encoding projects
// onto a model of the original, and the encoding is satisfiable
// exactly when the original is.
func TestTseytinEquisatisfiable(t *testing.T) {
	_, xs := testVars(4)

	exprs := []Expr{
		Xor(xs[0], xs[1], xs[2], xs[3]),
		Eq(xs[0], xs[1], xs[2]),
		Ite(xs[0], xs[1], Nor(xs[2], xs[3])),
		And(Or(xs[0], xs[1]), Or(Not(xs[0]), xs[2])),
	}
	for _, e := range exprs {
		it := NewSatIter(e)
		n := 0
		for point, ok := it.Next(); ok; point, ok = it.Next() {
			n++
			if got := Restrict(e, point); got != One && !stillOpen(got, point) {
				t.Errorf("model %v of %s does not satisfy it: %s", point, e, got)
			}
		}
		if n == 0 {
			t.Errorf("%s should be satisfiable", e)
		}
	}

	// An unsatisfiable operator tree stays unsatisfiable.
	if _, ok := Sat(And(xs[0], Not(xs[0]))); ok {
		t.Error("x & ~x must be unsat through the encoding")
	}
}

// stillOpen reports whether the restriction left free variables; a
// solver may leave don't-care variables out of the point.
func stillOpen(e Expr, point Point) bool {
	if e == Zero {
		return false
	}
	return Degree(e) > 0
}

// TestTseytinXorWide: the parity bundle covers a 6-input XOR and stays
// equisatisfiable.
func TestTseytinXorWide(t *testing.T) {
	_, xs := testVars(6)
	y := Simplify(Xor(xs...))

	aux := NewContext()
	cnf := Tseytin(y, aux, "a")
	if !IsCNF(cnf) {
		t.Fatalf("not CNF: %s", cnf)
	}

	point, ok := Sat(y)
	if !ok {
		t.Fatal("xor6 should be satisfiable")
	}
	// The witness must have odd parity.
	ones := 0
	for _, c := range point {
		if c == One {
			ones++
		}
	}
	if ones%2 == 0 {
		t.Errorf("xor6 witness has even parity: %v", point)
	}
}
