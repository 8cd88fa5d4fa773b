package bx

import "testing"

func TestSmoothing(t *testing.T) {
	_, xs := testVars(2)
	x := xs[0].(*Literal)

	// Smoothing x out of x & y leaves y; out of x leaves 1.
	if got := Smoothing(And(xs[0], xs[1]), []*Literal{x}); !Equiv(got, xs[1]) {
		t.Errorf("smoothing(x&y, x) = %s want y", got)
	}
	if got := Smoothing(xs[0], []*Literal{x}); got != One {
		t.Errorf("smoothing(x, x) = %s want 1", got)
	}
}

func TestConsensus(t *testing.T) {
	_, xs := testVars(2)
	x := xs[0].(*Literal)

	// Consensus of x | y over x is y; of x over x is 0.
	if got := Consensus(Or(xs[0], xs[1]), []*Literal{x}); !Equiv(got, xs[1]) {
		t.Errorf("consensus(x|y, x) = %s want y", got)
	}
	if got := Consensus(xs[0], []*Literal{x}); got != Zero {
		t.Errorf("consensus(x, x) = %s want 0", got)
	}
}

func TestDerivative(t *testing.T) {
	_, xs := testVars(2)
	x := xs[0].(*Literal)

	// d(x ^ y)/dx = 1: the function always depends on x.
	if got := Derivative(Xor(xs[0], xs[1]), []*Literal{x}); got != One {
		t.Errorf("derivative(x^y, x) = %s want 1", got)
	}
	// d(y)/dx = 0: no dependence.
	if got := Derivative(xs[1], []*Literal{x}); got != Zero {
		t.Errorf("derivative(y, x) = %s want 0", got)
	}
	// d(x & y)/dx = y.
	if got := Derivative(And(xs[0], xs[1]), []*Literal{x}); !Equiv(got, xs[1]) {
		t.Errorf("derivative(x&y, x) = %s want y", got)
	}
}

func TestExpand(t *testing.T) {
	_, xs := testVars(3)
	x := xs[0].(*Literal)
	y := xs[1].(*Literal)

	e := Or(And(xs[0], xs[1]), xs[2])

	// Shannon expansion preserves the function, over one variable and
	// over two.
	got := Expand(e, []*Literal{x})
	if !Equiv(e, got) {
		t.Errorf("expand over x changed the function: %s", got)
	}

	got = Expand(e, []*Literal{x, y})
	if !Equiv(e, got) {
		t.Errorf("expand over x,y changed the function: %s", got)
	}

	// Expanding over no variables is the identity.
	if Expand(e, nil) != e {
		t.Error("expand over nothing must return the input")
	}
}

// TestQuantifierDuality: smoothing is the OR of the cofactors and
// consensus the AND, so consensus(f) implies f implies smoothing(f).
func TestQuantifierDuality(t *testing.T) {
	_, xs := testVars(3)
	x := xs[0].(*Literal)

	f := Ite(xs[0], xs[1], Xor(xs[1], xs[2]))
	sm := Smoothing(f, []*Literal{x})
	con := Consensus(f, []*Literal{x})

	if _, ok := Sat(And(con, Not(f))); ok {
		t.Error("consensus must imply the function")
	}
	if _, ok := Sat(And(f, Not(sm))); ok {
		t.Error("the function must imply its smoothing")
	}
}
