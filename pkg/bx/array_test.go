package bx

import "testing"

func TestArrayBasics(t *testing.T) {
	_, xs := testVars(4)

	a := NewArray(xs...)
	if a.Len() != 4 {
		t.Fatalf("len: got %d", a.Len())
	}
	if a.At(2) != xs[2] {
		t.Error("At returned the wrong element")
	}

	s := a.Slice(1, 3)
	if s.Len() != 2 || s.At(0) != xs[1] || s.At(1) != xs[2] {
		t.Error("Slice returned the wrong window")
	}

	c := a.Slice(0, 2).Concat(a.Slice(2, 4))
	if c.Len() != 4 || c.At(3) != xs[3] {
		t.Error("Concat broken")
	}

	r := a.Slice(0, 1).Repeat(3)
	if r.Len() != 3 || r.At(2) != xs[0] {
		t.Error("Repeat broken")
	}
}

func TestArrayExtend(t *testing.T) {
	_, xs := testVars(2)

	z := NewArray(xs...).ZExt(2)
	if z.Len() != 4 || z.At(2) != Zero || z.At(3) != Zero {
		t.Error("ZExt must append zeros")
	}

	s := NewArray(xs...).SExt(2)
	if s.Len() != 4 || s.At(2) != xs[1] || s.At(3) != xs[1] {
		t.Error("SExt must repeat the top element")
	}
}

func TestArrayElementwise(t *testing.T) {
	_, xs := testVars(4)

	a := NewArray(xs[0], xs[1])
	b := NewArray(xs[2], xs[3])

	inv := a.Invert()
	if inv.At(0).String() != "~x_0" || inv.At(1).String() != "~x_1" {
		t.Error("Invert broken")
	}

	or := a.Or(b)
	if or.At(0).String() != "Or(x_0, x_2)" || or.At(1).String() != "Or(x_1, x_3)" {
		t.Errorf("Or broken: %s, %s", or.At(0), or.At(1))
	}
	and := a.And(b)
	if and.At(1).String() != "And(x_1, x_3)" {
		t.Errorf("And broken: %s", and.At(1))
	}
	xor := a.Xor(b)
	if xor.At(0).String() != "Xor(x_0, x_2)" {
		t.Errorf("Xor broken: %s", xor.At(0))
	}
}

func TestArrayReduce(t *testing.T) {
	_, xs := testVars(3)
	a := NewArray(xs...)

	if got := a.OrReduce().String(); got != "Or(x_0, x_1, x_2)" {
		t.Errorf("OrReduce: %s", got)
	}
	if got := a.NorReduce().String(); got != "Nor(x_0, x_1, x_2)" {
		t.Errorf("NorReduce: %s", got)
	}
	if got := a.AndReduce().String(); got != "And(x_0, x_1, x_2)" {
		t.Errorf("AndReduce: %s", got)
	}
	if got := a.XorReduce().String(); got != "Xor(x_0, x_1, x_2)" {
		t.Errorf("XorReduce: %s", got)
	}
	if !Equiv(a.NandReduce(), Not(a.AndReduce())) {
		t.Error("NandReduce must invert AndReduce")
	}
	if !Equiv(a.XnorReduce(), Not(a.XorReduce())) {
		t.Error("XnorReduce must invert XorReduce")
	}

	empty := NewArray()
	if empty.OrReduce() != Zero || empty.AndReduce() != One || empty.XorReduce() != Zero {
		t.Error("empty reduces must return the identities")
	}
}

func TestArraySimplifyRestrict(t *testing.T) {
	_, xs := testVars(2)

	a := NewArray(Or(xs[0], Zero), And(xs[1], One))
	s := a.Simplify()
	if s.At(0) != xs[0] || s.At(1) != xs[1] {
		t.Errorf("Simplify: got %s, %s", s.At(0), s.At(1))
	}

	r := a.Restrict(Point{xs[0].(*Literal): One})
	if r.At(0) != One {
		t.Errorf("Restrict: got %s", r.At(0))
	}

	m := VarMap{xs[0].(*Literal): xs[1]}
	c := a.Compose(m)
	if !Equiv(c.At(0), Or(xs[1], Zero)) {
		t.Errorf("Compose: got %s", c.At(0))
	}
}

func TestArrayEquiv(t *testing.T) {
	_, xs := testVars(2)

	a := NewArray(Impl(xs[0], xs[1]))
	b := NewArray(Or(Not(xs[0]), xs[1]))
	if !a.Equiv(b) {
		t.Error("p=>q should be equivalent to ~p|q elementwise")
	}
	if a.Equiv(NewArray(xs[0])) {
		t.Error("different functions must not be equivalent")
	}
	if a.Equiv(NewArray(a.At(0), a.At(0))) {
		t.Error("different widths must not be equivalent")
	}
}
