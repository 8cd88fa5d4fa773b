package bx

import "slices"

// Array is a fixed-width vector of expressions, the building block for
// multi-bit signals. Arrays are immutable; every operation returns a
// new array. Elementwise operations require equal widths.
type Array struct {
	items []Expr
}

// NewArray builds an array over the given items.
func NewArray(items ...Expr) *Array {
	return &Array{items: slices.Clone(items)}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

// At returns the element at index i.
func (a *Array) At(i int) Expr { return a.items[i] }

// Slice returns the sub-array [i, j).
func (a *Array) Slice(i, j int) *Array {
	return NewArray(a.items[i:j]...)
}

// Concat returns the concatenation of a followed by b.
func (a *Array) Concat(b *Array) *Array {
	items := make([]Expr, 0, len(a.items)+len(b.items))
	items = append(items, a.items...)
	return &Array{items: append(items, b.items...)}
}

// Repeat returns a repeated n times.
func (a *Array) Repeat(n int) *Array {
	items := make([]Expr, 0, n*len(a.items))
	for range n {
		items = append(items, a.items...)
	}
	return &Array{items: items}
}

// ZExt zero-extends the array by n elements.
func (a *Array) ZExt(n int) *Array {
	items := slices.Clone(a.items)
	for range n {
		items = append(items, Zero)
	}
	return &Array{items: items}
}

// SExt sign-extends the array by n copies of its last element. The
// array must not be empty.
func (a *Array) SExt(n int) *Array {
	items := slices.Clone(a.items)
	last := items[len(items)-1]
	for range n {
		items = append(items, last)
	}
	return &Array{items: items}
}

// Invert returns the elementwise negation.
func (a *Array) Invert() *Array {
	return a.mapItems(Not)
}

// Or returns the elementwise disjunction with b.
func (a *Array) Or(b *Array) *Array { return a.zip(b, KOr) }

// And returns the elementwise conjunction with b.
func (a *Array) And(b *Array) *Array { return a.zip(b, KAnd) }

// Xor returns the elementwise parity with b.
func (a *Array) Xor(b *Array) *Array { return a.zip(b, KXor) }

func (a *Array) zip(b *Array, kind Kind) *Array {
	if len(a.items) != len(b.items) {
		panic("bx: arrays differ in width")
	}
	items := make([]Expr, len(a.items))
	for i := range a.items {
		items[i] = fromArgs(kind, []Expr{a.items[i], b.items[i]})
	}
	return &Array{items: items}
}

// Simplify simplifies every element.
func (a *Array) Simplify() *Array {
	return a.mapItems(Simplify)
}

// Compose substitutes variables in every element.
func (a *Array) Compose(m VarMap) *Array {
	return a.mapItems(func(e Expr) Expr { return Compose(e, m) })
}

// Restrict restricts every element to the given point.
func (a *Array) Restrict(p Point) *Array {
	return a.mapItems(func(e Expr) Expr { return Restrict(e, p) })
}

// Equiv reports whether the arrays are elementwise equivalent. Arrays
// of different widths are never equivalent.
func (a *Array) Equiv(b *Array) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !Equiv(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}

// OrReduce returns the disjunction of all elements.
func (a *Array) OrReduce() Expr { return Or(a.items...) }

// NorReduce returns the negated disjunction of all elements.
func (a *Array) NorReduce() Expr { return Nor(a.items...) }

// AndReduce returns the conjunction of all elements.
func (a *Array) AndReduce() Expr { return And(a.items...) }

// NandReduce returns the negated conjunction of all elements.
func (a *Array) NandReduce() Expr { return Nand(a.items...) }

// XorReduce returns the parity of all elements.
func (a *Array) XorReduce() Expr { return Xor(a.items...) }

// XnorReduce returns the negated parity of all elements.
func (a *Array) XnorReduce() Expr { return Xnor(a.items...) }

func (a *Array) mapItems(f func(Expr) Expr) *Array {
	items := make([]Expr, len(a.items))
	for i, item := range a.items {
		items[i] = f(item)
	}
	return &Array{items: items}
}
