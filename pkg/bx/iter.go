package bx

// Walk visits every distinct node reachable from e exactly once, in
// depth-first post-order (operands before their operator). Return
// false from fn to stop the walk early.
func Walk(e Expr, fn func(Expr) bool) {
	walk(e, fn, make(map[Expr]struct{}))
}

func walk(e Expr, fn func(Expr) bool, seen map[Expr]struct{}) bool {
	if _, ok := seen[e]; ok {
		return true
	}
	seen[e] = struct{}{}

	if op, ok := e.(*Operator); ok {
		for _, arg := range op.args {
			if !walk(arg, fn, seen) {
				return false
			}
		}
	}
	return fn(e)
}

// PointIter counts through all 2^n assignments of the given variables,
// least-significant variable first.
type PointIter struct {
	vars    []*Literal
	counter []bool // n+1 bits; the top bit marks exhaustion
	started bool
}

// NewPointIter returns an iterator over the assignment space of vars.
func NewPointIter(vars []*Literal) *PointIter {
	return &PointIter{
		vars:    vars,
		counter: make([]bool, len(vars)+1),
	}
}

// Next returns the next point. ok is false after all 2^n points have
// been produced.
func (it *PointIter) Next() (Point, bool) {
	if it.started {
		it.increment()
	}
	it.started = true

	if it.counter[len(it.vars)] {
		return nil, false
	}

	point := make(Point, len(it.vars))
	for i, x := range it.vars {
		if it.counter[i] {
			point[x] = One
		} else {
			point[x] = Zero
		}
	}
	return point, true
}

func (it *PointIter) increment() {
	for i := range it.counter {
		it.counter[i] = !it.counter[i]
		if it.counter[i] {
			break
		}
	}
}

// CofactorIter produces the 2^n cofactors of an expression over the
// given variables, one restriction per assignment.
type CofactorIter struct {
	f      Expr
	points *PointIter
}

// Cofactors returns a lazy iterator over the cofactors of e with
// respect to vars.
func Cofactors(e Expr, vars []*Literal) *CofactorIter {
	return &CofactorIter{f: e, points: NewPointIter(vars)}
}

// Next returns the next cofactor. ok is false when the assignment
// space is exhausted.
func (it *CofactorIter) Next() (Expr, bool) {
	p, ok := it.points.Next()
	if !ok {
		return nil, false
	}
	return Restrict(it.f, p), true
}
