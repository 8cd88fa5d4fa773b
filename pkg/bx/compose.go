package bx

// Compose substitutes expressions for variables in a single pass. A
// complement whose variable appears in the mapping becomes the
// negation of its replacement. Unmapped subtrees keep their structural
// sharing.
func Compose(e Expr, m VarMap) Expr {
	switch t := e.(type) {
	case *Constant:
		return t
	case *Literal:
		if t.kind == KVar {
			if r, ok := m[t]; ok {
				return r
			}
			return t
		}
		if r, ok := m[t.Abs()]; ok {
			return Not(r)
		}
		return t
	case *Operator:
		return t.transform(func(arg Expr) Expr { return Compose(arg, m) })
	}
	panic("bx: unknown node type")
}

// Restrict is the specialisation of Compose where every substituted
// value is a constant; the result is simplified on the way out.
func Restrict(e Expr, p Point) Expr {
	switch t := e.(type) {
	case *Constant:
		return t
	case *Literal:
		if t.kind == KVar {
			if c, ok := p[t]; ok {
				return c
			}
			return t
		}
		if c, ok := p[t.Abs()]; ok {
			return Not(c)
		}
		return t
	case *Operator:
		return Simplify(t.transform(func(arg Expr) Expr { return Restrict(arg, p) }))
	}
	panic("bx: unknown node type")
}
