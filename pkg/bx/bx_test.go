package bx

import "fmt"

// testVars returns a fresh context and n variables named x_0..x_{n-1},
// the fixture every suite in this package shares.
func testVars(n int) (*Context, []Expr) {
	ctx := NewContext()
	xs := make([]Expr, n)
	for i := range xs {
		xs[i] = ctx.GetVar(fmt.Sprintf("x_%d", i))
	}
	return ctx, xs
}
