package bx

import (
	"fmt"
	"strings"
)

// ToDot renders the expression DAG in Graphviz dot syntax. Atoms are
// box nodes labelled like the string printer, operators are circle
// nodes labelled with the compact operator names, and edges run from
// operand to operator with rankdir=BT so the root ends up on top.
// Shared subgraphs appear once.
func ToDot(e Expr) string {
	ids := make(map[Expr]int)
	var order []Expr
	Walk(e, func(n Expr) bool {
		ids[n] = len(order)
		order = append(order, n)
		return true
	})

	var b strings.Builder
	b.WriteString("graph {")
	b.WriteString(" rankdir=BT;")

	for i, n := range order {
		switch t := n.(type) {
		case *Operator:
			fmt.Fprintf(&b, " n%d [label=%q,shape=circle];", i, opNameCompact(t.kind))
		default:
			fmt.Fprintf(&b, " n%d [label=%q,shape=box];", i, n.String())
		}
	}

	for i, n := range order {
		op, ok := n.(*Operator)
		if !ok {
			continue
		}
		for _, arg := range op.args {
			fmt.Fprintf(&b, " n%d -- n%d;", ids[arg], i)
		}
	}

	b.WriteString(" }")
	return b.String()
}
