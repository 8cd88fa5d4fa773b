package bx

import "strings"

// String renders a constant as its glyph: 0, 1, X (logical),
// ? (illogical).
func (c *Constant) String() string {
	switch c {
	case Zero:
		return "0"
	case One:
		return "1"
	case Logical:
		return "X"
	}
	return "?"
}

// String renders a literal as its variable name, prefixed with ~ for
// the complement.
func (l *Literal) String() string {
	if l.kind == KComp {
		return "~" + l.Name()
	}
	return l.Name()
}

// String renders an operator as Name(arg, ...) using the camel-case
// operator names.
func (op *Operator) String() string {
	var b strings.Builder
	b.WriteString(opNameCamel(op.kind))
	b.WriteByte('(')
	for i, arg := range op.args {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func opNameCamel(k Kind) string {
	switch k {
	case KNor:
		return "Nor"
	case KOr:
		return "Or"
	case KNand:
		return "Nand"
	case KAnd:
		return "And"
	case KXnor:
		return "Xnor"
	case KXor:
		return "Xor"
	case KNeq:
		return "Unequal"
	case KEq:
		return "Equal"
	case KNimpl:
		return "NotImplies"
	case KImpl:
		return "Implies"
	case KNite:
		return "NotIfThenElse"
	case KIte:
		return "IfThenElse"
	}
	panic("bx: unknown operator kind")
}

func opNameCompact(k Kind) string {
	switch k {
	case KNor:
		return "~or"
	case KOr:
		return "or"
	case KNand:
		return "~and"
	case KAnd:
		return "and"
	case KXnor:
		return "~xor"
	case KXor:
		return "xor"
	case KNeq:
		return "~eq"
	case KEq:
		return "eq"
	case KNimpl:
		return "~impl"
	case KImpl:
		return "impl"
	case KNite:
		return "~ite"
	case KIte:
		return "ite"
	}
	panic("bx: unknown operator kind")
}
