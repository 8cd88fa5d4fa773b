package main

import (
	"fmt"
	"strings"

	"github.com/oisee/boolexpr/pkg/bx"
)

// parseExpr reads the printer's own syntax back into an expression:
// operator calls like Or(x_0, ~x_1, And(a, b)), the constant glyphs
// 0 1 X ?, and ~name literals. Variables are interned into ctx.
func parseExpr(ctx *bx.Context, input string) (bx.Expr, error) {
	p := &parser{ctx: ctx, src: input}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("trailing input at offset %d: %q", p.pos, p.rest())
	}
	return e, nil
}

type parser struct {
	ctx *bx.Context
	src string
	pos int
}

func (p *parser) expr() (bx.Expr, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of input")
	}

	switch c := p.src[p.pos]; {
	case c == '~':
		p.pos++
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		return bx.Not(e), nil
	case c == '0':
		p.pos++
		return bx.Zero, nil
	case c == '1':
		p.pos++
		return bx.One, nil
	case c == '?':
		p.pos++
		return bx.Illogical, nil
	case isIdentStart(c):
		return p.identOrCall()
	}
	return nil, fmt.Errorf("unexpected character %q at offset %d", p.src[p.pos], p.pos)
}

func (p *parser) identOrCall() (bx.Expr, error) {
	name := p.ident()

	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		return p.call(name)
	}

	// X is the logical-constant glyph, not a variable.
	if name == "X" {
		return bx.Logical, nil
	}
	return p.ctx.GetVar(name), nil
}

func (p *parser) call(name string) (bx.Expr, error) {
	p.pos++ // consume '('

	var args []bx.Expr
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ')' {
		p.pos++
	} else {
		for {
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			p.skipSpace()
			if p.pos >= len(p.src) {
				return nil, fmt.Errorf("unterminated %s(", name)
			}
			if p.src[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.src[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, fmt.Errorf("expected ',' or ')' at offset %d", p.pos)
		}
	}

	return buildOp(name, args)
}

func buildOp(name string, args []bx.Expr) (bx.Expr, error) {
	switch name {
	case "Or":
		return bx.Or(args...), nil
	case "Nor":
		return bx.Nor(args...), nil
	case "And":
		return bx.And(args...), nil
	case "Nand":
		return bx.Nand(args...), nil
	case "Xor":
		return bx.Xor(args...), nil
	case "Xnor":
		return bx.Xnor(args...), nil
	case "Equal":
		return bx.Eq(args...), nil
	case "Unequal":
		return bx.Neq(args...), nil
	case "Implies":
		if len(args) != 2 {
			return nil, fmt.Errorf("Implies takes 2 arguments, got %d", len(args))
		}
		return bx.Impl(args[0], args[1]), nil
	case "NotImplies":
		if len(args) != 2 {
			return nil, fmt.Errorf("NotImplies takes 2 arguments, got %d", len(args))
		}
		return bx.Nimpl(args[0], args[1]), nil
	case "IfThenElse":
		if len(args) != 3 {
			return nil, fmt.Errorf("IfThenElse takes 3 arguments, got %d", len(args))
		}
		return bx.Ite(args[0], args[1], args[2]), nil
	case "NotIfThenElse":
		if len(args) != 3 {
			return nil, fmt.Errorf("NotIfThenElse takes 3 arguments, got %d", len(args))
		}
		return bx.Nite(args[0], args[1], args[2]), nil
	case "OneHot":
		return bx.OneHot(args...), nil
	case "OneHot0":
		return bx.OneHot0(args...), nil
	}
	return nil, fmt.Errorf("unknown operator %q", name)
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) && isIdent(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) rest() string {
	r := p.src[p.pos:]
	if len(r) > 16 {
		r = r[:16] + "..."
	}
	return strings.TrimSpace(r)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
