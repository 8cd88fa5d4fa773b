package bx

// Argset reducers: state machines that absorb the operands of a
// lattice, parity, or equality operator one at a time and collapse to
// canonical output. Tautologies and contradictions are detected during
// insertion so a dominator or an ill-formed operand short-circuits the
// rest of the scan. Operands are deduplicated by node identity, which
// is exact for interned atoms and a sharing-dependent optimisation for
// operator subtrees.

type latticeState uint8

const (
	latInfimum   latticeState = iota // no operands absorbed yet
	latBasic                         // at least one live operand
	latLogical                       // saw X; result is X unless dominated
	latSupremum                      // saw the dominator or a complement pair
	latIllogical                     // saw ?; terminal
)

// latticeArgSet reduces OR and AND, the two operators that form a
// bounded lattice: both have an identity (dropped), a dominator
// (absorbs everything), idempotence (duplicates dropped), and a
// complement law (x with ~x present yields the dominator).
type latticeArgSet struct {
	state     latticeState
	kind      Kind
	identity  Expr
	dominator Expr

	args []Expr
	seen map[Expr]struct{}
}

func newLatticeArgSet(kind Kind, identity, dominator Expr, args []Expr) *latticeArgSet {
	s := &latticeArgSet{
		kind:      kind,
		identity:  identity,
		dominator: dominator,
		seen:      make(map[Expr]struct{}),
	}
	for _, arg := range args {
		s.insert(Simplify(arg))
	}
	return s
}

func (s *latticeArgSet) insert(arg Expr) {
	switch s.state {
	case latIllogical:
		return

	case latSupremum:
		// Already dominated, but ? still trumps, and nested same-kind
		// operands must be scanned for it.
		if arg == Illogical {
			s.state = latIllogical
			return
		}
		if op, ok := arg.(*Operator); ok && op.kind == s.kind {
			for _, sub := range op.args {
				s.insert(sub)
			}
		}
		return
	}

	// infimum, basic, and logical share the remaining transitions.
	switch {
	case arg == Illogical:
		s.state = latIllogical

	case arg == s.dominator || s.hasComplement(arg):
		s.state = latSupremum

	case arg == Logical:
		s.state = latLogical

	case sameKind(arg, s.kind):
		for _, sub := range arg.(*Operator).args {
			s.insert(sub)
		}

	case arg != s.identity:
		if _, dup := s.seen[arg]; !dup {
			s.seen[arg] = struct{}{}
			s.args = append(s.args, arg)
		}
		if s.state == latInfimum {
			s.state = latBasic
		}
	}
}

func (s *latticeArgSet) hasComplement(arg Expr) bool {
	if _, ok := arg.(*Literal); !ok {
		return false
	}
	_, ok := s.seen[Not(arg)]
	return ok
}

func (s *latticeArgSet) reduce() Expr {
	switch s.state {
	case latInfimum:
		return s.identity
	case latLogical:
		return Logical
	case latSupremum:
		return s.dominator
	case latIllogical:
		return Illogical
	}
	if len(s.args) == 1 {
		return s.args[0]
	}
	return &Operator{kind: s.kind, simple: true, args: s.args}
}

func sameKind(arg Expr, kind Kind) bool {
	op, ok := arg.(*Operator)
	return ok && op.kind == kind
}

type xeState uint8

const (
	xeBasic xeState = iota
	xeLogical
	xeIllogical
)

// xorArgSet reduces XOR. It tracks a parity bit (true for XOR, toggled
// to produce XNOR) while cancelling duplicate operands, cancelling
// complement pairs with a parity flip, folding known constants into
// the parity, and splicing nested XOR/XNOR operands.
type xorArgSet struct {
	state  xeState
	parity bool

	args  []Expr // removal leaves a nil slot
	index map[Expr]int
}

func newXorArgSet(args []Expr) *xorArgSet {
	s := &xorArgSet{parity: true, index: make(map[Expr]int)}
	for _, arg := range args {
		s.insert(Simplify(arg))
	}
	return s
}

func (s *xorArgSet) insert(arg Expr) {
	switch s.state {
	case xeIllogical:
		return
	case xeLogical:
		if arg == Illogical {
			s.state = xeIllogical
		}
		return
	}

	switch {
	case arg == Illogical:
		s.state = xeIllogical

	case arg == Logical:
		s.state = xeLogical

	case arg == Zero || arg == One:
		s.parity = s.parity != (arg == One)

	// xor(x, y, z, z) <=> xor(x, y)
	case s.remove(arg):

	// xor(x, y, z, ~z) <=> xnor(x, y)
	case isLit(arg) && s.remove(Not(arg)):
		s.parity = !s.parity

	// xor(x, xor(y, z)) <=> xor(x, y, z)
	case sameKind(arg, KXor):
		for _, sub := range arg.(*Operator).args {
			s.insert(sub)
		}

	// xor(x, xnor(y, z)) <=> xnor(x, y, z)
	case sameKind(arg, KXnor):
		for _, sub := range arg.(*Operator).args {
			s.insert(sub)
		}
		s.parity = !s.parity

	default:
		s.index[arg] = len(s.args)
		s.args = append(s.args, arg)
	}
}

// remove drops arg from the accumulated set if present.
func (s *xorArgSet) remove(arg Expr) bool {
	i, ok := s.index[arg]
	if !ok {
		return false
	}
	delete(s.index, arg)
	s.args[i] = nil
	return true
}

func (s *xorArgSet) reduce() Expr {
	switch s.state {
	case xeLogical:
		return Logical
	case xeIllogical:
		return Illogical
	}

	live := make([]Expr, 0, len(s.args))
	for _, arg := range s.args {
		if arg != nil {
			live = append(live, arg)
		}
	}

	var y Expr
	switch len(live) {
	case 0:
		y = Zero
	case 1:
		y = live[0]
	default:
		y = &Operator{kind: KXor, simple: true, args: live}
	}

	if s.parity {
		return y
	}
	return Not(y)
}

// eqArgSet reduces EQ. Known constants collapse to has-zero/has-one
// flags; a complement pair forces both flags (nothing can equal both
// polarities). The finaliser rewrites a remaining single-sided
// constraint into NOR or AND of the survivors.
type eqArgSet struct {
	state   xeState
	hasZero bool
	hasOne  bool

	args []Expr
	seen map[Expr]struct{}
}

func newEqArgSet(args []Expr) *eqArgSet {
	s := &eqArgSet{seen: make(map[Expr]struct{})}
	for _, arg := range args {
		s.insert(Simplify(arg))
	}
	return s
}

func (s *eqArgSet) insert(arg Expr) {
	switch s.state {
	case xeIllogical:
		return
	case xeLogical:
		if arg == Illogical {
			s.state = xeIllogical
		}
		return
	}

	switch {
	case arg == Illogical:
		s.state = xeIllogical

	case arg == Logical:
		s.state = xeLogical

	case arg == Zero:
		s.hasZero = true
		if s.hasOne {
			s.clear()
		}

	case arg == One:
		s.hasOne = true
		if s.hasZero {
			s.clear()
		}

	case isLit(arg) && s.hasComplement(arg):
		s.hasZero = true
		s.hasOne = true
		s.clear()

	default:
		if _, dup := s.seen[arg]; !dup {
			s.seen[arg] = struct{}{}
			s.args = append(s.args, arg)
		}
	}
}

func (s *eqArgSet) hasComplement(arg Expr) bool {
	_, ok := s.seen[Not(arg)]
	return ok
}

func (s *eqArgSet) clear() {
	s.args = s.args[:0]
	clear(s.seen)
}

func (s *eqArgSet) reduce() Expr {
	switch s.state {
	case xeLogical:
		return Logical
	case xeIllogical:
		return Illogical
	}

	// eq(0, 1) <=> 0
	if s.hasZero && s.hasOne {
		return Zero
	}

	// eq() <=> eq(0) <=> eq(1) <=> eq(x) <=> 1
	n := len(s.args)
	if s.hasZero {
		n++
	}
	if s.hasOne {
		n++
	}
	if n < 2 {
		return One
	}

	// eq(0, x, y) <=> nor(x, y)
	if s.hasZero {
		return NorS(s.args...)
	}
	// eq(1, x, y) <=> x & y
	if s.hasOne {
		return AndS(s.args...)
	}

	return &Operator{kind: KEq, simple: true, args: s.args}
}

func isLit(e Expr) bool {
	_, ok := e.(*Literal)
	return ok
}
