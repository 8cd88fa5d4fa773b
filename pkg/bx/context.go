package bx

// ctxCount gives every Context a creation sequence number. Clause
// canonicalisation needs a total order on literals, and literals from
// different contexts are ordered by their context's age.
var ctxCount uint64

// Context is a variable-naming universe. It interns variables by name
// and issues paired complement/variable ids: the complement gets the
// even id, the variable the odd id that follows, so negation is a
// low-bit flip. Ids are never reused.
//
// A Context mutates on variable creation and must not be shared
// between goroutines while variables are still being created. The
// literals it hands out are immutable and freely shareable.
type Context struct {
	seq    uint64
	nextID uint32

	vars  map[string]*Literal // name -> positive literal
	names map[uint32]string   // slot (id >> 1) -> name
	lits  map[uint32]*Literal // id -> literal
}

// NewContext returns an empty variable universe.
func NewContext() *Context {
	ctxCount++
	return &Context{
		seq:   ctxCount,
		vars:  make(map[string]*Literal),
		names: make(map[uint32]string),
		lits:  make(map[uint32]*Literal),
	}
}

// GetVar returns the positive literal for name, allocating the
// complement/variable id pair on first request.
func (c *Context) GetVar(name string) *Literal {
	if x, ok := c.vars[name]; ok {
		return x
	}
	xn := &Literal{ctx: c, id: c.nextID, kind: KComp}
	c.nextID++
	x := &Literal{ctx: c, id: c.nextID, kind: KVar}
	c.nextID++

	c.vars[name] = x
	c.names[xn.id>>1] = name
	c.lits[xn.id] = xn
	c.lits[x.id] = x
	return x
}

// GetLit returns the literal with the given id. The id must have been
// issued by this context.
func (c *Context) GetLit(id uint32) *Literal { return c.lits[id] }

// GetName returns the variable name for the given literal id (either
// polarity).
func (c *Context) GetName(id uint32) string { return c.names[id>>1] }

// litLess orders literals by (context age, id). It is the clause
// canonicalisation order; identity of a literal includes its context.
func litLess(a, b *Literal) bool {
	if a.ctx != b.ctx {
		return a.ctx.seq < b.ctx.seq
	}
	return a.id < b.id
}
