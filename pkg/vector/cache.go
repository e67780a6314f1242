package vector

// Definition is a reusable shape registered under a numeric id.
type Definition struct {
	ID        int
	Signature Signature
}

func NewCache() *Cache {
	return &Cache{ids: make(map[Signature]int)}
}

// Cache assigns ids to shape signatures in first-seen order, starting at 0.
// An id is never reassigned. A Cache belongs to exactly one document.
type Cache struct {
	ids  map[Signature]int
	defs []Definition
}

// LookupOrCreate returns the id for sig, registering a new definition if sig
// has not been seen yet. created reports whether that happened.
func (c *Cache) LookupOrCreate(sig Signature) (id int, created bool) {
	if id, ok := c.ids[sig]; ok {
		return id, false
	}

	id = len(c.defs)
	c.ids[sig] = id
	c.defs = append(c.defs, Definition{ID: id, Signature: sig})
	return id, true
}

// Definitions returns all definitions ordered by id.
func (c *Cache) Definitions() []Definition {
	return c.defs
}

func (c *Cache) Len() int {
	return len(c.defs)
}
