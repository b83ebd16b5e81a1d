package pool

// Costs stores the per-ability cost, in terms of one pool's quantity type.
// An ability with no entry costs nothing from that pool.
type Costs[A comparable, Q Scalar] struct {
	costs map[A]Q
}

// NewCosts creates an empty cost table.
func NewCosts[A comparable, Q Scalar]() *Costs[A, Q] {
	return &Costs[A, Q]{
		costs: make(map[A]Q),
	}
}

// Set assigns the cost of action, replacing any previous entry.
// Returns the receiver for construction chaining.
func (c *Costs[A, Q]) Set(action A, cost Q) *Costs[A, Q] {
	c.costs[action] = cost
	return c
}

// Get returns the cost of action and whether one is configured.
func (c *Costs[A, Q]) Get(action A) (Q, bool) {
	cost, ok := c.costs[action]
	return cost, ok
}

// Remove deletes the cost entry for action, making it free again.
func (c *Costs[A, Q]) Remove(action A) {
	delete(c.costs, action)
}

// Len returns the number of configured costs.
func (c *Costs[A, Q]) Len() int {
	return len(c.costs)
}

// Available reports whether p can cover the cost of action.
// Actions without a configured cost are always affordable.
func (c *Costs[A, Q]) Available(action A, p Pool[Q]) error {
	cost, ok := c.costs[action]
	if !ok {
		return nil
	}
	return Available(p, cost)
}

// PayCost expends the cost of action from p.
//
// Fails with ErrInsufficient, leaving the pool untouched, when the pool
// cannot cover the cost. Actions without a configured cost succeed without
// touching the pool.
func (c *Costs[A, Q]) PayCost(action A, p Pool[Q]) error {
	cost, ok := c.costs[action]
	if !ok {
		return nil
	}
	return p.Expend(cost)
}
