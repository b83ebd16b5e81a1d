package ability

// ChargeState holds the charge counters for every action of type A that
// has one. A missing entry means the action is unconstrained along the
// charge dimension and always passes.
type ChargeState[A comparable] struct {
	charges map[A]*Charges
}

// NewChargeState creates an empty charge table.
func NewChargeState[A comparable]() *ChargeState[A] {
	return &ChargeState[A]{
		charges: make(map[A]*Charges),
	}
}

// Set installs the counter for action, replacing any previous entry.
// Returns the receiver for construction chaining.
func (s *ChargeState[A]) Set(action A, charges *Charges) *ChargeState[A] {
	s.charges[action] = charges
	return s
}

// Get returns the counter for action, or nil if none is configured.
// The pointer is live: mutations through it are seen by the state.
func (s *ChargeState[A]) Get(action A) *Charges {
	return s.charges[action]
}

// Remove deletes the counter for action, making it unconstrained again.
func (s *ChargeState[A]) Remove(action A) {
	delete(s.charges, action)
}

// Len returns the number of configured counters.
func (s *ChargeState[A]) Len() int {
	return len(s.charges)
}

// Available reports whether action has a charge to spend.
// Unconstrained actions are always available.
func (s *ChargeState[A]) Available(action A) bool {
	charges := s.charges[action]
	if charges == nil {
		return true
	}
	return charges.Available()
}

// Expend spends one of action's charges. Unconstrained actions succeed
// without spending anything; an empty counter fails with ErrNoCharges.
func (s *ChargeState[A]) Expend(action A) error {
	charges := s.charges[action]
	if charges == nil {
		return nil
	}
	return charges.Expend()
}

// RefillAll restores every counter in the set to its maximum.
func (s *ChargeState[A]) RefillAll() {
	for _, charges := range s.charges {
		charges.SetCharges(charges.Max())
	}
}

// Replenish restores action's charges per its ReplenishStrategy.
// No-op for unconstrained actions.
func (s *ChargeState[A]) Replenish(action A) {
	if charges := s.charges[action]; charges != nil {
		charges.Replenish()
	}
}
