// Package ability decides whether named actions may be used and spends the
// right state when they are. It composes four gating primitives - limited
// use charges, per-action cooldowns, a shared global cooldown and resource
// pool costs - into one ready/trigger decision with a fixed precedence.
package ability

// ReplenishStrategy controls how much a replenish call restores.
type ReplenishStrategy uint8

const (
	// OneAtATime recovers a single charge per replenish.
	// Usually paired with ConstantlyRefresh.
	OneAtATime ReplenishStrategy = iota

	// AllAtOnce recovers every missing charge in one replenish.
	// Usually paired with RefreshWhenEmpty.
	AllAtOnce
)

// CooldownStrategy controls how a coupled cooldown's completed cycles feed
// back into charges during Cooldown.Tick.
type CooldownStrategy uint8

const (
	// Ignore decouples the cooldown: ticking never touches charges.
	Ignore CooldownStrategy = iota

	// ConstantlyRefresh replenishes one charge for every full cooldown
	// cycle that elapses, whenever charges are below max.
	ConstantlyRefresh

	// RefreshWhenEmpty refills the counter to capacity once it is fully
	// depleted and a cycle completes.
	RefreshWhenEmpty
)

// Charges counts how many times an action can be used before it must
// recover. Invariant: 0 <= current <= max.
type Charges struct {
	current uint8
	max     uint8

	// ReplenishStrategy decides how much Replenish restores.
	ReplenishStrategy ReplenishStrategy

	// CooldownStrategy decides how a coupled Cooldown's tick drives
	// replenishment.
	CooldownStrategy CooldownStrategy
}

// NewCharges creates a full counter of max charges with the given
// strategies.
func NewCharges(max uint8, replenish ReplenishStrategy, cooldown CooldownStrategy) *Charges {
	return &Charges{
		current:           max,
		max:               max,
		ReplenishStrategy: replenish,
		CooldownStrategy:  cooldown,
	}
}

// SimpleCharges counts uses with no cooldown coupling, recovering one
// charge per replenish. Double jumps, dodge stocks.
func SimpleCharges(max uint8) *Charges {
	return NewCharges(max, OneAtATime, Ignore)
}

// AmmoCharges counts uses with no cooldown coupling, recovering everything
// on replenish. Magazines reloaded by an explicit action.
func AmmoCharges(max uint8) *Charges {
	return NewCharges(max, AllAtOnce, Ignore)
}

// ReplenishOne recovers a charge every time the coupled cooldown cycles.
// Stacking spell charges.
func ReplenishOne(max uint8) *Charges {
	return NewCharges(max, OneAtATime, ConstantlyRefresh)
}

// ReplenishAll refills completely when the coupled cooldown cycles after
// the counter ran dry. Burst weapons with a long recovery.
func ReplenishAll(max uint8) *Charges {
	return NewCharges(max, AllAtOnce, RefreshWhenEmpty)
}

// Current returns the number of charges available right now.
func (c *Charges) Current() uint8 {
	return c.current
}

// Max returns the counter's capacity.
func (c *Charges) Max() uint8 {
	return c.max
}

// Available reports whether at least one charge can be spent.
func (c *Charges) Available() bool {
	return c.current > 0
}

// Expend spends one charge. Fails with ErrNoCharges, changing nothing,
// when the counter is empty.
func (c *Charges) Expend() error {
	if c.current == 0 {
		return ErrNoCharges
	}
	c.current--
	return nil
}

// AddCharges adds count charges, capping at max. Returns how many charges
// did not fit.
func (c *Charges) AddCharges(count uint8) uint8 {
	total := uint16(c.current) + uint16(count)
	if total <= uint16(c.max) {
		c.current = uint8(total)
		return 0
	}
	excess := uint8(total - uint16(c.max))
	c.current = c.max
	return excess
}

// SetCharges stores count, capping at max. Returns how many charges did
// not fit.
func (c *Charges) SetCharges(count uint8) uint8 {
	if count <= c.max {
		c.current = count
		return 0
	}
	excess := count - c.max
	c.current = c.max
	return excess
}

// SetMaxCharges changes the capacity, clamping current down if it now
// exceeds the new capacity.
func (c *Charges) SetMaxCharges(max uint8) {
	c.max = max
	if c.current > c.max {
		c.current = c.max
	}
}

// Replenish restores charges according to the ReplenishStrategy and
// returns the amount that overflowed the cap, for callers that track
// spillover.
func (c *Charges) Replenish() uint8 {
	switch c.ReplenishStrategy {
	case AllAtOnce:
		return c.AddCharges(c.max)
	default:
		return c.AddCharges(1)
	}
}
