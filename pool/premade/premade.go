// Package premade ships ready-to-use resource pools for the common cases:
// life (health) and mana. Both are backed by the same clamped reservoir;
// their quantity types are distinct so a Mana cost can never be paid from
// a LifePool by accident.
package premade

import (
	"fmt"
	"time"

	"github.com/lixenwraith/abilitygate/pool"
)

// Life is a quantity of health. Used for damage, healing and regen rates.
type Life float64

// Mana is a quantity of magical resource spent on casting.
type Mana float64

// Reservoir is a bounded, regenerating quantity with a zero minimum.
// It implements pool.RegeneratingPool for its quantity type.
type Reservoir[Q pool.Scalar] struct {
	current Q
	max     Q
	regen   Q
}

// NewReservoir creates a reservoir holding current of max, regenerating at
// rate per second. Invalid static configuration is a programmer error:
// this panics if max < 0 or current lies outside [0, max].
func NewReservoir[Q pool.Scalar](current, max, rate Q) *Reservoir[Q] {
	if max < 0 {
		panic(fmt.Sprintf("pool max %v below minimum", float64(max)))
	}
	if current < 0 || current > max {
		panic(fmt.Sprintf("pool current %v outside [0, %v]", float64(current), float64(max)))
	}
	return &Reservoir[Q]{
		current: current,
		max:     max,
		regen:   rate,
	}
}

// Min returns the fixed zero point of the reservoir.
func (r *Reservoir[Q]) Min() Q {
	return 0
}

// Max returns the current capacity.
func (r *Reservoir[Q]) Max() Q {
	return r.max
}

// SetMax sets the capacity, clamping the held quantity down if it now
// exceeds the new capacity. Fails without side effects if newMax < Min.
func (r *Reservoir[Q]) SetMax(newMax Q) error {
	if newMax < r.Min() {
		return pool.ErrMaxBelowMin
	}
	r.max = newMax
	r.SetCurrent(r.current)
	return nil
}

// Current returns the held quantity.
func (r *Reservoir[Q]) Current() Q {
	return r.current
}

// SetCurrent clamps q into [Min, Max] and returns the stored value.
func (r *Reservoir[Q]) SetCurrent(q Q) Q {
	if q < r.Min() {
		q = r.Min()
	}
	if q > r.max {
		q = r.max
	}
	r.current = q
	return r.current
}

// Expend removes amount, failing with pool.ErrInsufficient if the
// reservoir holds less than amount. The reservoir is unchanged on failure.
func (r *Reservoir[Q]) Expend(amount Q) error {
	if err := pool.Available[Q](r, amount); err != nil {
		return err
	}
	r.SetCurrent(r.current - amount)
	return nil
}

// Replenish adds amount, silently capping at Max. Negative amounts drain
// toward Min, which is how decaying regen rates take effect.
func (r *Reservoir[Q]) Replenish(amount Q) {
	r.SetCurrent(r.current + amount)
}

// RegenPerSecond returns the per-second recovery rate.
func (r *Reservoir[Q]) RegenPerSecond() Q {
	return r.regen
}

// SetRegenPerSecond replaces the per-second recovery rate.
func (r *Reservoir[Q]) SetRegenPerSecond(rate Q) {
	r.regen = rate
}

// Regenerate applies the recovery rate over the elapsed delta.
func (r *Reservoir[Q]) Regenerate(delta time.Duration) {
	r.Replenish(Q(float64(r.regen) * delta.Seconds()))
}

// LifePool tracks the life total of a unit. When it reaches its minimum
// the unit is dead or downed; game rules decide which.
type LifePool = Reservoir[Life]

// NewLifePool creates a life pool. Panics on invalid configuration, same
// as NewReservoir.
func NewLifePool(current, max, regenPerSecond Life) *LifePool {
	return NewReservoir(current, max, regenPerSecond)
}

// ManaPool tracks the castable resource of a unit.
type ManaPool = Reservoir[Mana]

// NewManaPool creates a mana pool. Panics on invalid configuration, same
// as NewReservoir.
func NewManaPool(current, max, regenPerSecond Mana) *ManaPool {
	return NewReservoir(current, max, regenPerSecond)
}
