// Package pool models shared, regenerating resource reservoirs (life, mana,
// energy, rage) that abilities spend from. Unlike charges, a pool is
// typically shared across every ability of an entity, and sometimes across
// entities.
package pool

import (
	"errors"
	"time"
)

// Scalar is the quantity type stored in a pool.
// Concrete pools declare their own defined type (Life, Mana, ...) so that
// costs and damage amounts cannot be mixed up between pools.
type Scalar interface {
	~float64
}

// ErrInsufficient is returned when a pool cannot cover a requested expense.
var ErrInsufficient = errors.New("not enough resources in pool")

// ErrMaxBelowMin is returned when a pool's maximum would be set below its
// fixed minimum. The pool is left unchanged.
var ErrMaxBelowMin = errors.New("pool maximum must not be below its minimum")

// Pool is a bounded reservoir of a resource quantity.
//
// Implementations guarantee Min() <= Current() <= Max() after every
// operation. Min is a fixed zero point of the quantity type.
type Pool[Q Scalar] interface {
	// Min returns the fixed lower bound of the pool.
	Min() Q

	// Max returns the current upper bound of the pool.
	Max() Q

	// SetMax sets the upper bound, clamping Current down if needed.
	// Fails with ErrMaxBelowMin (leaving the pool unchanged) if new_max < Min.
	SetMax(newMax Q) error

	// Current returns the quantity currently held.
	Current() Q

	// SetCurrent clamps the value into [Min, Max] and returns what was
	// actually stored.
	SetCurrent(q Q) Q

	// Expend removes amount from the pool.
	// Fails with ErrInsufficient (leaving the pool unchanged) if
	// Current < amount.
	Expend(amount Q) error

	// Replenish adds amount to the pool, silently capping at Max.
	Replenish(amount Q)
}

// RegeneratingPool is a Pool that recovers (or decays) over time.
type RegeneratingPool[Q Scalar] interface {
	Pool[Q]

	// RegenPerSecond returns the quantity recovered each second.
	// Negative rates model automatic decay.
	RegenPerSecond() Q

	// SetRegenPerSecond replaces the regeneration rate.
	SetRegenPerSecond(rate Q)

	// Regenerate advances regeneration by the elapsed delta.
	Regenerate(delta time.Duration)
}

// Available reports whether the pool can cover amount, using the error
// taxonomy shared with ability gating.
func Available[Q Scalar](p Pool[Q], amount Q) error {
	if p.Current() >= amount {
		return nil
	}
	return ErrInsufficient
}

// IsFull reports whether the pool holds its maximum.
func IsFull[Q Scalar](p Pool[Q]) bool {
	return p.Current() == p.Max()
}

// IsEmpty reports whether the pool is at its minimum, which may be nonzero
// in the numeric sense but is always the pool's zero point.
func IsEmpty[Q Scalar](p Pool[Q]) bool {
	return p.Current() == p.Min()
}
