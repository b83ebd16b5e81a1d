package ability

import (
	"fmt"
	"time"
)

// Cooldown is a recovery timer. It records how much of its period has
// elapsed since the action was last used; the action is ready exactly when
// elapsed == max. A fresh cooldown starts ready.
//
// Invariants: max > 0 and 0 <= elapsed <= max.
type Cooldown struct {
	elapsed time.Duration
	max     time.Duration
}

// NewCooldown creates a ready cooldown with the given period.
// A zero or negative period is a programmer error and panics; omit the
// cooldown entirely for actions without one.
func NewCooldown(max time.Duration) *Cooldown {
	if max <= 0 {
		panic(fmt.Sprintf("cooldown period must be positive, got %v", max))
	}
	return &Cooldown{
		elapsed: max,
		max:     max,
	}
}

// FromSecs creates a ready cooldown from a period in seconds.
// Panics on non-positive periods like NewCooldown.
func FromSecs(seconds float64) *Cooldown {
	if seconds <= 0 {
		panic(fmt.Sprintf("cooldown period must be positive, got %vs", seconds))
	}
	return NewCooldown(time.Duration(seconds * float64(time.Second)))
}

// Ready reports whether the full period has elapsed.
// The boundary is inclusive: elapsed == max is ready.
func (c *Cooldown) Ready() error {
	if c.elapsed >= c.max {
		return nil
	}
	return ErrOnCooldown
}

// Trigger uses the cooldown if it is ready, restarting the timer.
// Fails with ErrOnCooldown, changing nothing, when it is not.
func (c *Cooldown) Trigger() error {
	if err := c.Ready(); err != nil {
		return err
	}
	c.elapsed = 0
	return nil
}

// Refresh forces the cooldown ready immediately.
func (c *Cooldown) Refresh() {
	c.elapsed = c.max
}

// MaxTime returns the recovery period.
func (c *Cooldown) MaxTime() time.Duration {
	return c.max
}

// SetMaxTime changes the recovery period, clamping elapsed down if it now
// exceeds the new period. Panics on non-positive periods like NewCooldown.
func (c *Cooldown) SetMaxTime(max time.Duration) {
	if max <= 0 {
		panic(fmt.Sprintf("cooldown period must be positive, got %v", max))
	}
	c.max = max
	if c.elapsed > c.max {
		c.elapsed = c.max
	}
}

// Elapsed returns how much of the period has passed since the last use.
func (c *Cooldown) Elapsed() time.Duration {
	return c.elapsed
}

// SetElapsed stores the elapsed time, clamped into [0, MaxTime].
func (c *Cooldown) SetElapsed(elapsed time.Duration) {
	c.elapsed = clampDuration(elapsed, 0, c.max)
}

// Remaining returns the time left until the action is ready again.
func (c *Cooldown) Remaining() time.Duration {
	return c.max - c.elapsed
}

// SetRemaining stores the remaining time, clamped into [0, MaxTime].
func (c *Cooldown) SetRemaining(remaining time.Duration) {
	c.elapsed = c.max - clampDuration(remaining, 0, c.max)
}

// Tick advances the timer by delta, coupling completed cycles to charge
// replenishment when charges is non-nil.
//
// An already-ready cooldown does not tick, so idle abilities build up no
// hidden windup. Without coupled charges (or with CooldownStrategy Ignore)
// the timer simply advances and saturates at its period.
//
// With coupled charges a single large delta may span several full cycles,
// for example after a stall; the whole span is integrated in one pass so
// no charge increment is lost. If the charges saturate, the timer pins at
// ready instead of continuing to cycle.
func (c *Cooldown) Tick(delta time.Duration, charges *Charges) {
	if c.elapsed >= c.max {
		return
	}
	if charges == nil || charges.CooldownStrategy == Ignore {
		c.elapsed = min(c.elapsed+delta, c.max)
		return
	}

	total := c.elapsed + delta
	completed := int64(total / c.max)
	remainder := total % c.max

	var excess uint8
	switch charges.CooldownStrategy {
	case ConstantlyRefresh:
		excess = charges.AddCharges(saturateU8(completed))
	case RefreshWhenEmpty:
		if completed == 0 {
			c.elapsed = total
			return
		}
		// A depleted counter refills to capacity outright, regardless of
		// its ReplenishStrategy: the timer pins at ready afterwards and
		// never cycles again, so anything short of a full refill would
		// strand the missing charges.
		if charges.Current() == 0 {
			charges.SetCharges(charges.Max())
		}
		// Whether the counter refilled or was never empty, cycling has
		// nothing further to feed: stop at ready.
		excess = 1
	}

	if excess == 0 {
		c.elapsed = remainder
	} else {
		c.elapsed = c.max
	}
}

func saturateU8(n int64) uint8 {
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	return min(max(d, lo), hi)
}
