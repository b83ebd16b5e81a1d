package ability

import (
	"errors"
	"testing"
	"time"
)

func TestCooldownStartsReady(t *testing.T) {
	c := NewCooldown(time.Second)
	if err := c.Ready(); err != nil {
		t.Errorf("Expected fresh cooldown to be ready, got %v", err)
	}
	if c.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %v", c.Remaining())
	}
}

func TestNewCooldownPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for non-positive period")
		}
	}()
	NewCooldown(0)
}

func TestTriggerAndRecover(t *testing.T) {
	c := NewCooldown(time.Second)

	if err := c.Trigger(); err != nil {
		t.Errorf("Expected trigger to succeed, got %v", err)
	}
	if err := c.Ready(); !errors.Is(err, ErrOnCooldown) {
		t.Errorf("Expected ErrOnCooldown after trigger, got %v", err)
	}
	if err := c.Trigger(); !errors.Is(err, ErrOnCooldown) {
		t.Errorf("Expected re-trigger to fail with ErrOnCooldown, got %v", err)
	}

	c.Tick(400*time.Millisecond, nil)
	if err := c.Ready(); !errors.Is(err, ErrOnCooldown) {
		t.Errorf("Expected cooldown still running at 0.4s, got %v", err)
	}
	if c.Remaining() != 600*time.Millisecond {
		t.Errorf("Expected 600ms remaining, got %v", c.Remaining())
	}

	// Exactly reaching the period counts as ready
	c.Tick(600*time.Millisecond, nil)
	if err := c.Ready(); err != nil {
		t.Errorf("Expected ready at the boundary, got %v", err)
	}
}

func TestRefreshEndsCooldown(t *testing.T) {
	c := NewCooldown(5 * time.Second)
	c.Trigger()
	c.Refresh()
	if err := c.Ready(); err != nil {
		t.Errorf("Expected ready after refresh, got %v", err)
	}
}

func TestReadyCooldownDoesNotTick(t *testing.T) {
	c := NewCooldown(time.Second)
	c.Tick(10*time.Second, nil)
	if c.Elapsed() != time.Second {
		t.Errorf("Expected elapsed pinned at period, got %v", c.Elapsed())
	}
}

func TestSetMaxTimeClampsElapsed(t *testing.T) {
	c := NewCooldown(10 * time.Second)
	c.Trigger()
	c.Tick(4*time.Second, nil)

	c.SetMaxTime(3 * time.Second)
	if c.Elapsed() != 3*time.Second {
		t.Errorf("Expected elapsed clamped to 3s, got %v", c.Elapsed())
	}
	if err := c.Ready(); err != nil {
		t.Errorf("Expected ready after shrinking below elapsed, got %v", err)
	}
}

func TestSetRemaining(t *testing.T) {
	c := NewCooldown(4 * time.Second)
	c.SetRemaining(time.Second)
	if c.Elapsed() != 3*time.Second {
		t.Errorf("Expected 3s elapsed, got %v", c.Elapsed())
	}
	// Out-of-range values clamp
	c.SetRemaining(time.Minute)
	if c.Elapsed() != 0 {
		t.Errorf("Expected 0 elapsed, got %v", c.Elapsed())
	}
}

func TestTickMultiCycleConstantRefresh(t *testing.T) {
	// One large delta spanning multiple periods grants one charge per
	// completed cycle and keeps the fractional remainder.
	charges := ReplenishOne(3)
	charges.SetCharges(0)

	c := NewCooldown(time.Second)
	c.Trigger()
	c.Tick(2500*time.Millisecond, charges)

	if charges.Current() != 2 {
		t.Errorf("Expected 2 charges after 2.5 cycles, got %d", charges.Current())
	}
	if c.Elapsed() != 500*time.Millisecond {
		t.Errorf("Expected 500ms remainder, got %v", c.Elapsed())
	}
	if err := c.Ready(); !errors.Is(err, ErrOnCooldown) {
		t.Errorf("Expected cooldown mid-cycle, got %v", err)
	}
}

func TestTickConstantRefreshPinsWhenSaturated(t *testing.T) {
	charges := ReplenishOne(2)
	charges.SetCharges(1)

	c := NewCooldown(time.Second)
	c.Trigger()
	c.Tick(3500*time.Millisecond, charges)

	if charges.Current() != 2 {
		t.Errorf("Expected charges capped at 2, got %d", charges.Current())
	}
	// Saturated charges stop the cycling: the timer rests at ready
	if err := c.Ready(); err != nil {
		t.Errorf("Expected timer pinned at ready, got %v", err)
	}
}

func TestTickRefreshWhenEmptyRefillsDepleted(t *testing.T) {
	charges := ReplenishAll(3)
	charges.SetCharges(0)

	c := NewCooldown(time.Second)
	c.Trigger()
	c.Tick(1200*time.Millisecond, charges)

	if charges.Current() != 3 {
		t.Errorf("Expected full refill from empty, got %d", charges.Current())
	}
	if err := c.Ready(); err != nil {
		t.Errorf("Expected timer at ready after refill, got %v", err)
	}
}

func TestTickRefreshWhenEmptyFullRefillForAnyReplenishStrategy(t *testing.T) {
	// The default loadout pairing: one-at-a-time replenish with
	// when-empty coupling. The refill must still restore every charge,
	// because the pinned timer never cycles again to grant the rest.
	charges := NewCharges(2, OneAtATime, RefreshWhenEmpty)
	charges.SetCharges(0)

	c := NewCooldown(time.Second)
	c.SetElapsed(0)
	c.Tick(time.Second, charges)

	if charges.Current() != 2 {
		t.Errorf("Expected full refill from empty, got %d", charges.Current())
	}
	if err := c.Ready(); err != nil {
		t.Errorf("Expected timer at ready, got %v", err)
	}

	// Further ticking must not strand the counter below capacity
	charges.Expend()
	c.Tick(time.Second, charges)
	if charges.Current() != 1 {
		t.Errorf("Expected ready timer to leave charges alone, got %d", charges.Current())
	}
}

func TestTickRefreshWhenEmptySkipsPartialCounter(t *testing.T) {
	charges := ReplenishAll(3)
	charges.SetCharges(2)

	c := NewCooldown(time.Second)
	c.Trigger()
	c.Tick(1200*time.Millisecond, charges)

	if charges.Current() != 2 {
		t.Errorf("Expected untouched partial counter, got %d", charges.Current())
	}
	if err := c.Ready(); err != nil {
		t.Errorf("Expected timer at ready, got %v", err)
	}
}

func TestTickRefreshWhenEmptyMidCycle(t *testing.T) {
	charges := ReplenishAll(3)
	charges.SetCharges(0)

	c := NewCooldown(time.Second)
	c.Trigger()
	c.Tick(700*time.Millisecond, charges)

	if charges.Current() != 0 {
		t.Errorf("Expected no refill before a full cycle, got %d", charges.Current())
	}
	if c.Elapsed() != 700*time.Millisecond {
		t.Errorf("Expected 700ms elapsed, got %v", c.Elapsed())
	}
}

func TestTickIgnoreStrategyNeverTouchesCharges(t *testing.T) {
	charges := SimpleCharges(3)
	charges.SetCharges(0)

	c := NewCooldown(time.Second)
	c.Trigger()
	c.Tick(5*time.Second, charges)

	if charges.Current() != 0 {
		t.Errorf("Expected charges untouched, got %d", charges.Current())
	}
	if err := c.Ready(); err != nil {
		t.Errorf("Expected ready after ticking past the period, got %v", err)
	}
}

func TestFromSecs(t *testing.T) {
	c := FromSecs(1.5)
	if c.MaxTime() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s period, got %v", c.MaxTime())
	}
}
