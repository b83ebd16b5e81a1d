package ability

import "time"

// CooldownState holds the recovery timers for every action of type A that
// has one, plus an optional global cooldown shared by the whole set.
//
// The global cooldown gates every action, including actions with no timer
// of their own, and restarts whenever any action is triggered. A missing
// per-action entry means the action is unconstrained along the cooldown
// dimension.
type CooldownState[A comparable] struct {
	cooldowns map[A]*Cooldown

	// Global is the shared cooldown of the set, or nil if none is
	// configured.
	Global *Cooldown
}

// NewCooldownState creates an empty cooldown table with no global
// cooldown.
func NewCooldownState[A comparable]() *CooldownState[A] {
	return &CooldownState[A]{
		cooldowns: make(map[A]*Cooldown),
	}
}

// Set installs the timer for action, replacing any previous entry.
// Returns the receiver for construction chaining.
func (s *CooldownState[A]) Set(action A, cooldown *Cooldown) *CooldownState[A] {
	s.cooldowns[action] = cooldown
	return s
}

// SetGlobal installs the shared cooldown of the set.
// Returns the receiver for construction chaining.
func (s *CooldownState[A]) SetGlobal(cooldown *Cooldown) *CooldownState[A] {
	s.Global = cooldown
	return s
}

// Get returns the timer for action, or nil if none is configured.
// The pointer is live: mutations through it are seen by the state.
func (s *CooldownState[A]) Get(action A) *Cooldown {
	return s.cooldowns[action]
}

// Remove deletes the timer for action, making it unconstrained again.
func (s *CooldownState[A]) Remove(action A) {
	delete(s.cooldowns, action)
}

// Len returns the number of configured per-action timers.
func (s *CooldownState[A]) Len() int {
	return len(s.cooldowns)
}

// GCDReady reports whether the global cooldown has elapsed.
// Always ready when no global cooldown is configured.
func (s *CooldownState[A]) GCDReady() error {
	if s.Global == nil {
		return nil
	}
	if s.Global.Ready() != nil {
		return ErrOnGlobalCooldown
	}
	return nil
}

// Ready reports whether action can be used along the cooldown dimension.
// The shared global cooldown is checked first, even for actions with no
// timer of their own, so a simultaneous per-action cooldown reports
// ErrOnGlobalCooldown.
func (s *CooldownState[A]) Ready(action A) error {
	if err := s.GCDReady(); err != nil {
		return err
	}
	if cooldown := s.cooldowns[action]; cooldown != nil {
		return cooldown.Ready()
	}
	return nil
}

// Trigger uses action, restarting its own timer if it has one and always
// restarting the global cooldown: any triggered action puts the whole set
// on global cooldown.
//
// Readiness is verified before anything is touched, so a failed trigger
// leaves the state completely unchanged.
func (s *CooldownState[A]) Trigger(action A) error {
	if err := s.Ready(action); err != nil {
		return err
	}
	if cooldown := s.cooldowns[action]; cooldown != nil {
		cooldown.elapsed = 0
	}
	if s.Global != nil {
		s.Global.elapsed = 0
	}
	return nil
}

// RefreshAll makes every timer in the set ready, the global cooldown
// included.
func (s *CooldownState[A]) RefreshAll() {
	for _, cooldown := range s.cooldowns {
		cooldown.Refresh()
	}
	if s.Global != nil {
		s.Global.Refresh()
	}
}

// Tick advances every per-action timer by delta, coupling each to its
// action's charge counter when charges is non-nil, then advances the
// global cooldown. The global cooldown never drives charge replenishment.
func (s *CooldownState[A]) Tick(delta time.Duration, charges *ChargeState[A]) {
	for action, cooldown := range s.cooldowns {
		if charges != nil {
			cooldown.Tick(delta, charges.Get(action))
		} else {
			cooldown.Tick(delta, nil)
		}
	}
	if s.Global != nil {
		s.Global.Tick(delta, nil)
	}
}
