package ability

import (
	"time"

	"github.com/lixenwraith/abilitygate/input"
	"github.com/lixenwraith/abilitygate/pool"
)

// State is the per-entity combinator: it bundles the charge counters,
// cooldown timers, resource pool and cost table for one action set and
// resolves every ready/trigger decision against them.
//
// Any field may be nil; a nil gate never constrains. Entities whose
// abilities cost nothing use a nil Pool and Costs with Q instantiated as
// plain float64.
type State[A comparable, Q pool.Scalar] struct {
	// Actions is the external pressed-signal source, consulted only by
	// the *Pressed composite predicates.
	Actions *input.ActionState[A]

	// Charges gates limited-use actions.
	Charges *ChargeState[A]

	// Cooldowns gates recovering actions, including the shared global
	// cooldown.
	Cooldowns *CooldownState[A]

	// Pool is the resource reservoir costs are paid from.
	Pool pool.Pool[Q]

	// Costs maps actions to their price in Pool's quantity.
	Costs *pool.Costs[A, Q]
}

// Ready reports whether action may be used right now.
//
// Gates are consulted in fixed precedence; the first applicable one
// decides and the rest are ignored:
//
//  1. a configured charge counter - ready iff a charge is available,
//  2. otherwise the cooldown dimension - the shared global cooldown
//     first, then the action's own timer if it has one; if the action
//     has its own timer this branch decides,
//  3. otherwise a configured pool cost - ready iff the pool covers it,
//  4. otherwise always ready.
func (s *State[A, Q]) Ready(action A) error {
	if s.Charges != nil {
		if charges := s.Charges.Get(action); charges != nil {
			if charges.Available() {
				return nil
			}
			return ErrNoCharges
		}
	}
	if s.Cooldowns != nil {
		if err := s.Cooldowns.Ready(action); err != nil {
			return err
		}
		if s.Cooldowns.Get(action) != nil {
			return nil
		}
	}
	return s.costCovered(action)
}

// costCovered checks the pool can pay action's cost, if both are
// configured. Absent cost or pool never constrains.
func (s *State[A, Q]) costCovered(action A) error {
	if s.Pool == nil || s.Costs == nil {
		return nil
	}
	return s.Costs.Available(action, s.Pool)
}

// Trigger uses action, spending whatever gates it: one charge if it has a
// counter, else its cooldown (which also restarts the global cooldown),
// and additionally the pool cost if one is configured. Paying the pool
// cost is additive to the charge/cooldown gate, not an alternative.
//
// The readiness check and the pool balance are both verified before any
// state is touched: a failed trigger returns the readiness error and has
// zero side effects.
func (s *State[A, Q]) Trigger(action A) error {
	if err := s.Ready(action); err != nil {
		return err
	}
	// The charge branch of Ready never looks at the pool, so the cost
	// must be re-verified here to keep failed triggers side-effect free.
	if err := s.costCovered(action); err != nil {
		return err
	}

	switch {
	case s.Charges != nil && s.Charges.Get(action) != nil:
		if err := s.Charges.Expend(action); err != nil {
			return err
		}
	case s.Cooldowns != nil:
		if err := s.Cooldowns.Trigger(action); err != nil {
			return err
		}
	}

	if s.Pool != nil && s.Costs != nil {
		if err := s.Costs.PayCost(action, s.Pool); err != nil {
			return err
		}
	}
	return nil
}

// ReadyAndPressed reports whether action is both held and ready.
// ErrNotPressed wins over every readiness failure: an action that was
// never attempted reports only that.
func (s *State[A, Q]) ReadyAndPressed(action A) error {
	if s.Actions == nil || !s.Actions.Pressed(action) {
		return ErrNotPressed
	}
	return s.Ready(action)
}

// ReadyAndJustPressed is ReadyAndPressed on the just-pressed edge.
func (s *State[A, Q]) ReadyAndJustPressed(action A) error {
	if s.Actions == nil || !s.Actions.JustPressed(action) {
		return ErrNotPressed
	}
	return s.Ready(action)
}

// TriggerIfPressed triggers action only while it is held.
func (s *State[A, Q]) TriggerIfPressed(action A) error {
	if s.Actions == nil || !s.Actions.Pressed(action) {
		return ErrNotPressed
	}
	return s.Trigger(action)
}

// TriggerIfJustPressed triggers action only on its just-pressed edge,
// so a held key fires once per press rather than once per step.
func (s *State[A, Q]) TriggerIfJustPressed(action A) error {
	if s.Actions == nil || !s.Actions.JustPressed(action) {
		return ErrNotPressed
	}
	return s.Trigger(action)
}

// Reset restores the whole combinator to a fresh start: input cleared,
// charges refilled, every cooldown made ready and the pool topped up.
func (s *State[A, Q]) Reset() {
	if s.Actions != nil {
		s.Actions.Reset()
	}
	if s.Charges != nil {
		s.Charges.RefillAll()
	}
	if s.Cooldowns != nil {
		s.Cooldowns.RefreshAll()
	}
	if s.Pool != nil {
		s.Pool.SetCurrent(s.Pool.Max())
	}
}

// Tick advances the cooldown dimension by delta, coupling charge
// replenishment. Pools regenerate separately, and the input edge is
// decayed by whoever owns the ActionState.
func (s *State[A, Q]) Tick(delta time.Duration) {
	if s.Cooldowns != nil {
		s.Cooldowns.Tick(delta, s.Charges)
	}
}
