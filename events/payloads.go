package events

import (
	"github.com/lixenwraith/abilitygate/core"
)

// AbilityInputPayload identifies which entity's action set received input.
// Action is the caller's action type; consumers assert it back to their
// concrete enum.
type AbilityInputPayload struct {
	Entity core.Entity
	Action any
}

// PoolChangedPayload carries the pool balance after a cast spent from it,
// in the pool's float64 base quantity.
type PoolChangedPayload struct {
	Entity  core.Entity
	Current float64
	Max     float64
}

// AbilityResolvedPayload reports the outcome of a trigger attempt.
// Reason is nil for EventAbilityTriggered and the denial error for
// EventAbilityDenied.
type AbilityResolvedPayload struct {
	Entity core.Entity
	Action any
	Reason error
}
