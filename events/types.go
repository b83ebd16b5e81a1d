// Package events carries cross-system notifications through a lock-free
// queue. Producers (input adapters, systems) push; the scheduler drains the
// queue once per step and routes each event to the systems registered for
// its type.
package events

import (
	"time"
)

// EventType discriminates game events.
type EventType int

const (
	// EventAbilityPressed reports raw input: the player started holding an
	// ability's binding.
	// Producer: input adapter | Consumer: CastSystem | Payload: AbilityInputPayload
	EventAbilityPressed EventType = iota

	// EventAbilityReleased reports the binding was let go.
	// Producer: input adapter | Consumer: CastSystem | Payload: AbilityInputPayload
	EventAbilityReleased

	// EventAbilityTriggered reports a successful trigger: all gates passed
	// and state was spent.
	// Producer: CastSystem | Consumers: HUD, audio | Payload: AbilityResolvedPayload
	EventAbilityTriggered

	// EventAbilityDenied reports a refused trigger and carries the denial
	// reason (no charges, on cooldown, ...).
	// Producer: CastSystem | Consumers: HUD, audio | Payload: AbilityResolvedPayload
	EventAbilityDenied

	// EventPoolChanged reports that a trigger spent from an entity's
	// resource pool.
	// Producer: CastSystem | Consumers: HUD | Payload: PoolChangedPayload
	EventPoolChanged

	// EventGameReset asks systems to restore their initial state.
	// Payload: nil
	EventGameReset
)

// GameEvent is one queued notification.
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
