package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/abilitygate/ability"
	"github.com/lixenwraith/abilitygate/constants"
	"github.com/lixenwraith/abilitygate/engine"
	"github.com/lixenwraith/abilitygate/events"
	"github.com/lixenwraith/abilitygate/pool"
	"github.com/lixenwraith/abilitygate/status"
)

// CastSystem resolves ability activation. Press/release events feed the
// per-entity action state during dispatch; Update then attempts a
// trigger for every just-pressed action and reports the outcome as a
// triggered or denied event.
//
// Runs after TickSystem and RegenSystem so every decision sees advanced
// timers and regenerated pools.
type CastSystem[A comparable, Q pool.Scalar] struct {
	timeRes *engine.TimeResource
	states  *engine.Store[*ability.State[A, Q]]
	queue   *events.EventQueue

	statTriggered *atomic.Int64
	statDenied    *atomic.Int64
}

// NewCastSystem creates the cast resolution system.
func NewCastSystem[A comparable, Q pool.Scalar]() *CastSystem[A, Q] {
	return &CastSystem[A, Q]{}
}

func (s *CastSystem[A, Q]) Init(w *engine.World) {
	s.timeRes = engine.MustGetResource[*engine.TimeResource](w.Resources)
	s.states = engine.GetStore[*ability.State[A, Q]](w)
	s.queue = engine.MustGetResource[*events.EventQueue](w.Resources)

	registry := engine.MustGetResource[*status.Registry](w.Resources)
	s.statTriggered = registry.Ints.Get("cast.triggered")
	s.statDenied = registry.Ints.Get("cast.denied")
}

func (s *CastSystem[A, Q]) Priority() int {
	return constants.PriorityCast
}

func (s *CastSystem[A, Q]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventAbilityPressed,
		events.EventAbilityReleased,
		events.EventGameReset,
	}
}

func (s *CastSystem[A, Q]) HandleEvent(w *engine.World, event events.GameEvent) {
	switch event.Type {
	case events.EventAbilityPressed:
		if payload, ok := event.Payload.(events.AbilityInputPayload); ok {
			s.applyInput(payload, true)
		}
	case events.EventAbilityReleased:
		if payload, ok := event.Payload.(events.AbilityInputPayload); ok {
			s.applyInput(payload, false)
		}
	case events.EventGameReset:
		for _, e := range s.states.All() {
			if state, ok := s.states.Get(e); ok {
				state.Reset()
			}
		}
	}
}

func (s *CastSystem[A, Q]) applyInput(payload events.AbilityInputPayload, pressed bool) {
	state, ok := s.states.Get(payload.Entity)
	if !ok || state.Actions == nil {
		return
	}
	action, ok := payload.Action.(A)
	if !ok {
		return
	}
	if pressed {
		state.Actions.Press(action)
	} else {
		state.Actions.Release(action)
	}
}

func (s *CastSystem[A, Q]) Update(w *engine.World) {
	now := s.timeRes.GameTime()

	for _, e := range s.states.All() {
		state, ok := s.states.Get(e)
		if !ok || state.Actions == nil {
			continue
		}

		for _, action := range state.Actions.JustPressedActions() {
			var before Q
			if state.Pool != nil {
				before = state.Pool.Current()
			}

			err := state.TriggerIfJustPressed(action)
			if err == nil {
				s.statTriggered.Add(1)
				s.queue.Push(events.GameEvent{
					Type:      events.EventAbilityTriggered,
					Payload:   events.AbilityResolvedPayload{Entity: e, Action: action},
					Timestamp: now,
				})
				if state.Pool != nil && state.Pool.Current() != before {
					s.queue.Push(events.GameEvent{
						Type: events.EventPoolChanged,
						Payload: events.PoolChangedPayload{
							Entity:  e,
							Current: float64(state.Pool.Current()),
							Max:     float64(state.Pool.Max()),
						},
						Timestamp: now,
					})
				}
				continue
			}
			s.statDenied.Add(1)
			s.queue.Push(events.GameEvent{
				Type:      events.EventAbilityDenied,
				Payload:   events.AbilityResolvedPayload{Entity: e, Action: action, Reason: err},
				Timestamp: now,
			})
		}

		// Decay the just-pressed edge once every attempt is resolved.
		state.Actions.Tick()
	}
}
