// Package systems contains the per-frame simulation logic that drives
// ability state: timer advancement, pool regeneration and cast
// resolution. Systems are generic over the caller's action and quantity
// types and operate on ability.State components.
package systems

import (
	"github.com/lixenwraith/abilitygate/ability"
	"github.com/lixenwraith/abilitygate/constants"
	"github.com/lixenwraith/abilitygate/engine"
	"github.com/lixenwraith/abilitygate/pool"
)

// TickSystem advances the cooldown timers of every ability.State
// component, coupling each timer to its action's charge counter. Runs
// before casting so trigger decisions see fully advanced timers.
type TickSystem[A comparable, Q pool.Scalar] struct {
	timeRes *engine.TimeResource
	states  *engine.Store[*ability.State[A, Q]]
}

// NewTickSystem creates the tick system.
func NewTickSystem[A comparable, Q pool.Scalar]() *TickSystem[A, Q] {
	return &TickSystem[A, Q]{}
}

func (s *TickSystem[A, Q]) Init(w *engine.World) {
	s.timeRes = engine.MustGetResource[*engine.TimeResource](w.Resources)
	s.states = engine.GetStore[*ability.State[A, Q]](w)
}

func (s *TickSystem[A, Q]) Priority() int {
	return constants.PriorityTick
}

func (s *TickSystem[A, Q]) Update(w *engine.World) {
	delta := s.timeRes.DeltaTime()
	if delta <= 0 {
		return
	}
	for _, e := range s.states.All() {
		if state, ok := s.states.Get(e); ok {
			state.Tick(delta)
		}
	}
}
