package systems

import (
	"github.com/lixenwraith/abilitygate/ability"
	"github.com/lixenwraith/abilitygate/constants"
	"github.com/lixenwraith/abilitygate/engine"
	"github.com/lixenwraith/abilitygate/pool"
)

// RegenSystem regenerates the resource pool of every ability.State whose
// pool supports regeneration. Pools that do not implement
// pool.RegeneratingPool are left alone.
type RegenSystem[A comparable, Q pool.Scalar] struct {
	timeRes *engine.TimeResource
	states  *engine.Store[*ability.State[A, Q]]
}

// NewRegenSystem creates the regeneration system.
func NewRegenSystem[A comparable, Q pool.Scalar]() *RegenSystem[A, Q] {
	return &RegenSystem[A, Q]{}
}

func (s *RegenSystem[A, Q]) Init(w *engine.World) {
	s.timeRes = engine.MustGetResource[*engine.TimeResource](w.Resources)
	s.states = engine.GetStore[*ability.State[A, Q]](w)
}

func (s *RegenSystem[A, Q]) Priority() int {
	return constants.PriorityRegen
}

func (s *RegenSystem[A, Q]) Update(w *engine.World) {
	delta := s.timeRes.DeltaTime()
	if delta <= 0 {
		return
	}
	for _, e := range s.states.All() {
		state, ok := s.states.Get(e)
		if !ok || state.Pool == nil {
			continue
		}
		if regen, ok := state.Pool.(pool.RegeneratingPool[Q]); ok {
			regen.Regenerate(delta)
		}
	}
}
