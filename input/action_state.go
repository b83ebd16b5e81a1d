// Package input tracks which abilities the player is attempting this step.
// It is deliberately source-agnostic: keys, gamepad buttons, AI intents and
// replayed commands all funnel into the same pressed/just-pressed record.
package input

// ActionState records the pressed state of every action of type A for one
// simulation step. Press and Release are called as raw input arrives;
// Tick is called once per step, after triggers are resolved, to decay the
// just-pressed edge.
type ActionState[A comparable] struct {
	pressed     map[A]bool
	justPressed map[A]bool
}

// NewActionState creates an empty action state.
func NewActionState[A comparable]() *ActionState[A] {
	return &ActionState[A]{
		pressed:     make(map[A]bool),
		justPressed: make(map[A]bool),
	}
}

// Press marks action held. The first Press after a release also marks it
// just-pressed until the next Tick.
func (s *ActionState[A]) Press(action A) {
	if !s.pressed[action] {
		s.justPressed[action] = true
	}
	s.pressed[action] = true
}

// Release clears both the held and just-pressed marks for action.
func (s *ActionState[A]) Release(action A) {
	delete(s.pressed, action)
	delete(s.justPressed, action)
}

// Pressed reports whether action is currently held.
func (s *ActionState[A]) Pressed(action A) bool {
	return s.pressed[action]
}

// JustPressed reports whether action transitioned to held this step.
func (s *ActionState[A]) JustPressed(action A) bool {
	return s.justPressed[action]
}

// JustPressedActions returns every action that transitioned to held this
// step. Order is unspecified.
func (s *ActionState[A]) JustPressedActions() []A {
	if len(s.justPressed) == 0 {
		return nil
	}
	actions := make([]A, 0, len(s.justPressed))
	for action := range s.justPressed {
		actions = append(actions, action)
	}
	return actions
}

// Tick decays the just-pressed edge. Call once per simulation step, after
// that step's triggers have been resolved.
func (s *ActionState[A]) Tick() {
	clear(s.justPressed)
}

// Reset drops all input state, for example on a game reset.
func (s *ActionState[A]) Reset() {
	clear(s.pressed)
	clear(s.justPressed)
}
