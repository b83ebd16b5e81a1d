package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/abilitygate/ability"
	"github.com/lixenwraith/abilitygate/core"
	"github.com/lixenwraith/abilitygate/engine"
	"github.com/lixenwraith/abilitygate/events"
	"github.com/lixenwraith/abilitygate/input"
	"github.com/lixenwraith/abilitygate/pool"
	"github.com/lixenwraith/abilitygate/pool/premade"
	"github.com/lixenwraith/abilitygate/status"
)

const (
	bolt = iota
	dash
)

type fixture struct {
	world  *engine.World
	sched  *engine.Scheduler
	queue  *events.EventQueue
	clock  *engine.MockTimeProvider
	player core.Entity
	state  *ability.State[int, premade.Mana]
}

// newFixture wires a full simulation: bolt costs 30 mana with a 1s
// cooldown, dash runs on 2 charges recovered one per 1s cycle.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	world := engine.NewWorld()
	queue := events.NewEventQueue()
	engine.AddResource(world.Resources, &engine.TimeResource{})
	engine.AddResource(world.Resources, queue)
	engine.AddResource(world.Resources, status.NewRegistry())

	world.AddSystem(NewTickSystem[int, premade.Mana]())
	world.AddSystem(NewRegenSystem[int, premade.Mana]())
	world.AddSystem(NewCastSystem[int, premade.Mana]())

	state := &ability.State[int, premade.Mana]{
		Actions: input.NewActionState[int](),
		Charges: ability.NewChargeState[int]().
			Set(dash, ability.ReplenishOne(2)),
		Cooldowns: ability.NewCooldownState[int]().
			Set(bolt, ability.NewCooldown(time.Second)).
			Set(dash, ability.NewCooldown(time.Second)),
		Pool: premade.NewManaPool(100, 100, 10),
		Costs: pool.NewCosts[int, premade.Mana]().
			Set(bolt, 30),
	}

	player := world.CreateEntity()
	engine.GetStore[*ability.State[int, premade.Mana]](world).Add(player, state)

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	sched := engine.NewScheduler(world, clock, 16*time.Millisecond)

	return &fixture{
		world:  world,
		sched:  sched,
		queue:  queue,
		clock:  clock,
		player: player,
		state:  state,
	}
}

func (f *fixture) press(action int) {
	f.queue.Push(events.GameEvent{
		Type:    events.EventAbilityPressed,
		Payload: events.AbilityInputPayload{Entity: f.player, Action: action},
	})
}

func (f *fixture) release(action int) {
	f.queue.Push(events.GameEvent{
		Type:    events.EventAbilityReleased,
		Payload: events.AbilityInputPayload{Entity: f.player, Action: action},
	})
}

func (f *fixture) step(delta time.Duration) {
	f.clock.Advance(delta)
	f.sched.Step(delta)
}

// drainResolved consumes the outcome events emitted by the cast system.
func (f *fixture) drainResolved() []events.GameEvent {
	var resolved []events.GameEvent
	for _, ev := range f.queue.Consume() {
		if ev.Type == events.EventAbilityTriggered || ev.Type == events.EventAbilityDenied {
			resolved = append(resolved, ev)
		}
	}
	return resolved
}

func TestPressTriggersAndPaysCost(t *testing.T) {
	f := newFixture(t)

	f.press(bolt)
	f.step(16 * time.Millisecond)

	got := f.drainResolved()
	if len(got) != 1 {
		t.Fatalf("Expected 1 resolved event, got %d", len(got))
	}
	if got[0].Type != events.EventAbilityTriggered {
		t.Errorf("Expected EventAbilityTriggered, got %v", got[0].Type)
	}
	if mana := f.state.Pool.Current(); mana >= 71 || mana < 70 {
		t.Errorf("Expected roughly 70 mana after the cast, got %v", mana)
	}
}

func TestPaidCastEmitsPoolChanged(t *testing.T) {
	f := newFixture(t)

	f.press(bolt)
	f.step(16 * time.Millisecond)

	var changes []events.PoolChangedPayload
	for _, ev := range f.queue.Consume() {
		if ev.Type == events.EventPoolChanged {
			changes = append(changes, ev.Payload.(events.PoolChangedPayload))
		}
	}
	if len(changes) != 1 {
		t.Fatalf("Expected 1 pool change, got %d", len(changes))
	}
	if changes[0].Current != 70 || changes[0].Max != 100 {
		t.Errorf("Expected 70/100 after the cast, got %v/%v", changes[0].Current, changes[0].Max)
	}

	// Dash is free: no pool change
	f.release(bolt)
	f.press(dash)
	f.step(16 * time.Millisecond)
	for _, ev := range f.queue.Consume() {
		if ev.Type == events.EventPoolChanged {
			t.Errorf("Expected no pool change for a free ability")
		}
	}
}

func TestHeldKeyFiresOnce(t *testing.T) {
	f := newFixture(t)

	f.press(bolt)
	f.step(16 * time.Millisecond)
	f.drainResolved()

	// Key still held: no new edge, no new resolution
	f.step(16 * time.Millisecond)
	if got := f.drainResolved(); len(got) != 0 {
		t.Errorf("Expected no resolution while held, got %d", len(got))
	}
}

func TestDeniedCastCarriesReason(t *testing.T) {
	f := newFixture(t)

	f.press(bolt)
	f.step(16 * time.Millisecond)
	f.drainResolved()
	f.release(bolt)

	// Bolt is on cooldown; a fresh press must be denied
	f.press(bolt)
	f.step(16 * time.Millisecond)

	got := f.drainResolved()
	if len(got) != 1 {
		t.Fatalf("Expected 1 resolved event, got %d", len(got))
	}
	if got[0].Type != events.EventAbilityDenied {
		t.Fatalf("Expected EventAbilityDenied, got %v", got[0].Type)
	}
	payload := got[0].Payload.(events.AbilityResolvedPayload)
	if !errors.Is(payload.Reason, ability.ErrOnCooldown) {
		t.Errorf("Expected ErrOnCooldown reason, got %v", payload.Reason)
	}
}

func TestTickSystemRecoversCooldownAndCharges(t *testing.T) {
	f := newFixture(t)

	// Spend both dash charges
	f.press(dash)
	f.step(16 * time.Millisecond)
	f.release(dash)
	f.press(dash)
	f.step(16 * time.Millisecond)
	f.release(dash)
	f.drainResolved()

	if got := f.state.Charges.Get(dash).Current(); got != 0 {
		t.Fatalf("Expected both charges spent, got %d", got)
	}

	// Start the recovery cycle and stall for 2.5 cycles
	f.state.Cooldowns.Get(dash).SetElapsed(0)
	f.step(2500 * time.Millisecond)

	if got := f.state.Charges.Get(dash).Current(); got != 2 {
		t.Errorf("Expected both charges recovered, got %d", got)
	}
}

func TestRegenSystemRefillsPool(t *testing.T) {
	f := newFixture(t)
	f.state.Pool.SetCurrent(0)

	f.step(2 * time.Second)

	if mana := f.state.Pool.Current(); mana != 20 {
		t.Errorf("Expected 20 mana after 2s at 10/s, got %v", mana)
	}
}

func TestResetEventRestoresLoadout(t *testing.T) {
	f := newFixture(t)

	f.press(bolt)
	f.step(16 * time.Millisecond)
	f.drainResolved()

	f.queue.Push(events.GameEvent{Type: events.EventGameReset})
	f.step(16 * time.Millisecond)

	if err := f.state.Ready(bolt); err != nil {
		t.Errorf("Expected bolt ready after reset, got %v", err)
	}
	if mana := f.state.Pool.Current(); mana < 100 {
		t.Errorf("Expected full pool after reset, got %v", mana)
	}
}

func TestCastCountersTrack(t *testing.T) {
	f := newFixture(t)
	registry := engine.MustGetResource[*status.Registry](f.world.Resources)

	f.press(bolt)
	f.step(16 * time.Millisecond)
	f.release(bolt)
	f.press(bolt) // cooldown denial
	f.step(16 * time.Millisecond)

	if got := registry.Ints.Get("cast.triggered").Load(); got != 1 {
		t.Errorf("Expected 1 triggered, got %d", got)
	}
	if got := registry.Ints.Get("cast.denied").Load(); got != 1 {
		t.Errorf("Expected 1 denied, got %d", got)
	}
}
