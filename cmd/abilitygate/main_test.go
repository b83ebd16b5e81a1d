package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/abilitygate/config"
)

func newSimGame(t *testing.T) *Game {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("initializing simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)

	g := &Game{screen: screen, cfg: config.Default()}
	g.width, g.height = screen.Size()
	if err := g.buildWorld(); err != nil {
		t.Fatalf("building world: %v", err)
	}
	return g
}

func TestBuildLoadoutFromDefaults(t *testing.T) {
	state, err := buildLoadout(config.Default())
	if err != nil {
		t.Fatalf("Expected default loadout to build, got %v", err)
	}

	if state.Cooldowns.Global == nil {
		t.Errorf("Expected a global cooldown")
	}
	// Slot 2 (blink) carries charges in the default loadout
	if got := state.Charges.Get(2); got == nil || got.Max() != 2 {
		t.Errorf("Expected blink with 2 charges, got %v", got)
	}
	// Slot 0 (bolt) costs mana
	if cost, ok := state.Costs.Get(0); !ok || cost != 10 {
		t.Errorf("Expected bolt cost 10, got %v (present=%v)", cost, ok)
	}
	if state.Pool.Max() != 100 {
		t.Errorf("Expected 100 max mana, got %v", state.Pool.Max())
	}
}

func TestKeyPressCastsAndPaysMana(t *testing.T) {
	g := newSimGame(t)

	g.pressSlot(0)
	g.sched.Step(16 * time.Millisecond)
	g.releasePending()

	if mana := g.state.Pool.Current(); mana != 90 {
		t.Errorf("Expected 90 mana after the cast, got %v", mana)
	}
	if g.statTriggered.Load() != 1 {
		t.Errorf("Expected 1 triggered cast, got %d", g.statTriggered.Load())
	}

	// The outcome event reaches the HUD on the next step
	g.sched.Step(16 * time.Millisecond)
	if g.lastMessage != "bolt!" {
		t.Errorf("Expected cast message, got %q", g.lastMessage)
	}
}

func TestDeniedCastSetsMessage(t *testing.T) {
	g := newSimGame(t)

	g.pressSlot(0)
	g.sched.Step(16 * time.Millisecond)
	g.releasePending()

	// Still on cooldown: the second press must be denied
	g.pressSlot(0)
	g.sched.Step(16 * time.Millisecond)
	g.releasePending()
	g.sched.Step(16 * time.Millisecond)

	if g.statDenied.Load() != 1 {
		t.Errorf("Expected 1 denied cast, got %d", g.statDenied.Load())
	}
	if g.lastMessage == "" {
		t.Errorf("Expected a denial message")
	}
}

func TestDrawRendersWithoutPanic(t *testing.T) {
	g := newSimGame(t)

	g.draw()
	g.pressSlot(0)
	g.sched.Step(16 * time.Millisecond)
	g.releasePending()
	g.draw()
}

func TestDenialText(t *testing.T) {
	g := newSimGame(t)
	g.state.Pool.SetCurrent(0)

	g.pressSlot(0)
	g.sched.Step(16 * time.Millisecond)
	g.releasePending()
	g.sched.Step(16 * time.Millisecond)

	if g.lastMessage != "bolt: not enough mana" {
		t.Errorf("Expected mana denial message, got %q", g.lastMessage)
	}
}
