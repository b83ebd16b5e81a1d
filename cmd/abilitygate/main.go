// Command abilitygate is an interactive terminal demo of the ability
// gating engine. It builds a loadout from config (or the built-in
// default), runs the tick/regen/cast systems on a fixed step, and draws
// cooldown bars, charge pips and the mana pool as keys are pressed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/abilitygate/ability"
	"github.com/lixenwraith/abilitygate/config"
	"github.com/lixenwraith/abilitygate/core"
	"github.com/lixenwraith/abilitygate/engine"
	"github.com/lixenwraith/abilitygate/events"
	"github.com/lixenwraith/abilitygate/input"
	"github.com/lixenwraith/abilitygate/pool"
	"github.com/lixenwraith/abilitygate/pool/premade"
	"github.com/lixenwraith/abilitygate/status"
	"github.com/lixenwraith/abilitygate/systems"
)

// actionKeys binds loadout slots to keyboard runes, in slot order.
var actionKeys = []rune{'q', 'w', 'e', 'r', '1', '2', '3', '4', '5'}

type Game struct {
	screen        tcell.Screen
	width, height int

	cfg    *config.Config
	world  *engine.World
	sched  *engine.Scheduler
	player core.Entity
	state  *ability.State[int, premade.Mana]
	queue  *events.EventQueue

	statTriggered *atomic.Int64
	statDenied    *atomic.Int64

	// Keys pressed since the last step; released after it runs because
	// terminals report no key-up events.
	pendingRelease []int

	lastMessage     string
	lastMessageTime time.Time

	audioInit bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen: screen,
		cfg:    cfg,
	}
	g.width, g.height = screen.Size()

	if err := g.buildWorld(); err != nil {
		screen.Fini()
		return nil, err
	}

	// Non-fatal, the demo can run silent
	if err := g.initAudio(); err == nil {
		g.audioInit = true
	}

	return g, nil
}

// buildWorld assembles the simulation: resources, systems and the
// single player entity carrying the configured loadout.
func (g *Game) buildWorld() error {
	g.world = engine.NewWorld()
	g.queue = events.NewEventQueue()
	registry := status.NewRegistry()

	engine.AddResource(g.world.Resources, &engine.TimeResource{})
	engine.AddResource(g.world.Resources, g.queue)
	engine.AddResource(g.world.Resources, registry)

	g.world.AddSystem(systems.NewTickSystem[int, premade.Mana]())
	g.world.AddSystem(systems.NewRegenSystem[int, premade.Mana]())
	g.world.AddSystem(systems.NewCastSystem[int, premade.Mana]())

	state, err := buildLoadout(g.cfg)
	if err != nil {
		return err
	}
	g.state = state
	g.player = g.world.CreateEntity()
	engine.GetStore[*ability.State[int, premade.Mana]](g.world).Add(g.player, state)

	g.sched = engine.NewScheduler(g.world, engine.NewTimeProvider(), g.cfg.TickInterval())
	g.sched.RegisterEventHandler(g)

	g.statTriggered = registry.Ints.Get("cast.triggered")
	g.statDenied = registry.Ints.Get("cast.denied")
	return nil
}

// buildLoadout translates the configured abilities into a combinator
// state keyed by slot index.
func buildLoadout(cfg *config.Config) (*ability.State[int, premade.Mana], error) {
	charges := ability.NewChargeState[int]()
	cooldowns := ability.NewCooldownState[int]()
	costs := pool.NewCosts[int, premade.Mana]()

	if cfg.GlobalCooldownSeconds > 0 {
		cooldowns.SetGlobal(ability.FromSecs(cfg.GlobalCooldownSeconds))
	}

	for slot, a := range cfg.Abilities {
		if a.CooldownSeconds > 0 {
			cooldowns.Set(slot, ability.FromSecs(a.CooldownSeconds))
		}
		if a.Charges > 0 {
			replenish, err := a.Replenish()
			if err != nil {
				return nil, err
			}
			coupling, err := a.CooldownCoupling()
			if err != nil {
				return nil, err
			}
			charges.Set(slot, ability.NewCharges(uint8(a.Charges), replenish, coupling))
		}
		if a.Cost > 0 {
			costs.Set(slot, premade.Mana(a.Cost))
		}
	}

	mana := premade.NewManaPool(premade.Mana(cfg.Mana.Max), premade.Mana(cfg.Mana.Max), premade.Mana(cfg.Mana.Regen))
	return &ability.State[int, premade.Mana]{
		Actions:   input.NewActionState[int](),
		Charges:   charges,
		Cooldowns: cooldowns,
		Pool:      mana,
		Costs:     costs,
	}, nil
}

// EventTypes subscribes the HUD to cast outcomes for the message line
// and audio cues.
func (g *Game) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventAbilityTriggered,
		events.EventAbilityDenied,
	}
}

func (g *Game) HandleEvent(w *engine.World, event events.GameEvent) {
	payload, ok := event.Payload.(events.AbilityResolvedPayload)
	if !ok {
		return
	}
	slot, ok := payload.Action.(int)
	if !ok || slot < 0 || slot >= len(g.cfg.Abilities) {
		return
	}
	name := g.cfg.Abilities[slot].Name

	switch event.Type {
	case events.EventAbilityTriggered:
		g.setMessage(fmt.Sprintf("%s!", name))
		g.playTone(880)
	case events.EventAbilityDenied:
		g.setMessage(fmt.Sprintf("%s: %s", name, denialText(payload.Reason)))
		g.playTone(220)
	}
}

func denialText(reason error) string {
	switch {
	case errors.Is(reason, ability.ErrNoCharges):
		return "no charges"
	case errors.Is(reason, ability.ErrOnGlobalCooldown):
		return "global cooldown"
	case errors.Is(reason, ability.ErrOnCooldown):
		return "on cooldown"
	case errors.Is(reason, ability.ErrPoolInsufficient):
		return "not enough mana"
	default:
		return "not ready"
	}
}

func (g *Game) setMessage(msg string) {
	g.lastMessage = msg
	g.lastMessageTime = time.Now()
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
}

func (g *Game) playTone(freq float64) {
	if !g.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(50 * time.Millisecond)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(duration, sine))
}

func (g *Game) pressSlot(slot int) {
	g.queue.Push(events.GameEvent{
		Type:      events.EventAbilityPressed,
		Payload:   events.AbilityInputPayload{Entity: g.player, Action: slot},
		Timestamp: time.Now(),
	})
	g.pendingRelease = append(g.pendingRelease, slot)
}

// releasePending emits key-up events for everything pressed before the
// step that just ran.
func (g *Game) releasePending() {
	for _, slot := range g.pendingRelease {
		g.queue.Push(events.GameEvent{
			Type:      events.EventAbilityReleased,
			Payload:   events.AbilityInputPayload{Entity: g.player, Action: slot},
			Timestamp: time.Now(),
		})
	}
	g.pendingRelease = g.pendingRelease[:0]
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); r {
		case ' ':
			g.queue.Push(events.GameEvent{
				Type:      events.EventGameReset,
				Timestamp: time.Now(),
			})
			g.setMessage("reset")
		default:
			for slot, key := range actionKeys {
				if r == key && slot < len(g.cfg.Abilities) {
					g.pressSlot(slot)
					break
				}
			}
		}

	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
	}
	return true
}

func bar(filled float64, width int) string {
	if filled < 0 {
		filled = 0
	}
	if filled > 1 {
		filled = 1
	}
	n := int(filled * float64(width))
	out := make([]rune, width)
	for i := range out {
		if i < n {
			out[i] = '█'
		} else {
			out[i] = '░'
		}
	}
	return string(out)
}

func (g *Game) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) draw() {
	g.screen.Clear()

	header := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	readyStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	waitStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	g.drawText(2, 1, "ABILITYGATE", header)
	g.drawText(2, 2, "keys: q/w/e/r cast, space reset, esc quit", dim)

	row := 4
	for slot, a := range g.cfg.Abilities {
		if slot >= len(actionKeys) {
			break
		}
		style := readyStyle
		if g.state.Ready(slot) != nil {
			style = waitStyle
		}
		g.drawText(2, row, fmt.Sprintf("[%c] %-8s", actionKeys[slot], a.Name), style)

		col := 16
		if cd := g.state.Cooldowns.Get(slot); cd != nil {
			frac := 1 - cd.Remaining().Seconds()/cd.MaxTime().Seconds()
			g.drawText(col, row, bar(frac, 12), style)
			col += 14
		}
		if ch := g.state.Charges.Get(slot); ch != nil {
			pips := ""
			for i := uint8(0); i < ch.Max(); i++ {
				if i < ch.Current() {
					pips += "●"
				} else {
					pips += "○"
				}
			}
			g.drawText(col, row, pips, style)
			col += int(ch.Max()) + 2
		}
		if cost, ok := g.state.Costs.Get(slot); ok {
			g.drawText(col, row, fmt.Sprintf("%.0f mana", float64(cost)), dim)
		}
		row++
	}

	row++
	if gcd := g.state.Cooldowns.Global; gcd != nil {
		frac := 1 - gcd.Remaining().Seconds()/gcd.MaxTime().Seconds()
		g.drawText(2, row, fmt.Sprintf("gcd  %s", bar(frac, 12)), dim)
		row++
	}
	manaFrac := float64(g.state.Pool.Current()) / float64(g.state.Pool.Max())
	g.drawText(2, row, fmt.Sprintf("mana %s %.0f/%.0f",
		bar(manaFrac, 12), float64(g.state.Pool.Current()), float64(g.state.Pool.Max())),
		tcell.StyleDefault.Foreground(tcell.ColorBlue))
	row += 2

	g.drawText(2, row, fmt.Sprintf("casts %d  denied %d",
		g.statTriggered.Load(), g.statDenied.Load()), dim)
	row++

	if g.lastMessage != "" && time.Since(g.lastMessageTime) < 2*time.Second {
		g.drawText(2, row, g.lastMessage, header)
	}

	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			g.sched.Step(now.Sub(last))
			last = now
			g.releasePending()
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to a loadout config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	game, err := NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
