package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/abilitygate/events"
)

// Scheduler drives the simulation loop: each step it updates the time
// resource, dispatches queued events, and runs the world's systems.
//
// Two driving modes:
//   - Run/Stop: fixed-interval ticker, for live simulations
//   - Step: manual advancement, for tests and external loops
type Scheduler struct {
	world    *World
	clock    Clock
	interval time.Duration
	router   *events.Router[*World]
	timeRes  *TimeResource
	queue    *events.EventQueue

	frame    int64
	lastTick time.Time
	bindOnce sync.Once
	running  atomic.Bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler for the world. The world's resources
// must already hold a *TimeResource and a *events.EventQueue.
func NewScheduler(world *World, clock Clock, interval time.Duration) *Scheduler {
	queue := MustGetResource[*events.EventQueue](world.Resources)
	return &Scheduler{
		world:    world,
		clock:    clock,
		interval: interval,
		router:   events.NewRouter[*World](queue),
		timeRes:  MustGetResource[*TimeResource](world.Resources),
		queue:    queue,
		lastTick: clock.Now(),
		stopChan: make(chan struct{}),
	}
}

// RegisterEventHandler subscribes a handler to its declared event types.
// Systems implementing events.Handler are registered automatically on
// the first step.
func (s *Scheduler) RegisterEventHandler(h events.Handler[*World]) {
	s.router.Register(h)
}

// bindSystemHandlers registers every system that also implements the
// event handler interface. Runs once, before the first dispatch.
func (s *Scheduler) bindSystemHandlers() {
	for _, sys := range s.world.Systems() {
		if h, ok := sys.(events.Handler[*World]); ok {
			s.router.Register(h)
		}
	}
}

// Step advances the simulation by delta: time update, event dispatch,
// then system updates in priority order.
func (s *Scheduler) Step(delta time.Duration) {
	s.bindOnce.Do(s.bindSystemHandlers)

	s.frame++
	s.timeRes.Update(s.clock.Now(), delta, s.frame)
	s.router.DispatchAll(s.world)
	s.world.Update()
}

// Run starts the fixed-interval loop in a goroutine. Delta is measured
// from the clock so a mock clock still produces coherent steps.
func (s *Scheduler) Run() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}

	s.lastTick = s.clock.Now()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				now := s.clock.Now()
				s.Step(now.Sub(s.lastTick))
				s.lastTick = now
			}
		}
	}()
}

// Stop halts the loop and waits for the in-flight step to finish.
func (s *Scheduler) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.stopChan)
	s.wg.Wait()
}
