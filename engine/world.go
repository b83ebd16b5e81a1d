package engine

import (
	"reflect"
	"sort"
	"sync"

	"github.com/lixenwraith/abilitygate/core"
)

// System is a unit of per-frame simulation logic. Systems run in
// ascending Priority order each step.
type System interface {
	// Init is called once when the system is added to a world.
	Init(w *World)

	// Priority determines execution order. Lower runs first.
	Priority() int

	// Update advances the system by one frame.
	Update(w *World)
}

// World owns entities, component stores, shared resources, and the
// registered systems. Stores are created lazily per component type.
type World struct {
	mu        sync.RWMutex
	nextID    core.Entity
	stores    map[reflect.Type]any
	allStores []AnyStore
	systems   []System

	// Resources holds singleton state shared across systems.
	Resources *ResourceStore
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores:    make(map[reflect.Type]any),
		Resources: NewResourceStore(),
	}
}

// CreateEntity allocates a fresh entity ID. IDs are never reused.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	return w.nextID
}

// DestroyEntity removes the entity's components from every store.
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.RLock()
	stores := make([]AnyStore, len(w.allStores))
	copy(stores, w.allStores)
	w.mu.RUnlock()

	for _, store := range stores {
		store.Remove(e)
	}
}

// GetStore returns the store for component type T, creating it on first
// use.
func GetStore[T any](w *World) *Store[T] {
	var zero T
	key := reflect.TypeOf(zero)

	w.mu.RLock()
	existing, ok := w.stores[key]
	w.mu.RUnlock()
	if ok {
		return existing.(*Store[T])
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if existing, ok := w.stores[key]; ok {
		return existing.(*Store[T])
	}
	store := NewStore[T]()
	w.stores[key] = store
	w.allStores = append(w.allStores, store)
	return store
}

// AddSystem registers a system, initializes it, and keeps the system
// list sorted by priority.
func (w *World) AddSystem(sys System) {
	w.mu.Lock()
	w.systems = append(w.systems, sys)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	w.mu.Unlock()

	sys.Init(w)
}

// Systems returns a snapshot of the registered systems in execution
// order.
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs every system once in priority order.
func (w *World) Update() {
	for _, sys := range w.Systems() {
		sys.Update(w)
	}
}

// Clear removes all components from every store. Systems and resources
// are untouched.
func (w *World) Clear() {
	w.mu.RLock()
	stores := make([]AnyStore, len(w.allStores))
	copy(stores, w.allStores)
	w.mu.RUnlock()

	for _, store := range stores {
		store.Clear()
	}
}
