package engine

import (
	"fmt"
	"reflect"
	"sync"
	"time"
)

// ResourceStore holds singleton values shared across systems,
// keyed by concrete type. One instance per type.
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates an empty resource store.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers a singleton resource, replacing any existing
// value of the same type.
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource by type.
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var zero T
	val, ok := rs.resources[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	return typed, ok
}

// MustGetResource retrieves a resource by type, panicking if absent.
// For resources whose presence is a startup invariant.
func MustGetResource[T any](rs *ResourceStore) T {
	val, ok := GetResource[T](rs)
	if !ok {
		var zero T
		panic(fmt.Sprintf("required resource %T not found", zero))
	}
	return val
}

// TimeResource carries the simulation clock state that systems read
// each frame. The scheduler is the only writer.
type TimeResource struct {
	mu          sync.RWMutex
	gameTime    time.Time
	deltaTime   time.Duration
	frameNumber int64
}

// Update advances the clock state. Called once per step by the scheduler.
func (t *TimeResource) Update(gameTime time.Time, delta time.Duration, frame int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gameTime = gameTime
	t.deltaTime = delta
	t.frameNumber = frame
}

// GameTime returns the simulation timestamp of the current frame.
func (t *TimeResource) GameTime() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gameTime
}

// DeltaTime returns the elapsed simulation time since the previous frame.
func (t *TimeResource) DeltaTime() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.deltaTime
}

// FrameNumber returns the current frame counter.
func (t *TimeResource) FrameNumber() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.frameNumber
}
