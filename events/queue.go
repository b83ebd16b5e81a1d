package events

import (
	"sync/atomic"

	"github.com/lixenwraith/abilitygate/constants"
)

// EventQueue is a lock-free MPSC ring buffer for game events.
//
// Thread-safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (the scheduler's step)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full.
type EventQueue struct {
	events    [constants.EventQueueSize]GameEvent
	published [constants.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event using CAS with published flags. Safe for concurrent
// producers; O(1) amortized.
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constants.EventBufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // Must follow the write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > constants.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-constants.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances the head.
// Single-consumer design; published flags guard against half-written slots.
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > constants.EventQueueSize {
			maxAvailable = constants.EventQueueSize
			currentHead = currentTail - constants.EventQueueSize
		}

		result := make([]GameEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & constants.EventBufferMask

			if !eq.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Pending returns a best-effort count of unconsumed events.
func (eq *EventQueue) Pending() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail < head {
		return 0
	}
	return int(min(tail-head, uint64(constants.EventQueueSize)))
}
