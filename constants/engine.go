package constants

import "time"

// Event queue sizing. The size must stay a power of two: the queue masks
// indices instead of taking a modulo.
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// System priorities. Lower runs first within a step. Ticking must precede
// casting so every trigger decision sees fully advanced timers.
const (
	PriorityTick  = 10
	PriorityRegen = 20
	PriorityCast  = 30
)

// DefaultTickInterval is the scheduler step used when no configuration
// overrides it.
const DefaultTickInterval = 16 * time.Millisecond
