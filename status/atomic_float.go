package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 behind an atomic.Uint64 bit pattern.
type AtomicFloat struct {
	bits atomic.Uint64
}

// Load returns the stored value.
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Store replaces the stored value.
func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Add increments the stored value by delta using a CAS loop.
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
