package textdust

import "math"
import "sync/atomic"

// An immutable view of the pointer, passed into every
// particle update of a tick.
type PointerState struct {
	X, Y float64
	Radius float64
	Active bool
}

// Pointer stores the latest pointer coordinates. Both coordinates
// are packed in a single atomic word, so a reader never observes
// an x from one event and a y from another. The zero value is an
// active pointer at (0, 0); use [Pointer.Clear]() to deactivate it.
type Pointer struct {
	packed atomic.Uint64
}

const pointerInactive = math.MaxUint64 // NaN bits on both halves

// Stores the latest pointer position. Safe to call from any goroutine.
func (self *Pointer) Set(x, y float64) {
	self.packed.Store(packPointer(float32(x), float32(y)))
}

// Marks the pointer as outside the field. Inactive pointers
// never repel particles.
func (self *Pointer) Clear() {
	self.packed.Store(pointerInactive)
}

// Returns the current pointer state with the given influence radius.
func (self *Pointer) Snapshot(radius float64) PointerState {
	packed := self.packed.Load()
	if packed == pointerInactive { return PointerState{ Radius: radius } }
	x, y := unpackPointer(packed)
	return PointerState{ X: float64(x), Y: float64(y), Radius: radius, Active: true }
}

func packPointer(x, y float32) uint64 {
	return uint64(math.Float32bits(x)) << 32 | uint64(math.Float32bits(y))
}

func unpackPointer(packed uint64) (x, y float32) {
	return math.Float32frombits(uint32(packed >> 32)), math.Float32frombits(uint32(packed))
}
