// Package counter tracks cumulative OS counters and the delta between the
// last two observations.
package counter

// Unsigned is the set of counter widths reported by OS sources.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Delta wraps a cumulative counter and remembers its previous value.
type Delta[T Unsigned] struct {
	prev    T
	cur     T
	wrapped bool
}

// NewDelta returns a Delta whose previous and current values are baseline.
// Freshly discovered entities use a zero baseline.
func NewDelta[T Unsigned](baseline T) Delta[T] {
	return Delta[T]{prev: baseline, cur: baseline}
}

// Update installs v as the current value.
func (d *Delta[T]) Update(v T) {
	d.prev = d.cur
	d.cur = v
	d.wrapped = v < d.prev
}

// Delta returns current - previous. A counter that went backwards (reset or
// wraparound) reports 0 rather than an underflowed value.
func (d Delta[T]) Delta() T {
	if d.cur < d.prev {
		return 0
	}
	return d.cur - d.prev
}

// Total is the latest cumulative value.
func (d Delta[T]) Total() T { return d.cur }

// Previous is the value before the latest Update.
func (d Delta[T]) Previous() T { return d.prev }

// Wrapped reports whether the latest Update observed a smaller value.
func (d Delta[T]) Wrapped() bool { return d.wrapped }
