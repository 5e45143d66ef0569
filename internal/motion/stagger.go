package motion

import "time"

const (
	DefaultStaggerStep = 100 * time.Millisecond
	DefaultStaggerBase = 100 * time.Millisecond

	// WordStaggerStep is the per-word step used by heading reveals.
	WordStaggerStep = 50 * time.Millisecond
)

// Stagger offsets the start of each child in a list by a fixed step on top
// of the parent's own delay.
type Stagger struct {
	Base time.Duration
	Step time.Duration
}

// DefaultStagger matches the list reveal used across sections.
func DefaultStagger() Stagger {
	return Stagger{Base: DefaultStaggerBase, Step: DefaultStaggerStep}
}

// Delay returns Base + i*Step. Negative indexes are treated as 0.
func (s Stagger) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return s.Base + time.Duration(i)*s.Step
}

// Delays returns the start offsets for n children in order.
func (s Stagger) Delays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = s.Delay(i)
	}
	return out
}

// Apply returns one descriptor per child, each delayed by its stagger offset
// on top of the descriptor's own delay.
func (s Stagger) Apply(d Descriptor, n int) []Descriptor {
	if n <= 0 {
		return nil
	}
	out := make([]Descriptor, n)
	for i := range out {
		out[i] = d.WithDelay(d.Delay + s.Delay(i))
	}
	return out
}
