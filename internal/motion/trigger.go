package motion

// State is the visibility state of a tracked element.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// DefaultThreshold is the visible fraction the site uses unless a section
// asks for something else.
const DefaultThreshold = 0.2

// TriggerOptions configures a Trigger.
type TriggerOptions struct {
	Threshold  float64
	Once       bool
	Descriptor Descriptor

	// OnEnter runs when the trigger enters Visible. It starts the style
	// transition described by the descriptor.
	OnEnter func(Descriptor)
	// OnExit runs when a repeatable trigger drops back to Hidden.
	OnExit func(Descriptor)
}

// Trigger is the hidden/visible state machine behind scroll reveal
// animations. It is owned by a single caller and is not safe for
// concurrent use.
type Trigger struct {
	opts  TriggerOptions
	state State
}

// NewTrigger returns a trigger in the Hidden state. The threshold is
// clamped to [0, 1].
func NewTrigger(opts TriggerOptions) *Trigger {
	opts.Threshold = clamp01(opts.Threshold)
	return &Trigger{opts: opts}
}

// State returns the current state.
func (t *Trigger) State() State { return t.state }

// Threshold returns the effective visibility threshold.
func (t *Trigger) Threshold() float64 { return t.opts.Threshold }

// Descriptor returns the animation the trigger runs.
func (t *Trigger) Descriptor() Descriptor { return t.opts.Descriptor }

// Latched reports whether the trigger can no longer change state.
func (t *Trigger) Latched() bool {
	return t.opts.Once && t.state == Visible
}

// Observe feeds the current visible fraction of the element and returns the
// resulting state and whether a transition happened.
func (t *Trigger) Observe(fraction float64) (State, bool) {
	switch t.state {
	case Hidden:
		if fraction >= t.opts.Threshold {
			t.state = Visible
			if t.opts.OnEnter != nil {
				t.opts.OnEnter(t.opts.Descriptor)
			}
			return t.state, true
		}
	case Visible:
		if t.opts.Once {
			return t.state, false
		}
		if fraction < t.opts.Threshold {
			t.state = Hidden
			if t.opts.OnExit != nil {
				t.opts.OnExit(t.opts.Descriptor)
			}
			return t.state, true
		}
	}
	return t.state, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
