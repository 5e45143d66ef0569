package motion

import "testing"

func TestTriggerStartsHidden(t *testing.T) {
	tr := NewTrigger(TriggerOptions{Threshold: DefaultThreshold, Once: true})
	if tr.State() != Hidden {
		t.Fatalf("expected hidden, got %v", tr.State())
	}
}

func TestTriggerOnceLatchesVisible(t *testing.T) {
	entered := 0
	tr := NewTrigger(TriggerOptions{
		Threshold:  0.2,
		Once:       true,
		Descriptor: Variant(VariantFadeUp),
		OnEnter: func(d Descriptor) {
			entered++
			if d.Name != VariantFadeUp {
				t.Fatalf("unexpected descriptor %q", d.Name)
			}
		},
		OnExit: func(Descriptor) { t.Fatal("once trigger must not exit") },
	})

	if s, changed := tr.Observe(0.1); s != Hidden || changed {
		t.Fatalf("below threshold: got %v changed=%v", s, changed)
	}
	if s, changed := tr.Observe(0.2); s != Visible || !changed {
		t.Fatalf("at threshold: got %v changed=%v", s, changed)
	}
	for _, f := range []float64{0, 0.05, 1, 0, -1} {
		if s, changed := tr.Observe(f); s != Visible || changed {
			t.Fatalf("once trigger left visible on %v: %v changed=%v", f, s, changed)
		}
	}
	if !tr.Latched() {
		t.Fatal("expected latched trigger")
	}
	if entered != 1 {
		t.Fatalf("expected a single enter, got %d", entered)
	}
}

func TestTriggerRepeatableToggles(t *testing.T) {
	var enters, exits int
	tr := NewTrigger(TriggerOptions{
		Threshold: 0.5,
		OnEnter:   func(Descriptor) { enters++ },
		OnExit:    func(Descriptor) { exits++ },
	})

	seq := []struct {
		fraction float64
		want     State
	}{
		{0.4, Hidden},
		{0.6, Visible},
		{0.9, Visible},
		{0.49, Hidden},
		{0.5, Visible},
		{0, Hidden},
	}
	for i, step := range seq {
		if got, _ := tr.Observe(step.fraction); got != step.want {
			t.Fatalf("step %d: Observe(%v) = %v, want %v", i, step.fraction, got, step.want)
		}
	}
	if enters != 2 || exits != 2 {
		t.Fatalf("expected 2 enters and 2 exits, got %d and %d", enters, exits)
	}
	if tr.Latched() {
		t.Fatal("repeatable trigger must never latch")
	}
}

func TestTriggerThresholdClamped(t *testing.T) {
	if got := NewTrigger(TriggerOptions{Threshold: 3}).Threshold(); got != 1 {
		t.Fatalf("expected threshold clamped to 1, got %v", got)
	}
	tr := NewTrigger(TriggerOptions{Threshold: -2})
	if got := tr.Threshold(); got != 0 {
		t.Fatalf("expected threshold clamped to 0, got %v", got)
	}
	if s, _ := tr.Observe(0); s != Visible {
		t.Fatalf("zero threshold should reveal immediately, got %v", s)
	}
}

func TestStateString(t *testing.T) {
	if Hidden.String() != "hidden" || Visible.String() != "visible" {
		t.Fatalf("unexpected state names %q %q", Hidden, Visible)
	}
}
