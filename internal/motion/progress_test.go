package motion

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMapClampsOutsideInputRange(t *testing.T) {
	r := Range(100, 500, 0, 300)

	cases := []struct {
		offset float64
		want   float64
	}{
		{offset: -1000, want: 0},
		{offset: 99.999, want: 0},
		{offset: 100, want: 0},
		{offset: 300, want: 150},
		{offset: 500, want: 300},
		{offset: 500.001, want: 300},
		{offset: 1e9, want: 300},
	}
	for _, tc := range cases {
		if got := Map(tc.offset, r); !approx(got, tc.want) {
			t.Errorf("Map(%v) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestMapDescendingOutput(t *testing.T) {
	r := Range(0, 300, 1, 0.5)

	if got := r.Map(0); got != 1 {
		t.Fatalf("expected output min at input min, got %v", got)
	}
	if got := r.Map(300); got != 0.5 {
		t.Fatalf("expected output max at input max, got %v", got)
	}
	if got := r.Map(150); !approx(got, 0.75) {
		t.Fatalf("expected midpoint 0.75, got %v", got)
	}
	if got := r.Map(900); got != 0.5 {
		t.Fatalf("expected clamp to 0.5, got %v", got)
	}
}

func TestMapMalformedRangeIsConstant(t *testing.T) {
	for _, r := range []ScrollRange{Range(10, 10, 3, 7), Range(20, 10, 3, 7)} {
		for _, offset := range []float64{-5, 10, 15, 20, 1000} {
			if got := Map(offset, r); got != 3 {
				t.Fatalf("Map(%v, %+v) = %v, want constant 3", offset, r, got)
			}
		}
	}
}

func TestReversed(t *testing.T) {
	r := Range(0, 1, 10, -10).Reversed()
	if r.OutputMin != -10 || r.OutputMax != 10 {
		t.Fatalf("unexpected reversed range %+v", r)
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(50, 0, 200); !approx(got, 0.25) {
		t.Fatalf("expected 0.25, got %v", got)
	}
	if got := Progress(-1, 0, 200); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Progress(201, 0, 200); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestKeyframes(t *testing.T) {
	k := PageOpacity

	cases := map[float64]float64{
		-1:   1,
		0:    1,
		0.25: 0.9,
		0.5:  0.8,
		0.75: 0.7,
		1:    0.6,
		2:    0.6,
	}
	for in, want := range cases {
		if got := k.At(in); !approx(got, want) {
			t.Errorf("At(%v) = %v, want %v", in, got, want)
		}
	}

	if got := (Keyframes{Inputs: []float64{0, 1}, Outputs: []float64{1}}).At(0.5); got != 0 {
		t.Fatalf("mismatched keyframes should evaluate to 0, got %v", got)
	}
	if got := (Keyframes{Inputs: []float64{3}, Outputs: []float64{7}}).At(100); got != 7 {
		t.Fatalf("single keyframe should be constant, got %v", got)
	}
}

func TestElementProgress(t *testing.T) {
	// viewport 800 tall, element from 1000 to 1400
	if got := ElementProgress(200, 800, 1000, 400); got != 0 {
		t.Fatalf("expected 0 when element top meets viewport bottom, got %v", got)
	}
	if got := ElementProgress(1400, 800, 1000, 400); got != 1 {
		t.Fatalf("expected 1 when element bottom leaves viewport top, got %v", got)
	}
	if got := ElementProgress(800, 800, 1000, 400); !approx(got, 0.5) {
		t.Fatalf("expected 0.5 halfway through, got %v", got)
	}
}
