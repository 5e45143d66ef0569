// Package motion holds the scroll and time driven animation math used to
// render the portfolio: range mapping, visibility triggers, stagger offsets,
// parallax layers and easing.
package motion

// ScrollRange maps scroll offsets in [InputMin, InputMax] onto
// [OutputMin, OutputMax].
type ScrollRange struct {
	InputMin  float64 `json:"input_min"`
	InputMax  float64 `json:"input_max"`
	OutputMin float64 `json:"output_min"`
	OutputMax float64 `json:"output_max"`
}

// Range is shorthand for building a ScrollRange.
func Range(inMin, inMax, outMin, outMax float64) ScrollRange {
	return ScrollRange{InputMin: inMin, InputMax: inMax, OutputMin: outMin, OutputMax: outMax}
}

// Valid reports whether the input range is usable for interpolation.
func (r ScrollRange) Valid() bool {
	return r.InputMin < r.InputMax
}

// Reversed swaps the output bounds.
func (r ScrollRange) Reversed() ScrollRange {
	r.OutputMin, r.OutputMax = r.OutputMax, r.OutputMin
	return r
}

// Map interpolates offset into the output range of r. Offsets outside the
// input range clamp to the nearest output bound. A malformed range
// (InputMin >= InputMax) always yields OutputMin.
func Map(offset float64, r ScrollRange) float64 {
	if !r.Valid() {
		return r.OutputMin
	}
	if offset <= r.InputMin {
		return r.OutputMin
	}
	if offset >= r.InputMax {
		return r.OutputMax
	}
	t := (offset - r.InputMin) / (r.InputMax - r.InputMin)
	return r.OutputMin + t*(r.OutputMax-r.OutputMin)
}

// Map is the method form of Map.
func (r ScrollRange) Map(offset float64) float64 {
	return Map(offset, r)
}

// Progress returns where offset sits between min and max as a value in [0, 1].
func Progress(offset, min, max float64) float64 {
	return Map(offset, ScrollRange{InputMin: min, InputMax: max, OutputMin: 0, OutputMax: 1})
}

// Keyframes is a piecewise linear mapping over ascending input stops.
type Keyframes struct {
	Inputs  []float64 `json:"inputs"`
	Outputs []float64 `json:"outputs"`
}

// At evaluates the keyframes at x, clamping outside the first and last stop.
// Mismatched or empty stop lists evaluate to 0; a single stop is constant.
func (k Keyframes) At(x float64) float64 {
	n := len(k.Inputs)
	if n == 0 || n != len(k.Outputs) {
		return 0
	}
	if n == 1 || x <= k.Inputs[0] {
		return k.Outputs[0]
	}
	if x >= k.Inputs[n-1] {
		return k.Outputs[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= k.Inputs[i] {
			return Map(x, Range(k.Inputs[i-1], k.Inputs[i], k.Outputs[i-1], k.Outputs[i]))
		}
	}
	return k.Outputs[n-1]
}

// ElementProgress is the progress of an element scrolling through the
// viewport, 0 when its top meets the bottom of the viewport and 1 when its
// bottom leaves the top.
func ElementProgress(scrollY, viewportHeight, elementTop, elementHeight float64) float64 {
	start := elementTop - viewportHeight
	end := elementTop + elementHeight
	return Progress(scrollY, start, end)
}
