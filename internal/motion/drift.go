package motion

import (
	"math"
	"time"
)

type Pattern string

const (
	PatternDefault  Pattern = "default"
	PatternCircular Pattern = "circular"
	PatternFigure8  Pattern = "figure8"
	PatternWave     Pattern = "wave"
	PatternZigzag   Pattern = "zigzag"
)

// DriftInterval is how often the ambient drift is resampled.
const DriftInterval = 50 * time.Millisecond

// Wave is one axis of a drift pattern: Amp * sin(t*Freq), or cos when Cos
// is set.
type Wave struct {
	Cos  bool    `json:"cos,omitempty"`
	Freq float64 `json:"freq"`
	Amp  float64 `json:"amp"`
}

func (w Wave) At(t float64) float64 {
	if w.Cos {
		return math.Cos(t*w.Freq) * w.Amp
	}
	return math.Sin(t*w.Freq) * w.Amp
}

// Curve is a drift pattern. t is the wall clock in milliseconds divided by
// Period.
type Curve struct {
	Period float64 `json:"period"`
	X      Wave    `json:"x"`
	Y      Wave    `json:"y"`
}

var curves = map[Pattern]Curve{
	PatternCircular: {Period: 8000, X: Wave{Freq: 1, Amp: 20}, Y: Wave{Cos: true, Freq: 1, Amp: 20}},
	PatternFigure8:  {Period: 10000, X: Wave{Freq: 1, Amp: 25}, Y: Wave{Freq: 2, Amp: 15}},
	PatternWave:     {Period: 9000, X: Wave{Freq: 1, Amp: 15}, Y: Wave{Freq: 0.5, Amp: 10}},
	PatternZigzag:   {Period: 12000, X: Wave{Freq: 1, Amp: 20}, Y: Wave{Freq: 3, Amp: 10}},
	PatternDefault:  {Period: 11000, X: Wave{Freq: 1, Amp: 10}, Y: Wave{Cos: true, Freq: 1.3, Amp: 15}},
}

// CurveFor returns the curve of p. Unknown patterns use the default float.
func CurveFor(p Pattern) Curve {
	if c, ok := curves[p]; ok {
		return c
	}
	return curves[PatternDefault]
}

// Drift returns the ambient offset in pixels of a floating shape at the
// given wall clock time.
func Drift(p Pattern, at time.Time) (x, y float64) {
	c := CurveFor(p)
	t := float64(at.UnixMilli()) / c.Period
	return c.X.At(t), c.Y.At(t)
}

// Amplitude is the largest offset a pattern can produce on each axis.
func Amplitude(p Pattern) (x, y float64) {
	c := CurveFor(p)
	return c.X.Amp, c.Y.Amp
}
