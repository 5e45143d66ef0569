package motion

import (
	"strconv"
	"time"
)

// CountUp animates a number from Start to End once its trigger fires.
type CountUp struct {
	Start    float64
	End      float64
	Duration time.Duration
	Decimals int
	Prefix   string
	Suffix   string
}

// DefaultCountUpDuration is how long achievement counters take to settle.
const DefaultCountUpDuration = 2 * time.Second

// Value returns the counter value after elapsed time.
func (c CountUp) Value(elapsed time.Duration) float64 {
	d := c.Duration
	if d <= 0 {
		d = DefaultCountUpDuration
	}
	p := Progress(float64(elapsed), 0, float64(d))
	return c.Start + p*(c.End-c.Start)
}

// Done reports whether the counter has reached End.
func (c CountUp) Done(elapsed time.Duration) bool {
	d := c.Duration
	if d <= 0 {
		d = DefaultCountUpDuration
	}
	return elapsed >= d
}

// Format renders the counter at elapsed with its prefix, suffix and
// decimal places.
func (c CountUp) Format(elapsed time.Duration) string {
	decimals := c.Decimals
	if decimals < 0 {
		decimals = 0
	}
	return c.Prefix + strconv.FormatFloat(c.Value(elapsed), 'f', decimals, 64) + c.Suffix
}
