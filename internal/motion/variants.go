package motion

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Style is the animatable subset of an element's style.
type Style struct {
	Opacity float64 `json:"opacity"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Scale   float64 `json:"scale"`
	Rotate  float64 `json:"rotate"`
}

// Transform renders the style's transform as CSS.
func (s Style) Transform() string {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "translate3d(%spx, %spx, 0)", formatFloat(s.X), formatFloat(s.Y))
	if scale != 1 {
		fmt.Fprintf(&b, " scale(%s)", formatFloat(scale))
	}
	if s.Rotate != 0 {
		fmt.Fprintf(&b, " rotate(%sdeg)", formatFloat(s.Rotate))
	}
	return b.String()
}

// Descriptor is a named entrance animation: the style an element starts
// from, the style it settles at, and how long the transition takes.
type Descriptor struct {
	Name     string        `json:"name"`
	From     Style         `json:"from"`
	To       Style         `json:"to"`
	Duration time.Duration `json:"duration"`
	Delay    time.Duration `json:"delay"`
	Easing   EasingMode    `json:"easing"`
}

// WithDelay returns a copy of d with the given delay.
func (d Descriptor) WithDelay(delay time.Duration) Descriptor {
	if delay < 0 {
		delay = 0
	}
	d.Delay = delay
	return d
}

// WithDuration returns a copy of d with the given duration.
func (d Descriptor) WithDuration(duration time.Duration) Descriptor {
	d.Duration = duration
	return d
}

// At returns the interpolated style t into the transition, where t is the
// elapsed time since the trigger fired. The delay is honoured.
func (d Descriptor) At(elapsed time.Duration) Style {
	if d.Duration <= 0 {
		if elapsed >= d.Delay {
			return d.To
		}
		return d.From
	}
	p := Progress(float64(elapsed-d.Delay), 0, float64(d.Duration))
	p = Ease(d.Easing, p)
	lerp := func(a, b float64) float64 { return a + (b-a)*p }
	return Style{
		Opacity: lerp(d.From.Opacity, d.To.Opacity),
		X:       lerp(d.From.X, d.To.X),
		Y:       lerp(d.From.Y, d.To.Y),
		Scale:   lerp(scaleOrOne(d.From.Scale), scaleOrOne(d.To.Scale)),
		Rotate:  lerp(d.From.Rotate, d.To.Rotate),
	}
}

// CSS renders the descriptor as custom properties consumed by the reveal
// stylesheet.
func (d Descriptor) CSS() string {
	easing := d.Easing
	if easing == "" {
		easing = EasingEaseOut
	}
	return fmt.Sprintf(
		"--m-from-opacity:%s;--m-from-transform:%s;--m-to-opacity:%s;--m-to-transform:%s;--m-duration:%dms;--m-delay:%dms;--m-easing:%s",
		formatFloat(d.From.Opacity), d.From.Transform(),
		formatFloat(d.To.Opacity), d.To.Transform(),
		d.Duration.Milliseconds(), d.Delay.Milliseconds(),
		easing.CubicBezier(),
	)
}

const (
	VariantFadeIn    = "fadeIn"
	VariantFadeUp    = "fadeUp"
	VariantFadeDown  = "fadeDown"
	VariantFadeLeft  = "fadeLeft"
	VariantFadeRight = "fadeRight"
	VariantScaleUp   = "scaleUp"
)

// DefaultDuration is the duration of a section reveal.
const DefaultDuration = 600 * time.Millisecond

var (
	visible = Style{Opacity: 1, Scale: 1}

	variants = map[string]Descriptor{
		VariantFadeIn:    {Name: VariantFadeIn, From: Style{Scale: 1}, To: visible, Duration: DefaultDuration, Easing: EasingEaseOut},
		VariantFadeUp:    {Name: VariantFadeUp, From: Style{Y: 40, Scale: 1}, To: visible, Duration: DefaultDuration, Easing: EasingEaseOut},
		VariantFadeDown:  {Name: VariantFadeDown, From: Style{Y: -40, Scale: 1}, To: visible, Duration: DefaultDuration, Easing: EasingEaseOut},
		VariantFadeLeft:  {Name: VariantFadeLeft, From: Style{X: 40, Scale: 1}, To: visible, Duration: DefaultDuration, Easing: EasingEaseOut},
		VariantFadeRight: {Name: VariantFadeRight, From: Style{X: -40, Scale: 1}, To: visible, Duration: DefaultDuration, Easing: EasingEaseOut},
		VariantScaleUp:   {Name: VariantScaleUp, From: Style{Scale: 0.8}, To: visible, Duration: DefaultDuration, Easing: EasingEaseOut},
	}

	// list children travel half as far as whole sections.
	childVariants = map[string]Descriptor{
		VariantFadeIn:    {Name: VariantFadeIn, From: Style{Scale: 1}, To: visible, Duration: 500 * time.Millisecond, Easing: EasingEaseOut},
		VariantFadeUp:    {Name: VariantFadeUp, From: Style{Y: 20, Scale: 1}, To: visible, Duration: 500 * time.Millisecond, Easing: EasingEaseOut},
		VariantFadeLeft:  {Name: VariantFadeLeft, From: Style{X: 20, Scale: 1}, To: visible, Duration: 500 * time.Millisecond, Easing: EasingEaseOut},
		VariantFadeRight: {Name: VariantFadeRight, From: Style{X: -20, Scale: 1}, To: visible, Duration: 500 * time.Millisecond, Easing: EasingEaseOut},
		VariantScaleUp:   {Name: VariantScaleUp, From: Style{Scale: 0.9}, To: visible, Duration: 500 * time.Millisecond, Easing: EasingEaseOut},
	}
)

// Variant looks up a section animation by name. Unknown names fall back to
// fadeUp.
func Variant(name string) Descriptor {
	if d, ok := variants[name]; ok {
		return d
	}
	return variants[VariantFadeUp]
}

// ChildVariant looks up the animation used for staggered list children.
func ChildVariant(name string) Descriptor {
	if d, ok := childVariants[name]; ok {
		return d
	}
	return childVariants[VariantFadeUp]
}

// Variants returns every section animation sorted by name.
func Variants() []Descriptor {
	out := make([]Descriptor, 0, len(variants))
	for _, d := range variants {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func scaleOrOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
