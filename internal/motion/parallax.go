package motion

import "fmt"

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParallaxElement moves an element against the scroll while it passes
// through the viewport. Speed is a percentage of the element's own size.
type ParallaxElement struct {
	Direction Direction
	Speed     float64
}

// Offset returns the x and y translation, in percent, at element progress p.
func (e ParallaxElement) Offset(p float64) (x, y float64) {
	s := e.Speed
	if s != s { // NaN
		s = 0
	}
	switch e.Direction {
	case DirectionUp:
		return 0, Map(p, Range(0, 1, s, -s))
	case DirectionDown:
		return 0, Map(p, Range(0, 1, -s, s))
	case DirectionLeft:
		return Map(p, Range(0, 1, s, -s)), 0
	case DirectionRight:
		return Map(p, Range(0, 1, -s, s)), 0
	default:
		return 0, 0
	}
}

// Transform renders the CSS transform at element progress p.
func (e ParallaxElement) Transform(p float64) string {
	x, y := e.Offset(p)
	switch e.Direction {
	case DirectionLeft, DirectionRight:
		return fmt.Sprintf("translateX(%s%%)", formatFloat(x))
	default:
		return fmt.Sprintf("translateY(%s%%)", formatFloat(y))
	}
}

// Layer is one background layer drifting at Factor times the viewport height
// over the first four screens of scroll.
type Layer struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// BackgroundLayers are the blurred gradient layers behind the page.
var BackgroundLayers = []Layer{
	{Name: "cyan", Factor: 0.5},
	{Name: "purple", Factor: -0.3},
	{Name: "teal", Factor: 0.2},
	{Name: "violet", Factor: -0.4},
}

// Range returns the scroll range of the layer for the given viewport height.
func (l Layer) Range(viewportHeight float64) ScrollRange {
	return Range(0, viewportHeight*4, 0, viewportHeight*l.Factor)
}

// LayerValue is a sampled layer position.
type LayerValue struct {
	Name string  `json:"name"`
	Y    float64 `json:"y"`
}

// PageOpacity fades the background as the whole page scrolls by.
var PageOpacity = Keyframes{
	Inputs:  []float64{0, 0.5, 1},
	Outputs: []float64{1, 0.8, 0.6},
}

// Frame is the background state for one scroll position.
type Frame struct {
	ScrollY  float64      `json:"scroll_y"`
	Progress float64      `json:"progress"`
	Opacity  float64      `json:"opacity"`
	Layers   []LayerValue `json:"layers"`
}

// SampleBackground computes every background layer for scrollY. pageHeight
// is the scrollable height of the document, used for the opacity fade.
func SampleBackground(scrollY, viewportHeight, pageHeight float64) Frame {
	progress := Progress(scrollY, 0, pageHeight-viewportHeight)
	f := Frame{
		ScrollY:  scrollY,
		Progress: progress,
		Opacity:  PageOpacity.At(progress),
		Layers:   make([]LayerValue, len(BackgroundLayers)),
	}
	for i, l := range BackgroundLayers {
		f.Layers[i] = LayerValue{Name: l.Name, Y: l.Range(viewportHeight).Map(scrollY)}
	}
	return f
}

// Hero shape transforms over the first screens of scroll. Shapes take the
// shift and tilt ranges in turn, the fade applies to the whole group.
var (
	HeroShift = []ScrollRange{
		Range(0, 1000, 0, 300),
		Range(0, 1000, 0, -300),
		Range(0, 1000, 0, 150),
		Range(0, 1000, 0, -150),
	}
	HeroTilt = []ScrollRange{
		Range(0, 1000, 0, 10),
		Range(0, 1000, 0, -10),
	}
	HeroFade = Range(0, 300, 1, 0.5)
)

// ScrollSet holds the hero transforms sampled at one scroll position.
type ScrollSet struct {
	Y1, Y2, Y3, Y4   float64
	Rotate1, Rotate2 float64
	Opacity          float64
}

// SampleScrollSet evaluates the hero transforms at scrollY.
func SampleScrollSet(scrollY float64) ScrollSet {
	return ScrollSet{
		Y1:      HeroShift[0].Map(scrollY),
		Y2:      HeroShift[1].Map(scrollY),
		Y3:      HeroShift[2].Map(scrollY),
		Y4:      HeroShift[3].Map(scrollY),
		Rotate1: HeroTilt[0].Map(scrollY),
		Rotate2: HeroTilt[1].Map(scrollY),
		Opacity: HeroFade.Map(scrollY),
	}
}

// SectionHeader is the header slide used by sections with a parallax title:
// it rises from 20% to rest over the first half of the section's progress
// while fading from half to full opacity.
func SectionHeader(p float64) (yPercent, opacity float64) {
	return Map(p, Range(0, 0.5, 20, 0)), Map(p, Range(0, 0.3, 0.5, 1))
}
