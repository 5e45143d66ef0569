package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Saivya1/Portfolio/internal/content"
	"github.com/Saivya1/Portfolio/internal/motion"
)

// templateFuncs exposes the motion helpers to the page templates. Styles
// come back as template.CSS so they survive html/template escaping.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"variant": func(name string) template.CSS {
			return template.CSS(motion.Variant(name).CSS())
		},
		"variantAfter": func(name string, delayMs int) template.CSS {
			d := motion.Variant(name).WithDelay(time.Duration(delayMs) * time.Millisecond)
			return template.CSS(d.CSS())
		},
		"child": func(name string, i int) template.CSS {
			d := motion.ChildVariant(name).WithDelay(motion.DefaultStagger().Delay(i))
			return template.CSS(d.CSS())
		},
		"word": func(i int) template.CSS {
			s := motion.Stagger{Step: motion.WordStaggerStep}
			return template.CSS(motion.ChildVariant(motion.VariantFadeUp).WithDelay(s.Delay(i)).CSS())
		},
		"words":     strings.Fields,
		"join":      strings.Join,
		"threshold": func() float64 { return motion.DefaultThreshold },
		"countUp":   countUpFor,
		"heroFade":  func() string { return dataJSON(motion.HeroFade) },
		"driftMs":   func() int64 { return motion.DriftInterval.Milliseconds() },
	}
}

type countUpView struct {
	Final      string
	Start      string
	End        float64
	Decimals   int
	Prefix     string
	Suffix     string
	DurationMs int64
}

func countUpFor(s content.Stat) countUpView {
	c := motion.CountUp{
		End:      s.Value,
		Duration: motion.DefaultCountUpDuration,
		Decimals: s.Decimals,
		Prefix:   s.Prefix,
		Suffix:   s.Suffix,
	}
	return countUpView{
		Final:      c.Format(c.Duration),
		Start:      c.Format(0),
		End:        s.Value,
		Decimals:   s.Decimals,
		Prefix:     s.Prefix,
		Suffix:     s.Suffix,
		DurationMs: c.Duration.Milliseconds(),
	}
}

// dataJSON renders v for a data attribute read by motion.js.
func dataJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// heroScroll is the pair of scroll ranges one hero shape follows.
type heroScroll struct {
	Y      motion.ScrollRange `json:"y"`
	Rotate motion.ScrollRange `json:"rotate"`
}

// shapeView is a hero shape with its entrance, scroll ranges and drift
// curve precomputed.
type shapeView struct {
	content.Shape
	Style  template.CSS
	Scroll string
	Drift  string
}

func heroShapes(shapes []content.Shape) []shapeView {
	out := make([]shapeView, 0, len(shapes))
	for i, s := range shapes {
		entrance := motion.Descriptor{
			Name:     "shape",
			From:     motion.Style{Y: -150, Rotate: s.Rotate - 15, Scale: 1},
			To:       motion.Style{Opacity: 1, Rotate: s.Rotate, Scale: 1},
			Duration: 2400 * time.Millisecond,
			Easing:   motion.EasingEaseOut,
		}.WithDelay(time.Duration(s.Delay * float64(time.Second)))

		out = append(out, shapeView{
			Shape: s,
			Style: template.CSS(fmt.Sprintf("width:%dpx;height:%dpx;%s", s.Width, s.Height, entrance.CSS())),
			Scroll: dataJSON(heroScroll{
				Y:      motion.HeroShift[i%len(motion.HeroShift)],
				Rotate: motion.HeroTilt[i%len(motion.HeroTilt)],
			}),
			Drift: dataJSON(motion.CurveFor(motion.Pattern(s.Pattern))),
		})
	}
	return out
}

// layerView carries a background layer's range per viewport height: the
// script multiplies both ends by window.innerHeight.
type layerView struct {
	Name  string
	Range string
}

func backgroundLayers() []layerView {
	out := make([]layerView, len(motion.BackgroundLayers))
	for i, l := range motion.BackgroundLayers {
		out[i] = layerView{Name: l.Name, Range: dataJSON(l.Range(1))}
	}
	return out
}
