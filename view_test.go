package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Saivya1/Portfolio/internal/content"
	"github.com/Saivya1/Portfolio/internal/motion"
)

func TestBackgroundLayersScaleWithViewport(t *testing.T) {
	const vh = 800
	views := backgroundLayers()
	if len(views) != len(motion.BackgroundLayers) {
		t.Fatalf("expected %d layers, got %d", len(motion.BackgroundLayers), len(views))
	}
	for i, v := range views {
		var r motion.ScrollRange
		if err := json.Unmarshal([]byte(v.Range), &r); err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		l := motion.BackgroundLayers[i]
		// The page maps scroll/vh through the rendered range and multiplies by vh.
		for _, y := range []float64{0, 400, 1600, 3200, 6400} {
			got := r.Map(y/vh) * vh
			want := l.Range(vh).Map(y)
			if diff := got - want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("%s at %v: page %v, server %v", v.Name, y, got, want)
			}
		}
		if got := r.Map(100) * vh; got != l.Factor*vh {
			t.Errorf("%s should stop at one viewport times its factor, got %v", v.Name, got)
		}
	}
}

func TestHeroShapesCarryScrollAndDrift(t *testing.T) {
	p, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	views := heroShapes(p.Hero.Shapes)
	if len(views) != len(p.Hero.Shapes) {
		t.Fatalf("expected %d shapes, got %d", len(p.Hero.Shapes), len(views))
	}
	for i, v := range views {
		var scroll heroScroll
		if err := json.Unmarshal([]byte(v.Scroll), &scroll); err != nil {
			t.Fatal(err)
		}
		want := heroScroll{Y: motion.HeroShift[i%4], Rotate: motion.HeroTilt[i%2]}
		if diff := cmp.Diff(want, scroll); diff != "" {
			t.Errorf("shape %d scroll mismatch (-want +got):\n%s", i, diff)
		}

		var curve motion.Curve
		if err := json.Unmarshal([]byte(v.Drift), &curve); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(motion.CurveFor(motion.Pattern(v.Pattern)), curve); diff != "" {
			t.Errorf("shape %d drift mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestHomePageRendersMotionData(t *testing.T) {
	a, r := newTestApp(t)
	rec := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, "data-range="); got != len(motion.BackgroundLayers) {
		t.Errorf("expected %d layer ranges, got %d", len(motion.BackgroundLayers), got)
	}
	if got := strings.Count(body, "data-drift="); got != len(a.portfolio.Hero.Shapes) {
		t.Errorf("expected %d drifting shapes, got %d", len(a.portfolio.Hero.Shapes), got)
	}
	for _, want := range []string{`class="hero-shapes"`, `data-drift-interval="50"`, "data-fade=", "data-scroll="} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
	a.visits.Wait()
}
