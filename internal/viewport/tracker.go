// Package viewport tracks the scroll position of the page and how much of
// each registered element is on screen.
package viewport

import (
	"sort"

	"github.com/Saivya1/Portfolio/internal/motion"
)

// Rect is an element's vertical extent in document coordinates.
type Rect struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Bottom returns the document offset of the element's bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Viewport is the visible window onto the document.
type Viewport struct {
	ScrollY float64 `json:"scroll_y"`
	Height  float64 `json:"height"`
}

// VisibleFraction returns how much of r, from 0 to 1, lies inside v.
// Zero-height elements count as fully visible while inside the window.
func VisibleFraction(r Rect, v Viewport) float64 {
	top := v.ScrollY
	bottom := v.ScrollY + v.Height
	if r.Height <= 0 {
		if r.Top >= top && r.Top <= bottom {
			return 1
		}
		return 0
	}
	overlap := min(r.Bottom(), bottom) - max(r.Top, top)
	if overlap <= 0 {
		return 0
	}
	return min(overlap/r.Height, 1)
}

// Observation is what a subscriber sees after every scroll or resize.
type Observation struct {
	Viewport Viewport
	Fraction float64
	// Progress runs from 0 as the element enters at the bottom of the
	// viewport to 1 as it leaves at the top.
	Progress float64
}

type subscription struct {
	rect Rect
	fn   func(Observation)
}

// Tracker fans scroll updates out to element subscriptions. Like the UI
// thread it models, it is not safe for concurrent use.
type Tracker struct {
	viewport Viewport
	subs     map[int]*subscription
	next     int
}

// NewTracker returns a tracker for a viewport of the given height at the
// top of the document.
func NewTracker(height float64) *Tracker {
	return &Tracker{
		viewport: Viewport{Height: height},
		subs:     make(map[int]*subscription),
	}
}

// Viewport returns the current viewport.
func (t *Tracker) Viewport() Viewport { return t.viewport }

// Len returns the number of live subscriptions.
func (t *Tracker) Len() int { return len(t.subs) }

// Subscribe registers fn for updates about rect and immediately delivers
// the current observation. The returned func releases the subscription and
// is safe to call more than once.
func (t *Tracker) Subscribe(rect Rect, fn func(Observation)) (unsubscribe func()) {
	id := t.next
	t.next++
	sub := &subscription{rect: rect, fn: fn}
	t.subs[id] = sub
	fn(t.observe(sub.rect))
	return func() {
		delete(t.subs, id)
	}
}

// Watch drives trigger from the visibility of rect.
func (t *Tracker) Watch(rect Rect, trigger *motion.Trigger) (unsubscribe func()) {
	return t.Subscribe(rect, func(o Observation) {
		trigger.Observe(o.Fraction)
	})
}

// ScrollTo moves the viewport and notifies subscribers in registration order.
func (t *Tracker) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	t.viewport.ScrollY = y
	t.notify()
}

// Resize changes the viewport height and notifies subscribers.
func (t *Tracker) Resize(height float64) {
	if height < 0 {
		height = 0
	}
	t.viewport.Height = height
	t.notify()
}

func (t *Tracker) observe(r Rect) Observation {
	return Observation{
		Viewport: t.viewport,
		Fraction: VisibleFraction(r, t.viewport),
		Progress: motion.ElementProgress(t.viewport.ScrollY, t.viewport.Height, r.Top, r.Height),
	}
}

func (t *Tracker) notify() {
	ids := make([]int, 0, len(t.subs))
	for id := range t.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		// a callback may have released a later subscription
		sub, ok := t.subs[id]
		if !ok {
			continue
		}
		sub.fn(t.observe(sub.rect))
	}
}
