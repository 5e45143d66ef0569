package viewport

import (
	"time"

	"github.com/Saivya1/Portfolio/internal/motion"
)

const (
	// ActiveOffset makes the nav highlight a section a little before its
	// top reaches the top of the screen.
	ActiveOffset = 300
	// ScrolledAfter is when the nav bar switches to its compact style.
	ScrolledAfter = 10
	// ScrollTopAfter is when the back-to-top button appears.
	ScrollTopAfter = 500
	// HeaderOffset keeps anchor targets clear of the fixed nav bar.
	HeaderOffset = 80

	DefaultSmoothScroll = time.Second
)

// Section is an anchor target on the page.
type Section struct {
	ID   string `json:"id"`
	Rect Rect   `json:"rect"`
}

// ActiveSection returns the id of the section under scrollY+ActiveOffset.
// When several match, the last one in document order wins; when none does,
// fallback is returned.
func ActiveSection(sections []Section, scrollY float64, fallback string) string {
	active := fallback
	pos := scrollY + ActiveOffset
	for _, s := range sections {
		if pos >= s.Rect.Top && pos < s.Rect.Bottom() {
			active = s.ID
		}
	}
	return active
}

// Scrolled reports whether the page has left the very top.
func Scrolled(scrollY float64) bool { return scrollY > ScrolledAfter }

// ShowScrollToTop reports whether the back-to-top button should be visible.
func ShowScrollToTop(scrollY float64) bool { return scrollY > ScrollTopAfter }

// ScrollTarget returns where the viewport should land to show an element
// below a fixed header of the given height.
func ScrollTarget(elementTop, headerOffset float64) float64 {
	return max(elementTop-headerOffset, 0)
}

// SmoothScrollPosition is the fallback smooth scroll curve: the viewport
// moves from start to target over duration with ease-in-out-cubic.
func SmoothScrollPosition(start, target float64, elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return target
	}
	p := motion.Progress(float64(elapsed), 0, float64(duration))
	return start + (target-start)*motion.Ease(motion.EasingEaseInOutCubic, p)
}
