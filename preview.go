package main

import (
	"time"

	"github.com/Saivya1/Portfolio/internal/content"
	"github.com/Saivya1/Portfolio/internal/motion"
	"github.com/Saivya1/Portfolio/internal/viewport"
)

// previewEvent is one reveal fired during a simulated scroll.
type previewEvent struct {
	ScrollY float64         `json:"scroll_y"`
	Section string          `json:"section"`
	Active  string          `json:"active"`
	Variant string          `json:"variant"`
	Delays  []time.Duration `json:"child_delays,omitempty"`
}

type previewOptions struct {
	ViewportHeight float64
	SectionHeight  float64
	Step           float64
	Threshold      float64
}

// sectionVariant picks the entrance used for each section heading.
func sectionVariant(id string) string {
	switch id {
	case "home":
		return motion.VariantFadeIn
	case "about", "education":
		return motion.VariantFadeRight
	case "experience":
		return motion.VariantFadeLeft
	case "achievements":
		return motion.VariantScaleUp
	default:
		return motion.VariantFadeUp
	}
}

// sectionItems is the number of staggered children inside a section.
func sectionItems(p *content.Portfolio, id string) int {
	switch id {
	case "about":
		return len(p.About)
	case "skills":
		return len(p.Skills)
	case "experience":
		return len(p.Experience)
	case "projects":
		return len(p.Projects)
	case "education":
		return len(p.Education)
	case "achievements":
		return len(p.Achievements) + len(p.Certifications)
	default:
		return 0
	}
}

// simulateScroll lays the sections out one after another, scrolls the page
// from top to bottom in opts.Step increments and records every reveal.
func simulateScroll(p *content.Portfolio, opts previewOptions) []previewEvent {
	sections := make([]viewport.Section, len(p.Nav))
	for i, n := range p.Nav {
		sections[i] = viewport.Section{
			ID:   n.ID,
			Rect: viewport.Rect{Top: float64(i) * opts.SectionHeight, Height: opts.SectionHeight},
		}
	}

	tracker := viewport.NewTracker(opts.ViewportHeight)
	var events []previewEvent
	stagger := motion.DefaultStagger()

	releases := make([]func(), 0, len(sections))
	defer func() {
		for _, release := range releases {
			release()
		}
	}()

	for _, s := range sections {
		id := s.ID
		trigger := motion.NewTrigger(motion.TriggerOptions{
			Threshold:  opts.Threshold,
			Once:       true,
			Descriptor: motion.Variant(sectionVariant(id)),
			OnEnter: func(d motion.Descriptor) {
				scrollY := tracker.Viewport().ScrollY
				events = append(events, previewEvent{
					ScrollY: scrollY,
					Section: id,
					Active:  viewport.ActiveSection(sections, scrollY, sections[0].ID),
					Variant: d.Name,
					Delays:  stagger.Delays(sectionItems(p, id)),
				})
			},
		})
		releases = append(releases, tracker.Watch(s.Rect, trigger))
	}

	end := float64(len(sections))*opts.SectionHeight - opts.ViewportHeight
	if opts.Step <= 0 {
		return events
	}
	for y := opts.Step; y <= end; y += opts.Step {
		tracker.ScrollTo(y)
	}
	return events
}
