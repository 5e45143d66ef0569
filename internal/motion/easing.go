package motion

import "math"

type EasingMode string

const (
	EasingLinear         EasingMode = "linear"
	EasingEaseIn         EasingMode = "ease-in"
	EasingEaseOut        EasingMode = "ease-out"
	EasingEaseInOut      EasingMode = "ease-in-out"
	EasingEaseInOutCubic EasingMode = "ease-in-out-cubic"
)

// Ease shapes linear progress t in [0, 1]. Unknown modes are linear.
func Ease(mode EasingMode, t float64) float64 {
	t = clamp01(t)
	switch mode {
	case EasingLinear:
		return t
	case EasingEaseIn:
		return t * t
	case EasingEaseOut:
		return t * (2 - t)
	case EasingEaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case EasingEaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	default:
		return t
	}
}

// CubicBezier returns the CSS timing function closest to the mode.
func (m EasingMode) CubicBezier() string {
	switch m {
	case EasingEaseIn:
		return "cubic-bezier(0.55, 0.085, 0.68, 0.53)"
	case EasingEaseOut:
		return "cubic-bezier(0.25, 0.46, 0.45, 0.94)"
	case EasingEaseInOut:
		return "cubic-bezier(0.455, 0.03, 0.515, 0.955)"
	case EasingEaseInOutCubic:
		return "cubic-bezier(0.65, 0, 0.35, 1)"
	default:
		return "linear"
	}
}
