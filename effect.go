package cadence

import (
	"github.com/tanema/gween/ease"
)

// EffectKind identifies a visual effect. The set is closed: the player
// switches on it directly rather than dispatching through an interface.
type EffectKind uint8

const (
	EffectMove       EffectKind = iota // animate X/Y to a target position
	EffectFade                         // animate Alpha to a target value
	EffectColorShift                   // animate Color to a target color
	EffectScale                        // animate ScaleX/ScaleY to target factors
	EffectCustom                       // user function of the elapsed fraction
)

// Effect describes what an animation does to its target node. It is pure
// data; interpolation happens in the player. Fields beyond Kind are only
// meaningful for the matching kind.
type Effect struct {
	Kind EffectKind

	// Move
	ToX, ToY float64

	// Fade
	ToAlpha float64

	// ColorShift
	ToColor Color

	// Scale
	ToScaleX, ToScaleY float64

	// Custom receives the target and the eased elapsed fraction in [0, 1].
	// It must be deterministic in the fraction: the player calls it once more
	// with fraction 1 to snap the final state.
	Fn func(n *Node, fraction float64)

	// Easing shapes the elapsed fraction. Nil means ease.InOutCubic, the
	// "smooth" default of the scripted videos.
	Easing ease.TweenFunc
}

// MoveTo returns an effect that moves the target to (x, y).
func MoveTo(x, y float64) Effect {
	return Effect{Kind: EffectMove, ToX: x, ToY: y}
}

// FadeTo returns an effect that fades the target's alpha to the given value.
func FadeTo(alpha float64) Effect {
	return Effect{Kind: EffectFade, ToAlpha: alpha}
}

// ColorTo returns an effect that shifts the target's color to the given color.
func ColorTo(c Color) Effect {
	return Effect{Kind: EffectColorShift, ToColor: c}
}

// ScaleTo returns an effect that scales the target to the given factors.
func ScaleTo(sx, sy float64) Effect {
	return Effect{Kind: EffectScale, ToScaleX: sx, ToScaleY: sy}
}

// CustomEffect returns an effect driven by a user function of the eased
// elapsed fraction. Panics if fn is nil.
func CustomEffect(fn func(n *Node, fraction float64)) Effect {
	if fn == nil {
		panic("cadence: custom effect function is nil")
	}
	return Effect{Kind: EffectCustom, Fn: fn}
}

// Eased returns a copy of the effect with the given easing function.
func (e Effect) Eased(fn ease.TweenFunc) Effect {
	e.Easing = fn
	return e
}

// easing returns the effect's easing function, defaulting to InOutCubic.
func (e Effect) easing() ease.TweenFunc {
	if e.Easing != nil {
		return e.Easing
	}
	return ease.InOutCubic
}
