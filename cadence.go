package cadence

import "errors"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// How (and whether) it is premultiplied is the rendering backend's concern.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default element tint.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector in scene units. The coordinate system follows the
// scripted-video convention: origin at the scene center, Y increasing upward.
type Vec2 struct {
	X, Y float64
}

// Errors reported by layout, combinator construction, and playback. All are
// wrapped with context before being returned; test with errors.Is.
var (
	// ErrCyclicStructure is returned by TreeLayout.Layout when a node is
	// reached twice, meaning the structure is not a strict tree.
	ErrCyclicStructure = errors.New("cadence: cyclic structure")

	// ErrInvalidLagRatio is returned by Staggered when the lag ratio falls
	// outside [0, 1].
	ErrInvalidLagRatio = errors.New("cadence: lag ratio outside [0, 1]")

	// ErrUnresolvedTarget is returned by NewPlayer when a scheduled animation
	// references a node that is disposed or not owned by the scene.
	ErrUnresolvedTarget = errors.New("cadence: unresolved animation target")
)
