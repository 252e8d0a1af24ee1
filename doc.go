// Package cadence is a scene-graph layout and animation scheduling library
// for scripted explainer videos.
//
// Cadence provides the recursive tree layout, the animation combinators
// (sequence, parallel, staggered), the timeline compiler, and the tick-driven
// player that every scripted scene needs. Rendering is delegated to a backend
// that consumes the player's mutation events; an [Ebitengine] adapter ships in
// cadence/ebitenview.
//
// # Quick start
//
// Build a scene graph, lay it out, describe the animation, compile, and play:
//
//	scene := cadence.NewScene()
//	root := cadence.NewElement("root", 2, 0.6)
//	scene.Root().AddChild(root)
//	left := cadence.NewElement("left", 2, 0.6)
//	right := cadence.NewElement("right", 2, 0.6)
//	root.AddChild(left)
//	root.AddChild(right)
//
//	tl := cadence.NewTreeLayout(cadence.DefaultConfig())
//	if err := tl.Layout(root, -6, 6); err != nil { ... }
//
//	comb, _ := cadence.Staggered(0.5,
//		cadence.Animate(left, cadence.FadeTo(1), 0.618),
//		cadence.Animate(right, cadence.FadeTo(1), 0.618),
//	)
//	timeline := cadence.Compile(comb, 0)
//
//	player, err := cadence.NewPlayer(scene, timeline)
//	if err != nil { ... }
//	for !player.Done() {
//		events := player.Tick(1.0 / 60)
//		backend.Apply(events)
//	}
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a strict tree rooted at
// [Scene.Root]; a parent owns its children and disposal cascades down the
// subtree. Node positions are written by the layout engine and by the player,
// never by both at once: lay out first, then compile and play.
//
// # Combinators and timelines
//
// A [Combinator] is pure data describing when animations run, not what they
// look like. [Animate] wraps one effect on one node; [Sequence], [Parallel],
// and [Staggered] nest arbitrarily. [Compile] flattens a combinator into a
// [Timeline] of absolute start/end times. Compilation is deterministic:
// compiling the same combinator twice yields identical schedules.
//
// # Playback
//
// [Player] advances a virtual clock one tick at a time on a single goroutine.
// "Parallel" means overlapping time windows, not concurrent execution. Each
// tick interpolates every active animation (via [gween]) and reports the
// resulting node states as [MutationEvent] values in a stable, compile-order
// sequence. Cancellation freezes targets at their last applied state.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package cadence
