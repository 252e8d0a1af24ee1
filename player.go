package cadence

import (
	"context"
	"fmt"

	"github.com/tanema/gween"
)

// MutationEvent reports the state of one node after an animation applied to
// it on a tick. The stream a backend sees is monotonically non-decreasing in
// Time for any given NodeID, and events within a tick appear in compile order.
type MutationEvent struct {
	Time   float64
	NodeID uint32

	X, Y           float64
	Alpha          float64
	Color          Color
	ScaleX, ScaleY float64
}

// playbackEntry is the per-ScheduledAnimation runtime state. Tweens are
// created lazily when the entry's window opens, so the "from" values reflect
// whatever earlier animations left on the target.
type playbackEntry struct {
	sched ScheduledAnimation

	tweens  [4]*gween.Tween
	fields  [4]*float64
	count   int
	started bool
	done    bool
}

// nodeSnapshot preserves a target's mutable state at player construction so
// Restart can rewind the scene graph and replay an identical event stream.
type nodeSnapshot struct {
	x, y           float64
	alpha          float64
	color          Color
	scaleX, scaleY float64
}

// Player executes a compiled timeline against the scene graph. It is strictly
// single-threaded and tick-driven: the caller advances the virtual clock via
// Tick (or Run), and the player interpolates every animation whose window
// contains the current time. The player is the only mutator of node state
// during playback.
type Player struct {
	timeline  *Timeline
	entries   []playbackEntry
	snapshots map[*Node]nodeSnapshot

	clock     float64
	cancelled bool
	finished  bool

	events []MutationEvent // reused per tick
}

// NewPlayer validates the timeline against the scene and prepares playback.
//
// Every entry's target must be live: not disposed, and owned by the scene
// (reachable from its root). A violation is reported here, before the first
// tick, as an error wrapping ErrUnresolvedTarget — never mid-playback.
func NewPlayer(scene *Scene, timeline *Timeline) (*Player, error) {
	if timeline == nil {
		panic("cadence: nil timeline")
	}
	live := scene.nodeSet()
	p := &Player{
		timeline:  timeline,
		entries:   make([]playbackEntry, len(timeline.Entries)),
		snapshots: make(map[*Node]nodeSnapshot),
	}
	for i, sched := range timeline.Entries {
		t := sched.Target
		if t == nil || t.IsDisposed() {
			return nil, fmt.Errorf("%w: entry %d targets a disposed node", ErrUnresolvedTarget, i)
		}
		if _, ok := live[t.ID]; !ok {
			return nil, fmt.Errorf("%w: entry %d targets node %q (id %d) not owned by the scene",
				ErrUnresolvedTarget, i, t.Name, t.ID)
		}
		p.entries[i] = playbackEntry{sched: sched}
		if _, ok := p.snapshots[t]; !ok {
			p.snapshots[t] = snapshot(t)
		}
	}
	return p, nil
}

func snapshot(n *Node) nodeSnapshot {
	return nodeSnapshot{
		x: n.X, y: n.Y,
		alpha:  n.Alpha,
		color:  n.Color,
		scaleX: n.ScaleX, scaleY: n.ScaleY,
	}
}

func restore(n *Node, s nodeSnapshot) {
	n.X, n.Y = s.x, s.y
	n.Alpha = s.alpha
	n.Color = s.color
	n.ScaleX, n.ScaleY = s.scaleX, s.scaleY
}

// Clock returns the player's current virtual time.
func (p *Player) Clock() float64 {
	return p.clock
}

// Done reports whether playback has run to completion.
func (p *Player) Done() bool {
	return p.finished
}

// Cancelled reports whether Cancel stopped this playback.
func (p *Player) Cancelled() bool {
	return p.cancelled
}

// Cancel stops playback between ticks. Targets keep their last-applied
// interpolated state — there is no rollback — so the scene graph remains
// inspectable. Subsequent Tick calls are no-ops; Restart clears the flag.
func (p *Player) Cancel() {
	p.cancelled = true
}

// Restart rewinds the clock to zero, restores every target to the state it
// had when the player was created, and clears cancellation. A restarted
// playback replays an identical event stream.
func (p *Player) Restart() {
	for node, snap := range p.snapshots {
		if !node.IsDisposed() {
			restore(node, snap)
		}
	}
	for i := range p.entries {
		e := &p.entries[i]
		e.tweens = [4]*gween.Tween{}
		e.fields = [4]*float64{}
		e.count = 0
		e.started = false
		e.done = false
	}
	p.clock = 0
	p.cancelled = false
	p.finished = false
	p.events = p.events[:0]
}

// Tick advances the virtual clock by dt seconds and applies every animation
// whose [start, end] window contains the new time, in compile order. When an
// animation's window closes its final value is snapped exactly once; ticking
// past it again changes nothing.
//
// The returned slice is valid until the next Tick call. It is nil when the
// playback is done, cancelled, or the tick activated no animations.
func (p *Player) Tick(dt float64) []MutationEvent {
	if p.finished || p.cancelled {
		return nil
	}
	if dt < 0 {
		panic("cadence: negative tick dt")
	}
	p.clock += dt
	p.events = p.events[:0]

	remaining := false
	for i := range p.entries {
		e := &p.entries[i]
		if e.done {
			continue
		}
		if e.sched.Start > p.clock {
			remaining = true
			continue
		}

		// A target disposed mid-playback freezes its entry, mirroring how
		// tweens on disposed nodes stop: no writes, no events.
		if e.sched.Target.IsDisposed() {
			e.done = true
			continue
		}

		advance := dt
		if !e.started {
			p.startEntry(e)
			advance = p.clock - e.sched.Start
		}
		p.advanceEntry(e, advance)

		// Events carry the tick's clock time, including the closing tick:
		// the final value is applied on this tick, and stamping it with the
		// window's end would let an entry closed mid-tick report an earlier
		// time than a still-running entry on the same node.
		p.events = append(p.events, eventFor(e.sched.Target, p.clock))

		if !e.done {
			remaining = true
		}
	}

	if !remaining && p.clock >= p.timeline.Duration {
		p.finished = true
	}
	if len(p.events) == 0 {
		return nil
	}
	return p.events
}

// startEntry captures the target's current state as tween start values.
func (p *Player) startEntry(e *playbackEntry) {
	e.started = true
	n := e.sched.Target
	eff := e.sched.Effect
	d := float32(e.sched.End - e.sched.Start)
	fn := eff.easing()

	switch eff.Kind {
	case EffectMove:
		e.tweens[0] = gween.New(float32(n.X), float32(eff.ToX), d, fn)
		e.tweens[1] = gween.New(float32(n.Y), float32(eff.ToY), d, fn)
		e.fields[0] = &n.X
		e.fields[1] = &n.Y
		e.count = 2
	case EffectFade:
		e.tweens[0] = gween.New(float32(n.Alpha), float32(eff.ToAlpha), d, fn)
		e.fields[0] = &n.Alpha
		e.count = 1
	case EffectColorShift:
		e.tweens[0] = gween.New(float32(n.Color.R), float32(eff.ToColor.R), d, fn)
		e.tweens[1] = gween.New(float32(n.Color.G), float32(eff.ToColor.G), d, fn)
		e.tweens[2] = gween.New(float32(n.Color.B), float32(eff.ToColor.B), d, fn)
		e.tweens[3] = gween.New(float32(n.Color.A), float32(eff.ToColor.A), d, fn)
		e.fields[0] = &n.Color.R
		e.fields[1] = &n.Color.G
		e.fields[2] = &n.Color.B
		e.fields[3] = &n.Color.A
		e.count = 4
	case EffectScale:
		e.tweens[0] = gween.New(float32(n.ScaleX), float32(eff.ToScaleX), d, fn)
		e.tweens[1] = gween.New(float32(n.ScaleY), float32(eff.ToScaleY), d, fn)
		e.fields[0] = &n.ScaleX
		e.fields[1] = &n.ScaleY
		e.count = 2
	case EffectCustom:
		// No tweens; advanceEntry drives the function directly.
	default:
		panic("cadence: unknown effect kind")
	}
}

// advanceEntry moves an entry forward and applies interpolated values. When
// the window closes, the exact final values are written once (snap) and the
// entry is marked done, so repeated ticks cannot accumulate rounding drift.
func (p *Player) advanceEntry(e *playbackEntry, dt float64) {
	atEnd := p.clock >= e.sched.End

	if e.sched.Effect.Kind == EffectCustom {
		n := e.sched.Target
		if atEnd {
			e.sched.Effect.Fn(n, 1)
			e.done = true
			return
		}
		d := e.sched.End - e.sched.Start
		elapsed := p.clock - e.sched.Start
		fn := e.sched.Effect.easing()
		fraction := float64(fn(float32(elapsed), 0, 1, float32(d)))
		e.sched.Effect.Fn(n, fraction)
		return
	}

	if atEnd {
		p.snapEntry(e)
		return
	}
	for i := 0; i < e.count; i++ {
		val, _ := e.tweens[i].Update(float32(dt))
		*e.fields[i] = float64(val)
	}
}

// snapEntry writes the effect's exact target values, bypassing float32
// interpolation entirely.
func (p *Player) snapEntry(e *playbackEntry) {
	n := e.sched.Target
	eff := e.sched.Effect
	switch eff.Kind {
	case EffectMove:
		n.X, n.Y = eff.ToX, eff.ToY
	case EffectFade:
		n.Alpha = eff.ToAlpha
	case EffectColorShift:
		n.Color = eff.ToColor
	case EffectScale:
		n.ScaleX, n.ScaleY = eff.ToScaleX, eff.ToScaleY
	}
	e.done = true
}

func eventFor(n *Node, t float64) MutationEvent {
	return MutationEvent{
		Time:   t,
		NodeID: n.ID,
		X:      n.X,
		Y:      n.Y,
		Alpha:  n.Alpha,
		Color:  n.Color,
		ScaleX: n.ScaleX,
		ScaleY: n.ScaleY,
	}
}

// Run drives playback to completion at a fixed tick rate, passing each
// tick's events to sink. Between ticks it checks ctx; on cancellation the
// player is cancelled cooperatively (targets freeze at their last state) and
// ctx.Err() is returned. A sink error also cancels and is returned as-is.
// sink may be nil to discard events.
func (p *Player) Run(ctx context.Context, ticksPerSecond float64, sink func([]MutationEvent) error) error {
	if ticksPerSecond <= 0 {
		panic("cadence: ticksPerSecond must be positive")
	}
	dt := 1.0 / ticksPerSecond
	for !p.Done() && !p.Cancelled() {
		if err := ctx.Err(); err != nil {
			p.Cancel()
			return err
		}
		events := p.Tick(dt)
		if sink != nil && len(events) > 0 {
			if err := sink(events); err != nil {
				p.Cancel()
				return err
			}
		}
	}
	return nil
}
