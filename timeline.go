package cadence

// ScheduledAnimation is one compiled leaf: a target, an effect, and absolute
// start/end times relative to the timeline's origin.
type ScheduledAnimation struct {
	Target *Node
	Effect Effect
	Start  float64
	End    float64
}

// Timeline is the flattened, absolute-time schedule produced by Compile.
// Entries appear in compile order (depth-first over the combinator tree),
// which is the order the player applies overlapping effects in on each tick.
type Timeline struct {
	Entries  []ScheduledAnimation
	Duration float64 // equals the maximum End across all entries
}

// Compile flattens a combinator into a timeline starting at t0.
//
// Scheduling rules:
//   - a leaf occupies [t0, t0+duration]
//   - Sequence children start at the previous child's end
//   - Parallel children all start at t0
//   - Staggered children start lagRatio × (preceding child's duration) after
//     the preceding child's start
//
// Compilation is deterministic and side-effect-free: compiling the same
// combinator twice yields identical timelines. Panics if c is nil (an empty
// grouping compiles fine; a nil combinator is a script bug).
func Compile(c *Combinator, t0 float64) *Timeline {
	if c == nil {
		panic("cadence: compile of nil combinator")
	}
	tl := &Timeline{}
	end := compileInto(c, t0, tl)
	tl.Duration = end - t0
	return tl
}

// compileInto appends c's leaves to the timeline and returns the absolute end
// time of c (the maximum end across its leaves, or t0 if it has none).
func compileInto(c *Combinator, t0 float64, tl *Timeline) float64 {
	switch c.kind {
	case combLeaf:
		tl.Entries = append(tl.Entries, ScheduledAnimation{
			Target: c.target,
			Effect: c.effect,
			Start:  t0,
			End:    t0 + c.duration,
		})
		return t0 + c.duration

	case combSequence:
		cursor := t0
		for _, child := range c.children {
			cursor = compileInto(child, cursor, tl)
		}
		return cursor

	case combParallel:
		end := t0
		for _, child := range c.children {
			if e := compileInto(child, t0, tl); e > end {
				end = e
			}
		}
		return end

	case combStaggered:
		start := t0
		end := t0
		for _, child := range c.children {
			e := compileInto(child, start, tl)
			if e > end {
				end = e
			}
			// The next child starts a lag fraction of THIS child's own
			// duration later, not a fixed global offset. The boundary lags
			// must reduce bit-exactly to Parallel and Sequence, so they
			// bypass the offset arithmetic.
			switch c.lagRatio {
			case 0:
				// start unchanged
			case 1:
				start = e
			default:
				start += c.lagRatio * (e - start)
			}
		}
		return end

	default:
		panic("cadence: unknown combinator kind")
	}
}
