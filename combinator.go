package cadence

import "fmt"

// combinatorKind distinguishes the four combinator variants.
type combinatorKind uint8

const (
	combLeaf combinatorKind = iota
	combSequence
	combParallel
	combStaggered
)

// Combinator is a pure-data description of how animations are scheduled:
// an atomic effect on one node, or a sequence/parallel/staggered grouping of
// child combinators. Building one has no side effects; Compile turns it into
// an absolute-time schedule.
//
// Combinators borrow their target nodes from the scene; they never own them.
type Combinator struct {
	kind     combinatorKind
	target   *Node
	effect   Effect
	duration float64
	children []*Combinator
	lagRatio float64
}

// Animate creates a leaf combinator applying one effect to one node over the
// given duration in seconds. Panics if target is nil or duration is negative.
func Animate(target *Node, effect Effect, duration float64) *Combinator {
	if target == nil {
		panic("cadence: animate target is nil")
	}
	if duration < 0 {
		panic("cadence: negative animation duration")
	}
	return &Combinator{kind: combLeaf, target: target, effect: effect, duration: duration}
}

// Sequence creates a combinator that runs its children one after another.
// Panics if any child is nil.
func Sequence(children ...*Combinator) *Combinator {
	checkChildren(children)
	return &Combinator{kind: combSequence, children: children}
}

// Parallel creates a combinator that starts all children simultaneously.
// Panics if any child is nil.
func Parallel(children ...*Combinator) *Combinator {
	checkChildren(children)
	return &Combinator{kind: combParallel, children: children}
}

// Staggered creates a combinator whose children start offset from one
// another: each child begins a lagRatio fraction of the preceding child's own
// duration after that child started. lagRatio 0 behaves exactly like
// Parallel, 1 exactly like Sequence.
//
// Returns an error wrapping ErrInvalidLagRatio if lagRatio is outside [0, 1],
// so malformed scenes fail before any timing math runs. Panics if any child
// is nil.
func Staggered(lagRatio float64, children ...*Combinator) (*Combinator, error) {
	if lagRatio < 0 || lagRatio > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLagRatio, lagRatio)
	}
	checkChildren(children)
	return &Combinator{kind: combStaggered, children: children, lagRatio: lagRatio}, nil
}

// Duration returns the combinator's total duration: a leaf's own duration,
// the sum over a sequence, the max over a parallel group, and the span from
// first start to last end for a staggered group. It matches the total
// Compile reports.
func (c *Combinator) Duration() float64 {
	switch c.kind {
	case combLeaf:
		return c.duration
	case combSequence:
		sum := 0.0
		for _, child := range c.children {
			sum += child.Duration()
		}
		return sum
	case combParallel:
		longest := 0.0
		for _, child := range c.children {
			if d := child.Duration(); d > longest {
				longest = d
			}
		}
		return longest
	case combStaggered:
		start := 0.0
		end := 0.0
		for _, child := range c.children {
			d := child.Duration()
			if start+d > end {
				end = start + d
			}
			switch c.lagRatio {
			case 0:
			case 1:
				start += d
			default:
				start += c.lagRatio * d
			}
		}
		return end
	default:
		panic("cadence: unknown combinator kind")
	}
}

func checkChildren(children []*Combinator) {
	for _, child := range children {
		if child == nil {
			panic("cadence: nil child combinator")
		}
	}
}
