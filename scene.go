package cadence

// Scene is the top-level object that owns the node tree. There is no hidden
// registry of live objects: the set of live nodes is exactly the set reachable
// from Root, so scene-wide operations are explicit traversals.
type Scene struct {
	root *Node
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Walk visits every node reachable from the root in depth-first order,
// parents before children. Traversal stops early if fn returns false.
func (s *Scene) Walk(fn func(*Node) bool) {
	walk(s.root, fn)
}

func walk(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given name in depth-first order,
// or nil if no such node exists.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.Walk(func(n *Node) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// NumNodes returns the number of live nodes in the scene, including the root.
func (s *Scene) NumNodes() int {
	count := 0
	s.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// nodeSet collects the IDs of every live node. Used by the player to resolve
// animation targets before playback starts.
func (s *Scene) nodeSet() map[uint32]struct{} {
	set := make(map[uint32]struct{})
	s.Walk(func(n *Node) bool {
		set[n.ID] = struct{}{}
		return true
	})
	return set
}

// FadeAll builds a Parallel combinator fading every element in the scene to
// the given alpha. This is the explicit replacement for a scene-wide "fade
// everything out" teardown: the scene owns its nodes, so the combinator is
// built by traversal, not from a global list. The root container is skipped.
func (s *Scene) FadeAll(toAlpha float64, duration float64) *Combinator {
	var leaves []*Combinator
	s.Walk(func(n *Node) bool {
		if n != s.root {
			leaves = append(leaves, Animate(n, FadeTo(toAlpha), duration))
		}
		return true
	})
	return Parallel(leaves...)
}

// Dispose disposes the whole node tree and replaces the root with a fresh
// empty container, leaving the scene reusable.
func (s *Scene) Dispose() {
	s.root.Dispose()
	s.root = NewContainer("root")
}
