package cadence

import "testing"

func TestAddChildSetsParent(t *testing.T) {
	parent := NewContainer("parent")
	child := NewElement("child", 1, 1)

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) is not the added child")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewElement("child", 1, 1)

	a.AddChild(child)
	b.AddChild(child)

	if child.Parent != b {
		t.Error("child should have been reparented to b")
	}
	if a.NumChildren() != 0 {
		t.Errorf("a.NumChildren = %d, want 0 after reparenting", a.NumChildren())
	}
	if b.NumChildren() != 1 {
		t.Errorf("b.NumChildren = %d, want 1", b.NumChildren())
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding nil child")
		}
	}()
	NewContainer("parent").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	grandparent := NewContainer("grandparent")
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandparent.AddChild(parent)
	parent.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding an ancestor as a child")
		}
	}()
	child.AddChild(grandparent)
}

func TestAddChildSelfPanics(t *testing.T) {
	n := NewContainer("n")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding node to itself")
		}
	}()
	n.AddChild(n)
}

func TestAddChildAtInsertsAtIndex(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.AddChildAt(c, 1)

	want := []*Node{a, c, b}
	for i, n := range want {
		if parent.ChildAt(i) != n {
			t.Errorf("ChildAt(%d) = %q, want %q", i, parent.ChildAt(i).Name, n.Name)
		}
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.RemoveChild(child)

	if child.Parent != nil {
		t.Error("child.Parent should be nil after removal")
	}
	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
	if child.IsDisposed() {
		t.Error("removal must not dispose the child")
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing child from non-parent")
		}
	}()
	b.RemoveChild(child)
}

func TestRemoveChildAtReturnsChild(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)

	got := parent.RemoveChildAt(0)

	if got != a {
		t.Error("RemoveChildAt(0) did not return the first child")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != b {
		t.Error("remaining children wrong after RemoveChildAt")
	}
}

func TestRemoveChildrenDetachesAll(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("detached children should have nil Parent")
	}
	if a.IsDisposed() || b.IsDisposed() {
		t.Error("RemoveChildren must not dispose children")
	}
}

func TestDisposeCascades(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewElement("grandchild", 1, 1)
	parent.AddChild(child)
	child.AddChild(grandchild)

	parent.Dispose()

	for _, n := range []*Node{parent, child, grandchild} {
		if !n.IsDisposed() {
			t.Errorf("%s not disposed", n.Name)
		}
		if n.ID != 0 {
			t.Errorf("%s ID = %d, want 0 after dispose", n.Name, n.ID)
		}
	}
}

func TestDisposeDetachesFromParent(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	child.Dispose()

	if parent.NumChildren() != 0 {
		t.Error("disposed child still attached to parent")
	}
	if parent.IsDisposed() {
		t.Error("disposing a child must not dispose the parent")
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose() // must not panic
	if !n.IsDisposed() {
		t.Error("node should remain disposed")
	}
}

func TestNodeDefaults(t *testing.T) {
	n := NewElement("n", 2, 0.5)
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Error("default scale should be 1")
	}
	if n.Alpha != 1 {
		t.Error("default alpha should be 1")
	}
	if n.Color != ColorWhite {
		t.Error("default color should be white")
	}
	if n.Width() != 2 || n.Height() != 0.5 {
		t.Errorf("size = (%f, %f), want (2, 0.5)", n.Width(), n.Height())
	}
	if n.ID == 0 {
		t.Error("node should receive a nonzero ID")
	}
}

func TestNodeIDsAreUnique(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 100; i++ {
		n := NewContainer("n")
		if seen[n.ID] {
			t.Fatalf("duplicate node ID %d", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestSetPosition(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(3, -1.5)
	if got := n.Position(); got != (Vec2{3, -1.5}) {
		t.Errorf("Position = %+v, want {3 -1.5}", got)
	}
}
