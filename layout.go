package cadence

import (
	"fmt"
	"math"
)

// TreeLayout assigns non-overlapping positions to an arbitrary branching tree
// by recursively subdividing a horizontal span. The root is centered in
// [boundLeft, boundRight] at OriginY; each level steps down by LevelHeight.
type TreeLayout struct {
	// OriginY is the Y coordinate of the root level.
	OriginY float64

	// LevelHeight is the vertical distance between consecutive levels.
	LevelHeight float64

	// Weighted selects subtree-leaf-count weighted subdivision instead of the
	// default equal-width rule. Equal width matches the house layout: an
	// unbalanced tree gets visually uneven spacing, which is accepted.
	Weighted bool
}

// NewTreeLayout returns a layout using the config's tree spacing values.
func NewTreeLayout(cfg Config) TreeLayout {
	return TreeLayout{
		OriginY:     cfg.Spacing.TreeOriginY,
		LevelHeight: cfg.Spacing.TreeLevelHeight,
	}
}

// Layout assigns a position to every node in the subtree rooted at root.
//
// The root is placed at the midpoint of [boundLeft, boundRight]. A node with
// n children divides its span into n contiguous sub-spans (equal width by
// default) and recurses; a single child inherits the full parent span, so
// deep unary chains keep their width. A nil root is a no-op.
//
// The structure must be a strict tree. Revisiting a node aborts the pass with
// an error wrapping ErrCyclicStructure; positions assigned before the cycle
// was detected are left in place.
func (l TreeLayout) Layout(root *Node, boundLeft, boundRight float64) error {
	if root == nil {
		return nil
	}
	visited := make(map[*Node]struct{})
	return l.place(root, 0, boundLeft, boundRight, visited)
}

func (l TreeLayout) place(n *Node, depth int, left, right float64, visited map[*Node]struct{}) error {
	if _, ok := visited[n]; ok {
		return fmt.Errorf("%w: node %q revisited during layout", ErrCyclicStructure, n.Name)
	}
	visited[n] = struct{}{}

	n.X = (left + right) / 2
	n.Y = l.OriginY - float64(depth)*l.LevelHeight

	num := len(n.children)
	if num == 0 {
		return nil
	}
	if num == 1 {
		// The single child inherits the full parent span.
		return l.place(n.children[0], depth+1, left, right, visited)
	}

	if l.Weighted {
		return l.placeWeighted(n, depth, left, right, visited)
	}

	childWidth := (right - left) / float64(num)
	for i, child := range n.children {
		childLeft := left + float64(i)*childWidth
		if err := l.place(child, depth+1, childLeft, childLeft+childWidth, visited); err != nil {
			return err
		}
	}
	return nil
}

// placeWeighted divides the span proportional to each child subtree's leaf
// count, so wide subtrees get more room.
func (l TreeLayout) placeWeighted(n *Node, depth int, left, right float64, visited map[*Node]struct{}) error {
	total := 0
	weights := make([]int, len(n.children))
	seen := make(map[*Node]struct{})
	for i, child := range n.children {
		w, err := leafCount(child, visited, seen)
		if err != nil {
			return err
		}
		weights[i] = w
		total += w
	}

	width := right - left
	cursor := left
	for i, child := range n.children {
		span := width * float64(weights[i]) / float64(total)
		if err := l.place(child, depth+1, cursor, cursor+span, visited); err != nil {
			return err
		}
		cursor += span
	}
	return nil
}

// leafCount counts leaves under n. It keeps its own seen set (separate from
// the layout's placed set, which the main recursion will still check) so a
// cycle anywhere in the subtree fails fast instead of looping.
func leafCount(n *Node, placed, seen map[*Node]struct{}) (int, error) {
	if _, ok := placed[n]; ok {
		return 0, fmt.Errorf("%w: node %q revisited during layout", ErrCyclicStructure, n.Name)
	}
	if _, ok := seen[n]; ok {
		return 0, fmt.Errorf("%w: node %q revisited during layout", ErrCyclicStructure, n.Name)
	}
	seen[n] = struct{}{}
	if len(n.children) == 0 {
		return 1, nil
	}
	sum := 0
	for _, child := range n.children {
		c, err := leafCount(child, placed, seen)
		if err != nil {
			return 0, err
		}
		sum += c
	}
	return sum, nil
}

// --- Positioning helpers ---

// RowPositions returns count positions evenly spaced along a horizontal row
// centered on center.
func RowPositions(count int, center Vec2, spacing float64) []Vec2 {
	return linePositions(count, center, spacing, false)
}

// ColumnPositions returns count positions evenly spaced along a vertical
// column centered on center, top to bottom.
func ColumnPositions(count int, center Vec2, spacing float64) []Vec2 {
	return linePositions(count, center, spacing, true)
}

func linePositions(count int, center Vec2, spacing float64, vertical bool) []Vec2 {
	if count <= 0 {
		return nil
	}
	positions := make([]Vec2, count)
	start := -float64(count-1) * spacing / 2
	for i := range positions {
		offset := start + float64(i)*spacing
		if vertical {
			positions[i] = Vec2{center.X, center.Y - offset}
		} else {
			positions[i] = Vec2{center.X + offset, center.Y}
		}
	}
	return positions
}

// GridPositions returns cell-center positions for a rows×cols grid centered
// on center, indexed [row][col], row 0 at the top.
func GridPositions(rows, cols int, center Vec2, cellWidth, cellHeight float64) [][]Vec2 {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	startX := center.X - float64(cols)*cellWidth/2 + cellWidth/2
	startY := center.Y + float64(rows)*cellHeight/2 - cellHeight/2

	grid := make([][]Vec2, rows)
	for r := range grid {
		row := make([]Vec2, cols)
		for c := range row {
			row[c] = Vec2{
				X: startX + float64(c)*cellWidth,
				Y: startY - float64(r)*cellHeight,
			}
		}
		grid[r] = row
	}
	return grid
}

// ArcPositions returns count positions along a circular arc around center.
// Angles are in radians. A single item is placed at the arc's midpoint.
func ArcPositions(center Vec2, radius, startAngle, endAngle float64, count int) []Vec2 {
	if count <= 0 {
		return nil
	}
	positions := make([]Vec2, count)
	if count == 1 {
		mid := (startAngle + endAngle) / 2
		positions[0] = Vec2{center.X + radius*math.Cos(mid), center.Y + radius*math.Sin(mid)}
		return positions
	}
	step := (endAngle - startAngle) / float64(count-1)
	for i := range positions {
		a := startAngle + float64(i)*step
		positions[i] = Vec2{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)}
	}
	return positions
}
