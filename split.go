package rtree

import (
	"math"
	"sort"
)

// split splits the overfull node at path[level] into two nodes: the
// original (now holding the lower part of the chosen split) and a new
// sibling (holding the upper part). The sibling is appended to the parent's
// children, or, if level is 0, a new root is created via splitRoot.
func (t *RTree[T]) split(path []*node[T], level int) []*node[T] {
	n := path[level]
	M := n.entryCount()
	m := t.minEntries

	t.chooseSplitAxis(n, m, M)
	splitIndex := t.chooseSplitIndex(n, m, M)

	sibling := &node[T]{leaf: n.leaf, height: n.height}
	if n.leaf {
		sibling.items = append([]T(nil), n.items[splitIndex:]...)
		n.items = n.items[:splitIndex:splitIndex]
	} else {
		sibling.children = append([]*node[T](nil), n.children[splitIndex:]...)
		n.children = n.children[:splitIndex:splitIndex]
	}

	n.calcBBox(t.toBBox)
	sibling.calcBBox(t.toBBox)

	if level != 0 {
		parent := path[level-1]
		parent.children = append(parent.children, sibling)
	} else {
		t.splitRoot(n, sibling)
	}
	return path
}

// splitRoot replaces the tree's root with a new internal node whose two
// children are a and b.
func (t *RTree[T]) splitRoot(a, b *node[T]) {
	newRoot := &node[T]{leaf: false, height: a.height + 1, children: []*node[T]{a, b}}
	newRoot.calcBBox(t.toBBox)
	t.root = newRoot
}

// chooseSplitAxis picks the axis (x or y) whose total distribution margin
// (summed over every valid split point) is smaller, and leaves n's children
// sorted by that axis's min coordinate.
func (t *RTree[T]) chooseSplitAxis(n *node[T], m, M int) {
	xMargin := t.allDistMargin(n, m, M, 0)
	minMargin, minAxis := xMargin, 0

	yMargin := t.allDistMargin(n, m, M, 1)
	if yMargin < minMargin {
		minMargin, minAxis = yMargin, 1
	}
	t.sortByAxis(n, minAxis)
}

// allDistMargin computes the total distribution margin for n's children
// sorted along axis: the margin of the m-left and m-right boundary boxes,
// plus the margin of every intermediate running union as the split point
// sweeps across the remaining entries from both sides.
func (t *RTree[T]) allDistMargin(n *node[T], m, M, axis int) float64 {
	t.sortByAxis(n, axis)

	leftBBox := n.distBBox(0, m, t.toBBox)
	rightBBox := n.distBBox(M-m, M, t.toBBox)
	margin := leftBBox.margin() + rightBBox.margin()

	for i := m; i < M-m; i++ {
		leftBBox.extend(t.entryBBox(n, i))
		margin += leftBBox.margin()
	}
	for i := M - m - 1; i >= m; i-- {
		rightBBox.extend(t.entryBBox(n, i))
		margin += rightBBox.margin()
	}
	return margin
}

// chooseSplitIndex picks the split point in [m, M-m] minimizing the
// intersection area of the two resulting bounding boxes, breaking ties by
// the smaller summed area. If no split point ever improves on the initial
// (infinite) minimum, M-m is used.
func (t *RTree[T]) chooseSplitIndex(n *node[T], m, M int) int {
	minOverlap := math.Inf(+1)
	minArea := math.Inf(+1)
	index := 0

	for i := m; i <= M-m; i++ {
		bbox1 := n.distBBox(0, i, t.toBBox)
		bbox2 := n.distBBox(i, M, t.toBBox)

		overlap := intersectionArea(bbox1, bbox2)
		area := bbox1.area() + bbox2.area()

		if overlap < minOverlap {
			minOverlap = overlap
			index = i
			if area < minArea {
				minArea = area
			}
		} else if overlap == minOverlap && area < minArea {
			minArea = area
			index = i
		}
	}
	if index == 0 {
		index = M - m
	}
	return index
}

// entryBBox returns the rectangle of the i-th entry of n — toBBox(item) for
// a leaf, or the child's cached bbox for an internal node.
func (t *RTree[T]) entryBBox(n *node[T], i int) BBox {
	if n.leaf {
		return t.toBBox(n.items[i])
	}
	return n.children[i].bbox
}

// sortByAxis sorts n's entries by their rectangle's min coordinate along
// axis (0 for x, 1 for y).
func (t *RTree[T]) sortByAxis(n *node[T], axis int) {
	if n.leaf {
		sort.Slice(n.items, func(i, j int) bool {
			return minCoord(t.toBBox(n.items[i]), axis) < minCoord(t.toBBox(n.items[j]), axis)
		})
		return
	}
	sort.Slice(n.children, func(i, j int) bool {
		return minCoord(n.children[i].bbox, axis) < minCoord(n.children[j].bbox, axis)
	})
}

func minCoord(b BBox, axis int) float64 {
	if axis == 0 {
		return b.MinX
	}
	return b.MinY
}
