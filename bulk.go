package rtree

import (
	"cmp"
	"math"
)

// Load bulk loads items into the tree using an overlap-minimizing tile
// packing (OMT) procedure, which produces far less node overlap — and
// therefore faster search — than inserting the same items one at a time.
// If items is shorter than the tree's minEntries, Load falls back to
// inserting each item individually, since OMT only pays off once there's
// enough material to tile.
func (t *RTree[T]) Load(items []T) *RTree[T] {
	if len(items) == 0 {
		return t
	}
	if len(items) < t.minEntries {
		for _, item := range items {
			t.Insert(item)
		}
		return t
	}

	buf := append([]T(nil), items...)
	built := t.build(buf, 0, len(buf)-1, 0)

	switch {
	case t.root.entryCount() == 0:
		t.root = built
	case t.root.height == built.height:
		t.splitRoot(t.root, built)
	default:
		if t.root.height < built.height {
			t.root, built = built, t.root
		}
		t.insertNode(built, t.root.height-built.height-1)
	}
	t.count += len(items)
	return t
}

// build recursively tiles items[left..right] into a balanced subtree of
// the given height (0 meaning "compute it, this is the top-level call").
// It partitions by x (with multiSelect, not a full sort) into stripes of
// about sqrt(maxEntries) subtrees' worth of items each, then partitions
// each stripe by y into tiles of one subtree's worth of items, recursing
// on each tile.
func (t *RTree[T]) build(items []T, left, right, height int) *node[T] {
	N := right - left + 1
	M := t.maxEntries

	if N <= M {
		n := &node[T]{leaf: true, height: 1, items: append([]T(nil), items[left:right+1]...)}
		n.calcBBox(t.toBBox)
		return n
	}

	if height == 0 {
		height = int(math.Ceil(math.Log(float64(N)) / math.Log(float64(M))))
		M = int(math.Ceil(float64(N) / math.Pow(float64(M), float64(height-1))))
	}

	N2 := int(math.Ceil(float64(N) / float64(M)))
	N1 := N2 * int(math.Ceil(math.Sqrt(float64(M))))

	multiSelect(items, left, right, N1, func(a, b T) int {
		return cmp.Compare(t.toBBox(a).MinX, t.toBBox(b).MinX)
	})

	children := make([]*node[T], 0, M)
	for stripeStart := left; stripeStart <= right; stripeStart += N1 {
		stripeEnd := minInt(stripeStart+N1-1, right)

		multiSelect(items, stripeStart, stripeEnd, N2, func(a, b T) int {
			return cmp.Compare(t.toBBox(a).MinY, t.toBBox(b).MinY)
		})

		for tileStart := stripeStart; tileStart <= stripeEnd; tileStart += N2 {
			tileEnd := minInt(tileStart+N2-1, stripeEnd)
			children = append(children, t.build(items, tileStart, tileEnd, height-1))
		}
	}

	n := &node[T]{leaf: false, height: height, children: children}
	n.calcBBox(t.toBBox)
	return n
}
