package rtree

import "math"

const defaultMaxEntries = 9

// RTree is an in-memory R-tree spatial index over axis-aligned rectangles.
// It holds values of type T; toBBox maps a value to its bounding rectangle.
// The zero value of RTree is not ready to use — construct one with New or
// NewWithMaxEntries. RTree is not safe for concurrent use.
type RTree[T any] struct {
	root       *node[T]
	maxEntries int
	minEntries int
	toBBox     func(T) BBox
	count      int
}

// New constructs an empty RTree using the default maximum node capacity of
// 9 entries. toBBox maps a user item to its bounding rectangle and must be
// non-nil.
func New[T any](toBBox func(T) BBox) *RTree[T] {
	return NewWithMaxEntries(toBBox, defaultMaxEntries)
}

// NewWithMaxEntries constructs an empty RTree with the given maximum number
// of entries per node. maxEntries below 4 is silently floored to 4; the
// minimum entries per node is then derived as max(2, ceil(maxEntries*0.4)).
func NewWithMaxEntries[T any](toBBox func(T) BBox, maxEntries int) *RTree[T] {
	if toBBox == nil {
		panic("rtree: toBBox must not be nil")
	}
	if maxEntries < 4 {
		maxEntries = 4
	}
	minEntries := int(math.Ceil(float64(maxEntries) * 0.4))
	if minEntries < 2 {
		minEntries = 2
	}
	return &RTree[T]{
		root:       newLeaf[T](),
		maxEntries: maxEntries,
		minEntries: minEntries,
		toBBox:     toBBox,
	}
}

// Len returns the number of items currently stored in the tree.
func (t *RTree[T]) Len() int {
	return t.count
}

// entryCount returns the number of children (internal node) or items (leaf)
// directly under n.
func (n *node[T]) entryCount() int {
	if n.leaf {
		return len(n.items)
	}
	return len(n.children)
}

// Insert adds item to the tree.
func (t *RTree[T]) Insert(item T) *RTree[T] {
	t.insert(item, nil, t.root.height-1)
	t.count++
	return t
}

// insert implements the shared core of item insertion and the node
// insertion bulk load performs when merging a freshly built subtree into an
// existing tree. Exactly one of item/subtree is meaningful: subtree when it
// is non-nil, item otherwise.
func (t *RTree[T]) insert(item T, subtree *node[T], level int) {
	var bbox BBox
	if subtree != nil {
		bbox = subtree.bbox
	} else {
		bbox = t.toBBox(item)
	}

	target, path := chooseSubtree(bbox, t.root, level, nil)
	if subtree != nil {
		target.children = append(target.children, subtree)
	} else {
		target.items = append(target.items, item)
	}
	target.bbox.extend(bbox)

	for level >= 0 && path[level].entryCount() > t.maxEntries {
		path = t.split(path, level)
		level--
	}
	for i := level; i >= 0; i-- {
		path[i].bbox.extend(bbox)
	}
}

// insertNode inserts an already-built subtree at the given target level,
// used by Load to graft a freshly bulk-built subtree into an existing tree.
func (t *RTree[T]) insertNode(n *node[T], level int) {
	var zero T
	t.insert(zero, n, level)
}

// Search returns every item in the tree whose rectangle intersects bbox.
// Result order is unspecified.
func (t *RTree[T]) Search(bbox BBox) []T {
	if !t.root.bbox.intersects(bbox) {
		return nil
	}
	return t.search(t.root, bbox, nil)
}

func (t *RTree[T]) search(n *node[T], bbox BBox, out []T) []T {
	if n.leaf {
		for _, item := range n.items {
			if bbox.intersects(t.toBBox(item)) {
				out = append(out, item)
			}
		}
		return out
	}
	for _, child := range n.children {
		if !child.bbox.intersects(bbox) {
			continue
		}
		if bbox.contains(child.bbox) {
			out = child.all(out)
		} else {
			out = t.search(child, bbox, out)
		}
	}
	return out
}

// Collides reports whether any item in the tree intersects bbox.
func (t *RTree[T]) Collides(bbox BBox) bool {
	if !t.root.bbox.intersects(bbox) {
		return false
	}
	return t.collides(t.root, bbox)
}

func (t *RTree[T]) collides(n *node[T], bbox BBox) bool {
	if n.leaf {
		for _, item := range n.items {
			if bbox.intersects(t.toBBox(item)) {
				return true
			}
		}
		return false
	}
	for _, child := range n.children {
		if !child.bbox.intersects(bbox) {
			continue
		}
		if bbox.contains(child.bbox) || t.collides(child, bbox) {
			return true
		}
	}
	return false
}

// All returns every item in the tree. Result order is unspecified.
func (t *RTree[T]) All() []T {
	return t.root.all(nil)
}

// Clear empties the tree, resetting it to a fresh leaf root of height 1.
func (t *RTree[T]) Clear() *RTree[T] {
	t.root = newLeaf[T]()
	t.count = 0
	return t
}
