package rtree

import "math"

// node is a tree node. It is either an internal node, holding children
// nodes, or a leaf node, holding user items directly; leaf is the
// discriminant. All children of an internal node share the same height.
type node[T any] struct {
	bbox     BBox
	height   int
	leaf     bool
	children []*node[T]
	items    []T
}

func newLeaf[T any]() *node[T] {
	return &node[T]{bbox: emptyBBox(), height: 1, leaf: true}
}

// calcBBox resets n's bbox and recomputes it as the union of all of n's
// children (or all of n's items, if n is a leaf).
func (n *node[T]) calcBBox(toBBox func(T) BBox) {
	n.bbox = emptyBBox()
	if n.leaf {
		for _, item := range n.items {
			n.bbox.extend(toBBox(item))
		}
		return
	}
	for _, child := range n.children {
		n.bbox.extend(child.bbox)
	}
}

// distBBox returns the union of the rectangles of n's children (or items)
// in the half-open range [k, p).
func (n *node[T]) distBBox(k, p int, toBBox func(T) BBox) BBox {
	b := emptyBBox()
	if n.leaf {
		for i := k; i < p; i++ {
			b.extend(toBBox(n.items[i]))
		}
		return b
	}
	for i := k; i < p; i++ {
		b.extend(n.children[i].bbox)
	}
	return b
}

// all appends every user item in the subtree rooted at n to out, visiting
// the tree depth-first via a LIFO work-list. Traversal order is otherwise
// unspecified.
func (n *node[T]) all(out []T) []T {
	stack := []*node[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.leaf {
			out = append(out, cur.items...)
			continue
		}
		stack = append(stack, cur.children...)
	}
	return out
}

// chooseSubtree descends from start until either a leaf or depth level is
// reached, appending every visited node to path. At each internal node it
// picks the child that needs the smallest enlargement to accommodate bbox,
// breaking ties by the child's own (smaller) area.
func chooseSubtree[T any](bbox BBox, start *node[T], level int, path []*node[T]) (*node[T], []*node[T]) {
	cur := start
	for {
		path = append(path, cur)
		if cur.leaf || len(path)-1 == level {
			break
		}

		var target *node[T]
		minEnlargement := math.Inf(+1)
		minArea := math.Inf(+1)
		for _, child := range cur.children {
			childArea := child.bbox.area()
			enl := enlargement(child.bbox, bbox)
			if enl < minEnlargement {
				minEnlargement = enl
				minArea = childArea
				target = child
			} else if enl == minEnlargement && childArea < minArea {
				minArea = childArea
				target = child
			}
		}
		if target == nil {
			if len(cur.children) == 0 {
				break
			}
			target = cur.children[0]
		}
		cur = target
	}
	return cur, path
}
