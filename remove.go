package rtree

import "reflect"

// Remove deletes one occurrence of item from the tree. Items are matched by
// eq if supplied (only the first variadic argument is used), or by
// reflect.DeepEqual otherwise — Go's any constraint permits no built-in ==
// for arbitrary T, so an explicit predicate is how callers opt into cheaper
// or looser equality. Removing an item that isn't present is a no-op.
func (t *RTree[T]) Remove(item T, eq ...func(a, b T) bool) *RTree[T] {
	equal := func(a, b T) bool { return reflect.DeepEqual(a, b) }
	if len(eq) > 0 && eq[0] != nil {
		equal = eq[0]
	}
	if t.remove(item, equal) {
		t.count--
	}
	return t
}

// remove walks the tree looking for item, descending only into internal
// nodes whose bbox contains toBBox(item) and backtracking across siblings
// (at every level, not just leaves) when a subtree search comes up empty.
// The goingUp flag suppresses re-descending into a node we just backtracked
// out of. path and indexes are parallel stacks recording, for each
// ancestor on the current descent, the node itself and the index of the
// child currently being visited.
func (t *RTree[T]) remove(item T, equal func(a, b T) bool) bool {
	bbox := t.toBBox(item)

	var path []*node[T]
	var indexes []int

	cur := t.root
	var i int
	var parent *node[T]
	goingUp := false

	for cur != nil || len(path) != 0 {
		if cur == nil {
			cur = path[len(path)-1]
			path = path[:len(path)-1]
			if len(path) == 0 {
				parent = nil
			} else {
				parent = path[len(path)-1]
			}
			i = indexes[len(indexes)-1]
			indexes = indexes[:len(indexes)-1]
			goingUp = true
		}

		if cur.leaf {
			if idx := findItem(cur, item, equal); idx != -1 {
				cur.items = append(cur.items[:idx], cur.items[idx+1:]...)
				path = append(path, cur)
				t.condense(path)
				return true
			}
		}

		if !goingUp && !cur.leaf && cur.bbox.contains(bbox) {
			path = append(path, cur)
			indexes = append(indexes, i)
			i = 0
			parent = cur
			cur = cur.children[0]
		} else if parent != nil {
			i++
			if i == len(parent.children) {
				cur = nil
			} else {
				cur = parent.children[i]
			}
			goingUp = false
		} else {
			cur = nil
		}
	}
	return false
}

func findItem[T any](n *node[T], item T, equal func(a, b T) bool) int {
	for i, it := range n.items {
		if equal(it, item) {
			return i
		}
	}
	return -1
}

// condense walks path from deepest to shallowest. A node left empty by a
// removal is detached from its parent's children; any other node has its
// bbox recomputed from its (possibly now-smaller) set of children or
// items. If the root itself ends up empty, the tree is reset to a fresh
// empty leaf. Heights are untouched — this design never re-inserts
// orphaned entries after condensation.
func (t *RTree[T]) condense(path []*node[T]) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.entryCount() == 0 {
			if i == 0 {
				t.root = newLeaf[T]()
				continue
			}
			parent := path[i-1]
			for j, child := range parent.children {
				if child == n {
					parent.children = append(parent.children[:j], parent.children[j+1:]...)
					break
				}
			}
		} else {
			n.calcBBox(t.toBBox)
		}
	}
}
