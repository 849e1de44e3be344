package segtree

import "fmt"

// MaxEnd returns the largest end such that pred holds on the fold of
// [start, end).
//
// pred must hold on the monoid identity, and must be monotone: once it fails
// for some range it must keep failing for every extension of that range.
// Neither property is verified; the result is unspecified if they are
// violated. If pred holds for the whole suffix, MaxEnd returns Len().
//
// The search extends a running accumulator by whole-subtree aggregates where
// possible and descends only into the subtree containing the boundary, for an
// O(log n) cost per call.
func (t *Tree[T]) MaxEnd(start int, pred func(T) bool) (int, error) {
	if start < 0 || start > t.Len() {
		return 0, fmt.Errorf("%w: start %d, length %d", ErrIndexOutOfBounds, start, t.Len())
	}
	acc := t.monoid.Zero()
	return t.maxEndNode(t.root, start, pred, &acc), nil
}

func (t *Tree[T]) maxEndNode(n treeNode[T], start int, pred func(T) bool, acc *T) int {
	if start == 0 {
		merged := t.monoid.Add(*acc, n.aggregate())
		if pred(merged) {
			*acc = merged
			return n.length()
		}
	}
	if start == n.length() {
		return n.length()
	}
	node, ok := n.(*innerNode[T])
	if !ok {
		// The leaf's single element broke the predicate; it contributes
		// nothing beyond the boundary.
		return 0
	}
	mid := node.left.length()
	if start < mid {
		leftMax := t.maxEndNode(node.left, start, pred, acc)
		if leftMax < mid {
			return leftMax
		}
	}
	return mid + t.maxEndNode(node.right, max(start, mid)-mid, pred, acc)
}

// MinStart returns the smallest start such that pred holds on the fold of
// [start, end).
//
// The preconditions mirror MaxEnd: pred must hold on the identity and must be
// monotone as the range is extended leftwards. If pred holds for the whole
// prefix, MinStart returns 0.
func (t *Tree[T]) MinStart(end int, pred func(T) bool) (int, error) {
	if end < 0 || end > t.Len() {
		return 0, fmt.Errorf("%w: end %d, length %d", ErrIndexOutOfBounds, end, t.Len())
	}
	acc := t.monoid.Zero()
	return t.minStartNode(t.root, end, pred, &acc), nil
}

func (t *Tree[T]) minStartNode(n treeNode[T], end int, pred func(T) bool, acc *T) int {
	if end == n.length() {
		// The accumulator holds the fold of everything right of this
		// subtree, so the subtree aggregate goes on the left.
		merged := t.monoid.Add(n.aggregate(), *acc)
		if pred(merged) {
			*acc = merged
			return 0
		}
	}
	if end == 0 {
		return 0
	}
	node, ok := n.(*innerNode[T])
	if !ok {
		return 1
	}
	mid := node.left.length()
	if mid <= end {
		rightMin := t.minStartNode(node.right, end-mid, pred, acc)
		if rightMin > 0 {
			return mid + rightMin
		}
	}
	return t.minStartNode(node.left, min(end, mid), pred, acc)
}
