package segtree

import "fmt"

// Check validates structural tree invariants.
//
// It recomputes every inner-node aggregate bottom-up and compares it to the
// cached value using eq, verifies length bookkeeping, and verifies the fixed
// floor(len/2) split point. This checker is intentionally strict and meant
// for tests.
func (t *Tree[T]) Check(eq func(a, b T) bool) error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if eq == nil {
		return fmt.Errorf("%w: equality predicate is required", ErrInvalidConfig)
	}
	_, err := t.checkNode(t.root, eq)
	return err
}

// checkNode returns the recomputed aggregate of subtree n.
func (t *Tree[T]) checkNode(n treeNode[T], eq func(a, b T) bool) (T, error) {
	var zero T
	switch node := n.(type) {
	case *leafNode[T]:
		return node.value, nil
	case *innerNode[T]:
		if node.len < 2 {
			return zero, fmt.Errorf("%w: inner node with length %d", ErrInvalidConfig, node.len)
		}
		if node.left == nil || node.right == nil {
			return zero, fmt.Errorf("%w: inner node with missing child", ErrInvalidConfig)
		}
		if node.left.length() != node.len/2 || node.left.length()+node.right.length() != node.len {
			return zero, fmt.Errorf("%w: split %d+%d does not match length %d",
				ErrInvalidConfig, node.left.length(), node.right.length(), node.len)
		}
		leftAgg, err := t.checkNode(node.left, eq)
		if err != nil {
			return zero, err
		}
		rightAgg, err := t.checkNode(node.right, eq)
		if err != nil {
			return zero, err
		}
		recomputed := t.monoid.Add(leftAgg, rightAgg)
		if !eq(recomputed, node.agg) {
			return zero, fmt.Errorf("%w: stale aggregate at node of length %d",
				ErrInvalidConfig, node.len)
		}
		return recomputed, nil
	}
	return zero, fmt.Errorf("%w: unknown node type", ErrInvalidConfig)
}
