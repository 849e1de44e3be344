package segtree

import "iter"

// All returns an iterator over all index/element pairs in sequence order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t == nil || t.root == nil {
			return
		}
		t.eachNode(t.root, 0, yield)
	}
}

func (t *Tree[T]) eachNode(n treeNode[T], pos int, yield func(int, T) bool) bool {
	switch node := n.(type) {
	case *leafNode[T]:
		return yield(pos, node.value)
	case *innerNode[T]:
		if !t.eachNode(node.left, pos, yield) {
			return false
		}
		return t.eachNode(node.right, pos+node.left.length(), yield)
	}
	return true
}

// Values returns a snapshot of all elements in sequence order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.Len())
	for _, v := range t.All() {
		out = append(out, v)
	}
	return out
}
