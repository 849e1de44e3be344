package segtree

import "fmt"

// Tree is a segment tree over a fixed-length sequence of elements of type T.
//
// The zero value is not usable; create trees with New or FromSlice. Every
// inner node caches the monoid aggregate of its subtree, so range folds touch
// only O(log n) nodes.
type Tree[T any] struct {
	monoid Monoid[T]
	root   treeNode[T]
}

// New creates a tree of length n with every element set to the monoid
// identity.
func New[T any](m Monoid[T], n int) (*Tree[T], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrEmptySequence, n)
	}
	t := &Tree[T]{monoid: m}
	t.root = t.buildUniform(n)
	return t, nil
}

// FromSlice creates a tree holding the given elements in sequence order.
//
// The aggregate of each inner node is computed children-first during
// construction, so the tree is fully consistent without a second pass.
func FromSlice[T any](m Monoid[T], values []T) (*Tree[T], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty slice", ErrEmptySequence)
	}
	t := &Tree[T]{monoid: m}
	t.root = t.buildSlice(values)
	return t, nil
}

func (t *Tree[T]) buildUniform(n int) treeNode[T] {
	assert(n > 0, "buildUniform called with non-positive length")
	if n == 1 {
		return &leafNode[T]{value: t.monoid.Zero()}
	}
	mid := n / 2
	left := t.buildUniform(mid)
	right := t.buildUniform(n - mid)
	return &innerNode[T]{
		agg:   t.monoid.Add(left.aggregate(), right.aggregate()),
		len:   n,
		left:  left,
		right: right,
	}
}

func (t *Tree[T]) buildSlice(values []T) treeNode[T] {
	assert(len(values) > 0, "buildSlice called with empty slice")
	if len(values) == 1 {
		return &leafNode[T]{value: values[0]}
	}
	mid := len(values) / 2
	left := t.buildSlice(values[:mid])
	right := t.buildSlice(values[mid:])
	return &innerNode[T]{
		agg:   t.monoid.Add(left.aggregate(), right.aggregate()),
		len:   len(values),
		left:  left,
		right: right,
	}
}

// Monoid returns the aggregation contract the tree was created with.
func (t *Tree[T]) Monoid() Monoid[T] {
	return t.monoid
}

// Len returns the number of elements in the tree. The length is fixed at
// construction.
func (t *Tree[T]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.length()
}

// Get returns the element at index i.
func (t *Tree[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= t.Len() {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, t.Len())
	}
	n := t.root
	for {
		switch node := n.(type) {
		case *leafNode[T]:
			assert(i == 0, "Get descended to a leaf with non-zero offset")
			return node.value, nil
		case *innerNode[T]:
			mid := node.left.length()
			if i < mid {
				n = node.left
			} else {
				n = node.right
				i -= mid
			}
		}
	}
}

// Set overwrites the element at index i and recomputes all ancestor
// aggregates.
func (t *Tree[T]) Set(i int, v T) error {
	return t.Modify(i, func(T) T { return v })
}

// Modify replaces the element at index i with fn(element) and recomputes all
// ancestor aggregates on the unwind path.
func (t *Tree[T]) Modify(i int, fn func(T) T) error {
	if i < 0 || i >= t.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, t.Len())
	}
	t.modifyNode(t.root, i, fn)
	return nil
}

func (t *Tree[T]) modifyNode(n treeNode[T], i int, fn func(T) T) {
	switch node := n.(type) {
	case *leafNode[T]:
		assert(i == 0, "Modify descended to a leaf with non-zero offset")
		node.value = fn(node.value)
	case *innerNode[T]:
		mid := node.left.length()
		if i < mid {
			t.modifyNode(node.left, i, fn)
		} else {
			t.modifyNode(node.right, i-mid, fn)
		}
		node.agg = t.monoid.Add(node.left.aggregate(), node.right.aggregate())
	}
}

// Fold returns the aggregate of the half-open range [i, j).
//
// An empty range folds to the monoid identity. Partial results are combined
// in sequence order, so non-commutative monoids aggregate correctly.
func (t *Tree[T]) Fold(i, j int) (T, error) {
	var zero T
	if i < 0 || i > j || j > t.Len() {
		return zero, fmt.Errorf("%w: [%d, %d), length %d", ErrInvalidRange, i, j, t.Len())
	}
	return t.foldNode(t.root, i, j), nil
}

// FoldAll returns the aggregate of all elements, i.e. the root aggregate.
func (t *Tree[T]) FoldAll() T {
	return t.root.aggregate()
}

func (t *Tree[T]) foldNode(n treeNode[T], i, j int) T {
	if i == j {
		return t.monoid.Zero()
	}
	if j-i == n.length() {
		// Whole-subtree shortcut; also the only way a leaf is reached.
		return n.aggregate()
	}
	node, ok := n.(*innerNode[T])
	assert(ok, "Fold reached a leaf with a strict sub-range")
	mid := node.left.length()
	switch {
	case j <= mid:
		return t.foldNode(node.left, i, j)
	case mid <= i:
		return t.foldNode(node.right, i-mid, j-mid)
	default:
		left := t.foldNode(node.left, i, mid)
		right := t.foldNode(node.right, 0, j-mid)
		return t.monoid.Add(left, right)
	}
}
