package lazy

import (
	"fmt"

	"github.com/npillmayer/segtree"
)

// Action defines how operators of type F act on aggregates of type T.
//
// Compose must be associative, with Unit as its neutral element, and
// Compose(f, g) means "g first, then f". Apply receives the number of
// elements n the aggregate covers; for operators like range-add this keeps
// subtree aggregates exact.
//
// Two laws tie Action to the tree's monoid: applying a composed operator
// must equal applying the operators in sequence,
//
//	Apply(Compose(f, g), v, n) == Apply(f, Apply(g, v, n), n)
//
// and application must distribute over aggregation,
//
//	Add(Apply(f, a, n), Apply(f, b, m)) == Apply(f, Add(a, b), n+m)
//
// so that deferred operators commute with aggregation across a split.
type Action[T, F any] interface {
	Unit() F
	Compose(f, g F) F
	Apply(f F, v T, n int) T
}

type treeNode[T, F any] interface {
	length() int
	aggregate() T
}

type leafNode[T, F any] struct {
	value T
}

func (l *leafNode[T, F]) length() int  { return 1 }
func (l *leafNode[T, F]) aggregate() T { return l.value }

type innerNode[T, F any] struct {
	// agg reflects pending already; children do not until push.
	agg        T
	len        int
	left       treeNode[T, F]
	right      treeNode[T, F]
	pending    F
	hasPending bool
}

func (n *innerNode[T, F]) length() int  { return n.len }
func (n *innerNode[T, F]) aggregate() T { return n.agg }

// Tree is a lazy segment tree over a fixed-length sequence of elements of
// type T, with deferred range updates of operator type F.
//
// Create trees with New or FromSlice. The error surface is shared with
// package segtree.
type Tree[T, F any] struct {
	monoid segtree.Monoid[T]
	action Action[T, F]
	root   treeNode[T, F]
}

// New creates a tree of length n with every element set to the monoid
// identity.
func New[T, F any](m segtree.Monoid[T], a Action[T, F], n int) (*Tree[T, F], error) {
	if m == nil || a == nil {
		return nil, fmt.Errorf("%w: monoid and action are required", segtree.ErrInvalidConfig)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", segtree.ErrEmptySequence, n)
	}
	t := &Tree[T, F]{monoid: m, action: a}
	values := make([]T, n)
	for i := range values {
		values[i] = m.Zero()
	}
	t.root = t.buildSlice(values)
	return t, nil
}

// FromSlice creates a tree holding the given elements in sequence order.
func FromSlice[T, F any](m segtree.Monoid[T], a Action[T, F], values []T) (*Tree[T, F], error) {
	if m == nil || a == nil {
		return nil, fmt.Errorf("%w: monoid and action are required", segtree.ErrInvalidConfig)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty slice", segtree.ErrEmptySequence)
	}
	t := &Tree[T, F]{monoid: m, action: a}
	t.root = t.buildSlice(values)
	return t, nil
}

func (t *Tree[T, F]) buildSlice(values []T) treeNode[T, F] {
	assert(len(values) > 0, "buildSlice called with empty slice")
	if len(values) == 1 {
		return &leafNode[T, F]{value: values[0]}
	}
	mid := len(values) / 2
	left := t.buildSlice(values[:mid])
	right := t.buildSlice(values[mid:])
	return &innerNode[T, F]{
		agg:   t.monoid.Add(left.aggregate(), right.aggregate()),
		len:   len(values),
		left:  left,
		right: right,
	}
}

// Len returns the number of elements in the tree.
func (t *Tree[T, F]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.length()
}

// push propagates node's pending operator into both children and clears it.
// Must be called before any individual child access.
func (t *Tree[T, F]) push(node *innerNode[T, F]) {
	if !node.hasPending {
		return
	}
	t.applyTo(node.left, node.pending)
	t.applyTo(node.right, node.pending)
	node.pending = t.action.Unit()
	node.hasPending = false
}

// applyTo applies operator f to an entire subtree in O(1): aggregates are
// updated immediately, descent is deferred via the pending operator.
func (t *Tree[T, F]) applyTo(n treeNode[T, F], f F) {
	switch node := n.(type) {
	case *leafNode[T, F]:
		node.value = t.action.Apply(f, node.value, 1)
	case *innerNode[T, F]:
		node.agg = t.action.Apply(f, node.agg, node.len)
		if node.hasPending {
			node.pending = t.action.Compose(f, node.pending)
		} else {
			node.pending = f
			node.hasPending = true
		}
	}
}

// Get returns the element at index i.
func (t *Tree[T, F]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= t.Len() {
		return zero, fmt.Errorf("%w: index %d, length %d", segtree.ErrIndexOutOfBounds, i, t.Len())
	}
	n := t.root
	for {
		switch node := n.(type) {
		case *leafNode[T, F]:
			assert(i == 0, "Get descended to a leaf with non-zero offset")
			return node.value, nil
		case *innerNode[T, F]:
			t.push(node)
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
func (t *Tree[T, F]) Set(i int, v T) error {
	return t.Modify(i, func(T) T { return v })
}

// Modify replaces the element at index i with fn(element).
func (t *Tree[T, F]) Modify(i int, fn func(T) T) error {
	if i < 0 || i >= t.Len() {
		return fmt.Errorf("%w: index %d, length %d", segtree.ErrIndexOutOfBounds, i, t.Len())
	}
	t.modifyNode(t.root, i, fn)
	return nil
}

func (t *Tree[T, F]) modifyNode(n treeNode[T, F], i int, fn func(T) T) {
	switch node := n.(type) {
	case *leafNode[T, F]:
		assert(i == 0, "Modify descended to a leaf with non-zero offset")
		node.value = fn(node.value)
	case *innerNode[T, F]:
		t.push(node)
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
func (t *Tree[T, F]) Fold(i, j int) (T, error) {
	var zero T
	if i < 0 || i > j || j > t.Len() {
		return zero, fmt.Errorf("%w: [%d, %d), length %d", segtree.ErrInvalidRange, i, j, t.Len())
	}
	return t.foldNode(t.root, i, j), nil
}

// FoldAll returns the aggregate of all elements.
func (t *Tree[T, F]) FoldAll() T {
	return t.root.aggregate()
}

func (t *Tree[T, F]) foldNode(n treeNode[T, F], i, j int) T {
	if i == j {
		return t.monoid.Zero()
	}
	if j-i == n.length() {
		// Aggregates already reflect their own pending operator.
		return n.aggregate()
	}
	node, ok := n.(*innerNode[T, F])
	assert(ok, "Fold reached a leaf with a strict sub-range")
	t.push(node)
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

// Apply applies operator f to every element of the half-open range [i, j).
//
// Fully covered subtrees absorb the operator in O(1); partially covered
// subtrees push their pending operator down first, recurse left-to-right,
// and recompute their aggregate from the updated children.
func (t *Tree[T, F]) Apply(i, j int, f F) error {
	if i < 0 || i > j || j > t.Len() {
		return fmt.Errorf("%w: [%d, %d), length %d", segtree.ErrInvalidRange, i, j, t.Len())
	}
	t.applyNode(t.root, i, j, f)
	return nil
}

func (t *Tree[T, F]) applyNode(n treeNode[T, F], i, j int, f F) {
	if i == j {
		return
	}
	if j-i == n.length() {
		t.applyTo(n, f)
		return
	}
	node, ok := n.(*innerNode[T, F])
	assert(ok, "Apply reached a leaf with a strict sub-range")
	t.push(node)
	mid := node.left.length()
	switch {
	case j <= mid:
		t.applyNode(node.left, i, j, f)
	case mid <= i:
		t.applyNode(node.right, i-mid, j-mid, f)
	default:
		t.applyNode(node.left, i, mid, f)
		t.applyNode(node.right, 0, j-mid, f)
	}
	node.agg = t.monoid.Add(node.left.aggregate(), node.right.aggregate())
}

// Values returns a snapshot of all elements in sequence order.
func (t *Tree[T, F]) Values() []T {
	out := make([]T, 0, t.Len())
	t.collect(t.root, &out)
	return out
}

func (t *Tree[T, F]) collect(n treeNode[T, F], out *[]T) {
	switch node := n.(type) {
	case *leafNode[T, F]:
		*out = append(*out, node.value)
	case *innerNode[T, F]:
		t.push(node)
		t.collect(node.left, out)
		t.collect(node.right, out)
	}
}
