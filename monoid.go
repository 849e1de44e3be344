package segtree

// Monoid defines how elements are aggregated up the tree.
//
// For elements a, b, c, Add must be associative:
//
//	Add(Add(a, b), c) == Add(a, Add(b, c))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), a) == a == Add(a, Zero())
//
// Commutativity is not required; the tree always combines partial results
// in sequence order.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}
