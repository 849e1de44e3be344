package segtree

// treeNode is the tagged union over the two node shapes.
//
// A leaf covers exactly one sequence element; an inner node covers a span of
// at least two. The span length is fixed at construction, so nodes never
// split, merge or rotate.
type treeNode[T any] interface {
	length() int
	aggregate() T
}

type leafNode[T any] struct {
	value T
}

func (l *leafNode[T]) length() int  { return 1 }
func (l *leafNode[T]) aggregate() T { return l.value }

type innerNode[T any] struct {
	// agg must equal monoid.Add(left.aggregate(), right.aggregate())
	// at all times; mutations recompute it on the unwind path.
	agg   T
	len   int
	left  treeNode[T]
	right treeNode[T]
}

func (n *innerNode[T]) length() int  { return n.len }
func (n *innerNode[T]) aggregate() T { return n.agg }
