/*
Package segtree provides a monoid-aggregated segment tree over a fixed-length
sequence of elements.

The tree supports point reads and writes, half-open range folds, and boundary
searches over monotone predicates, all in O(log n). The sequence length is
fixed at construction; updates mutate elements in place but never reshape the
tree.

Clients parameterize a tree with a Monoid[T], which supplies the identity
element and the associative combine operation used for aggregation. The
combine operation need not be commutative; folds always combine partial
results in sequence order.

The structure is not safe for concurrent mutation. Callers that share a tree
across goroutines must serialize access themselves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
