/*
Package lazy provides a segment tree with deferred range updates.

The tree shares the shape and aggregation contract of package segtree and
adds an operator type F: a range update applies an operator to every element
of a half-open range in O(log n) by recording it as a pending operator on
fully covered subtrees instead of descending. Pending operators are pushed
down to children immediately before any finer-grained access.

A node's cached aggregate always reflects its own pending operator, so
reading an aggregate never requires a push-down; only descending does.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package lazy

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
