package segtree

import "errors"

var (
	// ErrInvalidConfig signals a tree construction without a usable monoid.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrEmptySequence signals an attempt to build a tree over zero elements.
	ErrEmptySequence = errors.New("segtree: tree must not be empty")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInvalidRange signals a malformed or out-of-bounds half-open range.
	ErrInvalidRange = errors.New("segtree: invalid range")
)
