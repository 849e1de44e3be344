package segtree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/segtree/monoids"
)

// maxEndRef is the brute-force reference: extend the fold element by element
// until the predicate breaks.
func maxEndRef(m Monoid[int64], values []int64, start int, pred func(int64) bool) int {
	acc := m.Zero()
	for end := start; end < len(values); end++ {
		acc = m.Add(acc, values[end])
		if !pred(acc) {
			return end
		}
	}
	return len(values)
}

// minStartRef extends the fold leftwards from end until the predicate breaks.
func minStartRef(m Monoid[int64], values []int64, end int, pred func(int64) bool) int {
	acc := m.Zero()
	for start := end; start > 0; start-- {
		acc = m.Add(values[start-1], acc)
		if !pred(acc) {
			return start
		}
	}
	return 0
}

func TestMaxEndSumScenario(t *testing.T) {
	m := monoids.Int64Sum{}
	values := []int64{1, 2, 3, 4, 5}
	tree, err := FromSlice[int64](m, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pred := func(s int64) bool { return s <= 6 }
	got, err := tree.MaxEnd(0, pred)
	if err != nil {
		t.Fatalf("MaxEnd failed: %v", err)
	}
	if want := maxEndRef(m, values, 0, pred); got != want {
		t.Fatalf("MaxEnd(0) = %d, linear scan = %d", got, want)
	}
}

func TestMinStartSumScenario(t *testing.T) {
	m := monoids.Int64Sum{}
	values := []int64{1, 2, 3, 4, 5}
	tree, err := FromSlice[int64](m, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pred := func(s int64) bool { return s <= 9 }
	got, err := tree.MinStart(5, pred)
	if err != nil {
		t.Fatalf("MinStart failed: %v", err)
	}
	if want := minStartRef(m, values, 5, pred); got != want {
		t.Fatalf("MinStart(5) = %d, linear scan = %d", got, want)
	}
}

func TestMaxEndMatchesReferenceExhaustively(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := monoids.Int64Sum{}
	for n := 1; n <= 8; n++ {
		values := make([]int64, n)
		for i := range values {
			values[i] = rng.Int63n(10) // non-negative keeps the sum monotone
		}
		tree, err := FromSlice[int64](m, values)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for limit := int64(0); limit <= 30; limit += 5 {
			pred := func(s int64) bool { return s <= limit }
			for start := 0; start <= n; start++ {
				got, err := tree.MaxEnd(start, pred)
				if err != nil {
					t.Fatalf("MaxEnd(%d) failed: %v", start, err)
				}
				if want := maxEndRef(m, values, start, pred); got != want {
					t.Fatalf("n=%d limit=%d MaxEnd(%d) = %d, linear scan = %d",
						n, limit, start, got, want)
				}
			}
		}
	}
}

func TestMinStartMatchesReferenceExhaustively(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := monoids.Int64Sum{}
	for n := 1; n <= 8; n++ {
		values := make([]int64, n)
		for i := range values {
			values[i] = rng.Int63n(10)
		}
		tree, err := FromSlice[int64](m, values)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for limit := int64(0); limit <= 30; limit += 5 {
			pred := func(s int64) bool { return s <= limit }
			for end := 0; end <= n; end++ {
				got, err := tree.MinStart(end, pred)
				if err != nil {
					t.Fatalf("MinStart(%d) failed: %v", end, err)
				}
				if want := minStartRef(m, values, end, pred); got != want {
					t.Fatalf("n=%d limit=%d MinStart(%d) = %d, linear scan = %d",
						n, limit, end, got, want)
				}
			}
		}
	}
}

func TestMaxEndAcceptsFullSuffix(t *testing.T) {
	tree, err := FromSlice[int64](monoids.Int64Sum{}, []int64{1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tree.MaxEnd(1, func(int64) bool { return true })
	if err != nil {
		t.Fatalf("MaxEnd failed: %v", err)
	}
	if got != tree.Len() {
		t.Fatalf("expected MaxEnd to reach Len()=%d, got %d", tree.Len(), got)
	}
}

func TestMinStartAcceptsFullPrefix(t *testing.T) {
	tree, err := FromSlice[int64](monoids.Int64Sum{}, []int64{1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tree.MinStart(2, func(int64) bool { return true })
	if err != nil {
		t.Fatalf("MinStart failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected MinStart to reach 0, got %d", got)
	}
}

func TestBoundarySearchRejectsOutOfBounds(t *testing.T) {
	tree, err := FromSlice[int64](monoids.Int64Sum{}, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	always := func(int64) bool { return true }
	if _, err := tree.MaxEnd(4, always); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("MaxEnd(4): expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := tree.MinStart(-1, always); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("MinStart(-1): expected ErrIndexOutOfBounds, got %v", err)
	}
}

// MinStart builds its accumulator right-to-left but must still respect
// sequence order for non-commutative monoids.
func TestMinStartSequenceOrder(t *testing.T) {
	tree, err := FromSlice[string](monoids.Concat{}, []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var seen []string
	pred := func(s string) bool {
		seen = append(seen, s)
		return len(s) <= 2
	}
	got, err := tree.MinStart(4, pred)
	if err != nil {
		t.Fatalf("MinStart failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected MinStart = 2, got %d", got)
	}
	for _, s := range seen {
		if !isOrderedSuffix(s, "abcd") {
			t.Fatalf("predicate saw %q, which is not a suffix fold of the sequence", s)
		}
	}
}

func isOrderedSuffix(s, whole string) bool {
	if len(s) > len(whole) {
		return false
	}
	return whole[len(whole)-len(s):] == s
}
