package monoids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var int64samples = []int64{-17, -1, 0, 1, 5, 42, 1 << 40}

func TestInt64SumLaws(t *testing.T) {
	m := Int64Sum{}
	for _, a := range int64samples {
		assert.Equal(t, a, m.Add(m.Zero(), a))
		assert.Equal(t, a, m.Add(a, m.Zero()))
		for _, b := range int64samples {
			for _, c := range int64samples {
				assert.Equal(t, m.Add(m.Add(a, b), c), m.Add(a, m.Add(b, c)))
			}
		}
	}
}

func TestInt64MinLaws(t *testing.T) {
	m := Int64Min{}
	for _, a := range int64samples {
		assert.Equal(t, a, m.Add(m.Zero(), a))
		assert.Equal(t, a, m.Add(a, m.Zero()))
		for _, b := range int64samples {
			for _, c := range int64samples {
				assert.Equal(t, m.Add(m.Add(a, b), c), m.Add(a, m.Add(b, c)))
			}
		}
	}
}

func TestInt64MaxLaws(t *testing.T) {
	m := Int64Max{}
	for _, a := range int64samples {
		assert.Equal(t, a, m.Add(m.Zero(), a))
		assert.Equal(t, a, m.Add(a, m.Zero()))
	}
	assert.Equal(t, int64(42), m.Add(5, 42))
	assert.Equal(t, int64(42), m.Add(42, 5))
}

func TestConcatLaws(t *testing.T) {
	m := Concat{}
	assert.Equal(t, "x", m.Add(m.Zero(), "x"))
	assert.Equal(t, "x", m.Add("x", m.Zero()))
	assert.Equal(t, m.Add(m.Add("a", "b"), "c"), m.Add("a", m.Add("b", "c")))
	// Not commutative.
	assert.NotEqual(t, m.Add("a", "b"), m.Add("b", "a"))
}

func TestAddToSumActionLaws(t *testing.T) {
	m := Int64Sum{}
	a := AddToSum{}
	deltas := []int64{-3, 0, 7}
	for _, f := range deltas {
		for _, g := range deltas {
			for _, v := range int64samples {
				// Composed application equals sequential application.
				assert.Equal(t,
					a.Apply(f, a.Apply(g, v, 3), 3),
					a.Apply(a.Compose(f, g), v, 3))
			}
			// Length-aware application distributes over aggregation.
			left := a.Apply(f, 10, 2)
			right := a.Apply(f, 20, 3)
			assert.Equal(t, m.Add(left, right), a.Apply(f, m.Add(10, 20), 5))
		}
	}
	// Unit is a no-op.
	assert.Equal(t, int64(99), a.Apply(a.Unit(), 99, 4))
}

func TestAssignActionLaws(t *testing.T) {
	m := Int64Sum{}
	a := Assign{}
	f := AssignTo(7)
	g := AssignTo(3)

	// Later assignment wins.
	assert.Equal(t, f, a.Compose(f, g))
	assert.Equal(t, g, a.Compose(a.Unit(), g))

	// Composed application equals sequential application.
	assert.Equal(t,
		a.Apply(f, a.Apply(g, 100, 4), 4),
		a.Apply(a.Compose(f, g), 100, 4))

	// Length-aware application distributes over aggregation.
	left := a.Apply(f, 10, 2)
	right := a.Apply(f, 20, 3)
	assert.Equal(t, m.Add(left, right), a.Apply(f, m.Add(10, 20), 5))

	// Unit leaves values untouched.
	assert.Equal(t, int64(100), a.Apply(a.Unit(), 100, 4))
}
