package monoids

// AddToSum is a lazy-tree action over Int64Sum aggregates: the operator is a
// delta added to every element of a range.
type AddToSum struct{}

// Unit returns the no-op delta.
func (AddToSum) Unit() int64 { return 0 }

// Compose merges two deltas; addition commutes, so application order is
// immaterial here.
func (AddToSum) Compose(f, g int64) int64 { return f + g }

// Apply adds the delta once per covered element, keeping subtree sums exact.
func (AddToSum) Apply(f int64, v int64, n int) int64 {
	return v + f*int64(n)
}

// Assignment is the operator value of the Assign action. The zero value
// means "no assignment pending".
type Assignment struct {
	Value int64
	Valid bool
}

// AssignTo returns an operator that overwrites elements with v.
func AssignTo(v int64) Assignment {
	return Assignment{Value: v, Valid: true}
}

// Assign is a lazy-tree action over Int64Sum aggregates: the operator
// overwrites every element of a range with a fixed value.
type Assign struct{}

// Unit returns the absent assignment.
func (Assign) Unit() Assignment { return Assignment{} }

// Compose applies f after g; a later assignment wins outright.
func (Assign) Compose(f, g Assignment) Assignment {
	if f.Valid {
		return f
	}
	return g
}

// Apply overwrites a subtree sum of n elements.
func (Assign) Apply(f Assignment, v int64, n int) int64 {
	if !f.Valid {
		return v
	}
	return f.Value * int64(n)
}
