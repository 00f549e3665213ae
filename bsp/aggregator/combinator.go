package aggregator

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned when a value of an unexpected type is
// folded into a combinator.
var ErrTypeMismatch = errors.New("value type does not match combinator")

// Combinator describes how the partial values contributed to a memory key
// during a super step are folded together.
//
// Implementations must be pure functions: Combine must not mutate either of
// its arguments and must be associative and commutative so that the order
// in which vertices contribute is immaterial.
type Combinator interface {
	// Type returns the type of this combinator.
	Type() string

	// Validate returns an error if val cannot be folded by this combinator.
	Validate(val interface{}) error

	// Combine folds val into acc and returns the result.
	Combine(acc, val interface{}) interface{}
}

func mismatch(c Combinator, val interface{}) error {
	return fmt.Errorf("%s: got %T: %w", c.Type(), val, ErrTypeMismatch)
}

// BoolAnd folds bool values using a logical AND. Its neutral element is true.
type BoolAnd struct{}

// Type returns the type of this combinator.
func (BoolAnd) Type() string { return "BoolAnd" }

// Validate checks that val is a bool.
func (c BoolAnd) Validate(val interface{}) error {
	if _, ok := val.(bool); !ok {
		return mismatch(c, val)
	}

	return nil
}

// Combine returns acc && val.
func (BoolAnd) Combine(acc, val interface{}) interface{} {
	return acc.(bool) && val.(bool)
}

// IntSum adds up int64 values.
type IntSum struct{}

// Type returns the type of this combinator.
func (IntSum) Type() string { return "IntSum" }

// Validate checks that val is an int64.
func (c IntSum) Validate(val interface{}) error {
	if _, ok := val.(int64); !ok {
		return mismatch(c, val)
	}

	return nil
}

// Combine returns acc + val.
func (IntSum) Combine(acc, val interface{}) interface{} {
	return acc.(int64) + val.(int64)
}

// IntMapSum merges map[int64]int64 values by adding up the entries that
// share a key.
type IntMapSum struct{}

// Type returns the type of this combinator.
func (IntMapSum) Type() string { return "IntMapSum" }

// Validate checks that val is a map[int64]int64.
func (c IntMapSum) Validate(val interface{}) error {
	if _, ok := val.(map[int64]int64); !ok {
		return mismatch(c, val)
	}

	return nil
}

// Combine returns a new map holding the key-wise sum of acc and val.
func (IntMapSum) Combine(acc, val interface{}) interface{} {
	a, b := acc.(map[int64]int64), val.(map[int64]int64)

	out := make(map[int64]int64, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}

	for k, v := range b {
		out[k] += v
	}

	return out
}
