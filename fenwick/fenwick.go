// Package fenwick implements a binary indexed (Fenwick) tree over a growable
// sequence of numbers.
//
// Point updates, prefix sums and appends all run in O(log n). Sums of integer
// elements are exact; float sums are subject to ordinary rounding, no
// compensation is done.
//
// A Tree is not safe for concurrent use. Callers that share one between
// goroutines must lock around every call, including reads.
package fenwick

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupported     = errors.New("unsupported operation: values can't be removed from a fenwick tree")
)

// Number is the set of element types a Tree can sum.
type Number interface {
	constraints.Integer | constraints.Float
}

type Tree[T Number] struct {
	// data[0] is an unused sentinel. data[i] holds the sum of the logical
	// elements in (i-lowbit(i), i], not the element itself.
	data []T
}

// New returns a tree holding n zero elements. It panics if n is negative.
func New[T Number](n int) *Tree[T] {
	if n < 0 {
		panic("fenwick: negative size")
	}
	return &Tree[T]{
		data: make([]T, n+1),
	}
}

// FromValues builds a tree holding values in order.
func FromValues[T Number](values []T) *Tree[T] {
	t := &Tree[T]{
		data: make([]T, 1, len(values)+1),
	}
	for _, v := range values {
		t.Add(v)
	}
	return t
}

// Clone returns a deep copy of t.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		data: append([]T(nil), t.data...),
	}
}

func lowbit(i int) int {
	return i & -i
}
