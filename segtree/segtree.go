// Package segtree implements an iterative segment tree over an arbitrary
// monoid.
//
// A tree of n elements is stored in a 2n array: leaves occupy [n, 2n) and the
// internal node i caches Combine(data[2i], data[2i+1]). Point updates and
// range folds run in O(log n). Range updates are not supported.
//
// Combine has to be associative but need not be commutative; folds always
// combine elements in index order.
//
// A Tree is not safe for concurrent use.
package segtree

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnsupported     = errors.New("unsupported operation: values can't be removed from a segment tree")
)

// Monoid is an associative operation with a neutral element: for every x,
// Combine(x, Identity) == Combine(Identity, x) == x.
type Monoid[M any] struct {
	Identity M
	Combine  func(a, b M) M
}

type Number interface {
	constraints.Integer | constraints.Float
}

type Tree[M any] struct {
	m    Monoid[M]
	data []M
}

// New builds a tree over a copy of values in O(n).
func New[M any](m Monoid[M], values []M) *Tree[M] {
	n := len(values)
	t := &Tree[M]{
		m:    m,
		data: make([]M, 2*n),
	}
	copy(t.data[n:], values)
	for i := n - 1; i >= 1; i-- {
		t.pull(i)
	}
	if n > 0 {
		// slot 0 is never read by a fold
		t.data[0] = m.Identity
	}
	return t
}

// FromCount builds a tree of n copies of value.
func FromCount[M any](m Monoid[M], n int, value M) *Tree[M] {
	values := make([]M, n)
	for i := range values {
		values[i] = value
	}
	return New(m, values)
}

// Clone returns an independent copy of t. Elements are copied by assignment,
// so pointer-like M values are shared.
func (t *Tree[M]) Clone() *Tree[M] {
	return &Tree[M]{
		m:    t.m,
		data: append([]M(nil), t.data...),
	}
}

func (t *Tree[M]) pull(i int) {
	t.data[i] = t.m.Combine(t.data[2*i], t.data[2*i+1])
}
