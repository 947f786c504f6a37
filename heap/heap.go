// Package heap implements an array backed binary min-heap.
//
// Add and Pop run in O(log n), Peek in O(1). Equal elements come out in no
// particular order.
//
// A Heap is not safe for concurrent use.
package heap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Heap must be created with New or NewFunc; the zero value has no ordering.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New returns a heap ordered by <, holding elements.
func New[T constraints.Ordered](elements ...T) *Heap[T] {
	return NewFunc(func(a, b T) bool { return a < b }, elements...)
}

// NewFunc returns a heap ordered by less, holding elements. less must be a
// strict weak ordering.
func NewFunc[T any](less func(a, b T) bool, elements ...T) *Heap[T] {
	h := &Heap[T]{
		data: make([]T, 0, len(elements)),
		less: less,
	}
	for _, e := range elements {
		h.Add(e)
	}
	return h
}

// Parent returns the index of the parent of the node at i.
func Parent(i int) int { return (i - 1) / 2 }

// Left returns the index of the left child of the node at i.
func Left(i int) int { return 2*i + 1 }

// Right returns the index of the right child of the node at i.
func Right(i int) int { return 2*i + 2 }

func (h *Heap[T]) Len() int {
	return len(h.data)
}

func (h *Heap[T]) Empty() bool {
	return len(h.data) == 0
}

// Add inserts element and sifts it up.
func (h *Heap[T]) Add(element T) {
	if h.less == nil {
		panic("heap: use New or NewFunc")
	}
	h.data = append(h.data, element)
	h.up(len(h.data) - 1)
}

// Pop removes and returns the smallest element. ok is false when the heap is
// empty.
func (h *Heap[T]) Pop() (v T, ok bool) {
	n := len(h.data)
	if n == 0 {
		return v, false
	}
	v = h.data[0]
	h.swap(0, n-1)
	var zero T
	h.data[n-1] = zero
	h.data = h.data[:n-1]
	h.down(0)
	return v, true
}

// Peek returns the smallest element without removing it.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}
	return h.data[0], true
}

// Clone returns an independent copy of h sharing the same ordering.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		data: append([]T(nil), h.data...),
		less: h.less,
	}
}

// String lists the backing array in heap order.
func (h *Heap[T]) String() string {
	return fmt.Sprint(h.data)
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := Parent(i)
		if !h.less(h.data[i], h.data[p]) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		l, r := Left(i), Right(i)
		if l >= n {
			return
		}
		// left wins ties
		child := l
		if r < n && h.less(h.data[r], h.data[l]) {
			child = r
		}
		if !h.less(h.data[child], h.data[i]) {
			return
		}
		h.swap(i, child)
		i = child
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}
