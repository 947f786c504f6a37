package fenwick

import (
	"fmt"
	"math"
	"strings"
)

// Len returns the number of logical elements.
func (t *Tree[T]) Len() int {
	if t == nil || len(t.data) == 0 {
		return 0
	}
	return len(t.data) - 1
}

// Update adds delta to the element at idx. It panics if idx is out of range.
func (t *Tree[T]) Update(idx int, delta T) {
	if idx < 0 || idx >= t.Len() {
		panic(fmt.Sprintf("fenwick: index out of range [%d] with length %d", idx, t.Len()))
	}
	n := len(t.data)
	for idx++; idx < n; idx += lowbit(idx) {
		t.data[idx] += delta
	}
}

// PrefixSum returns the sum of the elements in [0, k).
func (t *Tree[T]) PrefixSum(k int) T {
	var sum T
	for ; k > 0; k -= lowbit(k) {
		sum += t.data[k]
	}
	return sum
}

// Sum returns the sum of the elements in [l, r).
func (t *Tree[T]) Sum(l, r int) T {
	return t.PrefixSum(r) - t.PrefixSum(l)
}

// Get returns the element at idx.
func (t *Tree[T]) Get(idx int) T {
	return t.Sum(idx, idx+1)
}

// Set replaces the element at idx. Set never grows the tree, use Add to
// append.
func (t *Tree[T]) Set(idx int, value T) error {
	if idx < 0 || idx >= t.Len() {
		return fmt.Errorf("%w: cannot set %d in a tree of %d elements, use Add to append", ErrIndexOutOfRange, idx, t.Len())
	}
	t.Update(idx, value-t.Get(idx))
	return nil
}

// Add appends value as a new last element.
func (t *Tree[T]) Add(value T) {
	if len(t.data) == 0 {
		t.data = append(t.data, 0)
	}
	n := len(t.data) - 1
	i := n + 1
	// the new node covers (i-lowbit(i), i]; everything but the last slot is
	// already summed by the existing prefix.
	t.data = append(t.data, value+t.PrefixSum(n)-t.PrefixSum(i-lowbit(i)))
}

// Values returns a snapshot of every element in index order.
func (t *Tree[T]) Values() []T {
	n := t.Len()
	values := make([]T, n)
	for i := 0; i < n; i++ {
		values[i] = t.Get(i)
	}
	return values
}

// At is the bounds checked form of Get.
func (t *Tree[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= t.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, idx, t.Len())
	}
	return t.Get(idx), nil
}

// SetAt is the checked form of Set. It also rejects NaN, which would poison
// every prefix sum that covers idx.
func (t *Tree[T]) SetAt(idx int, value T) error {
	if f := float64(value); math.IsNaN(f) {
		return fmt.Errorf("%w: value of a fenwick tree must be a number, got %v", ErrInvalidArgument, value)
	}
	return t.Set(idx, value)
}

// Delete always fails: a fenwick tree can't shrink.
func (t *Tree[T]) Delete(idx int) error {
	return ErrUnsupported
}

func (t *Tree[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range t.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d:%v", i, v)
	}
	b.WriteString("]")
	return b.String()
}
