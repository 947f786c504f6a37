package segtree

import (
	"fmt"
	"strings"
)

// Len returns the number of elements.
func (t *Tree[M]) Len() int {
	return len(t.data) / 2
}

func (t *Tree[M]) Identity() M {
	return t.m.Identity
}

// Get returns the element at idx. It panics if idx is out of range.
func (t *Tree[M]) Get(idx int) M {
	t.mustIndex(idx)
	return t.data[idx+t.Len()]
}

// Set replaces the element at idx and recomputes every ancestor. It panics
// if idx is out of range.
func (t *Tree[M]) Set(idx int, value M) {
	t.mustIndex(idx)
	idx += t.Len()
	t.data[idx] = value
	for idx > 1 {
		idx /= 2
		t.pull(idx)
	}
}

// Query folds the elements in [l, r). Bounds are clamped to [0, Len()], and
// an empty or inverted range yields the identity.
func (t *Tree[M]) Query(l, r int) M {
	return t.QueryFrom(l, r, t.m.Identity)
}

// QueryFrom is Query with start folded in front of the range.
func (t *Tree[M]) QueryFrom(l, r int, start M) M {
	n := t.Len()
	l, r = clamp(l, n)+n, clamp(r, n)+n

	left, right := start, t.m.Identity
	for l < r {
		if l%2 == 1 {
			left = t.m.Combine(left, t.data[l])
			l++
		}
		if r%2 == 1 {
			r--
			right = t.m.Combine(t.data[r], right)
		}
		l /= 2
		r /= 2
	}
	return t.m.Combine(left, right)
}

// Values returns a snapshot of the leaves in index order.
func (t *Tree[M]) Values() []M {
	return append([]M{}, t.data[t.Len():]...)
}

// At is the checked form of Get.
func (t *Tree[M]) At(idx int) (M, error) {
	if !t.valid(idx) {
		var zero M
		return zero, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, idx, t.Len())
	}
	return t.data[idx+t.Len()], nil
}

// SetAt is the checked form of Set.
func (t *Tree[M]) SetAt(idx int, value M) error {
	if !t.valid(idx) {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, idx, t.Len())
	}
	t.Set(idx, value)
	return nil
}

// Delete always fails: a segment tree can't shrink.
func (t *Tree[M]) Delete(idx int) error {
	return ErrUnsupported
}

func (t *Tree[M]) String() string {
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

func (t *Tree[M]) valid(idx int) bool {
	return idx >= 0 && idx < t.Len()
}

func (t *Tree[M]) mustIndex(idx int) {
	if !t.valid(idx) {
		panic(fmt.Sprintf("segtree: index out of range [%d] with length %d", idx, t.Len()))
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
