package unionfind

import (
	"fmt"
	"strings"
)

// Add inserts a new singleton under a generated key and returns the key.
func (u *UnionFind[K]) Add() (K, error) {
	key, err := u.nextKey()
	if err != nil {
		return key, err
	}
	u.insert(key, key)
	return key, nil
}

// AddKey inserts key as a new singleton.
func (u *UnionFind[K]) AddKey(key K) error {
	if u.Exists(key) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	u.insert(key, key)
	return nil
}

// AddChild inserts a generated key into the set of parent, directly under
// it, and returns the key.
func (u *UnionFind[K]) AddChild(parent K) (K, error) {
	if !u.Exists(parent) {
		var zero K
		return zero, fmt.Errorf("%w: parent %v", ErrNotFound, parent)
	}
	key, err := u.nextKey()
	if err != nil {
		return key, err
	}
	u.insert(key, parent)
	return key, nil
}

// AddKeyChild inserts key directly under parent. key == parent adds a
// singleton.
func (u *UnionFind[K]) AddKeyChild(key, parent K) error {
	if u.Exists(key) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	if key != parent && !u.Exists(parent) {
		return fmt.Errorf("%w: parent %v", ErrNotFound, parent)
	}
	u.insert(key, parent)
	return nil
}

func (u *UnionFind[K]) nextKey() (K, error) {
	for {
		var key K
		if u.keygen != nil {
			key = u.keygen(u.next)
		} else {
			k, ok := any(u.next).(K)
			if !ok {
				return key, fmt.Errorf("%w: %T", ErrNoKeyGen, key)
			}
			key = k
		}
		u.next++
		if !u.Exists(key) {
			return key, nil
		}
	}
}

// Find returns the representative of x's set, pointing every element on the
// way directly at it. ok is false when x was never added.
func (u *UnionFind[K]) Find(x K) (rep K, ok bool) {
	p, ok := u.parent[x]
	if !ok {
		return rep, false
	}

	rep = x
	for p != rep {
		rep = p
		p = u.parent[rep]
	}

	// compress the path
	for x != rep {
		x, u.parent[x] = u.parent[x], rep
	}
	return rep, true
}

// FindMany returns the representative of every element of xs that exists.
// Absent elements are left out of the map.
func (u *UnionFind[K]) FindMany(xs ...K) map[K]K {
	reps := make(map[K]K, len(xs))
	for _, x := range xs {
		if rep, ok := u.Find(x); ok {
			reps[x] = rep
		}
	}
	return reps
}

// FindAll returns the representative of every element.
func (u *UnionFind[K]) FindAll() map[K]K {
	return u.FindMany(u.keys...)
}

// Union merges the sets of a and b.
func (u *UnionFind[K]) Union(a, b K) error {
	ra, ok := u.Find(a)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, a)
	}
	rb, ok := u.Find(b)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, b)
	}
	u.link(ra, rb)
	return nil
}

// UnionMany merges the sets of all of xs. The elements are shuffled and
// united pairwise along the shuffled order. Nothing is merged if any element
// is absent.
func (u *UnionFind[K]) UnionMany(xs ...K) error {
	for _, x := range xs {
		if !u.Exists(x) {
			return fmt.Errorf("%w: %v", ErrNotFound, x)
		}
	}

	order := append([]K(nil), xs...)
	u.rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for i := 1; i < len(order); i++ {
		ra, _ := u.Find(order[i-1])
		rb, _ := u.Find(order[i])
		u.link(ra, rb)
	}
	return nil
}

// Link merges the sets represented by a and b without any lookup. It panics
// unless both are representatives.
func (u *UnionFind[K]) Link(a, b K) {
	if !u.IsRepresentative(a) || !u.IsRepresentative(b) {
		panic(fmt.Errorf("%w: link(%v, %v)", ErrNotRepresentative, a, b))
	}
	u.link(a, b)
}

// link attaches one root under the other, chosen by a coin flip.
func (u *UnionFind[K]) link(i, j K) {
	if i == j {
		return
	}
	if u.rand.IntN(2) == 0 {
		u.parent[i] = j
	} else {
		u.parent[j] = i
	}
}

func (u *UnionFind[K]) Exists(x K) bool {
	_, ok := u.parent[x]
	return ok
}

func (u *UnionFind[K]) IsRepresentative(x K) bool {
	p, ok := u.parent[x]
	return ok && p == x
}

// InSet reports whether x belongs to the set represented by rep.
func (u *UnionFind[K]) InSet(x, rep K) bool {
	r, ok := u.Find(x)
	return ok && r == rep
}

// SameSet reports whether a and b both exist and share a set.
func (u *UnionFind[K]) SameSet(a, b K) bool {
	ra, ok := u.Find(a)
	if !ok {
		return false
	}
	rb, ok := u.Find(b)
	return ok && ra == rb
}

// Elements returns every key in insertion order.
func (u *UnionFind[K]) Elements() []K {
	return append([]K{}, u.keys...)
}

func (u *UnionFind[K]) Len() int {
	return len(u.keys)
}

// Sets groups the elements by representative. Members keep insertion order.
func (u *UnionFind[K]) Sets() map[K][]K {
	sets := make(map[K][]K)
	for _, k := range u.keys {
		rep, _ := u.Find(k)
		sets[rep] = append(sets[rep], k)
	}
	return sets
}

// Delete always fails: sets can only grow.
func (u *UnionFind[K]) Delete(x K) error {
	return ErrUnsupported
}

// String lists every element with its parent, in insertion order.
func (u *UnionFind[K]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range u.keys {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v->%v", k, u.parent[k])
	}
	b.WriteString("}")
	return b.String()
}
