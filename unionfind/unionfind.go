// Package unionfind implements a disjoint-set forest over arbitrary
// comparable keys, with path compression and randomized linking.
//
// Keys must be added before use; looking up a key that was never added
// reports it as absent instead of creating it. With K = any, integer and
// string keys can be mixed and 1 and "1" are distinct elements; the dynamic
// values must still be comparable or the map lookups panic.
//
// Linking flips a coin to decide which root goes under the other, instead
// of union by rank. Tests can make it deterministic with WithRand.
//
// A UnionFind is not safe for concurrent use. Find mutates the forest, so
// even lookups need external locking.
package unionfind

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrNotFound          = errors.New("element does not exist")
	ErrDuplicateKey      = errors.New("element already exists")
	ErrNotRepresentative = errors.New("element is not the representative of its set")
	ErrNoKeyGen          = errors.New("no key generator for this key type")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnsupported       = errors.New("unsupported operation: elements can't be removed from a union find")
)

// Rand is the randomness used for linking and for UnionMany.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type UnionFind[K comparable] struct {
	parent map[K]K
	// insertion order, for Elements and String
	keys []K
	// next candidate passed to the key generator
	next   int
	rand   Rand
	keygen func(n int) K
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// New returns an empty forest. It panics if WithKeyGen was given a generator
// for another key type.
func New[K comparable](opts ...Option) *UnionFind[K] {
	cfg := config{
		rand: globalRand{},
	}
	for _, o := range opts {
		o(&cfg)
	}
	u := &UnionFind[K]{
		parent: make(map[K]K),
		rand:   cfg.rand,
	}
	if cfg.keygen != nil {
		gen, ok := cfg.keygen.(func(n int) K)
		if !ok {
			var zero K
			panic(fmt.Sprintf("unionfind: key generator %T does not produce %T keys", cfg.keygen, zero))
		}
		u.keygen = gen
	}
	return u
}

// NewSize returns a forest of the singletons 0..n-1.
func NewSize(n int, opts ...Option) *UnionFind[int] {
	u := New[int](opts...)
	for i := 0; i < n; i++ {
		u.insert(i, i)
	}
	u.next = n
	return u
}

// FromParents builds a forest where element i has parent parents[i].
func FromParents(parents []int, opts ...Option) (*UnionFind[int], error) {
	u := New[int](opts...)
	for i, p := range parents {
		u.insert(i, p)
	}
	u.next = len(parents)
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// FromParentMap builds a forest from a key to parent mapping. Roots map to
// themselves. Elements() lists the keys in map iteration order.
func FromParentMap[K comparable](parents map[K]K, opts ...Option) (*UnionFind[K], error) {
	u := New[K](opts...)
	for k, p := range parents {
		u.insert(k, p)
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Clone returns an independent copy of u. The copy shares u's random source
// and key generator.
func (u *UnionFind[K]) Clone() *UnionFind[K] {
	c := &UnionFind[K]{
		parent: make(map[K]K, len(u.parent)),
		keys:   append([]K(nil), u.keys...),
		next:   u.next,
		rand:   u.rand,
		keygen: u.keygen,
	}
	for k, p := range u.parent {
		c.parent[k] = p
	}
	return c
}

func (u *UnionFind[K]) insert(key, parent K) {
	u.parent[key] = parent
	u.keys = append(u.keys, key)
}

const (
	unvisited uint8 = iota
	visiting
	visited
)

// validate checks that every parent exists and that following parents
// always ends at a root.
func (u *UnionFind[K]) validate() error {
	for _, k := range u.keys {
		p := u.parent[k]
		if _, ok := u.parent[p]; !ok {
			return fmt.Errorf("%w: parent %v of %v", ErrNotFound, p, k)
		}
	}

	state := make(map[K]uint8, len(u.keys))
	for _, k := range u.keys {
		var path []K
		x := k
		for state[x] == unvisited {
			state[x] = visiting
			path = append(path, x)
			p := u.parent[x]
			if p == x {
				break
			}
			x = p
		}
		if state[x] == visiting && u.parent[x] != x {
			return fmt.Errorf("%w: parent cycle through %v", ErrInvalidArgument, x)
		}
		for _, y := range path {
			state[y] = visited
		}
	}
	return nil
}
