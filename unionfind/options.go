package unionfind

type config struct {
	rand   Rand
	keygen any
}

// Option configures a UnionFind at construction.
type Option func(*config)

// WithRand replaces the package level random source. Pass a seeded
// *rand.Rand, or a stub, to make linking reproducible.
func WithRand(r Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithKeyGen sets the generator for keys chosen by Add and AddChild. gen
// receives 0, 1, 2, ... and candidates that are already taken are skipped,
// so gen must return distinct keys for distinct n. New panics when the
// generator's key type differs from the UnionFind's.
//
// Without a generator, automatic keys only work when an int can be stored in
// K (int or any).
func WithKeyGen[K comparable](gen func(n int) K) Option {
	return func(c *config) {
		c.keygen = gen
	}
}
