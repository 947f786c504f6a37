// Package trie implements a byte-wise prefix tree over strings.
//
// Add, Remove, Contains and ContainsPrefix run in O(k) in the length of their
// argument. Count walks the whole trie. Characters are single bytes; multi
// byte UTF-8 runes are stored as their byte sequence.
//
// Remove only clears the end-of-word mark. Nodes left without words below
// them are kept, so a trie that sees many distinct words added and removed
// keeps growing. Nodes() reports the allocated size.
//
// A Trie is not safe for concurrent use, and iterators are invalidated by any
// mutation.
package trie

type Iterator interface {
	HasNext() bool
	Next() (string, error)
}

// New returns a trie holding words.
func New(words ...string) *Trie {
	t := newTrie()
	for _, w := range words {
		t.Add(w)
	}
	return t
}
