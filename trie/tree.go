package trie

import (
	"fmt"
)

// Add inserts word. Adding a word twice is a no-op.
func (t *Trie) Add(word string) {
	if len(t.nodes) == 0 {
		t.nodes = []node{{}}
	}

	curr := root
	for i := 0; i < len(word); i++ {
		next, ok := t.nodes[curr].findChild(word[i])
		if !ok {
			// no child found, create new node
			next = t.newNode()
			t.nodes[curr].addChild(word[i], next)
		}
		curr = next
	}
	t.nodes[curr].terminal = true
}

// Remove unmarks word and reports whether it was present. The path to it is
// left in place.
func (t *Trie) Remove(word string) bool {
	h, ok := t.walk(word)
	if !ok {
		return false
	}
	was := t.nodes[h].terminal
	t.nodes[h].terminal = false
	return was
}

// Contains reports whether word was added and not removed since.
func (t *Trie) Contains(word string) bool {
	h, ok := t.walk(word)
	return ok && t.nodes[h].terminal
}

// ContainsPrefix reports whether some word in the trie starts with prefix.
// The empty prefix matches whenever the trie holds any word.
func (t *Trie) ContainsPrefix(prefix string) bool {
	h, ok := t.walk(prefix)
	if !ok {
		return false
	}
	// the path alone proves nothing, Remove leaves dead branches behind
	found := false
	t.recursiveForEach(h, nil, func([]byte) bool {
		found = true
		return false
	})
	return found
}

// Count returns the number of words by walking every node.
func (t *Trie) Count() int {
	if len(t.nodes) == 0 {
		return 0
	}
	count := 0
	t.recursiveForEach(root, nil, func([]byte) bool {
		count++
		return true
	})
	return count
}

// Nodes returns the number of allocated nodes, the root included.
func (t *Trie) Nodes() int {
	return len(t.nodes)
}

// WordsWithPrefix returns every word starting with prefix in lexicographic
// byte order.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	words := make([]string, 0)
	h, ok := t.walk(prefix)
	if !ok {
		return words
	}
	t.recursiveForEach(h, []byte(prefix), func(word []byte) bool {
		words = append(words, string(word))
		return true
	})
	return words
}

// Clone returns a deep copy of t.
func (t *Trie) Clone() *Trie {
	c := &Trie{
		nodes: make([]node, len(t.nodes)),
	}
	for i, n := range t.nodes {
		c.nodes[i] = n.clone()
	}
	return c
}

func (t *Trie) String() string {
	return fmt.Sprint(t.WordsWithPrefix(""))
}

// walk follows key from the root and returns the node it ends at.
func (t *Trie) walk(key string) (handle, bool) {
	if len(t.nodes) == 0 {
		return 0, false
	}
	curr := root
	for i := 0; i < len(key); i++ {
		next, ok := t.nodes[curr].findChild(key[i])
		if !ok {
			return 0, false
		}
		curr = next
	}
	return curr, true
}

// recursiveForEach calls cb with every word in the subtree of curr, in
// order. path is the key leading to curr; cb must not retain the slice.
func (t *Trie) recursiveForEach(curr handle, path []byte, cb callback) traverseAction {
	n := &t.nodes[curr]
	if n.terminal && !cb(path) {
		return traverseStop
	}

	for i, child := range n.children {
		if t.recursiveForEach(child, append(path, n.keys[i]), cb) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

func (t *Trie) Iterator() Iterator {
	it := &iterator{
		trie: t,
	}
	if len(t.nodes) > 0 {
		it.depth = []iteratorLevel{{root, nullIdx}}
		it.advance()
	}
	return it
}

func (it *iterator) HasNext() bool {
	return it != nil && it.hasNext
}

func (it *iterator) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrNoMoreWords
	}
	word := it.next
	it.advance()
	return word, nil
}

// advance moves to the next terminal node in depth-first order.
func (it *iterator) advance() {
	it.hasNext = false
	for len(it.depth) > 0 {
		level := &it.depth[len(it.depth)-1]
		n := &it.trie.nodes[level.node]

		if level.childIdx == nullIdx {
			level.childIdx = 0
			if n.terminal {
				it.next = string(it.path)
				it.hasNext = true
				return
			}
		}

		if level.childIdx < len(n.children) {
			child, c := n.children[level.childIdx], n.keys[level.childIdx]
			level.childIdx++
			it.path = append(it.path, c)
			it.depth = append(it.depth, iteratorLevel{child, nullIdx})
			continue
		}

		it.depth = it.depth[:len(it.depth)-1]
		if len(it.depth) > 0 {
			it.path = it.path[:len(it.path)-1]
		}
	}
}
