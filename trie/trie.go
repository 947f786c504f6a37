package trie

import (
	"errors"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// root node handle, always present
	root handle = 0

	// nodes with at most linearMax children are scanned linearly, bigger
	// ones are binary searched
	linearMax = 16

	nullIdx = -1
)

var (
	ErrNoMoreWords = errors.New("there are no more words in the trie")
)

type (
	// Trie stores nodes in an arena; a node refers to its children by
	// handle, never by pointer.
	Trie struct {
		nodes []node
	}

	handle int32

	node struct {
		// keys is sorted ascending, children[i] is reached by keys[i]
		keys     []byte
		children []handle
		// a word ends here
		terminal bool
	}

	callback func(word []byte) bool

	traverseAction int

	iteratorLevel struct {
		node     handle
		childIdx int
	}

	iterator struct {
		trie    *Trie
		depth   []iteratorLevel
		path    []byte
		next    string
		hasNext bool
	}
)

func newTrie() *Trie {
	return &Trie{
		nodes: []node{{}},
	}
}

func (t *Trie) newNode() handle {
	t.nodes = append(t.nodes, node{})
	return handle(len(t.nodes) - 1)
}
