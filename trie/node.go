package trie

import (
	"sort"
)

// index returns the position of c in n.keys, or -1.
func (n *node) index(c byte) int {
	if len(n.keys) <= linearMax {
		for idx := 0; idx < len(n.keys); idx++ {
			if n.keys[idx] == c {
				return idx
			}
		}
		return -1
	}

	idx := sort.Search(len(n.keys), func(i int) bool { return n.keys[i] >= c })
	if idx < len(n.keys) && n.keys[idx] == c {
		return idx
	}
	return -1
}

func (n *node) findChild(c byte) (handle, bool) {
	idx := n.index(c)
	if idx == -1 {
		return 0, false
	}
	return n.children[idx], true
}

// addChild links child under c. c must not be present yet.
func (n *node) addChild(c byte, child handle) {
	// maintain sorted order
	i := sort.Search(len(n.keys), func(i int) bool { return n.keys[i] > c })

	// shift right & insert key
	n.keys = append(n.keys, 0)
	n.children = append(n.children, 0)
	copy(n.keys[i+1:], n.keys[i:])
	copy(n.children[i+1:], n.children[i:])
	n.keys[i] = c
	n.children[i] = child
}

func (n node) clone() node {
	return node{
		keys:     append([]byte(nil), n.keys...),
		children: append([]handle(nil), n.children...),
		terminal: n.terminal,
	}
}
