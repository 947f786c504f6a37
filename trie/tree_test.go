package trie

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacid/testkeys"
)

func TestTrieMembership(t *testing.T) {
	words := []string{"aa", "aab", "ba", "c", "dfaa"}
	fakeWords := []string{"ab", "a", "b", "cc", "dfa", "dfaa ", "aaa", "aaba", "", "f"}

	trie := New(words...)
	assert.Equal(t, len(words), trie.Count())
	for _, w := range words {
		assert.True(t, trie.Contains(w), w)
		assert.True(t, trie.ContainsPrefix(w), w)
	}
	for _, w := range fakeWords {
		assert.False(t, trie.Contains(w), w)
	}

	for _, p := range []string{"", "a", "b", "c", "d", "df", "dfa"} {
		assert.True(t, trie.ContainsPrefix(p), p)
	}
	for _, p := range []string{"aaa", "ff", "bb", "g"} {
		assert.False(t, trie.ContainsPrefix(p), p)
	}
}

func TestTrieAddIdempotent(t *testing.T) {
	trie := New("go", "go", "gopher")
	trie.Add("go")
	assert.Equal(t, 2, trie.Count())
	nodes := trie.Nodes()
	trie.Add("gopher")
	assert.Equal(t, nodes, trie.Nodes())
}

func TestTrieRemove(t *testing.T) {
	trie := New("aa", "aab", "ba")

	assert.False(t, trie.Remove("a"))
	assert.False(t, trie.Remove("zz"))
	assert.Equal(t, 3, trie.Count())

	assert.True(t, trie.Remove("aa"))
	assert.False(t, trie.Contains("aa"))
	assert.True(t, trie.Contains("aab"))
	assert.True(t, trie.ContainsPrefix("aa"))
	assert.Equal(t, 2, trie.Count())

	assert.False(t, trie.Remove("aa"))
	assert.Equal(t, 2, trie.Count())

	// the branch stays allocated but no longer counts as a prefix
	nodes := trie.Nodes()
	assert.True(t, trie.Remove("aab"))
	assert.False(t, trie.ContainsPrefix("a"))
	assert.True(t, trie.ContainsPrefix("b"))
	assert.Equal(t, nodes, trie.Nodes())

	assert.True(t, trie.Remove("ba"))
	assert.Equal(t, 0, trie.Count())
	assert.False(t, trie.ContainsPrefix(""))
}

func TestTrieEmpty(t *testing.T) {
	trie := New()
	assert.Equal(t, 0, trie.Count())
	assert.False(t, trie.Contains(""))
	assert.False(t, trie.ContainsPrefix(""))
	assert.Equal(t, []string{}, trie.WordsWithPrefix(""))

	var zero Trie
	assert.False(t, zero.ContainsPrefix(""))
	assert.False(t, zero.Remove("x"))
	assert.Equal(t, 0, zero.Count())
	assert.False(t, zero.Iterator().HasNext())
	zero.Add("x")
	assert.True(t, zero.Contains("x"))

	trie.Add("")
	assert.True(t, trie.Contains(""))
	assert.True(t, trie.ContainsPrefix(""))
	assert.Equal(t, 1, trie.Count())
}

func TestTrieTraversalPrefix(t *testing.T) {
	dataSet := []struct {
		keyPrefix string
		keys      []string
		expected  []string
	}{
		{
			"",
			[]string{},
			[]string{},
		},
		{
			"api",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "api.foo", "api"},
		},
		{
			"a",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
		}, {
			"b",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{},
		},
		{
			"api.",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "api.foo"},
		},
		{
			"api.foo.bar",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{"api.foo.bar"},
		},
		{
			"api.end",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{},
		}, {
			"",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
		}, {
			"this:key:has",
			[]string{
				"this:key:has:a:long:prefix:3",
				"this:key:has:a:long:common:prefix:2",
				"this:key:has:a:long:common:prefix:1",
			},
			[]string{
				"this:key:has:a:long:prefix:3",
				"this:key:has:a:long:common:prefix:2",
				"this:key:has:a:long:common:prefix:1",
			},
		}, {
			"ele",
			[]string{"elector", "electibles", "elect", "electible"},
			[]string{"elector", "electibles", "elect", "electible"},
		},
		{
			"long.api.url.v1",
			[]string{"long.api.url.v1.foo", "long.api.url.v1.bar", "long.api.url.v2.foo"},
			[]string{"long.api.url.v1.foo", "long.api.url.v1.bar"},
		},
	}

	for _, d := range dataSet {
		trie := New(d.keys...)

		actual := trie.WordsWithPrefix(d.keyPrefix)

		sort.Strings(d.expected)
		assert.Equal(t, d.expected, actual, d.keyPrefix)
		assert.Equal(t, len(d.expected) > 0, trie.ContainsPrefix(d.keyPrefix), d.keyPrefix)
	}
}

func TestTrieIterator(t *testing.T) {
	trie := New("2", "1", "10", "")

	it := trie.Iterator()
	assert.NotNil(t, it)

	for _, expected := range []string{"", "1", "10", "2"} {
		assert.True(t, it.HasNext())
		w, err := it.Next()
		assert.NoError(t, err)
		assert.Equal(t, expected, w)
	}

	assert.False(t, it.HasNext())
	bad, err := it.Next()
	assert.Empty(t, bad)
	assert.Equal(t, ErrNoMoreWords, err)
}

func TestTrieWideNode(t *testing.T) {
	// more children than linearMax forces the binary search path
	var words []string
	for c := byte(255); c >= 1; c-- {
		words = append(words, "x"+string([]byte{c}))
	}
	trie := New(words...)
	assert.Equal(t, len(words), trie.Count())
	for _, w := range words {
		require.True(t, trie.Contains(w))
	}
	assert.False(t, trie.Contains("x\x00"))

	got := trie.WordsWithPrefix("x")
	assert.True(t, sort.StringsAreSorted(got))
	assert.Len(t, got, len(words))
}

func TestTrieClone(t *testing.T) {
	trie := New("alpha", "beta")
	clone := trie.Clone()
	clone.Add("gamma")
	clone.Remove("alpha")

	assert.Equal(t, []string{"alpha", "beta"}, trie.WordsWithPrefix(""))
	assert.Equal(t, []string{"beta", "gamma"}, clone.WordsWithPrefix(""))
}

func TestTrieString(t *testing.T) {
	assert.Equal(t, "[aa aab ba]", New("ba", "aab", "aa").String())
}

func TestBigKeySetPrefixSearch(t *testing.T) {
	keys := getKeys("1mvl5_10")
	if len(keys) > 50000 {
		keys = keys[:50000]
	}

	prefixs := make([]string, 0)
	unique := map[string]bool{}
	trie := New()
	for _, k := range keys {
		if strings.HasPrefix(k, "a") && !unique[k] {
			prefixs = append(prefixs, k)
		}
		unique[k] = true
		trie.Add(k)
	}
	sort.Strings(prefixs)

	assert.Equal(t, len(unique), trie.Count())
	assert.Equal(t, prefixs, trie.WordsWithPrefix("a"))

	for k := range unique {
		require.True(t, trie.Contains(k), k)
	}

	var iterated []string
	for it := trie.Iterator(); it.HasNext(); {
		w, err := it.Next()
		require.NoError(t, err)
		iterated = append(iterated, w)
	}
	assert.Len(t, iterated, len(unique))
	assert.True(t, sort.StringsAreSorted(iterated))
}

var cache map[string][]string = map[string][]string{}

func getKeys(fn string) []string {
	ss, ok := cache[fn]
	if ok {
		return ss
	}
	ks := testkeys.Load(fn)
	cache[fn] = ks
	return ks
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, typ string, key []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)

		n := len(keys)
		if n < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, fn, keys)
		})
	}
}

func BenchmarkWordsTrieAdd(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			trie := New()

			for _, k := range keys {
				trie.Add(k)
			}
		}
	})
}

func BenchmarkWordsTrieContainsPrefix(b *testing.B) {
	prefixs := []string{
		"abcdefghijklmnopqrstuvwxyz",
		"0123456789",
	}

	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		trie := New(keys...)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for _, prefix := range prefixs {
				for j := 0; j < len(prefix); j++ {
					trie.ContainsPrefix(prefix[j : j+1])
				}
			}
		}
	})
}
