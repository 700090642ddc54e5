package triehard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingMatcher records how often each prefix reaches the wrapped matcher.
type countingMatcher struct {
	inner Matcher
	calls map[string]int
}

func newCountingMatcher(inner Matcher) *countingMatcher {
	return &countingMatcher{inner: inner, calls: map[string]int{}}
}

func (m *countingMatcher) PrefixMatch(prefix string) []string {
	m.calls[prefix]++
	return m.inner.PrefixMatch(prefix)
}

func TestCachedMatcher(t *testing.T) {
	buildInner := func() *Trie {
		tr := New()
		tr.Insert("apple", "app", "apt", "banana")
		return tr
	}

	t.Run("answers match the wrapped matcher", func(t *testing.T) {
		inner := buildInner()
		cached := NewCachedMatcher(inner, 16, time.Minute)

		for _, prefix := range []string{"ap", "app", "ba", "z", ""} {
			assert.ElementsMatch(t, inner.PrefixMatch(prefix), cached.PrefixMatch(prefix), "prefix %q", prefix)
		}
	})

	t.Run("repeat queries are served from cache", func(t *testing.T) {
		counting := newCountingMatcher(buildInner())
		cached := NewCachedMatcher(counting, 16, time.Minute)

		first := cached.PrefixMatch("ap")
		second := cached.PrefixMatch("ap")
		assert.ElementsMatch(t, first, second)
		assert.Equal(t, 1, counting.calls["ap"])
	})

	t.Run("empty results are cached too", func(t *testing.T) {
		counting := newCountingMatcher(buildInner())
		cached := NewCachedMatcher(counting, 16, time.Minute)

		assert.Empty(t, cached.PrefixMatch("zzz"))
		assert.Empty(t, cached.PrefixMatch("zzz"))
		assert.Equal(t, 1, counting.calls["zzz"])
	})

	t.Run("callers cannot poison the cache", func(t *testing.T) {
		cached := NewCachedMatcher(buildInner(), 16, time.Minute)

		got := cached.PrefixMatch("ap")
		for i := range got {
			got[i] = "mangled"
		}
		assert.ElementsMatch(t, []string{"apple", "app", "apt"}, cached.PrefixMatch("ap"))
	})

	t.Run("eviction falls through to the matcher", func(t *testing.T) {
		counting := newCountingMatcher(buildInner())
		cached := NewCachedMatcher(counting, 1, time.Minute)

		cached.PrefixMatch("ap")
		cached.PrefixMatch("ba")
		cached.PrefixMatch("ap")
		assert.Equal(t, 2, counting.calls["ap"])
	})

	t.Run("wraps a forest as readily as a trie", func(t *testing.T) {
		first := New()
		first.Insert("apple")
		second := New()
		second.Insert("apt")
		cached := NewCachedMatcher(Forest{first, second}, 16, time.Minute)

		assert.ElementsMatch(t, []string{"apple", "apt"}, cached.PrefixMatch("ap"))
	})
}
