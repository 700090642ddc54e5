package triehard

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedMatcher memoises prefix queries against an inner Matcher. Indexes
// are write-once read-many, so cached answers never go stale; the TTL only
// bounds memory held for prefixes that stopped recurring.
type CachedMatcher struct {
	inner Matcher
	cache *expirable.LRU[string, []string]
}

var _ Matcher = (*CachedMatcher)(nil)

// NewCachedMatcher wraps inner with an LRU of the given capacity. Capacity of
// zero means unlimited size; a ttl of zero means entries never expire.
func NewCachedMatcher(inner Matcher, capacity int, ttl time.Duration) *CachedMatcher {
	return &CachedMatcher{
		inner: inner,
		cache: expirable.NewLRU[string, []string](capacity, nil, ttl),
	}
}

// PrefixMatch answers from the cache when possible, falling through to the
// inner Matcher otherwise. The returned slice is the caller's to mutate.
func (m *CachedMatcher) PrefixMatch(prefix string) []string {
	matches, ok := m.cache.Get(prefix)
	if !ok {
		matches = m.inner.PrefixMatch(prefix)
		m.cache.Add(prefix, matches)
	}
	if matches == nil {
		return nil
	}
	return append([]string(nil), matches...)
}
