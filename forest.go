package triehard

import (
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
)

// Matcher answers prefix queries. Both a merged *Trie and an unmerged Forest
// satisfy it, so callers choose between the two modes explicitly and pass
// either to query-side code unchanged.
type Matcher interface {
	PrefixMatch(prefix string) []string
}

var (
	_ Matcher = (*Trie)(nil)
	_ Matcher = (Forest)(nil)
)

// Forest is a set of local tries left unmerged after a partitioned build.
// Queries fan out to every trie concurrently; because the tries partition the
// indexed words, the union of the per-trie answers equals what one merged
// trie would return.
type Forest []*Trie

// PrefixMatch dispatches the prefix query to every local trie concurrently
// and returns the deduplicated union of the results, in unspecified order.
func (f Forest) PrefixMatch(prefix string) []string {
	prefixQueriesTotal.WithLabelValues(queryModeFanout).Inc()
	if len(f) == 0 {
		return nil
	}

	union := xsync.NewMapOf[string, struct{}]()
	eg := new(errgroup.Group)
	for _, local := range f {
		local := local
		eg.Go(func() error {
			for _, key := range local.PrefixMatch(prefix) {
				union.Store(key, struct{}{})
			}
			return nil
		})
	}
	// Lookups are total; Wait is only a barrier here.
	_ = eg.Wait()

	keys := make([]string, 0, union.Size())
	union.Range(func(key string, _ struct{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Keys returns the union of every local trie's key set, in unspecified order.
func (f Forest) Keys() []string {
	return f.PrefixMatch("")
}
