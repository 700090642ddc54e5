package triehard

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndPrefixMatch(t *testing.T) {
	t.Run("collects every key under a prefix", func(t *testing.T) {
		tr := New()
		tr.Insert("apple", "app", "apt", "banana")

		assert.ElementsMatch(t, []string{"apple", "app", "apt"}, tr.PrefixMatch("ap"))
		assert.ElementsMatch(t, []string{"banana"}, tr.PrefixMatch("ba"))
		assert.Empty(t, tr.PrefixMatch("z"))
		assert.ElementsMatch(t, []string{"apple", "app", "apt", "banana"}, tr.Keys())
	})

	t.Run("empty prefix matches all keys", func(t *testing.T) {
		tr := New()
		tr.Insert("veni", "vidi", "vici")
		assert.ElementsMatch(t, []string{"veni", "vidi", "vici"}, tr.PrefixMatch(""))
	})

	t.Run("whole key is a prefix of itself", func(t *testing.T) {
		tr := New()
		tr.Insert("go", "gopher")
		assert.ElementsMatch(t, []string{"go", "gopher"}, tr.PrefixMatch("go"))
		assert.ElementsMatch(t, []string{"gopher"}, tr.PrefixMatch("gop"))
	})

	t.Run("prefix longer than any key", func(t *testing.T) {
		tr := New()
		tr.Insert("go")
		assert.Empty(t, tr.PrefixMatch("gopher"))
	})

	t.Run("empty trie has no matches", func(t *testing.T) {
		tr := New()
		assert.Empty(t, tr.PrefixMatch(""))
		assert.Empty(t, tr.PrefixMatch("a"))
		assert.Empty(t, tr.Keys())
	})

	t.Run("empty string is a valid key", func(t *testing.T) {
		tr := New()
		tr.Insert("")
		assert.ElementsMatch(t, []string{""}, tr.Keys())

		tr.Insert("a")
		assert.ElementsMatch(t, []string{"", "a"}, tr.PrefixMatch(""))
		assert.ElementsMatch(t, []string{"a"}, tr.PrefixMatch("a"))
	})

	t.Run("multi-byte symbols traverse by rune", func(t *testing.T) {
		tr := New()
		tr.Insert("héllo", "hélas", "hello")
		assert.ElementsMatch(t, []string{"héllo", "hélas"}, tr.PrefixMatch("hé"))
		assert.ElementsMatch(t, []string{"hello"}, tr.PrefixMatch("he"))
	})

	t.Run("insert is idempotent", func(t *testing.T) {
		tr := New()
		tr.Insert("apple")
		once := tr.Keys()
		tr.Insert("apple")
		assert.ElementsMatch(t, once, tr.Keys())
		assert.Len(t, tr.Keys(), 1)
	})

	t.Run("variadic insert equals repeated insert", func(t *testing.T) {
		first := New()
		first.Insert("a", "b", "c")
		second := New()
		second.Insert("a")
		second.Insert("b")
		second.Insert("c")
		assert.ElementsMatch(t, first.Keys(), second.Keys())
	})
}

// TestPrefixMatchAgainstNaiveFilter cross-checks the trie against a plain
// startswith scan over a generated corpus.
func TestPrefixMatchAgainstNaiveFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcd")

	words := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		length := 1 + rng.Intn(8)
		var sb strings.Builder
		for j := 0; j < length; j++ {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		words = append(words, sb.String())
	}

	tr := New()
	tr.Insert(words...)

	unique := make(map[string]struct{}, len(words))
	for _, word := range words {
		unique[word] = struct{}{}
	}

	prefixes := []string{"", "a", "b", "ab", "abc", "dddd", "abcdabcd", "z"}
	for _, prefix := range prefixes {
		var want []string
		for word := range unique {
			if strings.HasPrefix(word, prefix) {
				want = append(want, word)
			}
		}
		assert.ElementsMatch(t, want, tr.PrefixMatch(prefix), "prefix %q", prefix)
	}
}

func TestInsertIntoConsumedTriePanics(t *testing.T) {
	recipient := New()
	donor := New()
	donor.Insert("apple")
	assert.NoError(t, recipient.Merge(donor))

	assert.Panics(t, func() { donor.Insert("banana") })
}

func BenchmarkInsert(b *testing.B) {
	words := make([]string, b.N)
	for i := range words {
		words[i] = fmt.Sprintf("word-%d", i)
	}
	tr := New()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr.Insert(words[i])
	}
}

func BenchmarkPrefixMatch(b *testing.B) {
	tr := New()
	for i := 0; i < 100000; i++ {
		tr.Insert(fmt.Sprintf("word-%d", i))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr.PrefixMatch("word-9")
	}
}
