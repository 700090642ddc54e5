package triehard

// node is a single symbol transition in the trie. The parent holds the keyed
// edge, so the symbol on the node itself is informational; children are owned
// exclusively by their parent until a merge moves them.
type node struct {
	symbol   rune
	children map[rune]*node
	terminal bool
}

func newNode(symbol rune) *node {
	return &node{
		symbol:   symbol,
		children: make(map[rune]*node),
	}
}

// Trie is a prefix-matching index over a set of strings. The zero-value Trie
// is not usable; create one with New or one of the build functions.
//
// A Trie is not safe for concurrent mutation. Once fully built it may be
// queried from any number of goroutines.
type Trie struct {
	root *node
}

// New creates an empty Trie whose root represents the empty prefix.
func New() *Trie {
	return &Trie{root: newNode(0)}
}

// Insert adds words to the trie. Inserting a word that is already present
// leaves the trie unchanged. The empty string is a valid key; it marks the
// root terminal. Insert panics if the trie was consumed by a merge.
func (t *Trie) Insert(words ...string) {
	if t.root == nil {
		panic("triehard: insert into a trie consumed by a merge")
	}
	for _, word := range words {
		t.insert(word)
	}
}

func (t *Trie) insert(word string) {
	current := t.root
	for _, symbol := range word {
		child, ok := current.children[symbol]
		if !ok {
			child = newNode(symbol)
			current.children[symbol] = child
		}
		current = child
	}
	current.terminal = true
}

// PrefixMatch returns every stored key that starts with prefix. A prefix with
// no matches yields an empty result, never an error. The empty prefix matches
// all keys. Ordering of the returned keys is unspecified; callers that need a
// stable order must sort.
func (t *Trie) PrefixMatch(prefix string) []string {
	prefixQueriesTotal.WithLabelValues(queryModeSingle).Inc()
	if t.root == nil {
		// Consumed tries hold no keys.
		return nil
	}
	current := t.root
	for _, symbol := range prefix {
		child, ok := current.children[symbol]
		if !ok {
			return nil
		}
		current = child
	}
	return collect(current, []rune(prefix), nil)
}

// Keys returns every key stored in the trie, in unspecified order.
func (t *Trie) Keys() []string {
	return t.PrefixMatch("")
}

// collect appends to acc every key ending at or below x, each built from the
// symbols walked so far. Children are visited in map order.
func collect(x *node, prefix []rune, acc []string) []string {
	if x.terminal {
		acc = append(acc, string(prefix))
	}
	for symbol, child := range x.children {
		prefix = append(prefix, symbol)
		acc = collect(child, prefix, acc)
		prefix = prefix[:len(prefix)-1]
	}
	return acc
}
