package triehard

// mergeFrame pairs a recipient node with the donor node whose keys it must
// absorb.
type mergeFrame struct {
	dst *node
	src *node
}

// Merge unions donor's keys into t in place and consumes the donor. Donor
// subtrees reachable through edges the recipient lacks are moved, not copied,
// so after Merge returns the donor behaves as an empty trie: queries on it
// return nothing and Insert panics. Merging a consumed trie again, on either
// side, reports ErrTrieConsumed. Merging a trie with itself or merging a nil
// donor is a no-op and consumes nothing.
//
// The result's key set is the union of both key sets; duplicate keys
// collapse, and a key once terminal never becomes non-terminal. Union is
// commutative and associative, so reduction order over many tries does not
// affect the result.
//
// The walk uses an explicit worklist rather than recursion, so merging keys
// of arbitrary length cannot exhaust the stack.
func (t *Trie) Merge(donor *Trie) error {
	if donor == nil || donor == t {
		return nil
	}
	if t.root == nil || donor.root == nil {
		return ErrTrieConsumed
	}
	mergesTotal.Inc()

	worklist := []mergeFrame{{dst: t.root, src: donor.root}}
	for len(worklist) > 0 {
		frame := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if frame.src.terminal {
			frame.dst.terminal = true
		}
		for symbol, donorChild := range frame.src.children {
			child, ok := frame.dst.children[symbol]
			if !ok {
				// No competing edge: move the whole donor subtree across.
				frame.dst.children[symbol] = donorChild
				continue
			}
			worklist = append(worklist, mergeFrame{dst: child, src: donorChild})
		}
	}

	// Detach the donor's root so moved subtrees cannot be reached through it.
	donor.root = nil
	return nil
}
