package triehard

import (
	"sort"

	"github.com/xlab/treeprint"
)

// Dump renders the trie's structure, one branch per symbol with terminal
// nodes marked by a trailing "*". Children print in sorted symbol order so
// the output is deterministic. Intended for debugging and the CLI, not for
// machine consumption.
func (t *Trie) Dump() string {
	label := "."
	if t.root != nil && t.root.terminal {
		label = ".*"
	}
	tree := treeprint.NewWithRoot(label)
	if t.root != nil {
		dumpNode(t.root, tree)
	}
	return tree.String()
}

func dumpNode(x *node, tree treeprint.Tree) {
	for _, symbol := range sortedSymbols(x.children) {
		child := x.children[symbol]
		label := string(symbol)
		if child.terminal {
			label += "*"
		}
		if len(child.children) == 0 {
			tree.AddNode(label)
			continue
		}
		dumpNode(child, tree.AddBranch(label))
	}
}

func sortedSymbols(children map[rune]*node) []rune {
	symbols := make([]rune, 0, len(children))
	for symbol := range children {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
