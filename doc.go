/*
Package triehard builds and queries a prefix-matching index (a trie) over a
set of strings. An index is built serially or in parallel by partitioning the
input and merging per-chunk tries. The merge step is optional: unmerged local
tries answer queries by concurrent fan-out instead.

Tries are write-once, read-many: concurrent reads of a finished trie are
safe, concurrent mutation is not. Parallel builds stay race-free through
exclusive ownership of each local trie, handed off to the merge step, rather
than through locking.
*/
package triehard
