package triehard

import "errors"

// ErrInvalidParallelism is returned when a build is requested with a
// non-positive number of workers.
var ErrInvalidParallelism = errors.New("parallelism must be at least 1")

// ErrInvalidPartitions is returned when a partitioning is requested with a
// non-positive partition count.
var ErrInvalidPartitions = errors.New("partition count must be at least 1")

// ErrTrieConsumed is returned when a merge involves a trie that was already
// consumed as the donor of an earlier merge.
var ErrTrieConsumed = errors.New("trie has been consumed by a merge")
