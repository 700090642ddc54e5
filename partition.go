package triehard

import "fmt"

// Partition splits words into at most n contiguous chunks in original order.
// Chunk sizes differ by at most one: each chunk gets len(words)/n words and
// the first len(words)%n chunks get one extra. When words has fewer than n
// entries the result has one single-word chunk per word, never an empty
// chunk; an empty input yields no chunks. The chunks alias the input's
// backing array, so the input must not be mutated while builds read from it.
//
// n must be at least 1; otherwise Partition reports ErrInvalidPartitions.
func Partition(words []string, n int) ([][]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPartitions, n)
	}
	if len(words) == 0 {
		return nil, nil
	}
	if len(words) < n {
		n = len(words)
	}

	base := len(words) / n
	remainder := len(words) % n
	chunks := make([][]string, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < remainder {
			size++
		}
		chunks = append(chunks, words[start:start+size])
		start += size
	}
	return chunks, nil
}
