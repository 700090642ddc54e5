package triehard

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Reduction selects how per-chunk local tries are combined into one global
// trie.
type Reduction int

const (
	// ReductionLinear folds every local trie into a single accumulator, one
	// merge at a time.
	ReductionLinear Reduction = iota
	// ReductionPairwise merges adjacent pairs concurrently, halving the
	// number of tries each round. Each round completes before the next
	// starts. Better merge utilisation on large partition counts.
	ReductionPairwise
)

func (r Reduction) String() string {
	switch r {
	case ReductionPairwise:
		return "pairwise"
	default:
		return "linear"
	}
}

// ParseReduction maps the names "linear" and "pairwise" to their Reduction.
func ParseReduction(name string) (Reduction, error) {
	switch name {
	case "linear":
		return ReductionLinear, nil
	case "pairwise":
		return ReductionPairwise, nil
	default:
		return 0, fmt.Errorf("unknown reduction strategy %q", name)
	}
}

// Builder configures how a word list is turned into a trie. Parallel versus
// serial and merged versus unmerged are explicit choices made through the
// Builder, never inferred from the environment at query time.
type Builder struct {
	parallelism int
	reduction   Reduction
	log         *slog.Logger
}

// NewBuilder creates a Builder with parallelism equal to the runnable CPU
// count and linear reduction.
func NewBuilder() *Builder {
	return &Builder{
		parallelism: runtime.GOMAXPROCS(0),
		reduction:   ReductionLinear,
		log:         slog.Default().With("source", "triehard"),
	}
}

// WithParallelism sets the number of chunks and concurrent build workers.
func (b *Builder) WithParallelism(n int) *Builder {
	b.parallelism = n
	return b
}

// WithReduction sets the strategy used to combine local tries.
func (b *Builder) WithReduction(r Reduction) *Builder {
	b.reduction = r
	return b
}

// WithLogger sets the logger used for build progress.
func (b *Builder) WithLogger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// Build constructs one global trie from words. When words has fewer entries
// than the configured parallelism the fan-out is not worth its overhead, so
// the trie is built on the calling goroutine and the returned bool is false.
// Otherwise words are partitioned, one worker per chunk builds a local trie
// it exclusively owns, and the local tries are merged into one; the bool is
// then true.
//
// The resulting key set is identical either way, and identical across
// reduction strategies and chunk boundaries.
func (b *Builder) Build(words []string) (*Trie, bool, error) {
	if b.parallelism <= 0 {
		return nil, false, fmt.Errorf("%w: got %d", ErrInvalidParallelism, b.parallelism)
	}
	if len(words) < b.parallelism {
		b.log.Debug("word count below parallelism, building serially",
			"words", len(words), "parallelism", b.parallelism)
		return BuildSerial(words), false, nil
	}

	start := time.Now()
	locals, err := b.buildLocals(words)
	if err != nil {
		return nil, false, err
	}

	var global *Trie
	switch b.reduction {
	case ReductionPairwise:
		global, err = b.reducePairwise(locals)
	default:
		global, err = b.reduceLinear(locals)
	}
	if err != nil {
		return nil, false, err
	}

	took := time.Since(start)
	buildsTotal.WithLabelValues(buildModeParallel).Inc()
	buildSeconds.WithLabelValues(buildModeParallel).Observe(took.Seconds())
	b.log.Info("built global trie in parallel",
		"words", len(words), "chunks", b.parallelism, "strategy", b.reduction.String(), "took", took)
	return global, true, nil
}

// BuildLocal partitions words and builds one trie per chunk concurrently,
// skipping the reduction step. The returned forest answers prefix queries by
// fan-out; keeping it unmerged trades per-query cost for a cheaper build.
func (b *Builder) BuildLocal(words []string) (Forest, error) {
	if b.parallelism <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParallelism, b.parallelism)
	}
	start := time.Now()
	locals, err := b.buildLocals(words)
	if err != nil {
		return nil, err
	}
	took := time.Since(start)
	buildsTotal.WithLabelValues(buildModeLocal).Inc()
	buildSeconds.WithLabelValues(buildModeLocal).Observe(took.Seconds())
	b.log.Info("built local tries", "words", len(words), "tries", len(locals), "took", took)
	return Forest(locals), nil
}

// buildLocals builds one trie per chunk, each on its own goroutine with
// exclusive ownership of its chunk and trie. A failing worker aborts the
// whole build so no chunk's words can be dropped silently.
func (b *Builder) buildLocals(words []string) ([]*Trie, error) {
	chunks, err := Partition(words, b.parallelism)
	if err != nil {
		return nil, err
	}
	locals := make([]*Trie, len(chunks))
	eg := new(errgroup.Group)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		eg.Go(func() error {
			local := New()
			local.Insert(chunk...)
			locals[i] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return locals, nil
}

// reduceLinear folds every local trie into a fresh accumulator.
func (b *Builder) reduceLinear(locals []*Trie) (*Trie, error) {
	global := New()
	for _, local := range locals {
		if err := global.Merge(local); err != nil {
			return nil, err
		}
	}
	return global, nil
}

// reducePairwise merges adjacent pairs concurrently until one trie remains.
// An odd trie out carries over to the next round unchanged.
func (b *Builder) reducePairwise(locals []*Trie) (*Trie, error) {
	if len(locals) == 0 {
		return New(), nil
	}
	for round := 1; len(locals) > 1; round++ {
		next := make([]*Trie, 0, (len(locals)+1)/2)
		eg := new(errgroup.Group)
		for i := 0; i+1 < len(locals); i += 2 {
			recipient, donor := locals[i], locals[i+1]
			eg.Go(func() error {
				return recipient.Merge(donor)
			})
			next = append(next, recipient)
		}
		if len(locals)%2 == 1 {
			next = append(next, locals[len(locals)-1])
		}
		// The round is a barrier: its merges finish before the next round
		// consumes their outputs.
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		b.log.Debug("pairwise reduction round complete", "round", round, "tries", len(next))
		locals = next
	}
	return locals[0], nil
}

// BuildSerial builds a trie from words on the calling goroutine.
func BuildSerial(words []string) *Trie {
	start := time.Now()
	t := New()
	t.Insert(words...)
	buildsTotal.WithLabelValues(buildModeSerial).Inc()
	buildSeconds.WithLabelValues(buildModeSerial).Observe(time.Since(start).Seconds())
	return t
}

// BuildParallel builds a trie from words across parallelism workers using a
// default Builder. The bool reports whether the parallel path actually ran;
// it is false when the word count is below parallelism.
func BuildParallel(words []string, parallelism int) (*Trie, bool, error) {
	return NewBuilder().WithParallelism(parallelism).Build(words)
}

// BuildLocal partitions words across parallelism workers and returns the
// unmerged local tries using a default Builder.
func BuildLocal(words []string, parallelism int) (Forest, error) {
	return NewBuilder().WithParallelism(parallelism).BuildLocal(words)
}
