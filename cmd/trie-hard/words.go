package main

import (
	"runtime"

	"github.com/urfave/cli/v2"

	triehard "github.com/mcw92/trie-hard"
	"github.com/mcw92/trie-hard/wordlist"
)

var wordListFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "words",
		Aliases:  []string{"w"},
		Usage:    "path to a newline separated word list",
		Required: true,
		EnvVars:  []string{"TRIEHARD_WORDS"},
	},
	&cli.BoolFlag{
		Name:    "normalise",
		Usage:   "strip diacritics from words and queries",
		EnvVars: []string{"TRIEHARD_NORMALISE"},
	},
	&cli.BoolFlag{
		Name:    "lower",
		Usage:   "lowercase words and queries",
		EnvVars: []string{"TRIEHARD_LOWER"},
	},
}

var buildFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "number of chunks and concurrent build workers",
		Value:   runtime.NumCPU(),
		EnvVars: []string{"TRIEHARD_JOBS"},
	},
	&cli.StringFlag{
		Name:    "strategy",
		Usage:   "reduction strategy for combining local tries (linear or pairwise)",
		Value:   "linear",
		EnvVars: []string{"TRIEHARD_STRATEGY"},
	},
}

func newLoader(cctx *cli.Context) *wordlist.Loader {
	loader := wordlist.NewLoader()
	if cctx.Bool("normalise") {
		loader = loader.WithNormalisation()
	}
	if cctx.Bool("lower") {
		loader = loader.WithLowercase()
	}
	return loader
}

func newBuilder(cctx *cli.Context) (*triehard.Builder, error) {
	strategy, err := triehard.ParseReduction(cctx.String("strategy"))
	if err != nil {
		return nil, err
	}
	return triehard.NewBuilder().
		WithParallelism(cctx.Int("jobs")).
		WithReduction(strategy), nil
}
