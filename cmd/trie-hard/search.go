package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	triehard "github.com/mcw92/trie-hard"
	"github.com/mcw92/trie-hard/wordlist"
)

var cmdSearch = &cli.Command{
	Name:      "search",
	Usage:     "build the index and answer prefix queries",
	ArgsUsage: `[<prefix>...]`,
	Description: `Builds a trie from the word list and reports every word starting with each
given prefix. With no prefix arguments an interactive prompt is started;
an empty line exits it.`,
	Flags: append(append(wordListFlags, buildFlags...),
		&cli.BoolFlag{
			Name:  "serial",
			Usage: "build on a single goroutine regardless of word count",
		},
		&cli.BoolFlag{
			Name:  "unmerged",
			Usage: "skip the merge step and fan queries out over the local tries",
		},
		&cli.IntFlag{
			Name:    "cache",
			Usage:   "cache up to this many distinct prefix results (0 disables)",
			EnvVars: []string{"TRIEHARD_CACHE"},
		},
	),
	Action: runSearch,
}

func runSearch(cctx *cli.Context) error {
	loader := newLoader(cctx)
	words, err := loader.Load(cctx.String("words"))
	if err != nil {
		return err
	}

	matcher, err := buildMatcher(cctx, words)
	if err != nil {
		return err
	}
	if capacity := cctx.Int("cache"); capacity > 0 {
		matcher = triehard.NewCachedMatcher(matcher, capacity, 5*time.Minute)
	}

	if cctx.Args().Len() > 0 {
		for _, prefix := range cctx.Args().Slice() {
			printMatches(matcher, loader.Apply(prefix))
		}
		return nil
	}
	return searchInteractive(matcher, loader)
}

func buildMatcher(cctx *cli.Context, words []string) (triehard.Matcher, error) {
	if cctx.Bool("serial") {
		return triehard.BuildSerial(words), nil
	}
	builder, err := newBuilder(cctx)
	if err != nil {
		return nil, err
	}
	if cctx.Bool("unmerged") {
		return builder.BuildLocal(words)
	}
	global, _, err := builder.Build(words)
	if err != nil {
		return nil, err
	}
	return global, nil
}

func searchInteractive(matcher triehard.Matcher, loader *wordlist.Loader) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter prefix to search for (press ENTER to exit search): ")
		if !scanner.Scan() {
			break
		}
		prefix := strings.TrimSpace(scanner.Text())
		if prefix == "" {
			break
		}
		printMatches(matcher, loader.Apply(prefix))
	}
	return scanner.Err()
}

func printMatches(matcher triehard.Matcher, prefix string) {
	matches := matcher.PrefixMatch(prefix)
	sort.Strings(matches)
	fmt.Printf("The following %d words match the prefix %q: %v\n", len(matches), prefix, matches)
}
