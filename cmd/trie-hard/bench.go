package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	triehard "github.com/mcw92/trie-hard"
)

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "compare serial and parallel build times on a word list",
	Flags: append(append(wordListFlags, buildFlags...),
		&cli.IntFlag{
			Name:  "runs",
			Usage: "repetitions per build mode, fastest run wins",
			Value: 3,
		},
	),
	Action: runBench,
}

func runBench(cctx *cli.Context) error {
	words, err := newLoader(cctx).Load(cctx.String("words"))
	if err != nil {
		return err
	}
	builder, err := newBuilder(cctx)
	if err != nil {
		return err
	}
	runs := cctx.Int("runs")
	if runs < 1 {
		runs = 1
	}

	var serialKeys int
	serialTook := time.Duration(0)
	for i := 0; i < runs; i++ {
		start := time.Now()
		serial := triehard.BuildSerial(words)
		took := time.Since(start)
		if i == 0 || took < serialTook {
			serialTook = took
		}
		serialKeys = len(serial.Keys())
	}

	var parallelKeys int
	parallelRan := false
	parallelTook := time.Duration(0)
	for i := 0; i < runs; i++ {
		start := time.Now()
		global, parallel, err := builder.Build(words)
		if err != nil {
			return err
		}
		took := time.Since(start)
		if i == 0 || took < parallelTook {
			parallelTook = took
		}
		parallelRan = parallel
		parallelKeys = len(global.Keys())
	}

	if serialKeys != parallelKeys {
		return fmt.Errorf("key sets diverge: serial built %d keys, parallel built %d", serialKeys, parallelKeys)
	}

	fmt.Printf("%d words, %d unique keys, best of %d runs\n", len(words), serialKeys, runs)
	fmt.Printf("serial build with one worker took %v\n", serialTook)
	if parallelRan {
		fmt.Printf("parallel build with %d workers took %v (%s reduction)\n",
			cctx.Int("jobs"), parallelTook, cctx.String("strategy"))
		fmt.Printf("speedup: %.2fx\n", serialTook.Seconds()/parallelTook.Seconds())
	} else {
		fmt.Printf("word count below %d workers, parallel build fell back to serial and took %v\n",
			cctx.Int("jobs"), parallelTook)
	}
	return nil
}
