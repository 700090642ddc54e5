package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	triehard "github.com/mcw92/trie-hard"
)

var cmdDump = &cli.Command{
	Name:   "dump",
	Usage:  "print the trie built from a word list",
	Flags:  wordListFlags,
	Action: runDump,
}

func runDump(cctx *cli.Context) error {
	words, err := newLoader(cctx).Load(cctx.String("words"))
	if err != nil {
		return err
	}
	fmt.Println(triehard.BuildSerial(words).Dump())
	return nil
}
