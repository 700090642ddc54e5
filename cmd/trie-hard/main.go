// trie-hard is a command line tool for prefix search over word lists. It
// builds the index in parallel across worker goroutines and answers queries
// interactively or from arguments.
package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	_ "go.uber.org/automaxprocs"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "trie-hard",
		Usage:   "parallel trie construction and prefix search over word lists",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "enable debug logging",
			EnvVars: []string{"TRIEHARD_DEBUG"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format (text or json)",
			Value:   "text",
			EnvVars: []string{"TRIEHARD_LOG_FORMAT"},
		},
	}
	app.Before = setupLogger
	app.Commands = []*cli.Command{
		cmdSearch,
		cmdBench,
		cmdDump,
	}
	return app.Run(args)
}

func setupLogger(cctx *cli.Context) error {
	level := slog.LevelInfo
	if cctx.Bool("debug") {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cctx.String("log-format") {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
