// Command whitelayout optimizes, inspects, and renders keyboard layouts
// for the fixed 47-key/94-symbol ergonomic model implemented by the
// internal packages. It exposes five subcommands: optimize, view, render,
// corpus, and experiment.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "whitelayout",
		Usage: "Optimize and inspect keyboard layouts against a corpus-derived cost model",
		Commands: []*cli.Command{
			optimizeCommand,
			viewCommand,
			renderCommand,
			corpusCommand,
			experimentCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "whitelayout:", err)
		os.Exit(1)
	}
}
