package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// appFlagsMap centralizes CLI flag definitions so each command selects
// only the ones it needs, keeping names, aliases and defaults consistent
// across commands.
var appFlagsMap = map[string]cli.Flag{
	"config": &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"cfg"},
		Usage:   "Configuration file overriding the built-in defaults (KEY = value lines).",
	},
	"corpus": &cli.StringFlag{
		Name:    "corpus",
		Aliases: []string{"c"},
		Usage:   "Corpus directory of .txt / .wfl.txt files.",
		Value:   "texts",
	},
	"rows": &cli.IntFlag{
		Name:    "rows",
		Aliases: []string{"r"},
		Usage:   "Maximum number of rows to display.",
		Value:   25,
		Action: func(_ context.Context, _ *cli.Command, value int) error {
			if value < 1 {
				return fmt.Errorf("--rows must be at least 1 (got %d)", value)
			}
			return nil
		},
	},
	"out": &cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Usage:    "Output PNG path.",
		Required: true,
	},
	"seed": &cli.Uint64Flag{
		Name:  "seed",
		Usage: "Random seed for the swap neighborhood and annealing schedule.",
		Value: 1,
	},
	"frozen": &cli.StringFlag{
		Name:  "frozen",
		Usage: "ASCII characters the swap neighborhood must never move.",
		Value: "0123456789",
	},
	"cycle-t-start": &cli.Float64Flag{
		Name:  "cycle-t-start",
		Usage: "Starting cycle temperature (CYCLE_TEMPERATURE_START).",
		Value: 1e5,
	},
	"cycle-t-final": &cli.Float64Flag{
		Name:  "cycle-t-final",
		Usage: "Final cycle temperature at which the outer loop stops (CYCLE_TEMPERATURE_FINAL).",
		Value: 5e3,
	},
	"cycle-t-factor": &cli.Float64Flag{
		Name:  "cycle-t-factor",
		Usage: "Per-cycle temperature decay factor (CYCLE_TEMPERATURE_FACTOR).",
		Value: 0.50,
	},
	"t-final": &cli.Float64Flag{
		Name:  "t-final",
		Usage: "Final inner temperature at which a cycle's Metropolis loop stops (TEMPERATURE_FINAL).",
		Value: 1.00,
	},
	"t-factor": &cli.Float64Flag{
		Name:  "t-factor",
		Usage: "Per-iteration inner temperature decay factor (TEMPERATURE_FACTOR).",
		Value: 0.99999,
	},
	"tabu-len": &cli.IntFlag{
		Name:  "tabu-len",
		Usage: "Number of recently swapped symbols per side that stay off limits (NUM_TABU_SWAPS).",
		Value: 10,
	},
	"report-interval": &cli.UintFlag{
		Name:  "report-interval",
		Usage: "Iterations between progress reports (0 disables periodic reporting).",
		Value: 100000,
	},
	"mode": &cli.StringFlag{
		Name:  "mode",
		Usage: `Search mode: "sa" (hand-rolled simulated annealing) or "generational" (eaopt genetic/annealing model).`,
		Value: "sa",
	},
	"generations": &cli.UintFlag{
		Name:  "generations",
		Usage: "Number of generations to run in generational mode.",
		Value: 50,
	},
	"accept": &cli.StringFlag{
		Name:  "accept",
		Usage: `Acceptance policy for generational mode: "always", "never", "drop-slow", "linear", or "drop-fast".`,
		Value: "drop-slow",
	},
}

// flagsSlice returns the named flags from appFlagsMap, in order, panicking
// on an unknown key since that is always a programming error in this
// binary, never user input.
func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		f, ok := appFlagsMap[k]
		if !ok {
			panic(fmt.Sprintf("whitelayout: unknown flag key %q", k))
		}
		flags = append(flags, f)
	}
	return flags
}
