package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mw8/white-keyboard-layout/internal/anneal"
	"github.com/mw8/white-keyboard-layout/internal/layout"
)

// optimizeCommand runs the hand-rolled simulated-annealing driver starting
// from the White layout and writes the resulting best layout to
// "<prefix>.txt" (PREFIX defaults to "layout").
var optimizeCommand = &cli.Command{
	Name:      "optimize",
	Aliases:   []string{"opt"},
	Usage:     "Optimise a keyboard layout with simulated annealing",
	ArgsUsage: "[PREFIX]",
	Flags: flagsSlice("config", "corpus", "seed", "frozen",
		"cycle-t-start", "cycle-t-final", "cycle-t-factor",
		"t-final", "t-factor", "tabu-len", "report-interval"),
	Action: optimizeAction,
}

func optimizeAction(_ context.Context, c *cli.Command) error {
	prefix := "layout"
	if c.Args().Len() > 0 {
		prefix = c.Args().First()
	}

	cfg, err := loadConfigFromFlags(c)
	if err != nil {
		return err
	}

	obj, err := loadObjective(cfg, c.String("corpus"))
	if err != nil {
		return err
	}

	cfg.Anneal.CheckpointPrefix = prefix
	cfg.Anneal.OptimalLayoutPath = prefix + ".txt"

	driver := anneal.New(obj, cfg.Anneal, rngFromSeed(c.Uint64("seed")))

	result, err := driver.Run(layout.White(), os.Stdout)
	if err != nil {
		return fmt.Errorf("running annealing: %w", err)
	}

	if err := result.Layout.Save(cfg.Anneal.OptimalLayoutPath); err != nil {
		return fmt.Errorf("saving result: %w", err)
	}

	fmt.Printf("\nBest score: %.2f\nLayout written to %s\n", result.Score.Float64(), cfg.Anneal.OptimalLayoutPath)
	return nil
}
