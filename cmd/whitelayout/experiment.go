package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mw8/white-keyboard-layout/internal/anneal"
	"github.com/mw8/white-keyboard-layout/internal/ga"
	"github.com/mw8/white-keyboard-layout/internal/layout"
)

// experimentCommand runs either search mode (the hand-rolled annealing
// driver, or eaopt's simulated-annealing model via package ga under the
// mode name "generational") from the same starting layout, to compare
// their results.
var experimentCommand = &cli.Command{
	Name:      "experiment",
	Aliases:   []string{"x"},
	Usage:     "Compare search modes on a starting layout",
	ArgsUsage: "<layout>",
	Flags: flagsSlice("config", "corpus", "mode", "seed", "frozen",
		"tabu-len", "generations", "accept"),
	Before: validateExperimentArgs,
	Action: experimentAction,
}

func validateExperimentArgs(ctx context.Context, c *cli.Command) (context.Context, error) {
	if c.Args().Len() != 1 {
		return ctx, fmt.Errorf("experiment: expected exactly 1 layout, got %d", c.Args().Len())
	}
	switch c.String("mode") {
	case "sa", "generational":
	default:
		return ctx, fmt.Errorf("experiment: unknown --mode %q", c.String("mode"))
	}
	return ctx, nil
}

func experimentAction(_ context.Context, c *cli.Command) error {
	cfg, err := loadConfigFromFlags(c)
	if err != nil {
		return err
	}
	obj, err := loadObjective(cfg, c.String("corpus"))
	if err != nil {
		return err
	}

	initial, err := layout.Load(c.Args().First())
	if err != nil {
		return fmt.Errorf("experiment: loading layout: %w", err)
	}

	switch c.String("mode") {
	case "sa":
		driver := anneal.New(obj, cfg.Anneal, rngFromSeed(c.Uint64("seed")))
		result, err := driver.Run(initial, os.Stdout)
		if err != nil {
			return fmt.Errorf("experiment: %w", err)
		}
		fmt.Printf("\nsa mode best score: %.2f\n", result.Score.Float64())
		return nil

	case "generational":
		genome, err := ga.New(initial, obj, c.Int("tabu-len"), cfg.FrozenSymbols, c.Uint64("seed"))
		if err != nil {
			return fmt.Errorf("experiment: %w", err)
		}
		best, err := ga.Run(genome, uint(c.Uint("generations")), c.String("accept"))
		if err != nil {
			return fmt.Errorf("experiment: %w", err)
		}
		fmt.Printf("generational mode best score: %.2f\n", obj.Score(best).Float64())
		return nil
	}

	return fmt.Errorf("experiment: unknown --mode %q", c.String("mode"))
}
