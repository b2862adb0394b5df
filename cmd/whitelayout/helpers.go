package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/urfave/cli/v3"

	"github.com/mw8/white-keyboard-layout/internal/anneal"
	"github.com/mw8/white-keyboard-layout/internal/config"
	"github.com/mw8/white-keyboard-layout/internal/corpus"
	"github.com/mw8/white-keyboard-layout/internal/layout"
	"github.com/mw8/white-keyboard-layout/internal/objective"
)

// loadLayout reads a layout file, falling back to the White layout if path
// is empty.
func loadLayout(path string) (*layout.Layout, error) {
	if path == "" {
		return layout.White(), nil
	}
	return layout.Load(path)
}

// loadObjective builds an Objective from the corpus directory and
// coefficients named by cfg.
func loadObjective(cfg config.Config, corpusDir string) (*objective.Objective, error) {
	if corpusDir == "" {
		corpusDir = cfg.CorpusDir
	}
	words, err := corpus.Load(corpusDir)
	if err != nil {
		return nil, fmt.Errorf("loading corpus %s: %w", corpusDir, err)
	}
	return objective.New(cfg.Coefficients, words), nil
}

// loadConfigFromFlags loads a Config from --config (or the built-in
// defaults if unset), then layers on whichever annealing flags the caller
// actually set on the command line.
func loadConfigFromFlags(c *cli.Command) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet("cycle-t-start") {
		cfg.Anneal.CycleTemperatureStart = c.Float64("cycle-t-start")
	}
	if c.IsSet("cycle-t-final") {
		cfg.Anneal.CycleTemperatureFinal = c.Float64("cycle-t-final")
	}
	if c.IsSet("cycle-t-factor") {
		cfg.Anneal.CycleTemperatureFactor = c.Float64("cycle-t-factor")
	}
	if c.IsSet("t-final") {
		cfg.Anneal.TemperatureFinal = c.Float64("t-final")
	}
	if c.IsSet("t-factor") {
		cfg.Anneal.TemperatureFactor = c.Float64("t-factor")
	}
	if c.IsSet("tabu-len") {
		cfg.Anneal.TabuLen = c.Int("tabu-len")
	}
	if c.IsSet("report-interval") {
		cfg.Anneal.ReportInterval = c.Uint("report-interval")
	}
	if c.IsSet("frozen") {
		cfg.FrozenSymbols = c.String("frozen")
		cfg.Anneal.FrozenSymbols = c.String("frozen")
	}
	if c.IsSet("corpus") {
		cfg.CorpusDir = c.String("corpus")
	}
	return cfg, nil
}

// rngFromSeed returns a math/rand/v2 source seeded deterministically from
// a single uint64, matching the way package swapper and package anneal
// already take their entropy.
func rngFromSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
