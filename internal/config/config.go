// Package config loads the tunable constants of the optimizer (objective
// coefficients, swap neighborhood parameters, annealing schedule, corpus
// location) from an optional "KEY = value" text file, falling back to the
// reference implementation's hand-tuned defaults for anything unset.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mw8/white-keyboard-layout/internal/anneal"
	"github.com/mw8/white-keyboard-layout/internal/objective"
)

// Config holds every tunable constant the optimizer needs, assembled from
// whichever source (file, defaults) provides it.
type Config struct {
	Coefficients objective.Coefficients
	Anneal       anneal.Params

	// CorpusDir is the directory Load walks for text and word-frequency
	// files.
	CorpusDir string
	// FrozenSymbols lists the ASCII characters the swap neighborhood must
	// never move; mirrors Anneal.FrozenSymbols but kept separate since it's
	// also consulted outside the annealing driver (e.g. by future
	// experiment modes).
	FrozenSymbols string
}

// Default returns the reference implementation's constants.
func Default() Config {
	return Config{
		Coefficients:  objective.DefaultCoefficients(),
		Anneal:        anneal.DefaultParams(),
		CorpusDir:     "texts",
		FrozenSymbols: "0123456789",
	}
}

// key names recognized in a config file, one per configurable field.
const (
	keySingleMetric        = "SINGLE_METRIC"
	keyDoubleMetric        = "DOUBLE_METRIC"
	keyTripleMetric        = "TRIPLE_METRIC"
	keyShiftHoldingPenalty = "SHIFT_HOLDING_PENALTY"
	keyReversedTriple      = "REVERSED_TRIPLE"
	keyHandAlternation     = "HAND_ALTERNATION"

	keyCycleTemperatureStart  = "CYCLE_TEMPERATURE_START"
	keyCycleTemperatureFinal  = "CYCLE_TEMPERATURE_FINAL"
	keyCycleTemperatureFactor = "CYCLE_TEMPERATURE_FACTOR"
	keyTemperatureFinal       = "TEMPERATURE_FINAL"
	keyTemperatureFactor      = "TEMPERATURE_FACTOR"
	keyTabuLen                = "NUM_TABU_SWAPS"
	keyReportInterval         = "REPORT_INTERVAL"

	keyCorpusDir     = "CORPUS_DIR"
	keyFrozenSymbols = "FROZEN_SYMBOLS"
)

// Load reads path as a "KEY = value" file (blank lines and lines starting
// with "#" ignored) layered on top of Default, and returns the result. A
// missing file is not an error: Default is returned unchanged, mirroring
// the reference tool's fallback when no configuration is supplied.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := cfg.applyLine(line); err != nil {
			return Config{}, fmt.Errorf("config: %s line %d: %w", path, i+1, err)
		}
	}
	return cfg, nil
}

func (cfg *Config) applyLine(line string) error {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Errorf("expected KEY = value, got %q", line)
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case keySingleMetric:
		return cfg.setFloat32(&cfg.Coefficients.SingleMetric, value)
	case keyDoubleMetric:
		return cfg.setFloat32(&cfg.Coefficients.DoubleMetric, value)
	case keyTripleMetric:
		return cfg.setFloat32(&cfg.Coefficients.TripleMetric, value)
	case keyShiftHoldingPenalty:
		return cfg.setFloat32(&cfg.Coefficients.ShiftHoldingPenalty, value)
	case keyReversedTriple:
		return cfg.setFloat32(&cfg.Coefficients.ReversedTriple, value)
	case keyHandAlternation:
		return cfg.setFloat32(&cfg.Coefficients.HandAlternation, value)

	case keyCycleTemperatureStart:
		return cfg.setFloat64(&cfg.Anneal.CycleTemperatureStart, value)
	case keyCycleTemperatureFinal:
		return cfg.setFloat64(&cfg.Anneal.CycleTemperatureFinal, value)
	case keyCycleTemperatureFactor:
		return cfg.setFloat64(&cfg.Anneal.CycleTemperatureFactor, value)
	case keyTemperatureFinal:
		return cfg.setFloat64(&cfg.Anneal.TemperatureFinal, value)
	case keyTemperatureFactor:
		return cfg.setFloat64(&cfg.Anneal.TemperatureFactor, value)
	case keyTabuLen:
		return cfg.setInt(&cfg.Anneal.TabuLen, value)
	case keyReportInterval:
		return cfg.setUint64(&cfg.Anneal.ReportInterval, value)

	case keyCorpusDir:
		cfg.CorpusDir = value
	case keyFrozenSymbols:
		cfg.FrozenSymbols = value
		cfg.Anneal.FrozenSymbols = value

	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

func (cfg *Config) setFloat32(dst *float32, value string) error {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	*dst = float32(f)
	return nil
}

func (cfg *Config) setFloat64(dst *float64, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	*dst = f
	return nil
}

func (cfg *Config) setInt(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%q is not an integer", value)
	}
	*dst = n
	return nil
}

func (cfg *Config) setUint64(dst *uint64, value string) error {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not an unsigned integer", value)
	}
	*dst = n
	return nil
}
