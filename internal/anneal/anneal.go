// Package anneal implements the simulated-annealing driver: a nested
// cycle-temperature loop wrapping an inner Metropolis loop, using package
// swapper for the neighborhood and package objective for the cost.
package anneal

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/mw8/white-keyboard-layout/internal/accum"
	"github.com/mw8/white-keyboard-layout/internal/layout"
	"github.com/mw8/white-keyboard-layout/internal/objective"
	"github.com/mw8/white-keyboard-layout/internal/swapper"
	"github.com/mw8/white-keyboard-layout/internal/xerr"
)

// Params holds the tunable knobs of the annealing schedule, plus where
// checkpoints are written. The temperature constants match the reference
// implementation's hand-tuned values.
type Params struct {
	CycleTemperatureStart  float64
	CycleTemperatureFinal  float64
	CycleTemperatureFactor float64
	TemperatureFinal       float64
	TemperatureFactor      float64

	// TabuLen is the number of recent swaps per side that stay off limits;
	// see swapper.New.
	TabuLen int
	// FrozenSymbols lists ASCII characters the swap neighborhood must never
	// move.
	FrozenSymbols string

	// ReportInterval controls how often progress is written to the
	// progress writer passed to Run (0 disables periodic reporting).
	ReportInterval uint64

	// CheckpointDir is where a numbered snapshot of each cycle's improved
	// best layout is written; empty disables numbered checkpoints.
	CheckpointDir string
	// CheckpointPrefix names the numbered snapshot files,
	// "<dir>/<prefix>_<score>_<cycle>.txt".
	CheckpointPrefix string
	// OptimalLayoutPath, if non-empty, is overwritten with the best layout
	// found so far every time a cycle improves on it.
	OptimalLayoutPath string
}

// DefaultParams returns the reference implementation's annealing schedule.
func DefaultParams() Params {
	return Params{
		CycleTemperatureStart:  1e5,
		CycleTemperatureFinal:  5e3,
		CycleTemperatureFactor: 0.50,
		TemperatureFinal:       1.00,
		TemperatureFactor:      0.99999,
		TabuLen:                10,
		FrozenSymbols:          "0123456789",
		ReportInterval:         100000,
		CheckpointDir:          "layouts",
		CheckpointPrefix:       "layout",
		OptimalLayoutPath:      "optimal_layout.txt",
	}
}

// Driver runs the nested cycle/temperature simulated-annealing search
// against a fixed objective.
type Driver struct {
	obj    *objective.Objective
	params Params
	rng    *rand.Rand
}

// New builds a Driver. rng may be nil, in which case a fixed-seed PCG
// source is used.
func New(obj *objective.Objective, params Params, rng *rand.Rand) *Driver {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Driver{obj: obj, params: params, rng: rng}
}

// probability is the Metropolis acceptance rule: always accept an
// improving move, otherwise accept with probability exp(ΔE/t), computed
// directly against accum.Score's split integer/fractional representation
// so it stays accurate for arbitrarily large corpus scores.
func probability(s0, s1 accum.Score, t float64) float64 {
	if s1.Less(s0) {
		return 1.0
	}
	delta := float64(s0.I-s1.I)*1000.0 + float64(s0.F-s1.F)
	return math.Exp(delta / t)
}

// Result is the outcome of a completed Run: the best layout found and its
// score.
type Result struct {
	Layout *layout.Layout
	Score  accum.Score
}

// Run performs the full annealing schedule starting from initial, writing
// progress lines to w (nil suppresses them) and layout checkpoints to the
// files named by Params. It returns the best layout and score found across
// every cycle.
//
// Each cycle begins its swap proposer and Metropolis loop from the
// best-ever layout and score found so far, not merely the state the
// previous cycle's inner loop happened to end on: the reference
// implementation only resets the score at a cycle boundary, leaving the
// working layout free to drift from the one that actually earned that
// score. That asymmetry is not reproduced here.
func (d *Driver) Run(initial *layout.Layout, w io.Writer) (Result, error) {
	current := initial.Clone()
	score := d.obj.Score(current)

	bestLayout := current.Clone()
	bestScore := score

	if d.params.CheckpointDir != "" {
		if err := os.MkdirAll(d.params.CheckpointDir, 0o755); err != nil {
			return Result{}, fmt.Errorf("anneal: creating checkpoint directory: %w", err)
		}
	}

	cycleIteration := uint64(0)
	cycleTemperature := d.params.CycleTemperatureStart

	for cycleTemperature > d.params.CycleTemperatureFinal {
		proposer, err := swapper.New(bestLayout, d.params.TabuLen, d.params.FrozenSymbols, d.rng)
		if err != nil {
			return Result{}, fmt.Errorf("anneal: building swap proposer: %w", err)
		}

		current = bestLayout.Clone()
		score = bestScore
		cycleBestLayout := current.Clone()
		cycleBestScore := score
		prevBestScore := score

		temperature := cycleTemperature
		iteration := uint64(0)

		if w != nil {
			xerr.MustFprintf(w, "Cycle %d\n", cycleIteration)
		}

		for temperature > d.params.TemperatureFinal {
			candidate := current.Clone()
			proposer.Swap(candidate)
			candidateScore := d.obj.Score(candidate)

			if probability(score, candidateScore, temperature) > d.rng.Float64() {
				current = candidate
				score = candidateScore
			}

			if score.Less(cycleBestScore) {
				cycleBestLayout = current.Clone()
				cycleBestScore = score
			}

			if w != nil && d.params.ReportInterval > 0 && iteration%d.params.ReportInterval == 0 {
				xerr.MustFprintf(w, "%9d    T: %9.2f    C: %12.2f    B: %12.2f\n",
					iteration, temperature, score.Float64(), cycleBestScore.Float64())
			}

			iteration++
			temperature *= d.params.TemperatureFactor
		}

		if !cycleBestScore.Equal(prevBestScore) {
			if w != nil {
				xerr.MustFprintf(w, "\nNew best score: %v\n", cycleBestScore.Float64())
			}
			if err := d.checkpoint(cycleBestLayout, cycleBestScore, cycleIteration); err != nil {
				return Result{}, err
			}
		}

		if cycleBestScore.Less(bestScore) {
			bestLayout = cycleBestLayout
			bestScore = cycleBestScore
		}

		cycleIteration++
		cycleTemperature *= d.params.CycleTemperatureFactor
	}

	return Result{Layout: bestLayout, Score: bestScore}, nil
}

// checkpoint writes l to the numbered checkpoint path (if configured) and
// overwrites the optimal-layout path (if configured).
func (d *Driver) checkpoint(l *layout.Layout, score accum.Score, cycleIteration uint64) error {
	if d.params.CheckpointDir != "" {
		name := fmt.Sprintf("%s_%d_%d.txt", d.params.CheckpointPrefix, int32(score.Float64()), cycleIteration)
		path := filepath.Join(d.params.CheckpointDir, name)
		if err := l.Save(path); err != nil {
			return fmt.Errorf("anneal: writing checkpoint %s: %w", path, err)
		}
	}
	if d.params.OptimalLayoutPath != "" {
		if err := l.Save(d.params.OptimalLayoutPath); err != nil {
			return fmt.Errorf("anneal: writing %s: %w", d.params.OptimalLayoutPath, err)
		}
	}
	return nil
}
