// Package ga wires a Layout into github.com/MaxHalford/eaopt's generic
// genetic/annealing optimizer, giving the command-line tool a second,
// independently-implemented search mode to compare against package
// anneal's hand-rolled simulated annealing driver. Evaluate, Mutate,
// Crossover and Clone follow the same shape the reference keyboard
// optimizer uses for its own eaopt.Genome.
package ga

import (
	"fmt"
	"math"
	legacyrand "math/rand"
	"math/rand/v2"

	"github.com/MaxHalford/eaopt"

	"github.com/mw8/white-keyboard-layout/internal/layout"
	"github.com/mw8/white-keyboard-layout/internal/objective"
	"github.com/mw8/white-keyboard-layout/internal/swapper"
)

// Genome adapts a Layout to eaopt.Genome. Evaluate scores it against a
// fixed Objective; Mutate performs one swapper.Proposer move. Crossover is
// a no-op (mirroring the reference implementation, which has no meaningful
// recombination operator for a bijective layout), so the annealing and
// drop-worse models are the only ones that make sense to run it under.
type Genome struct {
	Layout   *layout.Layout
	obj      *objective.Objective
	proposer *swapper.Proposer

	tabuLen       int
	frozenSymbols string
}

// Evaluate returns the layout's cost under the fixed objective, the
// quantity eaopt.GA.Minimize drives toward its minimum.
func (g *Genome) Evaluate() (float64, error) {
	return g.obj.Score(g.Layout).Float64(), nil
}

// Mutate performs one random swap from package swapper's constrained
// neighborhood. The eaopt-supplied rng (math/rand's legacy generator) goes
// unused: the Proposer carries its own math/rand/v2 source, seeded once at
// construction, so its tabu-list state machine stays self-consistent
// across calls regardless of which legacy rng eaopt happens to pass in.
func (g *Genome) Mutate(_ *legacyrand.Rand) {
	g.proposer.Swap(g.Layout)
}

// Crossover does nothing: a bijective layout has no meaningful single-point
// recombination, matching the reference implementation's own Genome.
func (g *Genome) Crossover(_ eaopt.Genome, _ *legacyrand.Rand) {}

// Clone returns an independent copy of g, including its own swap proposer
// (started fresh rather than sharing tabu-list state with g's).
func (g *Genome) Clone() eaopt.Genome {
	proposer, err := swapper.New(g.Layout, g.tabuLen, g.frozenSymbols, nil)
	if err != nil {
		panic(fmt.Sprintf("ga: cloning genome: %v", err))
	}
	return &Genome{
		Layout:        g.Layout.Clone(),
		obj:           g.obj,
		proposer:      proposer,
		tabuLen:       g.tabuLen,
		frozenSymbols: g.frozenSymbols,
	}
}

// AcceptFunc names the simulated-annealing acceptance policies eaopt.GA can
// run this genome under, matching the reference implementation's own
// command-line choices.
func AcceptFunc(name string) (func(generation, maxGenerations uint, e0, e1 float64) float64, error) {
	switch name {
	case "always":
		return func(uint, uint, float64, float64) float64 { return 1.0 }, nil
	case "never":
		return func(uint, uint, float64, float64) float64 { return 0.0 }, nil
	case "drop-slow":
		return func(g, ng uint, _, _ float64) float64 {
			t := 1.0 - float64(g)/float64(ng)
			return (1.0 - math.Cos(t*math.Pi)) / 2.0
		}, nil
	case "linear":
		return func(g, ng uint, _, _ float64) float64 {
			return 1.0 - float64(g)/float64(ng)
		}, nil
	case "drop-fast":
		return func(g, ng uint, _, _ float64) float64 {
			t := 1.0 - float64(g)/float64(ng)
			return math.Exp(-3.0 * (1 - t))
		}, nil
	default:
		return nil, fmt.Errorf("ga: unknown acceptance policy %q", name)
	}
}

// New builds a Genome seeded from initial, with its own swapper.Proposer
// seeded from seed.
func New(initial *layout.Layout, obj *objective.Objective, tabuLen int, frozenSymbols string, seed uint64) (*Genome, error) {
	proposer, err := swapper.New(initial, tabuLen, frozenSymbols, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return nil, fmt.Errorf("ga: building swap proposer: %w", err)
	}
	return &Genome{
		Layout:        initial.Clone(),
		obj:           obj,
		proposer:      proposer,
		tabuLen:       tabuLen,
		frozenSymbols: frozenSymbols,
	}, nil
}

// Run configures and executes an eaopt.GA simulated-annealing search
// starting from genome, returning the best layout found.
func Run(genome *Genome, generations uint, acceptPolicy string) (*layout.Layout, error) {
	accept, err := AcceptFunc(acceptPolicy)
	if err != nil {
		return nil, err
	}

	cfg := eaopt.NewDefaultGAConfig()
	cfg.NGenerations = generations
	cfg.Model = eaopt.ModSimulatedAnnealing{Accept: accept}

	ga, err := cfg.NewGA()
	if err != nil {
		return nil, fmt.Errorf("ga: building GA: %w", err)
	}

	newGenome := func(*legacyrand.Rand) eaopt.Genome { return genome }
	if err := ga.Minimize(newGenome); err != nil {
		return nil, fmt.Errorf("ga: minimizing: %w", err)
	}

	best := ga.HallOfFame[0].Genome.(*Genome)
	return best.Layout, nil
}
