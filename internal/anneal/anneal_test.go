package anneal

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/mw8/white-keyboard-layout/internal/accum"
	"github.com/mw8/white-keyboard-layout/internal/layout"
	"github.com/mw8/white-keyboard-layout/internal/objective"
)

func word(s string) objective.Word {
	chars := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		chars[i] = layout.CharNumber(s[i])
	}
	return objective.Word{Chars: chars, Freq: 100}
}

func TestProbabilityAlwaysAcceptsImprovement(t *testing.T) {
	s0 := accum.Score{I: 10, F: 0}
	s1 := accum.Score{I: 9, F: 999}
	if p := probability(s0, s1, 5000); p != 1.0 {
		t.Fatalf("probability for an improving move = %v, want 1.0", p)
	}
}

func TestProbabilityDecreasesWithWorseDelta(t *testing.T) {
	s0 := accum.Score{I: 10, F: 0}
	small := accum.Score{I: 10, F: 10}
	large := accum.Score{I: 10, F: 500}
	t0 := 1000.0
	pSmall := probability(s0, small, t0)
	pLarge := probability(s0, large, t0)
	if pSmall <= pLarge {
		t.Fatalf("a smaller worsening should be more likely to be accepted: pSmall=%v pLarge=%v", pSmall, pLarge)
	}
	if pSmall > 1.0 || pLarge < 0 {
		t.Fatalf("probability out of range: pSmall=%v pLarge=%v", pSmall, pLarge)
	}
}

// TestRunNeverRegressesBestScore runs a short schedule (temperatures raised
// so the inner loop only takes a handful of iterations) and checks the
// returned layout is valid, its score is never worse than the initial
// layout's score, and the returned score equals the returned layout's
// actual score.
func TestRunNeverRegressesBestScore(t *testing.T) {
	words := []objective.Word{word("the"), word("of"), word("and"), word("to")}
	obj := objective.New(objective.DefaultCoefficients(), words)

	params := DefaultParams()
	params.CycleTemperatureStart = 20
	params.CycleTemperatureFinal = 5
	params.CycleTemperatureFactor = 0.5
	params.TemperatureFinal = 15
	params.TemperatureFactor = 0.9
	params.ReportInterval = 0
	params.CheckpointDir = filepath.Join(t.TempDir(), "layouts")
	params.OptimalLayoutPath = filepath.Join(t.TempDir(), "optimal_layout.txt")

	d := New(obj, params, rand.New(rand.NewPCG(7, 7)))
	initial := layout.White()
	initialScore := obj.Score(initial)

	result, err := d.Run(initial, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := result.Layout.Validate(); err != nil {
		t.Fatalf("returned layout is invalid: %v", err)
	}
	if initialScore.Less(result.Score) {
		t.Fatalf("Run returned a worse score than the initial layout: initial=%v got=%v",
			initialScore.Float64(), result.Score.Float64())
	}
	gotScore := obj.Score(result.Layout)
	if !gotScore.Equal(result.Score) {
		t.Fatalf("returned score %v does not match the returned layout's actual score %v",
			result.Score.Float64(), gotScore.Float64())
	}
}
