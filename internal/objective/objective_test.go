package objective

import (
	"testing"

	"github.com/mw8/white-keyboard-layout/internal/costtables"
	"github.com/mw8/white-keyboard-layout/internal/layout"
)

// TestTripleFilterCoverage is property 8: the bloom-style prefilter must
// never reject a triple that is actually present in the sparse table
// (false negatives are forbidden; false positives are fine).
func TestTripleFilterCoverage(t *testing.T) {
	for _, tr := range costtables.Triple {
		if !TripleFilter(tr.K1, tr.K2, tr.K3) {
			t.Errorf("TripleFilter rejected a real triple (%d,%d,%d)", tr.K1, tr.K2, tr.K3)
		}
	}
}

func charsOf(s string) []byte {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = layout.CharNumber(s[i])
	}
	return out
}

// referenceDoubleScore recomputes the single+double+shift-holding+hand
// alternation contribution for one consecutive action pair directly from
// the cost tables, independent of the Objective's precomputed table, as a
// slow-path cross-check.
func referenceDoubleScore(coef Coefficients, k1, k2 byte) float32 {
	minSingle := costtables.Single[0]
	for _, v := range costtables.Single {
		if v < minSingle {
			minSingle = v
		}
	}
	var s float32
	if k2 != k1 {
		idx := k2
		if idx <= 47 {
			s = (costtables.Single[idx] - minSingle) * coef.SingleMetric
		} else {
			s = (costtables.Single[idx-47] - minSingle) * coef.SingleMetric
			s += coef.ShiftHoldingPenalty
		}
	}

	lookup := func(a, b byte) (float32, bool) {
		for _, d := range costtables.Double {
			ai, bi := a, b
			if ai > 47 {
				ai -= 47
			}
			if bi > 47 {
				bi -= 47
			}
			if d.K1 == ai && d.K2 == bi {
				return d.Penalty, true
			}
		}
		return 0, false
	}
	minDouble := costtables.Double[0].Penalty
	for _, d := range costtables.Double {
		if d.Penalty < minDouble {
			minDouble = d.Penalty
		}
	}
	if p, ok := lookup(k1, k2); ok {
		s += (p - minDouble) * coef.DoubleMetric
	}

	ai, aj := int(k1), int(k2)
	if ai >= 48 {
		ai -= 47
	}
	if aj >= 48 {
		aj -= 47
	}
	fi, fj := costtables.Finger[ai], costtables.Finger[aj]
	if fi != 0 && fj != 0 && ((fi < 5 && fj >= 5) || (fj < 5 && fi >= 5)) {
		s += coef.HandAlternation
	}
	return s
}

// TestWordScoreMatchesSlowPath is property 7 / Scenario S1: WordScore must
// equal an independent, brute-force recomputation of the same quantity
// from the raw cost tables for a small fixed word.
func TestWordScoreMatchesSlowPath(t *testing.T) {
	coef := DefaultCoefficients()
	o := New(coef, nil)
	l := layout.QWERTY()
	word := charsOf("asdf")

	var want float32
	var k0, k1 byte
	for _, c2 := range word {
		k2 := l.CharToAction(c2)
		want += referenceDoubleScore(coef, k1, k2)
		if k0 != 0 && k1 != 0 && TripleFilter(k0, k1, k2) {
			for _, tr := range costtables.Triple {
				if tr.K1 == k0 && tr.K2 == k1 && tr.K3 == k2 {
					want += tr.Penalty * coef.TripleMetric
				} else if tr.K1 == k2 && tr.K2 == k1 && tr.K3 == k0 {
					want += (tr.Penalty + coef.ReversedTriple) * coef.TripleMetric
				}
			}
		}
		k0 = k1
		k1 = k2
	}

	got := o.WordScore(l, word)
	if got != want {
		t.Fatalf("WordScore = %v, want %v", got, want)
	}
}

func TestScoreSumsWeightedWordScores(t *testing.T) {
	coef := DefaultCoefficients()
	words := []Word{
		{Chars: charsOf("the"), Freq: 10},
		{Chars: charsOf("of"), Freq: 5},
	}
	o := New(coef, words)
	l := layout.QWERTY()

	want := o.WordScore(l, words[0].Chars)*words[0].Freq + o.WordScore(l, words[1].Chars)*words[1].Freq
	got := o.Score(l).Float64()
	if diff := got - float64(want); diff > 1e-2 || diff < -1e-2 {
		t.Fatalf("Score() = %v, want approximately %v", got, want)
	}
}

func TestFingerUsageSumsToTotalCharacters(t *testing.T) {
	coef := DefaultCoefficients()
	words := []Word{{Chars: charsOf("hello"), Freq: 3}}
	o := New(coef, words)
	l := layout.QWERTY()

	usage := o.FingerUsage(l)
	var total float32
	for _, u := range usage {
		total += u
	}
	want := float32(len(words[0].Chars)) * words[0].Freq
	if total != want {
		t.Fatalf("finger usage total = %v, want %v", total, want)
	}
}
