// Package objective implements the layout cost functional: a one-shot
// precomputation step that fuses the per-key, per-key-pair and
// per-key-triple penalties from package costtables into a dense lookup
// table, plus the per-word and per-layout scoring functions built on top
// of it.
package objective

import (
	"github.com/mw8/white-keyboard-layout/internal/accum"
	"github.com/mw8/white-keyboard-layout/internal/costtables"
	"github.com/mw8/white-keyboard-layout/internal/layout"
)

// Coefficients are the tunable weights the objective function combines the
// raw cost tables with. Defaults match the author's original hand-tuned
// values.
type Coefficients struct {
	SingleMetric        float32
	DoubleMetric        float32
	TripleMetric        float32
	ShiftHoldingPenalty float32
	ReversedTriple      float32
	HandAlternation     float32
}

// DefaultCoefficients returns the coefficients used by the reference
// implementation.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		SingleMetric:        1.00,
		DoubleMetric:        1.00,
		TripleMetric:        1.00,
		ShiftHoldingPenalty: 1.50,
		ReversedTriple:      0.25,
		HandAlternation:     0.20,
	}
}

// Word is one corpus entry: a sequence of character numbers (ASCII - 32,
// so space is 0) and its weight.
type Word struct {
	Chars []byte
	Freq  float32
}

const actionSpan = 95 // action numbers 0..94

type tripleKey struct{ k0, k1, k2 byte }

// Objective is the precomputed cost functional for a fixed set of cost
// tables, coefficients and corpus. Building it does the O(95^2 + |double|
// + |triple|) work once; scoring a layout afterwards touches only the
// dense table and the corpus.
type Objective struct {
	coef          Coefficients
	doubleScores  [actionSpan * actionSpan]float32
	tripleScores  map[tripleKey]float32
	words         []Word
}

// New builds an Objective from package costtables' tables and the given
// coefficients and corpus words. The corpus is copied by reference; Score iterates it on
// every call rather than caching since the driver scores a freshly mutated
// layout on nearly every iteration, making a per-layout cache useless.
func New(coef Coefficients, words []Word) *Objective {
	o := &Objective{coef: coef, words: words}
	o.precompute()
	return o
}

// precompute fills doubleScores and tripleScores exactly as the reference
// LayoutObjectiveFunction::new does: single-key penalties (shifted by
// their minimum so the cheapest key costs zero) broadcast across the
// table, shift-holding penalty added to every shifted action, sparse
// double-key penalties (also shifted by their minimum) added on top in the
// one direction the table lists them, a hand-alternation penalty added
// symmetrically across all action pairs, and the sparse triple-key table
// built with a reversed-direction surcharge for the opposite ordering.
func (o *Objective) precompute() {
	minSingle := costtables.Single[0]
	for _, v := range costtables.Single {
		if v < minSingle {
			minSingle = v
		}
	}

	for i := 0; i < actionSpan; i++ {
		for j := 0; j < 48; j++ {
			if j != i {
				s := (costtables.Single[j] - minSingle) * o.coef.SingleMetric
				o.doubleScores[i*actionSpan+j] = s
			}
		}
		for j := 0; j < 47; j++ {
			if j+48 != i {
				s := (costtables.Single[j+1] - minSingle) * o.coef.SingleMetric
				o.doubleScores[i*actionSpan+j+48] = s + o.coef.ShiftHoldingPenalty
			}
		}
	}

	minDouble := costtables.Double[0].Penalty
	for _, d := range costtables.Double {
		if d.Penalty < minDouble {
			minDouble = d.Penalty
		}
	}
	for _, d := range costtables.Double {
		i, j := int(d.K1), int(d.K2)
		s := (d.Penalty - minDouble) * o.coef.DoubleMetric
		o.doubleScores[i*actionSpan+j] += s
		o.doubleScores[i*actionSpan+j+47] += s
		o.doubleScores[(i+47)*actionSpan+j] += s
		o.doubleScores[(i+47)*actionSpan+j+47] += s
	}

	for i := 0; i < actionSpan; i++ {
		for j := 0; j < actionSpan; j++ {
			ai, aj := i, j
			if ai >= 48 {
				ai -= 47
			}
			if aj >= 48 {
				aj -= 47
			}
			fi, fj := costtables.Finger[ai], costtables.Finger[aj]
			if fi != 0 && fj != 0 && ((fi < 5 && fj >= 5) || (fj < 5 && fi >= 5)) {
				o.doubleScores[i*actionSpan+j] += o.coef.HandAlternation
			}
		}
	}

	o.tripleScores = make(map[tripleKey]float32, 2*len(costtables.Triple))
	for _, tr := range costtables.Triple {
		s := tr.Penalty * o.coef.TripleMetric
		o.tripleScores[tripleKey{tr.K1, tr.K2, tr.K3}] = s
		o.tripleScores[tripleKey{tr.K3, tr.K2, tr.K1}] = s + o.coef.ReversedTriple*o.coef.TripleMetric
	}
}

// TripleFilter is a constant-time bloom-style superset test (false
// positives allowed, false negatives never) used to avoid a map lookup for
// the common case where no triple-key penalty could possibly apply.
func TripleFilter(k0, k1, k2 byte) bool {
	d := 2*int(k1) - int(k0) - int(k2)
	return (-1 <= d && d <= 1) || (-13 <= d && d <= -10) || d == -26
}

// WordScore returns the cost of typing word (a sequence of character
// numbers) under l, summing the double-key term for every consecutive
// action pair and the triple-key term for every consecutive action triple
// that TripleFilter and the sparse table both allow.
func (o *Objective) WordScore(l *layout.Layout, word []byte) float32 {
	var score float32
	var k0, k1 byte
	for _, c2 := range word {
		k2 := l.CharToAction(c2)
		score += o.doubleScores[int(k1)*actionSpan+int(k2)]
		if k0 != 0 && k1 != 0 && TripleFilter(k0, k1, k2) {
			if ts, ok := o.tripleScores[tripleKey{k0, k1, k2}]; ok {
				score += ts
			}
		}
		k0 = k1
		k1 = k2
	}
	return score
}

// Score sums WordScore over every corpus word weighted by its frequency,
// accumulated in extended precision so that corpora with tens of thousands
// of distinct words don't lose low-order contributions to float32
// rounding.
func (o *Objective) Score(l *layout.Layout) accum.Score {
	var total accum.Score
	for _, w := range o.words {
		total.AddF32(o.WordScore(l, w.Chars) * w.Freq)
	}
	return total
}

// Words exposes the loaded corpus entries, e.g. for FingerUsage reporting.
func (o *Objective) Words() []Word { return o.words }

// FingerUsage returns, for each finger (0 = thumb, 1-8 = left pinky through
// right pinky), the frequency-weighted count of characters typed with it
// under l. Mirrors print_layout_finger_usage from the reference tool.
func (o *Objective) FingerUsage(l *layout.Layout) [9]float32 {
	var usage [9]float32
	for _, w := range o.words {
		for _, c := range w.Chars {
			k := l.CharToAction(c)
			i := int(k)
			if i >= 48 {
				i -= 47
			}
			usage[costtables.Finger[i]] += w.Freq
		}
	}
	return usage
}
