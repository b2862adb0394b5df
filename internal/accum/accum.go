// Package accum implements the extended-precision scalar accumulator used
// to sum per-word layout scores across an entire corpus without losing
// precision to float32 rounding once the running total grows large.
package accum

// Score represents the value i*1000 + f. Keeping the integer and
// fractional parts separate lets the accumulator track sums far larger
// than float32 can represent exactly, while f itself never drifts outside
// [-1000, 1000], so individual additions stay as precise as float32 allows.
type Score struct {
	I int32
	F float32
}

// Zero is the additive identity.
var Zero = Score{}

// Float64 returns the accumulator's value as a float64, for display and for
// comparisons against plain numeric thresholds.
func (s Score) Float64() float64 {
	return float64(s.I)*1000.0 + float64(s.F)
}

// Add returns the sum of two accumulators, renormalizing so F stays within
// [-1000, 1000].
func (s Score) Add(other Score) Score {
	newI := s.I + other.I
	newF := s.F + other.F
	for newF > 1000.0 {
		newI++
		newF -= 1000.0
	}
	for newF < -1000.0 {
		newI--
		newF += 1000.0
	}
	return Score{I: newI, F: newF}
}

// AddF32 adds a single float32 addend in place, renormalizing once.
func (s *Score) AddF32(addend float32) {
	s.F += addend
	if s.F > 1000.0 {
		dI := int32(s.F / 1000.0)
		s.I += dI
		s.F -= float32(dI) * 1000.0
		return
	}
	if s.F < -1000.0 {
		dI := int32(s.F / 1000.0)
		s.I += dI
		s.F -= float32(dI) * 1000.0
	}
}

// Equal reports whether two scores represent the same value, accounting for
// the fact that a carry of exactly 1000 into or out of F is equivalent to a
// unit change in I.
func (s Score) Equal(other Score) bool {
	return (s.I == other.I && s.F == other.F) ||
		(s.I == other.I-1 && s.F == other.F+1000.0) ||
		(s.I == other.I+1 && s.F == other.F-1000.0)
}

// Less reports whether s is strictly less than other, again accounting for
// the carry-equivalence across the integer boundary.
func (s Score) Less(other Score) bool {
	return (s.I < other.I-1) ||
		(s.I == other.I-1 && s.F-1000.0 < other.F) ||
		(s.I == other.I && s.F < other.F) ||
		(s.I == other.I+1 && s.F+1000.0 < other.F)
}

// Compare orders two scores, returning -1, 0 or 1, following the same
// carry-aware rule as Less and Equal.
func (s Score) Compare(other Score) int {
	if s.Equal(other) {
		return 0
	}
	if s.Less(other) {
		return -1
	}
	return 1
}
