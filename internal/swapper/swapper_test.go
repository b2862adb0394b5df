package swapper

import (
	"math/rand/v2"
	"testing"

	"github.com/mw8/white-keyboard-layout/internal/layout"
)

func newTestProposer(t *testing.T, tabuLen int) (*Proposer, *layout.Layout) {
	t.Helper()
	l := layout.White()
	p, err := New(l, tabuLen, "0123456789", rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p, l
}

// TestSwapPreservesLayoutInvariants covers every swap class many times and
// checks the layout remains well-formed after each mutation (property:
// every swap class is structure-preserving).
func TestSwapPreservesLayoutInvariants(t *testing.T) {
	p, l := newTestProposer(t, 10)
	seenClasses := map[Class]bool{}
	for i := 0; i < 2000; i++ {
		class := p.Swap(l)
		seenClasses[class] = true
		if err := l.Validate(); err != nil {
			t.Fatalf("iteration %d: layout invalid after a %s swap: %v", i, class, err)
		}
	}
	for _, want := range []Class{ClassSymbol, ClassHome8K, ClassLetter} {
		if !seenClasses[want] {
			t.Errorf("never exercised swap class %s in 2000 iterations", want)
		}
	}
}

// TestFrozenSymbolsNeverMove is a core invariant: digits (the default
// frozen set) must stay on their original key throughout optimization.
func TestFrozenSymbolsNeverMove(t *testing.T) {
	p, l := newTestProposer(t, 10)
	for i := 0; i < 500; i++ {
		p.Swap(l)
	}
	orig := layout.White()
	for _, d := range "0123456789" {
		c := layout.CharNumber(byte(d))
		if l.CharToAction(c) != orig.CharToAction(c) {
			t.Errorf("frozen symbol %q moved from action %d to %d", d, orig.CharToAction(c), l.CharToAction(c))
		}
	}
}

func TestLetterPairsStayTogether(t *testing.T) {
	p, l := newTestProposer(t, 10)
	for i := 0; i < 500; i++ {
		p.Swap(l)
	}
	for c := byte('a'); c <= 'z'; c++ {
		lower := l.CharToAction(layout.CharNumber(c))
		upper := l.CharToAction(layout.CharNumber(c - 32))
		if lower > 47 {
			t.Errorf("lowercase %q ended up on a shifted action %d", c, lower)
		}
		if upper <= 47 {
			t.Errorf("uppercase %q ended up on an unshifted action %d", c-32, upper)
		}
		if lower != upper-47 {
			t.Errorf("letter pair %q/%q is not on the same key: %d vs %d", c, c-32, lower, upper-47)
		}
	}
}

func TestTabuPreventsImmediateUndo(t *testing.T) {
	p, l := newTestProposer(t, 5)
	before := l.Clone().String()
	p.Swap(l)
	afterOne := l.String()
	if afterOne == before {
		t.Fatal("a swap should change the layout string")
	}
	// Run a handful more swaps; none should be able to restore the exact
	// original string while the first swap's participants are still tabu.
	for i := 0; i < 3; i++ {
		p.Swap(l)
		if l.String() == before {
			t.Fatalf("layout returned to its original state within the tabu window at iteration %d", i)
		}
	}
}

func TestNewRejectsSingleFreeSymbol(t *testing.T) {
	l := layout.White()
	// Freeze every non-letter character except one, leaving exactly one
	// free symbol, which New must reject.
	var frozen []byte
	kept := false
	for ascii := byte(0x21); ascii <= 0x7E; ascii++ {
		if isLetter(ascii) {
			continue
		}
		if !kept {
			kept = true
			continue
		}
		frozen = append(frozen, ascii)
	}
	_, err := New(l, 0, string(frozen), nil)
	if err == nil {
		t.Fatal("expected an error when only one free symbol remains")
	}
}
