package ga

import (
	"testing"

	"github.com/mw8/white-keyboard-layout/internal/layout"
	"github.com/mw8/white-keyboard-layout/internal/objective"
)

func TestGenomeMutatePreservesLayoutInvariants(t *testing.T) {
	words := []objective.Word{{Chars: []byte{1, 2, 3}, Freq: 10}}
	obj := objective.New(objective.DefaultCoefficients(), words)
	g, err := New(layout.White(), obj, 10, "0123456789", 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		g.Mutate(nil)
		if err := g.Layout.Validate(); err != nil {
			t.Fatalf("iteration %d: layout invalid after Mutate: %v", i, err)
		}
	}
}

func TestGenomeCloneIsIndependent(t *testing.T) {
	words := []objective.Word{{Chars: []byte{1, 2, 3}, Freq: 10}}
	obj := objective.New(objective.DefaultCoefficients(), words)
	g, err := New(layout.White(), obj, 10, "0123456789", 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	clone := g.Clone().(*Genome)
	clone.Mutate(nil)

	if g.Layout.String() == clone.Layout.String() {
		// A single swap is extremely unlikely to leave the layout string
		// unchanged; if it does, the mutation silently failed to apply.
		t.Fatal("cloning did not produce an independently mutable layout")
	}
	if _, err := g.Evaluate(); err != nil {
		t.Fatalf("original Evaluate failed: %v", err)
	}
	if _, err := clone.Evaluate(); err != nil {
		t.Fatalf("clone Evaluate failed: %v", err)
	}
}

func TestAcceptFuncRejectsUnknownPolicy(t *testing.T) {
	if _, err := AcceptFunc("not-a-real-policy"); err == nil {
		t.Fatal("expected an error for an unknown acceptance policy")
	}
}

func TestAcceptFuncAlwaysAccepts(t *testing.T) {
	accept, err := AcceptFunc("always")
	if err != nil {
		t.Fatalf("AcceptFunc failed: %v", err)
	}
	if p := accept(5, 10, 1.0, 100.0); p != 1.0 {
		t.Fatalf("always policy returned %v, want 1.0", p)
	}
}
