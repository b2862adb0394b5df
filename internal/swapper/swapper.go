// Package swapper implements the constrained-swap neighborhood the
// annealing driver explores: three disjoint swap classes that each
// preserve the structural invariants a usable layout must keep (letters
// stay paired on a key, frozen symbols never move, certain keys stay put),
// plus a short-term tabu list that keeps a just-swapped entity from being
// immediately swapped back.
package swapper

import (
	"fmt"
	"math/rand/v2"

	"github.com/mw8/white-keyboard-layout/internal/costtables"
	"github.com/mw8/white-keyboard-layout/internal/layout"
)

// Class identifies which of the three disjoint swap classes a tabu entry
// belongs to.
type Class uint8

const (
	// ClassNone marks an empty tabu slot.
	ClassNone Class = iota
	// ClassSymbol swaps which key two non-letter, non-frozen characters
	// are assigned to.
	ClassSymbol
	// ClassHome8K swaps the full symbol pair of two home-row keys.
	ClassHome8K
	// ClassLetter swaps the full symbol pair of two non-home letter keys.
	ClassLetter
)

func (c Class) String() string {
	switch c {
	case ClassSymbol:
		return "symbol"
	case ClassHome8K:
		return "home8k"
	case ClassLetter:
		return "letter"
	default:
		return "none"
	}
}

// excludedLetterKeys are letter keys that stay fixed even though they are
// outside the home row: 19 (left index, top letter row), 25 and 26 (right
// pinky, end of the top letter row) and 32 (right index, home row).
var excludedLetterKeys = map[uint8]bool{19: true, 25: true, 26: true, 32: true}

type tabuEntry struct {
	class Class
	value uint8 // a character number for ClassSymbol, a key number otherwise
}

// Proposer generates random layout mutations from the three swap classes
// and tracks a short-term tabu list so a freed-up entity isn't immediately
// chosen again.
type Proposer struct {
	rng *rand.Rand

	tabu      []tabuEntry
	iteration int

	symbolSwaps []uint8
	home8kSwaps []uint8
	letterSwaps []uint8
}

// isLetter reports whether ASCII byte c is a letter.
func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isFrozen(frozenSymbols string, charNum uint8) bool {
	c := layout.ASCII(charNum)
	for i := 0; i < len(frozenSymbols); i++ {
		if frozenSymbols[i] == c {
			return true
		}
	}
	return false
}

// New builds a Proposer for l with the given tabu length (number of
// recent swaps per side that stay off limits) and set of frozen symbols
// (ASCII characters that may never move; digits "0123456789" by default).
// rng may be nil, in which case a fixed-seed PCG source is used.
func New(l *layout.Layout, tabuLen int, frozenSymbols string, rng *rand.Rand) (*Proposer, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}

	var symbolSwaps []uint8
	for s := uint8(1); s < 95; s++ {
		if s >= 33 && s < 59 { // uppercase letters (character-number range)
			continue
		}
		if s >= 65 && s < 91 { // lowercase letters
			continue
		}
		if isFrozen(frozenSymbols, s) {
			continue
		}
		symbolSwaps = append(symbolSwaps, s)
	}
	if len(symbolSwaps) == 1 {
		return nil, fmt.Errorf("swapper: exactly 1 free symbol is not allowed")
	}

	var home8kSwaps []uint8
	for _, k := range costtables.HomeEight {
		s := l.ActionToChar(k)
		sShift := l.ActionToChar(k + 47)
		if !isFrozen(frozenSymbols, s) && !isFrozen(frozenSymbols, sShift) {
			home8kSwaps = append(home8kSwaps, k)
		}
	}
	if len(home8kSwaps) == 1 {
		return nil, fmt.Errorf("swapper: exactly 1 free home-row key is not allowed")
	}

	isHomeEight := func(k uint8) bool {
		for _, h := range costtables.HomeEight {
			if h == k {
				return true
			}
		}
		return false
	}
	var letterSwaps []uint8
	for k := uint8(14); k <= 47; k++ {
		s := l.ActionToChar(k)
		sShift := l.ActionToChar(k + 47)
		c := layout.ASCII(s)
		if isLetter(c) && !isFrozen(frozenSymbols, s) && !isFrozen(frozenSymbols, sShift) &&
			!isHomeEight(k) && !excludedLetterKeys[k] {
			letterSwaps = append(letterSwaps, k)
		}
	}
	if len(letterSwaps) == 1 {
		return nil, fmt.Errorf("swapper: exactly 1 free letter key is not allowed")
	}

	if tabuLen > 0 && len(symbolSwaps)+len(home8kSwaps)+len(letterSwaps) < 2*tabuLen {
		return nil, fmt.Errorf("swapper: tabu length %d exceeds the number of possible swaps", tabuLen)
	}

	return &Proposer{
		rng:         rng,
		tabu:        make([]tabuEntry, 2*tabuLen),
		symbolSwaps: symbolSwaps,
		home8kSwaps: home8kSwaps,
		letterSwaps: letterSwaps,
	}, nil
}

// release returns an expiring tabu entry's value to its class's free pool.
func (p *Proposer) release(e tabuEntry) {
	switch e.class {
	case ClassSymbol:
		p.symbolSwaps = append(p.symbolSwaps, e.value)
	case ClassHome8K:
		p.home8kSwaps = append(p.home8kSwaps, e.value)
	case ClassLetter:
		p.letterSwaps = append(p.letterSwaps, e.value)
	}
}

// removeAt removes the element at index i from s, preserving neither
// order nor requiring it to: the pools are unordered sets.
func removeAt(s []uint8, i int) []uint8 {
	last := len(s) - 1
	s[i] = s[last]
	return s[:last]
}

// pickPair draws two distinct indices into a pool of size n uniformly at
// random (n > 1 required), biasing i2 away from i1 exactly as the
// reference implementation does: sample i2 from [0, n-1) and shift it past
// i1 if it would otherwise collide.
func (p *Proposer) pickPair(n int) (int, int) {
	i1 := p.rng.IntN(n)
	i2 := p.rng.IntN(n - 1)
	if i1 <= i2 {
		i2++
	}
	return i1, i2
}

// Swap performs one random swap from the combined neighborhood (weighted
// by each class's current free-pool size) on l in place, returning which
// class was used for diagnostics. It panics if every class's free pool has
// fewer than two members, which should never happen once New has
// validated the tabu length against the total pool size.
func (p *Proposer) Swap(l *layout.Layout) Class {
	tabuLen := len(p.tabu) / 2
	if tabuLen > 0 {
		p.release(p.tabu[2*p.iteration])
		p.release(p.tabu[2*p.iteration+1])
	}

	symbolLen, home8kLen, letterLen := len(p.symbolSwaps), len(p.home8kSwaps), len(p.letterSwaps)
	if symbolLen <= 1 {
		symbolLen = 0
	}
	if home8kLen <= 1 {
		home8kLen = 0
	}
	if letterLen <= 1 {
		letterLen = 0
	}
	numSwaps := symbolLen + home8kLen + letterLen
	if numSwaps == 0 {
		panic("swapper: no eligible swap classes remain")
	}

	i1 := p.rng.IntN(numSwaps)
	var class Class
	var a, b uint8

	switch {
	case i1 < symbolLen:
		class = ClassSymbol
		j1, j2 := p.pickPair(symbolLen)
		a, b = p.symbolSwaps[j1], p.symbolSwaps[j2]
		l.SwapChars(a, b)
		p.symbolSwaps = removeAt(p.symbolSwaps, max(j1, j2))
		p.symbolSwaps = removeAt(p.symbolSwaps, min(j1, j2))

	case i1 < symbolLen+home8kLen:
		class = ClassHome8K
		j1, j2 := p.pickPair(home8kLen)
		a, b = p.home8kSwaps[j1], p.home8kSwaps[j2]
		l.SwapKeys(a, b)
		p.home8kSwaps = removeAt(p.home8kSwaps, max(j1, j2))
		p.home8kSwaps = removeAt(p.home8kSwaps, min(j1, j2))

	default:
		class = ClassLetter
		j1, j2 := p.pickPair(letterLen)
		a, b = p.letterSwaps[j1], p.letterSwaps[j2]
		l.SwapKeys(a, b)
		p.letterSwaps = removeAt(p.letterSwaps, max(j1, j2))
		p.letterSwaps = removeAt(p.letterSwaps, min(j1, j2))
	}

	if tabuLen > 0 {
		p.tabu[2*p.iteration] = tabuEntry{class, a}
		p.tabu[2*p.iteration+1] = tabuEntry{class, b}
		p.iteration = (p.iteration + 1) % tabuLen
	}
	return class
}
