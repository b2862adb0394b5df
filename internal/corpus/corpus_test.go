package corpus

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mw8/white-keyboard-layout/internal/layout"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func decode(l byte) byte { return layout.ASCII(l) }

func charsToString(chars []byte) string {
	out := make([]byte, len(chars))
	for i, c := range chars {
		out[i] = decode(c)
	}
	return string(out)
}

func TestLoadTokenizesFreeTextAndFiltersByFrequency(t *testing.T) {
	dir := t.TempDir()
	// "hi" repeated enough times to clear MinWordFrequency (20), "lo" only once.
	var text string
	for i := 0; i < 25; i++ {
		text += "hi "
	}
	text += "lo"
	writeFile(t, dir, "sample.txt", text)

	words, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	found := false
	for _, w := range words {
		s := charsToString(w.Chars)
		if s == "lo" {
			t.Fatalf("word below MinWordFrequency must be filtered out, found %q with freq %v", s, w.Freq)
		}
		if s == "hi" {
			found = true
			if w.Freq != 25 {
				t.Errorf("hi frequency = %v, want 25", w.Freq)
			}
		}
	}
	if !found {
		t.Fatal("expected word 'hi' to survive the frequency filter")
	}
}

func TestLoadAppliesWflCoefficients(t *testing.T) {
	dir := t.TempDir()
	// Base frequency of 1000 scaled by corpus1Coefficient (1e-3) = 1.0, which
	// falls below MinWordFrequency and must be dropped.
	writeFile(t, dir, "corpus_1.wfl.txt", "ignored\t1000\n")
	// Base frequency of 1000 scaled by corpus2Coefficient (0.50) = 500,
	// which survives.
	writeFile(t, dir, "corpus_2.wfl.txt", "kept\t1000\n")

	words, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, w := range words {
		s := charsToString(w.Chars)
		if s == "ignored" {
			t.Fatalf("corpus_1.wfl.txt coefficient was not applied: %q survived with freq %v", s, w.Freq)
		}
		if s == "kept" && w.Freq != 500 {
			t.Errorf("corpus_2.wfl.txt coefficient mismatch: freq = %v, want 500", w.Freq)
		}
	}
}

func TestLoadRejectsNonASCII(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "héllo")
	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for a non-ASCII character")
	}
}

func TestLoadResultIsSortedDescending(t *testing.T) {
	dir := t.TempDir()
	var text string
	for i := 0; i < 30; i++ {
		text += "aa "
	}
	for i := 0; i < 100; i++ {
		text += "bb "
	}
	writeFile(t, dir, "sample.txt", text)

	words, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for i := 1; i < len(words); i++ {
		if words[i].Freq > words[i-1].Freq {
			t.Fatalf("words not sorted descending by frequency at index %d: %v > %v", i, words[i].Freq, words[i-1].Freq)
		}
	}
}

func TestLoadUsesCacheOnSecondCall(t *testing.T) {
	dir := t.TempDir()
	var text string
	for i := 0; i < 30; i++ {
		text += "zz "
	}
	writeFile(t, dir, "sample.txt", text)

	if _, err := Load(dir); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	cachePath := filepath.Join(dir, ".corpus_cache.json")
	if _, err := os.Stat(cachePath); err != nil {
		t.Fatalf("expected a cache file to be written: %v", err)
	}
	// Force the cache to be unambiguously newer than the source file,
	// independent of filesystem timestamp resolution.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(cachePath, future, future); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	// Corrupt the source file; since the cache is newer, Load must still
	// succeed by reading the cache rather than re-tokenizing.
	writeFile(t, dir, "sample.txt", "héllo")
	if _, err := Load(dir); err != nil {
		t.Fatalf("second Load should have used the cache and not re-read the corrupted source: %v", err)
	}
}
