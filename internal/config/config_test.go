package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.cfg"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("Load() with a missing file = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") did not return defaults")
	}
}

func TestLoadOverridesAndIgnoresCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.cfg")
	content := "# a comment\n\nHAND_ALTERNATION = 0.42\nNUM_TABU_SWAPS = 7\nCORPUS_DIR = /tmp/corpus\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Coefficients.HandAlternation != 0.42 {
		t.Errorf("HandAlternation = %v, want 0.42", cfg.Coefficients.HandAlternation)
	}
	if cfg.Anneal.TabuLen != 7 {
		t.Errorf("TabuLen = %v, want 7", cfg.Anneal.TabuLen)
	}
	if cfg.CorpusDir != "/tmp/corpus" {
		t.Errorf("CorpusDir = %q, want /tmp/corpus", cfg.CorpusDir)
	}
	// Everything else should remain at its default value.
	want := Default()
	if cfg.Coefficients.SingleMetric != want.Coefficients.SingleMetric {
		t.Errorf("SingleMetric was altered unexpectedly: %v", cfg.Coefficients.SingleMetric)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.cfg")
	if err := os.WriteFile(path, []byte("NOT_A_REAL_KEY = 1\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unrecognized key")
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.cfg")
	if err := os.WriteFile(path, []byte("this line has no equals sign\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}
