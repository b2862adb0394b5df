package viz

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mw8/white-keyboard-layout/internal/layout"
)

func TestRenderProducesValidPNGOfExpectedSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qwerty.png")
	if err := Render(layout.QWERTY(), path); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening rendered PNG: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding rendered PNG: %v", err)
	}

	wantWidth, wantHeight := imageSize()
	bounds := img.Bounds()
	if bounds.Dx() != wantWidth || bounds.Dy() != wantHeight {
		t.Fatalf("image size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantWidth, wantHeight)
	}
}

func TestKeyboardSpecsCoverEveryLayoutKey(t *testing.T) {
	seen := make(map[int]bool)
	for _, spec := range keyboardSpecs() {
		if spec.key < 0 {
			continue
		}
		if seen[spec.key] {
			t.Fatalf("key index %d appears more than once", spec.key)
		}
		seen[spec.key] = true
	}
	for i := 0; i < 47; i++ {
		if !seen[i] {
			t.Errorf("key index %d is never drawn", i)
		}
	}
}
