// Package viz renders a Layout as a PNG keyboard diagram: one rectangle per
// key, the unshifted/shifted symbol pair (or the single letter, for letter
// keys) drawn centered on top.
//
// Glyph compositing here uses the standard library's src-over alpha blend
// (via golang.org/x/image/font.Drawer, which itself draws through
// image/draw). The reference tool's blend_pixel used a blend factor of
// 1.032 instead of 1.0, which over-brightens every partially transparent
// glyph pixel; that is not reproduced here.
package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mw8/white-keyboard-layout/internal/layout"
)

// KeySize is the edge length, in pixels, of a standard (1-unit) key.
const KeySize = 40

// keySpec is one rectangle of the keyboard diagram: its top-left corner,
// width, and which layout key (0-46) it represents, or -1 for a
// non-character key (backspace, tab, caps lock, enter, shift) that is
// drawn as a blank rectangle.
type keySpec struct {
	x, y, w int
	key     int // -1 for a blank key
}

// keyboardSpecs lays out the 4-row ANSI-ish grid the reference diagrams
// drew: a 13-key top row plus backspace, a tab key plus 13 keys, caps lock
// plus 11 keys plus enter, and left shift plus 10 keys plus right shift.
func keyboardSpecs() []keySpec {
	ks0 := KeySize
	ks1 := ks0 * 3 / 2  // backspace, tab
	ks2 := ks0 * 7 / 4  // caps lock, enter
	ks3 := ks0 * 9 / 4  // shift
	var specs []keySpec

	for i := 0; i < 13; i++ {
		specs = append(specs, keySpec{i * ks0, 0, ks0, i})
	}
	specs = append(specs, keySpec{13 * ks0, 0, ks1, -1}) // backspace

	specs = append(specs, keySpec{0, ks0, ks1, -1}) // tab
	for i := 0; i < 13; i++ {
		specs = append(specs, keySpec{ks1 + i*ks0, ks0, ks0, i + 13})
	}

	specs = append(specs, keySpec{0, 2 * ks0, ks2, -1}) // caps lock
	for i := 0; i < 11; i++ {
		specs = append(specs, keySpec{ks2 + i*ks0, 2 * ks0, ks0, i + 26})
	}
	specs = append(specs, keySpec{ks2 + 11*ks0, 2 * ks0, ks2, -1}) // enter

	specs = append(specs, keySpec{0, 3 * ks0, ks3, -1}) // left shift
	for i := 0; i < 10; i++ {
		specs = append(specs, keySpec{ks3 + i*ks0, 3 * ks0, ks0, i + 37})
	}
	specs = append(specs, keySpec{ks3 + 10*ks0, 3 * ks0, ks3, -1}) // right shift

	return specs
}

func imageSize() (width, height int) {
	ks0 := KeySize
	return 13*ks0 + (3*ks0)/2, 4 * ks0
}

var (
	keyFill   = color.RGBA{0xF4, 0xF4, 0xF4, 0xFF}
	keyBorder = color.RGBA{0x20, 0x20, 0x20, 0xFF}
	textColor = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

func isLowerLetter(c byte) bool { return c >= 'a' && c <= 'z' }

// Render draws l as a keyboard diagram and writes it as a PNG to path.
func Render(l *layout.Layout, path string) error {
	width, height := imageSize()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for _, spec := range keyboardSpecs() {
		drawKeyBackground(img, spec)
		drawKeyBorder(img, spec)
		if spec.key < 0 {
			continue
		}
		drawKeyCap(img, face, spec, l)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("viz: encoding %s: %w", path, err)
	}
	return nil
}

func drawKeyBackground(img *image.RGBA, spec keySpec) {
	inset := 2
	r := image.Rect(spec.x+inset, spec.y+inset, spec.x+spec.w-inset, spec.y+KeySize-inset)
	draw.Draw(img, r, &image.Uniform{C: keyFill}, image.Point{}, draw.Src)
}

func drawKeyBorder(img *image.RGBA, spec keySpec) {
	x0, y0, x1, y1 := spec.x+1, spec.y+1, spec.x+spec.w-2, spec.y+KeySize-2
	for x := x0; x <= x1; x++ {
		img.Set(x, y0, keyBorder)
		img.Set(x, y1, keyBorder)
	}
	for y := y0; y <= y1; y++ {
		img.Set(x0, y, keyBorder)
		img.Set(x1, y, keyBorder)
	}
}

// drawKeyCap draws the key's symbol(s) centered in its rectangle: a single
// uppercase letter for letter keys, or the shifted symbol above the
// unshifted symbol for everything else.
func drawKeyCap(img *image.RGBA, face font.Face, spec keySpec, l *layout.Layout) {
	action := byte(spec.key + 1)
	unshifted := layout.ASCII(l.ActionToChar(action))
	shifted := layout.ASCII(l.ActionToChar(action + 47))

	centerX := spec.x + spec.w/2

	if isLowerLetter(unshifted) {
		drawCenteredText(img, face, string(shifted), centerX, spec.y+KeySize/2+5)
		return
	}
	drawCenteredText(img, face, string(shifted), centerX, spec.y+KeySize/3+4)
	drawCenteredText(img, face, string(unshifted), centerX, spec.y+2*KeySize/3+4)
}

func drawCenteredText(img *image.RGBA, face font.Face, s string, centerX, baselineY int) {
	width := font.MeasureString(face, s)
	x := centerX - width.Round()/2

	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: textColor},
		Face: face,
		Dot:  fixed.P(x, baselineY),
	}
	d.DrawString(s)
}
