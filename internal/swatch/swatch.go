// Package swatch renders a sampled color as a labelled PNG tile.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/vedantwpatil/color-picker/internal/colorx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MaxSize is the largest tile edge Encode and WriteFile accept.
const MaxSize = 4096

var ErrSize = errors.New("swatch size out of range")

// CheckSize reports whether size is a usable tile edge.
func CheckSize(size int) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrSize, size, MaxSize)
	}
	return nil
}

// basicfont.Face7x13 glyph metrics.
const (
	glyphWidth  = 7
	glyphAscent = 11
	glyphHeight = 13
)

// Render returns a size x size tile filled with c. The hex label is drawn
// centered in a contrasting color when it fits. size is not checked.
func Render(c colorx.Color, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	label := c.Hex()
	textWidth := len(label) * glyphWidth
	if textWidth+4 > size || glyphHeight+4 > size {
		return img
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.Contrast()),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I((size - textWidth) / 2),
			Y: fixed.I((size-glyphHeight)/2 + glyphAscent),
		},
	}
	d.DrawString(label)
	return img
}

// Encode writes the tile as PNG.
func Encode(w io.Writer, c colorx.Color, size int) error {
	if err := CheckSize(size); err != nil {
		return err
	}
	if err := png.Encode(w, Render(c, size)); err != nil {
		return fmt.Errorf("encode swatch: %w", err)
	}
	return nil
}

// WriteFile renders the tile to path.
func WriteFile(path string, c colorx.Color, size int) error {
	if err := CheckSize(size); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create swatch file: %w", err)
	}
	if err := Encode(f, c, size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
