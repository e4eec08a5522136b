package screen

import (
	"errors"
	"image"
	"math"

	"github.com/kbinani/screenshot"
)

// ErrNoDisplay is returned when no active display can be found.
var ErrNoDisplay = errors.New("no primary display available")

// Point is a location in global screen space. Tracker output uses a
// bottom-left origin; capture coordinates use a top-left origin.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Add returns the sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Subtract returns p minus o.
func (p Point) Subtract(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Pixel floors the point to whole-pixel coordinates.
func (p Point) Pixel() image.Point {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Flip mirrors p vertically within a screen of the given height. It converts
// between bottom-left and top-left origins and is its own inverse.
func Flip(p Point, height float64) Point {
	return Point{X: p.X, Y: height - p.Y}
}

// Display reports the bounds of the primary display in global coordinates.
type Display interface {
	Bounds() (image.Rectangle, error)
}

// Primary is the Display backed by the platform's first active display.
type Primary struct{}

func (Primary) Bounds() (image.Rectangle, error) {
	if screenshot.NumActiveDisplays() < 1 {
		return image.Rectangle{}, ErrNoDisplay
	}
	b := screenshot.GetDisplayBounds(0)
	if b.Empty() {
		return image.Rectangle{}, ErrNoDisplay
	}
	return b, nil
}

// Height returns the primary display height in points.
func Height(d Display) (float64, error) {
	b, err := d.Bounds()
	if err != nil {
		return 0, err
	}
	return float64(b.Dy()), nil
}

// Clamp keeps p inside r, leaving room for a box of the given size.
func Clamp(p Point, r image.Rectangle, size Point) Point {
	maxX := float64(r.Max.X) - size.X
	maxY := float64(r.Max.Y) - size.Y
	p.X = math.Max(float64(r.Min.X), math.Min(p.X, maxX))
	p.Y = math.Max(float64(r.Min.Y), math.Min(p.Y, maxY))
	return p
}
