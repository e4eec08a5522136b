package sampling

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
	"github.com/vedantwpatil/color-picker/internal/colorx"
	"github.com/vedantwpatil/color-picker/internal/screen"
)

var (
	// ErrNoDisplay is returned when there is no primary display to sample from.
	ErrNoDisplay = screen.ErrNoDisplay
	// ErrCapture wraps failures of the screen capture call, most often a
	// missing screen-recording permission or an off-screen point.
	ErrCapture = errors.New("screen capture failed")
	// ErrDecode is returned when the captured bitmap holds no usable pixel.
	ErrDecode = errors.New("could not decode captured pixel")
)

// Capturer grabs a rectangle of the screen in top-left global coordinates.
type Capturer interface {
	CaptureRect(rect image.Rectangle) (image.Image, error)
}

// ScreenCapturer captures through the platform screenshot API.
type ScreenCapturer struct{}

func (ScreenCapturer) CaptureRect(rect image.Rectangle) (image.Image, error) {
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, nil
	}
	return img, nil
}

// Sampler reads the color of a single on-screen pixel.
type Sampler struct {
	display  screen.Display
	capturer Capturer
}

// NewSampler returns a Sampler for the primary display.
func NewSampler() *Sampler {
	return NewSamplerWith(screen.Primary{}, ScreenCapturer{})
}

// NewSamplerWith returns a Sampler using the given display and capturer.
func NewSamplerWith(display screen.Display, capturer Capturer) *Sampler {
	return &Sampler{display: display, capturer: capturer}
}

// Sample returns the color at p, given in bottom-left screen coordinates.
// It reports false instead of an error so callers can keep their last color.
func (s *Sampler) Sample(p screen.Point) (colorx.Color, bool) {
	c, err := s.SampleErr(p)
	return c, err == nil
}

// SampleErr is Sample with the failure reason.
func (s *Sampler) SampleErr(p screen.Point) (colorx.Color, error) {
	bounds, err := s.display.Bounds()
	if err != nil {
		return colorx.Color{}, err
	}

	at := screen.Flip(p, float64(bounds.Dy())).Pixel()
	rect := image.Rectangle{Min: at, Max: at.Add(image.Pt(1, 1))}

	img, err := s.capturer.CaptureRect(rect)
	if err != nil {
		return colorx.Color{}, fmt.Errorf("%w at %v: %v", ErrCapture, at, err)
	}
	return decode(img)
}

func decode(img image.Image) (colorx.Color, error) {
	if img == nil {
		return colorx.Color{}, ErrDecode
	}
	b := img.Bounds()
	if b.Empty() {
		return colorx.Color{}, ErrDecode
	}
	return colorx.FromColor(img.At(b.Min.X, b.Min.Y)), nil
}
