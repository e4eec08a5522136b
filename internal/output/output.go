package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/vedantwpatil/color-picker/internal/colorx"
	"github.com/vedantwpatil/color-picker/internal/picker"
	"github.com/vedantwpatil/color-picker/internal/screen"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// Sample is one emitted color record.
type Sample struct {
	X       float64       `yaml:"x"                 json:"x"`
	Y       float64       `yaml:"y"                 json:"y"`
	Hex     string        `yaml:"hex,omitempty"     json:"hex,omitempty"`
	RGB     []int         `yaml:"rgb,flow,omitempty" json:"rgb,omitempty"`
	HSL     []float64     `yaml:"hsl,flow,omitempty" json:"hsl,omitempty"`
	Tooltip *screen.Point `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`
	Picked  bool          `yaml:"picked,omitempty"  json:"picked,omitempty"`
	TS      int64         `yaml:"ts"                json:"ts"`
}

// NewSample builds a record for a color at p. Hue is in degrees, saturation
// and lightness in percent, all rounded to one decimal.
func NewSample(p screen.Point, c colorx.Color, at time.Time) Sample {
	h, s, l := c.HSL()
	return Sample{
		X:   p.X,
		Y:   p.Y,
		Hex: c.Hex(),
		RGB: []int{int(c.R), int(c.G), int(c.B)},
		HSL: []float64{round1(h), round1(s * 100), round1(l * 100)},
		TS:  at.UnixMilli(),
	}
}

// FromSnapshot builds a record from picker state. A snapshot without a color
// yields a record with coordinates only.
func FromSnapshot(snap picker.Snapshot, at time.Time) Sample {
	var s Sample
	if snap.HasColor {
		s = NewSample(snap.Point, snap.Color, at)
	} else {
		s = Sample{X: snap.Point.X, Y: snap.Point.Y, TS: at.UnixMilli()}
	}
	tip := snap.Tooltip
	s.Tooltip = &tip
	s.Picked = snap.Picked
	return s
}

// Printer writes records to w in one format.
type Printer struct {
	w      io.Writer
	format Format
	pretty bool
	count  int
}

func NewPrinter(w io.Writer, format Format, pretty bool) *Printer {
	return &Printer{w: w, format: format, pretty: pretty}
}

// Print serializes v. JSON records are one per line unless pretty; YAML
// records after the first are preceded by a document marker.
func (p *Printer) Print(v interface{}) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		if p.pretty {
			enc.SetIndent("", "  ")
		}
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		if p.count > 0 {
			b = append([]byte("---\n"), b...)
		}
		p.count++
		_, err = p.w.Write(b)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

// Marshal returns v as YAML or JSON text.
func Marshal(v interface{}, format Format) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("json encode: %w", err)
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("yaml encode: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
