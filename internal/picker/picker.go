// Package picker holds the presentation state shared by the terminal panel
// and the watch stream. A Picker is not safe for concurrent use: every method
// must be called from the goroutine that owns the UI loop.
package picker

import (
	"image"

	"github.com/vedantwpatil/color-picker/internal/colorx"
	"github.com/vedantwpatil/color-picker/internal/config"
	"github.com/vedantwpatil/color-picker/internal/screen"
	"github.com/vedantwpatil/color-picker/internal/tracking"
)

type State int

const (
	Idle State = iota
	Tracking
)

func (s State) String() string {
	if s == Tracking {
		return "tracking"
	}
	return "idle"
}

// Tracker is the subset of tracking.Tracker the picker drives. Start
// returns the session that delivered events carry.
type Tracker interface {
	Start(tracking.Handler) uint64
	Stop()
}

// Sampler returns the color at a bottom-left screen point.
type Sampler interface {
	Sample(screen.Point) (colorx.Color, bool)
}

// Snapshot is what a presentation shows after an update.
type Snapshot struct {
	State    State
	Point    screen.Point
	Color    colorx.Color
	HasColor bool
	// Tooltip is the bottom-left corner of the floating label.
	Tooltip screen.Point
	// Picked is set when a click pinned the color and stopped tracking.
	Picked bool
}

type Picker struct {
	tracker Tracker
	sampler Sampler
	display screen.Display

	offset      screen.Point
	tooltipSize screen.Point
	pickOnClick bool

	session uint64
	snap    Snapshot
}

func New(cfg *config.Config, tracker Tracker, sampler Sampler, display screen.Display) *Picker {
	return &Picker{
		tracker:     tracker,
		sampler:     sampler,
		display:     display,
		offset:      screen.Point{X: cfg.Tooltip.OffsetX, Y: cfg.Tooltip.OffsetY},
		tooltipSize: screen.Point{X: cfg.Tooltip.Width, Y: cfg.Tooltip.Height},
		pickOnClick: cfg.Tracking.PickOnClick,
	}
}

// Activate moves Idle to Tracking. deliver must forward events back into
// the owning loop, which then calls Handle. Activating twice swaps the
// delivery function without a second subscription.
func (p *Picker) Activate(deliver tracking.Handler) {
	p.session = p.tracker.Start(deliver)
	p.snap.State = Tracking
	p.snap.Picked = false
}

// Deactivate moves Tracking to Idle. Calling it while idle does nothing.
func (p *Picker) Deactivate() {
	if p.snap.State == Idle {
		return
	}
	p.tracker.Stop()
	p.snap.State = Idle
}

// Toggle flips between Idle and Tracking.
func (p *Picker) Toggle(deliver tracking.Handler) {
	if p.snap.State == Tracking {
		p.Deactivate()
		return
	}
	p.Activate(deliver)
}

// Handle applies a tracker event. Events arriving while idle, or left over
// from an earlier session, are ignored and reported as unchanged. A failed
// sample keeps the previous color.
func (p *Picker) Handle(ev tracking.Event) (Snapshot, bool) {
	if p.snap.State != Tracking || ev.Session != p.session {
		return p.snap, false
	}

	p.snap.Point = ev.Point
	if c, ok := p.sampler.Sample(ev.Point); ok {
		p.snap.Color = c
		p.snap.HasColor = true
	}
	p.snap.Tooltip = p.tooltipAt(ev.Point)

	if ev.Kind == tracking.Click && p.pickOnClick {
		p.Deactivate()
		p.snap.Picked = true
	}
	return p.snap, true
}

func (p *Picker) Snapshot() Snapshot { return p.snap }

// tooltipAt offsets the label from the cursor so it never covers the
// sampled pixel, keeping it on the display when the bounds are known.
func (p *Picker) tooltipAt(at screen.Point) screen.Point {
	anchor := at.Add(p.offset)
	if p.display == nil {
		return anchor
	}
	b, err := p.display.Bounds()
	if err != nil {
		return anchor
	}
	// Bounds are in top-left space; only the size matters for bottom-left clamping.
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	clamped := screen.Clamp(anchor, r, p.tooltipSize)

	// If clamping pushed the label back over the cursor, flip it to the other side.
	if covers(clamped, p.tooltipSize, at) {
		clamped = screen.Clamp(at.Subtract(p.offset).Subtract(p.tooltipSize), r, p.tooltipSize)
	}
	return clamped
}

func covers(origin, size, pt screen.Point) bool {
	return pt.X >= origin.X && pt.X < origin.X+size.X &&
		pt.Y >= origin.Y && pt.Y < origin.Y+size.Y
}
