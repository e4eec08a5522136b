package picker

import (
	"image"
	"testing"

	"github.com/vedantwpatil/color-picker/internal/colorx"
	"github.com/vedantwpatil/color-picker/internal/config"
	"github.com/vedantwpatil/color-picker/internal/screen"
	"github.com/vedantwpatil/color-picker/internal/tracking"
)

// fakeTracker reports session 0 unless sessions is set, in which case each
// Start from idle opens the next session like the real tracker.
type fakeTracker struct {
	starts, stops int
	handler       tracking.Handler
	sessions      bool
	session       uint64
	running       bool
}

func (f *fakeTracker) Start(h tracking.Handler) uint64 {
	f.starts++
	f.handler = h
	if f.sessions && !f.running {
		f.session++
	}
	f.running = true
	return f.session
}

func (f *fakeTracker) Stop() { f.stops++; f.handler = nil; f.running = false }

// scriptedSampler returns results in order; ok=false simulates a failed capture.
type scriptedSampler struct {
	results []sampleResult
}

type sampleResult struct {
	c  colorx.Color
	ok bool
}

func (s *scriptedSampler) Sample(screen.Point) (colorx.Color, bool) {
	r := s.results[0]
	s.results = s.results[1:]
	return r.c, r.ok
}

type fakeDisplay struct{}

func (fakeDisplay) Bounds() (image.Rectangle, error) { return image.Rect(0, 0, 1000, 800), nil }

var (
	red  = colorx.Color{R: 255}
	blue = colorx.Color{B: 255}
)

func newPicker(s Sampler) (*Picker, *fakeTracker) {
	tr := &fakeTracker{}
	return New(config.NewConfig(), tr, s, fakeDisplay{}), tr
}

func moveTo(x, y float64) tracking.Event {
	return tracking.Event{Kind: tracking.Move, Point: screen.Point{X: x, Y: y}}
}

func TestActivateDeactivate(t *testing.T) {
	p, tr := newPicker(&scriptedSampler{})

	if p.Snapshot().State != Idle {
		t.Fatal("picker should start idle")
	}
	p.Deactivate()
	if tr.stops != 0 {
		t.Fatal("deactivate while idle must not touch the tracker")
	}

	p.Activate(func(tracking.Event) {})
	p.Activate(func(tracking.Event) {})
	if p.Snapshot().State != Tracking {
		t.Fatal("picker should be tracking")
	}
	if tr.starts != 2 {
		t.Fatalf("tracker.Start calls = %d, want 2 (the tracker dedupes)", tr.starts)
	}

	p.Deactivate()
	p.Deactivate()
	if tr.stops != 1 {
		t.Fatalf("tracker.Stop calls = %d, want 1", tr.stops)
	}
}

func TestHandleUpdatesColorAndPoint(t *testing.T) {
	p, _ := newPicker(&scriptedSampler{results: []sampleResult{{red, true}}})
	p.Activate(func(tracking.Event) {})

	snap, changed := p.Handle(moveTo(100, 200))
	if !changed {
		t.Fatal("expected change")
	}
	if !snap.HasColor || snap.Color.Hex() != "#FF0000" {
		t.Fatalf("color = %v (has=%v)", snap.Color, snap.HasColor)
	}
	if snap.Point != (screen.Point{X: 100, Y: 200}) {
		t.Fatalf("point = %v", snap.Point)
	}
	if snap.Tooltip != (screen.Point{X: 110, Y: 210}) {
		t.Fatalf("tooltip = %v, want offset from cursor", snap.Tooltip)
	}
}

func TestEventsFromEarlierSessionDropped(t *testing.T) {
	tr := &fakeTracker{sessions: true}
	p := New(config.NewConfig(), tr, &scriptedSampler{results: []sampleResult{{blue, true}}}, fakeDisplay{})

	p.Activate(func(tracking.Event) {})
	old := moveTo(1, 1)
	old.Session = tr.session
	p.Deactivate()
	p.Activate(func(tracking.Event) {})

	if snap, changed := p.Handle(old); changed || snap.HasColor {
		t.Fatalf("stale event applied: %+v", snap)
	}

	cur := moveTo(2, 2)
	cur.Session = tr.session
	snap, changed := p.Handle(cur)
	if !changed || snap.Color != blue {
		t.Fatalf("current event not applied: %+v", snap)
	}
}

func TestFailedSampleKeepsLastColor(t *testing.T) {
	p, _ := newPicker(&scriptedSampler{results: []sampleResult{
		{blue, true},
		{colorx.Color{}, false},
	}})
	p.Activate(func(tracking.Event) {})

	p.Handle(moveTo(1, 1))
	snap, _ := p.Handle(moveTo(2, 2))

	if snap.Color != blue {
		t.Fatalf("color = %v, want last good %v", snap.Color, blue)
	}
	if snap.Point != (screen.Point{X: 2, Y: 2}) {
		t.Fatalf("point should still update, got %v", snap.Point)
	}
}

func TestIdleEventsIgnored(t *testing.T) {
	p, _ := newPicker(&scriptedSampler{})

	snap, changed := p.Handle(moveTo(5, 5))
	if changed || snap.HasColor {
		t.Fatalf("idle picker changed: %+v", snap)
	}
}

func TestClickPinsColor(t *testing.T) {
	p, tr := newPicker(&scriptedSampler{results: []sampleResult{{red, true}}})
	p.Activate(func(tracking.Event) {})

	snap, _ := p.Handle(tracking.Event{Kind: tracking.Click, Point: screen.Point{X: 3, Y: 3}})
	if !snap.Picked || snap.State != Idle {
		t.Fatalf("click should pin and stop: %+v", snap)
	}
	if tr.stops != 1 {
		t.Fatalf("tracker.Stop calls = %d, want 1", tr.stops)
	}
	if snap.Color != red {
		t.Fatalf("pinned color = %v", snap.Color)
	}

	p.Activate(func(tracking.Event) {})
	if p.Snapshot().Picked {
		t.Fatal("re-activating should clear the pin")
	}
}

func TestClickIgnoredWhenPickDisabled(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Tracking.PickOnClick = false
	tr := &fakeTracker{}
	p := New(cfg, tr, &scriptedSampler{results: []sampleResult{{red, true}}}, fakeDisplay{})
	p.Activate(func(tracking.Event) {})

	snap, _ := p.Handle(tracking.Event{Kind: tracking.Click})
	if snap.Picked || snap.State != Tracking {
		t.Fatalf("click should not pin: %+v", snap)
	}
}

func TestTooltipStaysOnScreen(t *testing.T) {
	results := make([]sampleResult, 3)
	p, _ := newPicker(&scriptedSampler{results: results})
	p.Activate(func(tracking.Event) {})

	tests := []struct {
		name string
		at   screen.Point
		want screen.Point
	}{
		{"open space", screen.Point{X: 500, Y: 400}, screen.Point{X: 510, Y: 410}},
		// Top-right corner: the label flips below and left of the cursor.
		{"top right", screen.Point{X: 995, Y: 795}, screen.Point{X: 885, Y: 735}},
		{"bottom left", screen.Point{X: 0, Y: 0}, screen.Point{X: 10, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, _ := p.Handle(moveTo(tt.at.X, tt.at.Y))
			if snap.Tooltip != tt.want {
				t.Fatalf("tooltip = %v, want %v", snap.Tooltip, tt.want)
			}
			if covers(snap.Tooltip, screen.Point{X: 100, Y: 50}, tt.at) {
				t.Fatal("tooltip covers the sampled pixel")
			}
		})
	}
}
