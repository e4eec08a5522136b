package tracking

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"
	"github.com/vedantwpatil/color-picker/internal/screen"
)

// Source is the process-wide event hook.
type Source interface {
	Start() chan hook.Event
	End()
}

type hookSource struct{}

func (hookSource) Start() chan hook.Event { return hook.Start() }
func (hookSource) End()                   { hook.End() }

// Locator reports the current cursor position in top-left coordinates.
type Locator func() (x, y int)

// Tracker owns the global pointer hook. At most one hook session is active
// per Tracker; Start while active swaps the handler instead of registering a
// second listener.
type Tracker struct {
	source  Source
	display screen.Display
	locate  Locator
	initial bool

	mu      sync.Mutex
	handler Handler
	active  bool
	session uint64
}

// Option customises a Tracker.
type Option func(*Tracker)

// WithSource replaces the gohook event source.
func WithSource(s Source) Option {
	return func(t *Tracker) { t.source = s }
}

// WithLocator sets the function used to read the cursor position.
func WithLocator(l Locator) Option {
	return func(t *Tracker) { t.locate = l }
}

// WithInitialEvent controls whether Start delivers the current cursor
// position before the first hook event.
func WithInitialEvent(enabled bool) Option {
	return func(t *Tracker) { t.initial = enabled }
}

// WithDisplay sets the display used to flip hook coordinates.
func WithDisplay(d screen.Display) Option {
	return func(t *Tracker) { t.display = d }
}

// NewTracker returns an idle tracker on the global hook.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		source:  hookSource{},
		display: screen.Primary{},
		locate:  robotgo.Location,
		initial: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins delivering events to h and returns the session its events
// are stamped with. If the tracker is already running only the handler is
// replaced and the running session is returned.
func (t *Tracker) Start(h Handler) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.handler = h
	if t.active {
		return t.session
	}

	t.active = true
	t.session++
	session := t.session

	convert := t.converter()
	var initial *Event
	if t.initial && t.locate != nil {
		x, y := t.locate()
		ev := newEvent(Move, x, y, convert)
		initial = &ev
	}

	events := t.source.Start()
	go t.deliver(session, events, convert, initial)
	return session
}

// Stop unregisters the hook. It is a no-op when the tracker is idle and does
// not wait for in-flight deliveries; those are dropped.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return
	}
	t.active = false
	t.handler = nil
	t.session++
	t.source.End()
}

// Current reads the cursor position without starting the hook.
func (t *Tracker) Current() (screen.Point, error) {
	if t.locate == nil {
		return screen.Point{}, errors.New("no cursor locator configured")
	}
	x, y := t.locate()
	return newEvent(Move, x, y, t.converter()).Point, nil
}

// Active reports whether a hook session is running.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

func (t *Tracker) deliver(session uint64, events chan hook.Event, convert func(screen.Point) screen.Point, initial *Event) {
	if initial != nil {
		t.dispatch(session, *initial)
	}

	for e := range events {
		switch {
		case e.Kind == hook.MouseMove || e.Kind == hook.MouseDrag:
			t.dispatch(session, newEvent(Move, int(e.X), int(e.Y), convert))
		case e.Kind == hook.MouseDown && e.Button == hook.MouseMap["left"]:
			t.dispatch(session, newEvent(Click, int(e.X), int(e.Y), convert))
		}
	}
}

// dispatch hands ev to the current handler unless the session has ended.
func (t *Tracker) dispatch(session uint64, ev Event) {
	t.mu.Lock()
	h := t.handler
	current := t.session == session
	t.mu.Unlock()

	if !current || h == nil {
		return
	}
	ev.Session = session
	h(ev)
}

func newEvent(kind Kind, x, y int, convert func(screen.Point) screen.Point) Event {
	p := screen.Point{X: float64(x), Y: float64(y)}
	return Event{Kind: kind, Point: convert(p), At: time.Now()}
}

// converter maps hook coordinates (top-left origin) to bottom-left screen
// space. Without a display the points pass through unchanged.
func (t *Tracker) converter() func(screen.Point) screen.Point {
	h, err := screen.Height(t.display)
	if err != nil {
		log.Printf("tracking: %v, reporting unflipped coordinates", err)
		return func(p screen.Point) screen.Point { return p }
	}
	return func(p screen.Point) screen.Point { return screen.Flip(p, h) }
}
