package tracking

import (
	"time"

	"github.com/vedantwpatil/color-picker/internal/screen"
)

// Kind tells a pointer move from a click.
type Kind int

const (
	Move Kind = iota
	Click
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// Event is a single pointer observation. Point uses a bottom-left origin.
// Session identifies the hook session that produced it.
type Event struct {
	Kind    Kind
	Point   screen.Point
	At      time.Time
	Session uint64
}

// Handler receives tracker events, one at a time and in order.
type Handler func(Event)
