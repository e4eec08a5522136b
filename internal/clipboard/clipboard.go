package clipboard

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Writer puts text on the system clipboard.
type Writer interface {
	WriteText(text string) error
}

// System is the platform clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if err := robotgo.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
