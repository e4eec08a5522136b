package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/vedantwpatil/color-picker/internal/clipboard"
	"github.com/vedantwpatil/color-picker/internal/output"
	"github.com/vedantwpatil/color-picker/internal/picker"
	"github.com/vedantwpatil/color-picker/internal/tracking"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream the color under the cursor as it moves",
	Long: `Stream one record per pointer move to stdout until interrupted, a color
is picked with a click, or --limit records have been written.

Each record carries the pointer position, the color and the anchor for a
floating label offset from the cursor, so a HUD can follow along.

Examples:
  colorpicker watch --format json
  colorpicker watch --limit 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		ctx, cancel := signalContext()
		defer cancel()

		var clip clipboard.Writer
		if app.config.Clipboard.CopyOnPick {
			clip = app.clip
		}
		return watch(ctx, app.newPicker(), app.printer(), clip, limit)
	},
}

func init() {
	watchCmd.Flags().Int("limit", 0, "Stop after this many records (0 for no limit)")
}

// watch drives p from this goroutine: the tracker callback only forwards
// events, so every picker call happens here. A picked color is copied to
// clip when it is non-nil.
func watch(ctx context.Context, p *picker.Picker, pr *output.Printer, clip clipboard.Writer, limit int) error {
	events := make(chan tracking.Event)
	p.Activate(func(ev tracking.Event) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	})
	defer p.Deactivate()

	written := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			snap, changed := p.Handle(ev)
			if !changed {
				continue
			}
			if err := pr.Print(output.FromSnapshot(snap, time.Now())); err != nil {
				return err
			}
			written++
			if snap.Picked && snap.HasColor && clip != nil {
				if err := clip.WriteText(snap.Color.Hex()); err != nil {
					log.Printf("watch: %v", err)
				}
			}
			if snap.Picked || (limit > 0 && written >= limit) {
				return nil
			}
		}
	}
}
