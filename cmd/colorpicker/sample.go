package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vedantwpatil/color-picker/internal/colorx"
	"github.com/vedantwpatil/color-picker/internal/output"
	"github.com/vedantwpatil/color-picker/internal/screen"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the color at the cursor or at a given point",
	Long: `Sample one pixel and print its color.

Coordinates use a bottom-left origin, like the records from watch. Without
--x and --y the current cursor position is used.

Examples:
  colorpicker sample
  colorpicker sample --x 200 --y 640 --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pointFromFlags(cmd)
		if err != nil {
			return err
		}
		c, err := app.sampler.SampleErr(p)
		if err != nil {
			return fmt.Errorf("sample at (%.0f, %.0f): %w", p.X, p.Y, err)
		}
		return app.printer().Print(output.NewSample(p, c, time.Now()))
	},
}

func init() {
	sampleCmd.Flags().Float64("x", 0, "X coordinate (bottom-left origin)")
	sampleCmd.Flags().Float64("y", 0, "Y coordinate (bottom-left origin)")
}

// pointFromFlags returns --x/--y when both are set, otherwise the cursor.
func pointFromFlags(cmd *cobra.Command) (screen.Point, error) {
	xSet, ySet := cmd.Flags().Changed("x"), cmd.Flags().Changed("y")
	if xSet != ySet {
		return screen.Point{}, fmt.Errorf("--x and --y must be given together")
	}
	if xSet {
		x, _ := cmd.Flags().GetFloat64("x")
		y, _ := cmd.Flags().GetFloat64("y")
		return screen.Point{X: x, Y: y}, nil
	}
	return app.tracker.Current()
}

// colorAt samples at --x/--y or the cursor.
func colorAt(cmd *cobra.Command) (colorx.Color, error) {
	p, err := pointFromFlags(cmd)
	if err != nil {
		return colorx.Color{}, err
	}
	return app.sampler.SampleErr(p)
}
