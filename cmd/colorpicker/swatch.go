package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/vedantwpatil/color-picker/internal/colorx"
	"github.com/vedantwpatil/color-picker/internal/swatch"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Write a PNG swatch of a color",
	Long: `Render a square PNG tile filled with a color and labelled with its hex code.

The color comes from --hex, or is sampled at --x/--y or the cursor.

Examples:
  colorpicker swatch --out accent.png
  colorpicker swatch --hex '#1E66F5' --size 64 --out blue.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		size, _ := cmd.Flags().GetInt("size")
		if !cmd.Flags().Changed("size") {
			size = app.config.Swatch.Size
		}
		if err := swatch.CheckSize(size); err != nil {
			return fmt.Errorf("--size: %w", err)
		}

		var (
			c   colorx.Color
			err error
		)
		if hex, _ := cmd.Flags().GetString("hex"); hex != "" {
			c, err = colorx.ParseHex(hex)
		} else {
			c, err = colorAt(cmd)
		}
		if err != nil {
			return err
		}

		if err := swatch.WriteFile(out, c, size); err != nil {
			return err
		}
		log.Printf("wrote %s swatch to %s", c.Hex(), out)
		return nil
	},
}

func init() {
	swatchCmd.Flags().String("out", "", "Output PNG path")
	swatchCmd.Flags().String("hex", "", "Color as #RRGGBB instead of sampling")
	swatchCmd.Flags().Int("size", 100, "Tile size in pixels")
	swatchCmd.Flags().Float64("x", 0, "X coordinate to sample (bottom-left origin)")
	swatchCmd.Flags().Float64("y", 0, "Y coordinate to sample (bottom-left origin)")
	swatchCmd.MarkFlagRequired("out")
}
