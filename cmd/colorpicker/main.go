package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vedantwpatil/color-picker/internal/clipboard"
	"github.com/vedantwpatil/color-picker/internal/config"
	"github.com/vedantwpatil/color-picker/internal/output"
	"github.com/vedantwpatil/color-picker/internal/picker"
	"github.com/vedantwpatil/color-picker/internal/sampling"
	"github.com/vedantwpatil/color-picker/internal/screen"
	"github.com/vedantwpatil/color-picker/internal/tracking"
	"github.com/vedantwpatil/color-picker/internal/tui"
)

type Application struct {
	config  *config.Config
	display screen.Display
	tracker *tracking.Tracker
	sampler *sampling.Sampler
	clip    clipboard.Writer
	logs    io.Closer
}

func NewApplication(cfg *config.Config) *Application {
	display := screen.Primary{}
	return &Application{
		config:  cfg,
		display: display,
		tracker: tracking.NewTracker(
			tracking.WithDisplay(display),
			tracking.WithInitialEvent(cfg.Tracking.InitialSample),
		),
		sampler: sampling.NewSamplerWith(display, sampling.ScreenCapturer{}),
		clip:    clipboard.System{},
	}
}

func (app *Application) newPicker() *picker.Picker {
	return picker.New(app.config, app.tracker, app.sampler, app.display)
}

// format returns the configured output format.
func (app *Application) format() output.Format {
	f, err := output.ParseFormat(app.config.Output.Format)
	if err != nil {
		return output.FormatYAML
	}
	return f
}

// printer returns a printer on stdout in the configured format.
func (app *Application) printer() *output.Printer {
	return output.NewPrinter(os.Stdout, app.format(), app.config.Output.Pretty)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func (app *Application) Close() {
	app.tracker.Stop()
	if app.logs != nil {
		app.logs.Close()
	}
}

var app *Application

var rootCmd = &cobra.Command{
	Use:   "colorpicker",
	Short: "Show the screen color under the mouse cursor",
	Long: `colorpicker tracks the mouse cursor across the whole desktop, samples the
pixel under it and shows the color with its hex code.

The screen-recording permission must be granted to the terminal; without it
the swatch simply never changes.

Keys in the panel:
  p, space   start or pause tracking
  c          copy the hex code
  q          quit

Clicking while tracking pins the color and copies it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app = NewApplication(cfg)

		// The panel owns the terminal, so it only logs to a file.
		var fallback io.Writer = os.Stderr
		if cmd == cmd.Root() {
			fallback = io.Discard
		}
		app.logs, err = cfg.SetupLogging(fallback)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if start, _ := cmd.Flags().GetBool("start"); start {
			app.config.Tracking.AutoStart = true
		}
		return tui.Run(app.config, app.newPicker(), app.clip)
	},
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()

	path, _ := flags.GetString("config")
	required := path != ""
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Printf("config: %v, using defaults", err)
		}
		path = p
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty, _ = flags.GetBool("pretty")
	}
	if flags.Changed("no-copy") {
		noCopy, _ := flags.GetBool("no-copy")
		cfg.Clipboard.CopyOnPick = !noCopy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: user config dir/colorpicker/config.yaml)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().Bool("no-copy", false, "Do not copy the hex code when a color is picked")
	rootCmd.Flags().Bool("start", false, "Start tracking immediately")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(swatchCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	err := rootCmd.Execute()
	if app != nil {
		app.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
