package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/vedantwpatil/color-picker/internal/swatch"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Tracking struct {
		AutoStart     bool `yaml:"auto_start"`
		InitialSample bool `yaml:"initial_sample"`
		PickOnClick   bool `yaml:"pick_on_click"`
	} `yaml:"tracking"`
	Tooltip struct {
		OffsetX float64 `yaml:"offset_x"`
		OffsetY float64 `yaml:"offset_y"`
		Width   float64 `yaml:"width"`
		Height  float64 `yaml:"height"`
	} `yaml:"tooltip"`
	Panel struct {
		SwatchWidth  int `yaml:"swatch_width"`
		SwatchHeight int `yaml:"swatch_height"`
	} `yaml:"panel"`
	Clipboard struct {
		CopyOnPick bool `yaml:"copy_on_pick"`
	} `yaml:"clipboard"`
	Output struct {
		Format string `yaml:"format"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"output"`
	Swatch struct {
		Size int `yaml:"size"`
	} `yaml:"swatch"`
	Log struct {
		File string `yaml:"file"`
	} `yaml:"log"`
}

func NewConfig() *Config {
	cfg := &Config{}

	cfg.Tracking.AutoStart = false
	cfg.Tracking.InitialSample = true
	cfg.Tracking.PickOnClick = true

	// Up and to the right of the cursor, in bottom-left screen space.
	cfg.Tooltip.OffsetX = 10
	cfg.Tooltip.OffsetY = 10
	cfg.Tooltip.Width = 100
	cfg.Tooltip.Height = 50

	cfg.Panel.SwatchWidth = 20
	cfg.Panel.SwatchHeight = 8

	cfg.Clipboard.CopyOnPick = true

	cfg.Output.Format = "yaml"

	cfg.Swatch.Size = 100

	return cfg
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "colorpicker", "config.yaml"), nil
}

// Load returns the defaults overlaid with the YAML file at path. A missing
// file is not an error unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("unsupported output format %q (use yaml or json)", c.Output.Format)
	}
	if c.Tooltip.Width < 0 || c.Tooltip.Height < 0 {
		return errors.New("tooltip size must not be negative")
	}
	if c.Panel.SwatchWidth < 1 || c.Panel.SwatchHeight < 1 {
		return errors.New("panel swatch size must be at least 1x1")
	}
	if err := swatch.CheckSize(c.Swatch.Size); err != nil {
		return err
	}
	return nil
}

// SetupLogging points the standard logger at the configured file, or at
// fallback when no file is set. The returned closer releases the file and is
// nil when no file was opened.
func (c *Config) SetupLogging(fallback io.Writer) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if c.Log.File == "" {
		log.SetOutput(fallback)
		return nil, nil
	}
	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
