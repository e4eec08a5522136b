package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigIsValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Tooltip.OffsetX != 10 || cfg.Tooltip.OffsetY != 10 {
		t.Errorf("tooltip offset = %v,%v", cfg.Tooltip.OffsetX, cfg.Tooltip.OffsetY)
	}
	if !cfg.Tracking.InitialSample || !cfg.Tracking.PickOnClick {
		t.Error("tracking defaults should enable initial sample and pick on click")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeFile(t, `
tracking:
  auto_start: true
tooltip:
  offset_x: 24
output:
  format: json
  pretty: true
`)
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Tracking.AutoStart {
		t.Error("auto_start not applied")
	}
	if cfg.Tooltip.OffsetX != 24 {
		t.Errorf("offset_x = %v, want 24", cfg.Tooltip.OffsetX)
	}
	// Untouched keys keep their defaults.
	if cfg.Tooltip.OffsetY != 10 {
		t.Errorf("offset_y = %v, want default 10", cfg.Tooltip.OffsetY)
	}
	if cfg.Output.Format != "json" || !cfg.Output.Pretty {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	if err != nil {
		t.Fatalf("optional missing file: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("expected defaults, got format %q", cfg.Output.Format)
	}

	if _, err := Load(missing, true); err == nil {
		t.Fatal("required missing file should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "tracking: [", "parse config"},
		{"bad format", "output:\n  format: xml\n", "unsupported output format"},
		{"bad swatch", "swatch:\n  size: 0\n", "swatch size"},
		{"huge swatch", "swatch:\n  size: 100000\n", "swatch size"},
		{"bad panel", "panel:\n  swatch_width: 0\n", "panel swatch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body), true)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	var buf bytes.Buffer
	cfg := NewConfig()
	closer, err := cfg.SetupLogging(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if closer != nil {
		t.Fatalf("closer = %v, want nil without a log file", closer)
	}
	log.Print("to fallback")
	if !strings.Contains(buf.String(), "to fallback") {
		t.Fatalf("fallback writer got %q", buf.String())
	}

	cfg.Log.File = filepath.Join(t.TempDir(), "picker.log")
	closer, err = cfg.SetupLogging(&buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Print("to file")
	closer.Close()
	log.SetOutput(os.Stderr)

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Fatalf("log file = %q", data)
	}
}
