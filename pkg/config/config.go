// Package config loads the optional slate.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/focus"
)

// FileName is the settings file looked up by LoadDir.
const FileName = "slate.yaml"

// SchemaMajor is the settings schema major version this build understands.
const SchemaMajor = "v1"

// ErrUnsupportedVersion is returned for settings written for another schema
// major version.
var ErrUnsupportedVersion = errors.New("unsupported settings version")

// Settings represents slate.yaml.
type Settings struct {
	Version string         `yaml:"version,omitempty"`
	Canvas  CanvasSettings `yaml:"canvas"`
	Scroll  ScrollSettings `yaml:"scroll"`
	Wrap    WrapSettings   `yaml:"wrap"`
	Focus   FocusSettings  `yaml:"focus"`
	Debug   DebugSettings  `yaml:"debug"`
}

// CanvasSettings sizes the root canvas.
type CanvasSettings struct {
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	ZOrderMode string  `yaml:"z_order_mode,omitempty"`
}

// ScrollSettings configures scroll boxes.
type ScrollSettings struct {
	// Step is the scroll percent one wheel notch moves.
	Step         float64 `yaml:"step,omitempty"`
	BarThickness float64 `yaml:"bar_thickness,omitempty"`
	// HorizontalIntoViewUsesHeight makes ScrollSlotIntoView on horizontal
	// boxes divide by the viewport height, as older releases did.
	HorizontalIntoViewUsesHeight bool `yaml:"horizontal_into_view_uses_height,omitempty"`
}

// WrapSettings configures content-driven sizing.
type WrapSettings struct {
	MinimumExtent float64 `yaml:"minimum_extent,omitempty"`
}

// FocusSettings configures focus routing.
type FocusSettings struct {
	DefaultMode string `yaml:"default_mode,omitempty"`
}

// DebugSettings configures diagnostics.
type DebugSettings struct {
	VerboseErrors bool `yaml:"verbose_errors,omitempty"`
}

// Default returns the settings used when no file exists.
func Default() *Settings {
	return &Settings{
		Version: SchemaMajor + ".0.0",
		Canvas:  CanvasSettings{Width: 800, Height: 600, ZOrderMode: core.ZOrderInOrder.String()},
		Scroll:  ScrollSettings{Step: 0.1, BarThickness: 10},
		Wrap:    WrapSettings{MinimumExtent: 1},
		Focus:   FocusSettings{DefaultMode: focus.ModeZOrder.String()},
	}
}

// LoadDir reads slate.yaml from dir if present.
func LoadDir(dir string) (*Settings, error) {
	return Load(filepath.Join(dir, FileName))
}

// Load reads the settings file at path. A missing file yields Default.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// Parse decodes YAML settings over the defaults and validates the result.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the schema version and every enumerated or bounded value.
func (s *Settings) Validate() error {
	v := strings.TrimSpace(s.Version)
	if v == "" {
		v = SchemaMajor + ".0.0"
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version %q", s.Version)
	}
	if semver.Major(v) != SchemaMajor {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, s.Version, SchemaMajor)
	}
	s.Version = semver.Canonical(v)

	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %vx%v", s.Canvas.Width, s.Canvas.Height)
	}
	if _, err := core.ParseZOrderMode(s.Canvas.ZOrderMode); err != nil {
		return err
	}
	if _, err := focus.ParseMode(s.Focus.DefaultMode); err != nil {
		return err
	}
	if s.Scroll.Step <= 0 || s.Scroll.Step > 1 {
		return fmt.Errorf("scroll step must be in (0, 1], got %v", s.Scroll.Step)
	}
	if s.Scroll.BarThickness < 0 {
		return fmt.Errorf("scroll bar thickness must not be negative, got %v", s.Scroll.BarThickness)
	}
	if s.Wrap.MinimumExtent < 0 {
		return fmt.Errorf("wrap minimum extent must not be negative, got %v", s.Wrap.MinimumExtent)
	}
	return nil
}

// ZOrderMode returns the parsed canvas z-order mode.
func (s *Settings) ZOrderMode() core.ZOrderMode {
	m, _ := core.ParseZOrderMode(s.Canvas.ZOrderMode)
	return m
}

// FocusMode returns the parsed default focus mode.
func (s *Settings) FocusMode() focus.Mode {
	m, _ := focus.ParseMode(s.Focus.DefaultMode)
	return m
}

// Marshal encodes the settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
