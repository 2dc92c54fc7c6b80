// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/gifmaker/pkg/orchestrator"
	"github.com/user/gifmaker/pkg/pipeline"
)

// Config represents the full configuration for gifmaker.
// Values are layered: Defaults, then an optional YAML file, then command-line flags.
type Config struct {
	// Input/Output
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Animation
	Loop  int `yaml:"loop"`
	Delay int `yaml:"delay"` // milliseconds per frame

	// Label
	AddName  bool        `yaml:"add_name"`
	FontPath string      `yaml:"font_path"`
	FontSize int         `yaml:"font_size"` // points
	Label    LabelConfig `yaml:"label"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Summary
	Summary string `yaml:"summary"`
}

// LabelConfig holds opt-in overrides for label placement and colour.
type LabelConfig struct {
	AnchorX int    `yaml:"anchor_x"`
	AnchorY int    `yaml:"anchor_y"`
	Color   string `yaml:"color"` // hex, e.g. #000000
}

// Defaults returns a Config with default values.
// Run settings come from the pipeline defaults so every layer agrees.
func Defaults() Config {
	label := pipeline.DefaultLabelSpec()
	enc := pipeline.DefaultEncodingSpec()
	return Config{
		Input:  pipeline.DefaultInputDir,
		Output: enc.OutputPath,

		Loop:  enc.Loop,
		Delay: enc.DelayMs,

		AddName:  label.Enabled,
		FontPath: pipeline.DefaultFontPath,
		FontSize: int(label.FontSize),
		Label: LabelConfig{
			AnchorX: label.AnchorX,
			AnchorY: label.AnchorY,
			Color:   FormatColor(label.Color),
		},

		LogLevel: "info",

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Loop < 0 {
		errs = append(errs, fmt.Errorf("loop must be >= 0, got %d", c.Loop))
	}
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must be >= 0, got %d", c.Delay))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size must be > 0, got %d", c.FontSize))
	}
	if c.Input == "" {
		errs = append(errs, errors.New("input directory must not be empty"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path must not be empty"))
	}
	if _, err := ParseColor(c.Label.Color); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseColor parses "#rrggbb" or "rrggbb" into an opaque colour.
// An empty string yields black.
func ParseColor(hex string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if s == "" {
		return color.Black, nil
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("invalid color %q: want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// FormatColor renders c as "#rrggbb", dropping alpha.
func FormatColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// Call Validate first; an unparsable label colour falls back to black.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	labelColor, err := ParseColor(c.Label.Color)
	if err != nil {
		labelColor = color.Black
	}

	return orchestrator.Config{
		InputDir: c.Input,

		AddName:      c.AddName,
		FontPath:     c.FontPath,
		FontSize:     float64(c.FontSize),
		LabelAnchorX: c.Label.AnchorX,
		LabelAnchorY: c.Label.AnchorY,
		LabelColor:   labelColor,

		OutputPath: c.Output,
		Loop:       c.Loop,
		DelayMs:    c.Delay,
	}
}
