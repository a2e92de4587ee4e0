// Package system provides infrastructure for system-level configuration
// (~/.rigbook/config.yaml).
package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	apperrors "github.com/rigbook/rigbook/internal/application/errors"
)

// Config represents the global configuration file (~/.rigbook/config.yaml).
// It holds user preferences; command flags override it.
type Config struct {
	UI     UIConfig     `yaml:"ui"`
	Output OutputConfig `yaml:"output"`
}

// UIConfig selects how the interactive session reads input.
type UIConfig struct {
	// Mode is "auto", "line" or "form".
	// - auto: forms on a terminal, line prompts otherwise (default)
	// - line: always read plain lines
	// - form: always use forms
	Mode string `yaml:"mode"`

	// Accessible renders forms as plain prompts for screen readers.
	Accessible bool `yaml:"accessible"`
}

// OutputConfig sets output defaults.
type OutputConfig struct {
	// Format is the default listing format: "table", "json" or "yaml".
	Format string `yaml:"format"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// UIMode represents the input mode of the interactive session.
type UIMode string

const (
	// UIModeAuto picks forms when stdin is a terminal
	UIModeAuto UIMode = "auto"

	// UIModeLine reads plain lines
	UIModeLine UIMode = "line"

	// UIModeForm always uses forms
	UIModeForm UIMode = "form"
)

// ColorMode controls ANSI color in table output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// GetUIMode returns the configured mode, defaulting to auto.
func (c *UIConfig) GetUIMode() UIMode {
	switch UIMode(c.Mode) {
	case UIModeLine, UIModeForm:
		return UIMode(c.Mode)
	default:
		return UIModeAuto
	}
}

// UseForms reports whether the session should use forms given whether
// stdin is a terminal.
func (c *UIConfig) UseForms(interactive bool) bool {
	switch c.GetUIMode() {
	case UIModeForm:
		return true
	case UIModeLine:
		return false
	default:
		return interactive
	}
}

// ColorEnabled reports whether table output is colored given whether
// stdout is a terminal.
func (c *OutputConfig) ColorEnabled(terminal bool) bool {
	switch ColorMode(c.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// Validate rejects unknown enumerated values.
func (c *Config) Validate() error {
	switch UIMode(c.UI.Mode) {
	case "", UIModeAuto, UIModeLine, UIModeForm:
	default:
		return apperrors.NewConfigurationError("ui.mode",
			fmt.Sprintf("unknown mode %q (supported: auto, line, form)", c.UI.Mode), nil)
	}

	switch c.Output.Format {
	case "", "table", "json", "yaml":
	default:
		return apperrors.NewConfigurationError("output.format",
			fmt.Sprintf("unknown format %q (supported: table, json, yaml)", c.Output.Format), nil)
	}

	switch ColorMode(c.Output.Color) {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return apperrors.NewConfigurationError("output.color",
			fmt.Sprintf("unknown color mode %q (supported: auto, always, never)", c.Output.Color), nil)
	}
	return nil
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfigPath returns ~/.rigbook/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".rigbook", "config.yaml"), nil
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Mode: string(UIModeAuto),
		},
		Output: OutputConfig{
			Format: "table",
			Color:  string(ColorAuto),
		},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Fields missing from the file keep their defaults.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	//nolint:gosec // G304: path is the user's config file
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
