// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// ErrInvalidConfig is wrapped by every validation failure returned from Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration.
type Config struct {
	// Base directory for all ashsha data
	BaseDir string `validate:"required"`

	History HistoryConfig
	Input   InputConfig
	UI      UIConfig
}

// HistoryConfig controls the persisted history of derived colors.
type HistoryConfig struct {
	// Limit is the number of entries kept, most recent first.
	Limit int `validate:"min=1,max=1000"`
}

// InputConfig bounds what is accepted for derivation.
type InputConfig struct {
	// MaxBytes rejects trimmed input longer than this before hashing.
	MaxBytes int `validate:"min=1"`
}

// UIConfig holds interactive settings.
type UIConfig struct {
	// DebounceMs is how long the TUI waits after the last keystroke
	// before re-deriving the preview.
	DebounceMs int    `validate:"min=0,max=10000"`
	Theme      string `validate:"oneof=punk neon blood"`
}

// Environment variables read by Load.
const (
	EnvHome          = "ASHSHA_HOME"
	EnvHistoryLimit  = "ASHSHA_HISTORY_LIMIT"
	EnvMaxInputBytes = "ASHSHA_MAX_INPUT_BYTES"
	EnvDebounceMs    = "ASHSHA_DEBOUNCE_MS"
	EnvTheme         = "ASHSHA_THEME"
)

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if home := os.Getenv(EnvHome); home != "" {
		cfg.BaseDir = home
	}

	ints := []struct {
		env string
		dst *int
	}{
		{EnvHistoryLimit, &cfg.History.Limit},
		{EnvMaxInputBytes, &cfg.Input.MaxBytes},
		{EnvDebounceMs, &cfg.UI.DebounceMs},
	}
	for _, v := range ints {
		raw := strings.TrimSpace(os.Getenv(v.env))
		if raw == "" {
			continue
		}
		n, err := cast.ToIntE(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, v.env, raw)
		}
		*v.dst = n
	}

	if theme := os.Getenv(EnvTheme); theme != "" {
		cfg.UI.Theme = strings.ToLower(strings.TrimSpace(theme))
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	// Ensure directories exist
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints on cfg.
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	return os.MkdirAll(cfg.BaseDir, 0755)
}
