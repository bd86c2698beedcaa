// Package generator runs color derivations for the CLI, TUI and MCP server
// and records them in history.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/db"
	"github.com/asteroid-belt/ashsha/internal/models"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
	"github.com/asteroid-belt/ashsha/pkg/version"
)

// ErrInputTooLarge is returned when trimmed input exceeds the configured bound.
var ErrInputTooLarge = errors.New("input too large")

// Store is the persistence the generator needs. *db.DB satisfies it.
type Store interface {
	SaveHistory(text, hexColor string, limit int) (*models.HistoryEntry, error)
	SaveCurrentState(res *colorhash.Result) error
	GetCurrentState() (*models.CurrentState, error)
}

// Generator derives colors and persists them.
type Generator struct {
	store         Store
	telemetry     telemetry.Client
	historyLimit  int
	maxInputBytes int
}

// New creates a Generator. A nil store disables persistence and a nil
// telemetry client is replaced with a no-op one.
func New(store Store, cfg *config.Config, tc telemetry.Client) *Generator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if tc == nil {
		tc = telemetry.NewNoop()
	}
	return &Generator{
		store:         store,
		telemetry:     tc,
		historyLimit:  cfg.History.Limit,
		maxInputBytes: cfg.Input.MaxBytes,
	}
}

// Preview derives the color for text without recording anything.
// It is cheap enough to call on every keystroke.
func (g *Generator) Preview(text string) (*colorhash.Result, error) {
	trimmed := strings.TrimSpace(text)
	if g.maxInputBytes > 0 && len(trimmed) > g.maxInputBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrInputTooLarge, len(trimmed), g.maxInputBytes)
	}
	return colorhash.Derive(trimmed)
}

// Generate derives the color for text and, when a store is configured,
// records it in history and as the current state.
func (g *Generator) Generate(text, source string) (*colorhash.Result, error) {
	res, err := g.Preview(text)
	if err != nil {
		return nil, err
	}

	saved := false
	if g.store != nil {
		if _, err := g.store.SaveHistory(res.Input, res.HexColor, g.historyLimit); err != nil {
			return res, fmt.Errorf("save history: %w", err)
		}
		if err := g.store.SaveCurrentState(res); err != nil {
			return res, fmt.Errorf("save current state: %w", err)
		}
		saved = true
	}

	g.telemetry.TrackColorDerived(source, len(res.Input), saved)
	return res, nil
}

// Restore returns the last recorded result, or nil if there is none.
// Snapshots written by an incompatible algorithm version, or that fail to
// decode, are re-derived from their stored text.
func (g *Generator) Restore() (*colorhash.Result, error) {
	if g.store == nil {
		return nil, nil
	}

	state, err := g.store.GetCurrentState()
	if err != nil {
		return nil, fmt.Errorf("load current state: %w", err)
	}
	if state == nil {
		return nil, nil
	}

	if version.SameMajor(state.AlgorithmVersion, colorhash.AlgorithmVersion) {
		if res, err := db.DecodeSnapshot(state); err == nil {
			g.telemetry.TrackStateRestored(false)
			return res, nil
		}
	}

	res, err := g.Preview(state.Text)
	if err != nil {
		return nil, fmt.Errorf("re-derive %q: %w", state.Text, err)
	}
	if err := g.store.SaveCurrentState(res); err != nil {
		return nil, fmt.Errorf("save current state: %w", err)
	}
	g.telemetry.TrackStateRestored(true)
	return res, nil
}
