package mcp

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/db"
	"github.com/asteroid-belt/ashsha/internal/favorites"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
)

// mockTelemetryClient records tool calls; every other event is a no-op.
type mockTelemetryClient struct {
	telemetry.Client

	mu    sync.Mutex
	calls []toolCall
}

type toolCall struct {
	name    string
	success bool
}

func newMockTelemetry() *mockTelemetryClient {
	return &mockTelemetryClient{Client: telemetry.NewNoop()}
}

func (m *mockTelemetryClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, toolCall{name: toolName, success: success})
}

func (m *mockTelemetryClient) lastCall(t *testing.T) toolCall {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.calls)
	return m.calls[len(m.calls)-1]
}

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()
	tmpDir := t.TempDir()
	database, err := db.New(db.Config{
		Path:        filepath.Join(tmpDir, "test.db"),
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func setupTestFavorites(t *testing.T) *favorites.Store {
	t.Helper()
	store := favorites.NewStore(filepath.Join(t.TempDir(), "favorites.json"))
	require.NoError(t, store.Load())
	return store
}

func setupTestServer(t *testing.T) (*Server, *mockTelemetryClient) {
	t.Helper()
	tc := newMockTelemetry()
	return NewServer(setupTestDB(t), config.DefaultConfig(), setupTestFavorites(t), tc), tc
}

func TestNewServer(t *testing.T) {
	s, _ := setupTestServer(t)

	assert.NotNil(t, s.server)
	assert.NotNil(t, s.gen)
	assert.NotNil(t, s.favorites)
}

func TestNewServer_NilDependencies(t *testing.T) {
	s := NewServer(nil, nil, nil, nil)

	assert.NotNil(t, s.server)
	assert.NotNil(t, s.telemetry)
	assert.NotNil(t, s.cfg)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want int
	}{
		{"missing", map[string]interface{}{}, 25},
		{"valid", map[string]interface{}{"limit": float64(5)}, 5},
		{"capped", map[string]interface{}{"limit": float64(5000)}, 1000},
		{"zero", map[string]interface{}{"limit": float64(0)}, 25},
		{"wrong type", map[string]interface{}{"limit": "10"}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLimit(tt.args, defaultHistoryLimit, maxHistoryLimit))
		})
	}
}
