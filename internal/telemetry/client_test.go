package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedID string

func (f fixedID) GetOrCreateTrackingID() string { return string(f) }

func TestNew_DisabledByEnvVar(t *testing.T) {
	t.Setenv(EnvTrackingEnabled, "false")

	client := New(nil)
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient when disabled")
}

func TestNew_DisabledWithoutAPIKey(t *testing.T) {
	originalKey := PostHogAPIKey
	PostHogAPIKey = ""
	defer func() { PostHogAPIKey = originalKey }()

	client := New(fixedID("abc"))
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient without API key")
	assert.Empty(t, client.GetTrackingID())
}

func TestNoopClient_DoesNotPanic(t *testing.T) {
	client := NewNoop()

	client.Track("test_event", map[string]interface{}{"key": "value"})
	client.TrackAppStarted("tui", 3)
	client.TrackAppExited("cli", 5000, 3)
	client.TrackCLICommandExecuted("color", true, 100)
	client.TrackCLIError("color", "validation_error")
	client.TrackCLIHelpViewed("root", []string{"--help"})
	client.TrackColorDerived(SourceCLI, 5, true)
	client.TrackColorCopied(SourceTUI)
	client.TrackHistoryViewed(10)
	client.TrackHistoryCleared(10)
	client.TrackStateRestored(false)
	client.TrackFavoriteAdded()
	client.TrackFavoriteRemoved()
	client.TrackFavoritesListed(2)
	client.TrackMCPToolCalled("ashsha_derive_color", 3, true)
	client.Close()
}

func TestBaseProperties(t *testing.T) {
	props := baseProperties()

	assert.Contains(t, props, "os")
	assert.Contains(t, props, "arch")
	assert.Contains(t, props, "version")
	assert.Contains(t, props, "dev_build")
	assert.Equal(t, "1.0.0", props["algorithm_version"])
}
