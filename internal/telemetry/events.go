package telemetry

import (
	"runtime"

	"github.com/asteroid-belt/ashsha/pkg/colorhash"
	"github.com/asteroid-belt/ashsha/pkg/version"
)

// Event names
const (
	EventAppStarted         = "app_started"
	EventAppExited          = "app_exited"
	EventCLICommandExecuted = "cli_command_executed"
	EventCLIErrorOccurred   = "cli_error_occurred"
	EventCLIHelpViewed      = "cli_help_viewed"
	EventColorDerived       = "color_derived"
	EventColorCopied        = "color_copied"
	EventHistoryViewed      = "history_viewed"
	EventHistoryCleared     = "history_cleared"
	EventStateRestored      = "state_restored"
	EventFavoriteAdded      = "favorite_added"
	EventFavoriteRemoved    = "favorite_removed"
	EventFavoritesListed    = "favorites_listed"
	EventMCPToolCalled      = "mcp_tool_called"
)

// Sources reported with color events.
const (
	SourceCLI = "cli"
	SourceTUI = "tui"
	SourceMCP = "mcp"
)

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":                runtime.GOOS,
		"arch":              runtime.GOARCH,
		"version":           version.Short(),
		"prerelease":        version.IsPrerelease(),
		"dev_build":         version.IsDevBuild(),
		"algorithm_version": colorhash.AlgorithmVersion,
	}
}

// TrackAppStarted tracks application startup.
func (c *posthogClient) TrackAppStarted(mode string, historyCount int) {
	props := baseProperties()
	props["mode"] = mode
	props["history_count"] = historyCount
	c.Track(EventAppStarted, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64, colorsDerived int) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	props["colors_derived"] = colorsDerived
	c.Track(EventAppExited, props)
}

// TrackCLICommandExecuted tracks CLI command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["execution_duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks a classified CLI error.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackCLIHelpViewed tracks --help usage.
func (c *posthogClient) TrackCLIHelpViewed(commandName string, cliArgs []string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["arg_count"] = len(cliArgs)
	c.Track(EventCLIHelpViewed, props)
}

// TrackColorDerived tracks a derivation. Only the input length is sent.
func (c *posthogClient) TrackColorDerived(source string, inputLength int, saved bool) {
	props := baseProperties()
	props["source"] = source
	props["input_length"] = inputLength
	props["saved"] = saved
	c.Track(EventColorDerived, props)
}

// TrackColorCopied tracks a clipboard copy.
func (c *posthogClient) TrackColorCopied(source string) {
	props := baseProperties()
	props["source"] = source
	c.Track(EventColorCopied, props)
}

// TrackHistoryViewed tracks history listing.
func (c *posthogClient) TrackHistoryViewed(count int) {
	props := baseProperties()
	props["count"] = count
	c.Track(EventHistoryViewed, props)
}

// TrackHistoryCleared tracks history deletion.
func (c *posthogClient) TrackHistoryCleared(removed int) {
	props := baseProperties()
	props["removed"] = removed
	c.Track(EventHistoryCleared, props)
}

// TrackStateRestored tracks a startup restore of the last result.
func (c *posthogClient) TrackStateRestored(rederived bool) {
	props := baseProperties()
	props["rederived"] = rederived
	c.Track(EventStateRestored, props)
}

// TrackFavoriteAdded tracks pinning a text.
func (c *posthogClient) TrackFavoriteAdded() {
	c.Track(EventFavoriteAdded, baseProperties())
}

// TrackFavoriteRemoved tracks unpinning a text.
func (c *posthogClient) TrackFavoriteRemoved() {
	c.Track(EventFavoriteRemoved, baseProperties())
}

// TrackFavoritesListed tracks favorites listing.
func (c *posthogClient) TrackFavoritesListed(count int) {
	props := baseProperties()
	props["count"] = count
	c.Track(EventFavoritesListed, props)
}

// TrackMCPToolCalled tracks an MCP tool invocation.
func (c *posthogClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {
	props := baseProperties()
	props["tool_name"] = toolName
	props["duration_ms"] = durationMs
	props["success"] = success
	c.Track(EventMCPToolCalled, props)
}

// --- noopClient implementations (no-ops) ---

func (c *noopClient) TrackAppStarted(mode string, historyCount int)                          {}
func (c *noopClient) TrackAppExited(mode string, sessionDurationMs int64, colorsDerived int) {}
func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
}
func (c *noopClient) TrackCLIError(commandName, errorType string)                        {}
func (c *noopClient) TrackCLIHelpViewed(commandName string, cliArgs []string)            {}
func (c *noopClient) TrackColorDerived(source string, inputLength int, saved bool)       {}
func (c *noopClient) TrackColorCopied(source string)                                     {}
func (c *noopClient) TrackHistoryViewed(count int)                                       {}
func (c *noopClient) TrackHistoryCleared(removed int)                                    {}
func (c *noopClient) TrackStateRestored(rederived bool)                                  {}
func (c *noopClient) TrackFavoriteAdded()                                                {}
func (c *noopClient) TrackFavoriteRemoved()                                              {}
func (c *noopClient) TrackFavoritesListed(count int)                                     {}
func (c *noopClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {}
