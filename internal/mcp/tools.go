package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions for the ashsha MCP server.

// deriveColorTool returns the ashsha_derive_color tool definition.
func deriveColorTool() mcp.Tool {
	return mcp.NewTool("ashsha_derive_color",
		mcp.WithDescription("Derive the deterministic color for a piece of text. Returns the hex color together with the full trace: SHA-256 digest, padded digest, the six segments and per-segment mixer values."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to derive a color from. Leading and trailing whitespace is ignored."),
		),
		mcp.WithBoolean("save",
			mcp.Description("Record the result in history and as the last color (default: false)"),
		),
	)
}

// getHistoryTool returns the ashsha_get_history tool definition.
func getHistoryTool() mcp.Tool {
	return mcp.NewTool("ashsha_get_history",
		mcp.WithDescription("List recently saved colors, most recent first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default: 25, max: 1000)"),
		),
	)
}

// getLastTool returns the ashsha_get_last tool definition.
func getLastTool() mcp.Tool {
	return mcp.NewTool("ashsha_get_last",
		mcp.WithDescription("Get the most recently saved color with its full trace."),
	)
}

// favoriteTool returns the ashsha_favorite tool definition.
func favoriteTool() mcp.Tool {
	return mcp.NewTool("ashsha_favorite",
		mcp.WithDescription("Add or remove a text from favorites. Favorites are kept in a separate file and survive clearing history."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to favorite"),
		),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Action to perform: 'add' or 'remove'"),
			mcp.Enum("add", "remove"),
		),
	)
}

// getFavoritesTool returns the ashsha_get_favorites tool definition.
func getFavoritesTool() mcp.Tool {
	return mcp.NewTool("ashsha_get_favorites",
		mcp.WithDescription("List favorited texts with their colors in the order they were added."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default: 50, max: 100)"),
		),
	)
}
