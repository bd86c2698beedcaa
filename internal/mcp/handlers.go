package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/asteroid-belt/ashsha/internal/favorites"
	"github.com/asteroid-belt/ashsha/internal/models"
	"github.com/asteroid-belt/ashsha/internal/render"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

// Pagination constants for MCP tool handlers.
const (
	defaultHistoryLimit   = 25
	maxHistoryLimit       = 1000
	defaultFavoritesLimit = 50
	maxFavoritesLimit     = 100
)

// parseLimit extracts and validates a limit parameter from MCP tool arguments.
// Returns defaultVal if not present, caps at maxVal if exceeded.
func parseLimit(arguments map[string]interface{}, defaultVal, maxVal int) int {
	if l, ok := arguments["limit"].(float64); ok && l > 0 {
		limit := int(l)
		if limit > maxVal {
			return maxVal
		}
		return limit
	}
	return defaultVal
}

// trackToolCall is a helper to track MCP tool invocations.
func (s *Server) trackToolCall(toolName string, start time.Time, success bool) {
	durationMs := time.Since(start).Milliseconds()
	s.telemetry.TrackMCPToolCalled(toolName, durationMs, success)
}

// DeriveResponse is the result of ashsha_derive_color.
type DeriveResponse struct {
	*colorhash.Result
	TextColor string `json:"text_color"`
	Saved     bool   `json:"saved"`
}

// HistoryResponse represents a history entry in MCP tool responses.
type HistoryResponse struct {
	Text      string    `json:"text"`
	HexColor  string    `json:"hex_color"`
	CreatedAt time.Time `json:"created_at"`
}

// LastResponse is the result of ashsha_get_last.
type LastResponse struct {
	Found  bool              `json:"found"`
	Result *colorhash.Result `json:"result,omitempty"`
}

// FavoriteResult represents the result of a favorite add/remove.
type FavoriteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toHistoryResponses(entries []models.HistoryEntry) []HistoryResponse {
	out := make([]HistoryResponse, len(entries))
	for i, e := range entries {
		out[i] = HistoryResponse{Text: e.Text, HexColor: e.HexColor, CreatedAt: e.CreatedAt}
	}
	return out
}

// jsonResult marshals v into a text tool result.
func (s *Server) jsonResult(tool string, start time.Time, v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	s.trackToolCall(tool, start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleDeriveColor handles the ashsha_derive_color tool.
func (s *Server) handleDeriveColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "ashsha_derive_color"
	start := time.Now()

	text, ok := req.Params.Arguments["text"].(string)
	if !ok {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	save, _ := req.Params.Arguments["save"].(bool)

	var (
		res *colorhash.Result
		err error
	)
	if save && s.db != nil {
		res, err = s.gen.Generate(text, telemetry.SourceMCP)
	} else {
		save = false
		res, err = s.gen.Preview(text)
		if err == nil {
			s.telemetry.TrackColorDerived(telemetry.SourceMCP, len(res.Input), false)
		}
	}
	if err != nil {
		s.trackToolCall(tool, start, false)
		if errors.Is(err, colorhash.ErrEmptyInput) {
			return mcp.NewToolResultError("text must not be empty"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to derive color: %v", err)), nil
	}

	return s.jsonResult(tool, start, DeriveResponse{
		Result:    res,
		TextColor: render.TextColor(res.Color),
		Saved:     save,
	})
}

// handleGetHistory handles the ashsha_get_history tool.
func (s *Server) handleGetHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "ashsha_get_history"
	start := time.Now()

	if s.db == nil {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError("history database not available"), nil
	}

	limit := parseLimit(req.Params.Arguments, defaultHistoryLimit, maxHistoryLimit)
	entries, err := s.db.ListHistory(limit)
	if err != nil {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to list history: %v", err)), nil
	}

	s.telemetry.TrackHistoryViewed(len(entries))
	return s.jsonResult(tool, start, toHistoryResponses(entries))
}

// handleGetLast handles the ashsha_get_last tool.
func (s *Server) handleGetLast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "ashsha_get_last"
	start := time.Now()

	res, err := s.gen.Restore()
	if err != nil {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to load last color: %v", err)), nil
	}

	return s.jsonResult(tool, start, LastResponse{Found: res != nil, Result: res})
}

// handleFavorite handles the ashsha_favorite tool.
func (s *Server) handleFavorite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "ashsha_favorite"
	start := time.Now()

	text, ok := req.Params.Arguments["text"].(string)
	if !ok || text == "" {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	action, ok := req.Params.Arguments["action"].(string)
	if !ok || action == "" {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError("action parameter is required"), nil
	}
	if action != "add" && action != "remove" {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError("action must be 'add' or 'remove'"), nil
	}

	if s.favorites == nil {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError("favorites store not initialized"), nil
	}

	var message string
	if action == "add" {
		res, err := s.gen.Preview(text)
		if err != nil {
			s.trackToolCall(tool, start, false)
			return mcp.NewToolResultError(fmt.Sprintf("failed to derive color: %v", err)), nil
		}
		if err := s.favorites.Add(res.Input, res.HexColor); err != nil {
			s.trackToolCall(tool, start, false)
			return mcp.NewToolResultError(fmt.Sprintf("failed to add favorite: %v", err)), nil
		}
		s.telemetry.TrackFavoriteAdded()
		message = fmt.Sprintf("'%s' (%s) added to favorites", res.Input, res.HexColor)
	} else {
		if err := s.favorites.Remove(text); err != nil {
			s.trackToolCall(tool, start, false)
			return mcp.NewToolResultError(fmt.Sprintf("failed to remove favorite: %v", err)), nil
		}
		s.telemetry.TrackFavoriteRemoved()
		message = fmt.Sprintf("'%s' removed from favorites", text)
	}

	return s.jsonResult(tool, start, FavoriteResult{Success: true, Message: message})
}

// handleGetFavorites handles the ashsha_get_favorites tool.
func (s *Server) handleGetFavorites(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "ashsha_get_favorites"
	start := time.Now()

	if s.favorites == nil {
		s.trackToolCall(tool, start, false)
		return mcp.NewToolResultError("favorites store not initialized"), nil
	}

	limit := parseLimit(req.Params.Arguments, defaultFavoritesLimit, maxFavoritesLimit)
	list := s.favorites.List()
	if len(list) > limit {
		list = list[:limit]
	}
	if list == nil {
		list = []favorites.Favorite{}
	}

	s.telemetry.TrackFavoritesListed(len(list))
	return s.jsonResult(tool, start, list)
}
