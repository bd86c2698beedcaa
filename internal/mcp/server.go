// Package mcp provides the Model Context Protocol server for ashsha.
//
// The server exposes color derivation and the shared history database to
// MCP-compatible clients. It goes through the same generator the TUI and
// CLI use, so colors saved here show up everywhere else.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/db"
	"github.com/asteroid-belt/ashsha/internal/favorites"
	"github.com/asteroid-belt/ashsha/internal/generator"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/pkg/version"
)

// Server wraps the MCP server with ashsha-specific functionality.
type Server struct {
	db        *db.DB
	cfg       *config.Config
	gen       *generator.Generator
	favorites *favorites.Store // may be nil
	server    *server.MCPServer
	telemetry telemetry.Client
}

// NewServer creates a new MCP server instance.
func NewServer(database *db.DB, cfg *config.Config, favStore *favorites.Store, tc telemetry.Client) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if tc == nil {
		tc = telemetry.NewNoop()
	}

	// A nil *db.DB must not become a non-nil Store.
	var store generator.Store
	if database != nil {
		store = database
	}

	s := &Server{
		db:        database,
		cfg:       cfg,
		gen:       generator.New(store, cfg, tc),
		favorites: favStore,
		telemetry: tc,
	}

	s.server = server.NewMCPServer(
		"ashsha",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Serve starts the MCP server over stdio.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// registerTools adds all ashsha tools to the MCP server.
func (s *Server) registerTools() {
	s.server.AddTool(deriveColorTool(), s.handleDeriveColor)
	s.server.AddTool(getHistoryTool(), s.handleGetHistory)
	s.server.AddTool(getLastTool(), s.handleGetLast)

	s.server.AddTool(favoriteTool(), s.handleFavorite)
	s.server.AddTool(getFavoritesTool(), s.handleGetFavorites)
}

// registerResources adds the color resource templates.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			resourcePrefix+"color/{text}",
			"Color derivation",
			mcp.WithTemplateDescription("JSON derivation trace for URL-encoded text"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleColorResource,
	)

	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			resourcePrefix+"color/{text}/markdown",
			"Color report",
			mcp.WithTemplateDescription("Markdown report of the derivation for URL-encoded text"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleColorResource,
	)
}
