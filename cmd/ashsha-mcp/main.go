// Package main provides the ashsha-mcp server.
//
// ashsha-mcp exposes color derivation and the shared history database via
// the Model Context Protocol.
//
// Usage:
//
//	ashsha-mcp [flags]
//
// The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/db"
	"github.com/asteroid-belt/ashsha/internal/favorites"
	"github.com/asteroid-belt/ashsha/internal/log"
	"github.com/asteroid-belt/ashsha/internal/mcp"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/pkg/version"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("ashsha-mcp %s\n", version.Version)
		os.Exit(0)
	}

	// Handle --help flag
	if len(os.Args) > 1 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		printHelp()
		os.Exit(0)
	}

	// Setup context with cancellation on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs only go to the file
	if err := log.Init(cfg.BaseDir); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Close() }()

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	favStore := favorites.NewStore(paths.Favorites)
	if err := favStore.Load(); err != nil {
		log.Errorf("Failed to load favorites: %v", err)
	}

	telemetryClient := telemetry.New(database)
	defer telemetryClient.Close()
	telemetryClient.TrackAppStarted("mcp", 0)

	server := mcp.NewServer(database, cfg, favStore, telemetryClient)
	if err := server.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `ashsha-mcp - MCP server for ashsha

USAGE:
    ashsha-mcp [FLAGS]

FLAGS:
    -h, --help       Print this help message
    -v, --version    Print version information

DESCRIPTION:
    ashsha-mcp is a Model Context Protocol (MCP) server that derives
    deterministic colors from text and shares history with the ashsha CLI
    and TUI.

    The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).

CONFIGURATION:
    {
      "mcpServers": {
        "ashsha": {
          "type": "stdio",
          "command": "ashsha-mcp"
        }
      }
    }

TOOLS PROVIDED:
    ashsha_derive_color   Derive a color with its full trace
    ashsha_get_history    List recently saved colors
    ashsha_get_last       Get the last saved color
    ashsha_favorite       Add or remove a favorite text
    ashsha_get_favorites  List favorites

RESOURCES PROVIDED:
    ashsha://color/{text}           Derivation as JSON
    ashsha://color/{text}/markdown  Derivation as a markdown report
`
	fmt.Print(help)
}
