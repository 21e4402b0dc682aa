// weight2plate-mcp exposes the plate calculator over MCP stdio. In local
// mode it opens the preset store directly; with -server it talks to a
// running Weight2Plate instance over its REST API instead.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/rcweston90/Weight2Plate/internal/mcp"
	"github.com/rcweston90/Weight2Plate/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	storePath := flag.String("store", "presets.db", "path to the sqlite preset db (local mode)")
	serverURL := flag.String("server", "", "base URL of a running server (remote mode)")
	apiKey := flag.String("api-key", os.Getenv("W2P_AUTH_API_KEY"), "API key for remote preset writes")
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP stream.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var source mcp.PresetSource
	if *serverURL != "" {
		source = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("remote mode", "server", *serverURL)
	} else {
		store, err := storage.OpenSQLite(*storePath)
		if err != nil {
			log.Error("failed to open preset db", "path", *storePath, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		source = mcp.LocalSource{Store: store}
		log.Info("local mode", "store", *storePath)
	}

	s := mcp.New(source, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
