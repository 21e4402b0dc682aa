package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rcweston90/Weight2Plate/internal/barbell"
	"github.com/rcweston90/Weight2Plate/internal/plates"
)

// New creates an MCP server with all tools and resources registered.
func New(ps PresetSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Weight2Plate", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Barbell plate calculator. Solve plate loadouts for a target per-side weight, derive drop-set weights, browse the barbell catalog, and manage saved presets."),
	)

	h := &handlers{ps: ps, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolCalculatePlates, Handler: h.calculatePlates},
		server.ServerTool{Tool: toolComputeDropSet, Handler: h.computeDropSet},
		server.ServerTool{Tool: toolListBarbells, Handler: h.listBarbells},
		server.ServerTool{Tool: toolListPresets, Handler: h.listPresets},
		server.ServerTool{Tool: toolGetPreset, Handler: h.getPreset},
		server.ServerTool{Tool: toolSavePreset, Handler: h.savePreset},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resBarbellCatalog, Handler: h.barbellCatalog},
		server.ServerResource{Resource: resDenominations, Handler: h.denominations},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ps  PresetSource
	log *slog.Logger
}

// --- Resource definitions ---

var resBarbellCatalog = mcp.NewResource(
	"weight2plate://barbell_catalog",
	"Barbell Catalog",
	mcp.WithResourceDescription("All supported barbell types with their weights in kg and lbs"),
	mcp.WithMIMEType("application/json"),
)

var resDenominations = mcp.NewResource(
	"weight2plate://denominations",
	"Plate Denominations",
	mcp.WithResourceDescription("Available plate weights per unit system, heaviest first"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) barbellCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(barbell.All())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) denominations(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(map[string][]float64{
		string(plates.Pounds):    plates.ForUnit(plates.Pounds).Weights(),
		string(plates.Kilograms): plates.ForUnit(plates.Kilograms).Weights(),
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
