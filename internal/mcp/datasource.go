package mcp

import (
	"context"

	"github.com/rcweston90/Weight2Plate/internal/models"
	"github.com/rcweston90/Weight2Plate/internal/storage"
)

// PresetSource abstracts preset persistence for MCP tools. The local mode
// wraps a storage.Store directly; the remote mode calls the REST API of a
// running server.
type PresetSource interface {
	GetPreset(ctx context.Context, name string) (models.Preset, error)
	PutPreset(ctx context.Context, preset models.Preset) (models.Preset, error)
	ListPresets(ctx context.Context) ([]models.Preset, error)
}

// LocalSource serves presets from a storage.Store in the same process.
type LocalSource struct {
	Store storage.Store
}

// Compile-time check: LocalSource satisfies PresetSource.
var _ PresetSource = LocalSource{}

func (l LocalSource) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	return l.Store.Get(ctx, name)
}

func (l LocalSource) PutPreset(ctx context.Context, preset models.Preset) (models.Preset, error) {
	return l.Store.Put(ctx, preset)
}

func (l LocalSource) ListPresets(ctx context.Context) ([]models.Preset, error) {
	return l.Store.List(ctx)
}
