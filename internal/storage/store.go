// Package storage persists named calculator presets. Two drivers are
// provided: a file-backed SQLite store for single-user deployments and a
// PostgreSQL store for shared ones. Writes are last-write-wins upserts
// keyed on the preset name.
package storage

import (
	"context"
	"errors"

	"github.com/rcweston90/Weight2Plate/internal/models"
)

// ErrNotFound is returned when no preset exists under the requested name.
var ErrNotFound = errors.New("preset not found")

// Store is the preset key-value store. Put upserts by name; Get and
// Delete report ErrNotFound for missing names.
type Store interface {
	Get(ctx context.Context, name string) (models.Preset, error)
	Put(ctx context.Context, preset models.Preset) (models.Preset, error)
	List(ctx context.Context) ([]models.Preset, error)
	Delete(ctx context.Context, name string) error
	Close() error
}
