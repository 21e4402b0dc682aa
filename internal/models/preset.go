// Package models defines the persisted entities shared by the storage
// drivers and the HTTP/MCP layers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Preset is a saved calculator configuration, keyed by its unique name.
// Loading a preset restores the three calculation inputs plus the unit
// system they were entered in.
type Preset struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Unit            string    `json:"unit"`
	BarbellID       string    `json:"barbell_id"`
	FinalSideWeight float64   `json:"final_side_weight"`
	DropPercent     float64   `json:"drop_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
