package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rcweston90/Weight2Plate/internal/barbell"
	"github.com/rcweston90/Weight2Plate/internal/models"
	"github.com/rcweston90/Weight2Plate/internal/plates"
	"github.com/rcweston90/Weight2Plate/internal/sets"
	"github.com/rcweston90/Weight2Plate/internal/storage"
)

// resolveBar turns a barbell ID or explicit bar weight into a bar weight
// for the given unit. An explicit weight wins; with neither, the bar
// weighs nothing.
func resolveBar(barbellID string, barWeight float64, hasWeight bool, unit plates.Unit) (float64, error) {
	if hasWeight {
		if barWeight < 0 {
			return 0, fmt.Errorf("bar_weight must not be negative")
		}
		return barWeight, nil
	}
	if barbellID == "" {
		return 0, nil
	}
	b, err := barbell.Lookup(barbellID)
	if err != nil {
		return 0, err
	}
	return b.Weight(unit), nil
}

// --- Tool definitions ---

var toolCalculatePlates = mcp.NewTool("calculate_plates",
	mcp.WithDescription("Solve the plate combination for one side of the bar: greedy heaviest-first loading of the target weight. Returns plate counts, the loaded total, and the residual that cannot be represented."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Target weight for one side of the bar")),
	mcp.WithString("unit", mcp.Description("Unit system (lbs or kg). Defaults to lbs."), mcp.Enum("lbs", "kg")),
)

var toolComputeDropSet = mcp.NewTool("compute_drop_set",
	mcp.WithDescription("Derive drop-set weights from a final heavy set and solve plate loadouts for both sets. drop_percent is the share of the final set weight kept on the bar."),
	mcp.WithNumber("final_side_weight", mcp.Required(), mcp.Description("Plate weight on one side of the bar for the final set")),
	mcp.WithNumber("drop_percent", mcp.Required(), mcp.Description("Percent of the final set weight kept for the drop set (0-100)")),
	mcp.WithString("barbell", mcp.Description("Barbell ID from the catalog (e.g. olympic, standard, trap)")),
	mcp.WithNumber("bar_weight", mcp.Description("Explicit bar weight; overrides the barbell lookup")),
	mcp.WithString("unit", mcp.Description("Unit system (lbs or kg). Defaults to lbs."), mcp.Enum("lbs", "kg")),
)

var toolListBarbells = mcp.NewTool("list_barbells",
	mcp.WithDescription("List all supported barbell types with their weights in kg and lbs."),
)

var toolListPresets = mcp.NewTool("list_presets",
	mcp.WithDescription("List all saved calculator presets."),
)

var toolGetPreset = mcp.NewTool("get_preset",
	mcp.WithDescription("Load a saved preset by name. Returns its unit, barbell, final side weight, and drop percent."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Preset name")),
)

var toolSavePreset = mcp.NewTool("save_preset",
	mcp.WithDescription("Save (or overwrite) a named preset of calculator inputs."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Preset name (unique key)")),
	mcp.WithString("barbell", mcp.Required(), mcp.Description("Barbell ID from the catalog")),
	mcp.WithNumber("final_side_weight", mcp.Required(), mcp.Description("Plate weight on one side of the bar for the final set")),
	mcp.WithNumber("drop_percent", mcp.Required(), mcp.Description("Percent of the final set weight kept for the drop set")),
	mcp.WithString("unit", mcp.Description("Unit system (lbs or kg). Defaults to lbs."), mcp.Enum("lbs", "kg")),
)

// --- Tool handlers ---

func (h *handlers) calculatePlates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	unit, err := plates.ParseUnit(req.GetString("unit", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	loadout := plates.Solve(weight, plates.ForUnit(unit))

	result, err := mcp.NewToolResultJSON(loadout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) computeDropSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	side, err := req.RequireFloat("final_side_weight")
	if err != nil {
		return mcp.NewToolResultError("final_side_weight parameter is required"), nil
	}
	drop, err := req.RequireFloat("drop_percent")
	if err != nil {
		return mcp.NewToolResultError("drop_percent parameter is required"), nil
	}
	unit, err := plates.ParseUnit(req.GetString("unit", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	_, hasWeight := req.GetArguments()["bar_weight"]
	barWeight, err := resolveBar(req.GetString("barbell", ""), req.GetFloat("bar_weight", 0), hasWeight, unit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := sets.ComputeDropSet(sets.Params{
		FinalSideWeight: side,
		BarWeight:       barWeight,
		DropPercent:     drop,
	}, plates.ForUnit(unit))

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listBarbells(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(barbell.All())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPresets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	presets, err := h.ps.ListPresets(ctx)
	if err != nil {
		h.log.Error("mcp list_presets", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if presets == nil {
		presets = []models.Preset{}
	}

	result, err := mcp.NewToolResultJSON(presets)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPreset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	preset, err := h.ps.GetPreset(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultError("preset not found: " + name), nil
	}
	if err != nil {
		h.log.Error("mcp get_preset", "name", name, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(preset)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) savePreset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	barbellID, err := req.RequireString("barbell")
	if err != nil {
		return mcp.NewToolResultError("barbell parameter is required"), nil
	}
	side, err := req.RequireFloat("final_side_weight")
	if err != nil {
		return mcp.NewToolResultError("final_side_weight parameter is required"), nil
	}
	drop, err := req.RequireFloat("drop_percent")
	if err != nil {
		return mcp.NewToolResultError("drop_percent parameter is required"), nil
	}
	unit, err := plates.ParseUnit(req.GetString("unit", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := barbell.Lookup(barbellID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	preset, err := h.ps.PutPreset(ctx, models.Preset{
		Name:            name,
		Unit:            string(unit),
		BarbellID:       barbellID,
		FinalSideWeight: side,
		DropPercent:     drop,
	})
	if err != nil {
		h.log.Error("mcp save_preset", "name", name, "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(preset)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
