package api

import (
	"encoding/json"

	"github.com/VoidMesh/terragen/internal/terrain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GenerateRequest selects a preset and optionally overrides some of its
// settings. Fields missing from Settings keep the preset's values.
type GenerateRequest struct {
	Preset   string          `json:"preset,omitempty"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

type TerrainResponse struct {
	Terrain *terrain.Record `json:"terrain"`
	Stats   terrain.Stats   `json:"stats"`
}

type ListTerrainsResponse struct {
	Terrains []terrain.Record `json:"terrains"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

type PreviewResponse struct {
	Settings terrain.Settings `json:"settings"`
	Stats    terrain.Stats    `json:"stats"`
}

type Preset struct {
	Name     string           `json:"name"`
	Settings terrain.Settings `json:"settings"`
}

type PresetsResponse struct {
	Presets []Preset `json:"presets"`
}
