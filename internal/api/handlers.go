package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/VoidMesh/terragen/internal/config"
	"github.com/VoidMesh/terragen/internal/export"
	"github.com/VoidMesh/terragen/internal/logging"
	"github.com/VoidMesh/terragen/internal/terrain"
	"github.com/VoidMesh/terragen/internal/texture"
	"github.com/VoidMesh/terragen/internal/validation"
)

const maxRequestBody = 1 << 20

type Handler struct {
	service TerrainService
	presets *config.Presets
	metrics *Metrics
	timeout time.Duration
}

func NewHandler(service TerrainService, presets *config.Presets, metrics *Metrics, timeout time.Duration) *Handler {
	return &Handler{
		service: service,
		presets: presets,
		metrics: metrics,
		timeout: timeout,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "terragen",
		"version":   "1.0.0",
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	names := h.presets.Names()
	response := PresetsResponse{Presets: make([]Preset, 0, len(names))}
	for _, name := range names {
		settings, _ := h.presets.Get(name)
		response.Presets = append(response.Presets, Preset{Name: name, Settings: settings})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) CreateTerrain(w http.ResponseWriter, r *http.Request) {
	settings, err := h.decodeSettings(r)
	if err != nil {
		h.renderServiceError(w, r, "invalid terrain request", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	record, result, err := h.service.Create(ctx, settings)
	h.recordOutcome(err)
	if err != nil {
		h.renderServiceError(w, r, "failed to create terrain", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, TerrainResponse{Terrain: record, Stats: result.Stats()})
}

func (h *Handler) ListTerrains(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid limit", err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid offset", err)
		return
	}

	records, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.renderServiceError(w, r, "failed to list terrains", err)
		return
	}
	if records == nil {
		records = []terrain.Record{}
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, ListTerrainsResponse{Terrains: records, Total: total, Limit: limit, Offset: offset})
}

func (h *Handler) GetTerrain(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, "failed to get terrain", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, record)
}

func (h *Handler) DeleteTerrain(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.renderServiceError(w, r, "failed to delete terrain", err)
		return
	}

	render.NoContent(w, r)
}

func (h *Handler) GetTexture(w http.ResponseWriter, r *http.Request) {
	h.renderAsset(w, r, "image/png", func(buf *bytes.Buffer, result *terrain.Result) error {
		return export.WritePNG(buf, result.Texture)
	})
}

func (h *Handler) GetHeightmap(w http.ResponseWriter, r *http.Request) {
	h.renderAsset(w, r, "image/png", func(buf *bytes.Buffer, result *terrain.Result) error {
		img, err := texture.Heightmap(result.Heights)
		if err != nil {
			return err
		}
		return export.WritePNG(buf, img)
	})
}

func (h *Handler) GetMesh(w http.ResponseWriter, r *http.Request) {
	h.renderAsset(w, r, "model/obj", func(buf *bytes.Buffer, result *terrain.Result) error {
		return export.WriteOBJ(buf, result.Mesh, result.Settings.Name)
	})
}

func (h *Handler) GetHeights(w http.ResponseWriter, r *http.Request) {
	h.renderAsset(w, r, "application/zstd", func(buf *bytes.Buffer, result *terrain.Result) error {
		w.Header().Set("X-Terrain-Width", strconv.Itoa(result.Heights.Width))
		w.Header().Set("X-Terrain-Length", strconv.Itoa(result.Heights.Length))
		return export.WriteHeightsRAW(buf, result.Heights)
	})
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	settings, err := h.decodeSettings(r)
	if err != nil {
		h.renderServiceError(w, r, "invalid preview request", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.service.Preview(ctx, settings)
	h.recordOutcome(err)
	if err != nil {
		h.renderServiceError(w, r, "failed to generate preview", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, PreviewResponse{Settings: result.Settings, Stats: result.Stats()})
}

// renderAsset regenerates the terrain named in the URL and writes the bytes
// produced by encode. The body is buffered so encoding failures still get a
// proper error response.
func (h *Handler) renderAsset(w http.ResponseWriter, r *http.Request, contentType string, encode func(*bytes.Buffer, *terrain.Result) error) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	_, result, err := h.service.Render(ctx, id)
	h.recordOutcome(err)
	if err != nil {
		h.renderServiceError(w, r, "failed to render terrain", err)
		return
	}

	var buf bytes.Buffer
	if err := encode(&buf, result); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to encode terrain", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.WithTerrainID(id).Warn("failed to write asset", "error", err)
	}
}

// decodeSettings resolves a GenerateRequest body into settings. An empty
// body selects the default preset.
func (h *Handler) decodeSettings(r *http.Request) (terrain.Settings, error) {
	var req GenerateRequest
	if r.Body != nil {
		err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			return terrain.Settings{}, validation.Errorf("body", "invalid request body: %v", err)
		}
	}

	name := req.Preset
	if name == "" {
		name = config.DefaultPresetName
	}
	settings, ok := h.presets.Get(name)
	if !ok {
		return terrain.Settings{}, validation.Errorf("preset", "unknown preset %q", name)
	}

	if len(req.Settings) > 0 && string(req.Settings) != "null" {
		if err := json.Unmarshal(req.Settings, &settings); err != nil {
			return terrain.Settings{}, validation.Errorf("settings", "invalid settings: %v", err)
		}
	}
	return settings, nil
}

func (h *Handler) recordOutcome(err error) {
	if h.metrics == nil {
		return
	}
	switch {
	case err == nil:
		h.metrics.RecordGeneration(OutcomeSuccess)
	case validation.IsConfigError(err):
		h.metrics.RecordGeneration(OutcomeInvalid)
	case errors.Is(err, terrain.ErrNotFound):
	default:
		h.metrics.RecordGeneration(OutcomeError)
	}
}

// renderServiceError maps configuration errors to 400 and unknown terrains
// to 404. Anything else is a 500.
func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case validation.IsConfigError(err):
		h.renderError(w, r, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, terrain.ErrNotFound):
		h.renderError(w, r, http.StatusNotFound, "terrain not found", err)
	default:
		h.renderError(w, r, http.StatusInternalServerError, message, err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		if status >= 500 {
			logging.GetLogger().Error("API error", "error", err, "message", message, "status", status)
			// Don't expose internal errors to the client
			errorResponse.Error = "Internal server error"
		} else {
			logging.GetLogger().Debug("API request rejected", "error", err, "status", status)
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}

func queryInt(r *http.Request, key string) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("must not be negative")
	}
	return n, nil
}
