package terrain

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VoidMesh/terragen/internal/db"
)

// ErrNotFound is returned when no terrain record has the requested ID.
var ErrNotFound = errors.New("terrain not found")

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Record is a stored terrain. Only the settings are persisted; the buffers
// are regenerated from them on demand.
type Record struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Seed          int64     `json:"seed"`
	Width         int       `json:"width"`
	Length        int       `json:"length"`
	Settings      Settings  `json:"settings"`
	VertexCount   int       `json:"vertex_count"`
	TriangleCount int       `json:"triangle_count"`
	MinHeight     float64   `json:"min_height"`
	MaxHeight     float64   `json:"max_height"`
	CreatedAt     time.Time `json:"created_at"`
}

type Manager struct {
	db        *sql.DB
	queries   *db.LoggingQueries
	generator *Generator
	logger    LoggerInterface
	now       func() time.Time
}

// NewManager creates a manager storing records in database.
func NewManager(database *sql.DB, generator *Generator, logger LoggerInterface) *Manager {
	return &Manager{
		db:        database,
		queries:   db.NewLoggingQueries(database),
		generator: generator,
		logger:    logger.With("component", "terrain-manager"),
		now:       time.Now,
	}
}

// Preview generates a terrain without storing it.
func (m *Manager) Preview(ctx context.Context, settings Settings) (*Result, error) {
	return m.generator.Generate(ctx, settings)
}

// Create generates a terrain from settings and stores its record.
func (m *Manager) Create(ctx context.Context, settings Settings) (*Record, *Result, error) {
	result, err := m.generator.Generate(ctx, settings)
	if err != nil {
		return nil, nil, err
	}

	stored := result.Settings
	if stored.Name == "" {
		stored.Name = fmt.Sprintf("terrain-%d", result.Seed)
		result.Settings.Name = stored.Name
	}

	blob, err := json.Marshal(stored)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode settings: %w", err)
	}

	record := &Record{
		ID:            uuid.NewString(),
		Name:          stored.Name,
		Seed:          result.Seed,
		Width:         stored.Width,
		Length:        stored.Length,
		Settings:      stored,
		VertexCount:   result.Mesh.VertexCount(),
		TriangleCount: result.Mesh.TriangleCount(),
		MinHeight:     result.Heights.Min,
		MaxHeight:     result.Heights.Max,
		CreatedAt:     m.now().UTC(),
	}

	err = m.queries.CreateTerrain(ctx, db.CreateTerrainParams{
		ID:            record.ID,
		Name:          record.Name,
		Seed:          record.Seed,
		Width:         int64(record.Width),
		Length:        int64(record.Length),
		Settings:      blob,
		VertexCount:   int64(record.VertexCount),
		TriangleCount: int64(record.TriangleCount),
		MinHeight:     record.MinHeight,
		MaxHeight:     record.MaxHeight,
		CreatedAt:     record.CreatedAt,
	})
	if err != nil {
		m.logger.Error("failed to store terrain", "error", err, "terrain_id", record.ID)
		return nil, nil, fmt.Errorf("failed to store terrain: %w", err)
	}

	m.logger.Info("Terrain created", "terrain_id", record.ID, "name", record.Name, "seed", record.Seed)
	return record, result, nil
}

// Get loads a stored record.
func (m *Manager) Get(ctx context.Context, id string) (*Record, error) {
	row, err := m.queries.GetTerrain(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get terrain: %w", err)
	}
	return recordFromRow(row)
}

// List returns a page of records, newest first, and the total record count.
// A non-positive limit selects DefaultListLimit.
func (m *Manager) List(ctx context.Context, limit, offset int) ([]Record, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	// page and total come from the same snapshot
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queries := m.queries.WithTx(tx)

	rows, err := queries.ListTerrains(ctx, db.ListTerrainsParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list terrains: %w", err)
	}

	total, err := queries.CountTerrains(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count terrains: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record, err := recordFromRow(row)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *record)
	}
	return records, total, nil
}

// Delete removes a stored record.
func (m *Manager) Delete(ctx context.Context, id string) error {
	affected, err := m.queries.DeleteTerrain(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete terrain: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	m.logger.Info("Terrain deleted", "terrain_id", id)
	return nil
}

// Render regenerates the buffers of a stored terrain. The stored settings
// carry the resolved seed, so the output matches the original generation.
func (m *Manager) Render(ctx context.Context, id string) (*Record, *Result, error) {
	record, err := m.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	result, err := m.generator.Generate(ctx, record.Settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render terrain %s: %w", id, err)
	}
	return record, result, nil
}

func recordFromRow(row db.Terrain) (*Record, error) {
	var settings Settings
	if err := json.Unmarshal(row.Settings, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings of terrain %s: %w", row.ID, err)
	}

	return &Record{
		ID:            row.ID,
		Name:          row.Name,
		Seed:          row.Seed,
		Width:         int(row.Width),
		Length:        int(row.Length),
		Settings:      settings,
		VertexCount:   int(row.VertexCount),
		TriangleCount: int(row.TriangleCount),
		MinHeight:     row.MinHeight,
		MaxHeight:     row.MaxHeight,
		CreatedAt:     row.CreatedAt,
	}, nil
}
