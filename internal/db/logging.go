package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/VoidMesh/terragen/internal/logging"
)

// LoggingQueries wraps the generated Queries struct to add debug logging
type LoggingQueries struct {
	*Queries
}

// NewLoggingQueries creates a new LoggingQueries instance
func NewLoggingQueries(db DBTX) *LoggingQueries {
	return &LoggingQueries{
		Queries: New(db),
	}
}

// WithTx creates a new LoggingQueries with a transaction
func (lq *LoggingQueries) WithTx(tx *sql.Tx) *LoggingQueries {
	return &LoggingQueries{
		Queries: lq.Queries.WithTx(tx),
	}
}

func (lq *LoggingQueries) logQuery(queryName string, start time.Time, err error, args ...interface{}) {
	duration := time.Since(start)
	logger := logging.GetLogger()

	if err != nil {
		logger.Debug("Database query failed",
			"query", queryName,
			"duration", duration,
			"error", err,
			"args", args,
		)
	} else {
		logger.Debug("Database query executed",
			"query", queryName,
			"duration", duration,
			"args", args,
		)
	}
}

// CreateTerrain with logging. The settings blob is left out of the log line.
func (lq *LoggingQueries) CreateTerrain(ctx context.Context, arg CreateTerrainParams) error {
	start := time.Now()
	logging.GetLogger().Debug("Executing CreateTerrain", "terrain_id", arg.ID, "seed", arg.Seed)

	err := lq.Queries.CreateTerrain(ctx, arg)
	lq.logQuery("CreateTerrain", start, err, arg.ID, arg.Name, arg.Width, arg.Length)
	return err
}

// GetTerrain with logging
func (lq *LoggingQueries) GetTerrain(ctx context.Context, id string) (Terrain, error) {
	start := time.Now()
	logging.GetLogger().Debug("Executing GetTerrain", "terrain_id", id)

	result, err := lq.Queries.GetTerrain(ctx, id)
	lq.logQuery("GetTerrain", start, err, id)
	return result, err
}

// ListTerrains with logging
func (lq *LoggingQueries) ListTerrains(ctx context.Context, arg ListTerrainsParams) ([]Terrain, error) {
	start := time.Now()
	logging.GetLogger().Debug("Executing ListTerrains", "limit", arg.Limit, "offset", arg.Offset)

	result, err := lq.Queries.ListTerrains(ctx, arg)
	lq.logQuery("ListTerrains", start, err, arg)

	if err == nil {
		logging.GetLogger().Debug("ListTerrains result", "terrain_count", len(result))
	}

	return result, err
}

// CountTerrains with logging
func (lq *LoggingQueries) CountTerrains(ctx context.Context) (int64, error) {
	start := time.Now()

	count, err := lq.Queries.CountTerrains(ctx)
	lq.logQuery("CountTerrains", start, err)
	return count, err
}

// DeleteTerrain with logging
func (lq *LoggingQueries) DeleteTerrain(ctx context.Context, id string) (int64, error) {
	start := time.Now()
	logging.GetLogger().Debug("Executing DeleteTerrain", "terrain_id", id)

	affected, err := lq.Queries.DeleteTerrain(ctx, id)
	lq.logQuery("DeleteTerrain", start, err, id)

	if err == nil {
		logging.GetLogger().Debug("DeleteTerrain result", "rows_affected", affected)
	}

	return affected, err
}
