package api

import (
	"context"

	"github.com/VoidMesh/terragen/internal/terrain"
)

//go:generate mockgen -source=service.go -destination=../testmocks/api/mock_service.go -package=mockapi

// TerrainService is the part of terrain.Manager the handlers depend on.
type TerrainService interface {
	Create(ctx context.Context, settings terrain.Settings) (*terrain.Record, *terrain.Result, error)
	Get(ctx context.Context, id string) (*terrain.Record, error)
	List(ctx context.Context, limit, offset int) ([]terrain.Record, int64, error)
	Delete(ctx context.Context, id string) error
	Render(ctx context.Context, id string) (*terrain.Record, *terrain.Result, error)
	Preview(ctx context.Context, settings terrain.Settings) (*terrain.Result, error)
}

var _ TerrainService = (*terrain.Manager)(nil)
