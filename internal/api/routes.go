package api

import (
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler, metrics *Metrics, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware(requestTimeout) {
		r.Use(middleware)
	}
	if metrics != nil {
		r.Use(metrics.Middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)
	if metrics != nil {
		r.Method("GET", "/metrics", metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		// One in-flight generation per CPU
		r.Use(ThrottleMiddleware(runtime.GOMAXPROCS(0)))

		r.Get("/presets", handler.ListPresets)
		r.Post("/preview", handler.Preview)

		r.Route("/terrains", func(r chi.Router) {
			r.Post("/", handler.CreateTerrain)
			r.Get("/", handler.ListTerrains)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetTerrain)
				r.Delete("/", handler.DeleteTerrain)

				// Assets are regenerated from the stored settings on every request
				r.Get("/texture.png", handler.GetTexture)
				r.Get("/heightmap.png", handler.GetHeightmap)
				r.Get("/mesh.obj", handler.GetMesh)
				r.Get("/heights.r32.zst", handler.GetHeights)
			})
		})
	})

	return r
}
