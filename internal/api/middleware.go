package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupMiddleware(requestTimeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// Request ID for tracing
		middleware.RequestID,

		// Logging middleware
		middleware.Logger,

		// Recovery middleware
		middleware.Recoverer,

		// Trailing slashes on resource paths
		middleware.StripSlashes,

		// CORS middleware for public API
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Content-Length", "X-Terrain-Width", "X-Terrain-Length"},
			AllowCredentials: false,
			MaxAge:           300,
		}),

		// Content type middleware; asset handlers override it
		middleware.SetHeader("Content-Type", "application/json"),

		// Per-request deadline
		middleware.Timeout(requestTimeout),
	}
}

// ThrottleMiddleware lets at most limit requests run at once and queues up to
// twice as many for a minute before rejecting with 429.
func ThrottleMiddleware(limit int) func(http.Handler) http.Handler {
	if limit < 1 {
		limit = 1
	}
	return middleware.ThrottleBacklog(limit, limit*2, time.Minute)
}
