package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	analyzeapi "github.com/dongycare/checker-backend/internal/api/analyze"
	"github.com/dongycare/checker-backend/internal/api/docs"
	"github.com/dongycare/checker-backend/internal/api/middleware"
	"github.com/dongycare/checker-backend/internal/config"
	"github.com/dongycare/checker-backend/internal/metrics"
	"github.com/dongycare/checker-backend/internal/pkg/response"
)

// SetupRouter assembles the HTTP surface: the relay endpoints plus
// health, metrics and documentation.
func SetupRouter(cfg *config.Config, handler *analyzeapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.NewRateLimiter(cfg.RateLimitCfg).Middleware)
	r.Use(metrics.Middleware)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusNotFound, "Not Found")
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]string{
			"service": "checker-backend",
			"status":  "running",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	docs.RegisterRoutes(r)
	handler.RegisterRoutes(r)

	return r
}
