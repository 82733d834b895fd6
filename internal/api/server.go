package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/ikjoobang/ppt-designer/internal/api/docs"
	"github.com/ikjoobang/ppt-designer/internal/api/middleware"
	questionnaireapi "github.com/ikjoobang/ppt-designer/internal/api/questionnaire"
	recommendationapi "github.com/ikjoobang/ppt-designer/internal/api/recommendation"
	"github.com/ikjoobang/ppt-designer/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	questionnaireHandler *questionnaireapi.Handler,
	recommendationHandler *recommendationapi.Handler,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.Metrics(m))                   // Record request metrics
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Session-scoped API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session)

		questionnaireapi.RegisterRoutes(r, questionnaireHandler)
		recommendationapi.RegisterRoutes(r, recommendationHandler)
	})

	return r
}
