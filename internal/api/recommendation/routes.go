package recommendation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers recommendation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/profile/score", h.GetProfileScore)
	r.Get("/recommendations", h.GetRecommendations)

	r.Route("/implementation-plan", func(r chi.Router) {
		r.Get("/", h.GetImplementationPlan)
		r.Get("/export", h.ExportImplementationPlan)
	})
}
