package questionnaire

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers questionnaire routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/questions", func(r chi.Router) {
		r.Get("/", h.ListQuestions)
		r.Get("/phase/{phase_id}", h.ListPhaseQuestions)
	})

	r.Post("/responses", h.SubmitResponse)
	r.Delete("/session", h.ClearSession)
	r.Get("/progress", h.GetProgress)
}
