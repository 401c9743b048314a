package analyze

import "github.com/go-chi/chi/v5"

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/analyze", h.Analyze)
	r.Post("/api/report", h.Report)
	r.Get("/api/symptom-groups", h.SymptomGroups)
}
