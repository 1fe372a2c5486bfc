package resolver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CategoryRoutes serves the category catalogue. generate, when set, handles
// POST /{id}/generate.
func CategoryRoutes(h *Handler, generate http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListCategories)
	if generate != nil {
		r.Post("/{id}/generate", generate)
	}
	return r
}

func QuestionRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ResolveQuestions)
	return r
}
