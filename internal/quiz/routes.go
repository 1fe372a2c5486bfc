package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListQuizzes)
	r.Post("/", h.CreateQuiz)
	r.Post("/preview", h.PreviewQuiz)
	r.Get("/{id}", h.GetQuiz)
	r.Delete("/{id}", h.DeleteQuiz)
	return r
}
