package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizmaster-lambda/internal/middlewares"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.CorsMiddleware)

	r.Options("/", h.Preflight)
	r.Post("/", h.GenerateQuestions)
	return r
}
