package generator

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	categoryID := chi.URLParam(r, "id")

	q, err := h.service.GenerateQuiz(r.Context(), categoryID)
	if err != nil {
		var verr *quiz.ValidationError
		switch {
		case errors.Is(err, ErrUnknownCategory):
			config.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrGenerationInProgress):
			config.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrGenerationFailed), errors.Is(err, ErrMalformedGenerationResponse):
			config.Error(w, http.StatusBadGateway, ErrGenerationFailed.Error())
		case errors.As(err, &verr):
			config.JSON(w, http.StatusUnprocessableEntity, verr)
		default:
			log.WithError(err).Error("Failed to generate quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, q)
}
