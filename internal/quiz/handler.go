package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) decodeDraft(w http.ResponseWriter, r *http.Request) (Quiz, bool) {
	log := config.WithContext(r.Context())

	var dto QuizDraftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid quiz draft body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return Quiz{}, false
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "invalid request body",
			"fields": config.FieldErrors(err),
		})
		return Quiz{}, false
	}
	return dto.ToQuiz(), true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		config.JSON(w, http.StatusUnprocessableEntity, verr)
	case errors.Is(err, ErrNoQuestions):
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrQuizNotFound):
		http.Error(w, "quiz not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	q, err := h.service.CreateQuiz(r.Context(), draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) PreviewQuiz(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	q, err := h.service.PreviewQuiz(r.Context(), draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes := h.service.ListQuizzes(r.Context())

	summaries := make([]QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, ToSummary(q))
	}
	config.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	q, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), quizID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
