package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req = req.withDefaults()
	if err := config.ValidateStruct(req); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "invalid request body",
			"fields": config.FieldErrors(err),
		})
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Errorf("Error generating quiz: %v", err)
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Infof("[AIQUIZ] Generated %d questions about %q", len(questions), req.Category)
	config.JSON(w, http.StatusOK, QuestionResponse{Questions: questions})
}
