package resolver

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
)

type Handler struct {
	resolver Resolver
}

func NewHandler(r Resolver) *Handler {
	return &Handler{resolver: r}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, Categories())
}

// ResolveQuestions serves GET /questions?category=..., ?quiz=... or ?id=...
func (h *Handler) ResolveQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	query := r.URL.Query()

	var (
		questions []quiz.Question
		err       error
	)
	switch {
	case query.Get("quiz") != "":
		questions, err = h.resolver.Resolve(r.Context(), ForQuiz(query.Get("quiz")))
	case query.Get("category") != "":
		questions, err = h.resolver.Resolve(r.Context(), ForCategory(query.Get("category")))
	case query.Get("id") != "":
		questions, err = h.resolver.ResolveID(r.Context(), query.Get("id"))
	default:
		http.Error(w, "category, quiz or id required", http.StatusBadRequest)
		return
	}

	if err != nil {
		if errors.Is(err, ErrEmptyQuestionSet) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		log.WithError(err).Error("Failed to resolve questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}
