package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quizmaster-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/generator"
	"github.com/saulo-duarte/quizmaster-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/resolver"
)

// RouterConfig holds the feature handlers. A nil handler leaves its routes
// unmounted.
type RouterConfig struct {
	AIQuizHandler    *aiquiz.Handler
	QuizHandler      *quiz.Handler
	ResolverHandler  *resolver.Handler
	GeneratorHandler *generator.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.AIQuizHandler != nil {
		r.Route("/ai-quiz", func(r chi.Router) {
			r.Mount("/", aiquiz.Routes(cfg.AIQuizHandler))
		})
	}

	if cfg.ResolverHandler != nil {
		var generate http.HandlerFunc
		if cfg.GeneratorHandler != nil {
			generate = cfg.GeneratorHandler.GenerateQuiz
		}
		r.Mount("/categories", resolver.CategoryRoutes(cfg.ResolverHandler, generate))
		r.Mount("/questions", resolver.QuestionRoutes(cfg.ResolverHandler))
	}

	if cfg.QuizHandler != nil {
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	}
	return r
}
