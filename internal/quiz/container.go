package quiz

import "github.com/saulo-duarte/quizmaster-lambda/internal/storage"

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(store storage.Store) *QuizContainer {
	repo := NewRepository(store)
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
