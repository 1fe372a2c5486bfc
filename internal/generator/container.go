package generator

import (
	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
)

type GeneratorContainer struct {
	Client  Client
	Service Service
	Handler *Handler
}

func NewGeneratorContainer(settings config.Settings, quizzes quiz.QuizService) *GeneratorContainer {
	client := NewClient(settings.GenerateURL, nil, settings.GenerateTimeout)
	service := NewService(client, quizzes)
	handler := NewHandler(service)

	return &GeneratorContainer{
		Client:  client,
		Service: service,
		Handler: handler,
	}
}
