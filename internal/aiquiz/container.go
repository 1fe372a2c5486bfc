package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, settings config.Settings) (*AIQuizContainer, error) {
	provider, err := NewGeminiProvider(ctx, settings.GeminiAPIKey, settings.GeminiModel)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}, nil
}
