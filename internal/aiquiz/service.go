package aiquiz

import (
	"context"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error) {
	raw, err := s.provider.SendPrompt(ctx, BuildPrompt(req.withDefaults()))
	if err != nil {
		return nil, err
	}
	return ExtractQuestions(raw)
}
