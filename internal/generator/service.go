package generator

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/resolver"
	"github.com/sirupsen/logrus"
)

type Service interface {
	GenerateQuiz(ctx context.Context, categoryID string) (*quiz.Quiz, error)
	InProgress() bool
}

type service struct {
	client     Client
	quizzes    quiz.QuizService
	inProgress atomic.Bool
}

func NewService(client Client, quizzes quiz.QuizService) Service {
	return &service{client: client, quizzes: quizzes}
}

func (s *service) InProgress() bool {
	return s.inProgress.Load()
}

// GenerateQuiz asks the generation function for questions about a built-in
// category and saves them as a generated quiz. Only one generation runs at a
// time.
func (s *service) GenerateQuiz(ctx context.Context, categoryID string) (*quiz.Quiz, error) {
	log := config.WithContext(ctx).WithField("category", categoryID)

	category, ok := resolver.FindCategory(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}

	if !s.inProgress.CompareAndSwap(false, true) {
		return nil, ErrGenerationInProgress
	}
	defer s.inProgress.Store(false)

	log.Info("Generating quiz")
	questions, err := s.client.Generate(ctx, Request{
		Category:     category.Title,
		Difficulty:   DefaultDifficulty,
		NumQuestions: DefaultNumQuestions,
	})
	if err != nil {
		log.WithError(err).Error("Failed to generate quiz")
		return nil, err
	}

	title := fmt.Sprintf("AI Generated %s Quiz", category.Title)
	q, err := s.quizzes.SaveGenerated(ctx, category.ID, title, questions)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"quiz_id":   q.ID,
		"questions": len(q.Questions),
	}).Info("Quiz generated")
	return q, nil
}
