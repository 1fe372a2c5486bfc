package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrNoQuestions  = errors.New("quiz must contain at least one question")
)

type QuizService interface {
	CreateQuiz(ctx context.Context, draft Quiz) (*Quiz, error)
	PreviewQuiz(ctx context.Context, draft Quiz) (*Quiz, error)
	SaveGenerated(ctx context.Context, category, title string, questions []Question) (*Quiz, error)
	ListQuizzes(ctx context.Context) []Quiz
	GetQuiz(ctx context.Context, id string) (*Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
}

type quizService struct {
	repo QuizRepository
	now  func() time.Time
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{
		repo: repo,
		now:  time.Now,
	}
}

// NewServiceWithClock is NewService with a fixed time source for ids and
// creation timestamps.
func NewServiceWithClock(repo QuizRepository, now func() time.Time) QuizService {
	return &quizService{repo: repo, now: now}
}

func (s *quizService) CreateQuiz(ctx context.Context, draft Quiz) (*Quiz, error) {
	log := config.WithContext(ctx)

	q, err := s.prepare(draft)
	if err != nil {
		log.WithError(err).Warn("Rejected quiz draft")
		return nil, err
	}

	now := s.now().UTC()
	q.ID = fmt.Sprintf("custom_%d", now.UnixMilli())
	q.Origin = OriginCustom
	q.CreatedAt = &now

	if err := s.repo.SaveQuiz(ctx, q); err != nil {
		log.WithError(err).Error("Failed to save quiz")
		return nil, err
	}

	log.WithField("quiz_id", q.ID).Info("Quiz saved")
	return &q, nil
}

// PreviewQuiz validates a draft and returns it as a transient quiz without
// writing it to the repository.
func (s *quizService) PreviewQuiz(ctx context.Context, draft Quiz) (*Quiz, error) {
	q, err := s.prepare(draft)
	if err != nil {
		config.WithContext(ctx).WithError(err).Debug("Rejected quiz preview")
		return nil, err
	}

	q.ID = fmt.Sprintf("preview_%d", s.now().UnixMilli())
	q.Origin = OriginPreview
	q.CreatedAt = nil
	return &q, nil
}

func (s *quizService) SaveGenerated(ctx context.Context, category, title string, questions []Question) (*Quiz, error) {
	log := config.WithContext(ctx)

	now := s.now().UTC()
	q := Quiz{
		ID:         fmt.Sprintf("generated_%s_%d", category, now.UnixMilli()),
		Title:      title,
		Difficulty: DifficultyMedium,
		Category:   category,
		Questions:  questions,
		Origin:     OriginGenerated,
		CreatedAt:  &now,
	}

	if len(q.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if err := Validate(q); err != nil {
		log.WithError(err).Warn("Generated quiz failed validation")
		return nil, err
	}

	if err := s.repo.SaveQuiz(ctx, q); err != nil {
		log.WithError(err).Error("Failed to save generated quiz")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"quiz_id":   q.ID,
		"questions": len(q.Questions),
	}).Info("Generated quiz saved")
	return &q, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) []Quiz {
	return s.repo.ListQuizzes(ctx)
}

func (s *quizService) GetQuiz(ctx context.Context, id string) (*Quiz, error) {
	q := s.repo.FindQuiz(ctx, strings.TrimSpace(id))
	if q == nil {
		return nil, ErrQuizNotFound
	}
	return q, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	if err := s.repo.DeleteQuiz(ctx, strings.TrimSpace(id)); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.WithField("quiz_id", id).Info("Quiz deleted")
	return nil
}

func (s *quizService) prepare(draft Quiz) (Quiz, error) {
	if err := Validate(draft); err != nil {
		return Quiz{}, err
	}

	q := Quiz{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Difficulty:  draft.Difficulty,
		Category:    draft.Category,
		Questions:   draft.PlayableQuestions(),
	}
	if !q.Difficulty.IsValid() {
		q.Difficulty = DifficultyMedium
	}
	if len(q.Questions) == 0 {
		return Quiz{}, ErrNoQuestions
	}
	return q, nil
}
