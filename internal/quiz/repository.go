package quiz

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/storage"
)

// CollectionKey is the single record holding every saved quiz.
const CollectionKey = "customQuizzes"

// QuizRepository persists the quiz collection as one record. It does no
// locking: the collection is read, modified and written back whole, and the
// last writer wins.
type QuizRepository interface {
	ListQuizzes(ctx context.Context) []Quiz
	SaveQuiz(ctx context.Context, q Quiz) error
	DeleteQuiz(ctx context.Context, id string) error
	FindQuiz(ctx context.Context, id string) *Quiz
}

type quizRepository struct {
	store storage.Store
}

func NewRepository(store storage.Store) QuizRepository {
	return &quizRepository{store: store}
}

// ListQuizzes never fails: an absent or unreadable record is an empty list.
func (r *quizRepository) ListQuizzes(ctx context.Context) []Quiz {
	log := config.WithContext(ctx)

	raw, found, err := r.store.Get(ctx, CollectionKey)
	if err != nil {
		log.WithError(err).Warn("Failed to read quiz collection, treating as empty")
		return []Quiz{}
	}
	if !found || len(raw) == 0 {
		return []Quiz{}
	}

	var quizzes []Quiz
	if err := json.Unmarshal(raw, &quizzes); err != nil {
		log.WithError(err).Warn("Quiz collection is corrupt, treating as empty")
		return []Quiz{}
	}
	if quizzes == nil {
		return []Quiz{}
	}

	for i := range quizzes {
		if quizzes[i].Origin == "" {
			quizzes[i].Origin = legacyOrigin(quizzes[i].ID)
		}
	}
	return quizzes
}

func (r *quizRepository) SaveQuiz(ctx context.Context, q Quiz) error {
	quizzes := r.ListQuizzes(ctx)
	quizzes = append(quizzes, q)
	return r.write(ctx, quizzes)
}

func (r *quizRepository) DeleteQuiz(ctx context.Context, id string) error {
	quizzes := r.ListQuizzes(ctx)
	kept := make([]Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	return r.write(ctx, kept)
}

func (r *quizRepository) FindQuiz(ctx context.Context, id string) *Quiz {
	for _, q := range r.ListQuizzes(ctx) {
		if q.ID == id {
			found := q
			return &found
		}
	}
	return nil
}

func (r *quizRepository) write(ctx context.Context, quizzes []Quiz) error {
	raw, err := json.Marshal(quizzes)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, CollectionKey, raw); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to persist quiz collection")
		return err
	}
	return nil
}

func legacyOrigin(id string) Origin {
	if strings.HasPrefix(id, "generated_") {
		return OriginGenerated
	}
	return OriginCustom
}
