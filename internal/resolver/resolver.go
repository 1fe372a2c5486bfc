// Package resolver turns a category, a stored quiz id or a preview payload
// into the ordered questions a session plays.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
)

var ErrEmptyQuestionSet = errors.New("no questions to play")

type Kind int

const (
	KindCategory Kind = iota
	KindQuiz
	KindPreview
)

type Selector struct {
	Kind    Kind
	ID      string
	Preview *quiz.Quiz
}

func ForCategory(id string) Selector {
	return Selector{Kind: KindCategory, ID: id}
}

func ForQuiz(id string) Selector {
	return Selector{Kind: KindQuiz, ID: id}
}

func ForPreview(q quiz.Quiz) Selector {
	return Selector{Kind: KindPreview, ID: q.ID, Preview: &q}
}

type Resolver interface {
	Resolve(ctx context.Context, sel Selector) ([]quiz.Question, error)
	ResolveID(ctx context.Context, id string) ([]quiz.Question, error)
}

type resolver struct {
	repo quiz.QuizRepository
}

func New(repo quiz.QuizRepository) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) Resolve(ctx context.Context, sel Selector) ([]quiz.Question, error) {
	var questions []quiz.Question

	switch sel.Kind {
	case KindCategory:
		qs, ok := builtinQuestions(sel.ID)
		if !ok {
			config.WithContext(ctx).Debugf("Unknown category %q, using %s", sel.ID, DefaultCategory)
			qs, _ = builtinQuestions(DefaultCategory)
		}
		questions = qs
	case KindQuiz:
		stored := r.repo.FindQuiz(ctx, sel.ID)
		if stored == nil {
			return nil, fmt.Errorf("quiz %q not found: %w", sel.ID, ErrEmptyQuestionSet)
		}
		questions = stored.PlayableQuestions()
	case KindPreview:
		if sel.Preview != nil {
			questions = sel.Preview.PlayableQuestions()
		}
	default:
		return nil, fmt.Errorf("unknown selector kind %d", sel.Kind)
	}

	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}
	return questions, nil
}

// ResolveID accepts a single identifier: a built-in category, else a stored
// quiz, else the default category.
func (r *resolver) ResolveID(ctx context.Context, id string) ([]quiz.Question, error) {
	id = strings.TrimSpace(id)
	if _, ok := FindCategory(id); ok {
		return r.Resolve(ctx, ForCategory(id))
	}
	if r.repo.FindQuiz(ctx, id) != nil {
		return r.Resolve(ctx, ForQuiz(id))
	}
	return r.Resolve(ctx, ForCategory(id))
}
