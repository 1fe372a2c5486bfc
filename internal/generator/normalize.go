package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
)

// Normalize trims generated questions and gives each a fresh id. The whole
// batch is rejected if any question is unusable.
func Normalize(raw []GeneratedQuestion) ([]quiz.Question, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrMalformedGenerationResponse)
	}

	out := make([]quiz.Question, 0, len(raw))
	for i, q := range raw {
		text := strings.TrimSpace(q.Question)
		if text == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrMalformedGenerationResponse, i+1)
		}

		options := make([]string, len(q.Options))
		for j, opt := range q.Options {
			options[j] = strings.TrimSpace(opt)
			if options[j] == "" {
				return nil, fmt.Errorf("%w: question %d has an empty option", ErrMalformedGenerationResponse, i+1)
			}
		}
		if len(options) < 2 {
			return nil, fmt.Errorf("%w: question %d needs at least 2 options", ErrMalformedGenerationResponse, i+1)
		}
		if q.CorrectAnswer == nil {
			return nil, fmt.Errorf("%w: question %d has no correct answer", ErrMalformedGenerationResponse, i+1)
		}
		correct := *q.CorrectAnswer
		if correct < 0 || correct >= len(options) {
			return nil, fmt.Errorf("%w: question %d correct answer out of range", ErrMalformedGenerationResponse, i+1)
		}

		out = append(out, quiz.Question{
			ID:            quiz.QuestionID(uuid.NewString()),
			Text:          text,
			Options:       options,
			CorrectAnswer: correct,
		})
	}
	return out, nil
}
