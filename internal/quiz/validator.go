package quiz

import (
	"fmt"
	"strings"
)

type Rule string

const (
	RuleMissingTitle         Rule = "missing_title"
	RuleIncompleteQuestion   Rule = "incomplete_question"
	RuleInsufficientOptions  Rule = "insufficient_options"
	RuleInvalidCorrectAnswer Rule = "invalid_correct_answer"
)

const minFilledOptions = 2

// ValidationError names the first authoring rule a quiz breaks. Index is the
// zero-based question position, or -1 for quiz-level rules.
type ValidationError struct {
	Rule    Rule   `json:"rule"`
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

// Is matches any ValidationError with the same rule, so callers can use the
// Err* values with errors.Is regardless of the question index.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Rule == e.Rule
}

var (
	ErrMissingTitle         = &ValidationError{Rule: RuleMissingTitle, Index: -1, Title: "Missing Title", Message: "Please enter a quiz title"}
	ErrIncompleteQuestion   = &ValidationError{Rule: RuleIncompleteQuestion, Index: -1, Title: "Incomplete Question"}
	ErrInsufficientOptions  = &ValidationError{Rule: RuleInsufficientOptions, Index: -1, Title: "Not Enough Options"}
	ErrInvalidCorrectAnswer = &ValidationError{Rule: RuleInvalidCorrectAnswer, Index: -1, Title: "Invalid Correct Answer"}
)

func questionError(base *ValidationError, index int, format string) *ValidationError {
	return &ValidationError{
		Rule:    base.Rule,
		Index:   index,
		Title:   base.Title,
		Message: fmt.Sprintf(format, index+1),
	}
}

// Validate checks the authoring rules in a fixed order and returns the first
// one violated: title, then for each question its text, its options and its
// correct answer.
func Validate(q Quiz) error {
	if strings.TrimSpace(q.Title) == "" {
		return ErrMissingTitle
	}

	for i, question := range q.Questions {
		if !question.HasText() {
			return questionError(ErrIncompleteQuestion, i, "Question %d is missing a question text")
		}

		filled := 0
		for _, opt := range question.Options {
			if strings.TrimSpace(opt) != "" {
				filled++
			}
		}
		if filled < minFilledOptions {
			return questionError(ErrInsufficientOptions, i, "Question %d needs at least 2 options")
		}

		idx := question.CorrectAnswer
		if idx < 0 || idx >= len(question.Options) || strings.TrimSpace(question.Options[idx]) == "" {
			return questionError(ErrInvalidCorrectAnswer, i, "Question %d has an invalid correct answer")
		}
	}

	return nil
}
