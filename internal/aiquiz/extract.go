package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNoJSON        = errors.New("No valid JSON found in response")
	ErrInvalidFormat = errors.New("Invalid questions format")
)

// jsonArray spans the first '[' to the last ']' in the model output.
var jsonArray = regexp.MustCompile(`\[[\s\S]*\]`)

// ExtractQuestions pulls the question array out of free-form model output.
func ExtractQuestions(raw string) ([]Question, error) {
	match := jsonArray.FindString(raw)
	if match == "" {
		return nil, ErrNoJSON
	}

	var questions []Question
	if err := json.Unmarshal([]byte(match), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(questions) == 0 {
		return nil, ErrInvalidFormat
	}
	return questions, nil
}
