package quiz

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// QuestionID accepts both the numeric ids of the built-in sets and string ids
// when decoding a stored collection.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = QuestionID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = QuestionID(n.String())
	return nil
}

type Question struct {
	ID            QuestionID `json:"id"`
	Text          string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
}

// HasText reports whether the question text is non-blank.
func (q Question) HasText() bool {
	return strings.TrimSpace(q.Text) != ""
}

// IsPlayable reports whether the question can be shown and scored: it has
// text, at least two filled options, and a correct answer pointing at a
// filled option.
func (q Question) IsPlayable() bool {
	if !q.HasText() {
		return false
	}
	filled := 0
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) != "" {
			filled++
		}
	}
	if filled < minFilledOptions {
		return false
	}
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) &&
		strings.TrimSpace(q.Options[q.CorrectAnswer]) != ""
}

// IsCorrect reports whether index selects the correct option.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectAnswer
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Category    string     `json:"category,omitempty"`
	Questions   []Question `json:"questions"`
	Origin      Origin     `json:"origin"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// PlayableQuestions returns the playable questions, in order. Records saved
// by older versions may hold questions that are not.
func (q Quiz) PlayableQuestions() []Question {
	out := make([]Question, 0, len(q.Questions))
	for _, question := range q.Questions {
		if question.IsPlayable() {
			out = append(out, question)
		}
	}
	return out
}
