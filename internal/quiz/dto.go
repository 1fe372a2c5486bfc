package quiz

import (
	"strings"

	"github.com/google/uuid"
)

type QuestionDraftDTO struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options" validate:"max=10"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// QuizDraftDTO is the authoring payload. Content rules (title, question text,
// options, correct answer) are left to Validate so their order is kept.
type QuizDraftDTO struct {
	Title       string             `json:"title" validate:"max=200"`
	Description string             `json:"description" validate:"max=1000"`
	Difficulty  string             `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Questions   []QuestionDraftDTO `json:"questions" validate:"dive"`
}

func (d QuizDraftDTO) ToQuiz() Quiz {
	q := Quiz{
		Title:       d.Title,
		Description: d.Description,
		Difficulty:  Difficulty(d.Difficulty),
		Questions:   make([]Question, 0, len(d.Questions)),
	}
	for _, qd := range d.Questions {
		id := strings.TrimSpace(qd.ID)
		if id == "" {
			id = uuid.NewString()
		}
		q.Questions = append(q.Questions, Question{
			ID:            QuestionID(id),
			Text:          qd.Question,
			Options:       qd.Options,
			CorrectAnswer: qd.CorrectAnswer,
		})
	}
	return q
}

type QuizSummaryDTO struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Origin        Origin     `json:"origin"`
	QuestionCount int        `json:"questionCount"`
	CreatedAt     string     `json:"createdAt,omitempty"`
}

func ToSummary(q Quiz) QuizSummaryDTO {
	s := QuizSummaryDTO{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Difficulty:    q.Difficulty,
		Origin:        q.Origin,
		QuestionCount: len(q.Questions),
	}
	if q.CreatedAt != nil {
		s.CreatedAt = q.CreatedAt.Format("2006-01-02")
	}
	return s
}
