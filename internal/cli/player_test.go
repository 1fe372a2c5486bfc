package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/session"
)

func TestRenderRevealWithoutValidCorrectAnswer(t *testing.T) {
	tests := []struct {
		name     string
		selected session.Answer
		correct  int
		want     string
	}{
		{name: "TimeoutPastEnd", selected: session.NoAnswer, correct: 5, want: "Time's up!\n"},
		{name: "WrongNegative", selected: session.Choice(0), correct: -1, want: "Wrong.\n"},
		{name: "TimeoutInRange", selected: session.NoAnswer, correct: 1, want: "Time's up! The answer was b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPlayer(strings.NewReader(""), &out, nil)

			assert.NotPanics(t, func() {
				p.render(session.Snapshot{
					Phase:    session.Revealing,
					Question: quiz.Question{Text: "Q?", Options: []string{"a", "b"}, CorrectAnswer: tt.correct},
					Selected: tt.selected,
					Answered: true,
				})
			})
			assert.Equal(t, tt.want+"\n", out.String())
		})
	}
}
