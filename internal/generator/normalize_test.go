package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizmaster-lambda/internal/generator"
)

func answer(i int) *int {
	return &i
}

func TestNormalize(t *testing.T) {
	raw := []generator.GeneratedQuestion{
		{Question: " First ", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: answer(3)},
		{Question: "Second", Options: []string{"x", "y"}, CorrectAnswer: answer(0)},
	}

	got, err := generator.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Text)
	assert.NotEmpty(t, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.Equal(t, 3, got[0].CorrectAnswer)
	assert.Equal(t, 0, got[1].CorrectAnswer, "an explicit zero is kept")
}

func TestNormalizeRejectsBatch(t *testing.T) {
	tests := map[string][]generator.GeneratedQuestion{
		"Empty":         nil,
		"BlankText":     {{Question: "  ", Options: []string{"a", "b"}, CorrectAnswer: answer(0)}},
		"OneOption":     {{Question: "Q", Options: []string{"a"}, CorrectAnswer: answer(0)}},
		"BlankOption":   {{Question: "Q", Options: []string{"a", " "}, CorrectAnswer: answer(0)}},
		"NegativeIdx":   {{Question: "Q", Options: []string{"a", "b"}, CorrectAnswer: answer(-1)}},
		"IdxPastEnd":    {{Question: "Q", Options: []string{"a", "b"}, CorrectAnswer: answer(2)}},
		"MissingAnswer": {{Question: "Q", Options: []string{"a", "b"}}},
		"OneBadOfMany":  {{Question: "Q", Options: []string{"a", "b"}, CorrectAnswer: answer(0)}, {Question: "", Options: []string{"a", "b"}, CorrectAnswer: answer(0)}},
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := generator.Normalize(raw)
			assert.ErrorIs(t, err, generator.ErrMalformedGenerationResponse)
			assert.Nil(t, got)
		})
	}
}
