package generator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizmaster-lambda/internal/generator"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func respond(status int, body string) roundTripperFunc {
	return func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewReader([]byte(body))),
			Header:     make(http.Header),
		}, nil
	}
}

func newTestClient(rt http.RoundTripper) generator.Client {
	return generator.NewClient("http://generate.test/ai-quiz", &http.Client{Transport: rt}, 0)
}

func TestGenerateSendsRequest(t *testing.T) {
	var seen generator.Request
	var method, contentType string

	c := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&seen))
		return respond(http.StatusOK, `{"questions":[{"question":" Q? ","options":["a"," b "],"correctAnswer":1}]}`)(r)
	}))

	questions, err := c.Generate(context.Background(), generator.Request{Category: "History", Difficulty: "medium", NumQuestions: 10})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, generator.Request{Category: "History", Difficulty: "medium", NumQuestions: 10}, seen)

	require.Len(t, questions, 1)
	assert.Equal(t, "Q?", questions[0].Text)
	assert.Equal(t, []string{"a", "b"}, questions[0].Options)
	assert.Equal(t, 1, questions[0].CorrectAnswer)
	assert.NotEmpty(t, questions[0].ID)
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name string
		rt   roundTripperFunc
		want error
	}{
		{
			name: "NonOKStatus",
			rt:   respond(http.StatusInternalServerError, `{"error":"Gemini API key not found"}`),
			want: generator.ErrGenerationFailed,
		},
		{
			name: "UndecodableBody",
			rt:   respond(http.StatusOK, `not json`),
			want: generator.ErrGenerationFailed,
		},
		{
			name: "TransportError",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, io.ErrUnexpectedEOF
			},
			want: generator.ErrGenerationFailed,
		},
		{
			name: "EmptyQuestions",
			rt:   respond(http.StatusOK, `{"questions":[]}`),
			want: generator.ErrMalformedGenerationResponse,
		},
		{
			name: "MissingCorrectAnswer",
			rt:   respond(http.StatusOK, `{"questions":[{"question":"Q","options":["a","b"]}]}`),
			want: generator.ErrMalformedGenerationResponse,
		},
		{
			name: "CorrectAnswerOutOfRange",
			rt:   respond(http.StatusOK, `{"questions":[{"question":"Q","options":["a","b"],"correctAnswer":4}]}`),
			want: generator.ErrMalformedGenerationResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestClient(tt.rt).Generate(context.Background(), generator.Request{Category: "Sports"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
