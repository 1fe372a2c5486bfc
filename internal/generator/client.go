// Package generator requests AI generated questions from the generation
// function and stores them as quizzes.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
)

const (
	DefaultDifficulty   = "medium"
	DefaultNumQuestions = 10
)

type Request struct {
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions"`
}

type response struct {
	Questions []GeneratedQuestion `json:"questions"`
}

// GeneratedQuestion is a question as the generation service returns it.
// CorrectAnswer is a pointer so a missing field can be told apart from 0.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
}

type Client interface {
	Generate(ctx context.Context, req Request) ([]quiz.Question, error)
}

type client struct {
	url  string
	http *http.Client
}

// NewClient returns a Client posting to url. A nil httpClient uses a client
// with timeout.
func NewClient(url string, httpClient *http.Client, timeout time.Duration) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &client{url: url, http: httpClient}
}

func (c *client) Generate(ctx context.Context, req Request) ([]quiz.Question, error) {
	log := config.WithContext(ctx)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.WithError(err).Error("Generation request failed")
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status", resp.StatusCode).Error("Generation function returned an error")
		return nil, fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return Normalize(payload.Questions)
}
