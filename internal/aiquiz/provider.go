package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"google.golang.org/genai"
)

var ErrMissingAPIKey = errors.New("Gemini API key not found")

// Provider sends a prompt to a text model and returns its raw answer.
type Provider interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.7),
			TopK:            genai.Ptr[float32](40),
			TopP:            genai.Ptr[float32](0.95),
			MaxOutputTokens: 2048,
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini request failed")
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	return raw, nil
}
