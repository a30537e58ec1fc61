package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Gemini is a Completer backed by the Google GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini completer. An empty model selects DefaultModel.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("llm: create client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Complete sends the prompt and returns the reply text. The call is
// synchronous and carries no retry policy; the caller's fallback path is
// the recovery mechanism.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("llm: generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("llm: empty completion")
	}
	return text, nil
}
