package generator

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// GeminiLLM implements LLMClient on the Gemini API.
type GeminiLLM struct {
	Model  string
	config genai.ClientConfig
}

func NewGeminiLLMFromConfig(cfg *LLMSettings) (*GeminiLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	cc := genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	return &GeminiLLM{Model: cfg.Model, config: cc}, nil
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	cc := g.config
	client, err := genai.NewClient(ctx, &cc)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt.User, genai.RoleUser)}
	resp, err := client.Models.GenerateContent(ctx, g.Model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", upstreamError(apiErr.Message, err)
		}
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Text(), nil
}
