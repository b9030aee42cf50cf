package generator

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the provider answers without any choice.
var ErrEmptyCompletion = errors.New("completion returned no choices")

// LLMClient abstracts the completion provider so it can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings configures one client. APIKey is the caller's credential.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// ClientFactory builds a client for one request's settings.
type ClientFactory func(cfg *LLMSettings) (LLMClient, error)

// OpenAIFactory builds OpenAI-compatible clients (OpenAI, Perplexity, DeepSeek...).
func OpenAIFactory(cfg *LLMSettings) (LLMClient, error) {
	return NewOpenAILLMFromConfig(cfg)
}

// GeminiFactory builds Gemini API clients.
func GeminiFactory(cfg *LLMSettings) (LLMClient, error) {
	return NewGeminiLLMFromConfig(cfg)
}

// ProviderError carries the message a provider put in its error body, so the
// caller sees that text instead of the SDK's request dump.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return e.Message }
func (e *ProviderError) Unwrap() error { return e.Err }

func upstreamError(msg string, err error) error {
	if msg == "" {
		return err
	}
	return &ProviderError{Message: msg, Err: err}
}
