package generator

import (
	"context"
	"errors"
)

// Agent turns a Brief into business ideas through a per-request LLM client.
type Agent struct {
	newClient ClientFactory
	base      LLMSettings
}

// NewAgent binds a client factory to the provider defaults. base.APIKey is ignored.
func NewAgent(newClient ClientFactory, base LLMSettings) (*Agent, error) {
	if newClient == nil {
		return nil, errors.New("llm client factory is required")
	}
	base.APIKey = ""
	return &Agent{newClient: newClient, base: base}, nil
}

// DefaultModel is the model used when a request does not pick one.
func (a *Agent) DefaultModel() string {
	return a.base.Model
}

// Generate asks the provider for ideas using the caller's apiKey. An empty
// model selects the default. Provider errors are returned unwrapped so their
// message reaches the caller verbatim.
func (a *Agent) Generate(ctx context.Context, apiKey, model string, brief Brief) (string, error) {
	settings := a.base
	settings.APIKey = apiKey
	if model != "" {
		settings.Model = model
	}

	llm, err := a.newClient(&settings)
	if err != nil {
		return "", err
	}

	raw, err := llm.Complete(ctx, BuildIdeasPrompt(brief))
	if err != nil {
		return "", err
	}
	return PostProcess(raw)
}
