package generator

import (
	"context"
	"strings"
)

// MockLLM answers locally without calling a provider, for offline runs and tests.
// Reply overrides the canned answer; Err makes every call fail.
type MockLLM struct {
	Reply string
	Err   error
}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	var sb strings.Builder
	sb.WriteString("## Idea 1: Local test business\n\n")
	sb.WriteString("- Business concept: generated offline from the prompt below\n\n")
	sb.WriteString("```\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n```\n")
	return sb.String(), nil
}

// Factory returns a ClientFactory that always hands out m.
func (m MockLLM) Factory() ClientFactory {
	return func(*LLMSettings) (LLMClient, error) {
		return m, nil
	}
}
