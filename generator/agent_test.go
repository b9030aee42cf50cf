package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type recordingLLM struct {
	reply   string
	err     error
	prompts []Prompt
}

func (r *recordingLLM) Complete(_ context.Context, p Prompt) (string, error) {
	r.prompts = append(r.prompts, p)
	return r.reply, r.err
}

func TestAgent_Generate(t *testing.T) {
	llm := &recordingLLM{reply: "Idea A; Idea B"}
	var got LLMSettings
	factory := func(cfg *LLMSettings) (LLMClient, error) {
		got = *cfg
		return llm, nil
	}

	agent, err := NewAgent(factory, LLMSettings{Provider: "perplexity", Model: "sonar-pro", APIKey: "server-key"})
	if err != nil {
		t.Fatal(err)
	}

	ideas, err := agent.Generate(context.Background(), "pplx-user", "", Brief{Skills: "baking", Location: "Oslo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ideas != "Idea A; Idea B" {
		t.Errorf("ideas = %q", ideas)
	}
	if got.APIKey != "pplx-user" {
		t.Errorf("expected caller key to be used, got %q", got.APIKey)
	}
	if got.Model != "sonar-pro" {
		t.Errorf("expected default model, got %q", got.Model)
	}
	if len(llm.prompts) != 1 || !strings.Contains(llm.prompts[0].User, "Skills: baking") {
		t.Errorf("unexpected prompts %+v", llm.prompts)
	}

	if _, err := agent.Generate(context.Background(), "k", "sonar", Brief{}); err != nil {
		t.Fatal(err)
	}
	if got.Model != "sonar" {
		t.Errorf("expected selected model, got %q", got.Model)
	}
}

func TestAgent_ErrorPassthrough(t *testing.T) {
	agent, err := NewAgent(MockLLM{Err: errors.New("invalid credential")}.Factory(), LLMSettings{Model: "m"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = agent.Generate(context.Background(), "bad", "", Brief{})
	if err == nil || err.Error() != "invalid credential" {
		t.Fatalf("expected provider message unchanged, got %v", err)
	}
}

func TestAgent_FactoryError(t *testing.T) {
	agent, err := NewAgent(OpenAIFactory, LLMSettings{Model: "sonar-pro"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := agent.Generate(context.Background(), "", "", Brief{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestNewAgent_NilFactory(t *testing.T) {
	if _, err := NewAgent(nil, LLMSettings{}); err == nil {
		t.Fatal("expected error for nil factory")
	}
}

func TestMockLLM_EchoesPrompt(t *testing.T) {
	out, err := MockLLM{}.Complete(context.Background(), Prompt{User: "Skills: welding"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Skills: welding") {
		t.Errorf("mock output should embed the prompt: %q", out)
	}
}
