package generator

import (
	"strings"
	"testing"
)

func TestBuildIdeasPrompt(t *testing.T) {
	p := BuildIdeasPrompt(Brief{
		Budget:    "$1,000-$5,000",
		Skills:    "programming",
		Interests: "health",
		Location:  "Lisbon, Portugal",
		Markets:   []string{"Local", " ", "Online"},
	})

	if p.System != systemPersona {
		t.Errorf("unexpected system prompt %q", p.System)
	}
	for _, want := range []string{
		"Budget: $1,000-$5,000",
		"Skills: programming",
		"Interests: health",
		"Location: Lisbon, Portugal",
		"Time commitment: Not specified",
		"Target market: Local, Online",
		"7. Scaling potential",
	} {
		if !strings.Contains(p.User, want) {
			t.Errorf("prompt missing %q:\n%s", want, p.User)
		}
	}
	if !strings.Contains(p.System, "business consultant") {
		t.Errorf("unexpected system prompt %q", p.System)
	}
}
