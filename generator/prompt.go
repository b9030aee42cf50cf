package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message pair sent to the model.
type Prompt struct {
	System string
	User   string
}

const systemPersona = "You are an experienced business consultant specializing in helping entrepreneurs identify viable business opportunities."

var ideaSections = []string{
	"Business concept",
	"Setup requirements",
	"Potential challenges",
	"Estimated ROI timeline",
	"Key success factors",
	"Marketing strategies",
	"Scaling potential",
}

// BuildIdeasPrompt renders the brief into the idea-generation prompt.
func BuildIdeasPrompt(b Brief) Prompt {
	var sb strings.Builder
	sb.WriteString("Generate 5 business ideas based on:\n")
	sb.WriteString(fmt.Sprintf("Budget: %s\n", b.Budget))
	sb.WriteString(fmt.Sprintf("Skills: %s\n", b.Skills))
	sb.WriteString(fmt.Sprintf("Interests: %s\n", b.Interests))
	sb.WriteString(fmt.Sprintf("Location: %s\n", b.Location))
	sb.WriteString(fmt.Sprintf("Time commitment: %s\n", b.timeCommitment()))
	sb.WriteString(fmt.Sprintf("Target market: %s\n", b.markets()))
	sb.WriteString("\nFor each idea, provide:\n")
	for i, s := range ideaSections {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
	}
	sb.WriteString("\nFormat each idea clearly with headings and bullet points.")

	return Prompt{
		System: systemPersona,
		User:   sb.String(),
	}
}
