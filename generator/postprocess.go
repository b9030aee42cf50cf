package generator

import (
	"regexp"
	"strings"
)

// Reasoning models prefix their answer with a <think> block.
var thinkRe = regexp.MustCompile(`(?s)^\s*<think>.*?</think>`)

// PostProcess strips reasoning preambles and surrounding whitespace from a completion.
func PostProcess(raw string) (string, error) {
	text := thinkRe.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
