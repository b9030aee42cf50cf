package form

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const emailPrompt = "Enter your email address:"

// Prompter asks the user a question and waits for the answer.
type Prompter interface {
	Prompt(message string) (string, error)
}

// LinePrompter prompts on Out and reads one line from In.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p LinePrompter) Prompt(message string) (string, error) {
	if _, err := fmt.Fprint(p.Out, message+" "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptAndEmail asks for a destination address and, if one is given, mails
// the displayed ideas to it. sent is false when the user left the prompt empty.
func (c *Client) PromptAndEmail(ctx context.Context, p Prompter) (sent bool, err error) {
	addr, err := p.Prompt(emailPrompt)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(addr) == "" {
		return false, nil
	}
	if err := c.SendEmail(ctx, addr); err != nil {
		return false, err
	}
	return true, nil
}
