// Package mailer delivers generated ideas by email.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrNotConfigured is reported when no sender credentials were supplied.
	ErrNotConfigured = errors.New("email delivery is not configured")
	// ErrRecipientRequired is returned for an empty destination address.
	ErrRecipientRequired = errors.New("email address is required")
)

// Config holds the server-side sender identity. It is built once at startup
// and handed to the transport and the Mailer.
type Config struct {
	From     string
	Subject  string
	Host     string
	Port     int
	Username string
	Password string
}

// Message is one outgoing email with a plain-text and an HTML part.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Transport hands a message to the email provider.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Mailer composes messages from displayed content and sends them through a Transport.
type Mailer struct {
	cfg       Config
	transport Transport
	logger    *slog.Logger
}

// New creates a Mailer. logger may be nil.
func New(cfg Config, transport Transport, logger *slog.Logger) (*Mailer, error) {
	if transport == nil {
		return nil, errors.New("mail transport is required")
	}
	if cfg.From == "" {
		return nil, errors.New("sender address is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{cfg: cfg, transport: transport, logger: logger}, nil
}

// Send delivers content to the address to. The address is only checked for presence.
func (m *Mailer) Send(ctx context.Context, to, content string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrRecipientRequired
	}

	html, err := RenderHTML(content)
	if err != nil {
		return fmt.Errorf("render html body: %w", err)
	}

	msg := Message{
		From:    m.cfg.From,
		To:      to,
		Subject: m.cfg.Subject,
		Text:    content,
		HTML:    html,
	}
	if err := m.transport.Send(ctx, msg); err != nil {
		return err
	}

	m.logger.InfoContext(ctx, "email sent", "recipient_domain", domainOf(to), "bytes", len(content))
	return nil
}

func domainOf(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 {
		return addr[i+1:]
	}
	return ""
}
