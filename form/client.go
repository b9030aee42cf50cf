// Package form is the Go counterpart of the browser form: it validates the
// business brief, calls the proxy, keeps the displayed result and exports or
// emails it.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"business_idea_generator/api"
	"business_idea_generator/export"
)

// ErrMissingFields is returned before any request when a required field is blank.
var ErrMissingFields = errors.New("please fill in all required fields")

// State is the visible state of the form.
type State int

const (
	Idle State = iota
	Loading
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Client talks to the proxy service on behalf of one user.
type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time

	mu        sync.Mutex
	state     State
	displayed string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock sets the time source used for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a Client for the proxy at baseURL, e.g. http://localhost:3000.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("server url is required")
	}
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Validate checks the fields the form marks as required.
func Validate(req api.IdeaRequest) error {
	if missing := req.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// State returns the current form state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Displayed returns the ideas currently shown, or "" before the first success.
func (c *Client) Displayed() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayed
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Generate validates req, asks the proxy for ideas and displays them.
// An error envelope is returned as an error and leaves the display untouched.
func (c *Client) Generate(ctx context.Context, req api.IdeaRequest) (string, error) {
	if err := Validate(req); err != nil {
		return "", err
	}

	c.setState(Loading)
	defer c.setState(Idle)

	var res api.IdeaResponse
	if err := c.post(ctx, "/generate-ideas", req, &res); err != nil {
		return "", err
	}
	ideas, ok := res.Value()
	if !ok {
		return "", res.Err()
	}

	c.mu.Lock()
	c.displayed = ideas.Ideas
	c.mu.Unlock()
	return ideas.Ideas, nil
}

// SendEmail mails the displayed ideas to address.
func (c *Client) SendEmail(ctx context.Context, address string) error {
	req := api.EmailRequest{Email: address, Content: c.Displayed()}

	var res api.EmailResponse
	if err := c.post(ctx, "/send-email", req, &res); err != nil {
		return err
	}
	sent, ok := res.Value()
	if !ok {
		return res.Err()
	}
	if !sent.Success {
		return errors.New("email was not accepted")
	}
	return nil
}

// ExportPDF writes the displayed ideas as a PDF report. It never touches the network.
func (c *Client) ExportPDF(w io.Writer) error {
	return export.Render(w, export.Document{
		Title:       export.DefaultTitle,
		GeneratedAt: c.now(),
		Body:        c.Displayed(),
	})
}

// ExportText writes the displayed ideas verbatim.
func (c *Client) ExportText(w io.Writer) error {
	_, err := io.WriteString(w, c.Displayed())
	return err
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: unexpected response (status %d): %w", path, resp.StatusCode, err)
	}
	return nil
}
