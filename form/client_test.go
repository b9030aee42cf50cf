package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"business_idea_generator/api"
)

func validRequest() api.IdeaRequest {
	return api.IdeaRequest{
		APIKey:    "pplx-test",
		Budget:    "Under $1,000",
		Skills:    "cooking",
		Interests: "community",
		Location:  "Austin, USA",
	}
}

type fakeProxy struct {
	hits  atomic.Int32
	onHit func()

	mu    sync.Mutex
	reply string
	last  []byte
}

func (f *fakeProxy) setReply(reply string) {
	f.mu.Lock()
	f.reply = reply
	f.mu.Unlock()
}

func (f *fakeProxy) lastBody() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fakeProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	if f.onHit != nil {
		f.onHit()
	}
	buf := new(bytes.Buffer)
	buf.ReadFrom(r.Body)

	f.mu.Lock()
	f.last = buf.Bytes()
	reply := f.reply
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(reply))
}

func newClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/", WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestGenerate_MissingFieldsIssuesNoRequest(t *testing.T) {
	tests := []struct {
		name  string
		clear func(*api.IdeaRequest)
	}{
		{"apiKey", func(r *api.IdeaRequest) { r.APIKey = "" }},
		{"skills", func(r *api.IdeaRequest) { r.Skills = "" }},
		{"interests", func(r *api.IdeaRequest) { r.Interests = "   " }},
		{"location", func(r *api.IdeaRequest) { r.Location = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxy := &fakeProxy{reply: `{"ideas":"x"}`}
			c := newClient(t, proxy)

			req := validRequest()
			tt.clear(&req)

			_, err := c.Generate(context.Background(), req)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("error should name the missing field: %v", err)
			}
			if n := proxy.hits.Load(); n != 0 {
				t.Errorf("expected no network call, got %d", n)
			}
			if c.State() != Idle {
				t.Errorf("expected idle state, got %s", c.State())
			}
		})
	}
}

func TestValidate_BudgetOptional(t *testing.T) {
	req := validRequest()
	req.Budget = ""
	if err := Validate(req); err != nil {
		t.Errorf("budget is not required: %v", err)
	}
}

func TestGenerate_Success(t *testing.T) {
	proxy := &fakeProxy{reply: `{"ideas":"Idea A; Idea B"}`}
	c := newClient(t, proxy)

	var during atomic.Int32
	proxy.onHit = func() { during.Store(int32(c.State())) }

	ideas, err := c.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ideas != "Idea A; Idea B" || c.Displayed() != ideas {
		t.Errorf("ideas = %q, displayed = %q", ideas, c.Displayed())
	}
	if State(during.Load()) != Loading {
		t.Errorf("expected loading during the call, got %s", State(during.Load()))
	}
	if c.State() != Idle {
		t.Errorf("expected idle after the call, got %s", c.State())
	}

	var sent api.IdeaRequest
	if err := json.Unmarshal(proxy.lastBody(), &sent); err != nil {
		t.Fatal(err)
	}
	if sent.APIKey != "pplx-test" || sent.Location != "Austin, USA" {
		t.Errorf("unexpected request body %+v", sent)
	}
}

func TestGenerate_ErrorEnvelope(t *testing.T) {
	proxy := &fakeProxy{reply: `{"ideas":"first"}`}
	c := newClient(t, proxy)
	if _, err := c.Generate(context.Background(), validRequest()); err != nil {
		t.Fatal(err)
	}

	proxy.setReply(`{"error":"invalid credential"}`)
	_, err := c.Generate(context.Background(), validRequest())
	if err == nil || err.Error() != "invalid credential" {
		t.Fatalf("expected provider error, got %v", err)
	}
	if c.Displayed() != "first" {
		t.Errorf("display should keep the previous result, got %q", c.Displayed())
	}
	if c.State() != Idle {
		t.Errorf("expected idle after failure, got %s", c.State())
	}
}

func TestGenerate_UndecodableResponse(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	if _, err := c.Generate(context.Background(), validRequest()); err == nil {
		t.Fatal("expected error for a non-JSON response")
	}
}

func TestSendEmail(t *testing.T) {
	proxy := &fakeProxy{reply: `{"ideas":"Line one\nLine two"}`}
	c := newClient(t, proxy)
	if _, err := c.Generate(context.Background(), validRequest()); err != nil {
		t.Fatal(err)
	}

	proxy.setReply(`{"success":true}`)
	if err := c.SendEmail(context.Background(), "founder@example.org"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sent api.EmailRequest
	if err := json.Unmarshal(proxy.lastBody(), &sent); err != nil {
		t.Fatal(err)
	}
	if sent.Email != "founder@example.org" || sent.Content != "Line one\nLine two" {
		t.Errorf("unexpected email body %+v", sent)
	}

	proxy.setReply(`{"error":"email delivery is not configured"}`)
	if err := c.SendEmail(context.Background(), "founder@example.org"); err == nil || err.Error() != "email delivery is not configured" {
		t.Errorf("expected error envelope to surface, got %v", err)
	}
}

type staticPrompter struct {
	answer string
	asked  string
}

func (s *staticPrompter) Prompt(message string) (string, error) {
	s.asked = message
	return s.answer, nil
}

func TestPromptAndEmail(t *testing.T) {
	proxy := &fakeProxy{reply: `{"success":true}`}
	c := newClient(t, proxy)

	p := &staticPrompter{answer: ""}
	sent, err := c.PromptAndEmail(context.Background(), p)
	if err != nil || sent {
		t.Fatalf("empty answer should be a no-op, got sent=%v err=%v", sent, err)
	}
	if proxy.hits.Load() != 0 {
		t.Error("empty answer must not contact the server")
	}
	if p.asked != emailPrompt {
		t.Errorf("unexpected prompt %q", p.asked)
	}

	sent, err = c.PromptAndEmail(context.Background(), &staticPrompter{answer: "not-an-address"})
	if err != nil || !sent {
		t.Fatalf("expected send without format validation, got sent=%v err=%v", sent, err)
	}
	if proxy.hits.Load() != 1 {
		t.Errorf("expected one call, got %d", proxy.hits.Load())
	}
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := LinePrompter{In: strings.NewReader("  me@example.com \n"), Out: &out}

	got, err := p.Prompt(emailPrompt)
	if err != nil {
		t.Fatal(err)
	}
	if got != "me@example.com" {
		t.Errorf("got %q", got)
	}
	if !strings.HasPrefix(out.String(), emailPrompt) {
		t.Errorf("prompt not written: %q", out.String())
	}
}

func TestExportPDF_NoNetwork(t *testing.T) {
	proxy := &fakeProxy{}
	c := newClient(t, proxy)
	c.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	if err := c.ExportPDF(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF document")
	}
	if proxy.hits.Load() != 0 {
		t.Error("export must not contact the server")
	}
}

func TestExport_DisplayedNonASCIIIdeas(t *testing.T) {
	ideas := "## Idea 1 — Café pop-up\n• Budget: ₹50,000\n• Résumé workshops"
	reply, _ := json.Marshal(map[string]string{"ideas": ideas})
	proxy := &fakeProxy{reply: string(reply)}
	c := newClient(t, proxy)

	if _, err := c.Generate(context.Background(), validRequest()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var text bytes.Buffer
	if err := c.ExportText(&text); err != nil {
		t.Fatalf("ExportText: %v", err)
	}
	if text.String() != ideas {
		t.Errorf("text export = %q, want %q", text.String(), ideas)
	}

	var doc bytes.Buffer
	if err := c.ExportPDF(&doc); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if !bytes.HasPrefix(doc.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF document")
	}
	if n := proxy.hits.Load(); n != 1 {
		t.Errorf("exports must not contact the server, got %d calls", n)
	}
}

func TestNew_RequiresURL(t *testing.T) {
	if _, err := New(" "); err == nil {
		t.Fatal("expected error for empty url")
	}
}
