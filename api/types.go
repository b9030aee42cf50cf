// Package api holds the JSON shapes exchanged between the form client and the proxy service.
package api

import "strings"

// IdeaRequest is the body of POST /generate-ideas.
// APIKey is the caller's own completion credential; it is forwarded upstream and never stored.
type IdeaRequest struct {
	APIKey    string `json:"apiKey"`
	Budget    string `json:"budget"`
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	Location  string `json:"location"`

	// Optional refinements offered by the form.
	Model          string   `json:"model,omitempty"`
	TimeCommitment string   `json:"timeCommitment,omitempty"`
	Markets        []string `json:"markets,omitempty"`
}

// Missing lists the JSON names of required fields that are blank.
// Budget is a preset choice and never blank in the form, so it is not checked.
func (r IdeaRequest) Missing() []string {
	return blank(
		field{"apiKey", r.APIKey},
		field{"skills", r.Skills},
		field{"interests", r.Interests},
		field{"location", r.Location},
	)
}

// Ideas is the success payload of POST /generate-ideas.
type Ideas struct {
	Ideas string `json:"ideas"`
}

// EmailRequest is the body of POST /send-email.
type EmailRequest struct {
	Email   string `json:"email"`
	Content string `json:"content"`
}

// Missing lists the JSON names of required fields that are blank.
func (r EmailRequest) Missing() []string {
	return blank(field{"email", r.Email})
}

// EmailSent is the success payload of POST /send-email.
type EmailSent struct {
	Success bool `json:"success"`
}

type (
	IdeaResponse  = Result[Ideas]
	EmailResponse = Result[EmailSent]
)

type field struct {
	name, value string
}

func blank(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
