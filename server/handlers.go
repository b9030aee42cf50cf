package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"business_idea_generator/api"
	"business_idea_generator/generator"
	"business_idea_generator/mailer"
)

// Both endpoints always answer 200; success or failure lives in the envelope.

func (s *Server) handleGenerateIdeas(w http.ResponseWriter, r *http.Request) {
	var req api.IdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeFailure[api.Ideas](w, err)
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		writeJSON(w, api.Failure[api.Ideas]("missing required fields: "+strings.Join(missing, ", ")))
		return
	}
	if req.Model != "" && !s.cfg.LLM.AllowsModel(req.Model) {
		writeJSON(w, api.Failure[api.Ideas](fmt.Sprintf("model %q is not available", req.Model)))
		return
	}

	brief := generator.Brief{
		Budget:         req.Budget,
		Skills:         req.Skills,
		Interests:      req.Interests,
		Location:       req.Location,
		TimeCommitment: req.TimeCommitment,
		Markets:        req.Markets,
	}
	ideas, err := s.genAgent.Generate(r.Context(), req.APIKey, req.Model, brief)
	if err != nil {
		s.logger.WarnContext(r.Context(), "idea generation failed",
			"request_id", GetRequestID(r.Context()),
			"model", modelOrDefault(req.Model, s.genAgent.DefaultModel()),
			"error", err,
		)
		writeJSON(w, api.FailureFrom[api.Ideas](err))
		return
	}
	writeJSON(w, api.Success(api.Ideas{Ideas: ideas}))
}

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var req api.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeFailure[api.EmailSent](w, err)
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		writeJSON(w, api.Failure[api.EmailSent]("missing required fields: "+strings.Join(missing, ", ")))
		return
	}
	if s.mail == nil {
		writeJSON(w, api.FailureFrom[api.EmailSent](mailer.ErrNotConfigured))
		return
	}

	if err := s.mail.Send(r.Context(), req.Email, req.Content); err != nil {
		s.logger.WarnContext(r.Context(), "email dispatch failed",
			"request_id", GetRequestID(r.Context()),
			"error", err,
		)
		writeJSON(w, api.FailureFrom[api.EmailSent](err))
		return
	}
	writeJSON(w, api.Success(api.EmailSent{Success: true}))
}

type healthResponse struct {
	Status string `json:"status"`
	Mail   string `json:"mail"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	mail := "configured"
	if s.mail == nil {
		mail = "not configured"
	}
	writeJSON(w, healthResponse{Status: "ok", Mail: mail})
}

// --- Helpers ---

func modelOrDefault(model, def string) string {
	if model == "" {
		return def
	}
	return model
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSONStatus(w, http.StatusMethodNotAllowed, api.Failure[struct{}]("method not allowed"))
}

// postOnly answers GET on the API paths.
func postOnly(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	methodNotAllowed(w, r)
}

// writeDecodeFailure reports a body the decoder rejected. A body cut off by
// MaxBodySize gets 413 like a declared oversize one; anything else stays 200.
func writeDecodeFailure[T any](w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSONStatus(w, http.StatusRequestEntityTooLarge, api.Failure[T](errBodyTooLarge))
		return
	}
	writeJSON(w, api.Failure[T]("invalid request body: "+err.Error()))
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
