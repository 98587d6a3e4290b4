package server

import (
	"net/http"

	"github.com/rgehrsitz/billimpact/internal/config"
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/rgehrsitz/billimpact/internal/session"
)

// CreateSessionResponse is returned by POST /api/sessions
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateSession starts a wizard session
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()
	s.logger.Debugw("session created", "session", sess.ID)
	s.jsonResponse(w, http.StatusCreated, CreateSessionResponse{SessionID: sess.ID})
}

// handleGetSession returns the session snapshot
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

// handleDeleteSession removes a session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		s.errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateStep merges one validated wizard step into the session form.
// Stored results are dropped because they no longer match the form.
func (s *Server) handleUpdateStep(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	step := r.PathValue("step")

	payload, err := NewStepPayload(step)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if _, err := s.sessions.Get(id); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := decodeBody(w, r, payload); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := payload.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	sess, err := s.sessions.Update(id, func(sess *session.Session) error {
		payload.Apply(&sess.FormData)
		sess.MarkStep(step)
		sess.Results = nil
		return nil
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

// handleCalculateSession computes results for the session form and stores them
func (s *Server) handleCalculateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Update(r.PathValue("id"), func(sess *session.Session) error {
		sess.Results = s.engine.CalculatePolicyImpact(sess.FormData)
		return nil
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.logger.Debugw("session calculated", "session", sess.ID, "net", sess.Results.NetAnnualImpact.String())
	s.jsonResponse(w, http.StatusOK, sess.Results)
}

// handleGetResults returns stored results
func (s *Server) handleGetResults(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if sess.Results == nil {
		s.errorResponse(w, ErrNoResults)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Results)
}

// handleCalculate computes results for a posted form without a session
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var form domain.FormData
	if err := decodeBody(w, r, &form); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := config.NewInputParser().ValidateForm(&form); err != nil {
		s.errorResponse(w, &ErrValidation{Message: err.Error()})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.CalculatePolicyImpact(form))
}

// handleMetadata returns the reference data provenance
func (s *Server) handleMetadata(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.Reference.Metadata)
}
