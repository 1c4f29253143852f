package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Fr4ncx-04/Balance/internal/buildinfo"
	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

type createSessionRequest struct {
	Book string `json:"book,omitempty"`
}

type sessionResponse struct {
	ID       string          `json:"id"`
	Book     string          `json:"book,omitempty"`
	Company  string          `json:"company"`
	Opened   bool            `json:"opened"`
	Entries  int             `json:"entries"`
	Created  time.Time       `json:"created_at"`
	Totals   engine.Totals   `json:"totals"`
	Controls engine.Controls `json:"controls"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	sess := &session{engine: s.newEngine(), book: req.Book, created: time.Now().UTC()}
	if req.Book != "" {
		if s.books == nil {
			writeError(w, http.StatusBadRequest, "server has no book store")
			return
		}
		book, err := s.books.Book(r.Context(), req.Book)
		if err != nil {
			writeError(w, mapError(err), err.Error())
			return
		}
		ops, err := s.books.Operations(r.Context(), book.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if err := sess.engine.Replay(ops); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	id := uuid.Must(uuid.NewV7()).String()
	resp := describe(id, sess)
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.log.Info().Str("session", id).Str("book", req.Book).Msg("session created")
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": ids})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, describe(id, sess))
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) applyOperation(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var op model.Operation
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	sess.mu.Lock()
	entry, err := sess.engine.Apply(op)
	sess.mu.Unlock()
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) getVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *Server) listOperationKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.AllOperationKinds)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (string, *session, bool) {
	id := chi.URLParam(r, "id")
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return id, nil, false
	}
	return id, sess, true
}

// describe must be called with sess.mu held or before sess is shared.
func describe(id string, sess *session) sessionResponse {
	e := sess.engine
	return sessionResponse{
		ID:       id,
		Book:     sess.book,
		Company:  e.Company(),
		Opened:   e.Opened(),
		Entries:  len(e.Entries()),
		Created:  sess.created,
		Totals:   e.Totals(),
		Controls: e.Controls(),
	}
}
