// apps/solver/internal/httpserver/routes_solver.go
//
// HTTP routes for solving sessions.
//   - POST   /solver/new            → start a session seeded with the full word list
//   - POST   /solver/filter         → apply one (guess, pattern) pair
//   - GET    /solver/{id}           → session snapshot (size, status, history)
//   - GET    /solver/{id}/candidates?limit=N
//   - GET    /solver/{id}/recommend?k=N
//   - DELETE /solver/{id}           → end the session
//
// Every route except /new requires the session token issued by /new.
// Sessions are held in memory only. A contradiction (empty pool) is reported
// as a normal 200 with status "contradiction". Once a session is solved or
// contradicted, further /filter calls get 409 "session_over".

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/apps/solver/internal/session"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// mountSolver registers all /solver routes.
func (s *Server) mountSolver(r chi.Router) {
	r.Route("/solver", func(r chi.Router) {
		r.Post("/new", s.handleNew)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession())
			r.Post("/filter", s.handleFilter)
			r.Get("/{id}", s.handleState)
			r.Get("/{id}/candidates", s.handleCandidates)
			r.Get("/{id}/recommend", s.handleRecommend)
			r.Delete("/{id}", s.handleDelete)
		})
	})
}

// -----------------------------------------------------------------------------
// /solver/new

// newRes is returned by /solver/new.
type newRes struct {
	SessionID   string              `json:"sessionId" msgpack:"sessionId"`
	Token       string              `json:"token" msgpack:"token"`
	Size        int                 `json:"size" msgpack:"size"`
	Length      int                 `json:"length" msgpack:"length"`
	Starter     string              `json:"starter" msgpack:"starter"`
	Suggestions []solver.Suggestion `json:"suggestions" msgpack:"suggestions"`
}

// handleNew creates a session over the full word list and issues its token.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	sess := session.New(genID(), s.words.Words())
	if err := s.store.Save(r.Context(), sess); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		respondError(w, r, http.StatusInternalServerError, "save_failed", "")
		return
	}
	tok, exp, err := s.signSessionToken(sess.ID, s.opts.SessionTTL)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign session token")
		respondError(w, r, http.StatusInternalServerError, "sign_failed", "")
		return
	}
	setSessionCookie(w, tok, exp)

	hlog.FromRequest(r).Info().Str("session", sess.ID).Int("size", sess.Size()).Msg("session started")
	respond(w, r, http.StatusOK, newRes{
		SessionID:   sess.ID,
		Token:       tok,
		Size:        sess.Size(),
		Length:      s.words.Length(),
		Starter:     session.Starter,
		Suggestions: sess.Recommend(s.opts.TopK),
	})
}

// -----------------------------------------------------------------------------
// /solver/filter

// filterReq is the request payload for /solver/filter.
type filterReq struct {
	SessionID string `json:"sessionId" msgpack:"sessionId"`
	Guess     string `json:"guess" msgpack:"guess"`
	Pattern   string `json:"pattern" msgpack:"pattern"`
}

// filterRes is the response payload for /solver/filter.
type filterRes struct {
	Size        int                 `json:"size" msgpack:"size"`
	Removed     int                 `json:"removed" msgpack:"removed"`
	Status      session.Status      `json:"status" msgpack:"status"`
	Answer      string              `json:"answer,omitempty" msgpack:"answer,omitempty"`
	Suggestions []solver.Suggestion `json:"suggestions" msgpack:"suggestions"`
}

// handleFilter applies one (guess, pattern) pair to the caller's session.
// Invalid input is rejected with 400 and leaves the pool untouched; feedback
// for a finished session is rejected with 409.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterReq
	if err := decode(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "bad_json", "")
		return
	}
	id := req.SessionID
	if id == "" {
		id = authorizedSession(r)
	}
	sess, ok := s.sessionFor(w, r, id)
	if !ok {
		return
	}

	step, err := sess.Apply(req.Guess, req.Pattern)
	logger := hlog.FromRequest(r).With().Str("session", sess.ID).Logger()
	switch {
	case errors.Is(err, solver.ErrInvalidInput):
		logger.Debug().Err(err).Str("guess", req.Guess).Str("pattern", req.Pattern).Msg("rejected feedback")
		respondError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
		return
	case errors.Is(err, session.ErrSessionOver):
		logger.Debug().Str("guess", req.Guess).Msg("feedback after session ended")
		respondError(w, r, http.StatusConflict, "session_over", err.Error())
		return
	case errors.Is(err, solver.ErrEmptyPool):
		logger.Info().Str("guess", step.Guess).Str("pattern", step.Pattern).Msg("feedback is self-contradictory")
	case err != nil:
		logger.Error().Err(err).Msg("apply feedback")
		respondError(w, r, http.StatusInternalServerError, "filter_failed", "")
		return
	default:
		logger.Debug().
			Str("guess", step.Guess).
			Str("pattern", step.Pattern).
			Int("before", step.Before).
			Int("after", step.After).
			Msg("feedback applied")
	}

	st := sess.Snapshot()
	respond(w, r, http.StatusOK, filterRes{
		Size:        st.Size,
		Removed:     step.Before - step.After,
		Status:      st.Status,
		Answer:      st.Answer,
		Suggestions: sess.Recommend(s.opts.TopK),
	})
}

// -----------------------------------------------------------------------------
// /solver/{id}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFor(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, sess.Snapshot())
}

// candidatesRes is returned by /solver/{id}/candidates.
type candidatesRes struct {
	Size       int      `json:"size" msgpack:"size"`
	Candidates []string `json:"candidates" msgpack:"candidates"`
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFor(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	limit, ok := intQuery(w, r, "limit", 0)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, candidatesRes{Size: sess.Size(), Candidates: sess.Candidates(limit)})
}

// recommendRes is returned by /solver/{id}/recommend.
type recommendRes struct {
	Size        int                 `json:"size" msgpack:"size"`
	Suggestions []solver.Suggestion `json:"suggestions" msgpack:"suggestions"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFor(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	k, ok := intQuery(w, r, "k", s.opts.TopK)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, recommendRes{Size: sess.Size(), Suggestions: sess.Recommend(k)})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFor(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		respondError(w, r, http.StatusInternalServerError, "delete_failed", "")
		return
	}
	clearSessionCookie(w)
	respond(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// helpers

// sessionFor loads id after checking it is the session the token grants.
// It writes the error response itself and reports false on failure.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request, id string) (*session.Session, bool) {
	if id == "" || id != authorizedSession(r) {
		respondError(w, r, http.StatusForbidden, "forbidden", "")
		return nil, false
	}
	sess, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, "not_found", "")
		return nil, false
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "store_error", "")
		return nil, false
	}
	return sess, true
}

// intQuery parses an optional integer query parameter.
func intQuery(w http.ResponseWriter, r *http.Request, key string, def int) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid_query", key+" must be an integer")
		return 0, false
	}
	return n, true
}
