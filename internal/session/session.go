// apps/solver/internal/session/session.go
//
// One solving session: a CandidateStore plus the history of applied feedback.
// Responsibilities:
//   - Normalize raw (guess, pattern) input the way users type it.
//   - Serialize callers; the engine itself holds no locks.
//   - Report a coarse status: solving → solved | contradiction.
//
// Notes:
//   - There is no undo. Both terminal states (solved, contradiction) end the
//     session: further feedback is refused with ErrSessionOver.
//   - The starter suggestion is only reported before the first guess.

package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrSessionOver is returned by Apply once the session is solved or has
// run into a contradiction.
var ErrSessionOver = errors.New("session is over")

// Starter is the opening guess suggested before any feedback is known.
const Starter = "slate"

// Status is the coarse state of a session.
type Status string

const (
	StatusSolving       Status = "solving"
	StatusSolved        Status = "solved"
	StatusContradiction Status = "contradiction"
)

// Step records one accepted (guess, pattern) pair.
type Step struct {
	Guess   string    `json:"guess" msgpack:"guess"`
	Pattern string    `json:"pattern" msgpack:"pattern"`
	Before  int       `json:"before" msgpack:"before"`
	After   int       `json:"after" msgpack:"after"`
	At      time.Time `json:"at" msgpack:"at"`
}

// State is a read-only snapshot of a session.
type State struct {
	ID        string    `json:"id" msgpack:"id"`
	Size      int       `json:"size" msgpack:"size"`
	Length    int       `json:"length" msgpack:"length"`
	Status    Status    `json:"status" msgpack:"status"`
	Answer    string    `json:"answer,omitempty" msgpack:"answer,omitempty"`
	Starter   string    `json:"starter,omitempty" msgpack:"starter,omitempty"`
	History   []Step    `json:"history" msgpack:"history"`
	CreatedAt time.Time `json:"createdAt" msgpack:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" msgpack:"updatedAt"`
}

// Session holds the state of a single solving session.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex // guards everything below
	pool      *solver.CandidateStore
	history   []Step
	updatedAt time.Time
	now       func() time.Time
}

// Option customizes a Session.
type Option func(*Session)

// WithClock replaces time.Now for CreatedAt, UpdatedAt and step timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New seeds a session with a copy of words.
func New(id string, words []string, opts ...Option) *Session {
	s := &Session{ID: id, pool: solver.NewCandidateStore(words), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	s.CreatedAt = s.now()
	s.updatedAt = s.CreatedAt
	return s
}

// Apply normalizes and applies one round of feedback.
//
// guess is trimmed and lowercased, pattern is trimmed (G/Y/X, any case).
// Invalid input returns an error matching solver.ErrInvalidInput and leaves
// the session untouched. A contradiction is recorded in history and returned
// as solver.ErrEmptyPool. Once the session is solved or contradicted every
// further call returns ErrSessionOver and records nothing.
func (s *Session) Apply(guess, pattern string) (Step, error) {
	guess = strings.ToLower(strings.TrimSpace(guess))
	p, err := solver.ParsePattern(strings.TrimSpace(pattern))
	if err != nil {
		return Step{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if statusFor(s.pool.Size()) != StatusSolving {
		return Step{}, ErrSessionOver
	}
	before := s.pool.Size()
	ferr := s.pool.Filter(guess, p)
	if ferr != nil && !errors.Is(ferr, solver.ErrEmptyPool) {
		return Step{}, ferr
	}
	st := Step{
		Guess:   guess,
		Pattern: p.String(),
		Before:  before,
		After:   s.pool.Size(),
		At:      s.now(),
	}
	s.history = append(s.history, st)
	s.updatedAt = st.At
	return st, ferr
}

// Recommend ranks the current pool and returns the best k words.
func (s *Session) Recommend(k int) []solver.Suggestion {
	s.mu.Lock()
	pool := s.pool.Pool()
	s.mu.Unlock()
	return solver.Recommend(pool, k)
}

// Candidates returns up to limit remaining words in pool order
// (all of them when limit <= 0).
func (s *Session) Candidates(limit int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := s.pool.Pool()
	if limit > 0 && len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}

// Size returns the number of remaining candidates.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Size()
}

// UpdatedAt reports when feedback was last applied (creation time if never).
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ID:        s.ID,
		Size:      s.pool.Size(),
		Length:    s.pool.Length(),
		Status:    statusFor(s.pool.Size()),
		History:   append([]Step{}, s.history...),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.updatedAt,
	}
	if st.Status == StatusSolved {
		st.Answer = s.pool.Pool()[0]
	}
	if len(s.history) == 0 {
		st.Starter = Starter
	}
	return st
}

func statusFor(size int) Status {
	switch size {
	case 0:
		return StatusContradiction
	case 1:
		return StatusSolved
	}
	return StatusSolving
}
