// apps/solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, CORS, timeouts, panic recovery).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints mounted under /solver (see routes_solver.go).
//   - Background sweep of idle sessions.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled so the session cookie works.
//   - Responses are JSON unless the client asks for msgpack (see respond.go).

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Options carries the tunables the server needs from config.
type Options struct {
	ClientOrigin string
	JWTSecret    string
	SessionTTL   time.Duration
	TopK         int
}

// Server bundles router, session store and word list.
type Server struct {
	r     *chi.Mux
	store store.Store
	words *words.List
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, wl *words.List, opts Options) *Server {
	if opts.TopK <= 0 {
		opts.TopK = 10
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 2 * time.Hour
	}
	if opts.JWTSecret == "" {
		opts.JWTSecret = "dev_secret_change_me"
	}
	s := &Server{r: chi.NewRouter(), store: st, words: wl, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped zerolog logger
	s.r.Use(requestIDField)                  // copy chi's request ID into the logger
	s.r.Use(accessLog())                     // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, map[string]any{
			"service":   "wordle-solver",
			"endpoints": []string{"/health", "POST /solver/new", "POST /solver/filter", "GET /solver/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, map[string]any{
			"words":    s.words.Len(),
			"length":   s.words.Length(),
			"source":   s.words.Source(),
			"sessions": s.store.Len(),
		})
	})

	s.mountSolver(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
// Idle sessions are swept every SessionTTL/4 (at least once a second) while
// serving.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.sweepLoop(ctx)

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// sweepInterval is ttl/4, floored at one second. A ttl under 4ns would
// otherwise make time.NewTicker panic.
func sweepInterval(ttl time.Duration) time.Duration {
	return max(ttl/4, time.Second)
}

// sweepLoop evicts sessions idle longer than SessionTTL.
func (s *Server) sweepLoop(ctx context.Context) {
	t := time.NewTicker(sweepInterval(s.opts.SessionTTL))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := s.store.Sweep(ctx, now.Add(-s.opts.SessionTTL))
			if err != nil {
				log.Warn().Err(err).Msg("sweep sessions")
				continue
			}
			if n > 0 {
				log.Info().Int("evicted", n).Int("remaining", s.store.Len()).Msg("swept idle sessions")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// cors enables credentialed CORS for a single configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestIDField tags the request logger with chi's X-Request-ID.
func requestIDField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			l := zerolog.Ctx(r.Context())
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog() func(http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	})
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
