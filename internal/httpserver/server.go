// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session endpoints: POST /session/new, POST /session/feedback,
//     DELETE /session/{id}.
//
// Notes:
//   - The dictionary is loaded once by the caller and shared read-only.
//   - Sessions live in the in-memory store and vanish on restart.
//   - Malformed feedback is a 400 and leaves the session untouched, so the
//     client can simply resend.
//   - A selection that outlives the request timeout is abandoned and the
//     Timeout middleware answers 504; the session keeps its previous state.
//   - CORS is origin-aware and credentials-enabled for a single browser client.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

// Config holds the server's static inputs.
type Config struct {
	Dict    []string      // sorted dictionary, shared by every session
	Opening string        // first suggestion of every session
	Workers int           // selector goroutines per request
	Timeout time.Duration // per-request handler bound
	Origin  string        // browser origin allowed by CORS
}

// Server bundles router, session store and dictionary.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg Config) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Origin == "" {
		cfg.Origin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(cfg.Timeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.Origin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /session/new","POST /session/feedback","DELETE /session/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": len(s.cfg.Dict), "sessions": s.store.Len()})
	})

	// --- sessions ---
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Post("/session/feedback", s.handleFeedback)
	s.r.Delete("/session/{id}", s.handleDeleteSession)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin and answers preflight
// requests directly.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ----------------------------- SESSIONS ------------------------------------

type newSessionRes struct {
	SessionID  string `json:"sessionId"`
	Suggestion string `json:"suggestion"`
	Remaining  int    `json:"remaining"`
}

// handleNewSession starts a session at the opening suggestion.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New(s.cfg.Dict, s.cfg.Opening, solver.WithWorkers(s.cfg.Workers))
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	snap := sess.Snapshot()
	log.Debug().Str("sessionId", snap.ID).Msg("session started")
	_ = json.NewEncoder(w).Encode(newSessionRes{
		SessionID:  snap.ID,
		Suggestion: snap.Suggestion,
		Remaining:  snap.Remaining,
	})
}

type feedbackReq struct {
	SessionID string `json:"sessionId"`
	Feedback  string `json:"feedback"` // e.g. "gy--g"
}

type feedbackRes struct {
	Suggestion string        `json:"suggestion,omitempty"`
	Score      float64       `json:"score"`
	Remaining  int           `json:"remaining"`
	Turns      int           `json:"turns"`
	State      session.State `json:"state"` // "playing" | "won" | "stuck"
}

// handleFeedback applies one feedback line and returns the next suggestion.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	fb, err := game.ParseFeedback(req.Feedback)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_feedback")
		return
	}

	start := time.Now()
	state, err := sess.Apply(r.Context(), fb)
	switch {
	case errors.Is(err, session.ErrFinished):
		writeError(w, http.StatusConflict, "finished")
		return
	case errors.Is(err, session.ErrNoConsistentWord):
		// reported through state
	case errors.Is(err, context.DeadlineExceeded):
		// the Timeout middleware writes the 504
		log.Warn().Str("sessionId", req.SessionID).Dur("took", time.Since(start)).Msg("selection timed out")
		return
	case err != nil:
		log.Warn().Err(err).Str("sessionId", req.SessionID).Msg("apply feedback")
		writeError(w, http.StatusServiceUnavailable, "select_failed")
		return
	}

	snap := sess.Snapshot()
	log.Info().
		Str("sessionId", snap.ID).
		Str("feedback", fb.String()).
		Str("state", string(state)).
		Int("remaining", snap.Remaining).
		Dur("took", time.Since(start)).
		Msg("feedback applied")

	res := feedbackRes{
		Score:     snap.Score,
		Remaining: snap.Remaining,
		Turns:     snap.Turns,
		State:     state,
	}
	if state != session.StateStuck {
		res.Suggestion = snap.Suggestion
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleDeleteSession drops a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
