// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the Mastermind backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, logging).
//   - Public endpoints: "/", "/health", "/auth/signup", "/auth/login", "/auth/logout".
//   - Authenticated game endpoints: /games, /games/{id}, /games/{id}/guesses, /games/validate.
//   - Authenticated stats endpoints: /stats/me, /stats/with/{username}.
//
// Notes:
//   - This layer is plumbing around the rule engine: it loads a game, calls
//     the engine, and commits the result. It never changes engine semantics.
//   - Every load → mutate → save runs under a per-game lock.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/apps/go-server/internal/codes"
	"github.com/robalobadob/mastermind/apps/go-server/internal/config"
	"github.com/robalobadob/mastermind/apps/go-server/internal/game"
	"github.com/robalobadob/mastermind/apps/go-server/internal/store"
	"github.com/robalobadob/mastermind/apps/go-server/internal/users"
)

// Server bundles router, game store, user store and per-game locks.
type Server struct {
	r     *chi.Mux
	cfg   config.Config
	games store.Store
	users *users.Store
	locks *store.KeyedMutex

	// secretFor picks the secret for a new game.
	secretFor func(d game.Difficulty, daily bool) (game.Digits, error)
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, games store.Store, us *users.Store) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		cfg:   cfg,
		games: games,
		users: us,
		locks: store.NewKeyedMutex(),
	}
	s.secretFor = s.defaultSecret

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "mastermind-go",
			"endpoints": []string{"/health", "/auth/*", "/games", "/stats/me"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.mountAuthRoutes()

	s.r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		s.mountGameRoutes(r)
		s.mountStatsRoutes(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Handler exposes the router as an http.Handler.
func (s *Server) Handler() http.Handler { return s.r }

func (s *Server) defaultSecret(d game.Difficulty, daily bool) (game.Digits, error) {
	if daily {
		return codes.Daily(time.Now(), s.cfg.DailySalt, d)
	}
	return codes.Random(d)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: code, Message: msg})
}
