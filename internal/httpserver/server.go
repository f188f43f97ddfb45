// internal/httpserver/server.go
//
// HTTP server wiring for the AnyLetters backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/languages", "/words/check".
//   - Game endpoints (optional auth): POST /game/new, POST /game/guess.
//   - Player endpoints: POST /players, POST /players/login, GET /players/me.
//   - Daily Challenge endpoints (player token required): mounted under /daily.
//   - Cache maintenance: DELETE /cache.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with the player when a valid token is
//     present; routes can still run for guests.
//   - Games live in memory and are swept once they outlive GameTTL.

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

	"github.com/Stewinjo/AnyLetters/internal/daily"
	"github.com/Stewinjo/AnyLetters/internal/players"
	"github.com/Stewinjo/AnyLetters/internal/session"
	"github.com/Stewinjo/AnyLetters/internal/store"
)

// Options carries the collaborators and settings of a Server.
type Options struct {
	Session *session.Session
	Games   store.Store
	Players *players.Store
	Daily   *daily.Store
	Issuer  *players.Issuer

	DictRoot     string
	ClientOrigin string
	CookieName   string
	// SecureCookies marks cookies Secure and SameSite=None.
	SecureCookies bool
	DailySalt     string
	GameTTL       time.Duration
	// Now is the clock of the daily challenge; nil uses time.Now.
	Now func() time.Time
}

// Server bundles the router and its collaborators.
type Server struct {
	r    *chi.Mux
	opts Options
	now  func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.CookieName == "" {
		opts.CookieName = "anyletters_token"
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), opts: opts, now: time.Now}
	if opts.Now != nil {
		s.now = opts.Now
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time; first dictionary expansion is slow
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "anyletters",
			"endpoints": []string{
				"/health", "/languages", "/words/check",
				"POST /game/new", "POST /game/guess",
				"POST /players", "/daily/*", "DELETE /cache",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.mountWords(s.r)

	// Game endpoints: optional auth, guests can play.
	s.r.With(s.withOptionalAuth()).Post("/game/new", s.handleNewGame)
	s.r.With(s.withOptionalAuth()).Post("/game/guess", s.handleGuess)

	s.mountPlayers(s.r)

	// Daily Challenge needs a player to attach results to.
	if opts.Daily != nil {
		s.mountDaily(s.r)
	}

	s.r.Delete("/cache", s.handleClearCache)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down
// gracefully. Expired games are swept in the background meanwhile.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.sweep(ctx)

	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// sweep drops games older than GameTTL every few minutes.
func (s *Server) sweep(ctx context.Context) {
	ttl := s.opts.GameTTL
	if ttl <= 0 || s.opts.Games == nil {
		return
	}
	t := time.NewTicker(max(min(ttl/4, 10*time.Minute), time.Second))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.opts.Games.Sweep(ctx, s.now().Add(-ttl))
			if err != nil {
				log.Warn().Err(err).Msg("sweep games")
				continue
			}
			if n > 0 {
				log.Info().Int("removed", n).Msg("expired games swept")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
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

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug().Err(err).Msg("write response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
