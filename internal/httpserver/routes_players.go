package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Stewinjo/AnyLetters/internal/players"
)

// ctxPlayerKey is the request-context key of the authenticated player.
type ctxPlayerKey struct{}

// authPlayer is placed into request context by the auth middlewares.
type authPlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func currentPlayer(r *http.Request) *authPlayer {
	p, _ := r.Context().Value(ctxPlayerKey{}).(*authPlayer)
	return p
}

// mountPlayers registers /players routes. Without a player store nothing is
// mounted.
func (s *Server) mountPlayers(r chi.Router) {
	if s.opts.Players == nil || s.opts.Issuer == nil {
		return
	}
	r.Route("/players", func(r chi.Router) {
		r.Post("/", s.handleCreatePlayer)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.With(s.requirePlayer()).Get("/me", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, currentPlayer(r))
		})
	})
}

// playerReq is the payload of POST /players and POST /players/login.
type playerReq struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type playerRes struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleCreatePlayer registers a player, signs a token and sets the cookie.
func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var body playerReq
	if err := decode(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	p, err := s.opts.Players.Create(r.Context(), body.Name, body.Password)
	switch {
	case errors.Is(err, players.ErrNameTaken):
		writeError(w, http.StatusConflict, "name_taken")
		return
	case errors.Is(err, players.ErrInvalidName), errors.Is(err, players.ErrInvalidPassword):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid", "detail": err.Error()})
		return
	case err != nil:
		s.fail(w, err)
		return
	}
	s.issue(w, http.StatusCreated, p)
}

// handleLogin authenticates a player by name and password.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body playerReq
	if err := decode(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	p, err := s.opts.Players.Authenticate(r.Context(), body.Name, body.Password)
	if errors.Is(err, players.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	s.issue(w, http.StatusOK, p)
}

// handleLogout clears the token cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.setCookie(w, "", time.Time{}, -1)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) issue(w http.ResponseWriter, status int, p *players.Player) {
	tok, exp, err := s.opts.Issuer.Sign(p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setCookie(w, tok, exp, 0)
	writeJSON(w, status, playerRes{ID: p.ID, Name: p.Name, Token: tok, ExpiresAt: exp})
}

// setCookie writes the token cookie; maxAge < 0 deletes it.
func (s *Server) setCookie(w http.ResponseWriter, token string, exp time.Time, maxAge int) {
	sameSite := http.SameSiteLaxMode
	if s.opts.SecureCookies {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: sameSite,
		Expires:  exp,
		MaxAge:   maxAge,
	})
}

// --------------------------- auth middlewares -------------------------------

// authenticate resolves the request's token to a stored player.
func (s *Server) authenticate(r *http.Request) (*authPlayer, bool) {
	if s.opts.Issuer == nil || s.opts.Players == nil {
		return nil, false
	}
	tok := players.BearerOrCookie(r, s.opts.CookieName)
	if tok == "" {
		return nil, false
	}
	claims, err := s.opts.Issuer.Parse(tok)
	if err != nil {
		return nil, false
	}
	// Ensure the player still exists.
	p, err := s.opts.Players.ByID(r.Context(), claims.Subject)
	if err != nil {
		return nil, false
	}
	return &authPlayer{ID: p.ID, Name: p.Name}, true
}

// withOptionalAuth decorates requests with the player if a valid token is
// present. It never 401s; used for routes where guests are allowed.
func (s *Server) withOptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := s.authenticate(r); ok {
				r = r.WithContext(context.WithValue(r.Context(), ctxPlayerKey{}, p))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requirePlayer rejects requests without a valid player token.
func (s *Server) requirePlayer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := s.authenticate(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxPlayerKey{}, p)))
		})
	}
}
