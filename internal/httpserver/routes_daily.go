// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start a daily game for (lang, length) (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's daily game
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each player can play each (lang, length) challenge once per day (enforced by
// DB + in-memory session). Sessions are held in memory for active play and
// persisted to DB on win. The secret is picked with a keyed hash of the date.

package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Stewinjo/AnyLetters/internal/daily"
	"github.com/Stewinjo/AnyLetters/internal/game"
)

const leaderboardSize = 20

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	sessions map[string]*dailySession // active sessions keyed by player|date|lang|length
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	GameID    string
	PlayerID  string
	Date      string
	Lang      string
	Length    int
	WordIndex int
	Start     time.Time
	Finished  bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    s.opts.Daily,
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.With(s.requirePlayer()).Post("/new", dd.handleNew)
		r.With(s.requirePlayer()).Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

func sessionKey(player, date, lang string, length int) string {
	return player + "|" + date + "|" + lang + "|" + strconv.Itoa(length)
}

// -----------------------------------------------------------------------------
// /daily/new

type dailyNewReq struct {
	Lang   string `json:"lang"`
	Length int    `json:"length"`
}

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Lang   string `json:"lang"`
	Length int    `json:"length"`
	Rows   int    `json:"rows"`
	Played bool   `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// - If the player already has a DB row for today's challenge → Played=true.
// - Otherwise create/reuse an in-memory session and return GameID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	me := currentPlayer(r)
	var req dailyNewReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Lang == "" {
		req.Lang = "en"
	}
	if req.Length == 0 {
		req.Length = 5
	}

	today, err := d.srv.opts.Session.Daily(req.Lang, req.Length, d.srv.now(), d.srv.opts.DailySalt)
	if err != nil {
		d.srv.fail(w, err)
		return
	}
	lang, length := today.Setup.Lang, today.Setup.Length

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), me.ID, today.Date, lang, length); err == nil && played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: today.Date, Lang: lang, Length: length, Played: true})
		return
	}

	key := sessionKey(me.ID, today.Date, lang, length)
	d.mu.Lock()
	defer d.mu.Unlock()
	if sess, ok := d.sessions[key]; ok {
		if sess.Finished {
			writeJSON(w, http.StatusOK, dailyNewRes{Date: today.Date, Lang: lang, Length: length, Played: true})
			return
		}
		if g, err := d.srv.opts.Games.Get(r.Context(), sess.GameID); err == nil {
			writeJSON(w, http.StatusOK, dailyNewRes{GameID: sess.GameID, Date: today.Date, Lang: lang, Length: length, Rows: g.Rows})
			return
		}
		// The game was swept; start over.
	}

	g := game.New(today.Answer, game.Options{Lang: lang, Difficulty: game.DefaultDifficulty, Rows: game.DefaultRows})
	if err := d.srv.opts.Games.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	d.sessions[key] = &dailySession{
		GameID:    g.ID,
		PlayerID:  me.ID,
		Date:      today.Date,
		Lang:      lang,
		Length:    length,
		WordIndex: today.WordIndex,
		Start:     d.srv.now(),
	}
	writeJSON(w, http.StatusOK, dailyNewRes{GameID: g.ID, Date: today.Date, Lang: lang, Length: length, Rows: g.Rows})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// handleGuess validates and applies a guess for one of the player's daily
// sessions and persists the result on a win.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	me := currentPlayer(r)
	var p dailyGuessReq
	if err := decode(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	d.mu.Lock()
	var sess *dailySession
	for _, s := range d.sessions {
		if s.GameID == p.GameID && s.PlayerID == me.ID {
			sess = s
			break
		}
	}
	d.mu.Unlock()
	if sess == nil || p.GameID == "" {
		writeError(w, http.StatusConflict, "no_session")
		return
	}

	res, err := d.srv.applyGuess(r.Context(), sess.GameID, strings.TrimSpace(p.Guess))
	if err != nil {
		d.srv.fail(w, err)
		return
	}

	if res.State != game.StatePlaying {
		d.mu.Lock()
		sess.Finished = true
		d.mu.Unlock()
	}
	if res.State == game.StateWon {
		elapsed := int(d.srv.now().Sub(sess.Start).Milliseconds())
		if err := d.store.InsertResult(r.Context(), daily.Result{
			PlayerID:  me.ID,
			Date:      sess.Date,
			Lang:      sess.Lang,
			Length:    sess.Length,
			WordIndex: sess.WordIndex,
			Guesses:   res.Guesses,
			ElapsedMs: elapsed,
		}); err != nil {
			log.Warn().Err(err).Str("player", me.ID).Msg("insert daily result")
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date   string        `json:"date"`
	Lang   string        `json:"lang"`
	Length int           `json:"length"`
	Top    []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard of a challenge.
// Query: date (default today), lang (default en), length (default 5).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	if date == "" {
		date = daily.DateKey(d.srv.now())
	}
	lang := strings.ToLower(q.Get("lang"))
	if lang == "" {
		lang = "en"
	}
	length := 5
	if v := q.Get("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_length")
			return
		}
		length = n
	}
	rows, err := d.store.Leaderboard(r.Context(), date, lang, length, leaderboardSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Lang: lang, Length: length, Top: rows})
}
