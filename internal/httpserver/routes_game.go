package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Stewinjo/AnyLetters/internal/game"
	"github.com/Stewinjo/AnyLetters/internal/lexicon"
	"github.com/Stewinjo/AnyLetters/internal/session"
	"github.com/Stewinjo/AnyLetters/internal/store"
)

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Lang       string `json:"lang"`
	Length     int    `json:"length"`
	Difficulty string `json:"difficulty"` // easy | medium | hard | chaos; empty = medium
	Filters    *bool  `json:"filters"`    // language filters on the secret pool; default on
	Answer     string `json:"answer"`     // optional fixed answer (testing)
}
type newGameRes struct {
	GameID     string `json:"gameId"`
	Lang       string `json:"lang"`
	Length     int    `json:"length"`
	Rows       int    `json:"rows"` // 0 = unlimited
	Difficulty string `json:"difficulty"`
	Hint       string `json:"hint,omitempty"`
	Source     string `json:"source"`
}

// handleNewGame draws a secret for the requested language and length and
// stores a new in-memory game around it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
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
	diff, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_difficulty")
		return
	}
	filters := req.Filters == nil || *req.Filters

	var player string
	if me := currentPlayer(r); me != nil {
		player = me.ID
	}
	started, err := s.opts.Session.NewGame(session.NewGameRequest{
		Player:     player,
		Lang:       req.Lang,
		Length:     req.Length,
		Difficulty: diff,
		Filters:    filters,
		Answer:     req.Answer,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	g := started.Game
	if err := s.opts.Games.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	writeJSON(w, http.StatusOK, newGameRes{
		GameID:     g.ID,
		Lang:       g.Lang,
		Length:     g.Cols,
		Rows:       g.Rows,
		Difficulty: g.Difficulty.String(),
		Hint:       g.Hint,
		Source:     started.Source,
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks     []game.Mark              `json:"marks"`
	Pattern   string                   `json:"pattern"` // G/Y/B per letter
	State     game.State               `json:"state"`   // playing | won | lost
	Guesses   int                      `json:"guesses"`
	Remaining int                      `json:"remaining"` // -1 = unlimited
	Keyboard  map[string]game.KeyState `json:"keyboard"`
	Answer    string                   `json:"answer,omitempty"` // revealed once finished
}

// handleGuess applies a guess to an in-memory game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	res, err := s.applyGuess(r.Context(), req.GameID, req.Guess)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// applyGuess resolves the validator of the game before taking the store's
// write lock: building one after a cache clear expands a whole dictionary.
// Lang and Cols never change after a game is created.
func (s *Server) applyGuess(ctx context.Context, id, guess string) (guessRes, error) {
	g, err := s.opts.Games.Get(ctx, id)
	if err != nil {
		return guessRes{}, err
	}
	setup, err := s.opts.Session.Setup(g.Lang, g.Cols)
	if err != nil {
		return guessRes{}, err
	}

	var res guessRes
	err = s.opts.Games.Update(ctx, id, func(g *game.Game) error {
		marks, state, err := g.ApplyGuess(guess, setup.Validator)
		if err != nil {
			return err
		}
		res = guessResult(g, marks, state)
		return nil
	})
	return res, err
}

func guessResult(g *game.Game, marks []game.Mark, state game.State) guessRes {
	kb := make(map[string]game.KeyState, len(g.Keyboard))
	for k, v := range g.Keyboard {
		kb[k] = v
	}
	res := guessRes{
		Marks:     marks,
		Pattern:   game.Codes(marks),
		State:     state,
		Guesses:   len(g.Guesses),
		Remaining: g.Remaining(),
		Keyboard:  kb,
	}
	if g.Finished {
		res.Answer = g.Answer
	}
	return res
}

// fail maps domain errors to HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, lexicon.ErrUnknownLanguage), errors.Is(err, lexicon.ErrNoDictionary):
		writeError(w, http.StatusNotFound, "unknown_language")
	case errors.Is(err, lexicon.ErrNoCandidates), errors.Is(err, lexicon.ErrNoEntries), errors.Is(err, game.ErrNoSolutions):
		writeError(w, http.StatusNotFound, "no_words")
	case errors.Is(err, session.ErrBadLength), errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
	case errors.Is(err, game.ErrNotInWordList):
		writeError(w, http.StatusUnprocessableEntity, "not_in_word_list")
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "finished")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
