// Package session is the game-session collaborator of the word-candidate
// engine. It resolves dictionaries and solution files for a (language,
// length) pair, keeps one validator per pair, draws secrets without
// repeating them and builds new games.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Stewinjo/AnyLetters/internal/daily"
	"github.com/Stewinjo/AnyLetters/internal/game"
	"github.com/Stewinjo/AnyLetters/internal/lexicon"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

// ErrBadLength is returned for non-positive word lengths.
var ErrBadLength = errors.New("length must be positive")

// ErrBadLanguage is returned for language codes that cannot name a dictionary
// folder, such as codes holding path separators. It wraps
// lexicon.ErrUnknownLanguage.
var ErrBadLanguage = fmt.Errorf("malformed language code: %w", lexicon.ErrUnknownLanguage)

// languageCode matches lowercased codes like "en", "de-at" or "de_at".
var languageCode = regexp.MustCompile(`^[a-z]{2,3}([-_][a-z0-9]+)*$`)

// Config locates the inputs of a session.
type Config struct {
	DictRoot     string
	SolutionsDir string
	// Rows is the board height of new games; 0 means unlimited.
	Rows int
	// Rand drives secret selection and hints; nil uses the global source.
	Rand *rand.Rand
}

// Session is safe for concurrent use.
type Session struct {
	engine *lexicon.Engine
	cfg    Config

	mu         sync.Mutex
	ledgers    map[string]*game.Ledger
	validators map[string]*Setup
}

func New(engine *lexicon.Engine, cfg Config) *Session {
	return &Session{
		engine:     engine,
		cfg:        cfg,
		ledgers:    make(map[string]*game.Ledger),
		validators: make(map[string]*Setup),
	}
}

// Engine returns the underlying lexicon engine.
func (s *Session) Engine() *lexicon.Engine { return s.engine }

// Setup is everything resolved for one (language, length) pair.
type Setup struct {
	Lang           string
	Length         int
	Folder         string
	Solutions      []string
	SolutionsFound bool
	Validator      *lexicon.Validator
}

// Setup resolves the dictionary folder, the solutions file and the validator
// of (lang, length). Results are kept until ClearCaches.
//
// A language without a dictionary folder can still be played when it has a
// solutions file: its validator then accepts the solutions only.
func (s *Session) Setup(lang string, length int) (*Setup, error) {
	if length <= 0 {
		return nil, ErrBadLength
	}
	code := strings.ToLower(strings.TrimSpace(lang))
	if !languageCode.MatchString(code) {
		return nil, fmt.Errorf("%q: %w", lang, ErrBadLanguage)
	}
	k := fmt.Sprintf("%s|%d", code, length)

	s.mu.Lock()
	cached := s.validators[k]
	s.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	_, folder, err := lexicon.ResolveFolder(s.cfg.DictRoot, code)
	if errors.Is(err, lexicon.ErrUnknownLanguage) {
		folder = filepath.Join(s.cfg.DictRoot, code)
	} else if err != nil {
		return nil, err
	}

	sols, found, err := lexicon.ReadSolutions(lexicon.SolutionsPath(s.cfg.SolutionsDir, code, length))
	if err != nil {
		return nil, err
	}

	v, err := s.engine.BuildValidator(folder, sols, code, length)
	if err != nil {
		return nil, err
	}

	setup := &Setup{
		Lang:           code,
		Length:         length,
		Folder:         folder,
		Solutions:      sols,
		SolutionsFound: found,
		Validator:      v,
	}
	s.mu.Lock()
	if prev := s.validators[k]; prev != nil {
		setup = prev
	} else {
		s.validators[k] = setup
	}
	s.mu.Unlock()
	return setup, nil
}

// Pool resolves the secret pool of setup for the given difficulty.
func (s *Session) Pool(setup *Setup, diff game.Difficulty, filters bool) (game.Pool, error) {
	return game.ResolvePool(s.engine, setup.Validator, game.PoolRequest{
		Lang:           setup.Lang,
		Length:         setup.Length,
		Folder:         setup.Folder,
		Difficulty:     diff,
		FiltersEnabled: filters,
		Solutions:      setup.Solutions,
		SolutionsFound: setup.SolutionsFound,
	})
}

// Ledger returns the used-secret ledger of a player for (lang, length).
// Guests share the ledger of the empty player.
func (s *Session) Ledger(player, lang string, length int) *game.Ledger {
	k := fmt.Sprintf("%s|%s|%d", player, strings.ToLower(lang), length)
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ledgers[k]
	if l == nil {
		l = game.NewLedger()
		s.ledgers[k] = l
	}
	return l
}

// NewGameRequest describes a game to start.
type NewGameRequest struct {
	// Player keys the used-secret ledger; empty for guests.
	Player     string
	Lang       string
	Length     int
	Difficulty game.Difficulty
	// Filters enables the language filter pipeline for the secret pool.
	Filters bool
	// Answer fixes the secret instead of drawing one; it must have Length letters.
	Answer string
}

// Started is a new game together with what it was built from.
type Started struct {
	Game   *game.Game
	Setup  *Setup
	Source string
}

// NewGame draws an unused secret and starts a game around it.
func (s *Session) NewGame(req NewGameRequest) (*Started, error) {
	diff := req.Difficulty
	if diff == "" {
		diff = game.DefaultDifficulty
	}
	setup, err := s.Setup(req.Lang, req.Length)
	if err != nil {
		return nil, err
	}

	var secret, source string
	if req.Answer != "" {
		secret = words.Normalize(strings.TrimSpace(req.Answer))
		if words.Len(secret) != setup.Length {
			return nil, fmt.Errorf("answer %q: %w", req.Answer, game.ErrInvalidGuess)
		}
		source = "fixed"
	} else {
		pool, err := s.Pool(setup, diff, req.Filters)
		if err != nil {
			return nil, err
		}
		ledger := s.Ledger(req.Player, setup.Lang, setup.Length)
		secret, err = game.PickSecret(pool.Words, setup.Length, ledger, s.cfg.Rand)
		if err != nil {
			return nil, err
		}
		ledger.MarkUsed(secret)
		source = pool.Source
	}

	g := game.New(secret, game.Options{
		Lang:       setup.Lang,
		Difficulty: diff,
		Rows:       s.cfg.Rows,
		Rand:       s.cfg.Rand,
	})
	log.Debug().Str("game", g.ID).Str("lang", setup.Lang).Int("length", setup.Length).
		Str("difficulty", diff.String()).Str("source", source).Msg("game started")
	return &Started{Game: g, Setup: setup, Source: source}, nil
}

// Daily is the shared secret of a day's (lang, length) challenge.
type Daily struct {
	Date      string
	Answer    string
	WordIndex int
	Setup     *Setup
}

// Daily picks the secret of date for (lang, length). The pool is resolved with
// the default difficulty and filters on, so every player gets the same word.
func (s *Session) Daily(lang string, length int, date time.Time, salt string) (*Daily, error) {
	setup, err := s.Setup(lang, length)
	if err != nil {
		return nil, err
	}
	pool, err := s.Pool(setup, game.DefaultDifficulty, true)
	if err != nil {
		return nil, err
	}
	answer, idx := daily.Pick(pool.Words, date, salt, setup.Lang, setup.Length)
	return &Daily{Date: daily.DateKey(date), Answer: answer, WordIndex: idx, Setup: setup}, nil
}

// ClearCaches clears the engine caches for lang (all languages when empty)
// and forgets the matching validators.
func (s *Session) ClearCaches(lang string) (lexicon.ClearResult, error) {
	res, err := s.engine.ClearCaches(lang)
	prefix := strings.ToLower(strings.TrimSpace(lang))
	s.mu.Lock()
	for k := range s.validators {
		if prefix == "" || strings.HasPrefix(k, prefix+"|") {
			delete(s.validators, k)
		}
	}
	s.mu.Unlock()
	return res, err
}
