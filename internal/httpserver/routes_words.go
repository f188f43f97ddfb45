package httpserver

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Stewinjo/AnyLetters/internal/lexicon"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

// mountWords registers the dictionary endpoints.
func (s *Server) mountWords(r chi.Router) {
	r.Get("/languages", s.handleLanguages)
	r.Get("/words/check", s.handleCheck)
}

type languagesRes struct {
	Languages []string `json:"languages"`
}

// handleLanguages lists the dictionaries found under the dictionary root.
func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	langs, err := lexicon.AvailableLanguages(s.opts.DictRoot)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, languagesRes{Languages: lexicon.SortedLanguages(langs)})
}

type checkRes struct {
	Word    string `json:"word"`
	Lang    string `json:"lang"`
	Valid   bool   `json:"valid"`
	Backend string `json:"backend"`
	// Filtered names the filter check that keeps the word out of the
	// secret pool, if any.
	Filtered string `json:"filtered,omitempty"`
}

// handleCheck answers GET /words/check?lang=en&word=house.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	word := words.Normalize(strings.TrimSpace(q.Get("word")))
	lang := q.Get("lang")
	if lang == "" {
		lang = "en"
	}
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing_word")
		return
	}

	setup, err := s.opts.Session.Setup(lang, words.Len(word))
	if err != nil {
		s.fail(w, err)
		return
	}
	res := checkRes{
		Word:    word,
		Lang:    setup.Lang,
		Valid:   setup.Validator.IsValid(word),
		Backend: setup.Validator.Backend(),
	}
	if arch, reason := s.opts.Session.Engine().Filters().Explain(word, setup.Lang); arch != "" {
		res.Filtered = arch + ":" + string(reason)
	}
	writeJSON(w, http.StatusOK, res)
}

type clearRes struct {
	Solutions  int `json:"solutions"`
	Validators int `json:"validators"`
}

// handleClearCache answers DELETE /cache[?lang=xx].
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	res, err := s.opts.Session.ClearCaches(r.URL.Query().Get("lang"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clearRes{Solutions: res.Solutions, Validators: res.Validators})
}
