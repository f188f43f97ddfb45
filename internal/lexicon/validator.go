package lexicon

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// Backend labels reported by Validator.Backend.
const (
	BackendSolutionsOnly = "solutions-only"
	BackendCacheOnly     = "cache-only"
	BackendDictionary    = ".dic/.aff cache"
)

// index is the memoized pre-solution word set of one (language, length).
type index struct {
	words   words.Set
	backend string
}

// Validator answers "is this a real word" for one language and length.
// It is immutable and safe for concurrent use.
type Validator struct {
	lang    string
	length  int
	backend string
	base    words.Set // shared with the engine memo, never mutated
	extra   words.Set // solution words missing from base
	log     zerolog.Logger

	sortOnce sync.Once
	sorted   []string
}

// IsValid normalizes word and checks membership. For German a miss is retried
// with umlauts and ß transliterated.
func (v *Validator) IsValid(word string) bool {
	w := words.Normalize(word)
	if v.Contains(w) {
		return true
	}
	if words.IsGerman(v.lang) {
		if alt := words.Transliterate(w); alt != w && v.Contains(alt) {
			v.log.Debug().Str("word", word).Str("as", alt).Msg("accepted via transliteration")
			return true
		}
	}
	v.log.Debug().Str("word", word).Msg("dictionary rejected")
	return false
}

// Contains checks an already normalized word.
func (v *Validator) Contains(w string) bool {
	return v.base.Has(w) || v.extra.Has(w)
}

// Backend names where the allowed words came from.
func (v *Validator) Backend() string { return v.backend }

func (v *Validator) Lang() string { return v.lang }

func (v *Validator) Length() int { return v.length }

// Len is the number of allowed words.
func (v *Validator) Len() int { return len(v.base) + len(v.extra) }

// Allowed returns a copy of the allowed word set.
func (v *Validator) Allowed() words.Set {
	out := v.base.Clone()
	out.Union(v.extra)
	return out
}

// Words returns the allowed words sorted. The slice is computed once and
// shared between callers, who must not modify it.
func (v *Validator) Words() []string {
	v.sortOnce.Do(func() { v.sorted = v.Allowed().Sorted() })
	return v.sorted
}

// BuildValidator returns the validator for (lang, length).
//
// The allowed set is read from the validator cache when present, otherwise
// generated from the dictionary in folder and written back (best effort).
// Normalized solutions of the right length are always added. When the
// dictionary cannot be used but solutions exist, the validator falls back to
// the solutions alone.
func (e *Engine) BuildValidator(folder string, solutions []string, lang string, length int) (*Validator, error) {
	extra := make(words.Set)
	for _, s := range solutions {
		if n := words.Normalize(s); words.Len(n) == length {
			extra.Add(n)
		}
	}

	idx, err := e.loadIndex(folder, lang, length)
	switch {
	case err == nil:
	case len(extra) > 0 && (errors.Is(err, ErrNoCandidates) || errors.Is(err, ErrNoEntries) || errors.Is(err, ErrNoDictionary)):
		e.log.Warn().Err(err).Str("lang", lang).Int("length", length).Msg("dictionary unusable, validating against solutions only")
		idx = &index{words: words.Set{}, backend: BackendSolutionsOnly}
	default:
		return nil, err
	}

	for w := range extra {
		if idx.words.Has(w) {
			delete(extra, w)
		}
	}
	e.log.Info().
		Str("lang", lang).
		Int("length", length).
		Str("backend", idx.backend).
		Int("words", len(idx.words)+len(extra)).
		Msg("validator ready")

	return &Validator{
		lang:    lang,
		length:  length,
		backend: idx.backend,
		base:    idx.words,
		extra:   extra,
		log:     e.log,
	}, nil
}

// loadIndex returns the pre-solution allowed set, memoized per key.
func (e *Engine) loadIndex(folder, lang string, length int) (*index, error) {
	k := key(lang, length)
	if idx, ok := e.index.Get(k); ok {
		return idx, nil
	}
	v, err, _ := e.group.Do("index|"+k, func() (any, error) {
		if idx, ok := e.index.Get(k); ok {
			return idx, nil
		}
		idx, err := e.buildIndex(folder, lang, length)
		if err != nil {
			return nil, err
		}
		e.index.Add(k, idx)
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*index), nil
}

func (e *Engine) buildIndex(folder, lang string, length int) (*index, error) {
	cached, err := e.validators.Load(lang, length)
	if err != nil {
		e.log.Warn().Err(err).Msg("validator cache unreadable, rebuilding")
	}
	if len(cached) > 0 {
		e.log.Info().Str("lang", lang).Int("length", length).Int("words", len(cached)).Msg("validator cache loaded")
		return &index{words: words.ToSet(cached), backend: BackendCacheOnly}, nil
	}

	data, err := e.CollectWordData(folder, lang, length)
	if err != nil {
		return nil, err
	}
	all := data.Combined()
	if len(all) == 0 {
		return nil, fmt.Errorf("%s/%d: %w", lang, length, ErrNoCandidates)
	}
	if err := e.validators.Save(lang, length, all.Sorted()); err != nil {
		e.log.Warn().Err(err).Msg("validator cache not written")
	}
	e.log.Info().
		Str("lang", lang).
		Int("length", length).
		Int("base", len(data.BaseWords)).
		Int("affixed", len(data.AffixedWords)).
		Int("total", len(all)).
		Msg("validator cache built")
	return &index{words: all, backend: BackendDictionary}, nil
}
