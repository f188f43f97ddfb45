// internal/lexicon/engine.go
//
// Engine is the long-lived context object of the word-candidate pipeline.
// Responsibilities:
//   - Load every .aff/.dic pair of a dictionary folder once (memoized per folder).
//   - Expand entries to per-(language, length) candidate sets, pruning
//     blocked-suffix variants.
//   - Build validators (membership predicates) backed by the validator cache.
//   - Build filtered solution lists backed by the filtered-solution cache.
//   - Clear both caches, optionally scoped to a language.
//
// Concurrency:
//   • Everything built is immutable once published. Concurrent first access to
//     a key runs a single builder (singleflight); the rest share its result.
//   • Memoized results live in bounded LRU caches; ClearCaches purges them.

package lexicon

import (
	"errors"
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/Stewinjo/AnyLetters/internal/affix"
	"github.com/Stewinjo/AnyLetters/internal/cache"
	"github.com/Stewinjo/AnyLetters/internal/filter"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

var (
	// ErrNoDictionary is returned when a dictionary folder does not exist.
	ErrNoDictionary = errors.New("dictionary folder not found")
	// ErrNoEntries is returned when a dictionary folder yields no entries at all.
	ErrNoEntries = errors.New("dictionary contains no entries")
	// ErrNoCandidates is returned when no word of the requested length can be generated.
	ErrNoCandidates = errors.New("no candidates for language and length")
	// ErrUnknownLanguage is returned when no dictionary matches a language code.
	ErrUnknownLanguage = errors.New("unknown language")
)

const defaultIndexSize = 64

// Options configures an Engine. Zero values get working defaults: permissive
// filters, caches under ./cache and the global zerolog logger.
type Options struct {
	Filters    *filter.Registry
	Validators *cache.Store
	Solutions  *cache.Store
	// IndexSize bounds each in-memory memo (dictionaries, validator sets, solution lists).
	IndexSize int
	Logger    *zerolog.Logger
}

// Engine owns the filter registry, both caches and the in-memory memos.
type Engine struct {
	filters    *filter.Registry
	validators *cache.Store
	solutions  *cache.Store
	log        zerolog.Logger

	group  singleflight.Group
	dicts  *lru.Cache[string, *dictionary]
	index  *lru.Cache[string, *index]
	solved *lru.Cache[string, []string]
}

// New builds an Engine from opts.
func New(opts Options) (*Engine, error) {
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	size := opts.IndexSize
	if size == 0 {
		size = defaultIndexSize
	}
	if opts.Filters == nil {
		opts.Filters = filter.NewRegistry(nil, nil, logger)
	}
	if opts.Validators == nil {
		opts.Validators = cache.New("cache", cache.Validator, logger)
	}
	if opts.Solutions == nil {
		opts.Solutions = cache.New("cache/solutions_filtered", cache.Solutions, logger)
	}

	dicts, err := lru.New[string, *dictionary](size)
	if err != nil {
		return nil, fmt.Errorf("dictionary memo: %w", err)
	}
	idx, err := lru.New[string, *index](size)
	if err != nil {
		return nil, fmt.Errorf("index memo: %w", err)
	}
	solved, err := lru.New[string, []string](size)
	if err != nil {
		return nil, fmt.Errorf("solutions memo: %w", err)
	}

	return &Engine{
		filters:    opts.Filters,
		validators: opts.Validators,
		solutions:  opts.Solutions,
		log:        logger,
		dicts:      dicts,
		index:      idx,
		solved:     solved,
	}, nil
}

func (e *Engine) Filters() *filter.Registry { return e.filters }

// WordData is the dictionary-derived material for one (language, length).
type WordData struct {
	// BaseWords are base forms of the target length.
	BaseWords words.Set
	// AffixedWords are single-affix candidates of the target length.
	AffixedWords words.Set
	// Catalog is every base form of the dictionary, whatever its length.
	Catalog words.Set
}

// Combined is the union of base and affixed words.
func (d WordData) Combined() words.Set {
	out := make(words.Set, len(d.BaseWords)+len(d.AffixedWords))
	out.Union(d.BaseWords)
	out.Union(d.AffixedWords)
	return out
}

// CollectWordData expands the dictionary in folder to words of length.
//
// Suffix rules whose addition is a blocked suffix (global plus lang archetype)
// are never applied, and both partitions are pruned of words that look like a
// catalog entry plus a blocked suffix.
func (e *Engine) CollectWordData(folder, lang string, length int) (WordData, error) {
	dict, err := e.dictionary(folder)
	if err != nil {
		return WordData{}, err
	}
	if len(dict.entries) == 0 {
		return WordData{}, fmt.Errorf("%s: %w", folder, ErrNoEntries)
	}

	blocked := e.filters.BlockedSuffixes(lang)
	x := affix.Expand(dict.entries, dict.rules, length, affix.Options{
		Alphabet:               words.AlphabetFor(lang),
		BlockedSuffixAdditions: blocked,
	})
	prunedBase := filter.PruneBlockedSuffixBases(x.Base, blocked, dict.catalog)
	prunedAffixed := filter.PruneBlockedSuffixBases(x.Affixed, blocked, dict.catalog)

	e.log.Debug().
		Str("lang", lang).
		Int("length", length).
		Int("base", len(x.Base)).
		Int("affixed", len(x.Affixed)).
		Int("pruned", prunedBase+prunedAffixed).
		Msg("dictionary expanded")

	return WordData{BaseWords: x.Base, AffixedWords: x.Affixed, Catalog: dict.catalog}, nil
}

// Catalog returns every base form of the dictionary in folder.
func (e *Engine) Catalog(folder string) (words.Set, error) {
	dict, err := e.dictionary(folder)
	if err != nil {
		return nil, err
	}
	return dict.catalog, nil
}

// ClearResult counts the files ClearCaches removed.
type ClearResult struct {
	Solutions  int
	Validators int
}

// ClearCaches removes cached lists of lang (all languages when blank) from
// both stores and drops the in-memory memos. The filtered-solution store is
// cleared first so that an unscoped clear can also remove the validator
// directory that contains it.
func (e *Engine) ClearCaches(lang string) (ClearResult, error) {
	var res ClearResult
	var err error
	if res.Solutions, err = e.solutions.Clear(lang); err != nil {
		return res, err
	}
	if res.Validators, err = e.validators.Clear(lang); err != nil {
		return res, err
	}
	e.index.Purge()
	e.solved.Purge()
	return res, nil
}

func key(parts ...any) string {
	k := ""
	for i, p := range parts {
		if i > 0 {
			k += "|"
		}
		switch v := p.(type) {
		case string:
			k += v
		case int:
			k += strconv.Itoa(v)
		case bool:
			k += strconv.FormatBool(v)
		}
	}
	return k
}
