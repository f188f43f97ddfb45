package game

import (
	"github.com/rs/zerolog/log"

	"github.com/Stewinjo/AnyLetters/internal/morph"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

// Pool sources reported by ResolvePool.
const (
	SourceSolutionsFile = "solutions-file"
	SourceFiltered      = "filtered"
	SourceDictionary    = "dictionary"
)

// Lexicon is the part of the word-candidate engine that pool resolution needs.
type Lexicon interface {
	LoadOrBuildFilteredSolutions(lang string, length int, folder string, enabled bool) ([]string, error)
	Catalog(folder string) (words.Set, error)
}

// WordLister exposes the allowed words of a validator.
type WordLister interface {
	Words() []string
}

// PoolRequest describes the secret pool to build.
type PoolRequest struct {
	Lang           string
	Length         int
	Folder         string
	Difficulty     Difficulty
	FiltersEnabled bool
	// Solutions are the lines of the solutions file; SolutionsFound tells an
	// absent file from an empty one.
	Solutions      []string
	SolutionsFound bool
}

// Pool is a list of secret candidates and where it came from.
type Pool struct {
	Words  []string
	Source string
}

// ResolvePool builds the secret pool, trying in order:
//
//  1. solutions-file words of the requested length;
//  2. without a solutions file and unless the difficulty is chaos, the
//     filtered dictionary solutions (reduced by the morphological heuristics
//     on medium, unless that would empty them);
//  3. the validator's allowed words of the requested length.
//
// ErrNoSolutions is returned when all of them are empty.
func ResolvePool(lex Lexicon, allowed WordLister, req PoolRequest) (Pool, error) {
	logger := log.With().Str("lang", req.Lang).Int("length", req.Length).Logger()

	pool := Pool{Words: words.FilterLength(normalizeAll(req.Solutions), req.Length), Source: SourceSolutionsFile}

	if !req.SolutionsFound && req.Difficulty != Chaos && lex != nil {
		filtered, err := lex.LoadOrBuildFilteredSolutions(req.Lang, req.Length, req.Folder, req.FiltersEnabled)
		if err != nil {
			logger.Warn().Err(err).Msg("filtered solutions unavailable")
		} else if len(filtered) > 0 {
			pool = Pool{Words: filtered, Source: SourceFiltered}
			if req.Difficulty == Medium {
				pool.Words = reduceInflected(lex, req, filtered)
			}
		}
	}

	if len(pool.Words) == 0 && allowed != nil {
		dict := words.FilterLength(allowed.Words(), req.Length)
		if len(dict) > 0 {
			if req.SolutionsFound {
				logger.Warn().Int("words", len(dict)).Msg("solutions file has no words of this length, using dictionary words")
			} else {
				logger.Info().Int("words", len(dict)).Msg("no solutions file, using dictionary words")
			}
			pool = Pool{Words: dict, Source: SourceDictionary}
		}
	}

	if len(pool.Words) == 0 {
		return Pool{}, ErrNoSolutions
	}
	return pool, nil
}

func reduceInflected(lex Lexicon, req PoolRequest, list []string) []string {
	if !morph.Supported(req.Lang) {
		return list
	}
	catalog, err := lex.Catalog(req.Folder)
	if err != nil {
		log.Warn().Err(err).Msg("catalog unavailable, keeping inflected forms")
		return list
	}
	reduced := morph.Reduce(list, req.Lang, catalog)
	if len(reduced) == 0 {
		return list
	}
	log.Debug().Str("lang", req.Lang).Int("before", len(list)).Int("after", len(reduced)).Msg("inflected forms removed")
	return reduced
}

func normalizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		out = append(out, words.Normalize(w))
	}
	return out
}
