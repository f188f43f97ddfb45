package lexicon

import (
	"fmt"
	"path/filepath"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// SolutionsPath is the canonical solutions file of (lang, length) inside dir,
// e.g. solutions/en5.txt.
func SolutionsPath(dir, lang string, length int) string {
	return filepath.Join(dir, fmt.Sprintf("%s%d.txt", lang, length))
}

// ReadSolutions reads a solutions file. found is false when the file does not
// exist, which is not an error.
func ReadSolutions(path string) (list []string, found bool, err error) {
	if !isFile(path) {
		return nil, false, nil
	}
	list, err = words.ReadList(path)
	if err != nil {
		return nil, true, fmt.Errorf("read solutions %s: %w", path, err)
	}
	return list, true, nil
}

// LoadOrBuildFilteredSolutions returns the sorted unique solution list of
// (lang, length).
//
// With filters enabled a non-empty filtered-solution cache is returned as is.
// Otherwise the dictionary is expanded; an empty expansion is ErrNoCandidates.
// Without filters the expansion is returned unchanged and nothing is cached.
// With filters the language pipeline runs over it, falling back to the
// unfiltered list when filtering leaves nothing, and the result is written to
// the cache (best effort).
//
// Results are memoized; the returned slice is shared and must not be modified.
func (e *Engine) LoadOrBuildFilteredSolutions(lang string, length int, folder string, enabled bool) ([]string, error) {
	k := key(lang, length, enabled)
	if list, ok := e.solved.Get(k); ok {
		return list, nil
	}
	v, err, _ := e.group.Do("solved|"+k, func() (any, error) {
		if list, ok := e.solved.Get(k); ok {
			return list, nil
		}
		list, err := e.buildSolutions(lang, length, folder, enabled)
		if err != nil {
			return nil, err
		}
		e.solved.Add(k, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (e *Engine) buildSolutions(lang string, length int, folder string, enabled bool) ([]string, error) {
	if enabled {
		cached, err := e.solutions.Load(lang, length)
		if err != nil {
			e.log.Warn().Err(err).Msg("filtered solution cache unreadable, rebuilding")
		}
		if len(cached) > 0 {
			e.log.Info().Str("lang", lang).Int("length", length).Int("words", len(cached)).Msg("filtered solution cache loaded")
			return words.SortedUnique(cached), nil
		}
	}

	data, err := e.CollectWordData(folder, lang, length)
	if err != nil {
		return nil, err
	}
	generated := data.Combined().Sorted()
	if len(generated) == 0 {
		return nil, fmt.Errorf("%s/%d: %w", lang, length, ErrNoCandidates)
	}

	if !enabled {
		e.log.Info().Str("lang", lang).Int("length", length).Int("words", len(generated)).Msg("solutions generated without language filters")
		return generated, nil
	}

	filtered := e.filters.Apply(generated, lang, true)
	if len(filtered) == 0 {
		e.log.Warn().Str("lang", lang).Int("length", length).Msg("filtered solution list empty, falling back to unfiltered dictionary words")
		filtered = generated
	}
	if err := e.solutions.Save(lang, length, filtered); err != nil {
		e.log.Warn().Err(err).Msg("filtered solution cache not written")
	}
	e.log.Info().Str("lang", lang).Int("length", length).Int("words", len(filtered)).Msg("filtered solution cache built")
	return filtered, nil
}
