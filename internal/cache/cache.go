// internal/cache/cache.go
//
// Persisted word-list stores keyed by (language, length).
//
// Responsibilities:
//   - Map a key to a deterministic file name inside the store directory.
//   - Load a cached list (a missing file is a miss, not an error).
//   - Save a list as a sorted, deduplicated, newline-separated UTF-8 file,
//     replacing any previous file atomically.
//   - Clear the store, optionally scoped to one language.
//
// Notes:
//   • Two kinds exist: the validator store ("{lang}_{len}_utf-8.txt") and the
//     filtered-solution store ("{lang}_{len}.txt").
//   • Stores never regenerate anything themselves; callers decide what a miss means.

package cache

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// Kind selects the file naming scheme of a Store.
type Kind int

const (
	// Validator holds the full pre-filter candidate set used for membership checks.
	Validator Kind = iota
	// Solutions holds post-filter solution lists used for secret selection.
	Solutions
)

func (k Kind) String() string {
	if k == Solutions {
		return "solutions"
	}
	return "validator"
}

// Store is a directory of cached word lists of one Kind.
type Store struct {
	dir  string
	kind Kind
	log  zerolog.Logger
}

// New returns a store rooted at dir. The directory is created on first Save.
func New(dir string, kind Kind, logger zerolog.Logger) *Store {
	return &Store{dir: filepath.Clean(dir), kind: kind, log: logger}
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Kind() Kind { return s.kind }

// Path returns the file backing (lang, length).
func (s *Store) Path(lang string, length int) string {
	name := fmt.Sprintf("%s_%d.txt", lang, length)
	if s.kind == Validator {
		name = fmt.Sprintf("%s_%d_utf-8.txt", lang, length)
	}
	return filepath.Join(s.dir, name)
}

// Exists reports whether a cache file is present for (lang, length).
func (s *Store) Exists(lang string, length int) bool {
	fi, err := os.Stat(s.Path(lang, length))
	return err == nil && fi.Mode().IsRegular()
}

// Load returns the cached words for (lang, length) in file order.
// A missing file yields (nil, nil).
func (s *Store) Load(lang string, length int) ([]string, error) {
	list, err := words.ReadListIfExists(s.Path(lang, length))
	if err != nil {
		return nil, fmt.Errorf("load %s cache %s/%d: %w", s.kind, lang, length, err)
	}
	return list, nil
}

// Save replaces the cache for (lang, length) with the sorted unique list.
func (s *Store) Save(lang string, length int, list []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	path := s.Path(lang, length)
	sorted := words.SortedUnique(list)
	if err := writeAtomic(path, sorted); err != nil {
		return fmt.Errorf("save %s cache %s/%d: %w", s.kind, lang, length, err)
	}
	s.log.Info().Str("kind", s.kind.String()).Str("path", path).Int("words", len(sorted)).Msg("cache written")
	return nil
}

// Clear deletes cached lists. With a non-blank lang only files whose name
// starts with "{lang}_" (case-insensitive) are removed. With a blank lang
// every list is removed and the directory itself is removed if it ends up
// empty. A missing directory is not an error. It returns the number of files
// removed.
func (s *Store) Clear(lang string) (int, error) {
	ents, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("clear %s cache: %w", s.kind, err)
	}

	prefix := ""
	if l := strings.ToLower(strings.TrimSpace(lang)); l != "" {
		prefix = l + "_"
	}

	removed := 0
	for _, ent := range ents {
		if !ent.Type().IsRegular() {
			continue
		}
		name := strings.ToLower(ent.Name())
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, ent.Name())); err != nil {
			s.log.Warn().Err(err).Str("file", ent.Name()).Msg("cache file not removed")
			continue
		}
		removed++
	}

	if prefix == "" {
		// Fails harmlessly when anything else still lives in the directory.
		_ = os.Remove(s.dir)
	}
	s.log.Info().Str("kind", s.kind.String()).Str("lang", lang).Int("removed", removed).Msg("cache cleared")
	return removed, nil
}

func writeAtomic(path string, list []string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, word := range list {
		if _, err = w.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
