// internal/words/words.go
//
// Word normalization and word list helpers shared by every other package.
//
// Responsibilities:
//   - Normalize words (Unicode NFC composition + lowercase) before any membership
//     check, insertion or persistence.
//   - Resolve language archetypes from language codes ("de-AT" -> "de").
//   - Read one-word-per-line files (solutions files, cache files).
//   - Provide Set, the lookup structure used for catalogs, candidates and indexes.
//
// Constraints:
//   • Raw-case forms are only ever kept for display; everything stored is normalized.
//   • Lengths are counted in runes, not bytes.

package words

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// scannerBufSize bounds a single line; hunspell files occasionally carry very long lines.
const scannerBufSize = 1 << 20

// Normalize returns w in NFC form and lowercased.
func Normalize(w string) string {
	return strings.ToLower(norm.NFC.String(w))
}

// Len reports the length of w in runes.
func Len(w string) int { return utf8.RuneCountInString(w) }

// Archetype returns the filtering identity for a language code: the code is
// trimmed, lowercased and stripped of any region subtag after a hyphen.
// An empty code yields "".
func Archetype(lang string) string {
	code := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexByte(code, '-'); i >= 0 {
		code = code[:i]
	}
	return code
}

// IsGerman reports whether lang is German or a regional variant of it.
func IsGerman(lang string) bool { return Archetype(lang) == "de" }

// IsAlpha reports whether s is non-empty and made only of Unicode letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

var germanTransliteration = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// Transliterate converts German umlauts and ß to their ASCII spellings.
func Transliterate(w string) string {
	return germanTransliteration.Replace(w)
}

// ReadList loads one entry per line, trimming whitespace and skipping blank lines.
// The returned error wraps fs.ErrNotExist when the file is missing.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// ReadListIfExists is ReadList, except that a missing file yields an empty list.
func ReadListIfExists(path string) ([]string, error) {
	list, err := ReadList(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return list, err
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// FilterLength returns the words of list whose rune length equals n, in order.
func FilterLength(list []string, n int) []string {
	var out []string
	for _, w := range list {
		if Len(w) == n {
			out = append(out, w)
		}
	}
	return out
}

// SortedUnique returns a sorted copy of list with duplicates removed.
func SortedUnique(list []string) []string {
	return ToSet(list).Sorted()
}

// Set is a string lookup set.
type Set map[string]struct{}

// ToSet converts a list of strings into a lookup set.
func ToSet(list []string) Set {
	m := make(Set, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Add inserts every word into s.
func (s Set) Add(ws ...string) {
	for _, w := range ws {
		s[w] = struct{}{}
	}
}

// Has reports whether w is a member of s.
func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Union adds all members of other into s.
func (s Set) Union(other Set) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	out.Union(s)
	return out
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
