// Package morph holds small suffix-stripping heuristics that spot inflected
// forms (plurals, past tenses) whose simpler base form is in a dictionary
// catalog. They are deliberately incomplete: a missed inflection is fine, the
// goal is trimming obvious near-duplicates from a secret pool.
package morph

import (
	"strings"
	"unicode/utf8"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// minLen is the shortest word any heuristic will flag.
const minLen = 4

type heuristic func(w string, catalog words.Set) bool

var byArchetype = map[string][]heuristic{
	"en": {LooksPluralEN, LooksPastTenseEN},
	"de": {LooksPluralDE, LooksPastTenseDE},
}

// ShouldExcludeInflected reports whether word looks like an inflected form of
// a catalog entry under lang's heuristics. Languages without heuristics and
// empty catalogs never exclude anything.
func ShouldExcludeInflected(word, lang string, catalog words.Set) bool {
	if len(catalog) == 0 {
		return false
	}
	for _, h := range byArchetype[words.Archetype(lang)] {
		if h(word, catalog) {
			return true
		}
	}
	return false
}

// Reduce drops the words ShouldExcludeInflected flags. The input is not modified.
func Reduce(in []string, lang string, catalog words.Set) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		if !ShouldExcludeInflected(w, lang, catalog) {
			out = append(out, w)
		}
	}
	return out
}

// Supported reports whether lang has heuristics.
func Supported(lang string) bool {
	_, ok := byArchetype[words.Archetype(lang)]
	return ok
}

func runes(w string) int { return utf8.RuneCountInString(w) }

// swap replaces suffix old with repl and reports whether the result is in catalog.
func swap(w, old, repl string, catalog words.Set) bool {
	if !strings.HasSuffix(w, old) {
		return false
	}
	return catalog.Has(strings.TrimSuffix(w, old) + repl)
}
