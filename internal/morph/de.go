package morph

import (
	"strings"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

var dePastEndings = []string{"te", "test", "tet", "ten"}

// LooksPluralDE checks -innen→-in (longer than 5 runes), -er→drop,
// -en→drop (not -chen or -lein), -e→drop and -s→drop.
func LooksPluralDE(word string, catalog words.Set) bool {
	w := strings.ToLower(word)
	if runes(w) < minLen {
		return false
	}
	if runes(w) > 5 && swap(w, "innen", "in", catalog) {
		return true
	}
	if swap(w, "er", "", catalog) {
		return true
	}
	if !strings.HasSuffix(w, "chen") && !strings.HasSuffix(w, "lein") && swap(w, "en", "", catalog) {
		return true
	}
	if swap(w, "e", "", catalog) {
		return true
	}
	return swap(w, "s", "", catalog)
}

// LooksPastTenseDE checks the participle shapes ge-...-t and ge-...-en and the
// preterite endings -te, -test, -tet, -ten. Every rule requires the "...en"
// infinitive (or, for ge-...-en, the bare stem) to be in the catalog.
func LooksPastTenseDE(word string, catalog words.Set) bool {
	w := strings.ToLower(word)
	if runes(w) < minLen {
		return false
	}
	if rest, ok := strings.CutPrefix(w, "ge"); ok && runes(w) > 4 {
		if stem, ok := strings.CutSuffix(rest, "t"); ok && catalog.Has(stem+"en") {
			return true
		}
		if strings.HasSuffix(rest, "en") && catalog.Has(rest) {
			return true
		}
	}
	for _, ending := range dePastEndings {
		stem, ok := strings.CutSuffix(w, ending)
		if ok && runes(w) > runes(ending)+1 && catalog.Has(stem+"en") {
			return true
		}
	}
	return false
}
