package morph

import (
	"strings"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

var (
	enSibilantPlurals = []string{"ses", "xes", "zes", "ches", "shes"}
	enNotPluralS      = []string{"ss", "us", "is", "ous"}
)

// LooksPluralEN checks, in order: -ies→-y, -ves→-f/-fe, sibilant -es→drop es,
// -men→-man, -es→drop, -s→drop (not after ss, us, is or ous).
func LooksPluralEN(word string, catalog words.Set) bool {
	w := strings.ToLower(word)
	if runes(w) < minLen {
		return false
	}
	if swap(w, "ies", "y", catalog) {
		return true
	}
	if swap(w, "ves", "f", catalog) || swap(w, "ves", "fe", catalog) {
		return true
	}
	for _, s := range enSibilantPlurals {
		if strings.HasSuffix(w, s) && swap(w, "es", "", catalog) {
			return true
		}
	}
	if swap(w, "men", "man", catalog) {
		return true
	}
	if swap(w, "es", "", catalog) {
		return true
	}
	if strings.HasSuffix(w, "s") && !hasAnySuffix(w, enNotPluralS) && swap(w, "s", "", catalog) {
		return true
	}
	return false
}

// LooksPastTenseEN checks -ied→-y, -ed→drop, and -t→drop when both the stem
// and stem+"e" are catalog entries.
func LooksPastTenseEN(word string, catalog words.Set) bool {
	w := strings.ToLower(word)
	if runes(w) < minLen {
		return false
	}
	if swap(w, "ied", "y", catalog) {
		return true
	}
	if swap(w, "ed", "", catalog) {
		return true
	}
	if stem, ok := strings.CutSuffix(w, "t"); ok && catalog.Has(stem) && catalog.Has(stem+"e") {
		return true
	}
	return false
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}
