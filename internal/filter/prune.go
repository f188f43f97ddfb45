package filter

import (
	"strings"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// PruneBlockedSuffixBases removes, in place, every word that ends in a blocked
// suffix whose remaining stem is a catalog entry. It returns the number of
// words removed.
//
// Such words look like an inoffensive base plus a banned suffix even when the
// dictionary lists them directly instead of deriving them through a rule.
func PruneBlockedSuffixBases(set words.Set, blocked words.Set, catalog words.Set) int {
	if len(blocked) == 0 || len(set) == 0 {
		return 0
	}
	lowerCatalog := make(words.Set, len(catalog))
	for w := range catalog {
		lowerCatalog.Add(strings.ToLower(w))
	}

	removed := 0
	for w := range set {
		if looksBlocked(strings.ToLower(w), blocked, lowerCatalog) {
			delete(set, w)
			removed++
		}
	}
	return removed
}

func looksBlocked(w string, blocked, catalog words.Set) bool {
	for suffix := range blocked {
		if suffix == "" || !strings.HasSuffix(w, suffix) {
			continue
		}
		if stem := strings.TrimSuffix(w, suffix); stem != "" && catalog.Has(stem) {
			return true
		}
	}
	return false
}
