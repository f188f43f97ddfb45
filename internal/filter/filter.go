// Package filter reduces raw candidate lists to gameplay-appropriate solutions.
//
// A Filter is the compiled configuration of one language archetype ("global",
// "en", "de", ...). The Registry loads filters once per archetype and runs the
// pipeline: dedupe and sort, global filter, archetype filter.
package filter

import (
	"sort"
	"strings"

	"github.com/Stewinjo/AnyLetters/internal/profanity"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

// Reason names the check that rejected a word.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonNotAlpha  Reason = "not_alpha"
	ReasonProfanity Reason = "profanity"
	ReasonBlacklist Reason = "blacklist"
	ReasonPrefix    Reason = "prefix"
	ReasonSuffix    Reason = "suffix"
)

// Filter applies one archetype's configuration. It is immutable after New.
type Filter struct {
	archetype string
	cfg       Config
	blacklist words.Set
	detector  profanity.Detector
}

// New compiles cfg for archetype. A nil detector disables profanity checks.
func New(archetype string, cfg Config, detector profanity.Detector) *Filter {
	return &Filter{
		archetype: archetype,
		cfg:       cfg,
		blacklist: words.ToSet(cfg.Blacklist),
		detector:  profanity.OrNone(detector),
	}
}

func (f *Filter) Archetype() string { return f.archetype }

func (f *Filter) Config() Config { return f.cfg }

// Reason reports why word would be dropped, or ReasonNone when it is kept.
func (f *Filter) Reason(word string) Reason {
	lower := strings.ToLower(word)
	switch {
	case !words.IsAlpha(lower):
		return ReasonNotAlpha
	case f.detector.ContainsProfanity(word):
		return ReasonProfanity
	case f.blacklist.Has(lower):
		return ReasonBlacklist
	case hasAnyPrefix(lower, f.cfg.Prefixes):
		return ReasonPrefix
	case hasAnySuffix(lower, f.cfg.Suffixes):
		return ReasonSuffix
	}
	return ReasonNone
}

// Apply keeps the words that pass every check, deduplicated case-insensitively
// (first spelling wins) and sorted ascending.
func (f *Filter) Apply(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(words.Set, len(in))
	for _, w := range in {
		if f.Reason(w) != ReasonNone {
			continue
		}
		lower := strings.ToLower(w)
		if seen.Has(lower) {
			continue
		}
		seen.Add(lower)
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func hasAnyPrefix(w string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(w, p) {
			return true
		}
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
