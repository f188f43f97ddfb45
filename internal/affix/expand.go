package affix

import (
	"regexp"
	"strings"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// Options tunes an expansion run.
type Options struct {
	// Alphabet restricts every produced word. Zero value means words.German.
	Alphabet words.Alphabet
	// BlockedSuffixAdditions lists lowercase suffix "add" strings whose rules are
	// never applied.
	BlockedSuffixAdditions words.Set
}

// Expansion is the result of expanding entries to one target length.
type Expansion struct {
	// Base holds dictionary base forms of the target length.
	Base words.Set
	// Affixed holds candidates produced by applying a single rule.
	Affixed words.Set
}

// Combined returns the union of base and affixed words.
func (x Expansion) Combined() words.Set {
	out := make(words.Set, len(x.Base)+len(x.Affixed))
	out.Union(x.Base)
	out.Union(x.Affixed)
	return out
}

// Expand generates every unique candidate of exactly length runes.
//
// Base forms of the right length that fit the alphabet are kept as is. For every
// flag of every entry, each matching suffix rule and each matching prefix rule is
// applied on its own; prefix and suffix are never combined.
func Expand(entries []Entry, rules *Rules, length int, opts Options) Expansion {
	if rules == nil {
		rules = NewRules()
	}
	e := newExpander(rules, length, opts)
	x := Expansion{Base: make(words.Set), Affixed: make(words.Set)}
	for _, entry := range entries {
		if words.Len(entry.Base) == length && e.alphabet.Match(entry.Base) {
			x.Base.Add(entry.Base)
		}
		e.affixed(entry, x.Affixed)
	}
	return x
}

// Candidates is Expand, flattened into a single set.
func Candidates(entries []Entry, rules *Rules, length int, opts Options) words.Set {
	return Expand(entries, rules, length, opts).Combined()
}

type expander struct {
	rules    *Rules
	length   int
	alphabet words.Alphabet
	blocked  words.Set
	// conds memoizes compiled conditions; a nil value marks an invalid pattern.
	conds map[string]*regexp.Regexp
}

func newExpander(rules *Rules, length int, opts Options) *expander {
	alphabet := opts.Alphabet
	if alphabet.Name() == "" {
		alphabet = words.German
	}
	return &expander{
		rules:    rules,
		length:   length,
		alphabet: alphabet,
		blocked:  opts.BlockedSuffixAdditions,
		conds:    make(map[string]*regexp.Regexp),
	}
}

func (e *expander) affixed(entry Entry, out words.Set) {
	base := entry.Base
	for _, r := range entry.Flags {
		flag := string(r)
		for _, rule := range e.rules.Suffixes[flag] {
			if cand, ok := e.applySuffix(base, rule); ok {
				out.Add(cand)
			}
		}
		for _, rule := range e.rules.Prefixes[flag] {
			if cand, ok := e.applyPrefix(base, rule); ok {
				out.Add(cand)
			}
		}
	}
}

func (e *expander) applySuffix(base string, rule Rule) (string, bool) {
	if rule.Add != "" && e.blocked.Has(strings.ToLower(rule.Add)) {
		return "", false
	}
	stem := base
	if rule.Strip != "" {
		if !strings.HasSuffix(base, rule.Strip) {
			return "", false
		}
		stem = strings.TrimSuffix(base, rule.Strip)
	}
	if !e.satisfies(rule.Condition+"$", stem) {
		return "", false
	}
	return e.accept(stem + rule.Add)
}

func (e *expander) applyPrefix(base string, rule Rule) (string, bool) {
	stem := base
	if rule.Strip != "" {
		if !strings.HasPrefix(base, rule.Strip) {
			return "", false
		}
		stem = strings.TrimPrefix(base, rule.Strip)
	}
	if !e.satisfies("^"+rule.Condition, stem) {
		return "", false
	}
	return e.accept(rule.Add + stem)
}

func (e *expander) accept(cand string) (string, bool) {
	if words.Len(cand) != e.length || !e.alphabet.Match(cand) {
		return "", false
	}
	return cand, true
}

// satisfies matches an anchored condition against stem. Patterns that fail to
// compile are treated as satisfied.
func (e *expander) satisfies(pattern, stem string) bool {
	if pattern == "$" || pattern == "^" {
		return true
	}
	re, seen := e.conds[pattern]
	if !seen {
		re, _ = regexp.Compile(pattern)
		e.conds[pattern] = re
	}
	if re == nil {
		return true
	}
	return re.MatchString(stem)
}
