package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

func rulesOf(rs ...Rule) *Rules {
	out := NewRules()
	for _, r := range rs {
		out.Add(r)
	}
	return out
}

func TestExpandSimpleSuffix(t *testing.T) {
	rules := rulesOf(Rule{Flag: "S", Add: "s", Condition: ".", Kind: Suffix})
	entries := []Entry{{Base: "run", Flags: "S"}}

	got := Candidates(entries, rules, 4, Options{})
	assert.Equal(t, []string{"runs"}, got.Sorted())
}

func TestExpandBlockedSuffixAddition(t *testing.T) {
	rules := rulesOf(Rule{Flag: "S", Add: "s", Condition: ".", Kind: Suffix})
	entries := []Entry{{Base: "run", Flags: "S"}}

	got := Candidates(entries, rules, 4, Options{BlockedSuffixAdditions: words.ToSet([]string{"s"})})
	assert.Empty(t, got)
}

func TestExpandBlockedIsCaseInsensitiveOnAdd(t *testing.T) {
	rules := rulesOf(Rule{Flag: "S", Add: "S", Condition: ".", Kind: Suffix})
	got := Candidates([]Entry{{Base: "run", Flags: "S"}}, rules, 4, Options{
		Alphabet:               words.NewAlphabet("upper", "S"),
		BlockedSuffixAdditions: words.ToSet([]string{"s"}),
	})
	assert.Empty(t, got)
}

func TestExpandStripAndCondition(t *testing.T) {
	rules := rulesOf(
		Rule{Flag: "S", Strip: "y", Add: "ies", Condition: "[^aeiou]", Kind: Suffix},
		Rule{Flag: "S", Add: "s", Condition: "[aeiou]y", Kind: Suffix},
	)
	entries := []Entry{
		{Base: "pony", Flags: "S"},
		{Base: "toy", Flags: "S"},
		{Base: "cat", Flags: "S"},
	}

	got := Candidates(entries, rules, 6, Options{})
	assert.Equal(t, []string{"ponies"}, got.Sorted())

	got = Candidates(entries, rules, 4, Options{})
	assert.Equal(t, []string{"pony", "toys"}, got.Sorted())

	got = Candidates(entries, rules, 5, Options{})
	assert.Empty(t, got)
}

func TestExpandStripMustMatch(t *testing.T) {
	rules := rulesOf(Rule{Flag: "E", Strip: "e", Add: "ing", Condition: ".", Kind: Suffix})
	got := Candidates([]Entry{{Base: "walk", Flags: "E"}, {Base: "make", Flags: "E"}}, rules, 6, Options{})
	assert.Equal(t, []string{"making"}, got.Sorted())
}

func TestExpandPrefix(t *testing.T) {
	rules := rulesOf(
		Rule{Flag: "U", Add: "un", Condition: ".", Kind: Prefix},
		Rule{Flag: "R", Strip: "a", Add: "re", Condition: "b", Kind: Prefix},
	)
	entries := []Entry{
		{Base: "do", Flags: "U"},
		{Base: "abcd", Flags: "R"},
		{Base: "acde", Flags: "R"},
	}
	got := Candidates(entries, rules, 4, Options{})
	assert.Equal(t, []string{"abcd", "acde", "undo"}, got.Sorted())

	got = Candidates(entries, rules, 5, Options{})
	assert.Equal(t, []string{"rebcd"}, got.Sorted())
}

func TestExpandInvalidConditionFailsOpen(t *testing.T) {
	rules := rulesOf(
		Rule{Flag: "S", Add: "s", Condition: "[abc", Kind: Suffix},
		Rule{Flag: "P", Add: "x", Condition: "(?<=a)", Kind: Prefix},
	)
	got := Candidates([]Entry{{Base: "cat", Flags: "SP"}}, rules, 4, Options{})
	assert.Equal(t, []string{"cats", "xcat"}, got.Sorted())
}

func TestExpandNoCombinations(t *testing.T) {
	rules := rulesOf(
		Rule{Flag: "S", Add: "s", Condition: ".", Kind: Suffix},
		Rule{Flag: "U", Add: "un", Condition: ".", Kind: Prefix},
	)
	got := Candidates([]Entry{{Base: "do", Flags: "SU"}}, rules, 5, Options{})
	assert.Empty(t, got, "prefix and suffix are never stacked")
}

func TestExpandAlphabet(t *testing.T) {
	rules := rulesOf(Rule{Flag: "S", Add: "n", Condition: ".", Kind: Suffix})
	entries := []Entry{
		{Base: "bär", Flags: "S"},
		{Base: "o'ne", Flags: ""},
		{Base: "ab1d", Flags: ""},
	}

	got := Candidates(entries, rules, 4, Options{Alphabet: words.German})
	assert.Equal(t, []string{"bärn"}, got.Sorted())

	got = Candidates(entries, rules, 4, Options{Alphabet: words.Latin})
	assert.Empty(t, got)
}

func TestExpandPartitions(t *testing.T) {
	rules := rulesOf(Rule{Flag: "S", Add: "s", Condition: ".", Kind: Suffix})
	entries := []Entry{{Base: "cats"}, {Base: "cat", Flags: "S"}, {Base: "dogs", Flags: "S"}, {Base: "x", Flags: "Z"}}

	x := Expand(entries, rules, 4, Options{})
	assert.Equal(t, []string{"cats", "dogs"}, x.Base.Sorted())
	assert.Equal(t, []string{"cats"}, x.Affixed.Sorted())
	assert.Equal(t, []string{"cats", "dogs"}, x.Combined().Sorted())
}

func TestExpandNilRules(t *testing.T) {
	got := Candidates([]Entry{{Base: "word", Flags: "S"}}, nil, 4, Options{})
	assert.Equal(t, []string{"word"}, got.Sorted())
}

func BenchmarkExpand(b *testing.B) {
	rules := rulesOf(
		Rule{Flag: "S", Add: "s", Condition: "[^sxzhy]", Kind: Suffix},
		Rule{Flag: "S", Strip: "y", Add: "ies", Condition: "[^aeiou]y", Kind: Suffix},
		Rule{Flag: "U", Add: "un", Condition: ".", Kind: Prefix},
	)
	entries := []Entry{{Base: "pony", Flags: "SU"}, {Base: "house", Flags: "S"}, {Base: "do", Flags: "U"}}
	for b.Loop() {
		Candidates(entries, rules, 5, Options{})
	}
}
