package affix

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAff = `# sample affix file
SET UTF-8
TRY esianrtolcdugmphbyfvkwz

SFX S Y 2
SFX S   0     s          [^sxzhy]
SFX S   y     ies        [^aeiou]y

PFX U Y 1
PFX U   0     un         .

SFX D N 1
SFX D   0     ed
garbage line here
SFX
`

func TestReadRules(t *testing.T) {
	rules, err := ReadRules(strings.NewReader(sampleAff))
	require.NoError(t, err)

	require.Len(t, rules.Suffixes["S"], 2)
	assert.Equal(t, Rule{Flag: "S", Strip: "", Add: "s", Condition: "[^sxzhy]", Kind: Suffix}, rules.Suffixes["S"][0])
	assert.Equal(t, Rule{Flag: "S", Strip: "y", Add: "ies", Condition: "[^aeiou]y", Kind: Suffix}, rules.Suffixes["S"][1])

	require.Len(t, rules.Prefixes["U"], 1)
	assert.Equal(t, "un", rules.Prefixes["U"][0].Add)
	assert.Equal(t, Prefix, rules.Prefixes["U"][0].Kind)

	require.Len(t, rules.Suffixes["D"], 1)
	assert.Equal(t, ".", rules.Suffixes["D"][0].Condition, "missing condition defaults to match-any")

	assert.Equal(t, 4, rules.Len())
}

func TestParseRuleLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		skip bool
		want Rule
	}{
		{"comment", "# SFX A 0 s .", true, Rule{}},
		{"blank", "   ", true, Rule{}},
		{"header Y", "SFX A Y 3", true, Rule{}},
		{"header N", "PFX B N 1", true, Rule{}},
		{"too short", "SFX A 0", true, Rule{}},
		{"other directive", "REP 3 a b", true, Rule{}},
		{"zero strip and add", "SFX A 0 0 .", false, Rule{Flag: "A", Condition: ".", Kind: Suffix}},
		{"four fields", "PFX R 0 re", false, Rule{Flag: "R", Add: "re", Condition: ".", Kind: Prefix}},
		{"extra fields ignored", "SFX E e ing [^e]e po:verb", false, Rule{Flag: "E", Strip: "e", Add: "ing", Condition: "[^e]e", Kind: Suffix}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRuleLine(tt.line)
			if tt.skip {
				assert.ErrorIs(t, err, errSkipLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRulesMissingFile(t *testing.T) {
	rules, err := ParseRules(filepath.Join(t.TempDir(), "missing.aff"))
	require.NoError(t, err)
	assert.Empty(t, rules.Suffixes)
	assert.Empty(t, rules.Prefixes)
}

func TestParseRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.aff")
	require.NoError(t, os.WriteFile(path, []byte(sampleAff), 0o644))

	rules, err := ParseRules(path)
	require.NoError(t, err)
	assert.Equal(t, 4, rules.Len())
}

func TestMergeConcatenatesByFlag(t *testing.T) {
	a := NewRules()
	a.Add(Rule{Flag: "S", Add: "s", Condition: ".", Kind: Suffix})
	b := NewRules()
	b.Add(Rule{Flag: "S", Add: "es", Condition: ".", Kind: Suffix})
	b.Add(Rule{Flag: "U", Add: "un", Condition: ".", Kind: Prefix})

	a.Merge(b)
	a.Merge(nil)

	require.Len(t, a.Suffixes["S"], 2)
	assert.Equal(t, "s", a.Suffixes["S"][0].Add)
	assert.Equal(t, "es", a.Suffixes["S"][1].Add)
	assert.Len(t, a.Prefixes["U"], 1)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "SFX", Suffix.String())
	assert.Equal(t, "PFX", Prefix.String())
}
