package affix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestFindPairs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.aff", "")
	writeFile(t, dir, "index.dic", "")
	writeFile(t, dir, "extra.AFF", "")
	writeFile(t, dir, "extra.DIC", "")
	writeFile(t, dir, "lonely.aff", "")
	writeFile(t, dir, "README.md", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.aff"), 0o755))

	pairs, err := FindPairs(dir)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "extra", pairs[0].Name)
	assert.Equal(t, filepath.Join(dir, "extra.AFF"), pairs[0].Aff)
	assert.Equal(t, "index", pairs[1].Name)
	assert.Equal(t, filepath.Join(dir, "index.dic"), pairs[1].Dic)
}

func TestFindPairsMissingDir(t *testing.T) {
	_, err := FindPairs(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPairsMerges(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.aff", "SFX S Y 1\nSFX S 0 s .\n")
	writeFile(t, dir, "a.dic", "1\nrun/S\n")
	writeFile(t, dir, "b.aff", "SFX S Y 1\nSFX S 0 es .\nPFX U Y 1\nPFX U 0 un .\n")
	writeFile(t, dir, "b.dic", "2\nbox/S\ndo/U\n")

	pairs, err := FindPairs(dir)
	require.NoError(t, err)

	rules, entries, stats, err := LoadPairs(pairs)
	require.NoError(t, err)
	assert.Equal(t, Stats{Pairs: 2, Rules: 3, Entries: 3}, stats)
	assert.Len(t, rules.Suffixes["S"], 2)
	assert.Equal(t, "run", entries[0].Base)

	got := Candidates(entries, rules, 4, Options{})
	assert.Equal(t, []string{"boxs", "runs", "undo"}, got.Sorted())
	got = Candidates(entries, rules, 5, Options{})
	assert.Equal(t, []string{"boxes", "runes"}, got.Sorted())
}
