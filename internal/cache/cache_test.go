package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	v := New("cache", Validator, zerolog.Nop())
	s := New("cache/solutions_filtered", Solutions, zerolog.Nop())

	assert.Equal(t, filepath.Join("cache", "de_5_utf-8.txt"), v.Path("de", 5))
	assert.Equal(t, filepath.Join("cache", "solutions_filtered", "en_6.txt"), s.Path("en", 6))
	assert.Equal(t, "validator", v.Kind().String())
	assert.Equal(t, "solutions", s.Kind().String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, kind := range []Kind{Validator, Solutions} {
		t.Run(kind.String(), func(t *testing.T) {
			s := New(filepath.Join(t.TempDir(), "nested", "dir"), kind, zerolog.Nop())
			assert.False(t, s.Exists("en", 5))

			require.NoError(t, s.Save("en", 5, []string{"world", "apple", "world", "bäume"}))
			assert.True(t, s.Exists("en", 5))

			got, err := s.Load("en", 5)
			require.NoError(t, err)
			assert.Equal(t, []string{"apple", "bäume", "world"}, got)

			raw, err := os.ReadFile(s.Path("en", 5))
			require.NoError(t, err)
			assert.Equal(t, "apple\nbäume\nworld\n", string(raw))
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := New(t.TempDir(), Solutions, zerolog.Nop())
	require.NoError(t, s.Save("en", 5, []string{"apple", "world"}))
	require.NoError(t, s.Save("en", 5, []string{"zebra"}))

	got, err := s.Load("en", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra"}, got)

	ents, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, ents, 1, "no temp files left behind")
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir(), Validator, zerolog.Nop())
	got, err := s.Load("en", 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClearScopedKeepsOtherLanguages(t *testing.T) {
	s := New(t.TempDir(), Solutions, zerolog.Nop())
	require.NoError(t, s.Save("de", 5, []string{"haus"}))
	require.NoError(t, s.Save("de", 6, []string{"bäume"}))
	require.NoError(t, s.Save("en", 5, []string{"house"}))
	require.NoError(t, s.Save("de-at", 5, []string{"haus"}))

	n, err := s.Clear(" DE ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, s.Exists("de", 5))
	assert.False(t, s.Exists("de", 6))
	assert.True(t, s.Exists("en", 5))
	assert.True(t, s.Exists("de-at", 5))
	assert.DirExists(t, s.Dir())
}

func TestClearAllRemovesEmptyDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "cache"), Validator, zerolog.Nop())
	require.NoError(t, s.Save("de", 5, []string{"haus"}))
	require.NoError(t, s.Save("en", 5, []string{"house"}))

	n, err := s.Clear("")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoDirExists(t, s.Dir())
}

func TestClearAllKeepsNonEmptyDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")
	v := New(root, Validator, zerolog.Nop())
	require.NoError(t, v.Save("en", 5, []string{"house"}))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("keep"), 0o644))

	_, err := v.Clear("")
	require.NoError(t, err)
	assert.DirExists(t, root)
	assert.FileExists(t, filepath.Join(root, "notes.md"))
}

func TestClearNestedStoresInOrder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")
	v := New(root, Validator, zerolog.Nop())
	s := New(filepath.Join(root, "solutions_filtered"), Solutions, zerolog.Nop())
	require.NoError(t, v.Save("en", 5, []string{"house"}))
	require.NoError(t, s.Save("en", 5, []string{"house"}))

	_, err := s.Clear("")
	require.NoError(t, err)
	_, err = v.Clear("")
	require.NoError(t, err)
	assert.NoDirExists(t, root)
}

func TestClearMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"), Validator, zerolog.Nop())
	n, err := s.Clear("")
	require.NoError(t, err)
	assert.Zero(t, n)
}
