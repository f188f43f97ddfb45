package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	dicts, solutions, cache, filters string
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	e := env{
		dicts:     filepath.Join(dir, "dictionaries"),
		solutions: filepath.Join(dir, "solutions"),
		cache:     filepath.Join(dir, "cache"),
		filters:   filepath.Join(dir, "filters"),
	}
	writeFile(t, filepath.Join(e.dicts, "en", "index.aff"), "SFX S Y 1\nSFX S 0 s [^s]\n")
	writeFile(t, filepath.Join(e.dicts, "en", "index.dic"), "4\nhouse\nspam/S\nglass\ncat/S\n")
	writeFile(t, filepath.Join(e.dicts, "De_AT", "index.aff"), "")
	writeFile(t, filepath.Join(e.dicts, "De_AT", "index.dic"), "1\nhaus\n")
	writeFile(t, filepath.Join(e.filters, "global.json"), `{"blacklist": ["spams"]}`)
	return e
}

func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, logs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(append([]string{
		"--dictionaries", e.dicts,
		"--solutions", e.solutions,
		"--cache-dir", e.cache,
		"--filters", e.filters,
		"--log-level", "error",
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "De_AT\nen\n", out)

	out, err = e.run(t, "--format", "json", "list")
	require.NoError(t, err)
	var got map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"De_AT", "en"}, got["languages"])
}

func TestBuild(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "--format", "json", "build", "en", "5", "--difficulty", "hard", "--print")
	require.NoError(t, err)

	var res buildResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "filtered", res.Source)
	assert.Equal(t, []string{"glass", "house"}, res.Words, "spams is blacklisted")
	assert.Equal(t, 3, res.Allowed)

	assert.FileExists(t, filepath.Join(e.cache, "en_5_utf-8.txt"))
	assert.FileExists(t, filepath.Join(e.cache, "solutions_filtered", "en_5.txt"))

	_, err = e.run(t, "build", "en", "five")
	assert.Error(t, err)
	_, err = e.run(t, "build", "en", "9")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "check", "en", "House", "spams", "qqqqq")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "house\tvalid", lines[0])
	assert.Equal(t, "spams\tvalid\tfiltered (global: blacklist)", lines[1])
	assert.Equal(t, "qqqqq\tinvalid", lines[2])
}

func TestScore(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "score", "spams", "house")
	require.NoError(t, err)
	assert.Equal(t, "YBBBB\n", out)

	_, err = e.run(t, "score", "abc", "abcd")
	assert.Error(t, err)
}

func TestClearCache(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "build", "en", "5")
	require.NoError(t, err)
	_, err = e.run(t, "build", "de_at", "4")
	require.NoError(t, err)

	out, err := e.run(t, "clear-cache", "EN")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared 1 validator and 1 filtered-solution lists (EN)")
	assert.FileExists(t, filepath.Join(e.cache, "de_at_4_utf-8.txt"))

	_, err = e.run(t, "clear-cache")
	require.NoError(t, err)
	assert.NoDirExists(t, e.cache)
}
