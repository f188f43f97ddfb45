package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Stewinjo/AnyLetters/assets"
)

// Config is the on-disk filter configuration of one archetype.
//
// It is read from {archetype}.json, {archetype}.yaml or {archetype}.yml (first
// found wins). A missing file yields an empty, permissive Config.
type Config struct {
	Prefixes       []string `json:"prefixes" yaml:"prefixes"`
	Suffixes       []string `json:"suffixes" yaml:"suffixes"`
	Blacklist      []string `json:"blacklist" yaml:"blacklist"`
	BlacklistFiles []string `json:"blacklist_files" yaml:"blacklist_files"`
}

var configExts = []string{".json", ".yaml", ".yml"}

// LoadConfig reads and normalizes the configuration of archetype from fsys.
//
// Prefixes, suffixes and blacklist entries are lowercased and empty entries
// dropped. Every existing file named in blacklist_files (relative to fsys root)
// is appended to the blacklist; missing ones are skipped. The blacklist is
// deduplicated keeping first-seen order.
func LoadConfig(fsys fs.FS, archetype string) (Config, error) {
	if fsys == nil {
		return Config{}, nil
	}
	for _, ext := range configExts {
		name := archetype + ext
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read filter config %s: %w", name, err)
		}

		var raw Config
		if ext == ".json" {
			err = json.Unmarshal(data, &raw)
		} else {
			err = yaml.Unmarshal(data, &raw)
		}
		if err != nil {
			return Config{}, fmt.Errorf("parse filter config %s: %w", name, err)
		}
		return raw.normalize(fsys)
	}
	return Config{}, nil
}

func (c Config) normalize(fsys fs.FS) (Config, error) {
	out := Config{
		Prefixes:       lowerNonEmpty(c.Prefixes),
		Suffixes:       lowerNonEmpty(c.Suffixes),
		BlacklistFiles: nonEmpty(c.BlacklistFiles),
	}
	blacklist := lowerNonEmpty(c.Blacklist)
	for _, name := range out.BlacklistFiles {
		lines, err := assets.Lines(fsys, path.Clean(name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read blacklist file %s: %w", name, err)
		}
		blacklist = append(blacklist, lines...)
	}
	out.Blacklist = dedupe(blacklist)
	return out, nil
}

func lowerNonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
