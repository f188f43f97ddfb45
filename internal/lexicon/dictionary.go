package lexicon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Stewinjo/AnyLetters/internal/affix"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

// dictionary is the merged content of every pair in a folder.
type dictionary struct {
	rules   *affix.Rules
	entries []affix.Entry
	catalog words.Set
}

func (e *Engine) dictionary(folder string) (*dictionary, error) {
	folder = filepath.Clean(folder)
	if d, ok := e.dicts.Get(folder); ok {
		return d, nil
	}
	v, err, _ := e.group.Do("dict|"+folder, func() (any, error) {
		if d, ok := e.dicts.Get(folder); ok {
			return d, nil
		}
		pairs, err := affix.FindPairs(folder)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", folder, ErrNoDictionary)
		}
		if err != nil {
			return nil, err
		}
		rules, entries, stats, err := affix.LoadPairs(pairs)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			e.log.Debug().Str("aff", filepath.Base(p.Aff)).Str("dic", filepath.Base(p.Dic)).Msg("dictionary pair found")
		}
		e.log.Info().
			Str("folder", folder).
			Int("pairs", stats.Pairs).
			Int("rules", stats.Rules).
			Int("entries", stats.Entries).
			Msg("dictionary loaded")

		d := &dictionary{rules: rules, entries: entries, catalog: affix.Catalog(entries)}
		e.dicts.Add(folder, d)
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dictionary), nil
}

// Index file names a language directory must hold to be listed.
const (
	indexAff = "index.aff"
	indexDic = "index.dic"
)

// AvailableLanguages maps lowercase language codes to the canonical directory
// name of every subdirectory of root holding both index.aff and index.dic.
// A missing root yields an empty map.
func AvailableLanguages(root string) (map[string]string, error) {
	ents, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}
	out := make(map[string]string)
	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}
		dir := filepath.Join(root, ent.Name())
		if isFile(filepath.Join(dir, indexAff)) && isFile(filepath.Join(dir, indexDic)) {
			out[strings.ToLower(ent.Name())] = ent.Name()
		}
	}
	return out, nil
}

// SortedLanguages returns the canonical names of langs sorted case-insensitively.
func SortedLanguages(langs map[string]string) []string {
	out := make([]string, 0, len(langs))
	for _, canonical := range langs {
		out = append(out, canonical)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

// ResolveFolder returns the normalized code and dictionary folder of lang
// under root.
func ResolveFolder(root, lang string) (code, folder string, err error) {
	langs, err := AvailableLanguages(root)
	if err != nil {
		return "", "", err
	}
	code = strings.ToLower(strings.TrimSpace(lang))
	canonical, ok := langs[code]
	if !ok {
		return code, "", fmt.Errorf("%q: %w", lang, ErrUnknownLanguage)
	}
	return code, filepath.Join(root, canonical), nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
