package affix

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Pair is an .aff/.dic file pair sharing a base name.
type Pair struct {
	Name string
	Aff  string
	Dic  string
}

// FindPairs lists the .aff/.dic pairs of dir, matched by base name and sorted by it.
// Unpaired files are ignored. A missing directory is an error.
func FindPairs(dir string) ([]Pair, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dictionary directory %q: %w", dir, err)
	}

	affs := make(map[string]string)
	dics := make(map[string]string)
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		base := strings.TrimSuffix(name, filepath.Ext(name))
		full := filepath.Join(dir, name)
		switch strings.ToLower(filepath.Ext(name)) {
		case ".aff":
			affs[base] = full
		case ".dic":
			dics[base] = full
		}
	}

	var pairs []Pair
	for base, aff := range affs {
		if dic, ok := dics[base]; ok {
			pairs = append(pairs, Pair{Name: base, Aff: aff, Dic: dic})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
	return pairs, nil
}

// Stats summarizes what was loaded from a set of pairs.
type Stats struct {
	Pairs   int
	Rules   int
	Entries int
}

// LoadPairs parses every pair and merges the results: rule tables are
// concatenated flag by flag and entry lists are appended in pair order.
func LoadPairs(pairs []Pair) (*Rules, []Entry, Stats, error) {
	rules := NewRules()
	var entries []Entry
	for _, p := range pairs {
		r, err := ParseRules(p.Aff)
		if err != nil {
			return nil, nil, Stats{}, err
		}
		rules.Merge(r)

		es, err := ParseEntries(p.Dic)
		if err != nil {
			return nil, nil, Stats{}, err
		}
		entries = append(entries, es...)
	}
	return rules, entries, Stats{Pairs: len(pairs), Rules: rules.Len(), Entries: len(entries)}, nil
}
