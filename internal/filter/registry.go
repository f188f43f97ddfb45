package filter

import (
	"io/fs"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/Stewinjo/AnyLetters/internal/profanity"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

// Global is the archetype whose filter runs before every language filter.
const Global = "global"

// Registry loads and caches one Filter per archetype.
//
// Concurrent first access to an archetype loads its configuration exactly once;
// later callers share the cached Filter.
type Registry struct {
	fsys     fs.FS
	detector profanity.Detector
	log      zerolog.Logger

	mu      sync.RWMutex
	filters map[string]*Filter
	group   singleflight.Group
}

// NewRegistry reads configurations from fsys (nil means every archetype is
// permissive).
func NewRegistry(fsys fs.FS, detector profanity.Detector, logger zerolog.Logger) *Registry {
	return &Registry{
		fsys:     fsys,
		detector: profanity.OrNone(detector),
		log:      logger,
		filters:  make(map[string]*Filter),
	}
}

// Get returns the filter of archetype. A configuration that fails to load is
// logged and replaced by an empty one.
func (r *Registry) Get(archetype string) *Filter {
	r.mu.RLock()
	f, ok := r.filters[archetype]
	r.mu.RUnlock()
	if ok {
		return f
	}

	v, _, _ := r.group.Do(archetype, func() (any, error) {
		r.mu.RLock()
		f, ok := r.filters[archetype]
		r.mu.RUnlock()
		if ok {
			return f, nil
		}

		cfg, err := LoadConfig(r.fsys, archetype)
		if err != nil {
			r.log.Warn().Err(err).Str("archetype", archetype).Msg("filter config unusable, using empty config")
			cfg = Config{}
		}
		f = New(archetype, cfg, r.detector)

		r.mu.Lock()
		r.filters[archetype] = f
		r.mu.Unlock()
		r.log.Debug().
			Str("archetype", archetype).
			Int("prefixes", len(cfg.Prefixes)).
			Int("suffixes", len(cfg.Suffixes)).
			Int("blacklist", len(cfg.Blacklist)).
			Msg("filter loaded")
		return f, nil
	})
	return v.(*Filter)
}

// BlockedSuffixes returns the union of the global and lang's archetype suffixes.
func (r *Registry) BlockedSuffixes(lang string) words.Set {
	out := make(words.Set)
	out.Add(r.Get(Global).Config().Suffixes...)
	if arch := words.Archetype(lang); arch != "" {
		out.Add(r.Get(arch).Config().Suffixes...)
	}
	return out
}

// Apply runs the language filter pipeline over in.
//
// With enabled false the result is only deduplicated and sorted. Otherwise the
// sorted unique list goes through the global filter, then through the
// archetype filter of lang. Unknown archetypes get an empty, permissive
// configuration. The result may be empty; callers own the fallback.
//
// Suffix-blocked-base pruning against the source catalog is not part of the
// pipeline; see PruneBlockedSuffixBases.
func (r *Registry) Apply(in []string, lang string, enabled bool) []string {
	out := words.SortedUnique(in)
	if !enabled || len(out) == 0 {
		return out
	}

	out = r.Get(Global).Apply(out)
	arch := words.Archetype(lang)
	if arch == "" || len(out) == 0 {
		return out
	}
	return r.Get(arch).Apply(out)
}

// Explain reports the first check of the pipeline that rejects word, and the
// archetype whose filter did so.
func (r *Registry) Explain(word, lang string) (string, Reason) {
	if reason := r.Get(Global).Reason(word); reason != ReasonNone {
		return Global, reason
	}
	arch := words.Archetype(lang)
	if arch == "" {
		return "", ReasonNone
	}
	if reason := r.Get(arch).Reason(word); reason != ReasonNone {
		return arch, reason
	}
	return "", ReasonNone
}

// Loaded lists the archetypes loaded so far, sorted.
func (r *Registry) Loaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.filters))
	for k := range r.filters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
