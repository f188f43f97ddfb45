package cli

import (
	"io/fs"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Stewinjo/AnyLetters/assets"
	"github.com/Stewinjo/AnyLetters/internal/cache"
	"github.com/Stewinjo/AnyLetters/internal/filter"
	"github.com/Stewinjo/AnyLetters/internal/lexicon"
	"github.com/Stewinjo/AnyLetters/internal/profanity"
	"github.com/Stewinjo/AnyLetters/internal/session"
)

func (a *app) filtersFS() fs.FS {
	if a.cfg.Paths.Filters != "" {
		return os.DirFS(a.cfg.Paths.Filters)
	}
	return assets.Filters()
}

func (a *app) engine() (*lexicon.Engine, error) {
	logger := log.Logger
	return lexicon.New(lexicon.Options{
		Filters:    filter.NewRegistry(a.filtersFS(), profanity.Named(a.cfg.Filter.Profanity), logger),
		Validators: cache.New(a.cfg.Cache.Dir, cache.Validator, logger),
		Solutions:  cache.New(a.cfg.Cache.SolutionsDir, cache.Solutions, logger),
		IndexSize:  a.cfg.Cache.IndexSize,
		Logger:     &logger,
	})
}

func (a *app) session(rng *rand.Rand) (*session.Session, error) {
	e, err := a.engine()
	if err != nil {
		return nil, err
	}
	return session.New(e, session.Config{
		DictRoot:     a.cfg.Paths.Dictionaries,
		SolutionsDir: a.cfg.Paths.Solutions,
		Rows:         a.cfg.Server.Rows,
		Rand:         rng,
	}), nil
}
