// Package cli implements the anyletters commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Stewinjo/AnyLetters/internal/config"
)

// flags holds the persistent flags; non-empty values override the config.
type flags struct {
	configPath   string
	dictionaries string
	solutions    string
	filters      string
	cacheDir     string
	logLevel     string
	format       string
}

// app is shared by the commands of one invocation.
type app struct {
	flags flags
	cfg   *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "anyletters",
		Short:         "Word-candidate engine for word-guessing games of any length",
		Long:          "Expands hunspell dictionaries into per-length word lists, filters them into secret pools and serves games over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "YAML config file (default: $CONFIG_PATH or ./anyletters.yaml)")
	pf.StringVar(&a.flags.dictionaries, "dictionaries", "", "Dictionary root, one folder per language")
	pf.StringVar(&a.flags.solutions, "solutions", "", "Solutions directory ({lang}{length}.txt)")
	pf.StringVar(&a.flags.filters, "filters", "", "Filter configuration directory (default: embedded)")
	pf.StringVar(&a.flags.cacheDir, "cache-dir", "", "Validator cache directory")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVarP(&a.flags.format, "format", "f", "text", "Output format: json or text")

	root.AddCommand(
		a.serveCmd(),
		a.listCmd(),
		a.buildCmd(),
		a.checkCmd(),
		a.scoreCmd(),
		a.clearCacheCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// init loads the configuration, applies flag overrides and sets up logging.
func (a *app) init(logOut io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if a.flags.configPath != "" {
		cfg, err = config.LoadFile(a.flags.configPath, true)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.Paths.Dictionaries, a.flags.dictionaries)
	override(&cfg.Paths.Solutions, a.flags.solutions)
	override(&cfg.Paths.Filters, a.flags.filters)
	if a.flags.cacheDir != "" {
		cfg.Cache.Dir = a.flags.cacheDir
		cfg.Cache.SolutionsDir = filepath.Join(a.flags.cacheDir, "solutions_filtered")
	}
	override(&cfg.Log.Level, a.flags.logLevel)

	initLogger(cfg.Log, logOut)
	a.cfg = cfg
	return nil
}

// initLogger configures the global zerolog logger.
func initLogger(c config.LogConfig, out io.Writer) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if strings.EqualFold(c.Format, "console") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
		return
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// print writes v as indented JSON with --format json, else calls text.
func (a *app) print(w io.Writer, v any, text func(io.Writer)) error {
	if a.flags.format == "json" {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	text(w)
	return nil
}
