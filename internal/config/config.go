// Package config holds the runtime configuration of the server and the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is populated from an optional YAML file and the environment.
// Environment variables win over the file; env-default tags fill the rest.
type Config struct {
	Paths  PathsConfig  `yaml:"paths"`
	Filter FilterConfig `yaml:"filter"`
	Cache  CacheConfig  `yaml:"cache"`
	Server ServerConfig `yaml:"server"`
	Daily  DailyConfig  `yaml:"daily"`
	Log    LogConfig    `yaml:"log"`
}

type PathsConfig struct {
	// Dictionaries is the root holding one folder per language.
	Dictionaries string `yaml:"dictionaries" env:"ANYLETTERS_DICTIONARIES" env-default:"external/dictionaries/dictionaries"`
	Solutions    string `yaml:"solutions"    env:"ANYLETTERS_SOLUTIONS"    env-default:"solutions"`
	// Filters overrides the embedded filter configuration when set.
	Filters string `yaml:"filters" env:"ANYLETTERS_FILTERS"`
}

type FilterConfig struct {
	// Profanity selects the profanity detector: "goaway" or "none".
	Profanity string `yaml:"profanity" env:"ANYLETTERS_PROFANITY" env-default:"goaway"`
}

type CacheConfig struct {
	Dir          string `yaml:"dir"           env:"ANYLETTERS_CACHE_DIR"          env-default:"cache"`
	SolutionsDir string `yaml:"solutions_dir" env:"ANYLETTERS_SOLUTION_CACHE_DIR" env-default:"cache/solutions_filtered"`
	IndexSize    int    `yaml:"index_size"    env:"ANYLETTERS_INDEX_SIZE"         env-default:"64"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"          env:"PORT"          env-default:"5175"`
	DSN          string        `yaml:"dsn"           env:"DATABASE_PATH" env-default:"data/anyletters.db"`
	ClientOrigin string        `yaml:"client_origin" env:"CLIENT_ORIGIN" env-default:"http://localhost:5173"`
	JWTSecret    string        `yaml:"jwt_secret"    env:"JWT_SECRET"    env-default:"dev_secret_change_me"`
	TokenTTL     time.Duration `yaml:"token_ttl"     env:"TOKEN_TTL"     env-default:"336h"`
	CookieName   string        `yaml:"cookie_name"   env:"COOKIE_NAME"   env-default:"anyletters_token"`
	// GameTTL is how long an idle game is kept in memory.
	GameTTL time.Duration `yaml:"game_ttl" env:"GAME_TTL" env-default:"24h"`
	Rows    int           `yaml:"rows"     env:"GAME_ROWS" env-default:"6"`
}

type DailyConfig struct {
	Salt string `yaml:"salt" env:"DAILY_SALT" env-default:"local_dev_salt"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path comes from CONFIG_PATH (fallback "./anyletters.yaml").
// A missing default file is fine; a missing explicit one is an error.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./anyletters.yaml"
	}
	return LoadFile(path, explicit)
}

// LoadFile is Load with an explicit path. When required is false a missing
// file falls back to env + defaults.
func LoadFile(path string, required bool) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if required {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Paths.Dictionaries) == "" {
		errs = append(errs, errors.New("paths.dictionaries is required"))
	}
	if strings.TrimSpace(c.Cache.Dir) == "" {
		errs = append(errs, errors.New("cache.dir is required"))
	}
	if strings.TrimSpace(c.Cache.SolutionsDir) == "" {
		errs = append(errs, errors.New("cache.solutions_dir is required"))
	}
	if c.Cache.IndexSize <= 0 {
		errs = append(errs, fmt.Errorf("cache.index_size must be positive, got %d", c.Cache.IndexSize))
	}
	if c.Server.Rows < 0 {
		errs = append(errs, fmt.Errorf("server.rows must not be negative, got %d", c.Server.Rows))
	}
	if c.Server.TokenTTL <= 0 {
		errs = append(errs, errors.New("server.token_ttl must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
