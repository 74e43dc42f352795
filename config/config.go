// Package config resolves startup settings from .env files, the environment and flags.
//
// Precedence, lowest first: defaults, .env files, process environment, flags.
// godotenv never overrides variables already present in the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/worldmap/catalog"
)

const (
	EnvCatalog = "WORLDMAP_CATALOG"
	EnvStrict  = "WORLDMAP_STRICT"
	EnvSound   = "WORLDMAP_SOUND"
	EnvLog     = "WORLDMAP_LOG"
)

// DefaultEnvFile is read when Load is given no env files
const DefaultEnvFile = ".env"

// Config holds the resolved settings
type Config struct {
	CatalogPath string // Empty selects the embedded catalog
	Strict      bool   // Fail startup on catalog inconsistencies
	Sound       bool
	LogPath     string // Empty discards logs
}

// Load resolves settings, parsing args with fs.
// Missing env files are skipped; malformed ones are errors.
func Load(flags *flag.FlagSet, args []string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("env file %s: %w", f, err)
		}
	}

	var cfg Config
	var err error
	cfg.CatalogPath = os.Getenv(EnvCatalog)
	cfg.LogPath = os.Getenv(EnvLog)
	if cfg.Strict, err = envBool(EnvStrict); err != nil {
		return Config{}, err
	}
	if cfg.Sound, err = envBool(EnvSound); err != nil {
		return Config{}, err
	}

	flags.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "catalog TOML file (default: embedded)")
	flags.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail on catalog inconsistencies")
	flags.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sounds on selection changes")
	flags.StringVar(&cfg.LogPath, "log", cfg.LogPath, "log file path (default: discard)")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envBool(key string) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("[env] %s=%q: %w", key, v, err)
	}
	return b, nil
}

// OpenLog returns a logger writing to path, or discarding when path is empty.
// The returned closer is never nil.
func OpenLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "worldmap: ", log.LstdFlags|log.Lmicroseconds), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// LoadCatalog opens the configured catalog and checks it for consistency.
// Inconsistencies fail in strict mode and are logged otherwise.
func LoadCatalog(cfg Config, logger *log.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		if cfg.Strict {
			return nil, fmt.Errorf("strict mode: %w", err)
		}
		logger.Printf("catalog warning: %v", err)
	}
	return cat, nil
}
