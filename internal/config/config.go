// Package config resolves runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvChannelMap = "MEAMAP_CHANNEL_MAP"
	EnvSelections = "MEAMAP_SELECTIONS"
	EnvPrefsDir   = "MEAMAP_PREFS_DIR"
	EnvVerbose    = "MEAMAP_VERBOSE"
)

// Config holds settings that command line flags may override.
type Config struct {
	ChannelMapPath string
	SelectionPath  string
	PrefsDir       string
	Verbose        bool
}

// Load reads envFiles (".env" when none are given) into the environment,
// without overriding variables that are already set, then builds a Config.
// Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ChannelMapPath: os.Getenv(EnvChannelMap),
		SelectionPath:  os.Getenv(EnvSelections),
		PrefsDir:       os.Getenv(EnvPrefsDir),
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = b
	}
	return cfg, nil
}
