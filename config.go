package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jcorbin/goforth/internal/mem"
	"github.com/jcorbin/goforth/internal/stack"
)

// ConfigFileName is searched for from the working directory upwards.
const ConfigFileName = "goforth.toml"

// Config represents a goforth.toml interpreter configuration.
type Config struct {
	Limits  LimitsConfig  `toml:"limits"`
	Prelude PreludeConfig `toml:"prelude"`
	REPL    REPLConfig    `toml:"repl"`

	// Path is the file the config was loaded from, if any.
	Path string `toml:"-"`
}

// LimitsConfig sizes the engine; zero keeps the default.
type LimitsConfig struct {
	Stack     int `toml:"stack"`
	Memory    int `toml:"memory"`
	Recursion int `toml:"recursion"`
}

// PreludeConfig selects startup sources.
type PreludeConfig struct {
	// NoBuiltin skips the embedded prelude.
	NoBuiltin bool `toml:"no-builtin"`

	// Files are loaded after the builtin prelude, relative to the config file.
	Files []string `toml:"files"`
}

// REPLConfig configures interactive sessions.
type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Limits: LimitsConfig{
			Stack:     stack.DefaultLimit,
			Memory:    mem.DefaultCells,
			Recursion: DefaultRecursionLimit,
		},
		REPL: REPLConfig{Prompt: defaultPrompt},
	}
}

// LoadConfig parses the config file at path over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}

	cfg.Path = path
	dir := filepath.Dir(path)
	for i, name := range cfg.Prelude.Files {
		if !filepath.IsAbs(name) {
			cfg.Prelude.Files[i] = filepath.Join(dir, name)
		}
	}
	return cfg, nil
}

// FindConfig walks up from startDir to find a config file, returning
// DefaultConfig if there is none.
func FindConfig(startDir string) (Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return DefaultConfig(), nil
		}
		dir = parent
	}
}

var errNegativeLimit = errors.New("limits must not be negative")

func (cfg Config) validate() error {
	lim := cfg.Limits
	if lim.Stack < 0 || lim.Memory < 0 || lim.Recursion < 0 {
		return errNegativeLimit
	}
	return nil
}
