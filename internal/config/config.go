package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/gitcfg/internal/value"
)

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// BooleanConfig extends the boolean decoder's vocabulary.
type BooleanConfig struct {
	True  []string `toml:"true"`
	False []string `toml:"false"`
}

// Config holds the gitcfg configuration.
type Config struct {
	DefaultFile string        `toml:"default_file"`
	Color       string        `toml:"color"`
	Boolean     BooleanConfig `toml:"boolean"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DefaultFile: filepath.Join(".git", "config"),
		Color:       ColorAuto,
	}
}

// Vocabulary returns the boolean decoder vocabulary: the built-in token set
// extended with the configured synonyms.
func (c Config) Vocabulary() value.Vocabulary {
	v := value.DefaultVocabulary
	v.True = append(append([]string{}, v.True...), c.Boolean.True...)
	v.False = append(append([]string{}, v.False...), c.Boolean.False...)
	return v
}

// ColorMode returns the effective color mode, honoring the GITCFG_COLOR
// environment override.
func (c Config) ColorMode() string {
	if env := os.Getenv("GITCFG_COLOR"); env != "" {
		return env
	}
	return c.Color
}

// Validate checks field values. Errors name the offending field.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: must be %q, %q or %q", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	for _, t := range c.Boolean.True {
		for _, f := range c.Boolean.False {
			if strings.EqualFold(t, f) {
				return fmt.Errorf("boolean token %q configured as both true and false", t)
			}
		}
	}
	return nil
}

// Path returns the path to the config file, honoring GITCFG_CONFIG.
func Path() (string, error) {
	if env := os.Getenv("GITCFG_CONFIG"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitcfg", "config.toml"), nil
}

// Load reads the config file. A missing file yields Default() without
// error; an invalid file is an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config from an explicit path. A missing file yields
// Default() without error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file: %w", err)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	if cfg.DefaultFile != "" {
		expanded, err := expandPath(cfg.DefaultFile)
		if err != nil {
			return Default(), fmt.Errorf("expand default_file: %w", err)
		}
		cfg.DefaultFile = expanded
	}
	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory. Shells do
// not expand ~ inside config files.
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
