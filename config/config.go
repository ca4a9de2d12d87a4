// Package config loads the settings of the rlisp command.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the user's home directory when no explicit
// configuration path is given.
const DefaultFile = ".rlisp.yaml"

// Config holds the REPL settings.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	HistoryFile        string `yaml:"history_file"`
	Seed               *int64 `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() Config {
	cfg := Config{
		Prompt:             "> ",
		ContinuationPrompt: ".. ",
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		cfg.HistoryFile = filepath.Join(home, ".rlisp_history")
	}
	return cfg
}

// DefaultPath returns ~/.rlisp.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, DefaultFile)
}

// Load reads the YAML file at path over the defaults. A missing file is
// only an error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err := Decode(file, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r into cfg, rejecting unknown fields.
func Decode(r io.Reader, cfg *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	cfg.normalize()
	return nil
}

func (c *Config) normalize() {
	if c.HistoryFile != "" && strings.HasPrefix(c.HistoryFile, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			c.HistoryFile = filepath.Join(home, c.HistoryFile[2:])
		}
	}
	if c.Prompt == "" {
		c.Prompt = "> "
	}
	if c.ContinuationPrompt == "" {
		c.ContinuationPrompt = ".. "
	}
}
