// Package config manages the TOML configuration consumed by the extract
// command. The matching engine itself takes no configuration beyond its
// construction mode.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the extract tool's settings.
type Config struct {
	Matching MatchingConfig `toml:"matching"`
	Output   OutputConfig   `toml:"output"`
}

// MatchingConfig selects the processor mode and keyword sources.
type MatchingConfig struct {
	CaseSensitive bool     `toml:"case_sensitive"`
	StemLanguage  string   `toml:"stem_language"` // empty = no stemming
	Dictionaries  []string `toml:"dictionaries"`
}

// OutputConfig selects what the tool prints per document.
type OutputConfig struct {
	Spans   bool `toml:"spans"`
	Replace bool `toml:"replace"`
}

// Default returns the built-in settings: case-insensitive extraction
// without spans.
func Default() Config {
	return Config{
		Matching: MatchingConfig{CaseSensitive: false},
	}
}

// Load reads a TOML config file, applying defaults for absent keys.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
