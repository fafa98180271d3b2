// Package config loads the optional taskdeck.yaml from the working
// directory. A missing file means defaults; a malformed one is an error.
package config

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "taskdeck.yaml"

// DefaultDataFile is the task file used when no config overrides it.
const DefaultDataFile = "tasks.json"

// Config is the root configuration.
type Config struct {
	Version  int    `yaml:"version"`
	DataFile string `yaml:"data_file,omitempty"` // path to the JSON task file
	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn, error
	Locale   string `yaml:"locale,omitempty"`    // BCP 47 tag for title collation
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:  1,
		DataFile: DefaultDataFile,
		LogLevel: "info",
		Locale:   "en",
	}
}

// Load reads and parses the config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault reads the config file if it exists, falling back to
// defaults when it does not. A present-but-broken file is still an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the config to the given path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("config: data_file must not be empty")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("config: invalid locale %q: %w", c.Locale, err)
		}
	}
	return nil
}

// LocaleTag parses the configured locale, falling back to English when
// unset or unparseable.
func (c *Config) LocaleTag() language.Tag {
	if c.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
