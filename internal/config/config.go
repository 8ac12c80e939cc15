// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Logging       LoggingConfig     `toml:"logging"`
	Database      DatabaseConfig    `toml:"database"`
	Cache         CacheConfig       `toml:"cache"`
	Naming        NamingConfig      `toml:"naming"`
	Matching      MatchingConfig    `toml:"matching"`
	Queue         QueueConfig       `toml:"queue"`
	Standards     []StandardConfig  `toml:"standard"`
	Compatibility []CompatConfig    `toml:"compatibility"`
	Sources       []SourceConfig    `toml:"source"`
	Corrections   CorrectionsConfig `toml:"corrections"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// CacheConfig controls the metadata lookup cache.
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Path     string `toml:"path"`
	TTLHours int    `toml:"ttl_hours"`
}

// NamingConfig overrides pieces of the default naming profile.
type NamingConfig struct {
	DefaultSeparator string            `toml:"default_separator"`
	SeasonFormat     string            `toml:"season_format"`
	EpisodeFormat    string            `toml:"episode_format"`
	SeriesNumFormat  string            `toml:"series_num_format"`
	Sanitize         bool              `toml:"sanitize"`
	Separators       []SeparatorConfig `toml:"separator"`
}

// SeparatorConfig declares one separator rule; empty first/second match
// any property.
type SeparatorConfig struct {
	Context   string `toml:"context"`
	First     string `toml:"first"`
	Second    string `toml:"second"`
	Separator string `toml:"separator"`
}

type MatchingConfig struct {
	MetaTags []string `toml:"meta_tags"`
	Guessing bool     `toml:"guessing"`
}

type QueueConfig struct {
	Size int `toml:"size"`
}

// StandardConfig is one standard release template.
type StandardConfig struct {
	Tags   []string `toml:"tags"`
	Group  string   `toml:"group"`
	Assume string   `toml:"assume"` // "always" or "if-none-found"
}

// CompatConfig declares a cross-group compatibility.
type CompatConfig struct {
	Source     string `toml:"source"`
	Compatible string `toml:"compatible"`
	Symmetric  bool   `toml:"symmetric"`
}

type SourceConfig struct {
	Name   string `toml:"name"`
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

type CorrectionsConfig struct {
	Groups []FromToConfig `toml:"group"`
	Tags   []FromToConfig `toml:"tag"`
}

type FromToConfig struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/scener.db"
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = "./data/cache.db"
	}
	if cfg.Cache.TTLHours == 0 {
		cfg.Cache.TTLHours = 24
	}
	if cfg.Queue.Size == 0 {
		cfg.Queue.Size = 64
	}
	if cfg.Matching.MetaTags == nil {
		cfg.Matching.MetaTags = []string{"PROPER", "REPACK", "RERIP", "REAL", "iNTERNAL"}
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}
